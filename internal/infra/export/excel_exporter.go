// Package export renders order lists into spreadsheets for the admin download.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	ordersSheet = "Orders"
	linesSheet  = "Items"
	dateLayout  = "2006-01-02"
	stampLayout = "2006-01-02 15:04"
)

var (
	orderHeaders = []string{"Order #", "Delivery Date", "Location", "Placed By", "Status", "Items", "Total Qty", "Staff Note", "Created At"}
	lineHeaders  = []string{"Order #", "Delivery Date", "Location", "Item", "Item (Persian)", "Quantity"}
)

// excelExporter writes one summary sheet and one line-per-item sheet.
type excelExporter struct {
	location *time.Location
}

// NewExcelExporter renders timestamps in loc.
func NewExcelExporter(loc *time.Location) service.OrderExporter {
	if loc == nil {
		loc = time.UTC
	}

	return &excelExporter{location: loc}
}

func (e *excelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *excelExporter) FileExtension() string {
	return ".xlsx"
}

func (e *excelExporter) ExportOrders(w io.Writer, orders []*entity.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return errors.Wrap(err, "failed to rename sheet")
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return errors.Wrap(err, "failed to create items sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}

	if err := writeHeader(f, ordersSheet, orderHeaders, headerStyle); err != nil {
		return err
	}
	if err := writeHeader(f, linesSheet, lineHeaders, headerStyle); err != nil {
		return err
	}

	lineRow := 2
	for i, order := range orders {
		summary := []any{
			order.OrderNumber,
			order.OrderDate.Format(dateLayout),
			order.Location.String(),
			order.PlacedByName,
			order.Status.String(),
			describeItems(order.Items),
			order.TotalQuantity(),
			order.StaffNote,
			order.CreatedAt.In(e.location).Format(stampLayout),
		}
		if err := writeRow(f, ordersSheet, i+2, summary); err != nil {
			return err
		}

		for _, item := range order.Items {
			line := []any{
				order.OrderNumber,
				order.OrderDate.Format(dateLayout),
				order.Location.String(),
				item.ItemName,
				item.ItemNamePersian,
				item.Quantity,
			}
			if err := writeRow(f, linesSheet, lineRow, line); err != nil {
				return err
			}
			lineRow++
		}
	}

	if err := f.SetColWidth(ordersSheet, "F", "F", 60); err != nil {
		return errors.WithStack(err)
	}
	if err := f.SetColWidth(ordersSheet, "H", "H", 40); err != nil {
		return errors.WithStack(err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(f.SetCellStyle(sheet, "A1", last, style))
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return errors.Wrapf(err, "failed to set %s!%s", sheet, cell)
		}
	}

	return nil
}

func describeItems(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", item.ItemName, item.Quantity))
	}

	return strings.Join(parts, ", ")
}

// NewExcelExporterFromConfig renders timestamps in the notifier time zone.
func NewExcelExporterFromConfig(cfg *config.Config) (service.OrderExporter, error) {
	loc, err := cfg.Notifier.Location()
	if err != nil {
		return nil, err
	}

	return NewExcelExporter(loc), nil
}
