package export

import (
	"bytes"
	"testing"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_ExportOrders(t *testing.T) {
	orders := []*entity.Order{
		{
			ID:           uuid.New(),
			OrderNumber:  "12345",
			OrderDate:    time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
			Location:     entity.LocationNorthYork,
			PlacedByName: "Staff",
			Status:       entity.OrderStatusActive,
			Items: []entity.OrderItem{
				{ItemID: uuid.New(), ItemName: "Rice", ItemNamePersian: "برنج", Quantity: 2},
				{ItemID: uuid.New(), ItemName: "Soup", ItemNamePersian: "آش", Quantity: 1},
			},
			StaffNote: "extra bread",
			CreatedAt: time.Date(2025, time.January, 5, 15, 4, 0, 0, time.UTC),
		},
	}

	exporter := NewExcelExporter(time.UTC)
	assert.Equal(t, ".xlsx", exporter.FileExtension())

	var buf bytes.Buffer
	require.NoError(t, exporter.ExportOrders(&buf, orders))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, orderHeaders, rows[0])
	assert.Equal(t, "12345", rows[1][0])
	assert.Equal(t, "2025-01-06", rows[1][1])
	assert.Equal(t, "Rice (2), Soup (1)", rows[1][5])
	assert.Equal(t, "3", rows[1][6])

	lines, err := f.GetRows(linesSheet)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "آش", lines[2][4])
}

func TestExcelExporter_EmptyOrders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExcelExporter(nil).ExportOrders(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
