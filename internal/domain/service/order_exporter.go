package service

import (
	"io"

	"kitchen/internal/domain/entity"
)

// OrderExporter renders orders into a downloadable spreadsheet.
type OrderExporter interface {
	ContentType() string
	FileExtension() string
	ExportOrders(w io.Writer, orders []*entity.Order) error
}
