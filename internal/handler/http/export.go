package handler

import (
	"context"
	"io"
	"net/http"
)

// Exporter writes the reporting snapshot of all orders.
type Exporter interface {
	WriteCSV(ctx context.Context, w io.Writer) error
}

// ExportHandler serves the order report download
type ExportHandler struct {
	svc Exporter
}

// NewExportHandler creates new ExportHandler instance
func NewExportHandler(svc Exporter) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportOrders streams all orders as CSV
// 200 — CSV attachment with every order row;
// 401 — capability missing or invalid;
// 500 — internal error.
func (eh *ExportHandler) ExportOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := getCapabilityPayload(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

		if err := eh.svc.WriteCSV(r.Context(), w); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}
}
