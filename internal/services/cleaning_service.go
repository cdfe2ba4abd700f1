package services

import (
	"fmt"
	"log/slog"

	pipelineerrors "retail-analytics/internal/errors"
	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories"
)

type cleaningService struct {
	orders repositories.OrderRepositoryInterface
}

// NewCleaningService creates a new cleaning service
func NewCleaningService(orders repositories.OrderRepositoryInterface) CleaningServiceInterface {
	return &cleaningService{
		orders: orders,
	}
}

// Run reads the raw table, cleans it and replaces the cleaned table. The
// replace is all-or-nothing: on any failure the previous cleaned table
// stays visible.
func (s *cleaningService) Run() (int64, int64, error) {
	raw, err := s.orders.GetRaw()
	if err != nil {
		slog.Error("cleaning aborted, cannot read raw table", "error", err)
		return 0, 0, err
	}

	cleaned, err := s.Clean(raw)
	if err != nil {
		slog.Error("cleaning aborted", "rows_in", len(raw), "error", err)
		return int64(len(raw)), 0, err
	}

	if err := s.orders.ReplaceCleaned(cleaned); err != nil {
		slog.Error("cleaning aborted, cleaned table replace failed",
			"rows_in", len(raw),
			"rows_out", len(cleaned),
			"error", err)
		return int64(len(raw)), 0, err
	}

	slog.Info("cleaning completed",
		"rows_in", len(raw),
		"rows_out", len(cleaned),
		"duplicates_removed", len(raw)-len(cleaned))

	return int64(len(raw)), int64(len(cleaned)), nil
}

// Clean applies the cleaning operations in order: missing-value
// normalization, date parsing, customer identifier coercion, then exact
// full-row deduplication. Dedup runs last so near-duplicates differing only
// in missing-marker representation collapse correctly. The relative order
// of surviving rows is preserved.
func (s *cleaningService) Clean(raw []models.RawTransaction) ([]models.Transaction, error) {
	cleaned := make([]models.Transaction, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i := range raw {
		row := &raw[i]

		invoiceDate, err := models.ParseInvoiceDate(row.InvoiceDate)
		if err != nil {
			return nil, pipelineerrors.Wrap(pipelineerrors.ParseInvalidDate, err,
				pipelineerrors.WithMessage(fmt.Sprintf("invoice %s: bad date %q", row.InvoiceNo, row.InvoiceDate)))
		}

		customerID, err := models.ParseCustomerID(row.CustomerID)
		if err != nil {
			return nil, pipelineerrors.Wrap(pipelineerrors.ParseInvalidCustomerID, err,
				pipelineerrors.WithMessage(fmt.Sprintf("invoice %s: bad customer id %q", row.InvoiceNo, row.CustomerID)))
		}

		txn := models.Transaction{
			InvoiceNo:   row.InvoiceNo,
			StockCode:   row.StockCode,
			Description: models.NormalizeDescription(row.Description),
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			InvoiceDate: invoiceDate,
			CustomerID:  customerID,
			Country:     row.Country,
		}

		key := txn.DedupKey()
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}

		cleaned = append(cleaned, txn)
	}

	return cleaned, nil
}
