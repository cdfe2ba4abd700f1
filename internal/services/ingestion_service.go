package services

import (
	"log/slog"

	"retail-analytics/internal/ingest"
	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories"
)

type ingestionService struct {
	orders repositories.OrderRepositoryInterface
	read   func(path string) ([]models.RawTransaction, error)
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(orders repositories.OrderRepositoryInterface) IngestionServiceInterface {
	return &ingestionService{
		orders: orders,
		read:   ingest.ReadFile,
	}
}

// Ingest loads the CSV at path and replaces the raw table wholesale.
func (s *ingestionService) Ingest(path string) (int64, error) {
	rows, err := s.read(path)
	if err != nil {
		slog.Error("ingestion aborted", "path", path, "error", err)
		return 0, err
	}

	if err := s.orders.ReplaceRaw(rows); err != nil {
		slog.Error("ingestion aborted, raw table replace failed",
			"path", path,
			"rows", len(rows),
			"error", err)
		return 0, err
	}

	slog.Info("ingestion completed", "path", path, "rows", len(rows))

	return int64(len(rows)), nil
}
