package services

import (
	"retail-analytics/internal/models"
)

// IngestionServiceInterface loads a transaction CSV into the raw table.
type IngestionServiceInterface interface {
	Ingest(path string) (int64, error)
}

// CleaningServiceInterface normalizes the raw table into the cleaned table.
type CleaningServiceInterface interface {
	Clean(raw []models.RawTransaction) ([]models.Transaction, error)
	Run() (rowsIn, rowsOut int64, err error)
}

// ReportServiceInterface runs the fixed aggregation battery.
type ReportServiceInterface interface {
	GenerateAll() (*models.ReportBundle, error)
	QuantityByWeekday(transactions []models.Transaction) []models.WeekdayQuantity
	QuantityByDate(transactions []models.Transaction) []models.DailyQuantity
}

// SegmentationServiceInterface augments the cleaned table with derived
// columns, per-client tiers and segment labels.
type SegmentationServiceInterface interface {
	Run() ([]models.SegmentedTransaction, error)
	Segment(transactions []models.Transaction, profiles []models.RFMProfile) []models.SegmentedTransaction
}

// SampleDataGeneratorInterface writes synthetic transaction CSVs.
type SampleDataGeneratorInterface interface {
	WriteCSV(path string, rows int) error
}

// RunRecorderInterface wraps a stage execution and records its outcome.
type RunRecorderInterface interface {
	Record(stage string, fn func() (rowsIn, rowsOut int64, err error)) error
}
