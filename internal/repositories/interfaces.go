package repositories

import (
	"retail-analytics/internal/models"
)

// OrderRepositoryInterface defines the contract for raw and cleaned
// transaction table operations. Table replacement is wholesale and
// all-or-nothing: on failure the previous contents stay visible.
type OrderRepositoryInterface interface {
	ReplaceRaw(rows []models.RawTransaction) error
	GetRaw() ([]models.RawTransaction, error)
	CountRaw() (int64, error)
	ReplaceCleaned(rows []models.Transaction) error
	GetCleaned() ([]models.Transaction, error)
	CountCleaned() (int64, error)

	// Aggregation battery against the cleaned table (read-only)
	OrdersPerCountry() ([]models.CountryOrders, error)
	RevenuePerCountry() ([]models.CountryRevenue, error)
	ClientsPerCountry() ([]models.CountryClients, error)
	TopProducts(limit int) ([]models.ProductSales, error)
	ReturnedItems() ([]models.ReturnedItem, error)
	TopClients(limit int) ([]models.ClientOrders, error)
	CountMissingCustomer() (int64, error)
}

// PipelineRunRepositoryInterface defines the contract for run log operations
type PipelineRunRepositoryInterface interface {
	Create(run *models.PipelineRun) error
	Update(run *models.PipelineRun) error
	GetRecent(limit int) ([]models.PipelineRun, error)
	GetByStage(stage string, limit int) ([]models.PipelineRun, error)
}
