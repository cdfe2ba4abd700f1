package repositories

import (
	"fmt"

	pipelineerrors "retail-analytics/internal/errors"
	"retail-analytics/internal/models"

	"gorm.io/gorm"
)

const insertBatchSize = 500

// orderRepository implements OrderRepositoryInterface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &orderRepository{
		db: db,
	}
}

// ReplaceRaw replaces the raw table wholesale inside one store transaction.
func (r *orderRepository) ReplaceRaw(rows []models.RawTransaction) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.RawTransaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear raw table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert raw rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return pipelineerrors.Wrap(pipelineerrors.StoreWriteFailed, err,
			pipelineerrors.WithMessage("raw table replace failed"))
	}
	return nil
}

// GetRaw retrieves the raw table in insertion order.
func (r *orderRepository) GetRaw() ([]models.RawTransaction, error) {
	var rows []models.RawTransaction
	if err := r.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("failed to read raw table"))
	}
	return rows, nil
}

// CountRaw counts raw rows
func (r *orderRepository) CountRaw() (int64, error) {
	var count int64
	if err := r.db.Model(&models.RawTransaction{}).Count(&count).Error; err != nil {
		return 0, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err)
	}
	return count, nil
}

// ReplaceCleaned replaces the cleaned table wholesale inside one store
// transaction, so a failed run leaves the previous cleaned table untouched.
func (r *orderRepository) ReplaceCleaned(rows []models.Transaction) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear cleaned table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert cleaned rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return pipelineerrors.Wrap(pipelineerrors.StoreWriteFailed, err,
			pipelineerrors.WithMessage("cleaned table replace failed"))
	}
	return nil
}

// GetCleaned retrieves the cleaned table in insertion order.
func (r *orderRepository) GetCleaned() ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := r.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("failed to read cleaned table"))
	}
	return rows, nil
}

// CountCleaned counts cleaned rows
func (r *orderRepository) CountCleaned() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err)
	}
	return count, nil
}

// OrdersPerCountry counts distinct invoices per country, busiest first.
func (r *orderRepository) OrdersPerCountry() ([]models.CountryOrders, error) {
	var results []models.CountryOrders

	query := `
		SELECT
			country,
			COUNT(DISTINCT invoice_no) AS number_of_orders
		FROM orders_cleaned
		GROUP BY country
		ORDER BY number_of_orders DESC, country ASC
	`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("orders per country query failed"))
	}

	return results, nil
}

// RevenuePerCountry sums and averages order value per country, highest
// revenue first. Returns subtract from the totals.
func (r *orderRepository) RevenuePerCountry() ([]models.CountryRevenue, error) {
	var results []models.CountryRevenue

	query := `
		SELECT
			country,
			SUM(unit_price * quantity) AS total_revenue,
			AVG(unit_price * quantity) AS avg_order_value
		FROM orders_cleaned
		GROUP BY country
		ORDER BY total_revenue DESC, country ASC
	`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("revenue per country query failed"))
	}

	return results, nil
}

// ClientsPerCountry counts distinct non-missing customer identifiers per
// country, descending.
func (r *orderRepository) ClientsPerCountry() ([]models.CountryClients, error) {
	var results []models.CountryClients

	query := `
		SELECT
			country,
			COUNT(DISTINCT customer_id) AS unique_clients
		FROM orders_cleaned
		WHERE customer_id IS NOT NULL
		GROUP BY country
		ORDER BY unique_clients DESC, country ASC
	`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("clients per country query failed"))
	}

	return results, nil
}

// TopProducts lists the best selling products by total quantity. Ties are
// broken by stock code ascending so the result order is deterministic.
func (r *orderRepository) TopProducts(limit int) ([]models.ProductSales, error) {
	var results []models.ProductSales

	query := `
		SELECT
			stock_code,
			COALESCE(MAX(description), '') AS description,
			SUM(quantity) AS total_number_sold
		FROM orders_cleaned
		GROUP BY stock_code
		ORDER BY total_number_sold DESC, stock_code ASC
		LIMIT ?
	`

	if err := r.db.Raw(query, limit).Scan(&results).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("top products query failed"))
	}

	return results, nil
}

// ReturnedItems lists all returned line items ordered by invoice number.
func (r *orderRepository) ReturnedItems() ([]models.ReturnedItem, error) {
	var results []models.ReturnedItem

	query := `
		SELECT
			invoice_no,
			COALESCE(description, '') AS description,
			quantity
		FROM orders_cleaned
		WHERE quantity < 0
		ORDER BY invoice_no ASC
	`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("returned items query failed"))
	}

	return results, nil
}

// TopClients lists clients by distinct invoice count, missing customer
// identifiers excluded, ties broken by customer identifier ascending.
func (r *orderRepository) TopClients(limit int) ([]models.ClientOrders, error) {
	var results []models.ClientOrders

	query := `
		SELECT
			customer_id,
			COUNT(DISTINCT invoice_no) AS total_orders
		FROM orders_cleaned
		WHERE customer_id IS NOT NULL
		GROUP BY customer_id
		ORDER BY total_orders DESC, customer_id ASC
		LIMIT ?
	`

	if err := r.db.Raw(query, limit).Scan(&results).Error; err != nil {
		return nil, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("top clients query failed"))
	}

	return results, nil
}

// CountMissingCustomer counts line items without a customer identifier.
func (r *orderRepository) CountMissingCustomer() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("customer_id IS NULL").
		Count(&count).Error; err != nil {
		return 0, pipelineerrors.Wrap(pipelineerrors.StoreQueryFailed, err,
			pipelineerrors.WithMessage("missing customer count query failed"))
	}
	return count, nil
}
