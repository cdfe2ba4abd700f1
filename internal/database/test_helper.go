package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"retail-analytics/internal/config"
	"retail-analytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		models.RawTableName,
		models.CleanedTableName,
		"pipeline_runs",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// CreateTestTransaction inserts one cleaned line item and returns it.
func CreateTestTransaction(t *testing.T, db *DB, invoiceNo, stockCode, country string, quantity int64, price float64, date time.Time, customerID int64) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		InvoiceNo:   invoiceNo,
		StockCode:   stockCode,
		Description: sql.NullString{String: "Test product", Valid: true},
		Quantity:    quantity,
		UnitPrice:   decimal.NewFromFloat(price),
		InvoiceDate: date,
		Country:     country,
	}
	if customerID > 0 {
		txn.CustomerID = sql.NullInt64{Int64: customerID, Valid: true}
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}
