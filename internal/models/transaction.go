package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RawTableName     = "orders"
	CleanedTableName = "orders_cleaned"
)

var (
	ErrUnparseableDate      = errors.New("unparseable invoice date")
	ErrInvalidCustomerID    = errors.New("invalid customer identifier")
	ErrFractionalCustomerID = errors.New("customer identifier is not integer-valued")
	ErrMissingInvoiceNumber = errors.New("invoice number is required")
)

// invoiceDateLayouts are tried in order. Unambiguous ISO layouts come first;
// the slash and dash layouts read the first component as the day, so
// "01/02/2011" is the 1st of February.
var invoiceDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
}

// RawTransaction is one CSV line item as ingested, before cleaning.
// InvoiceDate and CustomerID stay textual here: the source mixes several
// date formats and writes customer identifiers as floats or empty strings.
type RawTransaction struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	InvoiceNo   string          `gorm:"type:varchar(20);not null;index" json:"invoice_no"`
	StockCode   string          `gorm:"type:varchar(20);not null" json:"stock_code"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	InvoiceDate string          `gorm:"type:varchar(40);not null" json:"invoice_date"`
	CustomerID  string          `gorm:"type:varchar(20)" json:"customer_id"`
	Country     string          `gorm:"type:varchar(60);not null" json:"country"`
}

// TableName returns the table name for RawTransaction
func (RawTransaction) TableName() string {
	return RawTableName
}

// Transaction is a cleaned line item. Missing description and customer
// identifier are SQL NULL, never the empty string, and the customer
// identifier is integer-valued.
type Transaction struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	InvoiceNo   string          `gorm:"type:varchar(20);not null;index" json:"invoice_no"`
	StockCode   string          `gorm:"type:varchar(20);not null;index" json:"stock_code"`
	Description sql.NullString  `gorm:"type:text" json:"description"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	InvoiceDate time.Time       `gorm:"not null;index" json:"invoice_date"`
	CustomerID  sql.NullInt64   `gorm:"index" json:"customer_id"`
	Country     string          `gorm:"type:varchar(60);not null;index" json:"country"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return CleanedTableName
}

// Validate validates the cleaned transaction fields
func (t *Transaction) Validate() error {
	if t.InvoiceNo == "" {
		return ErrMissingInvoiceNumber
	}
	if t.InvoiceDate.IsZero() {
		return ErrUnparseableDate
	}
	return nil
}

// IsReturn reports whether the line item is a return. Returns carry a
// negative quantity.
func (t *Transaction) IsReturn() bool {
	return t.Quantity < 0
}

// OrderValue is unit price times quantity; negative for returns.
func (t *Transaction) OrderValue() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(t.Quantity))
}

// DedupKey builds a composite key over every field so that only fully
// identical rows collapse during duplicate removal.
func (t *Transaction) DedupKey() string {
	desc := "\x00"
	if t.Description.Valid {
		desc = t.Description.String
	}
	customer := "\x00"
	if t.CustomerID.Valid {
		customer = strconv.FormatInt(t.CustomerID.Int64, 10)
	}
	return strings.Join([]string{
		t.InvoiceNo,
		t.StockCode,
		desc,
		strconv.FormatInt(t.Quantity, 10),
		t.UnitPrice.String(),
		t.InvoiceDate.Format(time.RFC3339Nano),
		customer,
		t.Country,
	}, "|")
}

// ParseInvoiceDate parses a textual invoice timestamp, resolving day/month
// ambiguity with day-first precedence.
func ParseInvoiceDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrUnparseableDate
	}

	for _, layout := range invoiceDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, value)
}

// ParseCustomerID coerces a textual customer identifier to integer-or-missing.
// Both "17850" and the float rendering "17850.0" resolve to 17850; values
// with a fractional part are rejected rather than rounded.
func ParseCustomerID(value string) (sql.NullInt64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return sql.NullInt64{}, nil
	}

	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("%w: %q", ErrInvalidCustomerID, value)
	}
	if parsed != float64(int64(parsed)) {
		return sql.NullInt64{}, fmt.Errorf("%w: %q", ErrFractionalCustomerID, value)
	}

	return sql.NullInt64{Int64: int64(parsed), Valid: true}, nil
}

// NormalizeDescription maps an empty or whitespace-only description to the
// missing marker.
func NormalizeDescription(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
