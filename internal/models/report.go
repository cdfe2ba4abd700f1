package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result rows for the fixed aggregation battery. Field names follow the
// column aliases of the underlying queries so gorm can scan them directly.

// CountryOrders is the distinct order count for one country.
type CountryOrders struct {
	Country        string `json:"country"`
	NumberOfOrders int64  `json:"number_of_orders"`
}

// CountryRevenue is total and average order value for one country.
type CountryRevenue struct {
	Country       string          `json:"country"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// CountryClients is the distinct non-missing client count for one country.
type CountryClients struct {
	Country       string `json:"country"`
	UniqueClients int64  `json:"unique_clients"`
}

// ProductSales is the total quantity sold for one product.
type ProductSales struct {
	StockCode       string `json:"stock_code"`
	Description     string `json:"description"`
	TotalNumberSold int64  `json:"total_number_sold"`
}

// ReturnedItem is one returned line item (negative quantity).
type ReturnedItem struct {
	InvoiceNo   string `json:"invoice_no"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
}

// WeekdayQuantity is the total quantity sold on one weekday. The battery
// always emits all seven weekdays, Monday first, zero days included.
type WeekdayQuantity struct {
	DayName       string `json:"day_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ClientOrders is the distinct invoice count for one client.
type ClientOrders struct {
	CustomerID  int64 `json:"customer_id"`
	TotalOrders int64 `json:"total_orders"`
}

// DailyQuantity is the total quantity sold on one calendar date.
type DailyQuantity struct {
	OrderDate     string `json:"order_date"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ReportBundle collects every result set of one analysis run.
type ReportBundle struct {
	OrdersPerCountry     []CountryOrders   `json:"orders_per_country"`
	RevenuePerCountry    []CountryRevenue  `json:"revenue_per_country"`
	ClientsPerCountry    []CountryClients  `json:"clients_per_country"`
	TopProducts          []ProductSales    `json:"top_products"`
	ReturnedItems        []ReturnedItem    `json:"returned_items"`
	QuantityByWeekday    []WeekdayQuantity `json:"quantity_by_weekday"`
	TopClients           []ClientOrders    `json:"top_clients"`
	QuantityByDate       []DailyQuantity   `json:"quantity_by_date"`
	MissingCustomerCount int64             `json:"missing_customer_count"`
	RFMProfiles          []RFMProfile      `json:"rfm_profiles"`
	GeneratedAt          time.Time         `json:"generated_at"`
}
