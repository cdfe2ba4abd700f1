package services

import (
	"log/slog"
	"sort"
	"time"

	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories"
)

// The SQL group-bys run against the store; calendar aggregations and RFM
// raw values are computed in memory from a single cleaned-table fetch.
// Every query is read-only and independent of the others.

// weekdayOrder is the presentation order of the weekday battery: Monday
// first, not Sunday-first and not alphabetical.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

type reportService struct {
	orders   repositories.OrderRepositoryInterface
	topLimit int
}

// NewReportService creates a new report service
func NewReportService(orders repositories.OrderRepositoryInterface, topLimit int) ReportServiceInterface {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &reportService{
		orders:   orders,
		topLimit: topLimit,
	}
}

// GenerateAll runs the full aggregation battery against the cleaned table.
func (s *reportService) GenerateAll() (*models.ReportBundle, error) {
	bundle := &models.ReportBundle{GeneratedAt: time.Now()}

	var err error
	if bundle.OrdersPerCountry, err = s.orders.OrdersPerCountry(); err != nil {
		return nil, err
	}
	if bundle.RevenuePerCountry, err = s.orders.RevenuePerCountry(); err != nil {
		return nil, err
	}
	if bundle.ClientsPerCountry, err = s.orders.ClientsPerCountry(); err != nil {
		return nil, err
	}
	if bundle.TopProducts, err = s.orders.TopProducts(s.topLimit); err != nil {
		return nil, err
	}
	if bundle.ReturnedItems, err = s.orders.ReturnedItems(); err != nil {
		return nil, err
	}
	if bundle.TopClients, err = s.orders.TopClients(s.topLimit); err != nil {
		return nil, err
	}
	if bundle.MissingCustomerCount, err = s.orders.CountMissingCustomer(); err != nil {
		return nil, err
	}

	cleaned, err := s.orders.GetCleaned()
	if err != nil {
		return nil, err
	}

	bundle.QuantityByWeekday = s.QuantityByWeekday(cleaned)
	bundle.QuantityByDate = s.QuantityByDate(cleaned)
	bundle.RFMProfiles = models.BuildRFMProfiles(cleaned)

	slog.Info("report battery generated",
		"countries", len(bundle.OrdersPerCountry),
		"returned_items", len(bundle.ReturnedItems),
		"clients", len(bundle.RFMProfiles),
		"missing_customer_rows", bundle.MissingCustomerCount)

	return bundle, nil
}

// QuantityByWeekday totals quantity sold per weekday. All seven weekdays
// are always present, Monday through Sunday, zero-quantity days included.
func (s *reportService) QuantityByWeekday(transactions []models.Transaction) []models.WeekdayQuantity {
	totals := make(map[time.Weekday]int64, 7)
	for i := range transactions {
		totals[transactions[i].InvoiceDate.Weekday()] += transactions[i].Quantity
	}

	results := make([]models.WeekdayQuantity, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		results = append(results, models.WeekdayQuantity{
			DayName:       day.String(),
			TotalQuantity: totals[day],
		})
	}

	return results
}

// QuantityByDate totals quantity sold per calendar date, ascending.
func (s *reportService) QuantityByDate(transactions []models.Transaction) []models.DailyQuantity {
	totals := make(map[string]int64)
	for i := range transactions {
		date := transactions[i].InvoiceDate.Format("2006-01-02")
		totals[date] += transactions[i].Quantity
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	results := make([]models.DailyQuantity, 0, len(dates))
	for _, date := range dates {
		results = append(results, models.DailyQuantity{
			OrderDate:     date,
			TotalQuantity: totals[date],
		})
	}

	return results
}
