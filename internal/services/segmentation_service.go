package services

import (
	"log/slog"
	"time"

	"retail-analytics/internal/models"
	"retail-analytics/internal/repositories"
)

type segmentationService struct {
	orders repositories.OrderRepositoryInterface
}

// NewSegmentationService creates a new segmentation service
func NewSegmentationService(orders repositories.OrderRepositoryInterface) SegmentationServiceInterface {
	return &segmentationService{
		orders: orders,
	}
}

// Run reads the cleaned table, computes per-client RFM profiles and returns
// the augmented working table. Nothing is written back to the store; the
// segmentation is recomputed on every analysis run.
func (s *segmentationService) Run() ([]models.SegmentedTransaction, error) {
	cleaned, err := s.orders.GetCleaned()
	if err != nil {
		slog.Error("segmentation aborted, cannot read cleaned table", "error", err)
		return nil, err
	}

	profiles := models.BuildRFMProfiles(cleaned)
	segmented := s.Segment(cleaned, profiles)

	slog.Info("segmentation completed",
		"rows", len(segmented),
		"clients", len(profiles))

	return segmented, nil
}

// Segment augments each line item with derived columns and the owning
// client's tiers and segment label. The label is a function of the client
// profile alone, so it is constant across all rows of one client. Rows with
// a missing customer identifier keep empty tiers and an empty segment.
func (s *segmentationService) Segment(transactions []models.Transaction, profiles []models.RFMProfile) []models.SegmentedTransaction {
	byCustomer := make(map[int64]models.RFMProfile, len(profiles))
	for _, profile := range profiles {
		byCustomer[profile.CustomerID] = profile
	}

	segmented := make([]models.SegmentedTransaction, 0, len(transactions))
	for i := range transactions {
		txn := transactions[i]

		weekday := txn.InvoiceDate.Weekday()
		weekend := 0
		if weekday == time.Saturday || weekday == time.Sunday {
			weekend = 1
		}

		row := models.SegmentedTransaction{
			Transaction: txn,
			OrderValue:  txn.OrderValue(),
			Month:       int(txn.InvoiceDate.Month()),
			Weekday:     weekday.String(),
			Weekend:     weekend,
		}

		if txn.CustomerID.Valid {
			if profile, ok := byCustomer[txn.CustomerID.Int64]; ok {
				row.RecencyTier = profile.RecencyTier
				row.FrequencyTier = profile.FrequencyTier
				row.MonetaryTier = profile.MonetaryTier
				row.Segment = models.ClassifySegment(profile)
			}
		}

		segmented = append(segmented, row)
	}

	return segmented
}
