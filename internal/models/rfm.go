package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RecencyTier buckets days since a client's last purchase.
type RecencyTier string

// FrequencyTier buckets a client's distinct invoice count.
type FrequencyTier string

// MonetaryTier buckets a client's total spend.
type MonetaryTier string

const (
	RecencyActive   RecencyTier = "Active"
	RecencyRegular  RecencyTier = "Regular"
	RecencyInactive RecencyTier = "Inactive"

	FrequencyRare     FrequencyTier = "Rare"
	FrequencyMedium   FrequencyTier = "Medium"
	FrequencyFrequent FrequencyTier = "Frequent"
	// FrequencyLow is referenced by the Lost Clients rule but no bucket
	// maps to it; see ClassifySegment.
	FrequencyLow FrequencyTier = "Low"

	MonetaryLow    MonetaryTier = "Low"
	MonetaryMedium MonetaryTier = "Medium"
	MonetaryHigh   MonetaryTier = "High"
)

// Tier boundaries. Each bucket is inclusive on its upper edge: recency of
// exactly 30 days is still Active, 31 is Regular.
const (
	RecencyActiveMaxDays  = 30
	RecencyRegularMaxDays = 90

	FrequencyRareMax   = 5
	FrequencyMediumMax = 9
)

var (
	MonetaryLowMax    = decimal.NewFromInt(500)
	MonetaryMediumMax = decimal.NewFromInt(999)
)

// RFMProfile holds the per-client recency/frequency/monetary metrics and
// their tiers. One profile exists per non-missing customer identifier.
type RFMProfile struct {
	CustomerID    int64           `json:"customer_id"`
	LastPurchase  time.Time       `json:"last_purchase"`
	RecencyDays   int64           `json:"recency_days"`
	Frequency     int64           `json:"frequency"`
	Monetary      decimal.Decimal `json:"monetary"`
	RecencyTier   RecencyTier     `json:"recency_tier"`
	FrequencyTier FrequencyTier   `json:"frequency_tier"`
	MonetaryTier  MonetaryTier    `json:"monetary_tier"`
}

// AssignTiers fills the tier fields from the raw metric values.
func (p *RFMProfile) AssignTiers() {
	p.RecencyTier = TierForRecency(p.RecencyDays)
	p.FrequencyTier = TierForFrequency(p.Frequency)
	p.MonetaryTier = TierForMonetary(p.Monetary)
}

// TierForRecency maps days since last purchase to a recency tier.
func TierForRecency(days int64) RecencyTier {
	switch {
	case days <= RecencyActiveMaxDays:
		return RecencyActive
	case days <= RecencyRegularMaxDays:
		return RecencyRegular
	default:
		return RecencyInactive
	}
}

// TierForFrequency maps a distinct invoice count to a frequency tier.
func TierForFrequency(count int64) FrequencyTier {
	switch {
	case count <= FrequencyRareMax:
		return FrequencyRare
	case count <= FrequencyMediumMax:
		return FrequencyMedium
	default:
		return FrequencyFrequent
	}
}

// TierForMonetary maps total spend to a monetary tier. Negative totals
// (clients whose returns outweigh purchases) land in the lowest tier.
func TierForMonetary(total decimal.Decimal) MonetaryTier {
	switch {
	case total.LessThanOrEqual(MonetaryLowMax):
		return MonetaryLow
	case total.LessThanOrEqual(MonetaryMediumMax):
		return MonetaryMedium
	default:
		return MonetaryHigh
	}
}

// BuildRFMProfiles computes one profile per non-missing customer identifier
// from cleaned line items. Recency counts whole days between the latest
// invoice date in the whole dataset and the client's own latest invoice.
// Results are ordered by customer identifier for deterministic output.
func BuildRFMProfiles(transactions []Transaction) []RFMProfile {
	if len(transactions) == 0 {
		return nil
	}

	var latest time.Time
	for i := range transactions {
		if transactions[i].InvoiceDate.After(latest) {
			latest = transactions[i].InvoiceDate
		}
	}

	type accumulator struct {
		lastPurchase time.Time
		invoices     map[string]struct{}
		monetary     decimal.Decimal
	}

	byCustomer := make(map[int64]*accumulator)
	for i := range transactions {
		txn := &transactions[i]
		if !txn.CustomerID.Valid {
			continue
		}

		acc, ok := byCustomer[txn.CustomerID.Int64]
		if !ok {
			acc = &accumulator{invoices: make(map[string]struct{})}
			byCustomer[txn.CustomerID.Int64] = acc
		}

		if txn.InvoiceDate.After(acc.lastPurchase) {
			acc.lastPurchase = txn.InvoiceDate
		}
		acc.invoices[txn.InvoiceNo] = struct{}{}
		acc.monetary = acc.monetary.Add(txn.OrderValue())
	}

	profiles := make([]RFMProfile, 0, len(byCustomer))
	for customerID, acc := range byCustomer {
		profile := RFMProfile{
			CustomerID:   customerID,
			LastPurchase: acc.lastPurchase,
			RecencyDays:  int64(latest.Sub(acc.lastPurchase) / (24 * time.Hour)),
			Frequency:    int64(len(acc.invoices)),
			Monetary:     acc.monetary,
		}
		profile.AssignTiers()
		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CustomerID < profiles[j].CustomerID
	})

	return profiles
}
