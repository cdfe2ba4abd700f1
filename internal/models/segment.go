package models

import (
	"github.com/shopspring/decimal"
)

// Segment labels. Every client gets exactly one, chosen by the first
// matching rule in SegmentRules; clients matching none default to
// SegmentOther.
const (
	SegmentTopClients  = "Top Clients"
	SegmentLoyal       = "Loyal Clients"
	SegmentBigSpenders = "Big Spenders"
	SegmentNewClients  = "New Clients"
	SegmentAtRisk      = "At Risk"
	SegmentLost        = "Lost Clients"
	SegmentLowValue    = "Low Value"
	SegmentOther       = "Other"
)

// SegmentRule pairs a segment name with its matching predicate.
type SegmentRule struct {
	Name    string
	Matches func(RFMProfile) bool
}

// SegmentRules is the ordered rule list; order is the priority contract.
// The Lost Clients rule tests frequency against the Low tier, which no
// bucket produces, so it never fires. The rule is kept in its slot as
// delivered rather than rewritten to a different tier.
var SegmentRules = []SegmentRule{
	{
		Name: SegmentTopClients,
		Matches: func(p RFMProfile) bool {
			return p.RecencyTier == RecencyActive && p.FrequencyTier == FrequencyFrequent && p.MonetaryTier == MonetaryHigh
		},
	},
	{
		Name: SegmentLoyal,
		Matches: func(p RFMProfile) bool {
			return p.RecencyTier == RecencyActive && p.FrequencyTier == FrequencyFrequent && p.MonetaryTier == MonetaryMedium
		},
	},
	{
		Name: SegmentBigSpenders,
		Matches: func(p RFMProfile) bool {
			return p.RecencyTier == RecencyRegular && p.MonetaryTier == MonetaryHigh
		},
	},
	{
		Name: SegmentNewClients,
		Matches: func(p RFMProfile) bool {
			return p.RecencyTier == RecencyActive && p.FrequencyTier == FrequencyRare
		},
	},
	{
		Name: SegmentAtRisk,
		Matches: func(p RFMProfile) bool {
			return p.RecencyTier == RecencyInactive && p.FrequencyTier == FrequencyFrequent
		},
	},
	{
		Name: SegmentLost,
		Matches: func(p RFMProfile) bool {
			return p.RecencyTier == RecencyInactive && p.FrequencyTier == FrequencyLow
		},
	},
	{
		Name: SegmentLowValue,
		Matches: func(p RFMProfile) bool {
			return p.FrequencyTier == FrequencyRare && p.MonetaryTier == MonetaryLow
		},
	},
}

// ClassifySegment evaluates the ordered rules top to bottom and returns the
// first match, or SegmentOther.
func ClassifySegment(p RFMProfile) string {
	for _, rule := range SegmentRules {
		if rule.Matches(p) {
			return rule.Name
		}
	}
	return SegmentOther
}

// SegmentedTransaction is a cleaned line item augmented with derived
// columns and the owning client's tiers and segment. It is recomputed per
// analysis run and never written back to the store. Line items with a
// missing customer identifier carry empty tiers and an empty segment.
type SegmentedTransaction struct {
	Transaction

	OrderValue    decimal.Decimal `json:"order_value"`
	Month         int             `json:"month"`
	Weekday       string          `json:"weekday"`
	Weekend       int             `json:"weekend"`
	RecencyTier   RecencyTier     `json:"recency_tier,omitempty"`
	FrequencyTier FrequencyTier   `json:"frequency_tier,omitempty"`
	MonetaryTier  MonetaryTier    `json:"monetary_tier,omitempty"`
	Segment       string          `json:"segment,omitempty"`
}
