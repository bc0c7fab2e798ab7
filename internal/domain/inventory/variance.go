package inventory

import (
	"math"
	"strings"
)

// VarianceStatus classifies an item's counted quantity against its expected one.
type VarianceStatus string

const (
	StatusMatch    VarianceStatus = "match"
	StatusSurplus  VarianceStatus = "surplus"
	StatusShortage VarianceStatus = "shortage"
)

// ItemVariance is the derived reconciliation view of one item.
type ItemVariance struct {
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	ScripticQty int            `json:"scripticQty"`
	ActualQty   int            `json:"actualQty"`
	Variance    int            `json:"variance"`
	Status      VarianceStatus `json:"status"`
}

// ProjectSummary aggregates progress figures for a whole project.
type ProjectSummary struct {
	TotalExpected   int `json:"totalExpected"`
	TotalCounted    int `json:"totalCounted"`
	UniqueItems     int `json:"uniqueItems"`
	ProgressPercent int `json:"progressPercent"`
}

// Variance returns actual minus scriptic: positive is surplus, negative is
// shortage, zero is a match.
func Variance(item InventoryItem) int {
	return item.ActualQty - item.ScripticQty
}

// Status classifies the item's variance.
func Status(item InventoryItem) VarianceStatus {
	switch diff := Variance(item); {
	case diff > 0:
		return StatusSurplus
	case diff < 0:
		return StatusShortage
	default:
		return StatusMatch
	}
}

// ItemVariances derives the per-item reconciliation rows in item order.
func ItemVariances(items []InventoryItem) []ItemVariance {
	rows := make([]ItemVariance, 0, len(items))
	for _, item := range items {
		rows = append(rows, ItemVariance{
			Code:        item.Code,
			Name:        item.Name,
			ScripticQty: item.ScripticQty,
			ActualQty:   item.ActualQty,
			Variance:    Variance(item),
			Status:      Status(item),
		})
	}
	return rows
}

// Summarize computes project totals and progress. Progress is 0 when nothing
// is expected, otherwise round(100 * counted / expected) capped at 100, so a
// count exceeding the baseline never overshoots even though per-item
// variance can still show a surplus.
func Summarize(items []InventoryItem) ProjectSummary {
	summary := ProjectSummary{UniqueItems: len(items)}
	for _, item := range items {
		summary.TotalExpected += item.ScripticQty
		summary.TotalCounted += item.ActualQty
	}
	if summary.TotalExpected > 0 {
		pct := math.Round(float64(summary.TotalCounted) / float64(summary.TotalExpected) * 100)
		summary.ProgressPercent = int(math.Min(100, pct))
	}
	return summary
}

// FilterItems returns the items whose name or code contains the query,
// case-insensitively. An empty query matches everything. The filter is a
// view-level derivation; it never touches stored state.
func FilterItems(items []InventoryItem, query string) []InventoryItem {
	query = strings.ToLower(query)
	filtered := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Code), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
