package inventory

import "time"

// Project is one stock-take unit. It starts empty and unlocked; the first
// non-empty baseline import locks it for the rest of its lifetime.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	IsLocked    bool            `json:"isLocked"`
	Items       []InventoryItem `json:"items"`
}

// InventoryItem is one product line within a project.
type InventoryItem struct {
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	ScripticQty   int        `json:"scripticQty"`
	ActualQty     int        `json:"actualQty"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
}

// ScanOutcome reports the result of applying one observed code to a project.
// An unmatched code is a normal negative result, not an error.
type ScanOutcome struct {
	Code      string `json:"code"`
	Matched   bool   `json:"matched"`
	ItemName  string `json:"itemName,omitempty"`
	ActualQty int    `json:"actualQty,omitempty"`
}
