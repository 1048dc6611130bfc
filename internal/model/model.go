// Package model defines the domain models for milkledger.
package model

// Storage keys. The records live under a single key as one JSON array; each
// price lives under its own key as a decimal number string.
const (
	KeyRecords      = "milkRecords"
	KeyCowPrice     = "cowPrice"
	KeyBuffaloPrice = "buffaloPrice"
)

// DateLayout is the layout of a record date.
const DateLayout = "2006-01-02"
