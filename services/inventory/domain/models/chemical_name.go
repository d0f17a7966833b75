package models

import "fmt"

// ChemicalName is a value object for the catalog key. Chemicals are referenced
// by name everywhere (usage events carry the name, not the ID), so the
// constraints here protect both the catalog and the ledger.
type ChemicalName string

const (
	minChemicalNameLength = 1
	maxChemicalNameLength = 255
)

// NewChemicalName constructs a valid ChemicalName or returns an error if
// constraints are violated.
func NewChemicalName(s string) (ChemicalName, error) {
	if len(s) < minChemicalNameLength {
		return "", fmt.Errorf("chemical name must not be empty")
	}
	if len(s) > maxChemicalNameLength {
		return "", fmt.Errorf("chemical name must not exceed %d characters", maxChemicalNameLength)
	}
	return ChemicalName(s), nil
}

// String returns the underlying string value.
func (n ChemicalName) String() string {
	return string(n)
}
