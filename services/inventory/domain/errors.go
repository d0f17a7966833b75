package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrChemicalNotFound indicates the requested chemical does not exist in the catalog.
	ErrChemicalNotFound = errors.New("chemical not found")

	// ErrChemicalAlreadyExists indicates a chemical with the same name is already cataloged.
	ErrChemicalAlreadyExists = errors.New("chemical already exists")

	// ErrInvalidChemical indicates the chemical violates domain constraints
	// (empty name, negative initial quantity, missing expiry date).
	ErrInvalidChemical = errors.New("invalid chemical")

	// ErrInvalidUsageEvent indicates the usage event violates domain constraints
	// (missing chemical name, negative amount used).
	ErrInvalidUsageEvent = errors.New("invalid usage event")
)
