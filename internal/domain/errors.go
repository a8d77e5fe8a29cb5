package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDatasetUnavailable means the water-quality dataset is missing or empty.
var ErrDatasetUnavailable = errors.New("water quality dataset unavailable")

// ErrNoCountryData means the dataset has no rows for the configured country.
var ErrNoCountryData = errors.New("no water quality rows for country")

// ErrUnknownRegion means a requested region has no rows in the dataset.
var ErrUnknownRegion = errors.New("unknown region")

// ValidationError reports a required submission field left empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// UnrecognizedRegionError is returned for regions missing from the coordinate table.
type UnrecognizedRegionError struct {
	Region string
}

func (e *UnrecognizedRegionError) Error() string {
	return fmt.Sprintf("no coordinate for region %q", e.Region)
}

// ValidateSubmission checks that location and description are not blank.
func ValidateSubmission(location, description string) error {
	if strings.TrimSpace(location) == "" {
		return &ValidationError{Field: "location"}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description"}
	}
	return nil
}
