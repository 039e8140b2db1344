// Package validation holds the vehicle draft checks shared by the request
// path and the authoritative write path. Running them in both places is
// deliberate: a bad client cannot skip the second check.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MinVehicleYear is the oldest model year the fleet accepts.
const MinVehicleYear = 1990

// vinPattern excludes I, O and Q, the standard VIN check-character
// exclusions.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// VehicleDraft is the typed form of a vehicle create/update request. Each
// domain attribute has its own field; coercion from the wire format happens
// before validation, not inside it.
type VehicleDraft struct {
	Make           string
	Model          string
	Year           int
	VIN            string
	CurrentMileage float64
	PurchasePrice  *float64
}

type Result struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// ValidateVehicleDraft applies every field rule independently and reports
// all failures at once. currentYear is evaluated at call time.
func ValidateVehicleDraft(draft VehicleDraft) Result {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(draft.Make) == "" {
		fieldErrors["make"] = "Make is required"
	}

	if strings.TrimSpace(draft.Model) == "" {
		fieldErrors["model"] = "Model is required"
	}

	currentYear := time.Now().Year()
	if draft.Year < MinVehicleYear || draft.Year > currentYear {
		fieldErrors["year"] = fmt.Sprintf("Year must be between %d and %d", MinVehicleYear, currentYear)
	}

	// Length is checked on the raw VIN: separators do not make an
	// 18-character VIN valid. Canonicalization for storage happens later.
	if !vinPattern.MatchString(strings.ToUpper(strings.TrimSpace(draft.VIN))) {
		fieldErrors["vin"] = "VIN must be exactly 17 alphanumeric characters"
	}

	if draft.CurrentMileage < 0 {
		fieldErrors["currentMileage"] = "Mileage must be a positive number"
	}

	if draft.PurchasePrice != nil && *draft.PurchasePrice < 0 {
		fieldErrors["purchasePrice"] = "Purchase price must be a positive number"
	}

	if len(fieldErrors) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, FieldErrors: fieldErrors}
}
