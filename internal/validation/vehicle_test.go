package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validDraft() VehicleDraft {
	return VehicleDraft{
		Make:           "Ford",
		Model:          "Transit",
		Year:           time.Now().Year(),
		VIN:            "1FTBW2CM5HKA12345",
		CurrentMileage: 42000,
	}
}

func TestValidateVehicleDraft(t *testing.T) {
	t.Run("well-formed draft passes", func(t *testing.T) {
		res := ValidateVehicleDraft(validDraft())
		assert.True(t, res.Valid)
		assert.Empty(t, res.FieldErrors)
	})

	t.Run("blank make and model are rejected after trimming", func(t *testing.T) {
		draft := validDraft()
		draft.Make = "   "
		draft.Model = ""
		res := ValidateVehicleDraft(draft)
		assert.False(t, res.Valid)
		assert.Contains(t, res.FieldErrors, "make")
		assert.Contains(t, res.FieldErrors, "model")
	})

	t.Run("year bounds", func(t *testing.T) {
		currentYear := time.Now().Year()
		cases := []struct {
			year  int
			valid bool
		}{
			{1989, false},
			{1990, true},
			{currentYear, true},
			{currentYear + 1, false},
		}
		for _, tc := range cases {
			draft := validDraft()
			draft.Year = tc.year
			res := ValidateVehicleDraft(draft)
			assert.Equal(t, tc.valid, res.Valid, fmt.Sprintf("year %d", tc.year))
		}
	})

	t.Run("VIN alphabet excludes I O Q", func(t *testing.T) {
		for _, vin := range []string{
			"1FTBW2CM5HKA1234I",
			"1FTBW2CM5HKA1234O",
			"1FTBW2CM5HKA1234Q",
		} {
			draft := validDraft()
			draft.VIN = vin
			res := ValidateVehicleDraft(draft)
			assert.False(t, res.Valid, vin)
			assert.Contains(t, res.FieldErrors, "vin")
		}
	})

	t.Run("VIN length must be exactly 17", func(t *testing.T) {
		for _, vin := range []string{"", "1FTBW2CM5HKA1234", "1FTBW2CM5HKA123456"} {
			draft := validDraft()
			draft.VIN = vin
			res := ValidateVehicleDraft(draft)
			assert.False(t, res.Valid, vin)
		}
	})

	t.Run("separators do not rescue an over-long VIN", func(t *testing.T) {
		for _, vin := range []string{
			"1FTBW2CM5-HKA12345",
			"1FTBW2CM5 HKA12345",
			"1FTBW2CM5HKA1234-5",
		} {
			draft := validDraft()
			draft.VIN = vin
			res := ValidateVehicleDraft(draft)
			assert.False(t, res.Valid, vin)
			assert.Contains(t, res.FieldErrors, "vin")
		}
	})

	t.Run("VIN is case-insensitive", func(t *testing.T) {
		draft := validDraft()
		draft.VIN = "1ftbw2cm5hka12345"
		res := ValidateVehicleDraft(draft)
		assert.True(t, res.Valid)
	})

	t.Run("negative mileage is rejected", func(t *testing.T) {
		draft := validDraft()
		draft.CurrentMileage = -1
		res := ValidateVehicleDraft(draft)
		assert.False(t, res.Valid)
		assert.Contains(t, res.FieldErrors, "currentMileage")
	})

	t.Run("purchase price is optional but non-negative when present", func(t *testing.T) {
		draft := validDraft()
		price := -100.0
		draft.PurchasePrice = &price
		res := ValidateVehicleDraft(draft)
		assert.False(t, res.Valid)
		assert.Contains(t, res.FieldErrors, "purchasePrice")

		price = 25000
		res = ValidateVehicleDraft(draft)
		assert.True(t, res.Valid)
	})

	t.Run("failures are reported per field, not first-wins", func(t *testing.T) {
		res := ValidateVehicleDraft(VehicleDraft{Year: 1800, CurrentMileage: -5})
		assert.False(t, res.Valid)
		assert.Len(t, res.FieldErrors, 5)
	})
}
