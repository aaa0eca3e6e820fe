package errors

import (
	"strings"
	"unicode"
)

// ValidateEntityID validates an upstream entity identifier from dashboard
// configuration. IDs follow the "domain.object" convention (e.g.
// "sensor.living_room_temp").
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - Exactly one dot separating non-empty domain and object parts
//   - Maximum length of 256 characters
func ValidateEntityID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidWidget, "entity id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidWidget, "entity id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidWidget, "entity id contains invalid characters")
		}
	}

	parts := strings.Split(id, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return New(ErrCodeInvalidWidget, "entity id must have the form domain.object: %q", id)
	}

	return nil
}

// ValidateSlotCount validates that a configured slot index could ever be
// served by a layout with n slots. Out-of-range assignments are skipped at
// render time; this check surfaces them at configuration load instead.
func ValidateSlotCount(index, n int) error {
	if index < 0 {
		return New(ErrCodeInvalidConfig, "slot index cannot be negative: %d", index)
	}
	if index >= n {
		return New(ErrCodeInvalidConfig, "slot index %d out of range for layout with %d slots", index, n)
	}
	return nil
}

// ValidateRatio validates a split/hero ratio. Ratios at or beyond the
// endpoints would collapse one region to nothing.
func ValidateRatio(ratio float64) error {
	if ratio <= 0 || ratio >= 1 {
		return New(ErrCodeInvalidLayout, "ratio must be in (0, 1): %g", ratio)
	}
	return nil
}
