package domain

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// TestColorHexProperty_RGBRoundTrip verifies that any valid colour decodes to
// the components it was built from
func TestColorHexProperty_RGBRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Uint8().Draw(t, "r")
		g := rapid.Uint8().Draw(t, "g")
		b := rapid.Uint8().Draw(t, "b")

		c, err := NewColorHex(fmt.Sprintf("#%02x%02x%02x", r, g, b))
		if err != nil {
			t.Fatalf("valid colour rejected: %v", err)
		}

		gr, gg, gb := c.RGB()
		if gr != r || gg != g || gb != b {
			t.Fatalf("RGB() = (%d, %d, %d), want (%d, %d, %d)", gr, gg, gb, r, g, b)
		}
	})
}

// TestColorHexProperty_RejectsWrongLength verifies that only six digits are accepted
func TestColorHexProperty_RejectsWrongLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9a-f]{0,12}`).
			Filter(func(s string) bool { return len(s) != 6 }).
			Draw(t, "digits")

		if _, err := NewColorHex("#" + digits); err == nil {
			t.Fatalf("colour with %d digits accepted", len(digits))
		}
	})
}
