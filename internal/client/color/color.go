// Package color picks random display colors.
package color

import (
	"fmt"
	"math/rand"
)

// Random returns a CSS color "rgb(R,G,B)" with each channel in [0,254].
// A nil r uses the global source.
func Random(r *rand.Rand) string {
	ch := func() int {
		if r == nil {
			return rand.Intn(255)
		}
		return r.Intn(255)
	}
	red, green, blue := ch(), ch(), ch()
	return fmt.Sprintf("rgb(%d,%d,%d)", red, green, blue)
}
