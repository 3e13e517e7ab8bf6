// Package travel answers distance questions about journeys on foot.
package travel

import (
	"fmt"

	"github.com/phrazzld/measure/internal/domain/convert"
	"github.com/phrazzld/measure/internal/domain/length"
)

// Walk returns the distance expressed in miles. Any representation
// convertible into a Length is accepted; if that conversion fails the error
// wraps convert.ErrConversion.
func Walk[D convert.TryInto[length.Length]](distance D) (length.Length, error) {
	l, err := convert.Canonical[length.Length](distance)
	if err != nil {
		return length.Length{}, fmt.Errorf("walk: %w", err)
	}
	return l.ConvertTo(length.Mile), nil
}

// Total adds up the legs of a journey and returns the total in miles.
func Total(legs ...convert.TryInto[length.Length]) (length.Length, error) {
	total := length.FromNanometers(0, length.Mile)
	for i, leg := range legs {
		l, err := Walk(leg)
		if err != nil {
			return length.Length{}, fmt.Errorf("leg %d: %w", i, err)
		}
		total, err = total.Add(l)
		if err != nil {
			return length.Length{}, fmt.Errorf("leg %d: %w", i, err)
		}
	}
	return total, nil
}
