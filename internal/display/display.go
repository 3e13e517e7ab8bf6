// Package display renders quantities for people. Rounding happens here and
// nowhere else; the quantity kinds always hand over their full value.
package display

import (
	"strconv"

	"github.com/phrazzld/measure/internal/domain/angle"
	"github.com/phrazzld/measure/internal/domain/length"
)

// ShortestPrecision renders the shortest decimal that reads back as the same
// float64.
const ShortestPrecision = -1

// Formatter renders numbers with a fixed number of decimal places.
type Formatter struct {
	Precision int
}

// NewFormatter returns a Formatter using precision decimal places. Any
// negative precision means ShortestPrecision.
func NewFormatter(precision int) Formatter {
	if precision < 0 {
		precision = ShortestPrecision
	}
	return Formatter{Precision: precision}
}

// Float renders v.
func (f Formatter) Float(v float64) string {
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// Length renders l in its own unit, e.g. "100.0000 meters".
func (f Formatter) Length(l length.Length) string {
	return f.Float(l.Value()) + " " + l.Unit().String()
}

// LengthSymbol renders l with the unit's short label, e.g. "100.0000 m".
func (f Formatter) LengthSymbol(l length.Length) string {
	return f.Float(l.Value()) + " " + l.Unit().Symbol()
}

// Angle renders a in its own representation.
func (f Formatter) Angle(a angle.Angle) string {
	return f.Float(a.Value()) + " " + a.Representation().String()
}
