package length

// Unit identifies a named length unit. The set of units is closed; the zero
// value is not a unit.
type Unit int

const (
	// Meter is the SI base unit of length.
	Meter Unit = iota + 1
	// Millimeter is one thousandth of a meter.
	Millimeter
	// Mile is the international statute mile, 1609.344 meters.
	Mile
)

type unitInfo struct {
	nanometers int64
	name       string
	symbol     string
}

// unitTable is indexed by Unit. Every scale is an exact integer, so
// converting a whole number of any unit into nanometers never rounds.
var unitTable = [...]unitInfo{
	Meter:      {nanometers: 1_000_000_000, name: "meters", symbol: "m"},
	Millimeter: {nanometers: 1_000_000, name: "millimeters", symbol: "mm"},
	Mile:       {nanometers: 1_609_344_000_000, name: "miles", symbol: "mi"},
}

// Units lists every unit in the table, in declaration order.
var Units = tableUnits()

func tableUnits() []Unit {
	units := make([]Unit, 0, len(unitTable))
	for i, info := range unitTable {
		if info.nanometers != 0 {
			units = append(units, Unit(i))
		}
	}
	return units
}

func (u Unit) info() (unitInfo, bool) {
	if u <= 0 || int(u) >= len(unitTable) || unitTable[u].nanometers == 0 {
		return unitInfo{}, false
	}
	return unitTable[u], true
}

// NanometersPerUnit returns how many nanometers make up one of u, or 0 if u is
// not a known unit.
func (u Unit) NanometersPerUnit() int64 {
	info, _ := u.info()
	return info.nanometers
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	_, ok := u.info()
	return ok
}

// String returns the plural name of the unit, e.g. "meters".
func (u Unit) String() string {
	if info, ok := u.info(); ok {
		return info.name
	}
	return "unknown"
}

// Symbol returns the short label of the unit, e.g. "mm".
func (u Unit) Symbol() string {
	if info, ok := u.info(); ok {
		return info.symbol
	}
	return "?"
}
