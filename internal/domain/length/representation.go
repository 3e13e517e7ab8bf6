package length

// Meters is a whole number of meters.
type Meters int64

// TryInto converts m into a Length.
func (m Meters) TryInto() (Length, error) {
	return New(Meter, int64(m))
}

// Millimeters is a whole number of millimeters.
type Millimeters int64

// TryInto converts m into a Length.
func (m Millimeters) TryInto() (Length, error) {
	return New(Millimeter, int64(m))
}

// Miles is a whole number of miles.
type Miles int64

// TryInto converts m into a Length. Values above roughly 5.7 million miles
// overflow.
func (m Miles) TryInto() (Length, error) {
	return New(Mile, int64(m))
}
