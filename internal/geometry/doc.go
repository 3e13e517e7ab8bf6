// Package geometry provides simple plane geometry built on the quantity
// kinds in internal/domain.
package geometry
