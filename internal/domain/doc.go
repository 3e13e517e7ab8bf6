// Package domain contains the core quantity kinds of the application and the
// errors they share. Each kind lives in its own subpackage (length, angle) and
// stores exactly one canonical representation; unit and representation tags
// are views over that value. The generic conversion protocol that lets
// consumers accept any representation of a kind lives in domain/convert.
package domain
