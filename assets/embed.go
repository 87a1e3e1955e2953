// assets/embed.go
//
// Embedded static resources for the solver.
//
// dictionary.txt holds one "<word> <frequency>" pair per line, in the order
// that drives iteration and tie-breaking throughout the solver.
package assets

import (
	_ "embed"
)

//go:embed dictionary.txt
var dictionary []byte

// Dictionary returns the raw embedded dictionary resource.
// Callers must not modify the returned slice.
func Dictionary() []byte {
	return dictionary
}
