// Package identity allocates identifiers for newly inserted documents.
package identity

// Generator produces document identifiers.
// Next reports the identifier the next insertion would receive without consuming it;
// Advance consumes it. Callers advance once per inserted document.
type Generator interface {
	Next() string
	Advance()
}
