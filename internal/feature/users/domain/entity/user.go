// Package entity defines the domain entities for the users feature.
package entity

// User is a registered identity. Entries reference it by ID.
type User struct {
	// ID is opaque and generated by the store on creation.
	ID string

	// Username is unique across all users (exact, case-sensitive match)
	// and never changes once created.
	Username string
}
