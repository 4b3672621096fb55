// Package authority defines the Authority role entity and its test samples.
package authority

// Authority is a persisted role. Name is its identity and is always set.
type Authority struct {
	Name string `json:"name"`
}

// NewAuthority is an Authority that has not been saved yet.
// A nil Name means no identity has been assigned.
type NewAuthority struct {
	Name *string `json:"name"`
}
