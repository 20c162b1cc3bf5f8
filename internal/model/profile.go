package model

import "encoding/json"

// Profile documents are opaque to the core: the settings pages own their
// shape and the store round-trips them untouched.
type ProfileDocument = json.RawMessage

// ProfileBundle groups the three settings documents the profile page
// reads together.
type ProfileBundle struct {
	Profile       ProfileDocument `json:"profile,omitempty"`
	Notifications ProfileDocument `json:"notifications,omitempty"`
	Privacy       ProfileDocument `json:"privacy,omitempty"`
}
