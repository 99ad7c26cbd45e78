package models

import "time"

// User is a roster entry. Passwords are never stored.
type User struct {
	ID            string    `json:"id,omitempty"`
	Username      string    `json:"username"`
	AvatarDataURL string    `json:"avatarDataUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// Session is the persisted marker of the logged-in user.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	StartedAt time.Time `json:"startedAt"`
}
