package model

import "time"

// Profile owns a synced set of settings.
type Profile struct {
	ID             int64
	Name           string
	PassphraseHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileRequest is used for both registration and login.
type ProfileRequest struct {
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
}

// ProfileResponse is safe for API responses (no hash).
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries a bearer token for the settings endpoints.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
