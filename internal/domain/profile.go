package domain

import "time"

// Profile represents a participant of the competition. Profiles are
// provisioned from the allow-list on first authenticated access and are
// never deleted.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	AvatarURL *string   `json:"avatarUrl"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileRef is the compact profile shape embedded in votes, feed items
// and stats payloads.
type ProfileRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// Ref returns the compact reference for embedding in responses.
func (p *Profile) Ref() ProfileRef {
	return ProfileRef{ID: p.ID, Name: p.Name, AvatarURL: p.AvatarURL}
}

// ProfileRequest represents a profile create/update request
type ProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

// AllowedPhone is an allow-list entry gating who may create a profile
type AllowedPhone struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// AllowedPhoneRequest represents an admin request to allow-list a phone
type AllowedPhoneRequest struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

// UserProfile represents the authenticated identity extracted from a
// session token (Supabase phone-OTP JWT).
type UserProfile struct {
	Sub   string `json:"sub"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}
