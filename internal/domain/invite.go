package domain

import "time"

// InviteCode is a single-use 6 character signup code
type InviteCode struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	UsedBy    *string    `json:"usedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UsedAt    *time.Time `json:"usedAt"`
}

// Used reports whether the code has been redeemed
func (c *InviteCode) Used() bool {
	return c.UsedBy != nil
}

// InviteVerifyRequest checks a code without consuming it
type InviteVerifyRequest struct {
	Code string `json:"code"`
}

// InviteRedeemRequest consumes a code for the authenticated user
type InviteRedeemRequest struct {
	Code string `json:"code"`
}

// PhoneVerifyRequest checks whether a phone is allow-listed
type PhoneVerifyRequest struct {
	Phone string `json:"phone"`
}

// PhoneVerifyResponse is returned for an allow-listed phone
type PhoneVerifyResponse struct {
	Valid   bool   `json:"valid"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}
