// Package request defines the whitelist application domain type.
package request

import "time"

// Status is the lifecycle state of a whitelist request.
type Status string

const (
	// StatusPending marks a freshly submitted application awaiting review.
	StatusPending Status = "pending"
	// StatusApproved is terminal; the address was written to the whitelist.
	StatusApproved Status = "approved"
	// StatusRejected is terminal; the registry was left untouched.
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Request is one whitelist application. WalletAddress is stored in
// normalized lowercase form.
type Request struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company,omitempty"`
	Reason        string    `json:"reason"`
	Experience    string    `json:"experience,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
	Status        Status    `json:"status"`

	// UpdatedAt tracks the last status change; surfaced only as the
	// collection-level lastUpdated value.
	UpdatedAt time.Time `json:"-"`
}
