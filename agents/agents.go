package agents

import (
	"time"
)

// Status of an agent account. An inactive agent is blocked from logging in
// but still appears in listings.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Agent is a field representative whose visits are tracked. The code doubles
// as the login username and is unique across the repository; there is no
// rename or update operation, descriptive fields change only by recreation.
//
// Password is a plaintext credential compared exactly against login input.
// That is the inherited scheme of this system and is deliberately not
// hardened here; see the project notes before changing it.
type Agent struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // Unique login code, e.g. REP-1001
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Products  string    `json:"products,omitempty"` // Free text
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAgent holds the caller-supplied fields for Create.
type NewAgent struct {
	Code     string
	Name     string
	Company  string
	Products string
	Phone    string
	Password string
	Status   Status
}
