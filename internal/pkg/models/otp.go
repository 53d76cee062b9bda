package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP is a one-time passcode bound to a project and a phone number
type OTP struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"-"`
	Purpose   string    `json:"purpose"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// SendOTPRequest represents a request to issue a code
type SendOTPRequest struct {
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
}

// VerifyOTPRequest represents a request to verify a code
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// SendOTPResponse is returned after a code is issued. Code is only filled
// outside production so integrators can read it without an SMS leg.
type SendOTPResponse struct {
	OTPID     uuid.UUID `json:"otpId"`
	Phone     string    `json:"phone"`
	Purpose   string    `json:"purpose"`
	ExpiresAt time.Time `json:"expiresAt"`
	Code      string    `json:"code,omitempty"`
}

// VerifyOTPResponse is returned after a successful verification
type VerifyOTPResponse struct {
	Verified bool   `json:"verified"`
	Phone    string `json:"phone"`
	Purpose  string `json:"purpose"`
}
