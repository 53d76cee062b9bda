package constants

// Redis key formats
const (
	KeyOTP = "otp:%s:%s:%s" // Format: otp:{project_id}:{phone}:{code}
)

// Redis hash fields
const (
	FieldID        = "id"
	FieldProjectID = "project_id"
	FieldPhone     = "phone"
	FieldCode      = "code"
	FieldPurpose   = "purpose"
	FieldExpiresAt = "expires_at"
	FieldVerified  = "verified"
	FieldCreatedAt = "created_at"
)
