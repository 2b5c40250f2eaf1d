package response

import "sftpconfig/internal/schema"

// ValidationResult reports the outcome of validating a raw connector
// configuration against the form schema.
type ValidationResult struct {
	Valid  bool                `json:"valid"`
	Errors []schema.FieldError `json:"errors"`
}
