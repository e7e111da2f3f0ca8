package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct using its own Validate
// method when present, falling back to struct-tag validation.
func ValidateRequest(v interface{}) error {
	if val, ok := v.(interface{ Validate() error }); ok {
		return val.Validate()
	}
	return validate.Struct(v)
}
