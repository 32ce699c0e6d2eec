package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// flexString accepts a JSON string or number and keeps its text form.
// A null or absent value leaves Set false.
type flexString struct {
	Value string
	Set   bool
}

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = flexString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString{Value: s, Set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString{Value: n.String(), Set: true}
		return nil
	}
	return fmt.Errorf("expected string or number, got %s", data)
}

// Ptr returns nil when the field was not supplied.
func (f flexString) Ptr() *string {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

type userPayload struct {
	Email flexString `json:"email"`
	Role  flexString `json:"role"`
}

type orderPayload struct {
	UserID flexString `json:"userId"`
	Total  flexString `json:"total"`
	Status flexString `json:"status"`
}

// bindLenient decodes the request body into a T. Empty, syntactically invalid or
// non-object bodies yield the zero value, so callers see an empty payload. A field
// holding a value of the wrong type is reported as an error.
func bindLenient[T any](c *gin.Context) (T, error) {
	var payload T
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		var zero T
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return zero, nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return zero, nil
		}
		return zero, fmt.Errorf("invalid payload: %w", err)
	}
	return payload, nil
}
