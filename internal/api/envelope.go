package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/askyourcrush/askyourcrush-server/internal/http/response"
)

// DataEnvelope wraps response bodies that carry data. Success is false when
// the status is an error, as with an unhealthy health check.
type DataEnvelope struct {
	V       int  `json:"v"`
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope wraps error response bodies.
type ErrorEnvelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every huma response body in the versioned envelope.
// Raw byte bodies, such as calendar files, pass through untouched.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	switch body := v.(type) {
	case []byte:
		return body, nil
	case *APIError:
		return ErrorEnvelope{
			V:       response.EnvelopeVersion,
			Success: false,
			Error:   body.Message,
			Code:    body.Code,
			Message: body.Message,
			Details: body.Details,
		}, nil
	case *huma.ErrorModel:
		return ErrorEnvelope{
			V:       response.EnvelopeVersion,
			Success: false,
			Error:   body.Detail,
			Code:    statusToCode(body.Status),
			Message: body.Detail,
		}, nil
	}

	code, err := strconv.Atoi(status)
	return DataEnvelope{
		V:       response.EnvelopeVersion,
		Success: err != nil || code < 400,
		Data:    v,
	}, nil
}
