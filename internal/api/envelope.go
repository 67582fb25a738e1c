package api

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/prepstock/prepstock-server/internal/http/response"
)

// EnvelopeTransformer wraps huma response bodies in the same envelope the
// plain chi handlers emit, so every endpoint shares one response contract.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	// Errors carry their own envelope fields.
	if apiErr, ok := v.(*APIError); ok {
		return response.Envelope{
			Success: false,
			Error:   apiErr.Message,
		}, nil
	}

	// Each response passes through exactly once.
	if _, ok := v.(response.Envelope); ok {
		return v, nil
	}

	success := len(status) > 0 && status[0] == '2'
	return response.Envelope{
		Success: success,
		Data:    v,
	}, nil
}
