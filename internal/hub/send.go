package hub

import (
	"context"
	"errors"
	"net/http"
)

// Send dispatches a sandbox message. A transport failure is returned as
// an error; a business failure comes back as a SendResult with Success
// false and the backend's error text verbatim, so the caller can render
// it in the response panel.
func (c *Client) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if req.Provider == "" || req.Recipient == "" || req.Message == "" {
		return nil, errors.New("provider, recipient and message are required")
	}

	var result SendResult

	err := c.do(ctx, http.MethodPost, pathSend, nil, req, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &SendResult{Success: false, Error: apiErr.Message}, nil
		}

		return nil, err
	}

	return &result, nil
}
