package hub

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultLogLimit is the log page size used when the caller passes a
// non-positive limit.
const DefaultLogLimit = 50

// ListLogs fetches the most recent dispatch log entries.
func (c *Client) ListLogs(ctx context.Context, limit int) ([]LogEntry, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var result struct {
		envelope
		Messages []LogEntry `json:"messages"`
	}

	if err := c.do(ctx, http.MethodGet, pathLogs, query, nil, &result); err != nil {
		return nil, err
	}

	return result.Messages, nil
}

// RetryMessage asks the hub to re-dispatch a message. The call is issued
// for whatever message ID the caller has; there is no local existence or
// status check, the backend decides. Retry budgets and backoff are owned
// by the backend too.
func (c *Client) RetryMessage(ctx context.Context, messageID string) error {
	if messageID == "" {
		return errors.New("message id is required")
	}

	body := struct {
		MessageID string `json:"message_id"`
	}{MessageID: messageID}

	return c.do(ctx, http.MethodPost, pathRetry, nil, body, nil)
}
