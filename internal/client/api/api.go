// Package api is the HTTP client core and the domain API modules of the
// OnCall client: one configured client instance that attaches the bearer
// token to every outgoing request, plus typed functions per backend resource
// that normalize response shapes and errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oncall-app/oncall-cli/internal/common"
	"github.com/oncall-app/oncall-cli/internal/logging"
)

// SessionStore is the token lifecycle surface the HTTP core needs: read the
// token for outgoing requests, persist it on login, drop it on logout or 401.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Client is the shared HTTP client core. One instance serves all domain
// modules; concurrency is delegated entirely to callers, the client itself
// performs no queueing, retrying, or cancellation beyond honoring ctx.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionStore
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, session SessionStore, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// serverFailure is the error shape backends attach to non-2xx responses.
type serverFailure struct {
	Message string `json:"message"`
	Reason  string `json:"error"`
}

// do performs one request against the backend.
//
// Request side: a JSON body when body is non-nil, Authorization: Bearer when
// a token is stored, and an X-Request-Id for log correlation.
//
// Response side: 204 yields no payload; any 401 clears the session store
// before the error is returned, regardless of endpoint; other non-2xx
// statuses become an *Error carrying the server's message/error fields and
// the operation fallback. A 2xx payload is decoded into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "req_id", reqID, "error", err)
		return &Error{Transport: err.Error(), Fallback: fallback, sentinel: common.ErrUnavailable}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "read response failed", "method", method, "path", path, "req_id", reqID, "error", err)
		return &Error{Transport: err.Error(), Fallback: fallback, sentinel: common.ErrUnavailable}
	}

	c.log.Info(ctx, "request", "method", method, "path", path, "req_id", reqID,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Anything outside 2xx is a failure; redirects are followed by the
	// transport, so a 3xx reaching this point is an error too.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode, Fallback: fallback}

		var sf serverFailure
		if json.Unmarshal(data, &sf) == nil {
			apiErr.Message = sf.Message
			apiErr.Reason = sf.Reason
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			// Global invalidation policy: the session ends on any 401, no
			// matter which endpoint produced it. No automatic re-auth.
			if err := c.session.Clear(ctx); err != nil {
				c.log.Error(ctx, "failed to clear session after 401", "error", err)
			}
			apiErr.sentinel = common.ErrUnauthorized
		case http.StatusNotFound:
			apiErr.sentinel = common.ErrNotFound
		}

		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
