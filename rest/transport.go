package rest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/noahmasoud/autodoc"
	"github.com/rs/zerolog"
)

// requestIDHeader carries a stable id for a logical request: retries of the
// same request reuse the id so the backend can correlate attempts.
const requestIDHeader = "X-Request-ID"

// RetryTransport retries a subset of failed requests with capped exponential
// backoff plus jitter, so calling code never implements retry logic itself.
//
// Retryable failures are transport-level errors (connection refused, reset),
// client-side timeouts, HTTP 429 and any 5xx. Everything else passes through
// on the first attempt with no delay and no retry logging. After the retry
// budget is exhausted the most recent error or response is surfaced
// unchanged. No state is shared across logical requests.
type RetryTransport struct {
	// Base executes the request. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// Policy controls attempt counts and delays. The zero value is replaced
	// by autodoc.DefaultRetryPolicy.
	Policy autodoc.RetryPolicy

	// Logger receives one line per retry attempt and one on final failure.
	Logger zerolog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	policy := t.Policy
	if policy.MaxRetries == 0 && policy.BaseDelay == 0 {
		policy = autodoc.DefaultRetryPolicy()
	}

	// Per-RoundTripper contract the request must not be mutated.
	req = req.Clone(req.Context())
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	// A body can only be replayed through GetBody. Buffer it once when the
	// caller didn't provide one.
	if req.Body != nil && req.GetBody == nil {
		buf, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buf)), nil
		}
		req.Body = io.NopCloser(bytes.NewReader(buf))
	}

	var (
		resp    *http.Response
		lastErr error
	)

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				req.Body = body
			}
		}

		resp, lastErr = base.RoundTrip(req)

		// A canceled or expired caller context is never retried.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return resp, lastErr
		}

		reason, retryable := retryReason(resp, lastErr)
		if !retryable {
			return resp, lastErr
		}

		if attempt >= policy.MaxRetries {
			t.Logger.Warn().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("request_id", req.Header.Get(requestIDHeader)).
				Int("attempts", attempt+1).
				Str("reason", reason).
				Msg("request failed, retries exhausted")
			return resp, lastErr
		}

		// The retried request needs a fresh connection slot.
		if resp != nil {
			io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
			resp.Body.Close()
		}

		delay := policy.Delay(attempt)
		t.Logger.Info().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get(requestIDHeader)).
			Dur("delay", delay).
			Str("reason", reason).
			Msg("retrying request")

		timer := time.NewTimer(delay)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}
}

// retryReason classifies a round-trip outcome. It returns a short reason
// string for logging and whether the outcome warrants a retry.
func retryReason(resp *http.Response, err error) (string, bool) {
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "timeout", true
		}
		// A canceled context is caught by the ctx check in the retry loop;
		// remaining transport errors are treated as retryable.
		return "connection error", true
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "rate limited", true
	case resp.StatusCode >= 500:
		return fmt.Sprintf("status %d", resp.StatusCode), true
	}
	return "", false
}

// AuthTransport attaches the stored bearer token to every request and clears
// the session on a genuine 401. The login endpoint is exempt: there a 401
// means bad credentials, not an expired session.
type AuthTransport struct {
	// Base executes the request. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// Tokens supplies the bearer token. Requests go out unauthenticated when
	// no token is stored.
	Tokens autodoc.TokenStore

	// LoginPath identifies the login endpoint. Defaults to "/auth/login".
	LoginPath string

	// OnUnauthenticated is invoked after the session has been cleared in
	// response to a 401. Optional.
	OnUnauthenticated func()
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	loginPath := t.LoginPath
	if loginPath == "" {
		loginPath = "/auth/login"
	}

	req = req.Clone(req.Context())
	if t.Tokens != nil {
		if token, err := t.Tokens.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusUnauthorized && req.URL.Path != loginPath {
		if t.Tokens != nil {
			t.Tokens.Clear()
		}
		if t.OnUnauthenticated != nil {
			t.OnUnauthenticated()
		}
	}

	return resp, nil
}
