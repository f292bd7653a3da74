// Package api contains the REST clients for the three marketplace
// backends (auth, product, offer). Each client has a fixed base URL; the
// product and offer clients share a bearer-credential holder and attach
// the credential to every request that has one.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// baseClient is the transport shared by the concrete clients.
type baseClient struct {
	baseURL    string
	tokens     *TokenHolder
	httpClient *http.Client
}

func newBaseClient(baseURL string, tokens *TokenHolder) *baseClient {
	return &baseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// requireToken fails fast with ErrAuthRequired when no credential is held.
// Used by operations that the server would reject unauthenticated anyway,
// so the network round trip is skipped entirely.
func (c *baseClient) requireToken() error {
	if c.tokens == nil || !c.tokens.Present() {
		return ErrAuthRequired
	}
	return nil
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (which may be nil). The bearer header is attached iff
// a non-empty credential is held at call time.
//
// Error mapping: transport failure → *NetworkError; 404 → ErrNotFound;
// any other non-2xx, or a 2xx body with success:false, → *APIError
// carrying the server-provided message.
func (c *baseClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Get(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelopeMessage(data)}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.seen && !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return err
		}
	}
	return nil
}

// envelope mirrors the backend's {success, message} response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	seen    bool
}

func (e *envelope) UnmarshalJSON(data []byte) error {
	type plain struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Success != nil {
		e.seen = true
		e.Success = *p.Success
	}
	e.Message = p.Message
	return nil
}

func envelopeMessage(data []byte) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	return env.Message
}
