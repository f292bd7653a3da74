package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_BearerAttachedOnlyWhenHeld(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	tokens := NewTokenHolder()
	c := newBaseClient(srv.URL, tokens)

	require.NoError(t, c.doJSON(context.Background(), http.MethodGet, "/x", nil, nil))
	assert.Empty(t, gotAuth)

	tokens.Set("tok-123")
	require.NoError(t, c.doJSON(context.Background(), http.MethodGet, "/x", nil, nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// A credential change between calls is picked up at call time.
	tokens.Clear()
	require.NoError(t, c.doJSON(context.Background(), http.MethodGet, "/x", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDoJSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"product not found"}`))
	}))
	defer srv.Close()

	c := newBaseClient(srv.URL, nil)
	err := c.doJSON(context.Background(), http.MethodGet, "/products/missing", nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDoJSON_ServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"an account with this email already exists"}`))
	}))
	defer srv.Close()

	c := newBaseClient(srv.URL, nil)
	err := c.doJSON(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "an account with this email already exists", apiErr.Message)
}

func TestDoJSON_EnvelopeFailureOn2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"invalid verification code"}`))
	}))
	defer srv.Close()

	c := newBaseClient(srv.URL, nil)
	err := c.doJSON(context.Background(), http.MethodPost, "/auth/verify-email", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid verification code", apiErr.Message)
}

func TestDoJSON_BodyWithoutEnvelopeIsNotAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[1,2,3]}`))
	}))
	defer srv.Close()

	c := newBaseClient(srv.URL, nil)
	var out struct {
		Data []int `json:"data"`
	}
	require.NoError(t, c.doJSON(context.Background(), http.MethodGet, "/x", nil, &out))
	assert.Equal(t, []int{1, 2, 3}, out.Data)
}

func TestDoJSON_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newBaseClient(srv.URL, nil)
	err := c.doJSON(context.Background(), http.MethodGet, "/x", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.NotNil(t, errors.Unwrap(netErr))
}

func TestRequireToken(t *testing.T) {
	tokens := NewTokenHolder()
	c := newBaseClient("http://unused", tokens)

	require.ErrorIs(t, c.requireToken(), ErrAuthRequired)

	tokens.Set("tok")
	require.NoError(t, c.requireToken())
}
