package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"storefront-client/internal/core/config"
	"storefront-client/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	logger.Init("development", "debug")

	client, err := New(config.APIConfig{
		BaseURL:        baseURL,
		SessionToken:   "tok_test",
		TimeoutSeconds: 2,
	})
	require.NoError(t, err)
	return client
}

// TestClient_Get_AttachesCredentials verifies that every request carries the
// session token and a correlation ID.
func TestClient_Get_AttachesCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok_test", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("isDeleted"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	var out struct {
		OK bool `json:"ok"`
	}
	query := url.Values{}
	query.Set("isDeleted", "false")

	err := client.Get(context.Background(), "/products", query, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

// TestClient_Post_SendsJSONBody verifies body encoding and decoding.
func TestClient_Post_SendsJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "b1", "name": "Acme"}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err := client.Post(context.Background(), "/brands", map[string]string{"name": "Acme"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "b1", out.ID)
	assert.Equal(t, "Acme", out.Name)
}

// TestClient_ApplicationError verifies that non-2xx responses surface the
// server-provided message verbatim.
func TestClient_ApplicationError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "insufficient stock"}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	err := client.Post(context.Background(), "/cart", map[string]int{"quantity": 99}, nil)
	require.Error(t, err)

	assert.Equal(t, KindApplication, KindOf(err))
	assert.Contains(t, err.Error(), "insufficient stock")
}

// TestClient_Unauthenticated verifies 401 classification.
func TestClient_Unauthenticated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	err := client.Get(context.Background(), "/users/u1", nil, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthenticated(err))
}

// TestClient_TransportError verifies network failures are classified as transport.
func TestClient_TransportError(t *testing.T) {
	client := newTestClient(t, "http://invalid-url-that-does-not-exist.local")

	err := client.Get(context.Background(), "/products", nil, nil)
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

// TestClient_MissingBaseURL verifies the config fast-fail path.
func TestClient_MissingBaseURL(t *testing.T) {
	client, err := New(config.APIConfig{})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Equal(t, KindConfig, KindOf(err))
}
