package geocode

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCoordinatesFromAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		assert.Equal(t, "Domkloster 4", r.URL.Query().Get("address"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 50.9413, "lng": 6.9583}}}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ll, ok, err := c.CoordinatesFromAddress("Domkloster 4", "secret")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 50.9413, ll.Lat, 1e-9)
	assert.InDelta(t, 6.9583, ll.Lng, 1e-9)
}

func TestClientZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, ok, err := c.CoordinatesFromAddress("nowhere at all", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.CoordinatesFromAddress("anywhere", "")
	assert.Error(t, err)
}
