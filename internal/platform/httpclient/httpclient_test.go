package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"animals-safety/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/animals", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "animalctl/test", r.Header.Get("User-Agent"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	defer ts.Close()

	c, err := httpclient.New(httpclient.Options{BaseURL: ts.URL + "/", UserAgent: "animalctl/test"})
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "animals", map[string]string{"name": "Milou"}, &out))
	assert.Equal(t, "Milou", out["echo"])
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer ts.Close()

	c, err := httpclient.New(httpclient.Options{})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, ts.URL+"/x", nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpclient.StatusOf(err))

	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "nope", he.Body)
}

func TestDoJSON_RelativeWithoutBaseURL(t *testing.T) {
	c, err := httpclient.New(httpclient.Options{})
	require.NoError(t, err)
	assert.Error(t, c.DoJSON(context.Background(), http.MethodGet, "/animals", nil, nil))
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := httpclient.New(httpclient.Options{BaseURL: "::bad"})
	assert.Error(t, err)
}

func TestDoJSON_NilClient(t *testing.T) {
	var c *httpclient.Client
	assert.ErrorIs(t, c.DoJSON(context.Background(), http.MethodGet, "http://x", nil, nil), httpclient.ErrNilClient)
}
