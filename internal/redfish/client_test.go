package redfish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
)

func testClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return NewClient(Config{
		Host:     u.Hostname(),
		Username: "admin",
		Password: "secret",
		Port:     port,
	})
}

func TestGetJSONDecodesBody(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)

		json.NewEncoder(w).Encode(map[string]string{"PowerState": "On"})
	}))
	defer srv.Close()

	c := testClient(t, srv)

	var out struct {
		PowerState string `json:"PowerState"`
	}
	err := c.GetJSON(context.Background(), "/redfish/v1/Systems/1", &out)
	require.NoError(t, err)
	assert.Equal(t, "On", out.PowerState)
}

func TestUnauthorizedMapsToAuthenticationError(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var out map[string]any
	err := testClient(t, srv).GetJSON(context.Background(), "/redfish/v1/", &out)
	require.Error(t, err)
	assert.Equal(t, errors.ErrAuthentication, errors.CodeOf(err))
}

func TestServerErrorMapsToBadStatus(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out map[string]any
	err := testClient(t, srv).GetJSON(context.Background(), "/redfish/v1/", &out)
	require.Error(t, err)
	assert.Equal(t, errors.ErrBadStatus, errors.CodeOf(err))
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	var out map[string]any
	err := testClient(t, srv).GetJSON(context.Background(), "/redfish/v1/", &out)
	require.Error(t, err)
	assert.Equal(t, errors.ErrMalformedBody, errors.CodeOf(err))
}

func TestPatchSendsIfMatchWildcard(t *testing.T) {
	var (
		gotMethod  string
		gotIfMatch string
		gotBody    map[string]string
	)

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotIfMatch = r.Header.Get("If-Match")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := testClient(t, srv).PatchJSON(context.Background(), "/redfish/v1/Systems/1",
		map[string]string{"IndicatorLED": "Blinking"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "*", gotIfMatch)
	assert.Equal(t, "Blinking", gotBody["IndicatorLED"])
}

func TestURLResolution(t *testing.T) {
	c := NewClient(Config{Host: "bmc.example.com"})

	assert.Equal(t, "https://bmc.example.com:443/redfish/v1/", c.URL("/redfish/v1/"))
	assert.Equal(t, "https://other:8443/x", c.URL("https://other:8443/x"))
}

func TestConnectionFailureMapsToTransport(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	c := testClient(t, srv)
	srv.Close()

	var out map[string]any
	err := c.GetJSON(context.Background(), "/redfish/v1/", &out)
	require.Error(t, err)
	assert.Equal(t, errors.ErrTransport, errors.CodeOf(err))
}
