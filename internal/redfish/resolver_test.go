package redfish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
)

// serveTree serves a map of path to JSON document, 404 for anything else.
func serveTree(tree map[string]any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := tree[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(doc)
	})
}

func members(paths ...string) map[string]any {
	refs := make([]map[string]string, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, map[string]string{"@odata.id": p})
	}
	return map[string]any{
		"Members":             refs,
		"Members@odata.count": len(refs),
	}
}

func singleSystemTree() map[string]any {
	return map[string]any{
		"/redfish/v1/": map[string]any{
			"Systems":  map[string]string{"@odata.id": "/redfish/v1/Systems"},
			"Chassis":  map[string]string{"@odata.id": "/redfish/v1/Chassis"},
			"Managers": map[string]string{"@odata.id": "/redfish/v1/Managers"},
		},
		"/redfish/v1/Systems":  members("/redfish/v1/Systems/1"),
		"/redfish/v1/Chassis":  members("/redfish/v1/Chassis/1"),
		"/redfish/v1/Managers": members("/redfish/v1/Managers/1"),
	}
}

func TestResolveSingleSystem(t *testing.T) {
	srv := httptest.NewTLSServer(serveTree(singleSystemTree()))
	defer srv.Close()

	c := testClient(t, srv)
	eps, err := Resolve(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, c.URL("/redfish/v1/Systems/1"), eps.System)
	assert.Equal(t, c.URL("/redfish/v1/Chassis/1"), eps.Chassis)
	assert.Equal(t, c.URL("/redfish/v1/Managers/1"), eps.Manager)
	assert.False(t, eps.HasTelemetryService())
}

func TestResolveTelemetryServiceOptional(t *testing.T) {
	tree := singleSystemTree()
	tree["/redfish/v1/"].(map[string]any)["TelemetryService"] =
		map[string]string{"@odata.id": "/redfish/v1/TelemetryService"}

	srv := httptest.NewTLSServer(serveTree(tree))
	defer srv.Close()

	c := testClient(t, srv)
	eps, err := Resolve(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, eps.HasTelemetryService())
	assert.Equal(t, c.URL("/redfish/v1/TelemetryService"), eps.TelemetryService)
}

func TestResolveRejectsMultiSystem(t *testing.T) {
	tree := singleSystemTree()
	tree["/redfish/v1/Systems"] = members("/redfish/v1/Systems/1", "/redfish/v1/Systems/2")

	srv := httptest.NewTLSServer(serveTree(tree))
	defer srv.Close()

	_, err := Resolve(context.Background(), testClient(t, srv))
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnsupportedTopology, errors.CodeOf(err))
}

func TestResolveTakesFirstChassis(t *testing.T) {
	tree := singleSystemTree()
	tree["/redfish/v1/Chassis"] = members("/redfish/v1/Chassis/1", "/redfish/v1/Chassis/2")

	srv := httptest.NewTLSServer(serveTree(tree))
	defer srv.Close()

	c := testClient(t, srv)
	eps, err := Resolve(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, c.URL("/redfish/v1/Chassis/1"), eps.Chassis)
}

func TestResolveMissingSystemsLink(t *testing.T) {
	tree := singleSystemTree()
	delete(tree["/redfish/v1/"].(map[string]any), "Systems")

	srv := httptest.NewTLSServer(serveTree(tree))
	defer srv.Close()

	_, err := Resolve(context.Background(), testClient(t, srv))
	require.Error(t, err)
	assert.Equal(t, errors.ErrMissingLink, errors.CodeOf(err))
}

func TestResolveEmptyCollection(t *testing.T) {
	tree := singleSystemTree()
	tree["/redfish/v1/Systems"] = members()

	srv := httptest.NewTLSServer(serveTree(tree))
	defer srv.Close()

	_, err := Resolve(context.Background(), testClient(t, srv))
	require.Error(t, err)
	assert.Equal(t, errors.ErrMissingLink, errors.CodeOf(err))
}

func TestResolveUnreachableCollection(t *testing.T) {
	tree := singleSystemTree()
	delete(tree, "/redfish/v1/Systems")

	srv := httptest.NewTLSServer(serveTree(tree))
	defer srv.Close()

	_, err := Resolve(context.Background(), testClient(t, srv))
	require.Error(t, err)
	assert.Equal(t, errors.ErrDiscovery, errors.CodeOf(err))
}
