package bmc

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
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// mockBMC is a minimal single-system service that records writes.
type mockBMC struct {
	system   map[string]any
	patches  []map[string]any
	actions  []map[string]any
	lastPath string
}

func newMockBMC() *mockBMC {
	return &mockBMC{
		system: map[string]any{
			"Id":           "1",
			"PowerState":   "On",
			"IndicatorLED": "Off",
			"Status":       map[string]string{"Health": "OK", "State": "Enabled"},
			"Boot": map[string]any{
				"BootSourceOverrideEnabled": "Disabled",
				"BootSourceOverrideTarget":  "None",
				"BootSourceOverrideMode":    "UEFI",
				"BootSourceOverrideTarget@Redfish.AllowableValues": []string{
					"None", "Pxe", "Hdd", "Cd", "BiosSetup",
				},
			},
			"Actions": map[string]any{
				"#ComputerSystem.Reset": map[string]string{
					"target": "/redfish/v1/Systems/1/Actions/ComputerSystem.Reset",
				},
			},
		},
	}
}

func (m *mockBMC) handler() http.Handler {
	collection := func(path string) map[string]any {
		return map[string]any{
			"Members":             []map[string]string{{"@odata.id": path}},
			"Members@odata.count": 1,
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			m.actions = append(m.actions, body)
			m.lastPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPatch:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			m.patches = append(m.patches, body)
			m.lastPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			var doc any
			switch r.URL.Path {
			case "/redfish/v1/":
				doc = map[string]any{
					"Systems":  map[string]string{"@odata.id": "/redfish/v1/Systems"},
					"Chassis":  map[string]string{"@odata.id": "/redfish/v1/Chassis"},
					"Managers": map[string]string{"@odata.id": "/redfish/v1/Managers"},
				}
			case "/redfish/v1/Systems":
				doc = collection("/redfish/v1/Systems/1")
			case "/redfish/v1/Chassis":
				doc = collection("/redfish/v1/Chassis/1")
			case "/redfish/v1/Managers":
				doc = collection("/redfish/v1/Managers/1")
			case "/redfish/v1/Systems/1":
				doc = m.system
			default:
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(doc)
		}
	})
}

func testBMC(t *testing.T) (*BMC, *mockBMC) {
	t.Helper()

	mock := newMockBMC()
	srv := httptest.NewTLSServer(mock.handler())
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	client := redfish.NewClient(redfish.Config{
		Host:     u.Hostname(),
		Username: "admin",
		Password: "secret",
		Port:     port,
	})

	return New(client), mock
}

func TestGetPowerState(t *testing.T) {
	b, _ := testBMC(t)

	state, err := b.GetPowerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "On", state)
}

func TestSetPowerStatePostsResetAction(t *testing.T) {
	b, mock := testBMC(t)

	require.NoError(t, b.SetPowerState(context.Background(), "GracefulShutdown"))
	require.Len(t, mock.actions, 1)
	assert.Equal(t, "GracefulShutdown", mock.actions[0]["ResetType"])
	assert.Equal(t, "/redfish/v1/Systems/1/Actions/ComputerSystem.Reset", mock.lastPath)
}

func TestSetPowerStateRejectsUnknownType(t *testing.T) {
	b, mock := testBMC(t)

	err := b.SetPowerState(context.Background(), "Reboot")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
	assert.Empty(t, mock.actions, "invalid action must not reach the BMC")
}

func TestAvailablePowerActionsFallsBackToSchema(t *testing.T) {
	b, _ := testBMC(t)

	actions, err := b.AvailablePowerActions(context.Background())
	require.NoError(t, err)
	assert.Contains(t, actions, "On")
	assert.Contains(t, actions, "ForceOff")
}

func TestSetIndicatorLED(t *testing.T) {
	b, mock := testBMC(t)

	require.NoError(t, b.SetIndicatorLED(context.Background(), "Blinking"))
	require.Len(t, mock.patches, 1)
	assert.Equal(t, "Blinking", mock.patches[0]["IndicatorLED"])
	assert.Equal(t, "/redfish/v1/Systems/1", mock.lastPath)

	err := b.SetIndicatorLED(context.Background(), "Flashing")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
}

func TestSetPXEOnce(t *testing.T) {
	b, mock := testBMC(t)

	require.NoError(t, b.SetPXEOnce(context.Background(), "UEFI"))
	require.Len(t, mock.patches, 1)

	boot, ok := mock.patches[0]["Boot"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Once", boot["BootSourceOverrideEnabled"])
	assert.Equal(t, "Pxe", boot["BootSourceOverrideTarget"])
	assert.Equal(t, "UEFI", boot["BootSourceOverrideMode"])
}

func TestDisableBootOverrideOmitsTarget(t *testing.T) {
	b, mock := testBMC(t)

	require.NoError(t, b.DisableBootOverride(context.Background()))
	require.Len(t, mock.patches, 1)

	boot, ok := mock.patches[0]["Boot"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Disabled", boot["BootSourceOverrideEnabled"])
	_, hasTarget := boot["BootSourceOverrideTarget"]
	assert.False(t, hasTarget)
}

func TestSetBootTargetValidatesAgainstAllowableValues(t *testing.T) {
	b, mock := testBMC(t)

	err := b.SetBootTarget(context.Background(), "Usb", "Once", "")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidArgument, errors.CodeOf(err))
	assert.Empty(t, mock.patches)
}

func TestGetBootConfig(t *testing.T) {
	b, _ := testBMC(t)

	boot, err := b.GetBootConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Disabled", boot.Enabled)
	assert.Equal(t, "None", boot.Target)
	assert.Equal(t, "UEFI", boot.Mode)
}

func TestStorageInventoryNoControllers(t *testing.T) {
	b, _ := testBMC(t)

	inventory, err := b.StorageInventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, inventory, "a system without a Storage link has no inventory")
}

func TestAvailableBootTargets(t *testing.T) {
	b, _ := testBMC(t)

	targets, err := b.AvailableBootTargets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"None", "Pxe", "Hdd", "Cd", "BiosSetup"}, targets)
}
