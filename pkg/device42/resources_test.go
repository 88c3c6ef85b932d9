package device42_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device42-community/d42-client/pkg/device42"
)

func TestBuilding_Values(t *testing.T) {
	t.Parallel()

	building := &device42.Building{
		Name:    "DC-West",
		Address: "1 Infinite Loop",
	}

	values := building.Values()
	assert.Equal(t, "DC-West", values.Get("name"))
	assert.Equal(t, "1 Infinite Loop", values.Get("address"))

	// Unset optional attributes must stay absent, not encode as "".
	_, ok := values["notes"]
	assert.False(t, ok)
}

func TestRack_Values(t *testing.T) {
	t.Parallel()

	rack := &device42.Rack{
		Name:     "R-01",
		Size:     "42",
		Room:     "Cage 3",
		Building: "DC-West",
	}

	values := rack.Values()
	assert.Equal(t, "R-01", values.Get("name"))
	assert.Equal(t, "42", values.Get("size"))
	assert.Equal(t, "Cage 3", values.Get("room"))
	assert.Equal(t, "DC-West", values.Get("building"))
}

func TestIPAddress_Values(t *testing.T) {
	t.Parallel()

	ip := &device42.IPAddress{
		Address: netip.MustParseAddr("10.42.0.17"),
		Device:  "db-prod-01",
		Type:    "static",
	}

	values := ip.Values()
	assert.Equal(t, "10.42.0.17", values.Get("ipaddress"))
	assert.Equal(t, "db-prod-01", values.Get("device"))
	assert.Equal(t, "static", values.Get("type"))
}

func TestIPAddress_Values_ZeroAddress(t *testing.T) {
	t.Parallel()

	values := (&device42.IPAddress{Label: "mgmt"}).Values()

	_, ok := values["ipaddress"]
	assert.False(t, ok)
	assert.Equal(t, "mgmt", values.Get("label"))
}

func TestCustomer_Values_Rename(t *testing.T) {
	t.Parallel()

	customer := &device42.Customer{Name: "Acme", NewName: "Acme Holdings"}

	values := customer.Values()
	assert.Equal(t, "Acme", values.Get("name"))
	assert.Equal(t, "Acme Holdings", values.Get("new_name"))
}

func TestAppComponent_Values(t *testing.T) {
	t.Parallel()

	component := &device42.AppComponent{
		Name:      "billing-api",
		Device:    "app-prod-03",
		DependsOn: "postgres-main, redis-cache",
	}

	values := component.Values()
	assert.Equal(t, "billing-api", values.Get("name"))
	assert.Equal(t, "app-prod-03", values.Get("device"))
	assert.Equal(t, "postgres-main, redis-cache", values.Get("depends_on"))
}

func TestCustomField_Values(t *testing.T) {
	t.Parallel()

	field := &device42.CustomField{ID: 204, Key: "environment", Value: "staging"}

	values := field.Values()
	assert.Equal(t, "204", values.Get("id"))
	assert.Equal(t, "environment", values.Get("key"))
	assert.Equal(t, "staging", values.Get("value"))
}

func TestDeviceFilter_Values(t *testing.T) {
	t.Parallel()

	filter := &device42.DeviceFilter{Type: "physical", OS: "linux"}

	values := filter.Values()
	assert.Equal(t, "physical", values.Get("type"))
	assert.Equal(t, "linux", values.Get("os"))
	require.Len(t, values, 2)
}
