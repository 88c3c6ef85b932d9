// Package client implements the device42.Client interface: one resource
// client per domain noun, all dispatching through shared generic object
// helpers onto the HTTP transport.
package client

import (
	"errors"

	"github.com/device42-community/d42-client/internal/http"
	"github.com/device42-community/d42-client/pkg/device42"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// Client implements the device42.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     device42.Logger
	pageSize   int

	// Resource clients
	buildings        device42.BuildingsClient
	rooms            device42.RoomsClient
	racks            device42.RacksClient
	devices          device42.DevicesClient
	subnets          device42.SubnetsClient
	ips              device42.IPAddressesClient
	customers        device42.CustomersClient
	appComponents    device42.AppComponentsClient
	serviceInstances device42.ServiceInstancesClient
	operatingSystems device42.OperatingSystemsClient
	customFields     device42.CustomFieldsClient
	queries          device42.QueriesClient
}

// New creates a new Device42 API client.
func New(config *device42.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, httpClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
		pageSize:   config.PageSize,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpClientOptions builds HTTP transport options from config.
func httpClientOptions(config *device42.Config) []http.Option {
	var opts []http.Option

	if config.Username != "" {
		opts = append(opts, http.WithBasicAuth(config.Username, config.Password))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		waitMax := config.RetryWaitMax
		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.SkipTLSVerify {
		opts = append(opts, http.WithTLSSkipVerify(true))
	}

	return opts
}

// initializeResourceClients wires up all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.buildings = NewBuildingsClient(c)
	c.rooms = NewRoomsClient(c)
	c.racks = NewRacksClient(c)
	c.devices = NewDevicesClient(c)
	c.subnets = NewSubnetsClient(c)
	c.ips = NewIPAddressesClient(c)
	c.customers = NewCustomersClient(c)
	c.appComponents = NewAppComponentsClient(c)
	c.serviceInstances = NewServiceInstancesClient(c)
	c.operatingSystems = NewOperatingSystemsClient(c)
	c.customFields = NewCustomFieldsClient(c)
	c.queries = NewQueriesClient(c)
}

// Buildings implements device42.Client.Buildings.
func (c *Client) Buildings() device42.BuildingsClient { return c.buildings }

// Rooms implements device42.Client.Rooms.
func (c *Client) Rooms() device42.RoomsClient { return c.rooms }

// Racks implements device42.Client.Racks.
func (c *Client) Racks() device42.RacksClient { return c.racks }

// Devices implements device42.Client.Devices.
func (c *Client) Devices() device42.DevicesClient { return c.devices }

// Subnets implements device42.Client.Subnets.
func (c *Client) Subnets() device42.SubnetsClient { return c.subnets }

// IPs implements device42.Client.IPs.
func (c *Client) IPs() device42.IPAddressesClient { return c.ips }

// Customers implements device42.Client.Customers.
func (c *Client) Customers() device42.CustomersClient { return c.customers }

// AppComponents implements device42.Client.AppComponents.
func (c *Client) AppComponents() device42.AppComponentsClient { return c.appComponents }

// ServiceInstances implements device42.Client.ServiceInstances.
func (c *Client) ServiceInstances() device42.ServiceInstancesClient { return c.serviceInstances }

// OperatingSystems implements device42.Client.OperatingSystems.
func (c *Client) OperatingSystems() device42.OperatingSystemsClient { return c.operatingSystems }

// CustomFields implements device42.Client.CustomFields.
func (c *Client) CustomFields() device42.CustomFieldsClient { return c.customFields }

// Queries implements device42.Client.Queries.
func (c *Client) Queries() device42.QueriesClient { return c.queries }
