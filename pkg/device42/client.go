package device42

import (
	"context"
	"encoding/json"
	"time"
)

// FacilityClients provides access to physical-infrastructure resource clients.
type FacilityClients interface {
	Buildings() BuildingsClient
	Rooms() RoomsClient
	Racks() RacksClient
	Devices() DevicesClient
}

// NetworkClients provides access to network resource clients.
type NetworkClients interface {
	Subnets() SubnetsClient
	IPs() IPAddressesClient
}

// OrganizationClients provides access to business-object resource clients.
type OrganizationClients interface {
	Customers() CustomersClient
	AppComponents() AppComponentsClient
	ServiceInstances() ServiceInstancesClient
	OperatingSystems() OperatingSystemsClient
}

// MetadataClients provides access to custom fields and saved queries.
type MetadataClients interface {
	CustomFields() CustomFieldsClient
	Queries() QueriesClient
}

// Client is the typed Device42 API client.
type Client interface {
	FacilityClients
	NetworkClients
	OrganizationClients
	MetadataClients
}

// BuildingsClient manages buildings.
type BuildingsClient interface {
	List(ctx context.Context, filter *BuildingFilter) *RecordIterator
	Create(ctx context.Context, building *Building) (*MutationResult, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

// RoomsClient manages rooms.
type RoomsClient interface {
	List(ctx context.Context, filter *RoomFilter) *RecordIterator
	Get(ctx context.Context, id int) (Record, error)
	Create(ctx context.Context, room *Room) (*MutationResult, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

// RacksClient manages racks.
type RacksClient interface {
	List(ctx context.Context, filter *RackFilter) *RecordIterator
	Get(ctx context.Context, id int) (Record, error)
	Create(ctx context.Context, rack *Rack) (*MutationResult, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

// DevicesClient reads devices.
type DevicesClient interface {
	List(ctx context.Context, filter *DeviceFilter) *RecordIterator
	// ListAll walks /devices/all, which returns more detail than the plain
	// listing. includeCols optionally limits the returned columns
	// (comma-separated).
	ListAll(ctx context.Context, includeCols string) *RecordIterator
	Get(ctx context.Context, id int) (Record, error)
	// ListByRef finds devices through another object's id: a customer,
	// name, serial, or asset reference.
	ListByRef(ctx context.Context, refType DeviceRefType, id int) *RecordIterator
}

// SubnetsClient manages subnets.
type SubnetsClient interface {
	Create(ctx context.Context, subnet *Subnet) (*MutationResult, error)
}

// IPAddressesClient manages IP addresses.
type IPAddressesClient interface {
	Create(ctx context.Context, ip *IPAddress) (*MutationResult, error)
}

// CustomersClient manages customers.
type CustomersClient interface {
	Create(ctx context.Context, customer *Customer) (*MutationResult, error)
}

// AppComponentsClient manages application components.
type AppComponentsClient interface {
	List(ctx context.Context) *RecordIterator
	Create(ctx context.Context, component *AppComponent) (*MutationResult, error)
}

// ServiceInstancesClient reads service instances (API v2.0).
type ServiceInstancesClient interface {
	List(ctx context.Context) *RecordIterator
}

// OperatingSystemsClient reads operating systems.
type OperatingSystemsClient interface {
	List(ctx context.Context) *RecordIterator
}

// CustomFieldsClient updates custom fields on other objects.
type CustomFieldsClient interface {
	// Update sets one custom key/value pair on the object identified by
	// field.ID. resource names the object family, e.g. "serviceinstance".
	Update(ctx context.Context, resource string, field *CustomField) (*MutationResult, error)
}

// QueriesClient runs DOQL saved queries: user-authored, server-side read
// queries exposed under /services/data. Their result shape is whatever the
// query author selected, so it passes through untyped.
type QueriesClient interface {
	Run(ctx context.Context, queryName string) (json.RawMessage, error)
}

// Config represents client configuration for building a device42.Client.
//
// Authentication is HTTP basic auth against the appliance account. Per-call
// timeouts should generally be controlled via the context passed to client
// methods; HTTPTimeout caps a single round-trip.
//
// The client issues no retries of its own: a transport failure propagates
// immediately. RetryMax and the wait bounds exist only to opt the underlying
// transport into retrying connection-level failures; classified API errors
// are never retried.
type Config struct {
	// APIEndpoint is the appliance base URL, e.g. "https://d42.example.com".
	// d42client.New trims a trailing slash and assumes https when no scheme
	// is present.
	APIEndpoint string

	// Username and Password authenticate every request via basic auth.
	Username string
	Password string

	// HTTPTimeout caps one request round-trip. Zero means the default.
	HTTPTimeout time.Duration

	// RetryMax enables transport-level retries when positive. Zero keeps
	// the fail-fast behavior.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// PageSize overrides the default page size for paginated listings.
	PageSize int

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is the optional structured logger used by the HTTP layer and
	// pagination progress traces.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// SkipTLSVerify disables certificate verification. Device42 appliances
	// commonly run self-signed certificates; prefer installing the CA.
	SkipTLSVerify bool
}
