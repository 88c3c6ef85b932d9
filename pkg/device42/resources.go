package device42

import (
	"net/netip"
	"net/url"
	"strconv"
)

// The Device42 write API is form-encoded: every create/update type renders
// itself to url.Values. Empty fields are omitted, matching how absent form
// keys leave the stored attribute untouched.

// Building represents a building record for create/update calls.
type Building struct {
	Name         string `json:"name"                   yaml:"name"`
	Address      string `json:"address"                yaml:"address"`
	ContactName  string `json:"contact_name,omitempty" yaml:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty" yaml:"contact_phone,omitempty"`
	Notes        string `json:"notes,omitempty"        yaml:"notes,omitempty"`
	// Groups scopes multitenancy admin-group access, e.g. "Prod_East:no,Corp:yes".
	Groups    string `json:"groups,omitempty"    yaml:"groups,omitempty"`
	Longitude string `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Latitude  string `json:"latitude,omitempty"  yaml:"latitude,omitempty"`
	// BuildingID selects an existing building to update; zero creates by name.
	BuildingID int `json:"building_id,omitempty" yaml:"building_id,omitempty"`
}

// Values renders the building as form parameters.
func (b *Building) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", b.Name)
	setNonEmpty(values, "address", b.Address)
	setNonEmpty(values, "contact_name", b.ContactName)
	setNonEmpty(values, "contact_phone", b.ContactPhone)
	setNonEmpty(values, "notes", b.Notes)
	setNonEmpty(values, "groups", b.Groups)
	setNonEmpty(values, "longitude", b.Longitude)
	setNonEmpty(values, "latitude", b.Latitude)
	setPositive(values, "building_id", b.BuildingID)

	return values
}

// BuildingFilter narrows building listings.
type BuildingFilter struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Values renders the filter as query parameters.
func (f *BuildingFilter) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", f.Name)

	return values
}

// Room represents a room record for create/update calls.
type Room struct {
	Name         string `json:"name"                    yaml:"name"`
	BuildingID   int    `json:"building_id,omitempty"   yaml:"building_id,omitempty"`
	ContactName  string `json:"contact_name,omitempty"  yaml:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty" yaml:"contact_phone,omitempty"`
	Notes        string `json:"notes,omitempty"         yaml:"notes,omitempty"`
	Groups       string `json:"groups,omitempty"        yaml:"groups,omitempty"`
	Longitude    string `json:"longitude,omitempty"     yaml:"longitude,omitempty"`
	Latitude     string `json:"latitude,omitempty"      yaml:"latitude,omitempty"`
	// Grid numbering is "numeric" or "alphabetic"; the server default is numeric.
	HorizontalGridNumbering string `json:"horizontal_grid_numbering,omitempty" yaml:"horizontal_grid_numbering,omitempty"`
	VerticalGridNumbering   string `json:"vertical_grid_numbering,omitempty"   yaml:"vertical_grid_numbering,omitempty"`
	HorizontalGridStart     string `json:"horizontal_grid_start,omitempty"     yaml:"horizontal_grid_start,omitempty"`
	VerticalGridStart       string `json:"vertical_grid_start,omitempty"       yaml:"vertical_grid_start,omitempty"`
	// UOM is the unit of measurement, "m" or "in".
	UOM               string `json:"uom,omitempty"                 yaml:"uom,omitempty"`
	Height            string `json:"height,omitempty"              yaml:"height,omitempty"`
	GridRows          string `json:"grid_rows,omitempty"           yaml:"grid_rows,omitempty"`
	GridCols          string `json:"grid_cols,omitempty"           yaml:"grid_cols,omitempty"`
	RaisedFloor       string `json:"raised_floor,omitempty"        yaml:"raised_floor,omitempty"`
	RaisedFloorHeight string `json:"raised_floor_height,omitempty" yaml:"raised_floor_height,omitempty"`
	ReverseXAxis      string `json:"reverse_xaxis,omitempty"       yaml:"reverse_xaxis,omitempty"`
	ReverseYAxis      string `json:"reverse_yaxis,omitempty"       yaml:"reverse_yaxis,omitempty"`
	// RoomID selects an existing room to update; zero creates by name.
	RoomID int `json:"room_id,omitempty" yaml:"room_id,omitempty"`
}

// Values renders the room as form parameters.
func (r *Room) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", r.Name)
	setPositive(values, "building_id", r.BuildingID)
	setNonEmpty(values, "contact_name", r.ContactName)
	setNonEmpty(values, "contact_phone", r.ContactPhone)
	setNonEmpty(values, "notes", r.Notes)
	setNonEmpty(values, "groups", r.Groups)
	setNonEmpty(values, "longitude", r.Longitude)
	setNonEmpty(values, "latitude", r.Latitude)
	setNonEmpty(values, "horizontal_grid_numbering", r.HorizontalGridNumbering)
	setNonEmpty(values, "vertical_grid_numbering", r.VerticalGridNumbering)
	setNonEmpty(values, "horizontal_grid_start", r.HorizontalGridStart)
	setNonEmpty(values, "vertical_grid_start", r.VerticalGridStart)
	setNonEmpty(values, "uom", r.UOM)
	setNonEmpty(values, "height", r.Height)
	setNonEmpty(values, "grid_rows", r.GridRows)
	setNonEmpty(values, "grid_cols", r.GridCols)
	setNonEmpty(values, "raised_floor", r.RaisedFloor)
	setNonEmpty(values, "raised_floor_height", r.RaisedFloorHeight)
	setNonEmpty(values, "reverse_xaxis", r.ReverseXAxis)
	setNonEmpty(values, "reverse_yaxis", r.ReverseYAxis)
	setPositive(values, "room_id", r.RoomID)

	return values
}

// RoomFilter narrows room listings.
type RoomFilter struct {
	Name       string `json:"name,omitempty"        yaml:"name,omitempty"`
	BuildingID string `json:"building_id,omitempty" yaml:"building_id,omitempty"`
	Building   string `json:"building,omitempty"    yaml:"building,omitempty"`
}

// Values renders the filter as query parameters.
func (f *RoomFilter) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", f.Name)
	setNonEmpty(values, "building_id", f.BuildingID)
	setNonEmpty(values, "building", f.Building)

	return values
}

// Rack represents a rack record for create/update calls.
type Rack struct {
	Name     string `json:"name"               yaml:"name"`
	Size     string `json:"size,omitempty"     yaml:"size,omitempty"`
	Room     string `json:"room,omitempty"     yaml:"room,omitempty"`
	Building string `json:"building,omitempty" yaml:"building,omitempty"`
	RoomID   int    `json:"room_id,omitempty"  yaml:"room_id,omitempty"`
	// NumberingStartFromBottom is "yes" or "no".
	NumberingStartFromBottom string `json:"numbering_start_from_bottom,omitempty" yaml:"numbering_start_from_bottom,omitempty"`
	Notes                    string `json:"notes,omitempty"                       yaml:"notes,omitempty"`
	RackID                   int    `json:"rack_id,omitempty"                     yaml:"rack_id,omitempty"`
}

// Values renders the rack as form parameters.
func (r *Rack) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", r.Name)
	setNonEmpty(values, "size", r.Size)
	setNonEmpty(values, "room", r.Room)
	setNonEmpty(values, "building", r.Building)
	setPositive(values, "room_id", r.RoomID)
	setNonEmpty(values, "numbering_start_from_bottom", r.NumberingStartFromBottom)
	setNonEmpty(values, "notes", r.Notes)
	setPositive(values, "rack_id", r.RackID)

	return values
}

// RackFilter narrows rack listings.
type RackFilter struct {
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Size     string `json:"size,omitempty"     yaml:"size,omitempty"`
	Room     string `json:"room,omitempty"     yaml:"room,omitempty"`
	Building string `json:"building,omitempty" yaml:"building,omitempty"`
	RoomID   string `json:"room_id,omitempty"  yaml:"room_id,omitempty"`
}

// Values renders the filter as query parameters.
func (f *RackFilter) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", f.Name)
	setNonEmpty(values, "size", f.Size)
	setNonEmpty(values, "room", f.Room)
	setNonEmpty(values, "building", f.Building)
	setNonEmpty(values, "room_id", f.RoomID)

	return values
}

// DeviceFilter narrows device listings.
type DeviceFilter struct {
	Name         string `json:"name,omitempty"          yaml:"name,omitempty"`
	Type         string `json:"type,omitempty"          yaml:"type,omitempty"`
	OS           string `json:"os,omitempty"            yaml:"os,omitempty"`
	ServiceLevel string `json:"service_level,omitempty" yaml:"service_level,omitempty"`
	Customer     string `json:"customer,omitempty"      yaml:"customer,omitempty"`
	Tags         string `json:"tags,omitempty"          yaml:"tags,omitempty"`
}

// Values renders the filter as query parameters.
func (f *DeviceFilter) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", f.Name)
	setNonEmpty(values, "type", f.Type)
	setNonEmpty(values, "os", f.OS)
	setNonEmpty(values, "service_level", f.ServiceLevel)
	setNonEmpty(values, "customer", f.Customer)
	setNonEmpty(values, "tags", f.Tags)

	return values
}

// DeviceRefType names the foreign objects a device lookup can pivot on.
type DeviceRefType string

// Supported device lookup pivots.
const (
	DeviceRefCustomer DeviceRefType = "customer"
	DeviceRefName     DeviceRefType = "name"
	DeviceRefSerial   DeviceRefType = "serial"
	DeviceRefAsset    DeviceRefType = "asset"
)

// Subnet represents a subnet record for create calls.
type Subnet struct {
	Network     string `json:"network"               yaml:"network"`
	MaskBits    string `json:"mask_bits"             yaml:"mask_bits"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       string `json:"notes,omitempty"       yaml:"notes,omitempty"`
}

// Values renders the subnet as form parameters.
func (s *Subnet) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "network", s.Network)
	setNonEmpty(values, "mask_bits", s.MaskBits)
	setNonEmpty(values, "name", s.Name)
	setNonEmpty(values, "description", s.Description)
	setNonEmpty(values, "notes", s.Notes)

	return values
}

// IPAddress represents an IP address record for create calls. Address is the
// only required attribute.
type IPAddress struct {
	Address    netip.Addr `json:"ipaddress"               yaml:"ipaddress"`
	Label      string     `json:"label,omitempty"         yaml:"label,omitempty"`
	Subnet     string     `json:"subnet,omitempty"        yaml:"subnet,omitempty"`
	MacAddress string     `json:"macaddress,omitempty"    yaml:"macaddress,omitempty"`
	Device     string     `json:"device,omitempty"        yaml:"device,omitempty"`
	// Type is "static", "dhcp", or "reserved".
	Type       string `json:"type,omitempty"         yaml:"type,omitempty"`
	VRFGroupID string `json:"vrf_group_id,omitempty" yaml:"vrf_group_id,omitempty"`
	VRFGroup   string `json:"vrf_group,omitempty"    yaml:"vrf_group,omitempty"`
	// Available and ClearAll are "yes" or "no".
	Available string `json:"available,omitempty" yaml:"available,omitempty"`
	ClearAll  string `json:"clear_all,omitempty" yaml:"clear_all,omitempty"`
	Tags      string `json:"tags,omitempty"      yaml:"tags,omitempty"`
}

// Values renders the IP address as form parameters.
func (ip *IPAddress) Values() url.Values {
	values := url.Values{}

	if ip.Address.IsValid() {
		values.Set("ipaddress", ip.Address.String())
	}

	setNonEmpty(values, "label", ip.Label)
	setNonEmpty(values, "subnet", ip.Subnet)
	setNonEmpty(values, "macaddress", ip.MacAddress)
	setNonEmpty(values, "device", ip.Device)
	setNonEmpty(values, "type", ip.Type)
	setNonEmpty(values, "vrf_group_id", ip.VRFGroupID)
	setNonEmpty(values, "vrf_group", ip.VRFGroup)
	setNonEmpty(values, "available", ip.Available)
	setNonEmpty(values, "clear_all", ip.ClearAll)
	setNonEmpty(values, "tags", ip.Tags)

	return values
}

// Customer represents a customer record for create/update calls.
type Customer struct {
	Name        string `json:"name"                   yaml:"name"`
	ContactInfo string `json:"contact_info,omitempty" yaml:"contact_info,omitempty"`
	Notes       string `json:"notes,omitempty"        yaml:"notes,omitempty"`
	// Type is "customer" or "department".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// NewName renames an existing customer.
	NewName string `json:"new_name,omitempty" yaml:"new_name,omitempty"`
	Groups  string `json:"groups,omitempty"   yaml:"groups,omitempty"`
}

// Values renders the customer as form parameters.
func (c *Customer) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", c.Name)
	setNonEmpty(values, "contact_info", c.ContactInfo)
	setNonEmpty(values, "notes", c.Notes)
	setNonEmpty(values, "type", c.Type)
	setNonEmpty(values, "new_name", c.NewName)
	setNonEmpty(values, "groups", c.Groups)

	return values
}

// AppComponent represents an application component record for create calls.
type AppComponent struct {
	Name       string `json:"name"                  yaml:"name"`
	Device     string `json:"device,omitempty"      yaml:"device,omitempty"`
	GroupOwner string `json:"group_owner,omitempty" yaml:"group_owner,omitempty"`
	// What describes the business impact of losing the component.
	What      string `json:"what,omitempty"       yaml:"what,omitempty"`
	DependsOn string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	// Dependents is a comma-separated list of dependent component names.
	Dependents   string `json:"dependents,omitempty"    yaml:"dependents,omitempty"`
	DeviceReason string `json:"device_reason,omitempty" yaml:"device_reason,omitempty"`
	// DependsOnReasons pairs dependencies with reasons, e.g. "name1:reason1, name2:reason2".
	DependsOnReasons string `json:"depends_on_reasons,omitempty" yaml:"depends_on_reasons,omitempty"`
}

// Values renders the component as form parameters.
func (a *AppComponent) Values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "name", a.Name)
	setNonEmpty(values, "device", a.Device)
	setNonEmpty(values, "group_owner", a.GroupOwner)
	setNonEmpty(values, "what", a.What)
	setNonEmpty(values, "depends_on", a.DependsOn)
	setNonEmpty(values, "dependents", a.Dependents)
	setNonEmpty(values, "device_reason", a.DeviceReason)
	setNonEmpty(values, "depends_on_reasons", a.DependsOnReasons)

	return values
}

// CustomField updates one custom key/value pair on an existing object. Value
// is a string: JSON payloads must be serialized by the caller before the
// update, or the server rejects the request with a 500.
type CustomField struct {
	// ID of the object whose custom field is edited.
	ID    int    `json:"id"    yaml:"id"`
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Values renders the custom field as form parameters.
func (cf *CustomField) Values() url.Values {
	values := url.Values{}
	values.Set("id", strconv.Itoa(cf.ID))
	setNonEmpty(values, "key", cf.Key)
	setNonEmpty(values, "value", cf.Value)

	return values
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setPositive(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}
