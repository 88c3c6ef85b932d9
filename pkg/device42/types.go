package device42

import (
	"encoding/json"
	"strconv"
)

// Record is one decoded CMDB record. List endpoints describe their payload
// shape only loosely, so records stay as generic JSON objects; the typed
// structs in resources.go cover the write path, where the field set is fixed.
type Record = map[string]interface{}

// DeleteResult is the acknowledgment returned by DELETE endpoints.
type DeleteResult struct {
	Deleted bool `json:"deleted" yaml:"deleted"`
	ID      int  `json:"id"      yaml:"id"`
}

// UnmarshalJSON tolerates the two shapes delete acknowledgments come in:
// appliance versions differ on whether deleted is a boolean or the string
// "true"/"false", and id is sometimes a numeric string.
func (r *DeleteResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Deleted interface{} `json:"deleted"`
		ID      interface{} `json:"id"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.Deleted.(type) {
	case bool:
		r.Deleted = v
	case string:
		r.Deleted, _ = strconv.ParseBool(v)
	}

	if id, err := int64Cast(raw.ID); err == nil {
		r.ID = int(id)
	}

	return nil
}

// MutationResult is the decoded outcome of a create/update call. Code zero
// means success; the remaining fields are filled in when the server returns
// the tuple-shaped msg (message, id, identifier, created?, updated?). Msg
// always carries the raw msg field as returned.
type MutationResult struct {
	Code       int         `json:"code"                 yaml:"code"`
	Message    string      `json:"message"              yaml:"message"`
	ID         int64       `json:"id"                   yaml:"id"`
	Identifier interface{} `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Created    *bool       `json:"created,omitempty"    yaml:"created,omitempty"`
	Updated    *bool       `json:"updated,omitempty"    yaml:"updated,omitempty"`
	Msg        interface{} `json:"msg,omitempty"        yaml:"msg,omitempty"`
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
