package device42

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Every paginated Device42 listing wraps its payload in the same metadata
// envelope:
//
//	{"limit": INT, "offset": INT, "total_count": INT, "<payload_key>": [...]}
//
// The payload key is not fixed (buildings, rooms, ips, ...) and has to be
// discovered as the one key that is not metadata.
var listMetadataKeys = map[string]bool{
	"offset":      true,
	"limit":       true,
	"total_count": true,
}

// ListEnvelope is the decoded form of one paginated list response.
type ListEnvelope struct {
	Offset     int
	Limit      int
	TotalCount int
	PayloadKey string
	Records    []Record
}

// ParseListEnvelope decodes a list response body. Exactly one non-metadata
// key must be present; zero or multiple remaining keys are a contract
// violation by the remote service and fail rather than returning an absent
// payload.
func ParseListEnvelope(body []byte) (*ListEnvelope, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing list envelope: %w", err)
	}

	payloadKey := ""

	for key := range raw {
		if listMetadataKeys[key] {
			continue
		}

		if payloadKey != "" {
			return nil, fmt.Errorf("%w: %q, %q", ErrAmbiguousPayloadKey, payloadKey, key)
		}

		payloadKey = key
	}

	if payloadKey == "" {
		return nil, ErrNoPayloadKey
	}

	totalCount, err := intCast(raw["total_count"])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadTotalCount, raw["total_count"])
	}

	envelope := &ListEnvelope{
		TotalCount: totalCount,
		PayloadKey: payloadKey,
	}

	// Offset and limit are informational; the cursor is driven by the
	// request parameters, so decoding failures here are not fatal.
	envelope.Offset, _ = intCast(raw["offset"])
	envelope.Limit, _ = intCast(raw["limit"])

	if err := json.Unmarshal(raw[payloadKey], &envelope.Records); err != nil {
		return nil, fmt.Errorf("%w: key %q: %s", ErrBadPayload, payloadKey, err)
	}

	return envelope, nil
}

// ParseMutationResult decodes a POST/PUT response envelope. A non-zero code
// fails with a ReturnCodeError carrying the space-joined msg text; on success
// the tuple-shaped msg (message, id, identifier, created?, updated?) is
// decoded into the typed fields when present.
func ParseMutationResult(body []byte) (*MutationResult, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing mutation envelope: %w", err)
	}

	codeRaw, ok := raw["code"]
	if !ok {
		return nil, ErrMissingReturnCode
	}

	code, err := intCast(codeRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadReturnCode, codeRaw)
	}

	var msg interface{}
	if msgRaw, ok := raw["msg"]; ok {
		if err := json.Unmarshal(msgRaw, &msg); err != nil {
			return nil, fmt.Errorf("parsing mutation msg: %w", err)
		}
	}

	if code != 0 {
		return nil, &ReturnCodeError{Code: code, Message: joinMsg(msg)}
	}

	result := &MutationResult{Code: code, Msg: msg}
	result.decodeTuple(msg)

	return result, nil
}

// decodeTuple fills the typed fields from a tuple-shaped success msg. Any
// other msg shape (plain string, missing field) leaves them zero-valued.
func (r *MutationResult) decodeTuple(msg interface{}) {
	tuple, ok := msg.([]interface{})
	if !ok || len(tuple) < 2 {
		if text, ok := msg.(string); ok {
			r.Message = text
		}

		return
	}

	message, ok := tuple[0].(string)
	if !ok {
		return
	}

	id, err := int64Cast(tuple[1])
	if err != nil {
		return
	}

	r.Message = message
	r.ID = id

	if len(tuple) > 2 {
		r.Identifier = tuple[2]
	}

	if len(tuple) > 3 {
		if created, ok := tuple[3].(bool); ok {
			r.Created = &created
		}
	}

	if len(tuple) > 4 {
		if updated, ok := tuple[4].(bool); ok {
			r.Updated = &updated
		}
	}
}

// joinMsg renders the heterogeneous msg field (string, list, or anything
// else) as one space-joined string, matching the historical error format.
func joinMsg(msg interface{}) string {
	switch value := msg.(type) {
	case nil:
		return ""
	case string:
		return value
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, part := range value {
			parts = append(parts, fmt.Sprint(part))
		}

		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(value)
	}
}

// intCast coerces a raw JSON value (number or numeric string) to an int.
func intCast(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: missing value", strconv.ErrSyntax)
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.Atoi(strings.TrimSpace(s))
	}

	return 0, fmt.Errorf("%w: %s", strconv.ErrSyntax, raw)
}

// int64Cast coerces an already-decoded JSON value to an int64.
func int64Cast(value interface{}) (int64, error) {
	switch v := value.(type) {
	case float64:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return 0, fmt.Errorf("%w: %v", strconv.ErrSyntax, value)
	}
}
