// Package device42 defines the public surface of the Device42 CMDB client:
// the Client interface and its per-resource clients, the domain record types,
// the response envelope normalizer, the pagination engine, and the error
// taxonomy.
//
// Use github.com/device42-community/d42-client/pkg/d42client to construct a
// working client:
//
//	client, err := d42client.New(&device42.Config{
//	    APIEndpoint: "https://d42.example.com",
//	    Username:    "admin",
//	    Password:    "secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	records, err := client.Buildings().List(ctx, nil).All()
//
// # Listings and pagination
//
// All list operations traverse the Device42 offset/limit pagination protocol
// and return a RecordIterator: a lazy, pull-based flattened sequence of
// records. Page requests are issued one at a time as the caller pulls, so
// abandoning an iterator early stops all further requests. Iterators carry
// per-call cursor state and must not be shared between goroutines; distinct
// calls are independent and may run concurrently.
//
// # Mutations
//
// Create and update operations submit form-encoded records and return a
// MutationResult decoded from the {code, msg} envelope. A non-zero code
// surfaces as a ReturnCodeError.
//
// # Errors
//
// Non-2xx responses surface as APIError, or as LicenseExpiredError /
// LicenseInsufficientError when a 500 body carries the corresponding license
// message prefix. Malformed envelopes (no discoverable payload key, a
// non-integer total_count) fail with wrapped static errors; see
// IsMalformedEnvelope. Nothing is retried or swallowed: every error surfaces
// synchronously at the call that triggered the offending request.
package device42
