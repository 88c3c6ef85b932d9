// Package d42client constructs Device42 API clients.
//
// It validates and normalizes the configuration (scheme defaulting, trailing
// slash trimming) and wires the internal implementation behind the
// device42.Client interface:
//
//	client, err := d42client.New(&device42.Config{
//	    APIEndpoint: "d42.example.com",
//	    Username:    "admin",
//	    Password:    "secret",
//	})
//
// See package device42 for the client surface and protocol semantics.
package d42client
