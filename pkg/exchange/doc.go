// Package exchange implements a typed client for the Namebase exchange REST
// API. Every trading operation is exposed as a method that assembles the
// parameter mapping for its endpoint and delegates to the HTTP transport.
//
// The package includes:
//   - Exchange: the REST client with the full endpoint surface
//   - Option: per-call optional parameters (receive window, limits, filters)
//   - Typed response structs for every endpoint
//
// Example usage:
//
//	config := core.DefaultConfig().WithCredentials(&core.Credentials{
//		AccessKey: os.Getenv("NAMEBASE_ACCESS_KEY"),
//		SecretKey: os.Getenv("NAMEBASE_SECRET_KEY"),
//	})
//	client, err := exchange.New(config)
package exchange
