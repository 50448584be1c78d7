// Package marketplace provides the REST client for the seller API.
//
// It exposes the three calls the sync pipeline needs: the paginated product
// list and the price and stock import endpoints. Every request carries the
// Client-Id / Api-Key header pair from the configuration.
//
// The Client interface exists so the orchestrator can be tested against the
// testify mock in the mocks subpackage without touching the network.
package marketplace
