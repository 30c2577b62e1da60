// Package api provides the Numbeo REST API client.
//
// REST endpoints (both authenticated with an api_key query parameter):
//   - GET /api/items: the item catalog (id, display order, category, name)
//   - GET /api/city_prices?query=<City>, <Country>: price summaries for one city
//
// Production base URL: https://www.numbeo.com
//
// The client performs exactly one attempt per call. Failures surface as
// *TransportError (connection, DNS, timeout) or *APIError (non-2xx status,
// malformed body, missing required fields).
package api
