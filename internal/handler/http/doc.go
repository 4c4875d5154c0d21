// Package http implements the REST transport of the fitness tracker.
//
// It wires the chi routes of the users, workouts and food intakes resources,
// decodes JSON request bodies, delegates to the service layer and maps
// service errors to HTTP statuses. Request tracing, access logging, response
// compression, CORS, request timeouts and prometheus metrics are handled by
// the middleware of this package.
package http
