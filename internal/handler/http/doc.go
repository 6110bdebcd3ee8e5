// Package http implements the REST transport of the vault.
//
// It exposes route wiring, request handlers, and the middleware chain that
// runs before requests reach the service layer: trace ids, access logging,
// response compression, client IP capture, the global login lockout gate,
// bearer session resolution and replay-attack verification. Service errors
// are translated into a stable result code and HTTP status in one table
// (see errors_mapper.go).
package http
