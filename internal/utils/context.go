// Package utils provides small helpers shared by the server and the client:
// typed context keys, session token signing and parsing, JSON response
// writing, client IP extraction, resty client construction and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key under which the authentication middleware
// stores the resolved session ID.
var SessionIDCtxKey = contextKey("sessionID")

// ClientIPCtxKey is the key under which the request's client IP is stored.
var ClientIPCtxKey = contextKey("clientIP")

// TokenCtxKey holds the raw bearer token of the current request. The
// change-password flow mixes it into the payload key.
var TokenCtxKey = contextKey("token")

// GetSessionIDFromContext retrieves the session ID from the context.
//
// Returns ok == false when the value is missing, empty or of another type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}

// WithSessionID returns a copy of ctx carrying the session ID and the raw
// bearer token it was resolved from.
func WithSessionID(ctx context.Context, sessionID, token string) context.Context {
	ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the raw bearer token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// WithClientIP returns a copy of ctx carrying the client IP.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPCtxKey, ip)
}

// GetClientIPFromContext retrieves the client IP, or "" if absent.
func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPCtxKey).(string)
	return ip
}
