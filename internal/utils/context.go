// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, request
// identifiers and HTTP client initialization.
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

// ActionCtxKey is the key used to store the name of the menu action that
// issued a request, so lower layers can tag their log entries with it.
var ActionCtxKey = contextKey("action")

// WithAction returns a copy of ctx carrying the action name.
func WithAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, ActionCtxKey, action)
}

// GetActionFromContext retrieves the action name from the context.
//
// Returns the action and an ok flag:
//   - ok == true : value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetActionFromContext(ctx context.Context) (string, bool) {
	action, ok := ctx.Value(ActionCtxKey).(string)
	return action, ok && action != ""
}
