package domain

import "github.com/google/uuid"

// newInvocationID tags a tool call so client logs and server logs can be
// correlated.
func newInvocationID() string {
	return uuid.NewString()
}
