package utils

import "github.com/google/uuid"

// GenerateUUIDString returns a version 7 uuid. Ids from one process sort in
// creation order, even within the same millisecond, so they can break ties
// between equal timestamps.
func GenerateUUIDString() string {
	return uuid.Must(uuid.NewV7()).String()
}
