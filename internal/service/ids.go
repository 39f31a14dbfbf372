package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidTaskID indicates the string is not a valid UUID
var ErrInvalidTaskID = errors.New("invalid task ID")

// NewTaskID returns a UUIDv7, so IDs sort in creation order
func NewTaskID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate task ID: %w", err)
	}
	return id.String(), nil
}

// ValidateTaskID checks that id is a UUID
func ValidateTaskID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTaskID, err)
	}
	return nil
}
