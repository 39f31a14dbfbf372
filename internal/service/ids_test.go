package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskID_IsVersion7AndSortable(t *testing.T) {
	first, err := NewTaskID()
	require.NoError(t, err)
	second, err := NewTaskID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	// Successive UUIDv7 values from one process are monotonic.
	assert.Less(t, first, second)
}

func TestValidateTaskID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "uuid v7", id: "01912c4e-7a3b-7c2d-8e4f-5a6b7c8d9e0f"},
		{name: "uuid v4", id: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "empty", id: "", wantErr: true},
		{name: "numeric", id: "42", wantErr: true},
		{name: "truncated", id: "550e8400-e29b-41d4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaskID)
				return
			}
			assert.NoError(t, err)
		})
	}
}
