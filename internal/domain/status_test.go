package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Status
		expectErr bool
	}{
		{name: "pending", input: "pending", expected: StatusPending},
		{name: "approved", input: "approved", expected: StatusApproved},
		{name: "rejected", input: "rejected", expected: StatusRejected},
		{name: "uppercase is rejected", input: "Approved", expectErr: true},
		{name: "unknown token", input: "cancelled", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestStatusFinal(t *testing.T) {
	assert.False(t, StatusPending.Final())
	assert.True(t, StatusApproved.Final())
	assert.True(t, StatusRejected.Final())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  ID
		expectErr bool
	}{
		{name: "valid id", input: "42", expected: 42},
		{name: "zero is invalid", input: "0", expectErr: true},
		{name: "negative is invalid", input: "-1", expectErr: true},
		{name: "non-numeric", input: "abc123", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}
