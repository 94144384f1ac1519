package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressValid(t *testing.T) {
	tests := []struct {
		name    string
		address Address
		valid   bool
	}{
		{
			name:    "valid lowercase address",
			address: Address("0x" + strings.Repeat("a1", 32)),
			valid:   true,
		},
		{
			name:    "valid uppercase hex",
			address: Address("0x" + strings.Repeat("AB", 32)),
			valid:   true,
		},
		{
			name:    "valid zero address",
			address: ZeroAddress,
			valid:   true,
		},
		{
			name:    "empty string",
			address: Address(""),
			valid:   false,
		},
		{
			name:    "missing prefix",
			address: Address(strings.Repeat("ab", 33)),
			valid:   false,
		},
		{
			name:    "too short",
			address: Address("0x" + strings.Repeat("a", 63)),
			valid:   false,
		},
		{
			name:    "too long",
			address: Address("0x" + strings.Repeat("a", 65)),
			valid:   false,
		},
		{
			name:    "20-byte ethereum-style address",
			address: Address("0x" + strings.Repeat("ab", 20)),
			valid:   false,
		},
		{
			name:    "non-hex characters",
			address: Address("0x" + strings.Repeat("g", 64)),
			valid:   false,
		},
		{
			name:    "prefix only",
			address: Address("0x"),
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.address.Valid())
		})
	}
}

func TestAddressNormalize(t *testing.T) {
	mixed := Address("0x" + strings.Repeat("Ab", 32))
	lower := Address("0x" + strings.Repeat("ab", 32))

	assert.Equal(t, lower, mixed.Normalize())
	// Normalization preserves validity
	assert.True(t, mixed.Normalize().Valid())
	// Already-lowercase addresses are unchanged
	assert.Equal(t, lower, lower.Normalize())
}

func TestTokenIDZero(t *testing.T) {
	assert.True(t, TokenID("").Zero())
	assert.True(t, TokenID("0").Zero())
	assert.True(t, TokenID("0x0").Zero())

	assert.False(t, TokenID("1").Zero())
	assert.False(t, TokenID("42").Zero())
	assert.False(t, TokenID("0x01").Zero())
}
