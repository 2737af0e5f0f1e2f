package wal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sajjad-MoBe/LogKVStore/internal/kverrors"
)

func TestEncodeEntry(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
		errCheck func(error) bool
	}{
		{
			name:     "simple pair",
			key:      "name",
			value:    "alice",
			expected: "SET name alice",
		},
		{
			name:     "value with interior spaces",
			key:      "quote",
			value:    "to be or not to be",
			expected: "SET quote to be or not to be",
		},
		{
			name:     "key with space",
			key:      "bad key",
			value:    "v",
			errCheck: kverrors.IsInvalidKey,
		},
		{
			name:     "key with tab",
			key:      "bad\tkey",
			value:    "v",
			errCheck: kverrors.IsInvalidKey,
		},
		{
			name:     "empty key",
			key:      "",
			value:    "v",
			errCheck: kverrors.IsInvalidKey,
		},
		{
			name:     "empty value",
			key:      "k",
			value:    "",
			errCheck: kverrors.IsInvalidValue,
		},
		{
			name:     "value with newline",
			key:      "k",
			value:    "line1\nline2",
			errCheck: kverrors.IsInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := EncodeEntry(tt.key, tt.value)
			if tt.errCheck != nil {
				assert.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error type: %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Entry
		ok       bool
	}{
		{
			name:     "simple pair",
			line:     "SET name alice",
			expected: Entry{Op: "SET", Key: "name", Value: "alice"},
			ok:       true,
		},
		{
			name:     "value keeps interior spaces",
			line:     "SET quote to be or not to be",
			expected: Entry{Op: "SET", Key: "quote", Value: "to be or not to be"},
			ok:       true,
		},
		{
			name:     "extra whitespace between tokens",
			line:     "SET   k    v with  spaces",
			expected: Entry{Op: "SET", Key: "k", Value: "v with  spaces"},
			ok:       true,
		},
		{
			name:     "trailing newline trimmed",
			line:     "SET k v\n",
			expected: Entry{Op: "SET", Key: "k", Value: "v"},
			ok:       true,
		},
		{name: "blank line", line: "", ok: false},
		{name: "whitespace only", line: "   ", ok: false},
		{name: "unknown operation", line: "GARBAGE", ok: false},
		{name: "unknown operation with args", line: "DEL k v", ok: false},
		{name: "missing value", line: "SET k", ok: false},
		{name: "missing key and value", line: "SET", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := ParseEntry(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, entry)
			}
		})
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	line, err := EncodeEntry("k", "a value with  spaces")
	assert.NoError(t, err)

	entry, ok := ParseEntry(line)
	assert.True(t, ok)
	assert.Equal(t, "k", entry.Key)
	assert.Equal(t, "a value with  spaces", entry.Value)
}
