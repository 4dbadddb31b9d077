package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseErrorPolicy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ErrorPolicy
		valid    bool
	}{
		{"halt", "halt", Halt, true},
		{"skip", "skip", Skip, true},
		{"upper case", "SKIP", Skip, true},
		{"unknown", "retry", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := ParseErrorPolicy(tt.input)
			assert.Equal(t, tt.expected, policy)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
