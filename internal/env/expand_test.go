package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Expand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		vars     map[string]string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			vars:     nil,
			expected: "",
		},
		{
			name:     "no tokens",
			input:    "OrdersHub",
			vars:     map[string]string{"SITE": "orders"},
			expected: "OrdersHub",
		},
		{
			name:     "single token",
			input:    "{SITE}",
			vars:     map[string]string{"SITE": "orders"},
			expected: "orders",
		},
		{
			name:     "token in middle",
			input:    "hub-{SITE}-prod",
			vars:     map[string]string{"SITE": "orders"},
			expected: "hub-orders-prod",
		},
		{
			name:     "multiple tokens",
			input:    "{APP}-{REGION}",
			vars:     map[string]string{"APP": "orders", "REGION": "eu1"},
			expected: "orders-eu1",
		},
		{
			name:     "unresolved token left intact",
			input:    "{MISSING}",
			vars:     nil,
			expected: "{MISSING}",
		},
		{
			name:     "mixed resolved and unresolved",
			input:    "{APP}/{MISSING}",
			vars:     map[string]string{"APP": "orders"},
			expected: "orders/{MISSING}",
		},
		{
			name:     "token set to empty string",
			input:    "pre{EMPTY}post",
			vars:     map[string]string{"EMPTY": ""},
			expected: "prepost",
		},
		{
			name:     "invalid token shapes untouched",
			input:    "{1BAD} {lower-case} $NOT_A_TOKEN",
			vars:     map[string]string{"1BAD": "x"},
			expected: "{1BAD} {lower-case} $NOT_A_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromMap(tt.vars)
			assert.Equal(t, tt.expected, m.Expand(tt.input))
		})
	}
}

func TestMap_Expand_LowercaseTokens(t *testing.T) {
	t.Parallel()

	m := FromMap(map[string]string{"site_name": "orders"})
	assert.Equal(t, "orders", m.Expand("{site_name}"))
}
