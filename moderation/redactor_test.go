package moderation

import (
	"strings"
	"testing"

	"biograph/errors"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses multi-word program names, the shape restricted
// terms actually take in query text.
func TestRedactor_Redact(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"project atlas", "bx-441", "novatrix"}
	redactor, err := NewRedactor(dictionary, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple term and space preservation",
			input:    "Latest results from novatrix please",
			expected: "Latest results from ******** please",
		},
		{
			name:     "Case insensitive match",
			input:    "Is NOVATRIX still recruiting?",
			expected: "Is ******** still recruiting?",
		},
		{
			name:     "Multi word term across original spacing",
			input:    "Status of Project Atlas this quarter",
			expected: "Status of ************* this quarter",
		},
		{
			name:     "Punctuated spelling of a compound code",
			input:    "Toxicity of B.X.4.4.1 in rats",
			expected: "Toxicity of ********* in rats",
		},
		{
			name:     "No restricted content",
			input:    "What inhibits COX-2?",
			expected: "What inhibits COX-2?",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, redactor.Redact(tt.input))
		})
	}
}

func TestRedactor_requires_at_least_one_term(t *testing.T) {
	req := require.New(t)
	_, err := NewRedactor(nil, replacementChar)
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestParseTerms_skips_blanks_and_comments(t *testing.T) {
	req := require.New(t)
	input := strings.NewReader(`
# internal codenames
project atlas

bx-441
  # trailing section
novatrix
`)
	terms, err := ParseTerms(input)
	req.NoError(err)
	req.Equal([]string{"project atlas", "bx-441", "novatrix"}, terms)
}
