package schemadoc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDescribe(t *testing.T, input string) *Listing {
	t.Helper()
	doc, err := Parse([]byte(input))
	require.NoError(t, err)
	listing, err := Describe(doc)
	require.NoError(t, err)
	return listing
}

func TestDescribeObjectKeepsDeclarationOrder(t *testing.T) {
	listing := mustDescribe(t, `{
		"type": "object",
		"properties": {
			"zeta": {"type": "string"},
			"alpha": {"type": "integer"},
			"mid": {"description": "untyped"},
			"beta": true
		}
	}`)

	require.Equal(t, []Entry{
		{Name: "zeta", Type: "string"},
		{Name: "alpha", Type: "integer"},
		{Name: "mid", Type: Undefined},
		{Name: "beta", Type: Undefined},
	}, listing.Entries)

	var out bytes.Buffer
	require.NoError(t, listing.Write(&out))
	require.Equal(t, `"zeta": type - string
"alpha": type - integer
"mid": type - <undefined>
"beta": type - <undefined>

`, out.String())
}

func TestDescribeObjectWithoutProperties(t *testing.T) {
	listing := mustDescribe(t, `{"type": "object"}`)
	require.Empty(t, listing.Lines())

	var out bytes.Buffer
	require.NoError(t, listing.Write(&out))
	require.Equal(t, "\n", out.String())
}

func TestDescribeArray(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{
			input:    `{"type": "array", "items": {"type": "number"}}`,
			expected: "<document>:type = array, item:type = number",
		},
		{
			input:    `{"type": "array", "items": {}}`,
			expected: "<document>:type = array, item:type = <undefined>",
		},
		{
			input:    `{"type": "array"}`,
			expected: "<document>:type = array, item:type = <undefined>",
		},
	}

	for _, tc := range testCases {
		listing := mustDescribe(t, tc.input)
		require.Equal(t, []string{tc.expected}, listing.Lines())
	}
}

func TestDescribeOtherType(t *testing.T) {
	listing := mustDescribe(t, `{"type": "string", "properties": {"ignored": {}}}`)
	require.Equal(t, []string{"<document>:type = string"}, listing.Lines())
}

func TestDescribeWithoutType(t *testing.T) {
	doc, err := Parse([]byte(`{"properties": {"a": {"type": "string"}}}`))
	require.NoError(t, err)

	_, err = Describe(doc)
	require.ErrorIs(t, err, ErrNotSchemaDocument)
}

func TestDescribeIsDeterministic(t *testing.T) {
	input := `{"type": "object", "properties": {"c": {"type": "string"}, "a": {}, "b": {"type": "boolean"}}}`

	var first, second bytes.Buffer
	require.NoError(t, mustDescribe(t, input).Write(&first))
	require.NoError(t, mustDescribe(t, input).Write(&second))
	require.Equal(t, first.String(), second.String())
}

func TestDescribeObjectWithNonObjectProperties(t *testing.T) {
	doc, err := Parse([]byte(`{"type": "object", "properties": ["a", "b"]}`))
	require.NoError(t, err)

	_, err = Describe(doc)
	require.ErrorIs(t, err, ErrNotSchemaDocument)

	// only object documents read their properties
	listing, err := Describe(&Document{RawType: []byte(`"string"`), RawProperties: []byte(`"x"`)})
	require.NoError(t, err)
	require.Equal(t, []string{"<document>:type = string"}, listing.Lines())
}
