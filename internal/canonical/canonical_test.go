package canonical

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"null", nil, "null"},
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", int64(-100), "-100"},
		{"number literal", json.Number("10"), "10"},
		{"decimal number literal", json.Number("2.50"), "2.50"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"empty array", []any{}, "[]"},
		{"empty object", map[string]any{}, "{}"},
		{"array", []any{json.Number("1"), "a", true}, `[1,"a",true]`},
		{"simple object", map[string]any{"a": json.Number("1")}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalSortedKeys(t *testing.T) {
	obj := map[string]any{
		"zebra": json.Number("1"),
		"alpha": json.Number("2"),
		"beta":  json.Number("3"),
	}

	result, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"beta":3,"zebra":1}`, string(result))
}

func TestMarshalNestedSortedKeys(t *testing.T) {
	obj := map[string]any{
		"z": map[string]any{
			"b": json.Number("1"),
			"a": json.Number("2"),
		},
		"a": json.Number("3"),
	}

	result, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"z":{"a":2,"b":1}}`, string(result))
}

func TestMarshalUTF16Ordering(t *testing.T) {
	// U+E000 vs U+10000: UTF-16 order differs from UTF-8.
	// U+10000 encodes as a surrogate pair starting 0xD800, which sorts before 0xE000.
	obj := map[string]any{
		"\uE000":     json.Number("1"),
		"\U00010000": json.Number("2"),
	}

	result, err := Marshal(obj)
	require.NoError(t, err)
	expected := `{"` + "\U00010000" + `":2,"` + "\uE000" + `":1}`
	assert.Equal(t, expected, string(result))
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	result, err := Marshal("<b> & </b>")
	require.NoError(t, err)
	assert.Equal(t, `"<b> & </b>"`, string(result))
}

func TestMarshalControlCharEscapes(t *testing.T) {
	result, err := Marshal("a\tb\ncd")
	require.NoError(t, err)
	assert.Equal(t, `"a\tb\ncd"`, string(result))
}

func TestMarshalLineSeparatorsLiteral(t *testing.T) {
	// U+2028/U+2029 must NOT be escaped per RFC 8785.
	result, err := Marshal("a\u2028b\u2029c")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(result))
}

func TestMarshalNFCNormalization(t *testing.T) {
	// Decomposed "e" + combining acute collapses to the precomposed form,
	// so both spellings hash identically.
	composed, err := Marshal("caf\u00e9")
	require.NoError(t, err)
	decomposed, err := Marshal("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"caf\u00e9\"", string(composed))
	assert.Equal(t, string(composed), string(decomposed))
}

func TestMarshalDeterministicForDecodedJSON(t *testing.T) {
	doc := []byte(`{"currency":"EUR","lines":[{"qty":10,"sku":"SKU-100"}],"asOfDate":"2025-03-01"}`)

	decode := func() any {
		var v any
		dec := json.NewDecoder(bytes.NewReader(doc))
		dec.UseNumber()
		require.NoError(t, dec.Decode(&v))
		return v
	}

	first, err := Marshal(decode())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Marshal(decode())
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
	assert.Equal(t,
		`{"asOfDate":"2025-03-01","currency":"EUR","lines":[{"qty":10,"sku":"SKU-100"}]}`,
		string(first))
}

func TestMarshalUnsupportedType(t *testing.T) {
	_, err := Marshal(struct{}{})
	require.Error(t, err)
}
