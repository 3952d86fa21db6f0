package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		in    string
		kind  TagKind
		label string
	}{
		{"CID-0042", TagGroupID, "CID-0042"},
		{"C-123456", TagGroupID, "C-123456"},
		{"C-12345", TagPlain, "C-12345"},
		{"L1:Raw", TagLevel1, "Raw"},
		{"BUNCH: Summer", TagBunch, "Summer"},
		{"AI:hands", TagAIGenerated, "hands"},
		{"  Keeper ", TagPlain, "Keeper"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			tag := ParseTag(tc.in)
			assert.Equal(t, tc.kind, tag.Kind)
			assert.Equal(t, tc.label, tag.Label)
		})
	}
}

func TestLegacyNameRoundTrip(t *testing.T) {
	for _, name := range []string{"CID-7", "L1:Raw", "BUNCH:Summer", "AI:hands", "Keeper"} {
		assert.Equal(t, name, ParseTag(name).LegacyName())
	}
	assert.False(t, TagKind("OTHER").Valid())
}

func TestJSONColumn(t *testing.T) {
	var empty JSON
	raw, err := empty.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	value, err := empty.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)

	doc, err := NewJSON(map[string]int{"a": 1})
	assert.NoError(t, err)
	var out map[string]int
	assert.NoError(t, doc.Decode(&out))
	assert.Equal(t, 1, out["a"])
}

func TestIsCID(t *testing.T) {
	assert.True(t, IsCID("CID-0042"))
	assert.True(t, IsCID("C-123456"))
	assert.False(t, IsCID("CID-0042 Summer Hooks Final"))
	assert.False(t, IsCID("CID-"))
	assert.False(t, IsCID("CID-1234567890123"))
	assert.False(t, IsCID("C-12345"))
}
