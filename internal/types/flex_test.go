package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64(t *testing.T) {
	var body struct {
		A FlexUint64 `json:"a"`
		B FlexUint64 `json:"b"`
		C FlexUint64 `json:"c"`
		D FlexUint64 `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"34","c":"","d":null}`), &body))
	assert.EqualValues(t, 12, body.A)
	assert.EqualValues(t, 34, body.B)
	assert.Nil(t, body.C.Ptr())
	assert.Nil(t, body.D.Ptr())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"x1"}`), &body))
}

func TestFlexList(t *testing.T) {
	var ids FlexList[FlexUint64]
	require.NoError(t, json.Unmarshal([]byte(`[1,"2"]`), &ids))
	assert.Equal(t, []uint64{1, 2}, Uint64s(ids.Slice()))

	require.NoError(t, json.Unmarshal([]byte(`5`), &ids))
	assert.Equal(t, []uint64{5}, Uint64s(ids.Slice()))

	require.NoError(t, json.Unmarshal([]byte(`"3, 4"`), &ids))
	assert.Equal(t, []uint64{3, 4}, Uint64s(ids.Slice()))

	var names FlexList[string]
	require.NoError(t, json.Unmarshal([]byte(`"L1:Instagram"`), &names))
	assert.Equal(t, []string{"L1:Instagram"}, names.Slice())
}
