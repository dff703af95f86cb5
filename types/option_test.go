package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalAppendTo(t *testing.T) {
	obj := map[string]json.RawMessage{}

	var omitted Optional[string]
	require.NoError(t, omitted.AppendTo(obj, "omitted"))
	require.NotContains(t, obj, "omitted")

	require.NoError(t, Null[string]().AppendTo(obj, "cleared"))
	require.Equal(t, json.RawMessage("null"), obj["cleared"])

	require.NoError(t, Some("value").AppendTo(obj, "set"))
	require.Equal(t, json.RawMessage(`"value"`), obj["set"])
}

func TestOptionalValue(t *testing.T) {
	v, ok := Some(42).Value()
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = Null[int]().Value()
	require.False(t, ok)
	require.True(t, Null[int]().IsSet())
	require.True(t, Null[int]().IsNull())

	var zero Optional[int]
	_, ok = zero.Value()
	require.False(t, ok)
	require.False(t, zero.IsSet())
}
