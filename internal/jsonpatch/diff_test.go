package jsonpatch

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestDiffNoChange(t *testing.T) {
	a := doc(t, `{"name":"Joe","refunds":[{"lender":"Barclays"}]}`)
	b := doc(t, `{"name":"Joe","refunds":[{"lender":"Barclays"}]}`)
	assert.Empty(t, Diff(a, b, ""))
}

func TestDiffScalarReplace(t *testing.T) {
	ops := Diff(doc(t, `{"employment":""}`), doc(t, `{"employment":"Employed"}`), "")
	require.Len(t, ops, 1)
	assert.Equal(t, map[string]interface{}{
		"op": "replace", "path": "/employment", "value": "Employed",
	}, ops[0])
}

func TestDiffAddAndRemoveKeys(t *testing.T) {
	ops := Diff(doc(t, `{"a":1}`), doc(t, `{"b":2}`), "")
	assert.Contains(t, ops, map[string]interface{}{"op": "remove", "path": "/a"})
	assert.Contains(t, ops, map[string]interface{}{"op": "add", "path": "/b", "value": float64(2)})
}

func TestDiffArrayGrowth(t *testing.T) {
	a := doc(t, `{"refunds":[{"lender":"Barclays"}]}`)
	b := doc(t, `{"refunds":[{"lender":"Barclays"},{"lender":"Halifax"}]}`)
	ops := Diff(a, b, "")
	require.Len(t, ops, 1)
	assert.Equal(t, "add", ops[0]["op"])
	assert.Equal(t, "/refunds/1", ops[0]["path"])
}

func TestDiffArrayShrinkRemovesInReverse(t *testing.T) {
	a := doc(t, `[1,2,3]`)
	b := doc(t, `[1]`)
	ops := Diff(a, b, "")
	require.Len(t, ops, 2)
	assert.Equal(t, map[string]interface{}{"op": "remove", "path": "/2"}, ops[0])
	assert.Equal(t, map[string]interface{}{"op": "remove", "path": "/1"}, ops[1])
}

func TestDiffEscapesPointerTokens(t *testing.T) {
	ops := Diff(doc(t, `{"a/b":1,"c~d":1}`), doc(t, `{"a/b":2,"c~d":2}`), "")
	paths := []string{ops[0]["path"].(string), ops[1]["path"].(string)}
	assert.ElementsMatch(t, []string{"/a~1b", "/c~0d"}, paths)
}
