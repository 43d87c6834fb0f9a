package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	r.Add("identity", KindAuthRequired)
	r.Add("public-record", KindAnonymous)

	req, ok := r.Resolve("identity")
	require.True(t, ok)
	assert.Equal(t, Request{Service: "identity", Kind: KindAuthRequired}, req)

	req, ok = r.Resolve("public-record")
	require.True(t, ok)
	assert.Equal(t, KindAnonymous, req.Kind)

	_, ok = r.Resolve("nope")
	assert.False(t, ok)
}

func TestRegistry_PreservesOrderAndDeduplicates(t *testing.T) {
	r := NewRegistry()
	r.Add("identity", KindAuthRequired)
	r.Add("document", KindAuthRequired)
	r.Add("identity", KindAnonymous)

	assert.Equal(t, []string{"identity", "document"}, r.Services())

	req, _ := r.Resolve("identity")
	assert.Equal(t, KindAnonymous, req.Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "open", KindAnonymous.String())
	assert.Equal(t, "login required", KindAuthRequired.String())
}
