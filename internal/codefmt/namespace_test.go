package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNSName(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "zero", ns.Name("zero"))
	assert.Equal(t, "zero2", ns.Name("zero"))
	assert.False(t, ns.Reserve("zero2"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "BoxInt", NormalizeName("Box[int]"))
	assert.Equal(t, "ParseHttpStatus", NormalizeName("Parse HTTP status"))
	assert.Equal(t, "v", NormalizeName("v"))
}

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("example"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "example", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example3", name)
	assert.True(t, more)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "answer42", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_3", name)
	assert.True(t, more)
}
