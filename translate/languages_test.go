package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByCode(t *testing.T) {
	l, err := Parse("fr")
	require.NoError(t, err)
	assert.Equal(t, "French", l.Name)
}

func TestParseByName(t *testing.T) {
	l, err := Parse("german")
	require.NoError(t, err)
	assert.Equal(t, "de", l.Code)
}

func TestParseTrimsWhitespace(t *testing.T) {
	l, err := Parse(" en ")
	require.NoError(t, err)
	assert.Equal(t, "en", l.Code)
}

func TestParseUnsupported(t *testing.T) {
	_, err := Parse("jp")
	assert.Error(t, err)
}

func TestByCode(t *testing.T) {
	l, ok := ByCode("it")
	require.True(t, ok)
	assert.Equal(t, "Italian", l.Name)

	_, ok = ByCode("xx")
	assert.False(t, ok)
}
