package substance_test

import (
	"testing"

	"github.com/mixgraph/mixgraph/substance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSize(t *testing.T) {
	assert.Equal(t, 16, substance.S)
	assert.Len(t, substance.All, 16)
}

func TestParseCodeRoundTrip(t *testing.T) {
	for _, s := range substance.All {
		got, ok := substance.ParseCode(s.Code())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestParseCodeUnknown(t *testing.T) {
	_, ok := substance.ParseCode('Z')
	assert.False(t, ok)
}

func TestCostTableComplete(t *testing.T) {
	for _, s := range substance.All {
		assert.Greater(t, substance.Cost[s], uint16(0), "%s should have a positive cost", s)
	}
}
