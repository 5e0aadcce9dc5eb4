package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionKey(t *testing.T) {
	assert.Equal(t, "suggest:ns:7:30", suggestionKey("ns", 7, 30))
	assert.NotEqual(t, suggestionKey("ns", 7, 30), suggestionKey("ns", 8, 30))
	assert.NotEqual(t, suggestionKey("ns", 7, 30), suggestionKey("other", 7, 30))
}

func TestRedisSuggestionCacheNamespacesPerInstance(t *testing.T) {
	a := NewRedisSuggestionCache(nil, 0)
	b := NewRedisSuggestionCache(nil, 0)
	assert.NotEqual(t, a.key(1, 30), b.key(1, 30))
}

func TestNoopCache(t *testing.T) {
	var c SuggestionCache = NoopCache{}
	require.NoError(t, c.Set(context.Background(), 1, 30, Suggestion{Status: StatusSearched}))

	_, ok, err := c.Get(context.Background(), 1, 30)
	require.NoError(t, err)
	assert.False(t, ok)
}
