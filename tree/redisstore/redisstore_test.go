package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"

	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

func TestKeyFor(t *testing.T) {
	rs := New(nil, "sportclass:trees")
	assert.Equal(t, "sportclass:trees:abc", rs.keyFor("abc"))
}

// TestSaveLoad needs a Redis server, reachable at REDIS_ADDR.
func TestSaveLoad(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	defer rc.Close()
	rs := New(rc, "sportclass-test")
	ctx := context.Background()

	tr, err := tree.New([]string{"VA"}, "RaceTime", []tree.Node{
		{Feature: 0, Threshold: 2.75, Left: 1, Right: 2, Value: 55, Count: 4, Deviance: 40},
		tree.Leaf(52, 2, 0.1),
		tree.Leaf(58, 2, 0.2),
	}, 0)
	require.NoError(t, err)

	id, err := rs.Save(ctx, tr)
	require.NoError(t, err)
	defer rs.Delete(ctx, id)

	got, err := rs.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, tr.Nodes(), got.Nodes())

	require.NoError(t, rs.Delete(ctx, id))
	_, err = rs.Load(ctx, id)
	assert.Equal(t, ErrNotFound, err)
}
