package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ols/ols"
	"github.com/cayleygraph/ols/term"
)

type fakeResolver struct {
	calls int32
	known map[string]bool
	err   error
}

func (r *fakeResolver) Term(_ context.Context, id term.Identifier, ontology string) (*term.Term, error) {
	atomic.AddInt32(&r.calls, 1)
	if r.err != nil {
		return nil, r.err
	}
	if r.known != nil && !r.known[id.Value] {
		return nil, ols.ErrNotFound
	}
	return &term.Term{OBOID: id.Value, OntologyName: ontology}, nil
}

func (r *fakeResolver) Calls() int { return int(atomic.LoadInt32(&r.calls)) }

func TestExistsCachesHits(t *testing.T) {
	r := &fakeResolver{}
	c := New(r, 10)
	ctx := context.Background()

	ok, err := c.Exists(ctx, "EFO:0000001", "efo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, r.Calls())

	ok, err = c.Exists(ctx, "EFO:0000001", "efo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, r.Calls(), "cached pair must not be resolved again")
	require.Equal(t, 1, c.Len())
}

func TestExistsNotFoundNeverCached(t *testing.T) {
	r := &fakeResolver{known: map[string]bool{}}
	c := New(r, 10)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, err := c.Exists(ctx, "EFO:404", "efo")
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, 3, r.Calls())
	require.Equal(t, 0, c.Len())
}

func TestExistsTransportError(t *testing.T) {
	r := &fakeResolver{err: &ols.TransportError{URL: "http://x", Err: fmt.Errorf("refused")}}
	c := New(r, 10)
	ok, err := c.Exists(context.Background(), "EFO:1", "efo")
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestExistsCapacity(t *testing.T) {
	r := &fakeResolver{}
	c := New(r, 3)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, err := c.Exists(ctx, fmt.Sprintf("EFO:%d", i), "efo")
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Equal(t, 3, c.Len())

	ok, err := c.Exists(ctx, "EFO:99", "efo")
	require.NoError(t, err)
	require.True(t, ok, "existence is reported even when the cache is full")
	require.Equal(t, 3, c.Len())

	before := r.Calls()
	ok, err = c.Exists(ctx, "EFO:99", "efo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, before+1, r.Calls(), "pair beyond capacity is looked up again")
}

func TestKeyDelimited(t *testing.T) {
	require.NotEqual(t, Key("AB", "C"), Key("A", "BC"))
}

func TestDefaultCapacity(t *testing.T) {
	c := New(&fakeResolver{}, 0)
	require.Equal(t, DefaultCapacity, c.Cap())
}

func TestExistsConcurrent(t *testing.T) {
	const capacity = 10
	c := New(&fakeResolver{}, capacity)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := c.Exists(ctx, fmt.Sprintf("EFO:%d", i), "efo")
			assert.NoError(t, err)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
	require.Equal(t, capacity, c.Len())
}
