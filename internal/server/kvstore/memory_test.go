package kvstore

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetDel(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Set(ctx, "awardee:1", []byte(`{"id":1}`)))

	got, err := s.Get(ctx, "awardee:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), got)

	// overwrite is last-write-wins
	require.NoError(t, s.Set(ctx, "awardee:1", []byte(`{"id":1,"name":"A"}`)))
	got, err = s.Get(ctx, "awardee:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1,"name":"A"}`), got)

	require.NoError(t, s.Del(ctx, "awardee:1"))
	_, err = s.Get(ctx, "awardee:1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// deleting a missing key is a no-op
	require.NoError(t, s.Del(ctx, "awardee:1"))
}

func TestMemory_GetByPrefix(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "awardee:2", []byte(`b`)))
	require.NoError(t, s.Set(ctx, "awardee:1", []byte(`a`)))
	require.NoError(t, s.Set(ctx, "custom-categories", []byte(`c`)))

	records, err := s.GetByPrefix(ctx, "awardee:")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "awardee:1", records[0].Key)
	assert.Equal(t, "awardee:2", records[1].Key)

	empty, err := s.GetByPrefix(ctx, "nothing:")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("abc")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
