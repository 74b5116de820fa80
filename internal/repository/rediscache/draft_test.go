package rediscache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*DraftStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDraftStore(client, ttl), mr
}

func sampleDraft() repository.Draft {
	return repository.Draft{
		ReviewID: 42,
		Content:  "Thank you for the kind words!",
		Tone:     "grateful",
		SavedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestDraftStore_SaveAndGet(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)

	draft := sampleDraft()
	require.NoError(t, store.Save(context.Background(), draft))
	assert.True(t, mr.Exists("review:draft:42"))

	got, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, draft.ReviewID, got.ReviewID)
	assert.Equal(t, draft.Content, got.Content)
	assert.Equal(t, draft.Tone, got.Tone)
	assert.Equal(t, draft.SavedAt, got.SavedAt)
}

func TestDraftStore_SaveStampsSavedAt(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	draft := sampleDraft()
	draft.SavedAt = time.Time{}
	require.NoError(t, store.Save(context.Background(), draft))

	got, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, got.SavedAt.IsZero())
}

func TestDraftStore_Get_NotFound(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	got, err := store.Get(context.Background(), 999)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftStore_Get_InvalidJSON(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)

	require.NoError(t, mr.Set("review:draft:7", "{{not-valid-json"))

	got, err := store.Get(context.Background(), 7)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal draft")
}

func TestDraftStore_Save_TTL(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)

	require.NoError(t, store.Save(context.Background(), sampleDraft()))

	ttl := mr.TTL("review:draft:42")
	assert.True(t, ttl > 59*time.Minute, "expected TTL > 59m, got %v", ttl)
	assert.True(t, ttl <= time.Hour, "expected TTL <= 1h, got %v", ttl)
}

func TestDraftStore_Save_DefaultTTL(t *testing.T) {
	store, mr := setupTestRedis(t, 0)

	require.NoError(t, store.Save(context.Background(), sampleDraft()))

	ttl := mr.TTL("review:draft:42")
	assert.True(t, ttl > 71*time.Hour, "expected TTL > 71h, got %v", ttl)
}

func TestDraftStore_ExpiresAfterTTL(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)

	require.NoError(t, store.Save(context.Background(), sampleDraft()))

	mr.FastForward(time.Hour + time.Minute)

	_, err := store.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftStore_Delete(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)

	require.NoError(t, store.Save(context.Background(), sampleDraft()))
	assert.True(t, mr.Exists("review:draft:42"))

	require.NoError(t, store.Delete(context.Background(), 42))
	assert.False(t, mr.Exists("review:draft:42"))
}

func TestDraftStore_Delete_NonExistent(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	assert.NoError(t, store.Delete(context.Background(), 999))
}

func TestDraftStore_StoredJSONShape(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)

	require.NoError(t, store.Save(context.Background(), sampleDraft()))

	raw, err := mr.Get("review:draft:42")
	require.NoError(t, err)

	var stored repository.Draft
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, int64(42), stored.ReviewID)
	assert.Equal(t, "grateful", stored.Tone)
}
