package kvstore

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestRedisStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	mock.ExpectGet("test-key").SetVal(`{"name":"Hamz"}`)
	val, err := store.Get(context.Background(), "test-key")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Hamz"}`, string(val))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Get_KeyNotFound(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	mock.ExpectGet("missing-key").RedisNil()
	val, err := store.Get(context.Background(), "missing-key")
	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Nil(t, val)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	mock.ExpectSet("test-key", []byte(`[]`), 0).SetVal("OK")
	require.NoError(t, store.Set(context.Background(), "test-key", []byte(`[]`)))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStore(db)

	mock.ExpectDel("test-key").SetVal(1)
	require.NoError(t, store.Delete(context.Background(), "test-key"))

	// deleting an absent key is a no-op
	mock.ExpectDel("test-key").SetVal(0)
	require.NoError(t, store.Delete(context.Background(), "test-key"))

	require.NoError(t, mock.ExpectationsWereMet())
}
