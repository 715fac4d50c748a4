package strategies_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/drinkchain/internal/strategies"
	"github.com/JaimeStill/drinkchain/pkg/storage"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingStorage struct {
	*storage.Memory
	readErr  error
	writeErr error
}

func (f *failingStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.Memory.Read(ctx, key)
}

func (f *failingStorage) Write(ctx context.Context, key string, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.Memory.Write(ctx, key, data)
}

func TestStoreCreate(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	store := strategies.NewStore(st, discard())

	c, err := store.Create(ctx, "  低成本  ", []string{" 价格 ", "供货稳定"})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "低成本", c.Name)
	assert.Equal(t, []string{"价格", "供货稳定", ""}, c.Factors)

	data, err := st.Read(ctx, strategies.StorageKey)
	require.NoError(t, err)

	var persisted []strategies.CustomStrategy
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, c.ID, persisted[0].ID)
}

func TestStoreCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		sname   string
		factors []string
		want    error
	}{
		{"blank name", "  ", []string{"价格"}, strategies.ErrNameRequired},
		{"no factors", "n", nil, strategies.ErrPrimaryFactorRequired},
		{"blank primary", "n", []string{" ", "口感"}, strategies.ErrPrimaryFactorRequired},
		{"too many", "n", []string{"a", "b", "c", "d"}, strategies.ErrTooManyFactors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := storage.NewMemory()
			store := strategies.NewStore(st, discard())

			_, err := store.Create(context.Background(), tt.sname, tt.factors)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, store.List())

			_, err = st.Read(context.Background(), strategies.StorageKey)
			assert.ErrorIs(t, err, storage.ErrNotFound, "rejected create must not persist")
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	store := strategies.NewStore(st, discard())

	a, _ := store.Create(ctx, "a", []string{"x"})
	b, _ := store.Create(ctx, "b", []string{"y"})

	require.NoError(t, store.Delete(ctx, a.ID))
	assert.ErrorIs(t, store.Delete(ctx, a.ID), strategies.ErrNotFound)

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	reloaded := strategies.NewStore(st, discard())
	reloaded.Load(ctx)
	assert.Equal(t, list, reloaded.List())
}

func TestStoreListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := strategies.NewStore(storage.NewMemory(), discard())

	names := []string{"c", "a", "b"}
	for _, n := range names {
		_, err := store.Create(ctx, n, []string{"f"})
		require.NoError(t, err)
	}

	for i, c := range store.List() {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestStoreListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := strategies.NewStore(storage.NewMemory(), discard())
	c, _ := store.Create(ctx, "a", []string{"x"})

	list := store.List()
	list[0].Factors[0] = "mutated"

	found, ok := store.Find(c.ID)
	require.True(t, ok)
	assert.Equal(t, "x", found.Factors[0])
}

func TestStoreLoad(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{"valid", `[{"id":"1","name":"a","factors":["x","",""]},{"id":"2","name":"b","factors":["y"]}]`, 2},
		{"skips invalid entries", `[{"id":"","name":"a","factors":["x"]},{"id":"2","name":"b","factors":[""]},{"id":"3","name":"c","factors":["z"]}]`, 1},
		{"corrupt payload", `{not json`, 0},
		{"wrong shape", `{"id":"1"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			st := storage.NewMemory()
			require.NoError(t, st.Write(ctx, strategies.StorageKey, []byte(tt.payload)))

			store := strategies.NewStore(st, discard())
			store.Load(ctx)

			assert.Len(t, store.List(), tt.want)
			for _, c := range store.List() {
				assert.Len(t, c.Factors, strategies.FactorSlots)
			}
		})
	}
}

func TestStoreLoadMissingAndUnavailable(t *testing.T) {
	ctx := context.Background()

	store := strategies.NewStore(storage.NewMemory(), discard())
	store.Load(ctx)
	assert.Empty(t, store.List())

	broken := &failingStorage{Memory: storage.NewMemory(), readErr: storage.ErrPersistence}
	store = strategies.NewStore(broken, discard())
	store.Load(ctx)
	assert.Empty(t, store.List())
}

func TestStorePersistFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	broken := &failingStorage{Memory: storage.NewMemory(), writeErr: errors.New("disk full")}
	store := strategies.NewStore(broken, discard())

	c, err := store.Create(ctx, "a", []string{"x"})
	require.NoError(t, err)

	_, ok := store.Find(c.ID)
	assert.True(t, ok)
	require.NoError(t, store.Delete(ctx, c.ID))
}
