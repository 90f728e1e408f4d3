package stored

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bizday/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bizday/internal/core/domain"
)

// failingStore fails every read.
type failingStore struct {
	*memory.CalendarStore
}

func (failingStore) GetYear(context.Context, string, int) (domain.WorkdayList, error) {
	return nil, errors.New("disk I/O error")
}

func TestSource_Workdays(t *testing.T) {
	store := memory.NewCalendarStore()
	ctx := context.Background()
	list := domain.WorkdayList{"20240102", "20240103"}
	require.NoError(t, store.SaveYear(ctx, "cn", list))

	source := New(store, "cn")
	got, err := source.Workdays(ctx, 2024)

	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.Equal(t, "store", source.Name())
}

func TestSource_Workdays_NotImported(t *testing.T) {
	store := memory.NewCalendarStore()
	require.NoError(t, store.SaveYear(context.Background(), "gb", domain.WorkdayList{"20240102"}))

	_, err := New(store, "cn").Workdays(context.Background(), 2024)

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "bizday calendar import 2024")
}

func TestSource_Workdays_StoreFailure(t *testing.T) {
	source := New(failingStore{memory.NewCalendarStore()}, "cn")

	_, err := source.Workdays(context.Background(), 2024)

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestSource_Workdays_NilStore(t *testing.T) {
	_, err := New(nil, "cn").Workdays(context.Background(), 2024)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
