package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ly2xxx/gco/internal/models"
	"github.com/ly2xxx/gco/internal/providers"
)

type stubSheets struct {
	rows []models.RawRow
	err  error
}

func (s *stubSheets) FetchRows(ctx context.Context) ([]models.RawRow, error) {
	return s.rows, s.err
}

// MockDatasetCache for testing cache interactions
type MockDatasetCache struct {
	mock.Mock
}

func (m *MockDatasetCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockDatasetCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockDatasetCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newLoader(sheets SheetSource, cache DatasetCache) *DataLoader {
	return NewDataLoader(sheets, providers.NewSampleGenerator(2025), cache, 5*time.Minute, quietLogger())
}

func TestLoadFromRemote(t *testing.T) {
	sheets := &stubSheets{rows: []models.RawRow{
		{Player: "Jacky", Tournament: "提提卡卡杯", Game: "Game 1",
			NetScore: "2", Birdies: "3", Pars: "10", Bogeys: "4", DoubleBogeys: "0"},
		{Player: "", Tournament: "提提卡卡杯", Game: "Game 1",
			NetScore: "1", Birdies: "0", Pars: "9", Bogeys: "5", DoubleBogeys: "1"},
	}}

	dataset := newLoader(sheets, nil).Load(context.Background())

	assert.Equal(t, models.SourceRemote, dataset.Source)
	require.Len(t, dataset.Records, 1)
	assert.Equal(t, "Jacky", dataset.Records[0].Player)
	assert.Equal(t, 1, dataset.DroppedRows)
	assert.Equal(t, 0, dataset.DuplicateRows)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", dataset.LoadID.String())
	assert.WithinDuration(t, time.Now().UTC(), dataset.FetchedAt, 5*time.Second)
}

func TestLoadFallsBackOnFetchError(t *testing.T) {
	sheets := &stubSheets{err: fmt.Errorf("%w: connection refused", providers.ErrFetch)}

	dataset := newLoader(sheets, nil).Load(context.Background())

	assert.Equal(t, models.SourceSample, dataset.Source)
	assert.Len(t, dataset.Records, 144, "full synthetic season")
	assert.Equal(t, 0, dataset.DroppedRows)
}

func TestLoadFallsBackOnParseError(t *testing.T) {
	sheets := &stubSheets{err: fmt.Errorf("%w: got HTML instead of CSV", providers.ErrParse)}

	dataset := newLoader(sheets, nil).Load(context.Background())
	assert.Equal(t, models.SourceSample, dataset.Source)
	assert.NotEmpty(t, dataset.Records)
}

func TestLoadSampleIsStableAcrossLoads(t *testing.T) {
	sheets := &stubSheets{err: providers.ErrFetch}
	loader := newLoader(sheets, nil)

	first := loader.Load(context.Background())
	second := loader.Load(context.Background())

	assert.Equal(t, first.Records, second.Records, "seeded sample must not drift between loads")
	assert.NotEqual(t, first.LoadID, second.LoadID, "each load attempt gets its own id")
}

func TestLoadServesFromCache(t *testing.T) {
	sheets := &stubSheets{err: providers.ErrFetch}
	cache := new(MockDatasetCache)
	cached := models.Dataset{Source: models.SourceRemote, Records: []models.ScoreRecord{{Player: "Jacky", Tournament: "暖男杯", Game: "Game 5"}}}

	cache.On("Get", mock.Anything, DatasetCacheKey(), mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.Dataset) = cached
	}).Return(nil)

	dataset := newLoader(sheets, cache).Load(context.Background())

	assert.Equal(t, models.SourceRemote, dataset.Source)
	assert.Len(t, dataset.Records, 1)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadCacheMissLoadsAndStores(t *testing.T) {
	sheets := &stubSheets{err: providers.ErrFetch}
	cache := new(MockDatasetCache)
	cache.On("Get", mock.Anything, DatasetCacheKey(), mock.Anything).Return(ErrCacheMiss)
	cache.On("Set", mock.Anything, DatasetCacheKey(), mock.Anything, 5*time.Minute).Return(nil)

	dataset := newLoader(sheets, cache).Load(context.Background())

	assert.Equal(t, models.SourceSample, dataset.Source)
	cache.AssertExpectations(t)
}

func TestLoadCacheErrorsDegradeToDirectLoad(t *testing.T) {
	sheets := &stubSheets{err: providers.ErrFetch}
	cache := new(MockDatasetCache)
	cache.On("Get", mock.Anything, DatasetCacheKey(), mock.Anything).Return(fmt.Errorf("redis is down"))
	cache.On("Set", mock.Anything, DatasetCacheKey(), mock.Anything, 5*time.Minute).Return(fmt.Errorf("redis is down"))

	dataset := newLoader(sheets, cache).Load(context.Background())

	assert.NotNil(t, dataset, "cache failures never block a load")
	assert.Equal(t, models.SourceSample, dataset.Source)
}

func TestRefreshBustsCache(t *testing.T) {
	sheets := &stubSheets{err: providers.ErrFetch}
	cache := new(MockDatasetCache)
	cache.On("Delete", mock.Anything, []string{DatasetCacheKey()}).Return(nil)
	cache.On("Set", mock.Anything, DatasetCacheKey(), mock.Anything, 5*time.Minute).Return(nil)

	dataset := newLoader(sheets, cache).Refresh(context.Background())

	require.NotNil(t, dataset)
	cache.AssertCalled(t, "Delete", mock.Anything, []string{DatasetCacheKey()})
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
