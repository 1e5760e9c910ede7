package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fijnedagvan/dagvan/internal/api"
	"github.com/fijnedagvan/dagvan/internal/cache"
)

const testBase = "https://feed.test/jsonscript.php"

func newTestService(t *testing.T) (*Service, *cache.Store) {
	t.Helper()
	hc := &http.Client{}
	httpmock.ActivateNonDefault(hc)
	t.Cleanup(httpmock.DeactivateAndReset)

	store, err := cache.New(t.TempDir())
	require.NoError(t, err)
	return New(api.NewClient(testBase, "", api.WithHTTPClient(hc)), store), store
}

func TestForDateFetchesAndWritesThrough(t *testing.T) {
	svc, store := newTestService(t)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"dag_id":"7","dagnaam":"Dag van de Arbeid"}]`))

	days := svc.ForDate(context.Background(), "2026-05-01")
	require.Len(t, days, 1)
	assert.Equal(t, "7", days[0].DayID)

	// The raw body must now sit in the file cache.
	raw, ok := store.ReadRaw(cache.DateKey("2026-05-01"))
	require.True(t, ok, "network response was not written through to the cache")
	assert.Contains(t, string(raw), "Dag van de Arbeid")
}

func TestForDateServedFromCacheWithoutNetwork(t *testing.T) {
	svc, store := newTestService(t)

	// No responders registered: any network call would fail the read.
	store.Write(cache.DateKey("2026-05-01"), []byte(`[{"dag_id":"7","dagnaam":"Dag van de Arbeid"}]`))

	days := svc.ForDate(context.Background(), "2026-05-01")
	require.Len(t, days, 1)
	assert.Equal(t, "Dag van de Arbeid", days[0].Name)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestForDateMemoizesParsedResult(t *testing.T) {
	svc, _ := newTestService(t)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"dag_id":"7"}]`))

	svc.ForDate(context.Background(), "2026-05-01")
	svc.ForDate(context.Background(), "2026-05-01")
	assert.Equal(t, 1, httpmock.GetTotalCallCount(), "second read must come from memory")
}

func TestForDateMemoNeverOutlivesFileRecord(t *testing.T) {
	hc := &http.Client{}
	httpmock.ActivateNonDefault(hc)
	t.Cleanup(httpmock.DeactivateAndReset)

	now := time.Now()
	store, err := cache.New(t.TempDir(), cache.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	svc := New(api.NewClient(testBase, "", api.WithHTTPClient(hc)), store)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"dag_id":"old","dagnaam":"Oude Dag"}]`))

	days := svc.ForDate(context.Background(), "2026-05-01")
	require.Len(t, days, 1)
	require.Equal(t, "old", days[0].DayID)

	// Age the record far past its expiry class and change the feed.
	now = now.Add(100 * time.Hour)
	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"dag_id":"new","dagnaam":"Nieuwe Dag"}]`))

	days = svc.ForDate(context.Background(), "2026-05-01")
	require.Len(t, days, 1)
	assert.Equal(t, "new", days[0].DayID, "an expired record must be refetched, not served from memory")
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func TestForDateNetworkFailureYieldsEmpty(t *testing.T) {
	svc, store := newTestService(t)

	httpmock.RegisterResponder(http.MethodGet, testBase+"?date=2026-05-01",
		httpmock.NewStringResponder(http.StatusBadGateway, ""))

	days := svc.ForDate(context.Background(), "2026-05-01")
	assert.Empty(t, days, "read-through must collapse network failure into no data")

	_, ok := store.ReadRaw(cache.DateKey("2026-05-01"))
	assert.False(t, ok, "a failed response must not be cached")
}

func TestForDateCachesEmptyResponse(t *testing.T) {
	svc, store := newTestService(t)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-02"}},
		httpmock.NewStringResponder(http.StatusOK, `[]`))

	days := svc.ForDate(context.Background(), "2026-05-02")
	assert.Empty(t, days)

	raw, ok := store.ReadRaw(cache.DateKey("2026-05-02"))
	require.True(t, ok, "an empty-but-valid response must still be cached")
	assert.Equal(t, "[]", string(raw))
}

func TestForYearUsesYearKey(t *testing.T) {
	svc, store := newTestService(t)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"year": {"2026"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"dag_id":"1"}]`))

	days := svc.ForYear(context.Background(), "2026")
	require.Len(t, days, 1)

	_, ok := store.ReadRaw(cache.YearKey("2026"))
	assert.True(t, ok)
}

func TestRefreshFailsLoudly(t *testing.T) {
	svc, _ := newTestService(t)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		httpmock.NewStringResponder(http.StatusServiceUnavailable, ""))

	err := svc.Refresh(context.Background(), "2026-05-01")
	require.Error(t, err, "Refresh must surface network failure, unlike the read-through paths")
}

func TestRefreshRewritesCache(t *testing.T) {
	svc, store := newTestService(t)

	store.Write(cache.DateKey("2026-05-01"), []byte(`[{"dag_id":"old"}]`))

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"date": {"2026-05-01"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"dag_id":"new","dagnaam":"Vernieuwd"}]`))

	require.NoError(t, svc.Refresh(context.Background(), "2026-05-01"))

	days := svc.ForDate(context.Background(), "2026-05-01")
	require.Len(t, days, 1)
	assert.Equal(t, "new", days[0].DayID)
}

func TestLastKnownGood(t *testing.T) {
	svc, store := newTestService(t)

	assert.Empty(t, svc.LastKnownGood("2026-05-01"), "no cache means no last known good")

	store.Write(cache.DateKey("2026-05-01"), []byte(`[{"dag_id":"7","dagnaam":"Dag van de Arbeid"}]`))
	days := svc.LastKnownGood("2026-05-01")
	require.Len(t, days, 1)
	assert.Equal(t, "7", days[0].DayID)
}

func TestRandomFunFact(t *testing.T) {
	svc, store := newTestService(t)

	_, ok := svc.RandomFunFact()
	assert.False(t, ok, "no cached pool means no fact")

	store.Write(cache.FunFactsKey(), []byte(`[{"id":"1","feitje":"Koffie is een bes."}]`))
	fact, ok := svc.RandomFunFact()
	require.True(t, ok)
	assert.Equal(t, "Koffie is een bes.", fact.Text)

	store.Write(cache.FunFactsKey(), []byte(`[]`))
	_, ok = svc.RandomFunFact()
	assert.False(t, ok, "an empty pool yields no fact")
}

func TestRefreshFunFacts(t *testing.T) {
	svc, store := newTestService(t)

	httpmock.RegisterResponderWithQuery(http.MethodGet, testBase,
		url.Values{"funfacts": {"1"}},
		httpmock.NewStringResponder(http.StatusOK, `[{"id":"1","feitje":"Feit."}]`))

	require.NoError(t, svc.RefreshFunFacts(context.Background()))
	raw, ok := store.ReadRaw(cache.FunFactsKey())
	require.True(t, ok)
	assert.Contains(t, string(raw), "Feit.")
}
