package linode

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataCacheServesFreshEntries(t *testing.T) {
	cache := newMetadataCache(1 * time.Minute)
	var fetches atomic.Int32

	fetch := func() (any, error) {
		fetches.Add(1)
		return "catalogue", nil
	}

	for i := 0; i < 5; i++ {
		v, err := cache.get(t.Context(), "regions", fetch)
		require.NoError(t, err)
		assert.Equal(t, "catalogue", v)
	}
	assert.Equal(t, int32(1), fetches.Load())
}

func TestMetadataCacheExpires(t *testing.T) {
	cache := newMetadataCache(10 * time.Millisecond)
	var fetches atomic.Int32

	fetch := func() (any, error) {
		fetches.Add(1)
		return fetches.Load(), nil
	}

	v, err := cache.get(t.Context(), "types", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	time.Sleep(20 * time.Millisecond)

	v, err = cache.get(t.Context(), "types", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v, "expired entry triggers a refetch")
}

func TestMetadataCacheDoesNotCacheErrors(t *testing.T) {
	cache := newMetadataCache(1 * time.Minute)
	var fetches atomic.Int32
	boom := errors.New("upstream down")

	_, err := cache.get(t.Context(), "images", func() (any, error) {
		fetches.Add(1)
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	v, err := cache.get(t.Context(), "images", func() (any, error) {
		fetches.Add(1)
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, int32(2), fetches.Load())
}

func TestMetadataCacheInvalidate(t *testing.T) {
	cache := newMetadataCache(1 * time.Minute)
	var fetches atomic.Int32

	fetch := func() (any, error) {
		fetches.Add(1)
		return "v", nil
	}

	_, err := cache.get(t.Context(), "regions", fetch)
	require.NoError(t, err)

	cache.invalidate("regions")

	_, err = cache.get(t.Context(), "regions", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fetches.Load())
}

func TestMetadataCacheDeduplicatesConcurrentFetches(t *testing.T) {
	cache := newMetadataCache(1 * time.Minute)
	var fetches atomic.Int32
	gate := make(chan struct{})

	fetch := func() (any, error) {
		fetches.Add(1)
		<-gate
		return "shared", nil
	}

	const workers = 10
	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cache.get(context.Background(), "regions", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let the goroutines pile up on the in-flight fetch before releasing it.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load(), "concurrent callers share one fetch")
	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestListRegionsUsesCache(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/regions", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": [{"id": "us-east", "label": "Newark, NJ"}], "page": 1, "pages": 1, "results": 1}`))
	})

	for i := 0; i < 3; i++ {
		page, err := c.ListRegions(t.Context())
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "us-east", page.Data[0].ID)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryingClientSharesMetadataCache(t *testing.T) {
	var calls atomic.Int32
	rc := newRetryingTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data": [], "page": 1, "pages": 1, "results": 0}`))
	}, fastPolicy(1))

	_, err := rc.ListTypes(t.Context())
	require.NoError(t, err)
	_, err = rc.ListTypes(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
