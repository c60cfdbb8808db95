package memo_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/rootdi/memo"
)

// TestMemoize_ComputesOncePerKey verifies the wrapped function runs once per distinct key.
func TestMemoize_ComputesOncePerKey(t *testing.T) {
	t.Parallel()

	calls := map[int]int{}
	square := memo.Memoize(func(n int) int {
		calls[n]++
		return n * n
	})

	assert.Equal(t, 16, square(4))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))

	assert.Equal(t, map[int]int{3: 1, 4: 1}, calls)
}

// TestMemoize_ReturnsSameReference verifies a cached pointer is handed back unchanged.
func TestMemoize_ReturnsSameReference(t *testing.T) {
	t.Parallel()

	type box struct{ n int }
	get := memo.Memoize(func(string) *box { return &box{} })

	a := get("k")
	b := get("k")
	c := get("other")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

// TestMemoize_IndependentClosures verifies two wrappers of the same function do not share a cache.
func TestMemoize_IndependentClosures(t *testing.T) {
	t.Parallel()

	calls := 0
	fn := func(string) int {
		calls++
		return calls
	}

	first := memo.Memoize(fn)
	second := memo.Memoize(fn)

	assert.Equal(t, 1, first("k"))
	assert.Equal(t, 2, second("k"))
	assert.Equal(t, 1, first("k"))
	assert.Equal(t, 2, calls)
}

// TestSync_ConcurrentCallersShareOneCall verifies concurrent misses are coalesced.
func TestSync_ConcurrentCallersShareOneCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	get := memo.Sync(func(k string) string {
		calls.Add(1)
		<-release
		return k + "!"
	})

	const n = 16
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = get("k")
		}(i)
	}
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "k!", r)
	}
	assert.Equal(t, "k!", get("k"))
	assert.Equal(t, int32(1), calls.Load())
}

type pointerKey struct{ ID int }

// TestSyncErr_DistinctPointerKeys verifies concurrent misses on distinct pointers to equal values stay separate.
func TestSyncErr_DistinctPointerKeys(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	get := memo.SyncErr(func(k *pointerKey) (*pointerKey, error) {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return k, nil
	})

	a, b := &pointerKey{ID: 1}, &pointerKey{ID: 1}
	var ga, gb *pointerKey
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); ga, _ = get(a) }()
	go func() { defer wg.Done(); gb, _ = get(b) }()

	// both calls must be running at once; a merged call would block here
	<-started
	<-started
	close(release)
	wg.Wait()

	assert.Same(t, a, ga)
	assert.Same(t, b, gb)
	assert.Equal(t, int32(2), calls.Load())

	again, err := get(b)
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.Equal(t, int32(2), calls.Load())
}

// TestSync_ConcurrentDistinctKeys verifies each key computes once and gets its own value under contention.
func TestSync_ConcurrentDistinctKeys(t *testing.T) {
	t.Parallel()

	var calls [4]atomic.Int32
	get := memo.Sync(func(k any) int {
		switch k {
		case 1:
			calls[0].Add(1)
			return 10
		case int64(1):
			calls[1].Add(1)
			return 20
		case "1":
			calls[2].Add(1)
			return 30
		default:
			calls[3].Add(1)
			return 40
		}
	})

	keys := []any{1, int64(1), "1", uint8(1)}
	want := []int{10, 20, 30, 40}

	const rounds = 8
	var wg sync.WaitGroup
	for r := 0; r < rounds; r++ {
		for i := range keys {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.Equal(t, want[i], get(keys[i]))
			}(i)
		}
	}
	wg.Wait()

	for i := range calls {
		assert.Equal(t, int32(1), calls[i].Load(), "key %#v", keys[i])
	}
}

// TestCache_PanicReleasesWaiters verifies a panicking call does not leave the key stuck in flight.
func TestCache_PanicReleasesWaiters(t *testing.T) {
	t.Parallel()

	calls := 0
	c := memo.New(func(k string) (int, error) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		return len(k), nil
	})

	assert.Panics(t, func() { _, _ = c.Get("abc") })
	assert.Equal(t, 0, c.Len())

	v, err := c.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

// TestSyncErr_FailuresAreNotCached verifies a failed call is retried on the next Get.
func TestSyncErr_FailuresAreNotCached(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	get := memo.SyncErr(func(k string) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return len(k), nil
	})

	_, err := get("abc")
	require.ErrorIs(t, err, boom)

	v, err := get("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = get("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, calls)
}

// TestCache_LenAndForget verifies Forget evicts a single key and forces recomputation.
func TestCache_LenAndForget(t *testing.T) {
	t.Parallel()

	calls := 0
	c := memo.New(func(k int) (int, error) {
		calls++
		return k * 10, nil
	})

	_, _ = c.Get(1)
	_, _ = c.Get(2)
	_, _ = c.Get(1)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, calls)

	c.Forget(1)
	assert.Equal(t, 1, c.Len())

	v, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 3, calls)
}

// TestCache_NilInterfaceValue verifies a nil interface result is cached without panicking.
func TestCache_NilInterfaceValue(t *testing.T) {
	t.Parallel()

	calls := 0
	c := memo.New(func(string) (error, error) {
		calls++
		return nil, nil
	})

	v, err := c.Get("k")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, _ = c.Get("k")
	assert.Equal(t, 1, calls)
}
