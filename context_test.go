package wtf8

import (
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashContextPool(t *testing.T) {
	// Acquire a context from the pool
	ctx := hashContextPool.Get().(*hashContext)

	// Dirty the context
	_, _ = ctx.digest.WriteString("leftover")
	ctx.scratch = [3]byte{0xed, 0xa0, 0x80}

	ctx.reset()

	assert.Equal(t, [3]byte{}, ctx.scratch)
	assert.Equal(t, xxhash.New().Sum64(), ctx.digest.Sum64(), "digest should be back to its initial state")

	hashContextPool.Put(ctx)
}

func TestHashContextSum(t *testing.T) {
	ctx := hashContextPool.Get().(*hashContext)
	defer hashContextPool.Put(ctx)
	ctx.reset()

	got := ctx.sum(canonicalForm{low: 0xbbae, mid: []byte("~"), high: 0xa080})

	expected := xxhash.New()
	_, _ = expected.Write([]byte("\xed\xbb\xae~\xed\xa0\x80\xfe"))
	assert.Equal(t, expected.Sum64(), got)
}

func TestHashContextPoolConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	poolSize := 1000
	want := ViewString("aé 💩").Hash()

	// Simulate concurrent usage of the context pool
	hashes := make([]uint64, poolSize)
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hashes[i] = ViewString("aé 💩").Hash()
		}(i)
	}

	// Wait for all goroutines to finish
	wg.Wait()

	for i, h := range hashes {
		require.Equal(t, want, h, "goroutine %d saw a dirty context", i)
	}
}
