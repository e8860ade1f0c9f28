package wtf8

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// hashTerminator closes every hashed string so that a string and a prefix of
// its concatenation with another never feed the digest the same bytes.
const hashTerminator = 0xfe

// hashContext holds the pre-allocated state for hashing a canonical form
type hashContext struct {
	digest  *xxhash.Digest
	scratch [3]byte // Canonical encoding of an edge surrogate
}

// Hash context pool to avoid allocating a digest per call
var hashContextPool = sync.Pool{
	New: func() interface{} {
		return &hashContext{digest: xxhash.New()}
	},
}

// reset clears the context for reuse without allocating
func (ctx *hashContext) reset() {
	ctx.digest.Reset()
	ctx.scratch = [3]byte{}
}

// sum feeds the canonical form of c: edge surrogates always in their 3-byte form.
func (ctx *hashContext) sum(c canonicalForm) uint64 {
	if c.low != 0 {
		ctx.scratch = c.low.encode()
		_, _ = ctx.digest.Write(ctx.scratch[:])
	}
	_, _ = ctx.digest.Write(c.mid)
	if c.high != 0 {
		ctx.scratch = c.high.encode()
		_, _ = ctx.digest.Write(ctx.scratch[:])
	}
	_, _ = ctx.digest.Write([]byte{hashTerminator})
	return ctx.digest.Sum64()
}

// Hash returns a 64-bit hash of the canonical form. Views that are Equal hash
// equal, whatever split form their edges are in.
func (v Wtf8) Hash() uint64 {
	ctx := hashContextPool.Get().(*hashContext)
	defer func() {
		ctx.reset()
		hashContextPool.Put(ctx)
	}()
	return ctx.sum(canonicalize(v.bytes))
}

// Hash returns the same value as b.AsSlice().Hash().
func (b *Buf) Hash() uint64 {
	return b.AsSlice().Hash()
}
