// Package hashsearch brute-forces MD5 digests of "prefix+n" for increasing n.
//
// Candidates are hashed in batches; each batch is split across a bounded
// errgroup of workers and fully settled before the next one starts, so the
// lowest matching n always wins regardless of scheduling.
package hashsearch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"iter"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// ErrBadOption is the panic value of option constructors given a
// non-positive size.
var ErrBadOption = errors.New("hashsearch: batch size and workers must be positive")

// Digest is a raw MD5 sum.
type Digest = [md5.Size]byte

// Match is a candidate whose digest satisfied the predicate.
type Match struct {
	N      int
	Digest Digest
}

// Options tunes the batch layout.
type Options struct {
	// BatchSize is the number of candidates hashed per round. Default 0x10000.
	BatchSize int
	// Workers bounds concurrent goroutines per batch. Default GOMAXPROCS.
	Workers int
}

// Option configures FirstMatch and Stream.
type Option func(*Options)

// DefaultOptions returns 0x10000-candidate batches over GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{BatchSize: 0x10000, Workers: runtime.GOMAXPROCS(0)}
}

// WithBatchSize sets the candidates per batch. Panics if n < 1.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadOption.Error())
		}
		o.BatchSize = n
	}
}

// WithWorkers sets the goroutine limit per batch. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadOption.Error())
		}
		o.Workers = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Sum hashes prefix followed by the decimal form of n.
func Sum(prefix string, n int) Digest {
	buf := make([]byte, 0, len(prefix)+20)
	buf = append(buf, prefix...)
	buf = strconv.AppendInt(buf, int64(n), 10)

	return md5.Sum(buf)
}

// Stretched returns the hex MD5 of s re-hashed rounds times in total:
// rounds = 1 is the plain hex digest of s.
func Stretched(s string, rounds int) string {
	var hexBuf [2 * md5.Size]byte
	data := []byte(s)
	for i := 0; i < rounds; i++ {
		sum := md5.Sum(data)
		hex.Encode(hexBuf[:], sum[:])
		data = hexBuf[:]
	}

	return string(data)
}

// FiveZeros reports whether the hex form of d starts with "00000".
func FiveZeros(d Digest) bool {
	return d[0] == 0 && d[1] == 0 && d[2] < 0x10
}

// chunks splits [start, start+size) into at most workers contiguous ranges.
func chunks(start, size, workers int) [][2]int {
	per := (size + workers - 1) / workers
	out := make([][2]int, 0, workers)
	for lo := start; lo < start+size; lo += per {
		out = append(out, [2]int{lo, min(lo+per, start+size)})
	}

	return out
}

// FirstMatch returns the lowest n ≥ from whose digest satisfies pred.
// It only returns early with ctx's error.
func FirstMatch(ctx context.Context, prefix string, from int, pred func(Digest) bool, opts ...Option) (Match, error) {
	o := buildOptions(opts)

	for start := from; ; start += o.BatchSize {
		if err := ctx.Err(); err != nil {
			return Match{}, err
		}

		parts := chunks(start, o.BatchSize, o.Workers)
		found := make([]*Match, len(parts))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Workers)
		for i, r := range parts {
			g.Go(func() error {
				for n := r[0]; n < r[1]; n++ {
					if n&0xfff == 0 && gctx.Err() != nil {
						return gctx.Err()
					}
					if d := Sum(prefix, n); pred(d) {
						found[i] = &Match{N: n, Digest: d}
						return nil
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Match{}, err
		}
		// chunks are ordered, so the first hit is the lowest
		for _, m := range found {
			if m != nil {
				return *m, nil
			}
		}
	}
}

// Stream yields (n, Stretched(prefix+n, rounds)) for n = 0, 1, 2, ... in
// order. Each batch is computed in parallel before any of it is yielded.
// The sequence ends early when ctx is cancelled; callers check ctx.Err().
func Stream(ctx context.Context, prefix string, rounds int, opts ...Option) iter.Seq2[int, string] {
	o := buildOptions(opts)

	return func(yield func(int, string) bool) {
		batch := make([]string, o.BatchSize)
		for start := 0; ; start += o.BatchSize {
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(o.Workers)
			for _, r := range chunks(start, o.BatchSize, o.Workers) {
				g.Go(func() error {
					for n := r[0]; n < r[1]; n++ {
						if gctx.Err() != nil {
							return gctx.Err()
						}
						batch[n-start] = Stretched(prefix+strconv.Itoa(n), rounds)
					}
					return nil
				})
			}
			if g.Wait() != nil {
				return
			}
			for i, h := range batch {
				if !yield(start+i, h) {
					return
				}
			}
		}
	}
}
