// Package bench measures the throughput of registered digests and block
// ciphers by invoking them repeatedly from a pool of workers. Every worker
// owns its message, key and output buffers; one digest still processes its
// blocks in order.
package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/guilt/gsm/pkg/common"
	"github.com/guilt/gsm/pkg/log"
)

var logger = log.NewLogger()

// batchSize is the number of operations handed to a worker at a time.
const batchSize = 256

// Result is the outcome of benchmarking one algorithm.
type Result struct {
	Name    string
	Ops     int
	Bytes   int64
	Elapsed time.Duration

	sink byte
}

// OpsPerSec returns operations per second.
func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// MBPerSec returns throughput in megabytes (1e6 bytes) per second.
func (r Result) MBPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / 1e6 / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%-12s %10d ops %12.0f ops/s %10.2f MB/s", r.Name, r.Ops, r.OpsPerSec(), r.MBPerSec())
}

// op runs n operations with worker-private state and returns a byte derived
// from the outputs.
type op func(n int) byte

// newOp builds per-worker state for one algorithm.
type newOp func() (op, error)

// Run benchmarks every algorithm in cfg in order. Digest names are looked up
// first, then cipher names.
func Run(ctx context.Context, cfg Config, progress common.ProgressFunc) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		mk, perOp, err := lookup(name, cfg.Size)
		if err != nil {
			return results, err
		}
		logger.Debug("benchmarking", "algo", name, "iterations", cfg.Iterations, "workers", cfg.Workers, "bytes", perOp)
		res, err := runPool(ctx, name, cfg, mk, progress(fmt.Sprintf("Benchmarking %s", name), int64(cfg.Iterations)))
		if err != nil {
			return results, errors.Wrap(err, name)
		}
		res.Bytes = int64(res.Ops) * perOp
		results = append(results, res)
	}
	return results, nil
}

func lookup(name string, size int) (newOp, int64, error) {
	if h, err := common.GetHasher(name); err == nil {
		return hasherOp(h, size), int64(size), nil
	}
	if c, err := common.GetCipher(name); err == nil {
		return cipherOp(c), int64(c.BlockSize), nil
	}
	return nil, 0, errors.Errorf("unknown algorithm: %s", name)
}

func hasherOp(h common.Hasher, size int) newOp {
	return func() (op, error) {
		msg := pattern(size)
		return func(n int) byte {
			var acc byte
			for i := 0; i < n; i++ {
				acc ^= h.Sum(msg)[0]
			}
			return acc
		}, nil
	}
}

func cipherOp(c common.Cipher) newOp {
	return func() (op, error) {
		block, err := c.NewBlock(pattern(c.KeySize))
		if err != nil {
			return nil, err
		}
		buf := pattern(c.BlockSize)
		return func(n int) byte {
			for i := 0; i < n; i++ {
				block.Encrypt(buf, buf)
			}
			return buf[0]
		}, nil
	}
}

// pattern returns n bytes of a fixed, non-zero filler.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 1)
	}
	return b
}

type batchResult struct {
	ops  int
	sink byte
	err  error
}

func runPool(ctx context.Context, name string, cfg Config, mk newOp, lc common.FileLifecycle) (Result, error) {
	jobs := make(chan int, cfg.Iterations/batchSize+1)
	for left := cfg.Iterations; left > 0; left -= batchSize {
		jobs <- min(left, batchSize)
	}
	close(jobs)

	resultsChan := make(chan batchResult, cfg.Workers)
	var wg sync.WaitGroup

	lc.OnStart(int64(cfg.Iterations))
	defer lc.OnEnd()
	start := time.Now()
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run, err := mk()
			if err != nil {
				resultsChan <- batchResult{err: err}
				return
			}
			var done int
			var sink byte
			for n := range jobs {
				if err := ctx.Err(); err != nil {
					resultsChan <- batchResult{ops: done, sink: sink, err: err}
					return
				}
				sink ^= run(n)
				done += n
				lc.OnChunk(int64(n))
			}
			resultsChan <- batchResult{ops: done, sink: sink}
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	res := Result{Name: name}
	var firstErr error
	for r := range resultsChan {
		res.Ops += r.ops
		res.sink ^= r.sink
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
	}
	res.Elapsed = time.Since(start)
	if firstErr != nil {
		return res, firstErr
	}
	return res, nil
}
