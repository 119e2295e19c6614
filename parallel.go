package sealbox

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ParallelConfig controls how EncryptAll and DecryptAll spread work.
// Key derivation dominates the cost of each item, so items are handed
// to a bounded pool of workers.
type ParallelConfig struct {
	// Enabled enables parallel processing
	Enabled bool

	// MaxWorkers is the maximum number of worker goroutines
	// If 0, defaults to runtime.NumCPU()
	MaxWorkers int

	// MinItemsForParallel is the minimum batch size to use parallel processing
	// Below this threshold, sequential processing is used
	MinItemsForParallel int
}

// Validate checks if the parallel configuration is valid
func (p *ParallelConfig) Validate() error {
	if !p.Enabled {
		return nil // Nothing to validate if disabled
	}

	if p.MaxWorkers < 0 {
		return errors.New("parallel max workers cannot be negative")
	}
	if p.MaxWorkers > 1024 {
		return errors.New("parallel max workers must not exceed 1024")
	}
	if p.MinItemsForParallel < 1 {
		return errors.New("parallel min items threshold must be at least 1")
	}

	return nil
}

// DefaultParallelConfig returns the default parallel processing configuration
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Enabled:             true,
		MaxWorkers:          runtime.NumCPU(),
		MinItemsForParallel: 2,
	}
}

// EncryptAll seals every plaintext under passphrase. Each item gets its own
// salt, nonce and key. Results are in input order. On failure the first
// error is returned as a *BatchError and no results are returned.
func (s *Sealer) EncryptAll(plaintexts [][]byte, passphrase string) ([][]byte, error) {
	return s.EncryptAllContext(context.Background(), plaintexts, passphrase)
}

// DecryptAll opens every container under passphrase, in input order
func (s *Sealer) DecryptAll(containers [][]byte, passphrase string) ([][]byte, error) {
	return s.DecryptAllContext(context.Background(), containers, passphrase)
}

// EncryptAllContext is EncryptAll with cancellation. Items not yet started
// when ctx is done are skipped and ctx.Err() is returned.
func (s *Sealer) EncryptAllContext(ctx context.Context, plaintexts [][]byte, passphrase string) ([][]byte, error) {
	return s.runBatch(ctx, plaintexts, func(in []byte) ([]byte, error) {
		return s.Encrypt(in, passphrase)
	})
}

// DecryptAllContext is DecryptAll with cancellation
func (s *Sealer) DecryptAllContext(ctx context.Context, containers [][]byte, passphrase string) ([][]byte, error) {
	return s.runBatch(ctx, containers, func(in []byte) ([]byte, error) {
		return s.Decrypt(in, passphrase)
	})
}

// batchJob represents one item of a batch
type batchJob struct {
	input  []byte
	output []byte
	err    error
	done   bool
}

func (s *Sealer) runBatch(ctx context.Context, inputs [][]byte, fn func([]byte) ([]byte, error)) ([][]byte, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	jobs := make([]batchJob, len(inputs))
	for i := range inputs {
		jobs[i] = batchJob{input: inputs[i]}
	}

	// Determine number of workers
	cfg := s.config.Parallel
	numWorkers := cfg.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Limit workers to number of items
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}

	if !cfg.Enabled || len(jobs) < cfg.MinItemsForParallel || numWorkers == 1 {
		// Sequential processing
		for i := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			process(&jobs[i], fn)
			if jobs[i].err != nil {
				return nil, &BatchError{Index: i, Err: jobs[i].err}
			}
		}
		return collect(jobs), nil
	}

	// Parallel processing
	var wg sync.WaitGroup
	jobChan := make(chan int, len(jobs))
	stop := make(chan struct{})
	var stopOnce sync.Once
	halt := func() { stopOnce.Do(func() { close(stop) }) }

	// Start workers
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				select {
				case <-stop:
					return
				case <-ctx.Done():
					return
				default:
				}
				process(&jobs[idx], fn)
				if jobs[idx].err != nil {
					halt()
					return
				}
			}
		}()
	}

	// Send jobs
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	// Wait for completion
	wg.Wait()

	// Report the lowest-index failure
	for i := range jobs {
		if jobs[i].err != nil {
			return nil, &BatchError{Index: i, Err: jobs[i].err}
		}
	}
	for i := range jobs {
		if !jobs[i].done {
			return nil, ctx.Err()
		}
	}
	return collect(jobs), nil
}

// process runs fn for one job, converting a panic into an error
func process(job *batchJob, fn func([]byte) ([]byte, error)) {
	defer func() {
		if r := recover(); r != nil {
			job.output = nil
			job.err = fmt.Errorf("panic in batch worker: %v", r)
		}
		job.done = true
	}()
	job.output, job.err = fn(job.input)
}

func collect(jobs []batchJob) [][]byte {
	out := make([][]byte, len(jobs))
	for i := range jobs {
		out[i] = jobs[i].output
	}
	return out
}
