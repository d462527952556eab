package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wurl "github.com/go-whatwg/url"
)

// batchResult is one worker's outcome for a single input line.
type batchResult struct {
	input string
	href  string
	err   error
}

func newBatchCmd() *cobra.Command {
	var workers int
	var base string
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Parse a large list of URLs concurrently using a worker pool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening input")
				}
				defer f.Close()
				in = f
			}

			var baseURL *wurl.URL
			if base != "" {
				b, err := wurl.Parse(base, nil)
				if err != nil {
					return errors.Wrap(err, "parsing --base")
				}
				baseURL = b
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			return runBatch(ctx, in, os.Stdout, baseURL, workers)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 8, "number of concurrent parser workers")
	cmd.Flags().StringVar(&base, "base", "", "base URL to resolve every input line against")
	return cmd
}

// runBatch spawns a fixed-size worker pool over jobs read line-by-line
// from in, writing successes to out and logging failures, grounded on
// the teacher's Schedule/SpawnWorkers worker-pool shape: a jobs channel
// feeding N goroutines, atomic counters for progress, and a
// context.Context for early cancellation via Ctrl-C.
func runBatch(ctx context.Context, in io.Reader, out io.Writer, base *wurl.URL, workers int) error {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	results := make(chan batchResult)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			parseWorker(ctx, jobs, results, base)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var succeeded, failed int64
	done := make(chan error, 1)
	go func() {
		w := bufio.NewWriter(out)
		defer w.Flush()
		for r := range results {
			if r.err != nil {
				atomic.AddInt64(&failed, 1)
				logrus.WithError(r.err).WithField("input", r.input).Warn("failed to parse URL")
				continue
			}
			atomic.AddInt64(&succeeded, 1)
			w.WriteString(r.href)
			w.WriteByte('\n')
		}
		done <- w.Flush()
	}()

	scanErr := feedJobs(ctx, bufio.NewScanner(in), jobs)

	if err := <-done; err != nil {
		return errors.Wrap(err, "writing output")
	}

	logrus.WithFields(logrus.Fields{
		"succeeded": atomic.LoadInt64(&succeeded),
		"failed":    atomic.LoadInt64(&failed),
	}).Info("batch parse finished")

	return scanErr
}

// feedJobs scans one line per iteration into jobs, closing it when the
// scanner is exhausted or ctx is cancelled.
func feedJobs(ctx context.Context, scanner *bufio.Scanner, jobs chan<- string) error {
	defer close(jobs)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		select {
		case jobs <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// parseWorker is one pool goroutine: it pulls lines off jobs until the
// channel closes or ctx is cancelled, parsing each against base.
func parseWorker(ctx context.Context, jobs <-chan string, results chan<- batchResult, base *wurl.URL) {
	for {
		select {
		case line, ok := <-jobs:
			if !ok {
				return
			}
			u, err := wurl.Parse(line, base)
			if err != nil {
				results <- batchResult{input: line, err: err}
				continue
			}
			results <- batchResult{input: line, href: u.Href()}
		case <-ctx.Done():
			return
		}
	}
}
