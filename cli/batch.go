package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/samber/lo"
)

type (
	Job struct {
		Input  string
		Output string
	}
	Totals struct {
		Total     int64
		Extracted int64
	}
	BatchOptions struct {
		Convert ConvertOptions
		Jobs    int
		Silent  bool
	}
	indexedResult struct {
		index  int
		result FileResult
		err    error
	}
)

// CreateJobs pairs every input with its destination: the input itself when
// inPlace is set, nothing on a dry run, output otherwise.
func CreateJobs(inputs []string, output string, inPlace bool, dryRun bool) []Job {
	return lo.Map(
		inputs,
		func(input string, _ int) Job {
			switch {
			case inPlace:
				return Job{Input: input, Output: input}
			case dryRun:
				return Job{Input: input}
			default:
				return Job{Input: input, Output: output}
			}
		},
	)
}

func Fold(results []FileResult) Totals {
	return lo.Reduce(
		results,
		func(acc Totals, result FileResult, _ int) Totals {
			return Totals{
				Total:     acc.Total + result.Total,
				Extracted: acc.Extracted + result.Extracted,
			}
		},
		Totals{},
	)
}

// RunBatch converts every job, options.Jobs at a time. Results keep the order
// of jobs. The first I/O failure stops the batch.
func RunBatch(ctx context.Context, jobs []Job, options BatchOptions, out io.Writer) ([]FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := options.Jobs
	if workers < 1 {
		workers = 1
	}
	queue := make(chan int)
	done := make(chan indexedResult)
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range queue {
				job := jobs[index]
				result, err := ConvertFile(ctx, job.Input, job.Output, options.Convert)
				done <- indexedResult{index: index, result: result, err: err}
			}
		}()
	}
	go func() {
		defer close(queue)
		for index := range jobs {
			select {
			case queue <- index:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(done)
	}()

	results := make([]FileResult, len(jobs))
	var firstErr error
	for indexed := range done {
		if indexed.err != nil {
			if firstErr == nil {
				firstErr = indexed.err
				cancel()
			}
			continue
		}
		results[indexed.index] = indexed.result
		if !options.Silent && indexed.result.Err == nil {
			PrintFileResult(out, indexed.result)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func PrintSummary(w io.Writer, totals Totals, elapsed time.Duration) {
	_, _ = fmt.Fprintf(
		w,
		"---\nExtracted %.0f of %.0f MB (%.0f %%) -- Time: %.3f s\n",
		megabytes(totals.Extracted),
		megabytes(totals.Total),
		percent(totals.Extracted, totals.Total),
		elapsed.Seconds(),
	)
}
