package featurize

import (
	"context"
	"runtime"
)

// Result is the outcome of normalizing one file with ParseFiles.
type Result struct {
	Path    string
	Dataset *Dataset
	Index   Index
	Err     error
}

// ParseFiles normalizes many files concurrently, guessing each file's format
// with FormatOf. At most workers files are parsed at once; a non-positive
// value means runtime.NumCPU().
//
// Results are returned in the order of paths. Files not yet started when
// ctx is done get ctx.Err() as their error.
func ParseFiles(ctx context.Context, paths []string, opts Options, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(paths))
	jobs := make(chan int)
	done := make(chan struct{})

	for i := 0; i < workers; i++ {
		go func() {
			for i := range jobs {
				fp := paths[i]
				results[i].Path = fp
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				results[i].Dataset, results[i].Index, results[i].Err =
					ParseFile(fp, FormatOf(fp), opts)
			}
			done <- struct{}{}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	for i := 0; i < workers; i++ {
		<-done
	}
	return results
}
