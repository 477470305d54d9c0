package media

import (
	"sync"

	"media-viewer-core/internal/logging"
	"media-viewer-core/internal/workers"
)

// maxBatchWorkers bounds concurrent loads; each one opens a file.
const maxBatchWorkers = 16

// BatchResult is the outcome of loading one path in a batch.
type BatchResult struct {
	Path   string  `json:"path"`
	Record *Record `json:"record,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// LoadMany loads every path concurrently and returns the results in input
// order. Each path goes through the same single-file Load, which shares no
// state with other calls; the only parallelism is across independent paths.
// A failing path does not affect the others.
func (s *Service) LoadMany(paths []string) []BatchResult {
	results := make([]BatchResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	numWorkers := workers.ForIO(maxBatchWorkers)
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	logging.Debug("Loading %d file(s) with %d worker(s)", len(paths), numWorkers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = s.loadOne(paths[idx])
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (s *Service) loadOne(path string) BatchResult {
	record, err := s.Load(path)
	if err != nil {
		return BatchResult{Path: path, Error: err.Error()}
	}
	return BatchResult{Path: path, Record: record}
}
