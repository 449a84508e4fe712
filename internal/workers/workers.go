// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers is a set of workers started and stopped together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}

	return w
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. The first failure cancels the context shared by the others and is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}

	return g.Wait()
}
