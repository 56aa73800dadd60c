// Copyright 2026 Georg Jung
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// MetricsRecorder records the outcome of one processing attempt. The
// recorder reads the duration off the item itself (ExtractDuration,
// DecodeDuration, FormatDuration) depending on which stage it serves.
type MetricsRecorder func(item *Item, err error)

// ShouldRecordMetrics gates metric recording per item, so a stage can
// skip items it never really touched (decode skips items whose
// extraction already failed).
type ShouldRecordMetrics func(item *Item) bool

// StageWorkerPool fans one stage out over several workers. Items are
// read from the input channel, processed, and forwarded to the output
// channel. Failed items are forwarded too, carrying their error, so
// downstream stages and callers can account for every submission.
type StageWorkerPool struct {
	stage         Stage
	numWorkers    int
	input         <-chan *Item
	output        chan<- *Item
	errors        chan<- error
	recordMetrics MetricsRecorder
	shouldRecord  ShouldRecordMetrics
	log           *zap.Logger
	wg            sync.WaitGroup
	started       atomic.Bool
}

// StageWorkerPoolConfig configures a StageWorkerPool.
type StageWorkerPoolConfig struct {
	// Stage to run. Required; NewStageWorkerPool panics when nil.
	Stage Stage
	// NumWorkers is clamped to at least 1.
	NumWorkers int
	// Input carries items into the pool.
	Input <-chan *Item
	// Output receives every item after processing, failed or not.
	Output chan<- *Item
	// Errors receives stage errors; nil disables error reporting.
	Errors chan<- error
	// RecordMetrics runs after each processing attempt; nil disables.
	RecordMetrics MetricsRecorder
	// ShouldRecord gates RecordMetrics per item; nil records everything.
	ShouldRecord ShouldRecordMetrics
}

// NewStageWorkerPool creates a worker pool for the given stage. Leaving
// Input or Output nil makes the workers block forever once started.
func NewStageWorkerPool(config StageWorkerPoolConfig) *StageWorkerPool {
	if config.Stage == nil {
		panic(ErrNilStage)
	}
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &StageWorkerPool{
		stage:         config.Stage,
		numWorkers:    numWorkers,
		input:         config.Input,
		output:        config.Output,
		errors:        config.Errors,
		recordMetrics: config.RecordMetrics,
		shouldRecord:  config.ShouldRecord,
		log:           logger.With(zap.String("stage", config.Stage.Name())),
	}
}

// Start launches the workers. Calling it again has no effect.
func (p *StageWorkerPool) Start(ctx context.Context) {
	if p.started.Swap(true) {
		return
	}
	p.log.Debug("starting workers", zap.Int("workers", p.numWorkers))
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

// Stop waits for all workers to exit. Workers exit once the input
// channel is closed and drained or the start context ends.
func (p *StageWorkerPool) Stop() {
	p.wg.Wait()
}

func (p *StageWorkerPool) run(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-p.input:
			if !ok {
				return
			}
			if !p.handle(ctx, item) {
				return
			}
		}
	}
}

// handle processes one item, records its outcome, and forwards it. It
// reports false when the context ended mid-send and the worker should
// exit instead of continuing with the next item.
func (p *StageWorkerPool) handle(ctx context.Context, item *Item) bool {
	err := p.stage.Process(ctx, item)

	// A context error means the attempt never completed; anything else
	// is a real outcome worth counting.
	if p.recordMetrics != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) &&
		(p.shouldRecord == nil || p.shouldRecord(item)) {
		p.recordMetrics(item, err)
	}

	if err != nil {
		p.log.Debug("stage error",
			zap.Uint64("seq", item.SequenceNumber()),
			zap.Error(err))
		if p.errors != nil {
			select {
			case p.errors <- err:
			case <-ctx.Done():
				return false
			}
		}
	}

	select {
	case p.output <- item:
	case <-ctx.Done():
		return false
	}
	return true
}

// ExtractMetricsRecorder records extract-stage outcomes on metrics.
func ExtractMetricsRecorder(metrics *PipelineMetrics) MetricsRecorder {
	if metrics == nil {
		return nil
	}
	return func(item *Item, err error) {
		metrics.RecordExtract(item.ExtractDuration(), err)
	}
}

// DecodeMetricsRecorder records decode-stage outcomes on metrics.
func DecodeMetricsRecorder(metrics *PipelineMetrics) MetricsRecorder {
	if metrics == nil {
		return nil
	}
	return func(item *Item, err error) {
		metrics.RecordDecode(item.DecodeDuration(), err)
	}
}

// FormatMetricsRecorder records format-stage outcomes on metrics.
func FormatMetricsRecorder(metrics *PipelineMetrics) MetricsRecorder {
	if metrics == nil {
		return nil
	}
	return func(item *Item, err error) {
		metrics.RecordFormat(item.FormatDuration(), err)
	}
}

// AlwaysRecordMetrics records metrics for every item.
func AlwaysRecordMetrics(item *Item) bool {
	return true
}

// RecordIfExtracted records metrics only for items whose payload was
// successfully extracted, so extraction failures do not show up as
// decode errors as well.
func RecordIfExtracted(item *Item) bool {
	return item.IsExtracted()
}
