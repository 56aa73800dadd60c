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
	"fmt"
	"sync"
	"time"
)

// ErrPendingLimitExceeded is returned when the format stage's pending buffer is full.
var ErrPendingLimitExceeded = errors.New("pipeline: pending message limit exceeded")

// FormatFunc renders one decoded item. The format stage invokes it in
// submission order, ascending by sequence number.
type FormatFunc func(*Item) ([]byte, error)

// FormatStage buffers decoded messages and formats them in sequence
// order, so results leave the pipeline in submission order no matter how
// the parallel stages interleaved.
//
// The internal locking only protects state; ordered execution of
// FormatFunc additionally requires that ProcessWithStatus is called from
// a single goroutine, which FormatStageRunner provides.
type FormatStage struct {
	formatFunc FormatFunc
	maxPending int
	mu         sync.Mutex
	// pending holds out-of-order items keyed by sequence number
	pending map[uint64]*Item
	// nextSequence is the next sequence number to format
	nextSequence uint64
}

// NewFormatStage creates a FormatStage. maxPending caps the out-of-order
// buffer; 0 means unbounded.
func NewFormatStage(formatFunc FormatFunc, maxPending int) *FormatStage {
	return &FormatStage{
		formatFunc:   formatFunc,
		maxPending:   maxPending,
		pending:      make(map[uint64]*Item),
		nextSequence: 0,
	}
}

// Name returns "format".
func (s *FormatStage) Name() string {
	return "format"
}

// Process buffers or formats the item. It returns nil even when the item
// was merely buffered; format errors are stored on the item itself.
func (s *FormatStage) Process(ctx context.Context, item *Item) error {
	_, err := s.ProcessWithStatus(ctx, item)
	return err
}

// ProcessWithStatus handles one item and returns every item completed by
// the call. An in-sequence item is formatted right away together with
// any buffered successors that became ready; an out-of-sequence item is
// buffered and nil is returned. Returning the completed items, rather
// than invoking a callback per item, lets the single consumer forward a
// released batch without losing any of it.
func (s *FormatStage) ProcessWithStatus(ctx context.Context, item *Item) ([]*Item, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.Lock()

	if item.SequenceNumber() == s.nextSequence {
		s.nextSequence++
		s.mu.Unlock()
		// Items that failed extraction or decoding advance the sequence
		// but are never rendered.
		if readyToFormat(item) {
			s.formatItem(ctx, item)
		}
		buffered := s.formatPending(ctx)
		processed := make([]*Item, 0, 1+len(buffered))
		processed = append(processed, item)
		processed = append(processed, buffered...)
		return processed, nil
	}

	// Out of sequence. Buffer unconditionally: rejecting the item here
	// would leave a hole at its sequence number and stall the stage.
	s.pending[item.SequenceNumber()] = item
	pendingCount := len(s.pending)
	s.mu.Unlock()

	// The limit signals backpressure to the caller after the fact.
	if s.maxPending > 0 && pendingCount > s.maxPending {
		return nil, ErrPendingLimitExceeded
	}
	return nil, nil
}

// formatItem renders a single item. The lock must not be held.
func (s *FormatStage) formatItem(ctx context.Context, item *Item) {
	select {
	case <-ctx.Done():
		item.SetFormatError(ctx.Err(), 0)
		return
	default:
	}

	start := time.Now()
	var out []byte
	var err error
	if s.formatFunc != nil {
		out, err = s.formatFunc(item)
	}
	duration := time.Since(start)

	if err != nil {
		if src := item.Source(); src != "" {
			err = fmt.Errorf("%s: %w", src, err)
		}
		item.SetFormatError(err, duration)
	} else {
		item.SetOutput(out, duration)
	}
}

// formatPending drains the pending buffer for as long as consecutive
// sequence numbers are present, releasing the lock around each
// formatFunc call.
func (s *FormatStage) formatPending(ctx context.Context) []*Item {
	var processed []*Item
	for {
		select {
		case <-ctx.Done():
			return processed
		default:
		}

		s.mu.Lock()
		item, ok := s.pending[s.nextSequence]
		if !ok {
			s.mu.Unlock()
			return processed
		}
		delete(s.pending, s.nextSequence)
		s.nextSequence++
		s.mu.Unlock()

		if readyToFormat(item) {
			s.formatItem(ctx, item)
		}

		processed = append(processed, item)
	}
}

// readyToFormat reports whether the earlier stages succeeded. Failed
// items still travel through the stage so the output stays gapless.
func readyToFormat(item *Item) bool {
	return item.ExtractError() == nil && item.DecodeError() == nil
}

// Reset clears the buffer and sequence tracking for reuse.
func (s *FormatStage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = make(map[uint64]*Item)
	s.nextSequence = 0
}

// PendingCount returns the number of buffered out-of-order items.
func (s *FormatStage) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// FormatStageRunner drives a FormatStage from a single goroutine,
// forwarding completed items downstream.
type FormatStageRunner struct {
	stage   *FormatStage
	input   <-chan *Item
	output  chan<- *Item
	errors  chan<- error
	metrics *PipelineMetrics
	done    chan struct{}
	running bool
	mu      sync.Mutex
}

// NewFormatStageRunner creates a runner over the given channels.
func NewFormatStageRunner(
	stage *FormatStage,
	input <-chan *Item,
	output chan<- *Item,
	errors chan<- error,
) *FormatStageRunner {
	return &FormatStageRunner{
		stage:  stage,
		input:  input,
		output: output,
		errors: errors,
		done:   make(chan struct{}),
	}
}

// SetMetrics attaches a metrics collector. Call it before Start; the
// runner reads the field without locking.
func (r *FormatStageRunner) SetMetrics(metrics *PipelineMetrics) {
	r.metrics = metrics
}

// Start launches the runner goroutine.
func (r *FormatStageRunner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.done = make(chan struct{})
	r.mu.Unlock()

	go r.run(ctx)
}

// Stop blocks until the runner has exited. It does not itself signal a
// stop; the runner exits when the start context ends or the input
// channel is closed and drained.
func (r *FormatStageRunner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	// Snapshot under the lock so a concurrent Start cannot swap the
	// channel out from under us.
	done := r.done
	r.mu.Unlock()

	<-done
}

func (r *FormatStageRunner) run(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.running = false
		close(r.done)
		r.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-r.input:
			if !ok {
				return
			}

			processed, err := r.stage.ProcessWithStatus(ctx, item)
			if err != nil {
				select {
				case r.errors <- err:
				case <-ctx.Done():
					return
				}
				continue
			}

			// processed covers the input item plus every buffered item
			// it released; each must be forwarded exactly once.
			for _, p := range processed {
				r.forwardItem(ctx, p)
			}
		}
	}
}

// forwardItem records format metrics, sends the item downstream, and
// reports its format error if it has one.
func (r *FormatStageRunner) forwardItem(ctx context.Context, item *Item) {
	// Only items that reached the formatter carry format metrics; the
	// earlier-stage failures were already counted by their own pools.
	if r.metrics != nil && readyToFormat(item) {
		r.metrics.RecordFormat(item.FormatDuration(), item.FormatError())
		r.metrics.RecordPipelineLatency(item.TotalDuration())
	}

	select {
	case r.output <- item:
	case <-ctx.Done():
		return
	}

	if formatErr := item.FormatError(); formatErr != nil {
		select {
		case r.errors <- formatErr:
		case <-ctx.Done():
			return
		}
	}
}
