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
	"time"

	"go.uber.org/zap"

	"github.com/georg-jung/IppDecoder/capture"
	"github.com/georg-jung/IppDecoder/internal/logging"
)

var logger = logging.New("pipeline")

// ErrPipelineStopped is returned when submitting to a stopped pipeline.
var ErrPipelineStopped = errors.New("pipeline is stopped")

// ErrPipelineNotStarted is returned when using a pipeline before Start.
var ErrPipelineNotStarted = errors.New("pipeline not started")

// emptyResults is handed out by Results before Start so callers never
// block on a nil channel.
var emptyResults = func() <-chan *Item {
	ch := make(chan *Item)
	close(ch)
	return ch
}()

// notStartedErrors builds a fresh single-error channel per call so every
// caller of Errors sees ErrPipelineNotStarted, not just the first.
func notStartedErrors() <-chan error {
	ch := make(chan error, 1)
	ch <- ErrPipelineNotStarted
	close(ch)
	return ch
}

// MessagePipeline runs captures through three stages: parallel payload
// extraction, parallel IPP decoding, and a single-goroutine format
// runner that emits results in submission order.
type MessagePipeline struct {
	config  PipelineConfig
	metrics *PipelineMetrics

	extractStage *ExtractStage
	decodeStage  *DecodeStage
	formatStage  *FormatStage

	extractPool  *StageWorkerPool
	decodePool   *StageWorkerPool
	formatRunner *FormatStageRunner

	// Channels between stages, created on Start
	submitChan    chan *Item
	extractedChan chan *Item
	decodedChan   chan *Item
	resultsChan   chan *Item
	errorsChan    chan error

	sequenceCounter uint64
	ctx             context.Context
	cancel          context.CancelFunc
	started         atomic.Bool
	stopped         atomic.Bool
	wg              sync.WaitGroup
	mu              sync.Mutex   // serializes Start/Stop
	submitMu        sync.RWMutex // pairs Submit sends with Stop's channel close
}

// NewMessagePipeline creates a pipeline from functional options.
//
// Example:
//
//	p := NewMessagePipeline(
//	    WithDecodeWorkers(4),
//	    WithFormatFunc(JSONFormatter(nil)),
//	)
func NewMessagePipeline(opts ...PipelineOption) *MessagePipeline {
	config := DefaultPipelineConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &MessagePipeline{
		config:  config,
		metrics: NewPipelineMetrics(),
	}
}

// Start wires the stages together and launches their workers. It is
// idempotent while running; a stopped pipeline cannot be restarted.
func (p *MessagePipeline) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped.Load() {
		return ErrPipelineStopped
	}
	if p.started.Load() {
		return nil
	}

	// The final stage needs a formatter to produce output. WithConfig
	// can leave it nil, in which case plain text rendering is used.
	if p.config.FormatFunc == nil {
		p.config.FormatFunc = TextFormatter(nil)
	}

	p.ctx, p.cancel = context.WithCancel(ctx)

	bufSize := p.config.BufferSize
	p.submitChan = make(chan *Item, bufSize)
	p.extractedChan = make(chan *Item, bufSize)
	p.decodedChan = make(chan *Item, bufSize)
	p.resultsChan = make(chan *Item, bufSize)
	p.errorsChan = make(chan error, bufSize)

	p.extractStage = NewExtractStage()
	p.decodeStage = NewDecodeStage(p.config.DecoderOptions)
	p.formatStage = NewFormatStage(p.config.FormatFunc, p.config.MaxPendingMessages)

	p.extractPool = NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:         p.extractStage,
		NumWorkers:    p.config.ExtractWorkers,
		Input:         p.submitChan,
		Output:        p.extractedChan,
		Errors:        p.errorsChan,
		RecordMetrics: ExtractMetricsRecorder(p.metrics),
	})
	p.decodePool = NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:         p.decodeStage,
		NumWorkers:    p.config.DecodeWorkers,
		Input:         p.extractedChan,
		Output:        p.decodedChan,
		Errors:        p.errorsChan,
		RecordMetrics: DecodeMetricsRecorder(p.metrics),
		ShouldRecord:  RecordIfExtracted,
	})
	p.formatRunner = NewFormatStageRunner(
		p.formatStage,
		p.decodedChan,
		p.resultsChan,
		p.errorsChan,
	)
	p.formatRunner.SetMetrics(p.metrics)

	// p.ctx derives from the caller's ctx via WithCancel above
	p.extractPool.Start(p.ctx)  //nolint:contextcheck
	p.decodePool.Start(p.ctx)   //nolint:contextcheck
	p.formatRunner.Start(p.ctx) //nolint:contextcheck

	p.wg.Add(1)
	go p.watchQueueDepth()

	p.started.Store(true)
	logger.Debug("pipeline started",
		zap.Int("extractWorkers", p.config.ExtractWorkers),
		zap.Int("decodeWorkers", p.config.DecodeWorkers),
		zap.Int("bufferSize", bufSize))
	return nil
}

// Submit queues one capture for processing. It is safe to call
// concurrently with Stop. When the pipeline is full the send blocks;
// ctx lets the caller bound the wait.
func (p *MessagePipeline) Submit(ctx context.Context, source string, data []byte, format capture.Format) error {
	if !p.started.Load() {
		return ErrPipelineNotStarted
	}

	// The read lock pairs with Stop's write lock: without it, Stop
	// could close submitChan between the stopped check and our send.
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.stopped.Load() {
		return ErrPipelineStopped
	}

	// One sequence number per item, allocated before the blocking send.
	// A failed non-blocking attempt would leave a gap and stall the
	// ordered format stage. A gap from a cancelled send is fine since
	// cancellation means shutdown.
	item := NewItem(source, data, format, atomic.AddUint64(&p.sequenceCounter, 1)-1)

	select {
	case p.submitChan <- item:
		p.metrics.RecordSubmit()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPipelineStopped
	}
}

// Results returns the channel of processed items, closed on Stop.
// Before Start it returns a closed channel.
func (p *MessagePipeline) Results() <-chan *Item {
	if !p.started.Load() {
		return emptyResults
	}
	return p.resultsChan
}

// Errors returns the channel of processing errors. Before Start it
// returns a channel yielding ErrPipelineNotStarted once.
func (p *MessagePipeline) Errors() <-chan error {
	if !p.started.Load() {
		return notStartedErrors()
	}
	return p.errorsChan
}

// Stop drains the stages and shuts the pipeline down. The context is
// cancelled before taking the write lock: a Submit blocked on a full
// submitChan holds the read lock and only releases it once p.ctx ends,
// so the opposite order would deadlock.
func (p *MessagePipeline) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started.Load() || p.stopped.Load() {
		return nil
	}

	p.cancel()

	p.submitMu.Lock()
	p.stopped.Store(true)
	close(p.submitChan)
	p.submitMu.Unlock()

	// Close each inter-stage channel only after its writers have exited,
	// in flow order.
	p.extractPool.Stop()
	close(p.extractedChan)
	p.decodePool.Stop()
	close(p.decodedChan)
	p.formatRunner.Stop()
	close(p.resultsChan)
	close(p.errorsChan)

	p.wg.Wait()

	logger.Debug("pipeline stopped")
	return nil
}

// Stats returns a snapshot of the pipeline counters.
func (p *MessagePipeline) Stats() PipelineStats {
	return p.metrics.Stats()
}

// PendingCount approximates the number of items still in flight: queued
// between stages plus buffered for ordered formatting.
func (p *MessagePipeline) PendingCount() int {
	if !p.started.Load() {
		return 0
	}
	pending := p.queueDepth()
	if p.formatStage != nil {
		pending += p.formatStage.PendingCount()
	}
	return pending
}

// WaitForDrain blocks until every submitted item has been processed or
// ctx is cancelled.
func (p *MessagePipeline) WaitForDrain(ctx context.Context) error {
	if !p.started.Load() {
		return ErrPipelineNotStarted
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if p.PendingCount() == 0 {
				return nil
			}
		}
	}
}

func (p *MessagePipeline) queueDepth() int {
	return len(p.submitChan) + len(p.extractedChan) + len(p.decodedChan)
}

// watchQueueDepth samples channel occupancy for the stats snapshot.
func (p *MessagePipeline) watchQueueDepth() {
	defer p.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.metrics.UpdateQueueDepth(p.queueDepth())
		}
	}
}

// DrainResults reads currently available results without blocking.
func (p *MessagePipeline) DrainResults() []*Item {
	var results []*Item
	for {
		select {
		case item, ok := <-p.resultsChan:
			if !ok {
				return results
			}
			results = append(results, item)
		default:
			return results
		}
	}
}

// DrainErrors reads currently available errors without blocking.
func (p *MessagePipeline) DrainErrors() []error {
	var errs []error
	for {
		select {
		case err, ok := <-p.errorsChan:
			if !ok {
				return errs
			}
			errs = append(errs, err)
		default:
			return errs
		}
	}
}
