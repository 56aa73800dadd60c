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

// Package pipeline provides a concurrent processing pipeline for captured
// IPP messages. It supports parallel extraction and decoding with ordered
// formatting of the results.
package pipeline

import (
	"context"
	"time"

	"github.com/georg-jung/IppDecoder/capture"
)

// Stage is one processing step applied to items flowing through the
// pipeline.
type Stage interface {
	// Name identifies the stage in logs and metrics.
	Name() string
	// Process handles a single item, storing its result or error on the
	// item and returning the error.
	Process(ctx context.Context, item *Item) error
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc struct {
	name string
	fn   func(ctx context.Context, item *Item) error
}

// NewStageFunc wraps fn as a stage with the given name.
func NewStageFunc(name string, fn func(ctx context.Context, item *Item) error) *StageFunc {
	return &StageFunc{
		name: name,
		fn:   fn,
	}
}

// Name returns the name given at construction.
func (s *StageFunc) Name() string {
	return s.name
}

// Process invokes the wrapped function.
func (s *StageFunc) Process(ctx context.Context, item *Item) error {
	return s.fn(ctx, item)
}

// Pipeline is the capture-processing surface implemented by
// MessagePipeline.
type Pipeline interface {
	// Start launches the stage workers.
	Start(ctx context.Context) error
	// Submit queues one capture. A full pipeline applies backpressure;
	// ctx bounds how long the caller is willing to wait.
	Submit(ctx context.Context, source string, data []byte, format capture.Format) error
	// Results yields processed items in submission order.
	Results() <-chan *Item
	// Errors yields stage errors as they happen.
	Errors() <-chan error
	// Stop drains the stages and shuts down.
	Stop() error
	// WaitForDrain blocks until nothing is left in flight.
	WaitForDrain(ctx context.Context) error
	// Stats returns a snapshot of the pipeline counters.
	Stats() PipelineStats
}

// PipelineStats is a point-in-time snapshot of pipeline activity.
type PipelineStats struct {
	// MessagesSubmitted counts captures accepted by Submit.
	MessagesSubmitted uint64
	// MessagesExtracted counts payloads successfully extracted.
	MessagesExtracted uint64
	// MessagesDecoded counts messages successfully decoded.
	MessagesDecoded uint64
	// MessagesFormatted counts messages successfully rendered.
	MessagesFormatted uint64
	// ExtractErrors counts failed extractions.
	ExtractErrors uint64
	// DecodeErrors counts failed decodes.
	DecodeErrors uint64
	// FormatErrors counts failed renders.
	FormatErrors uint64

	// CurrentQueueDepth is the latest sampled channel occupancy.
	CurrentQueueDepth int
	// PeakQueueDepth is the highest occupancy sampled so far.
	PeakQueueDepth int

	// AverageLatency is the mean end-to-end time per completed item.
	AverageLatency time.Duration

	// LastMessageTime is when the most recent item finished formatting.
	LastMessageTime time.Time
	// StartTime is when the metrics clock started.
	StartTime time.Time
}
