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
	"runtime"

	"github.com/georg-jung/IppDecoder/export"
	"github.com/georg-jung/IppDecoder/ipp"
	"github.com/georg-jung/IppDecoder/render"
)

// DefaultMaxPendingMessages is the default limit for out-of-order items
// buffered in the format stage. IPP messages are small, so a generous
// buffer costs little memory while absorbing bursts of reordering from
// the parallel stages.
const DefaultMaxPendingMessages = 1024

// PipelineConfig holds configuration for a MessagePipeline.
type PipelineConfig struct {
	// ExtractWorkers is the number of parallel extract workers.
	ExtractWorkers int
	// DecodeWorkers is the number of parallel decode workers.
	DecodeWorkers int
	// BufferSize is the buffer size for inter-stage channels.
	BufferSize int
	// MaxPendingMessages limits out-of-order items buffered in the format
	// stage. This prevents unbounded memory growth when items complete the
	// parallel stages out of order.
	MaxPendingMessages int
	// DecoderOptions configures the IPP decoder used by the decode stage.
	DecoderOptions ipp.DecoderOptions
	// FormatFunc is the function called to format decoded messages in order.
	FormatFunc FormatFunc
}

// DefaultPipelineConfig returns a PipelineConfig with sensible defaults.
// The default FormatFunc renders messages as human-readable text.
func DefaultPipelineConfig() PipelineConfig {
	numCPU := runtime.NumCPU()

	// Scale decode workers with CPU count (decoding dominates the work;
	// extraction is mostly cheap slicing)
	decodeWorkers := numCPU / 2
	if decodeWorkers < 2 {
		decodeWorkers = 2
	}

	return PipelineConfig{
		ExtractWorkers:     2,
		DecodeWorkers:      decodeWorkers,
		BufferSize:         256,
		MaxPendingMessages: DefaultMaxPendingMessages,
		FormatFunc:         TextFormatter(nil),
	}
}

// TextFormatter returns a FormatFunc that renders messages as indented
// human-readable text. A nil renderer uses the package defaults.
func TextFormatter(r *render.Renderer) FormatFunc {
	if r == nil {
		r = render.NewRenderer()
	}
	return func(item *Item) ([]byte, error) {
		return []byte(r.Render(item.Message())), nil
	}
}

// JSONFormatter returns a FormatFunc that marshals messages to JSON.
// A nil exporter uses the package defaults.
func JSONFormatter(e *export.Exporter) FormatFunc {
	if e == nil {
		e = export.NewExporter()
	}
	return func(item *Item) ([]byte, error) {
		return e.JSON(item.Message())
	}
}

// CBORFormatter returns a FormatFunc that encodes messages as
// deterministic CBOR. A nil exporter uses the package defaults.
func CBORFormatter(e *export.Exporter) FormatFunc {
	if e == nil {
		e = export.NewExporter()
	}
	return func(item *Item) ([]byte, error) {
		return e.CBOR(item.Message())
	}
}

// PipelineOption is a functional option for configuring a MessagePipeline.
type PipelineOption func(*PipelineConfig)

// WithConfig applies a complete PipelineConfig, replacing all default values.
//
// Note: Options applied after WithConfig will still override the config values.
//
// Example:
//
//	config := DefaultPipelineConfig()
//	config.DecodeWorkers = 8
//	p := NewMessagePipeline(WithConfig(config))
func WithConfig(config PipelineConfig) PipelineOption {
	return func(c *PipelineConfig) {
		*c = config
	}
}

// WithExtractWorkers sets the number of extract workers.
func WithExtractWorkers(n int) PipelineOption {
	return func(c *PipelineConfig) {
		if n > 0 {
			c.ExtractWorkers = n
		}
	}
}

// WithDecodeWorkers sets the number of decode workers.
func WithDecodeWorkers(n int) PipelineOption {
	return func(c *PipelineConfig) {
		if n > 0 {
			c.DecodeWorkers = n
		}
	}
}

// WithBufferSize sets the buffer size for inter-stage channels.
func WithBufferSize(size int) PipelineOption {
	return func(c *PipelineConfig) {
		if size > 0 {
			c.BufferSize = size
		}
	}
}

// WithMaxPendingMessages sets the limit for out-of-order items in the
// format stage. This prevents unbounded memory growth.
func WithMaxPendingMessages(n int) PipelineOption {
	return func(c *PipelineConfig) {
		if n > 0 {
			c.MaxPendingMessages = n
		}
	}
}

// WithDecoderOptions sets the decoder options used by the decode stage.
func WithDecoderOptions(opts ipp.DecoderOptions) PipelineOption {
	return func(c *PipelineConfig) {
		c.DecoderOptions = opts
	}
}

// WithFormatFunc sets the format function.
// A nil function is ignored (the pipeline keeps its current formatter).
func WithFormatFunc(fn FormatFunc) PipelineOption {
	return func(c *PipelineConfig) {
		if fn != nil {
			c.FormatFunc = fn
		}
	}
}
