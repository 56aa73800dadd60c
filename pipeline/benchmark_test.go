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

package pipeline_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/georg-jung/IppDecoder/capture"
	"github.com/georg-jung/IppDecoder/internal/testdata"
	"github.com/georg-jung/IppDecoder/ipp"
	"github.com/georg-jung/IppDecoder/pipeline"
)

// BenchmarkDecodeStage benchmarks IPP decode throughput for different messages.
func BenchmarkDecodeStage(b *testing.B) {
	messages := testdata.GetTestMessages()
	stage := pipeline.NewDecodeStage(ipp.DecoderOptions{})

	for _, msg := range messages {
		b.Run(msg.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(msg.Data)))

			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				item := pipeline.NewItem(msg.Name, msg.Data, capture.FormatRaw, 0)
				item.SetPayload(item.Data(), 0)
				err := stage.Process(ctx, item)
				if err != nil {
					b.Fatalf("decode %s error: %v", msg.Name, err)
				}
			}
		})
	}

	// Also run a combined benchmark for all messages
	b.Run("AllMessages", func(b *testing.B) {
		b.ReportAllocs()
		totalBytes := int64(0)
		for _, msg := range messages {
			totalBytes += int64(len(msg.Data))
		}
		// b.SetBytes expects bytes per operation; use average message size
		b.SetBytes(totalBytes / int64(len(messages)))

		ctx := context.Background()
		messageCount := len(messages)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			msg := messages[i%messageCount]
			item := pipeline.NewItem(msg.Name, msg.Data, capture.FormatRaw, 0)
			item.SetPayload(item.Data(), 0)
			err := stage.Process(ctx, item)
			if err != nil {
				b.Fatalf("decode %s error: %v", msg.Name, err)
			}
		}
	})
}

// BenchmarkStageWorkerPool benchmarks parallel decode with different worker counts.
func BenchmarkStageWorkerPool(b *testing.B) {
	messages := testdata.GetTestMessages()
	workerCounts := []int{1, 2, 4, 8}

	for _, numWorkers := range workerCounts {
		b.Run(numWorkerName(numWorkers), func(b *testing.B) {
			b.ReportAllocs()

			// Calculate average bytes per iteration
			totalBytes := int64(0)
			for _, msg := range messages {
				totalBytes += int64(len(msg.Data))
			}
			// b.SetBytes expects bytes per operation; use average message size
			b.SetBytes(totalBytes / int64(len(messages)))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Use fixed-size buffers to avoid OOM when b.N is large
			const bufferSize = 100
			input := make(chan *pipeline.Item, bufferSize)
			output := make(chan *pipeline.Item, bufferSize)
			errors := make(chan error, bufferSize)

			// Create worker pool using the generic StageWorkerPool
			stage := pipeline.NewDecodeStage(ipp.DecoderOptions{})
			pool := pipeline.NewStageWorkerPool(pipeline.StageWorkerPoolConfig{
				Stage:      stage,
				NumWorkers: numWorkers,
				Input:      input,
				Output:     output,
				Errors:     errors,
			})
			pool.Start(ctx)
			defer pool.Stop()

			b.ResetTimer()

			// Feeder goroutine to avoid blocking on full channel
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < b.N; i++ {
					msg := messages[i%len(messages)]
					item := pipeline.NewItem(msg.Name, msg.Data, capture.FormatRaw, uint64(i))
					item.SetPayload(item.Data(), 0)
					select {
					case input <- item:
					case <-ctx.Done():
						return
					}
				}
				close(input)
			}()

			// Drain output
			received := 0
		receiveLoop:
			for received < b.N {
				select {
				case _, ok := <-output:
					if !ok {
						break receiveLoop
					}
					received++
				case err := <-errors:
					b.Fatalf("decode error: %v", err)
				case <-ctx.Done():
					break receiveLoop
				}
			}

			b.StopTimer()
			pool.Stop()
			wg.Wait()
		})
	}
}

func numWorkerName(n int) string {
	return fmt.Sprintf("Workers%d", n)
}

// BenchmarkMessagePipeline benchmarks the full MessagePipeline end-to-end throughput.
func BenchmarkMessagePipeline(b *testing.B) {
	messages := testdata.GetTestMessages()

	b.Run("EndToEnd", func(b *testing.B) {
		b.ReportAllocs()

		// Calculate average bytes per operation
		totalBytes := int64(0)
		for _, msg := range messages {
			totalBytes += int64(len(msg.Data))
		}
		b.SetBytes(totalBytes / int64(len(messages)))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Create full pipeline with a no-op formatter to measure
		// extract + decode + ordering overhead
		p := pipeline.NewMessagePipeline(
			pipeline.WithExtractWorkers(2),
			pipeline.WithDecodeWorkers(4),
			pipeline.WithFormatFunc(func(item *pipeline.Item) ([]byte, error) {
				return nil, nil
			}),
		)
		if err := p.Start(ctx); err != nil {
			b.Fatalf("failed to start pipeline: %v", err)
		}
		defer func() { _ = p.Stop() }()

		b.ResetTimer()

		// Submit messages
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < b.N; i++ {
				msg := messages[i%len(messages)]
				if err := p.Submit(ctx, msg.Name, msg.Data, capture.FormatRaw); err != nil {
					return
				}
			}
		}()

		// Receive results
		received := 0
	receiveLoop:
		for received < b.N {
			select {
			case _, ok := <-p.Results():
				if !ok {
					break receiveLoop
				}
				received++
			case err := <-p.Errors():
				b.Fatalf("pipeline error: %v", err)
			case <-ctx.Done():
				break receiveLoop
			}
		}

		b.StopTimer()
		_ = p.Stop()
		wg.Wait()
	})
}

// BenchmarkMessageDecode provides a baseline comparison with direct decode.
func BenchmarkMessageDecode(b *testing.B) {
	messages := testdata.GetTestMessages()

	for _, msg := range messages {
		b.Run(msg.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(msg.Data)))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := ipp.Decode(msg.Data)
				if err != nil {
					b.Fatalf("decode %s error: %v", msg.Name, err)
				}
			}
		})
	}
}
