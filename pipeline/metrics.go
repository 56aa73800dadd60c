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
	"sync"
	"sync/atomic"
	"time"
)

// PipelineMetrics aggregates counters across all stages. The counters
// are atomic so the worker pools can record without contention; queue
// depth and timestamps are guarded by the mutex.
type PipelineMetrics struct {
	messagesSubmitted atomic.Uint64
	messagesExtracted atomic.Uint64
	messagesDecoded   atomic.Uint64
	messagesFormatted atomic.Uint64
	extractErrors     atomic.Uint64
	decodeErrors      atomic.Uint64
	formatErrors      atomic.Uint64

	// End-to-end latency sum and sample count
	latencyTotal atomic.Int64
	latencyCount atomic.Int64

	mu                sync.RWMutex
	currentQueueDepth int
	peakQueueDepth    int
	lastMessageTime   time.Time
	startTime         time.Time
}

// NewPipelineMetrics creates a PipelineMetrics with the clock started.
func NewPipelineMetrics() *PipelineMetrics {
	return &PipelineMetrics{
		startTime: time.Now(),
	}
}

// RecordSubmit counts one accepted submission.
func (m *PipelineMetrics) RecordSubmit() {
	m.messagesSubmitted.Add(1)
}

// RecordExtract counts one extraction attempt.
func (m *PipelineMetrics) RecordExtract(duration time.Duration, err error) {
	if err != nil {
		m.extractErrors.Add(1)
	} else {
		m.messagesExtracted.Add(1)
	}
}

// RecordDecode counts one decode attempt.
func (m *PipelineMetrics) RecordDecode(duration time.Duration, err error) {
	if err != nil {
		m.decodeErrors.Add(1)
	} else {
		m.messagesDecoded.Add(1)
	}
}

// RecordFormat counts one render attempt and stamps the completion time.
func (m *PipelineMetrics) RecordFormat(duration time.Duration, err error) {
	if err != nil {
		m.formatErrors.Add(1)
	} else {
		m.messagesFormatted.Add(1)
		m.mu.Lock()
		m.lastMessageTime = time.Now()
		m.mu.Unlock()
	}
}

// RecordPipelineLatency accumulates one item's end-to-end duration for
// the running average reported by Stats.
func (m *PipelineMetrics) RecordPipelineLatency(duration time.Duration) {
	m.latencyTotal.Add(int64(duration))
	m.latencyCount.Add(1)
}

// UpdateQueueDepth stores a sampled depth and tracks its peak.
func (m *PipelineMetrics) UpdateQueueDepth(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentQueueDepth = depth
	if depth > m.peakQueueDepth {
		m.peakQueueDepth = depth
	}
}

// Stats assembles a snapshot of all counters.
func (m *PipelineMetrics) Stats() PipelineStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var avgLatency time.Duration
	if count := m.latencyCount.Load(); count > 0 {
		avgLatency = time.Duration(m.latencyTotal.Load() / count)
	}

	return PipelineStats{
		MessagesSubmitted: m.messagesSubmitted.Load(),
		MessagesExtracted: m.messagesExtracted.Load(),
		MessagesDecoded:   m.messagesDecoded.Load(),
		MessagesFormatted: m.messagesFormatted.Load(),
		ExtractErrors:     m.extractErrors.Load(),
		DecodeErrors:      m.decodeErrors.Load(),
		FormatErrors:      m.formatErrors.Load(),
		CurrentQueueDepth: m.currentQueueDepth,
		PeakQueueDepth:    m.peakQueueDepth,
		AverageLatency:    avgLatency,
		LastMessageTime:   m.lastMessageTime,
		StartTime:         m.startTime,
	}
}

// Reset zeroes every counter and restarts the clock.
func (m *PipelineMetrics) Reset() {
	m.messagesSubmitted.Store(0)
	m.messagesExtracted.Store(0)
	m.messagesDecoded.Store(0)
	m.messagesFormatted.Store(0)
	m.extractErrors.Store(0)
	m.decodeErrors.Store(0)
	m.formatErrors.Store(0)
	m.latencyTotal.Store(0)
	m.latencyCount.Store(0)

	m.mu.Lock()
	m.currentQueueDepth = 0
	m.peakQueueDepth = 0
	m.lastMessageTime = time.Time{}
	m.startTime = time.Now()
	m.mu.Unlock()
}
