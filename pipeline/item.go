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
	"time"

	"github.com/georg-jung/IppDecoder/capture"
	"github.com/georg-jung/IppDecoder/ipp"
)

// Item represents a captured message as it moves through the pipeline.
// It is thread-safe and tracks the processing state at each stage.
type Item struct {
	// Immutable fields (set at construction, never modified)
	// These are unexported to prevent modification; use getter methods.
	source         string
	data           []byte
	format         capture.Format
	sequenceNumber uint64
	receivedAt     time.Time

	// Mutable fields protected by mutex
	mu sync.RWMutex

	// Extract stage results
	payload         []byte
	extractError    error
	extractDuration time.Duration

	// Decode stage results
	msg            *ipp.Message
	decodeError    error
	decodeDuration time.Duration

	// Format stage results
	output         []byte
	formatError    error
	formatDuration time.Duration
}

// NewItem creates a new Item with the given immutable fields.
// The data slice is copied to prevent data corruption from external
// modifications.
func NewItem(source string, data []byte, format capture.Format, seq uint64) *Item {
	// Copy the capture bytes so that the Item owns its data and is
	// immune to modifications by the caller, which is critical for
	// concurrent pipeline processing.
	buf := make([]byte, len(data))
	copy(buf, data)

	return &Item{
		source:         source,
		data:           buf,
		format:         format,
		sequenceNumber: seq,
		receivedAt:     time.Now(),
	}
}

// Source returns the origin of the capture (e.g. a file name).
func (i *Item) Source() string {
	return i.source
}

// Data returns the raw capture bytes as submitted.
// The returned slice should not be modified.
func (i *Item) Data() []byte {
	return i.data
}

// Format returns the capture format the data was submitted with.
func (i *Item) Format() capture.Format {
	return i.format
}

// SequenceNumber returns the sequence number assigned to this item.
func (i *Item) SequenceNumber() uint64 {
	return i.sequenceNumber
}

// ReceivedAt returns the time when this item was submitted.
func (i *Item) ReceivedAt() time.Time {
	return i.receivedAt
}

// Payload returns the extracted IPP bytes, or nil if not yet extracted
// or extraction failed.
func (i *Item) Payload() []byte {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.payload
}

// SetPayload sets the extracted IPP bytes and extract duration.
// Clears any previously set extract error for consistency.
func (i *Item) SetPayload(payload []byte, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.payload = payload
	i.extractError = nil
	i.extractDuration = duration
}

// ExtractError returns the extract error, if any.
func (i *Item) ExtractError() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.extractError
}

// SetExtractError sets the extract error and duration.
// Clears any previously set payload for consistency.
func (i *Item) SetExtractError(err error, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.payload = nil
	i.extractError = err
	i.extractDuration = duration
}

// ExtractDuration returns the time spent in the extract stage.
func (i *Item) ExtractDuration() time.Duration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.extractDuration
}

// IsExtracted returns true if the IPP payload has been successfully
// extracted from the capture.
func (i *Item) IsExtracted() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.payload != nil
}

// Message returns the decoded message, or nil if not yet decoded or
// decode failed.
func (i *Item) Message() *ipp.Message {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.msg
}

// SetMessage sets the decoded message and decode duration.
// Clears any previously set decode error for consistency.
func (i *Item) SetMessage(msg *ipp.Message, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.msg = msg
	i.decodeError = nil
	i.decodeDuration = duration
}

// DecodeError returns the decode error, if any.
func (i *Item) DecodeError() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.decodeError
}

// SetDecodeError sets the decode error and duration.
// Clears any previously set message for consistency.
func (i *Item) SetDecodeError(err error, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.msg = nil
	i.decodeError = err
	i.decodeDuration = duration
}

// DecodeDuration returns the time spent in the decode stage.
func (i *Item) DecodeDuration() time.Duration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.decodeDuration
}

// IsDecoded returns true if the message has been successfully decoded.
func (i *Item) IsDecoded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.msg != nil
}

// Output returns the formatted output, or nil if not yet formatted or
// formatting failed.
func (i *Item) Output() []byte {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.output
}

// SetOutput sets the formatted output and format duration.
// Clears any previously set format error for consistency.
func (i *Item) SetOutput(output []byte, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.output = output
	i.formatError = nil
	i.formatDuration = duration
}

// FormatError returns the format error, if any.
func (i *Item) FormatError() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.formatError
}

// SetFormatError sets the format error and duration.
// Clears any previously set output for consistency.
func (i *Item) SetFormatError(err error, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.output = nil
	i.formatError = err
	i.formatDuration = duration
}

// FormatDuration returns the time spent in the format stage.
func (i *Item) FormatDuration() time.Duration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.formatDuration
}

// IsFormatted returns true if the item has been formatted.
func (i *Item) IsFormatted() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.output != nil
}

// Err returns the first stage error encountered, if any.
func (i *Item) Err() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.extractError != nil {
		return i.extractError
	}
	if i.decodeError != nil {
		return i.decodeError
	}
	return i.formatError
}

// TotalDuration returns the total processing time from submission to
// completion.
func (i *Item) TotalDuration() time.Duration {
	return time.Since(i.receivedAt)
}
