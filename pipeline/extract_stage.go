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
	"time"

	"github.com/georg-jung/IppDecoder/capture"
)

// ErrNilStage is returned when a nil stage is passed to a worker pool.
var ErrNilStage = errors.New("pipeline: nil stage")

// ExtractStage pulls the raw IPP payload out of the submitted capture
// bytes, stripping hex encodings and HTTP framing as needed.
type ExtractStage struct{}

// NewExtractStage creates an ExtractStage.
func NewExtractStage() *ExtractStage {
	return &ExtractStage{}
}

// Name returns "extract".
func (s *ExtractStage) Name() string {
	return "extract"
}

// Process extracts the IPP payload from the item's capture data.
func (s *ExtractStage) Process(ctx context.Context, item *Item) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	payload, err := capture.Extract(item.Data(), item.Format())
	duration := time.Since(start)

	if err != nil {
		if src := item.Source(); src != "" {
			err = fmt.Errorf("%s: %w", src, err)
		}
		item.SetExtractError(err, duration)
		return err
	}

	item.SetPayload(payload, duration)
	return nil
}
