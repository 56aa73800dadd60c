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
	"fmt"
	"time"

	"github.com/georg-jung/IppDecoder/ipp"
)

// DecodeStage decodes extracted IPP payloads into Message objects.
type DecodeStage struct {
	opts ipp.DecoderOptions
}

// NewDecodeStage creates a DecodeStage using the given decoder options.
func NewDecodeStage(opts ipp.DecoderOptions) *DecodeStage {
	return &DecodeStage{
		opts: opts,
	}
}

// Name returns "decode".
func (s *DecodeStage) Name() string {
	return "decode"
}

// Process decodes the IPP payload in the item. Items whose extraction
// failed are passed through untouched; the extract stage already
// reported their error.
func (s *DecodeStage) Process(ctx context.Context, item *Item) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if item.ExtractError() != nil {
		return nil
	}

	start := time.Now()
	msg, err := ipp.DecodeWithOptions(item.Payload(), s.opts)
	duration := time.Since(start)

	if err != nil {
		if src := item.Source(); src != "" {
			err = fmt.Errorf("%s: %w", src, err)
		}
		item.SetDecodeError(err, duration)
		return err
	}

	item.SetMessage(msg, duration)
	return nil
}
