// Copyright 2024 Georg Jung
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

package ipp

import (
	"errors"
	"fmt"
)

// Decode failure conditions. Every fatal decode error wraps one of these,
// so callers can match with errors.Is
var (
	ErrTruncatedHeader         = errors.New("truncated message header")
	ErrTruncatedField          = errors.New("truncated field")
	ErrUnexpectedValueTag      = errors.New("unexpected value tag")
	ErrMissingAttributeName    = errors.New("missing attribute name")
	ErrUnexpectedCollectionTag = errors.New("unexpected tag in collection")
	ErrNestingTooDeep          = errors.New("collection nesting too deep")
)

// DecodeError is returned for any malformed message. Offset is the byte
// position of the offending element within the original input
type DecodeError struct {
	Offset int
	Reason error
	Detail string
}

func (e DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf(
			"%s (%s) at offset 0x%x",
			e.Reason,
			e.Detail,
			e.Offset,
		)
	}
	return fmt.Sprintf("%s at offset 0x%x", e.Reason, e.Offset)
}

func (e DecodeError) Unwrap() error {
	return e.Reason
}

func decodeErr(offset int, reason error, detailFmt string, args ...any) error {
	return DecodeError{
		Offset: offset,
		Reason: reason,
		Detail: fmt.Sprintf(detailFmt, args...),
	}
}
