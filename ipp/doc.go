// Copyright 2025 Georg Jung
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

// Package ipp decodes binary IPP messages (RFC 8010) into a typed
// in-memory model. It is a pure decoder: no transport, no encoding,
// no registry validation.
//
// # Key Types
//
//   - Message: header fields plus attribute groups, as decoded
//   - Group: one delimiter-tagged attribute group
//   - Attribute: a name with one or more tagged values
//   - Value: interface over the decoded value kinds (Integer, Boolean,
//     Text, Bytes, DateTime, Resolution, Range, TextWithLang,
//     Collection, OutOfBand, Invalid)
//   - Tag, Op, Status: wire vocabularies with RFC-style String() names
//
// # Decoding
//
//	msg, err := ipp.Decode(raw)
//	if err != nil {
//	    var decErr ipp.DecodeError
//	    if errors.As(err, &decErr) {
//	        // decErr.Offset points into raw
//	    }
//	}
//
// Decoding is strict about structure (truncation, misplaced tags,
// unnamed attributes) and lenient about content: unknown tags, vendor
// group delimiters and off-size numeric fields all decode to something
// renderable instead of failing.
//
// # Error Matching
//
// All fatal decode errors wrap one of the package sentinel errors
// (ErrTruncatedHeader, ErrTruncatedField, ErrUnexpectedValueTag,
// ErrMissingAttributeName, ErrUnexpectedCollectionTag,
// ErrNestingTooDeep) and carry the byte offset of the offending
// element.
package ipp
