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

// Package capture extracts raw IPP message bytes from the forms
// captures usually arrive in: raw binary, hex text dumps, and HTTP
// exchanges carrying an application/ipp body
package capture

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format identifies the capture input format
type Format int

const (
	// FormatAuto sniffs the format from the input bytes
	FormatAuto Format = iota
	// FormatRaw is a raw binary IPP message
	FormatRaw
	// FormatHex is hex text, e.g. xxd -p output or a hex stream copied
	// from a packet capture tool
	FormatHex
	// FormatHTTP is a captured HTTP request or response whose body is
	// the IPP message
	FormatHTTP
)

var formatNames = map[Format]string{
	FormatAuto: "auto",
	FormatRaw:  "raw",
	FormatHex:  "hex",
	FormatHTTP: "http",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format-%d", int(f))
}

// ErrUnknownFormat means a format name or value outside the defined set
var ErrUnknownFormat = errors.New("unknown capture format")

// ParseFormat resolves a format name as used in CLI flags and config
// files
func ParseFormat(s string) (Format, error) {
	for format, name := range formatNames {
		if strings.EqualFold(s, name) {
			return format, nil
		}
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extract returns the raw IPP bytes contained in data. FormatAuto
// sniffs the format first
func Extract(data []byte, format Format) ([]byte, error) {
	if format == FormatAuto {
		format = Sniff(data)
	}
	switch format {
	case FormatRaw:
		return data, nil
	case FormatHex:
		return FromHex(data)
	case FormatHTTP:
		return FromHTTP(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// FromReader reads the input to its end and extracts the IPP bytes
func FromReader(r io.Reader, format Format) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Extract(data, format)
}

// FromFile extracts the IPP bytes from a capture file
func FromFile(path string, format Format) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f, format)
}

// Sniff guesses the capture format. Binary input is recognized by its
// first byte: an IPP message starts with the version major byte, which
// no text format can. Text input is an HTTP exchange when it starts
// with a request line or status line, hex otherwise. The fallback is
// raw, so undetectable input still reaches the decoder and fails there
// with a useful offset
func Sniff(data []byte) Format {
	if len(data) == 0 {
		return FormatRaw
	}
	if data[0] < 0x10 {
		return FormatRaw
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("HTTP/")) || startsWithMethod(trimmed) {
		return FormatHTTP
	}
	if isHexText(data) {
		return FormatHex
	}
	return FormatRaw
}

var httpMethods = []string{
	"POST ",
	"GET ",
	"PUT ",
	"DELETE ",
	"HEAD ",
	"OPTIONS ",
	"PATCH ",
}

func startsWithMethod(data []byte) bool {
	for _, method := range httpMethods {
		if bytes.HasPrefix(data, []byte(method)) {
			return true
		}
	}
	return false
}

func isHexText(data []byte) bool {
	digits := 0
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9',
			b >= 'a' && b <= 'f',
			b >= 'A' && b <= 'F':
			digits++
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		default:
			return false
		}
	}
	return digits > 0
}

// FromHex decodes hex text into raw bytes, ignoring any whitespace
func FromHex(text []byte) ([]byte, error) {
	compact := make([]byte, 0, len(text))
	for _, b := range text {
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			continue
		}
		compact = append(compact, b)
	}
	out := make([]byte, hex.DecodedLen(len(compact)))
	if _, err := hex.Decode(out, compact); err != nil {
		return nil, fmt.Errorf("decode hex capture: %w", err)
	}
	return out, nil
}
