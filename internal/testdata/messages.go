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

// Package testdata provides shared sample IPP messages for benchmarks and tests.
package testdata

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

// Get-Printer-Attributes request (IPP/2.0, request-id 1) asking for
// printer-state, printer-state-reasons and document-format-supported.
//
//go:embed get_printer_attributes_request.hex
var GetPrinterAttributesRequestHex string

// Get-Printer-Attributes response (IPP/2.0, successful-ok) carrying a
// printer-attributes group with scalar, multi-valued and collection
// attributes, including a nested media-size collection.
//
//go:embed get_printer_attributes_response.hex
var GetPrinterAttributesResponseHex string

// Print-Job response (IPP/1.1, successful-ok, request-id 42) carrying a
// job-attributes group for a job in the processing state.
//
//go:embed print_job_response.hex
var PrintJobResponseHex string

// TestMessage contains wire data for testing.
type TestMessage struct {
	Name string
	Data []byte
}

// GetTestMessages returns a slice of sample messages covering both
// requests and responses and a mix of attribute shapes.
func GetTestMessages() []TestMessage {
	return []TestMessage{
		{Name: "GetPrinterAttributesRequest", Data: MustDecodeHex(GetPrinterAttributesRequestHex)},
		{Name: "GetPrinterAttributesResponse", Data: MustDecodeHex(GetPrinterAttributesResponseHex)},
		{Name: "PrintJobResponse", Data: MustDecodeHex(PrintJobResponseHex)},
	}
}

// MustDecodeHex decodes a hex string to bytes, panicking on error.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return b
}
