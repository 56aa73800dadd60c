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

package ippdecoder_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	ippdecoder "github.com/georg-jung/IppDecoder"
	"github.com/georg-jung/IppDecoder/internal/testdata"
	"github.com/georg-jung/IppDecoder/ipp"
)

// Minimal message using a vendor operation code outside the registered
// tables: IPP/2.0, code 0x4001, request-id 1, one operation group
const vendorOpHex = "02004001000000010147001261747472696275746573" +
	"2d6368617273657400057574662d3803"

func TestDecode(t *testing.T) {
	d, err := ippdecoder.New()
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	msg, err := d.Decode(testdata.MustDecodeHex(testdata.GetPrinterAttributesRequestHex))
	if err != nil {
		t.Fatalf("unexpected decode error: %s", err)
	}
	if msg.Code != ipp.Code(ipp.OpGetPrinterAttributes) {
		t.Fatalf("wrong operation code: got 0x%04x, wanted 0x%04x", uint16(msg.Code), uint16(ipp.OpGetPrinterAttributes))
	}
	if msg.RequestID != 1 {
		t.Fatalf("wrong request-id: got %d, wanted 1", msg.RequestID)
	}
}

func TestDecodeError(t *testing.T) {
	d, err := ippdecoder.New()
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	if _, err := d.Decode([]byte{0x02, 0x00}); err == nil {
		t.Fatalf("did not get expected error for truncated input")
	}
	var buf bytes.Buffer
	if err := d.Dump([]byte{0x02, 0x00}, &buf); err == nil {
		t.Fatalf("did not get expected error from Dump()")
	}
	if buf.Len() != 0 {
		t.Fatalf("Dump() wrote output despite the decode error: %q", buf.String())
	}
}

func TestDumpString(t *testing.T) {
	d, err := ippdecoder.New()
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	out, err := d.DumpString(testdata.MustDecodeHex(testdata.GetPrinterAttributesRequestHex))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, want := range []string{
		"version: 2.0\n",
		"operation: Get-Printer-Attributes (0x000b)\n",
		"request-id: 1\n",
		"  attributes-charset (charset): utf-8\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered output is missing %q:\n%s", want, out)
		}
	}
}

func TestDumpMatchesDumpString(t *testing.T) {
	d, err := ippdecoder.New()
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	data := testdata.MustDecodeHex(testdata.PrintJobResponseHex)
	var buf bytes.Buffer
	if err := d.Dump(data, &buf); err != nil {
		t.Fatalf("unexpected error from Dump(): %s", err)
	}
	out, err := d.DumpString(data)
	if err != nil {
		t.Fatalf("unexpected error from DumpString(): %s", err)
	}
	if buf.String() != out {
		t.Fatalf("Dump() and DumpString() disagree:\n%s\n---\n%s", buf.String(), out)
	}
}

func TestWithOperationName(t *testing.T) {
	d, err := ippdecoder.New(
		ippdecoder.WithOperationName(0x4001, "Vendor-Diagnostics"),
	)
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	data := testdata.MustDecodeHex(vendorOpHex)
	out, err := d.DumpString(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out, "operation: Vendor-Diagnostics (0x4001)") {
		t.Fatalf("vendor operation name missing from rendered output:\n%s", out)
	}
	// The override reaches export output too
	jsonOut, err := d.JSON(data)
	if err != nil {
		t.Fatalf("unexpected error from JSON(): %s", err)
	}
	if !strings.Contains(string(jsonOut), `"name": "Vendor-Diagnostics"`) {
		t.Fatalf("vendor operation name missing from JSON output:\n%s", jsonOut)
	}
}

// Ensure that table overrides on one Decoder never leak into another
func TestOptionIsolation(t *testing.T) {
	custom, err := ippdecoder.New(
		ippdecoder.WithOperationName(0x4001, "Vendor-Diagnostics"),
		ippdecoder.WithGlossary("printer-state", map[int32]string{3: "ready"}),
	)
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	plain, err := ippdecoder.New()
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}

	data := testdata.MustDecodeHex(vendorOpHex)
	customOut, err := custom.DumpString(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	plainOut, err := plain.DumpString(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(customOut, "Vendor-Diagnostics") {
		t.Fatalf("custom decoder lost its operation name:\n%s", customOut)
	}
	if !strings.Contains(plainOut, "operation: unknown (0x4001)") {
		t.Fatalf("operation name override leaked into a fresh Decoder:\n%s", plainOut)
	}

	response := testdata.MustDecodeHex(testdata.GetPrinterAttributesResponseHex)
	customOut, err = custom.DumpString(response)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	plainOut, err = plain.DumpString(response)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(customOut, "printer-state (enum): 3 (ready)") {
		t.Fatalf("custom glossary not applied:\n%s", customOut)
	}
	if !strings.Contains(plainOut, "printer-state (enum): 3 (idle)") {
		t.Fatalf("glossary override leaked into a fresh Decoder:\n%s", plainOut)
	}
}

func TestWithIndent(t *testing.T) {
	d, err := ippdecoder.New(ippdecoder.WithIndent("\t"))
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	out, err := d.DumpString(testdata.MustDecodeHex(testdata.GetPrinterAttributesRequestHex))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out, "\tattributes-charset (charset): utf-8\n") {
		t.Fatalf("tab indentation missing from rendered output:\n%s", out)
	}
}

func TestWithMaxNestingDepth(t *testing.T) {
	d, err := ippdecoder.New(ippdecoder.WithMaxNestingDepth(1))
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	// The response fixture nests media-size inside media-col-default
	_, err = d.Decode(testdata.MustDecodeHex(testdata.GetPrinterAttributesResponseHex))
	if !errors.Is(err, ipp.ErrNestingTooDeep) {
		t.Fatalf("got error %v, wanted ipp.ErrNestingTooDeep", err)
	}
}

func TestWithStatusName(t *testing.T) {
	d, err := ippdecoder.New(
		ippdecoder.WithStatusName(0x0000, "ok"),
	)
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	out, err := d.DumpString(testdata.MustDecodeHex(testdata.PrintJobResponseHex))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out, "status: ok (0x0000)") {
		t.Fatalf("status name override missing from rendered output:\n%s", out)
	}
}

func TestJSONAndCBOR(t *testing.T) {
	d, err := ippdecoder.New()
	if err != nil {
		t.Fatalf("unexpected error when creating Decoder object: %s", err)
	}
	data := testdata.MustDecodeHex(testdata.GetPrinterAttributesRequestHex)
	jsonOut, err := d.JSON(data)
	if err != nil {
		t.Fatalf("unexpected error from JSON(): %s", err)
	}
	if !strings.Contains(string(jsonOut), `"request-id": 1`) {
		t.Fatalf("JSON output is missing the request id:\n%s", jsonOut)
	}
	cborOut, err := d.CBOR(data)
	if err != nil {
		t.Fatalf("unexpected error from CBOR(): %s", err)
	}
	if len(cborOut) == 0 {
		t.Fatalf("CBOR output is empty")
	}
}
