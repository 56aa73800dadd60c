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

// Package ippdecoder decodes raw IPP (Internet Printing Protocol)
// messages as defined by RFC 8010 and presents them in human-readable
// or machine-readable form.
//
// The decoder works on captured bytes and needs no connection to a
// printer. Input acquisition (raw files, hex dumps, HTTP captures)
// lives in the capture package, the wire decoder in ipp, text output
// in render and JSON/CBOR output in export. Batch processing with
// parallel workers lives in pipeline.
//
// This package is the main entry point into this library. The other
// packages can be used outside of this one, but it's not a primary
// design goal.
package ippdecoder

import (
	"io"

	"github.com/jinzhu/copier"

	"github.com/georg-jung/IppDecoder/export"
	"github.com/georg-jung/IppDecoder/ipp"
	"github.com/georg-jung/IppDecoder/render"
)

// Option defaults shared by every Decoder. New hands each Decoder deep
// copies of these so per-decoder table overrides stay local
var (
	defaultRenderer = render.NewRenderer()
	defaultExporter = export.NewExporter()
)

// The Decoder type bundles the wire decoder with the output
// configuration so one value carries a complete decode-and-present
// setup
type Decoder struct {
	decodeOpts ipp.DecoderOptions
	renderer   *render.Renderer
	exporter   *export.Exporter
}

// New returns a new Decoder object with the specified options. The
// name tables and glossaries start out as deep copies of the package
// defaults, so options like WithOperationName never affect other
// Decoder instances
func New(options ...DecoderOptionFunc) (*Decoder, error) {
	d := &Decoder{
		renderer: &render.Renderer{},
		exporter: &export.Exporter{},
	}
	if err := copier.CopyWithOption(d.renderer, defaultRenderer, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(d.exporter, defaultExporter, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	// Apply provided options functions
	for _, option := range options {
		option(d)
	}
	return d, nil
}

// Decode parses a raw IPP message into the typed model
func (d *Decoder) Decode(data []byte) (*ipp.Message, error) {
	return ipp.DecodeWithOptions(data, d.decodeOpts)
}

// Dump decodes a raw IPP message and writes the rendered text to w
func (d *Decoder) Dump(data []byte, w io.Writer) error {
	msg, err := d.Decode(data)
	if err != nil {
		return err
	}
	return d.renderer.RenderTo(w, msg)
}

// DumpString decodes a raw IPP message and returns the rendered text
func (d *Decoder) DumpString(data []byte) (string, error) {
	msg, err := d.Decode(data)
	if err != nil {
		return "", err
	}
	return d.renderer.Render(msg), nil
}

// JSON decodes a raw IPP message and serializes it as JSON
func (d *Decoder) JSON(data []byte) ([]byte, error) {
	msg, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	return d.exporter.JSON(msg)
}

// CBOR decodes a raw IPP message and serializes it as deterministically
// ordered CBOR
func (d *Decoder) CBOR(data []byte) ([]byte, error) {
	msg, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	return d.exporter.CBOR(msg)
}

// Renderer returns the text renderer used by Dump and DumpString
func (d *Decoder) Renderer() *render.Renderer {
	return d.renderer
}

// Exporter returns the exporter used by JSON and CBOR
func (d *Decoder) Exporter() *export.Exporter {
	return d.exporter
}
