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

// Package export converts decoded IPP messages into a neutral model
// and serializes it as JSON or CBOR. Unlike the render package, export
// output is lossless: octet strings appear in full and enum values are
// not annotated
package export

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"time"

	_cbor "github.com/fxamacker/cbor/v2"

	"github.com/georg-jung/IppDecoder/ipp"
)

// Message is the serialization model of a decoded message. Exactly one
// of Operation and Status is set, depending on the code heuristic
type Message struct {
	Version   string  `json:"version"`
	Operation *Code   `json:"operation,omitempty"`
	Status    *Code   `json:"status,omitempty"`
	RequestID uint32  `json:"request-id"`
	Groups    []Group `json:"groups,omitempty"`
}

// Code pairs the numeric header code with its mnemonic name. Name is
// empty for codes missing from the name table
type Code struct {
	Value uint16 `json:"value"`
	Name  string `json:"name,omitempty"`
}

// Group is one attribute group, headed by its delimiter name
type Group struct {
	Tag        string      `json:"tag"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Attribute is a named attribute; collection members use the same shape
type Attribute struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Value pairs the syntax tag name with a serializable form of the
// value. Out-of-band values carry a nil Value, the Tag names the kind
type Value struct {
	Tag   string `json:"tag"`
	Value any    `json:"value,omitempty"`
}

// Resolution is the export form of a resolution value. Units keeps the
// raw unit byte (3 dots-per-inch, 4 dots-per-centimeter)
type Resolution struct {
	X     int32 `json:"x"`
	Y     int32 `json:"y"`
	Units uint8 `json:"units"`
}

// Range is the export form of a rangeOfInteger value
type Range struct {
	Lower int32 `json:"lower"`
	Upper int32 `json:"upper"`
}

// TextWithLang is the export form of language-tagged text
type TextWithLang struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// InvalidValue carries the hex form of bytes that were too short to
// decode into their declared syntax
type InvalidValue struct {
	Raw string `json:"raw"`
}

// Exporter converts messages using configurable name tables. The zero
// value exports compact JSON with no names resolved
type Exporter struct {
	OperationNames map[uint16]string
	StatusNames    map[uint16]string
	// Indent pretty-prints JSON output when non-empty
	Indent string
}

// NewExporter returns an exporter with the registered IPP names and
// two-space JSON indentation
func NewExporter() *Exporter {
	return &Exporter{
		OperationNames: ipp.OperationNames(),
		StatusNames:    ipp.StatusNames(),
		Indent:         "  ",
	}
}

var defaultExporter = NewExporter()

// JSON serializes msg with the default exporter
func JSON(msg *ipp.Message) ([]byte, error) {
	return defaultExporter.JSON(msg)
}

// CBOR serializes msg with the default exporter
func CBOR(msg *ipp.Message) ([]byte, error) {
	return defaultExporter.CBOR(msg)
}

// Model converts a decoded message into the serialization model
func (e *Exporter) Model(msg *ipp.Message) *Message {
	out := &Message{
		Version:   msg.Version.String(),
		RequestID: msg.RequestID,
	}
	code := Code{Value: uint16(msg.Code)}
	if msg.Code.IsStatus() {
		code.Name = e.StatusNames[uint16(msg.Code)]
		out.Status = &code
	} else {
		code.Name = e.OperationNames[uint16(msg.Code)]
		out.Operation = &code
	}
	for _, group := range msg.Groups {
		out.Groups = append(out.Groups, Group{
			Tag:        group.Tag.GroupName(),
			Attributes: exportAttributes(group.Attributes),
		})
	}
	return out
}

// JSON serializes the message model as JSON
func (e *Exporter) JSON(msg *ipp.Message) ([]byte, error) {
	if e.Indent != "" {
		return json.MarshalIndent(e.Model(msg), "", e.Indent)
	}
	return json.Marshal(e.Model(msg))
}

// CBOR serializes the message model as deterministically ordered CBOR
func (e *Exporter) CBOR(msg *ipp.Message) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	opts := _cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: _cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(e.Model(msg))
	return buf.Bytes(), err
}

func exportAttributes(attrs []ipp.Attribute) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	for _, attr := range attrs {
		values := make([]Value, 0, len(attr.Values))
		for _, tv := range attr.Values {
			values = append(values, exportValue(tv))
		}
		out = append(out, Attribute{Name: attr.Name, Values: values})
	}
	return out
}

func exportValue(tv ipp.TaggedValue) Value {
	out := Value{Tag: tv.Tag.String()}
	switch v := tv.Value.(type) {
	case ipp.Integer:
		out.Value = int32(v)
	case ipp.Boolean:
		out.Value = bool(v)
	case ipp.Text:
		out.Value = string(v)
	case ipp.Bytes:
		out.Value = hex.EncodeToString(v)
	case ipp.DateTime:
		out.Value = v.Time.Format(time.RFC3339Nano)
	case ipp.Resolution:
		out.Value = Resolution{X: v.Xres, Y: v.Yres, Units: v.Units}
	case ipp.Range:
		out.Value = Range{Lower: v.Lower, Upper: v.Upper}
	case ipp.TextWithLang:
		out.Value = TextWithLang{Lang: v.Lang, Text: v.Text}
	case ipp.Collection:
		out.Value = exportAttributes(v)
	case ipp.OutOfBand:
		// The tag already names the kind; there is no payload
	case ipp.Invalid:
		out.Value = InvalidValue{Raw: hex.EncodeToString(v.Data)}
	default:
		if tv.Value != nil {
			out.Value = tv.Value.String()
		}
	}
	return out
}
