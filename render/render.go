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

// Package render formats decoded IPP messages as indented
// human-readable text
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/georg-jung/IppDecoder/ipp"
)

// Renderer formats messages using configurable name tables and
// glossaries. The zero value renders every code as "unknown" and
// annotates nothing; NewRenderer returns one loaded with the
// registered IPP names
type Renderer struct {
	// OperationNames and StatusNames resolve the header code to a
	// mnemonic line. Both tables may be partial; unmapped codes render
	// as "unknown"
	OperationNames map[uint16]string
	StatusNames    map[uint16]string
	// Glossaries annotate integer values of specific attributes with a
	// state label, keyed by attribute name
	Glossaries map[string]map[int32]string
	// Indent is the per-level indentation unit. Empty means two spaces
	Indent string
}

// NewRenderer returns a renderer with the registered operation and
// status names and the default attribute glossaries
func NewRenderer() *Renderer {
	return &Renderer{
		OperationNames: ipp.OperationNames(),
		StatusNames:    ipp.StatusNames(),
		Glossaries:     DefaultGlossaries(),
	}
}

var defaultRenderer = NewRenderer()

// Render formats msg with the default renderer
func Render(msg *ipp.Message) string {
	return defaultRenderer.Render(msg)
}

// Render returns the formatted message as one multi-line string. Every
// line, including the last, ends in a newline. Rendering is total over
// the decoded model and cannot fail
func (r *Renderer) Render(msg *ipp.Message) string {
	var sb strings.Builder
	r.renderMessage(&sb, msg)
	return sb.String()
}

// RenderTo writes the formatted message to w. The only possible errors
// are write errors
func (r *Renderer) RenderTo(w io.Writer, msg *ipp.Message) error {
	_, err := io.WriteString(w, r.Render(msg))
	return err
}

func (r *Renderer) renderMessage(sb *strings.Builder, msg *ipp.Message) {
	fmt.Fprintf(sb, "version: %s\n", msg.Version)
	if msg.Code.IsStatus() {
		fmt.Fprintf(
			sb,
			"status: %s (0x%04x)\n",
			lookupName(r.StatusNames, msg.Code),
			uint16(msg.Code),
		)
	} else {
		fmt.Fprintf(
			sb,
			"operation: %s (0x%04x)\n",
			lookupName(r.OperationNames, msg.Code),
			uint16(msg.Code),
		)
	}
	fmt.Fprintf(sb, "request-id: %d\n", msg.RequestID)
	for _, group := range msg.Groups {
		fmt.Fprintf(sb, "%s:\n", group.Tag.GroupName())
		for _, attr := range group.Attributes {
			r.renderAttribute(sb, attr, 1)
		}
	}
}

func lookupName(names map[uint16]string, code ipp.Code) string {
	if name, ok := names[uint16(code)]; ok {
		return name
	}
	return "unknown"
}

// renderAttribute emits one attribute at the given indentation depth.
// Collection members recurse through here as well
func (r *Renderer) renderAttribute(sb *strings.Builder, attr ipp.Attribute, depth int) {
	indent := strings.Repeat(r.indentUnit(), depth)
	first := attr.Tag()
	if len(attr.Values) == 1 {
		if members, ok := attr.Value().(ipp.Collection); ok {
			fmt.Fprintf(sb, "%s%s (%s): {\n", indent, attr.Name, first)
			r.renderMembers(sb, members, depth+1)
			fmt.Fprintf(sb, "%s}\n", indent)
			return
		}
		fmt.Fprintf(
			sb,
			"%s%s (%s): %s\n",
			indent,
			attr.Name,
			first,
			r.formatValue(attr.Name, attr.Value()),
		)
		return
	}
	fmt.Fprintf(sb, "%s%s (%s):\n", indent, attr.Name, first)
	sub := strings.Repeat(r.indentUnit(), depth+1)
	for _, tv := range attr.Values {
		if members, ok := tv.Value.(ipp.Collection); ok {
			fmt.Fprintf(sb, "%s- {\n", sub)
			r.renderMembers(sb, members, depth+2)
			fmt.Fprintf(sb, "%s}\n", sub)
			continue
		}
		// Additional values may carry their own syntax tag; call it
		// out when it differs from the attribute's first one
		if tv.Tag != first {
			fmt.Fprintf(sb, "%s- %s (%s)\n", sub, r.formatValue(attr.Name, tv.Value), tv.Tag)
		} else {
			fmt.Fprintf(sb, "%s- %s\n", sub, r.formatValue(attr.Name, tv.Value))
		}
	}
}

func (r *Renderer) renderMembers(sb *strings.Builder, members ipp.Collection, depth int) {
	for _, member := range members {
		r.renderAttribute(sb, member, depth)
	}
}

// formatValue returns the compact form of a value, annotated with a
// glossary label when one is registered for this attribute name
func (r *Renderer) formatValue(name string, value ipp.Value) string {
	if value == nil {
		return ""
	}
	if n, ok := value.(ipp.Integer); ok {
		if label, ok := r.Glossaries[name][int32(n)]; ok {
			return fmt.Sprintf("%d (%s)", int32(n), label)
		}
	}
	return value.String()
}

func (r *Renderer) indentUnit() string {
	if r.Indent == "" {
		return "  "
	}
	return r.Indent
}
