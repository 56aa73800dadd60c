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
	"fmt"
	"strings"
)

// Version is the protocol version from the message header
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Code is the 16-bit code from the message header. The wire format does
// not say whether a message is a request or a response, so the same
// field holds an operation code or a status code depending on direction
type Code uint16

// IsStatus reports whether the code value falls into the registered
// status ranges (0x0000-0x0001 and 0x0100-0x05ff) rather than the
// operation ranges. This is a heuristic: a few low codes are registered
// as both a status and an operation, and those resolve to operation
func (c Code) IsStatus() bool {
	if c <= 0x0001 {
		return true
	}
	return c >= 0x0100 && c < 0x0600
}

// Op returns the code interpreted as an operation code
func (c Code) Op() Op {
	return Op(c)
}

// Status returns the code interpreted as a status code
func (c Code) Status() Status {
	return Status(c)
}

// TaggedValue pairs a decoded value with the syntax tag it arrived
// with. Additional values of a multi-valued attribute may legally carry
// a different tag than the first one, so the tag is kept per value
type TaggedValue struct {
	Tag   Tag
	Value Value
}

// Values is the ordered value list of a single attribute
type Values []TaggedValue

// String returns the single value, or a bracketed list for
// multi-valued attributes
func (vs Values) String() string {
	if len(vs) == 1 {
		return vs[0].Value.String()
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Value.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Attribute is a named attribute with one or more values. Collection
// members reuse the same shape
type Attribute struct {
	Name   string
	Values Values
}

// Tag returns the syntax tag of the first value
func (a Attribute) Tag() Tag {
	if len(a.Values) == 0 {
		return TagZero
	}
	return a.Values[0].Tag
}

// Value returns the first value, or nil for an empty attribute
func (a Attribute) Value() Value {
	if len(a.Values) == 0 {
		return nil
	}
	return a.Values[0].Value
}

// Group is one attribute group. Tag keeps the raw delimiter byte, so
// unrecognized vendor or future groups survive decoding and render as
// hex
type Group struct {
	Tag        Tag
	Attributes []Attribute
}

// Attr returns the named attribute within the group
func (g Group) Attr(name string) (Attribute, bool) {
	for _, attr := range g.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

// Message is a fully decoded IPP message
type Message struct {
	Version   Version
	Code      Code
	RequestID uint32
	Groups    []Group
}

// Attr returns the first attribute with the given name from any group
// with the given delimiter tag
func (m *Message) Attr(group Tag, name string) (Attribute, bool) {
	for _, g := range m.Groups {
		if g.Tag != group {
			continue
		}
		if attr, ok := g.Attr(name); ok {
			return attr, true
		}
	}
	return Attribute{}, false
}
