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

package ipp_test

import (
	"testing"

	"github.com/georg-jung/IppDecoder/ipp"
)

func TestCodeIsStatus(t *testing.T) {
	testDefs := []struct {
		code     ipp.Code
		isStatus bool
	}{
		{0x0000, true},
		{0x0001, true},
		// Print-Job: registered both ways, resolves to operation
		{0x0002, false},
		{0x000b, false},
		{0x00ff, false},
		{0x0100, true},
		{0x0300, true},
		{0x0400, true},
		{0x05ff, true},
		{0x0600, false},
		// CUPS vendor operations
		{0x4001, false},
		{0xffff, false},
	}
	for _, td := range testDefs {
		if got := td.code.IsStatus(); got != td.isStatus {
			t.Fatalf(
				"IsStatus for code 0x%04x returned %t, wanted %t",
				uint16(td.code),
				got,
				td.isStatus,
			)
		}
	}
}

func TestCodeConversions(t *testing.T) {
	if s := ipp.Code(0x000b).Op().String(); s != "Get-Printer-Attributes" {
		t.Fatalf("unexpected operation name %q", s)
	}
	if s := ipp.Code(0x0400).Status().String(); s != "client-error-bad-request" {
		t.Fatalf("unexpected status name %q", s)
	}
	if s := ipp.Code(0x7fff).Op().String(); s != "0x7fff" {
		t.Fatalf("unexpected fallback operation name %q", s)
	}
	if s := ipp.Code(0x05fe).Status().String(); s != "0x05fe" {
		t.Fatalf("unexpected fallback status name %q", s)
	}
}

func TestVersionString(t *testing.T) {
	testDefs := []struct {
		version  ipp.Version
		expected string
	}{
		{ipp.Version{Major: 1, Minor: 1}, "1.1"},
		{ipp.Version{Major: 2, Minor: 0}, "2.0"},
		{ipp.Version{Major: 0, Minor: 0}, "0.0"},
	}
	for _, td := range testDefs {
		if s := td.version.String(); s != td.expected {
			t.Fatalf("version formatted as %q, wanted %q", s, td.expected)
		}
	}
}

func TestValuesString(t *testing.T) {
	testDefs := []struct {
		values   ipp.Values
		expected string
	}{
		{ipp.Values{}, "[]"},
		{
			ipp.Values{{Tag: ipp.TagKeyword, Value: ipp.Text("a4")}},
			"a4",
		},
		{
			ipp.Values{
				{Tag: ipp.TagEnum, Value: ipp.Integer(4)},
				{Tag: ipp.TagEnum, Value: ipp.Integer(6)},
			},
			"[4,6]",
		},
	}
	for _, td := range testDefs {
		if s := td.values.String(); s != td.expected {
			t.Fatalf("values formatted as %q, wanted %q", s, td.expected)
		}
	}
}

func TestAttributeAccessors(t *testing.T) {
	attr := ipp.Attribute{
		Name: "finishings",
		Values: ipp.Values{
			{Tag: ipp.TagEnum, Value: ipp.Integer(4)},
			{Tag: ipp.TagEnum, Value: ipp.Integer(6)},
		},
	}
	if attr.Tag() != ipp.TagEnum {
		t.Fatalf("unexpected attribute tag %s", attr.Tag())
	}
	if attr.Value() != ipp.Integer(4) {
		t.Fatalf("unexpected first value %v", attr.Value())
	}
	var empty ipp.Attribute
	if empty.Tag() != ipp.TagZero {
		t.Fatalf("empty attribute tag should be zero, got %s", empty.Tag())
	}
	if empty.Value() != nil {
		t.Fatalf("empty attribute value should be nil, got %v", empty.Value())
	}
}

func TestMessageAttr(t *testing.T) {
	msg := &ipp.Message{
		Groups: []ipp.Group{
			{
				Tag: ipp.TagOperationGroup,
				Attributes: []ipp.Attribute{
					{
						Name: "attributes-charset",
						Values: ipp.Values{
							{Tag: ipp.TagCharset, Value: ipp.Text("utf-8")},
						},
					},
				},
			},
			// A second group with the same tag; lookups scan all of them
			{
				Tag: ipp.TagOperationGroup,
				Attributes: []ipp.Attribute{
					{
						Name: "requesting-user-name",
						Values: ipp.Values{
							{Tag: ipp.TagName, Value: ipp.Text("georg")},
						},
					},
				},
			},
		},
	}
	attr, ok := msg.Attr(ipp.TagOperationGroup, "requesting-user-name")
	if !ok {
		t.Fatalf("expected to find attribute in second group")
	}
	if attr.Value() != ipp.Text("georg") {
		t.Fatalf("unexpected attribute value %v", attr.Value())
	}
	if _, ok := msg.Attr(ipp.TagJobGroup, "requesting-user-name"); ok {
		t.Fatalf("lookup must honor the group tag")
	}
	if _, ok := msg.Attr(ipp.TagOperationGroup, "media"); ok {
		t.Fatalf("lookup for an absent attribute must fail")
	}
}
