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

package ipp_test

import (
	"testing"

	"github.com/georg-jung/IppDecoder/ipp"
)

func TestTagPredicates(t *testing.T) {
	testDefs := []struct {
		tag          ipp.Tag
		delimiter    bool
		group        bool
		outOfBand    bool
		integerClass bool
	}{
		{ipp.TagZero, true, true, false, false},
		{ipp.TagOperationGroup, true, true, false, false},
		{ipp.TagEnd, true, false, false, false},
		{ipp.TagSystemGroup, true, true, false, false},
		{ipp.Tag(0x0f), true, true, false, false},
		{ipp.TagUnsupportedValue, false, false, true, false},
		{ipp.TagNoValue, false, false, true, false},
		{ipp.Tag(0x1f), false, false, true, false},
		{ipp.TagInteger, false, false, false, true},
		{ipp.TagEnum, false, false, false, true},
		{ipp.Tag(0x2f), false, false, false, true},
		{ipp.TagOctetString, false, false, false, false},
		{ipp.TagKeyword, false, false, false, false},
		{ipp.TagExtension, false, false, false, false},
	}
	for _, td := range testDefs {
		if got := td.tag.IsDelimiter(); got != td.delimiter {
			t.Fatalf("IsDelimiter for %s returned %t", td.tag, got)
		}
		if got := td.tag.IsGroup(); got != td.group {
			t.Fatalf("IsGroup for %s returned %t", td.tag, got)
		}
		if got := td.tag.IsOutOfBand(); got != td.outOfBand {
			t.Fatalf("IsOutOfBand for %s returned %t", td.tag, got)
		}
		if got := td.tag.IsIntegerClass(); got != td.integerClass {
			t.Fatalf("IsIntegerClass for %s returned %t", td.tag, got)
		}
	}
}

func TestTagString(t *testing.T) {
	testDefs := []struct {
		tag      ipp.Tag
		expected string
	}{
		{ipp.TagOperationGroup, "operation-attributes-tag"},
		{ipp.TagEnd, "end-of-attributes-tag"},
		{ipp.TagInteger, "integer"},
		{ipp.TagOctetString, "octetString"},
		{ipp.TagRange, "rangeOfInteger"},
		{ipp.TagText, "textWithoutLanguage"},
		{ipp.TagMemberName, "memberAttrName"},
		{ipp.Tag(0x0b), "0x0b"},
		{ipp.Tag(0x5f), "0x5f"},
	}
	for _, td := range testDefs {
		if s := td.tag.String(); s != td.expected {
			t.Fatalf("tag formatted as %q, wanted %q", s, td.expected)
		}
	}
}

func TestTagGroupName(t *testing.T) {
	testDefs := []struct {
		tag      ipp.Tag
		expected string
	}{
		{ipp.TagOperationGroup, "operation-attributes"},
		{ipp.TagJobGroup, "job-attributes"},
		{ipp.TagPrinterGroup, "printer-attributes"},
		{ipp.TagSystemGroup, "system-attributes"},
		{ipp.Tag(0x0b), "unknown-group-0x0b"},
	}
	for _, td := range testDefs {
		if s := td.tag.GroupName(); s != td.expected {
			t.Fatalf("group name %q, wanted %q", s, td.expected)
		}
	}
}

func TestOperationNamesCopy(t *testing.T) {
	names := ipp.OperationNames()
	if names[uint16(ipp.OpGetPrinterAttributes)] != "Get-Printer-Attributes" {
		t.Fatalf("operation table is missing Get-Printer-Attributes")
	}
	names[uint16(ipp.OpGetPrinterAttributes)] = "tampered"
	if ipp.OpGetPrinterAttributes.String() != "Get-Printer-Attributes" {
		t.Fatalf("mutating the returned map must not affect the name table")
	}
}

func TestStatusNamesCopy(t *testing.T) {
	names := ipp.StatusNames()
	if names[uint16(ipp.StatusOk)] != "successful-ok" {
		t.Fatalf("status table is missing successful-ok")
	}
	names[uint16(ipp.StatusOk)] = "tampered"
	if ipp.StatusOk.String() != "successful-ok" {
		t.Fatalf("mutating the returned map must not affect the name table")
	}
}
