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
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Resolution units from RFC 8010. Anything other than dots-per-inch is
// treated as dots-per-centimeter when rendering
const (
	UnitsDpi  uint8 = 3
	UnitsDpcm uint8 = 4
)

// BytesPreviewLimit is the maximum number of bytes shown when an
// octet-string value is formatted as text
const BytesPreviewLimit = 16

// Value is one decoded attribute value. The concrete type is one of
// Integer, Boolean, Text, Bytes, DateTime, Resolution, Range,
// TextWithLang, Collection, OutOfBand or Invalid. String returns a
// compact single-line form
type Value interface {
	String() string
}

// Integer holds integer and enum values
type Integer int32

func (v Integer) String() string {
	return fmt.Sprintf("%d", int32(v))
}

// Boolean holds boolean values
type Boolean bool

func (v Boolean) String() string {
	return fmt.Sprintf("%t", bool(v))
}

// Text holds all character-string values (keywords, names, URIs, ...)
type Text string

func (v Text) String() string {
	return string(v)
}

// Bytes holds octet-string values as raw bytes
type Bytes []byte

// String returns a lowercase hex preview. Values longer than
// BytesPreviewLimit are cut off after that many bytes, marked with an
// ellipsis and annotated with the full length
func (v Bytes) String() string {
	if len(v) > BytesPreviewLimit {
		return fmt.Sprintf(
			"%s... (%d bytes)",
			hex.EncodeToString(v[:BytesPreviewLimit]),
			len(v),
		)
	}
	return hex.EncodeToString(v)
}

// DateTime holds dateTime values. The decisecond field from the wire is
// folded into the fractional seconds of Time
type DateTime struct {
	Time time.Time
}

// String renders the timestamp with a tenths-of-a-second digit when it
// is non-zero, e.g. "2024-01-15 13:45:30.5 +01:00"
func (v DateTime) String() string {
	return v.Time.Format("2006-01-02 15:04:05.9 -07:00")
}

// Resolution holds resolution values: cross-feed and feed direction
// plus the unit byte
type Resolution struct {
	Xres  int32
	Yres  int32
	Units uint8
}

func (v Resolution) String() string {
	unit := "dpcm"
	if v.Units == UnitsDpi {
		unit = "dpi"
	}
	return fmt.Sprintf("%dx%d %s", v.Xres, v.Yres, unit)
}

// Range holds rangeOfInteger values
type Range struct {
	Lower int32
	Upper int32
}

func (v Range) String() string {
	return fmt.Sprintf("%d to %d", v.Lower, v.Upper)
}

// TextWithLang holds textWithLanguage and nameWithLanguage values
type TextWithLang struct {
	Lang string
	Text string
}

func (v TextWithLang) String() string {
	return fmt.Sprintf("%q (%s)", v.Text, v.Lang)
}

// Collection holds the ordered member attributes of a collection value
type Collection []Attribute

func (v Collection) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, member := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(member.Name)
		sb.WriteByte('=')
		sb.WriteString(member.Values.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// OutOfBand is the sentinel for out-of-band values such as unknown,
// no-value or unsupported. Kind records which one it was
type OutOfBand struct {
	Kind Tag
}

func (v OutOfBand) String() string {
	return v.Kind.String()
}

// Invalid is the placeholder for fixed-size values whose declared
// length was too short to decode (resolution, rangeOfInteger). The
// undecodable bytes are preserved
type Invalid struct {
	Data []byte
}

func (v Invalid) String() string {
	return fmt.Sprintf("invalid (%d bytes)", len(v.Data))
}
