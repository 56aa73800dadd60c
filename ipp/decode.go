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
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

const headerLen = 8

// DefaultMaxNestingDepth is the collection recursion limit used when
// DecoderOptions does not set one
const DefaultMaxNestingDepth = 64

// DecoderOptions adjusts decoding behavior. The zero value gives the
// default strict behavior
type DecoderOptions struct {
	// MaxNestingDepth caps collection recursion so a hostile message
	// cannot exhaust the stack. Zero means DefaultMaxNestingDepth
	MaxNestingDepth int
	// PermissiveMembers accepts plain named attribute records in place
	// of memberAttrName markers inside collections. Some printer
	// firmwares encode collection members that way
	PermissiveMembers bool
}

// Decode parses a raw IPP message. The returned message owns all of its
// data and keeps no reference to the input buffer, so the caller may
// reuse or free the buffer immediately
func Decode(data []byte) (*Message, error) {
	return DecodeWithOptions(data, DecoderOptions{})
}

// DecodeWithOptions parses a raw IPP message with explicit options
func DecodeWithOptions(data []byte, opts DecoderOptions) (*Message, error) {
	if opts.MaxNestingDepth <= 0 {
		opts.MaxNestingDepth = DefaultMaxNestingDepth
	}
	d := &decoder{
		data: data,
		opts: opts,
	}
	return d.decodeMessage()
}

// decoder walks the input buffer with bounds-checked reads. pos always
// points at the next unread byte and is reported in decode errors
type decoder struct {
	data []byte
	pos  int
	opts DecoderOptions
}

func (d *decoder) remaining() int {
	return len(d.data) - d.pos
}

func (d *decoder) readU8() (uint8, error) {
	if d.remaining() < 1 {
		return 0, decodeErr(d.pos, ErrTruncatedField, "need 1 byte, have 0")
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readU16() (uint16, error) {
	if d.remaining() < 2 {
		return 0, decodeErr(
			d.pos,
			ErrTruncatedField,
			"need 2 bytes, have %d",
			d.remaining(),
		)
	}
	v := binary.BigEndian.Uint16(d.data[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, decodeErr(
			d.pos,
			ErrTruncatedField,
			"need %d bytes, have %d",
			n,
			d.remaining(),
		)
	}
	data := d.data[d.pos : d.pos+n]
	d.pos += n
	return data, nil
}

// readString reads a 16-bit length followed by that many bytes
func (d *decoder) readString() (string, error) {
	length, err := d.readU16()
	if err != nil {
		return "", err
	}
	data, err := d.readBytes(int(length))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (d *decoder) decodeMessage() (*Message, error) {
	if len(d.data) < headerLen {
		return nil, decodeErr(
			0,
			ErrTruncatedHeader,
			"%d bytes",
			len(d.data),
		)
	}
	msg := &Message{
		Version: Version{
			Major: d.data[0],
			Minor: d.data[1],
		},
		Code:      Code(binary.BigEndian.Uint16(d.data[2:4])),
		RequestID: binary.BigEndian.Uint32(d.data[4:8]),
	}
	d.pos = headerLen

	// A missing end-of-attributes marker is tolerated: running out of
	// input ends the message like an explicit marker would
	for d.remaining() > 0 {
		tag := Tag(d.data[d.pos])
		if tag == TagEnd {
			d.pos++
			break
		}
		if !tag.IsDelimiter() {
			return nil, decodeErr(d.pos, ErrUnexpectedValueTag, "%s", tag)
		}
		d.pos++
		group := Group{Tag: tag}
		for d.remaining() > 0 && !Tag(d.data[d.pos]).IsDelimiter() {
			attr, err := d.decodeAttribute(0)
			if err != nil {
				return nil, err
			}
			group.Attributes = append(group.Attributes, attr)
		}
		msg.Groups = append(msg.Groups, group)
	}
	return msg, nil
}

// decodeAttribute reads one attribute record plus any continuation
// records carrying additional values for it
func (d *decoder) decodeAttribute(depth int) (Attribute, error) {
	pos := d.pos
	tagByte, err := d.readU8()
	if err != nil {
		return Attribute{}, err
	}
	tag := Tag(tagByte)
	name, err := d.readString()
	if err != nil {
		return Attribute{}, err
	}
	if name == "" {
		return Attribute{}, decodeErr(
			pos,
			ErrMissingAttributeName,
			"value tag %s",
			tag,
		)
	}
	attr := Attribute{Name: name}
	value, err := d.decodeValue(tag, depth)
	if err != nil {
		return Attribute{}, err
	}
	attr.Values = append(attr.Values, TaggedValue{Tag: tag, Value: value})
	if err := d.decodeAdditionalValues(&attr, depth); err != nil {
		return Attribute{}, err
	}
	return attr, nil
}

// decodeAdditionalValues consumes continuation records: value records
// with an empty name that extend the preceding attribute. Detection
// looks ahead exactly three bytes (tag plus name length) and consumes
// nothing when the record turns out to start a sibling attribute.
// Collection control records also carry empty names, so they are
// boundaries here, never continuations
func (d *decoder) decodeAdditionalValues(attr *Attribute, depth int) error {
	for d.remaining() >= 3 {
		tag := Tag(d.data[d.pos])
		if tag.IsDelimiter() || tag == TagEndCollection || tag == TagMemberName {
			break
		}
		if binary.BigEndian.Uint16(d.data[d.pos+1 : d.pos+3]) != 0 {
			break
		}
		d.pos += 3
		value, err := d.decodeValue(tag, depth)
		if err != nil {
			return err
		}
		attr.Values = append(attr.Values, TaggedValue{Tag: tag, Value: value})
	}
	return nil
}

// decodeValue reads the 16-bit value length and decodes the value per
// its tag. Except for collections, exactly length bytes are consumed
func (d *decoder) decodeValue(tag Tag, depth int) (Value, error) {
	length, err := d.readU16()
	if err != nil {
		return nil, err
	}
	if tag == TagBeginCollection {
		// The begin record's own value carries nothing
		if _, err := d.readBytes(int(length)); err != nil {
			return nil, err
		}
		return d.decodeCollection(depth + 1)
	}
	pos := d.pos
	data, err := d.readBytes(int(length))
	if err != nil {
		return nil, err
	}
	return parseValue(tag, data, pos)
}

// parseValue decodes a non-collection value from its raw bytes. pos is
// the position of data within the original input, for error reporting
func parseValue(tag Tag, data []byte, pos int) (Value, error) {
	switch {
	case tag.IsOutOfBand():
		return OutOfBand{Kind: tag}, nil
	case tag == TagBoolean:
		if len(data) == 0 {
			return Boolean(false), nil
		}
		return Boolean(data[0] != 0), nil
	case tag.IsIntegerClass():
		return parseInteger(data), nil
	case tag == TagOctetString:
		// Cloned so the decoded tree does not alias the input buffer
		return Bytes(bytes.Clone(data)), nil
	case tag == TagDateTime:
		if len(data) != 11 {
			return Bytes(bytes.Clone(data)), nil
		}
		return parseDateTime(data), nil
	case tag == TagResolution:
		if len(data) < 9 {
			return Invalid{Data: bytes.Clone(data)}, nil
		}
		return Resolution{
			Xres:  int32(binary.BigEndian.Uint32(data[0:4])),
			Yres:  int32(binary.BigEndian.Uint32(data[4:8])),
			Units: data[8],
		}, nil
	case tag == TagRange:
		if len(data) < 8 {
			return Invalid{Data: bytes.Clone(data)}, nil
		}
		return Range{
			Lower: int32(binary.BigEndian.Uint32(data[0:4])),
			Upper: int32(binary.BigEndian.Uint32(data[4:8])),
		}, nil
	case tag == TagTextLang, tag == TagNameLang:
		return parseTextWithLang(data, pos)
	default:
		// Character strings and any tag without specific handling
		return Text(data), nil
	}
}

// parseInteger decodes a big-endian signed 32-bit value. Off-size
// fields decode the bytes that are present: short fields zero-extend
// and can never go negative, oversize fields use the first four bytes
func parseInteger(data []byte) Integer {
	n := len(data)
	if n > 4 {
		n = 4
	}
	var v uint32
	for _, b := range data[:n] {
		v = v<<8 | uint32(b)
	}
	return Integer(int32(v))
}

// parseDateTime decodes the 11-byte RFC 8010 dateTime layout. Field
// combinations that do not form a real calendar date fall back to a
// plain text rendering of the raw fields instead of failing
func parseDateTime(data []byte) Value {
	year := int(binary.BigEndian.Uint16(data[0:2]))
	month := int(data[2])
	day := int(data[3])
	hour := int(data[4])
	minute := int(data[5])
	second := int(data[6])
	deciSecond := int(data[7])
	tzSign := data[8]
	tzHours := int(data[9])
	tzMinutes := int(data[10])

	valid := month >= 1 && month <= 12 &&
		day >= 1 && day <= 31 &&
		hour <= 23 && minute <= 59 && second <= 59 &&
		deciSecond <= 9 &&
		(tzSign == '+' || tzSign == '-') &&
		tzHours <= 23 && tzMinutes <= 59
	if valid {
		offset := (tzHours*60 + tzMinutes) * 60
		if tzSign == '-' {
			offset = -offset
		}
		t := time.Date(
			year,
			time.Month(month),
			day,
			hour,
			minute,
			second,
			deciSecond*100_000_000,
			time.FixedZone("", offset),
		)
		// time.Date normalizes impossible dates like February 30
		// instead of rejecting them
		if t.Year() == year && t.Month() == time.Month(month) &&
			t.Day() == day {
			return DateTime{Time: t}
		}
	}
	return Text(fmt.Sprintf(
		"invalid dateTime %d-%d-%d %d:%d:%d.%d %c%02d:%02d",
		year, month, day,
		hour, minute, second, deciSecond,
		tzSign, tzHours, tzMinutes,
	))
}

// parseTextWithLang decodes the nested language/text layout of
// textWithLanguage and nameWithLanguage values
func parseTextWithLang(data []byte, pos int) (Value, error) {
	if len(data) < 4 {
		return TextWithLang{}, nil
	}
	langLen := int(binary.BigEndian.Uint16(data[0:2]))
	textOff := 2 + langLen
	if textOff+2 > len(data) {
		return nil, decodeErr(
			pos,
			ErrTruncatedField,
			"language length %d exceeds value length %d",
			langLen,
			len(data),
		)
	}
	textLen := int(binary.BigEndian.Uint16(data[textOff : textOff+2]))
	if textOff+2+textLen > len(data) {
		return nil, decodeErr(
			pos,
			ErrTruncatedField,
			"text length %d exceeds value length %d",
			textLen,
			len(data),
		)
	}
	return TextWithLang{
		Lang: string(data[2:textOff]),
		Text: string(data[textOff+2 : textOff+2+textLen]),
	}, nil
}

// decodeCollection parses member records up to the matching
// endCollection record. depth is the nesting level of this collection,
// starting at 1 for a top-level collection value
func (d *decoder) decodeCollection(depth int) (Value, error) {
	if depth > d.opts.MaxNestingDepth {
		return nil, decodeErr(
			d.pos,
			ErrNestingTooDeep,
			"depth %d exceeds limit %d",
			depth,
			d.opts.MaxNestingDepth,
		)
	}
	members := Collection{}
	for {
		pos := d.pos
		tagByte, err := d.readU8()
		if err != nil {
			return nil, err
		}
		tag := Tag(tagByte)
		switch {
		case tag == TagEndCollection:
			// The end record's name and value must be empty per the
			// format; their lengths are honored but not validated
			if _, err := d.readString(); err != nil {
				return nil, err
			}
			if _, err := d.readString(); err != nil {
				return nil, err
			}
			return members, nil
		case tag == TagMemberName:
			// Wrapper name first (normally empty), then the actual
			// member name as the record's value
			if _, err := d.readString(); err != nil {
				return nil, err
			}
			memberName, err := d.readString()
			if err != nil {
				return nil, err
			}
			member, err := d.decodeMemberValue(memberName, depth)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case d.opts.PermissiveMembers && !tag.IsDelimiter():
			// Firmware quirk: the member arrives as a plain named
			// attribute record with no memberAttrName marker
			d.pos = pos
			member, err := d.decodeAttribute(depth)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		default:
			return nil, decodeErr(
				pos,
				ErrUnexpectedCollectionTag,
				"%s",
				tag,
			)
		}
	}
}

// decodeMemberValue reads the value record(s) following a
// memberAttrName record. The value record repeats the attribute shape
// with an empty name and supports the same continuation records
func (d *decoder) decodeMemberValue(name string, depth int) (Attribute, error) {
	tagByte, err := d.readU8()
	if err != nil {
		return Attribute{}, err
	}
	tag := Tag(tagByte)
	if _, err := d.readString(); err != nil {
		return Attribute{}, err
	}
	value, err := d.decodeValue(tag, depth)
	if err != nil {
		return Attribute{}, err
	}
	member := Attribute{
		Name:   name,
		Values: Values{{Tag: tag, Value: value}},
	}
	if err := d.decodeAdditionalValues(&member, depth); err != nil {
		return Attribute{}, err
	}
	return member, nil
}
