package test

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// BytesFromHex decodes an annotated hex fixture. Everything from "--"
// to the end of a line is a comment, and whitespace between octets is
// ignored, so wire fixtures can be written out field by field.
func BytesFromHex(hexData string) []byte {
	var sb strings.Builder
	for _, line := range strings.Split(hexData, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		for _, r := range line {
			if !strings.ContainsRune(" \t\r", r) {
				sb.WriteRune(r)
			}
		}
	}
	decoded, err := hex.DecodeString(sb.String())
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// MessageBuilder assembles a raw wire message record by record, for
// fixtures too long or too repetitive to write out as hex.
type MessageBuilder struct {
	buf bytes.Buffer
}

// NewMessage starts a message with the given header fields.
func NewMessage(major, minor uint8, code uint16, requestID uint32) *MessageBuilder {
	b := &MessageBuilder{}
	b.buf.WriteByte(major)
	b.buf.WriteByte(minor)
	b.u16(code)
	var req [4]byte
	binary.BigEndian.PutUint32(req[:], requestID)
	b.buf.Write(req[:])
	return b
}

// Delimiter appends a bare delimiter byte.
func (b *MessageBuilder) Delimiter(tag byte) *MessageBuilder {
	b.buf.WriteByte(tag)
	return b
}

// Record appends one tag|nameLen|name|valueLen|value record.
func (b *MessageBuilder) Record(tag byte, name string, value []byte) *MessageBuilder {
	b.buf.WriteByte(tag)
	b.u16(uint16(len(name)))
	b.buf.WriteString(name)
	b.u16(uint16(len(value)))
	b.buf.Write(value)
	return b
}

// Bytes returns the assembled message.
func (b *MessageBuilder) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *MessageBuilder) u16(v uint16) {
	var be [2]byte
	binary.BigEndian.PutUint16(be[:], v)
	b.buf.Write(be[:])
}
