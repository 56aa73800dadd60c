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

package capture_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georg-jung/IppDecoder/capture"
)

func httpRequest(contentType string, body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("POST /printers/main HTTP/1.1\r\n")
	buf.WriteString("Host: printer.local\r\n")
	if contentType != "" {
		fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
	}
	fmt.Fprintf(&buf, "Content-Length: %d\r\n", len(body))
	buf.WriteString("\r\n")
	buf.Write(body)
	return buf.Bytes()
}

func httpResponse(contentType string, body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 200 OK\r\n")
	if contentType != "" {
		fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
	}
	fmt.Fprintf(&buf, "Content-Length: %d\r\n", len(body))
	buf.WriteString("\r\n")
	buf.Write(body)
	return buf.Bytes()
}

// TestFromHTTPRequest tests body extraction from a captured POST
func TestFromHTTPRequest(t *testing.T) {
	out, err := capture.FromHTTP(httpRequest("application/ipp", wireMessage))
	require.NoError(t, err)
	assert.Equal(t, wireMessage, out)
}

// TestFromHTTPResponse tests body extraction from a captured response
func TestFromHTTPResponse(t *testing.T) {
	out, err := capture.FromHTTP(httpResponse("application/ipp", wireMessage))
	require.NoError(t, err)
	assert.Equal(t, wireMessage, out)
}

// TestFromHTTPContentTypeParams tests that media type parameters are
// tolerated while foreign media types are rejected
func TestFromHTTPContentTypeParams(t *testing.T) {
	out, err := capture.FromHTTP(httpRequest("application/ipp; charset=utf-8", wireMessage))
	require.NoError(t, err)
	assert.Equal(t, wireMessage, out)

	_, err = capture.FromHTTP(httpRequest("text/html", []byte("<html></html>")))
	assert.ErrorIs(t, err, capture.ErrNotIPP)
}

// TestFromHTTPMissingContentType tests that captures without a
// Content-Type header are accepted
func TestFromHTTPMissingContentType(t *testing.T) {
	out, err := capture.FromHTTP(httpRequest("", wireMessage))
	require.NoError(t, err)
	assert.Equal(t, wireMessage, out)
}

// TestFromHTTPChunked tests that chunked transfer encoding is undone
func TestFromHTTPChunked(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 200 OK\r\n")
	buf.WriteString("Content-Type: application/ipp\r\n")
	buf.WriteString("Transfer-Encoding: chunked\r\n")
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "%x\r\n", len(wireMessage))
	buf.Write(wireMessage)
	buf.WriteString("\r\n0\r\n\r\n")

	out, err := capture.FromHTTP(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, wireMessage, out)
}

// TestFromHTTPEmptyBody tests the explicit no-body error
func TestFromHTTPEmptyBody(t *testing.T) {
	_, err := capture.FromHTTP(httpRequest("application/ipp", nil))
	assert.ErrorIs(t, err, capture.ErrNoBody)
}

// TestFromHTTPGarbage tests that non-HTTP input fails with a parse
// error instead of returning junk
func TestFromHTTPGarbage(t *testing.T) {
	_, err := capture.FromHTTP([]byte("junk that is not http"))
	assert.Error(t, err)
}

// TestFromHTTPTruncatedBody tests that a body shorter than the declared
// length is reported
func TestFromHTTPTruncatedBody(t *testing.T) {
	full := httpRequest("application/ipp", wireMessage)
	_, err := capture.FromHTTP(full[:len(full)-4])
	assert.Error(t, err)
}
