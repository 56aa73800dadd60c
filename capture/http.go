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

package capture

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// ipp-over-HTTP media type per RFC 8010
const ippMediaType = "application/ipp"

// ErrNotIPP means the HTTP body declared a content type other than
// application/ipp
var ErrNotIPP = errors.New("http body is not application/ipp")

// ErrNoBody means the HTTP exchange carried no body to decode
var ErrNoBody = errors.New("http capture has no body")

// FromHTTP extracts the IPP body from a captured HTTP request or
// response. Chunked transfer encoding is undone; a Content-Type other
// than application/ipp is rejected, a missing one is accepted
func FromHTTP(data []byte) ([]byte, error) {
	// Stray leading whitespace would derail the header parser; the
	// binary body sits after the headers and is unaffected
	data = bytes.TrimLeft(data, " \t\r\n")
	br := bufio.NewReader(bytes.NewReader(data))
	var body io.ReadCloser
	var contentType string
	if bytes.HasPrefix(data, []byte("HTTP/")) {
		resp, err := http.ReadResponse(br, nil)
		if err != nil {
			return nil, fmt.Errorf("read http response: %w", err)
		}
		body = resp.Body
		contentType = resp.Header.Get("Content-Type")
	} else {
		req, err := http.ReadRequest(br)
		if err != nil {
			return nil, fmt.Errorf("read http request: %w", err)
		}
		body = req.Body
		contentType = req.Header.Get("Content-Type")
	}
	defer body.Close()
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != ippMediaType {
			return nil, fmt.Errorf("%w: %q", ErrNotIPP, contentType)
		}
	}
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read http body: %w", err)
	}
	if len(payload) == 0 {
		return nil, ErrNoBody
	}
	return payload, nil
}
