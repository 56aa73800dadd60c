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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	ippdecoder "github.com/georg-jung/IppDecoder"
	"github.com/georg-jung/IppDecoder/capture"
)

// inputFlags are shared by every command that reads captures
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "hex",
			Usage: "input is hex text",
		},
		&cli.BoolFlag{
			Name:  "http",
			Usage: "input is a captured HTTP exchange carrying the IPP message",
		},
		&cli.BoolFlag{
			Name:  "auto",
			Usage: "sniff the input format",
		},
		&cli.BoolFlag{
			Name:  "permissive",
			Usage: "tolerate collection members encoded without memberAttrName markers",
		},
	}
}

// inputFormat resolves the capture format from the command flags. Raw
// binary is the default
func inputFormat(c *cli.Context) (capture.Format, error) {
	format := capture.FormatRaw
	set := 0
	if c.Bool("hex") {
		format = capture.FormatHex
		set++
	}
	if c.Bool("http") {
		format = capture.FormatHTTP
		set++
	}
	if c.Bool("auto") {
		format = capture.FormatAuto
		set++
	}
	if set > 1 {
		return format, errors.New("at most one of --hex, --http and --auto may be given")
	}
	return format, nil
}

// readPayload reads the positional input file (or stdin when absent or
// "-") and extracts the raw IPP bytes from it
func readPayload(c *cli.Context) ([]byte, string, error) {
	format, err := inputFormat(c)
	if err != nil {
		return nil, "", err
	}
	if c.Args().Len() > 1 {
		return nil, "", errors.New("expected at most one input file")
	}
	source := "stdin"
	var data []byte
	if c.Args().Len() == 0 || c.Args().First() == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		source = c.Args().First()
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, source, err
	}
	logger.Debug("read capture",
		zap.String("source", source),
		zap.Stringer("format", format),
		zap.Int("bytes", len(data)),
	)
	payload, err := capture.Extract(data, format)
	if err != nil {
		return nil, source, fmt.Errorf("%s: %w", source, err)
	}
	return payload, source, nil
}

// newDecoder builds the facade Decoder from the display config file and
// command flags
func newDecoder(c *cli.Context) (*ippdecoder.Decoder, error) {
	var opts []ippdecoder.DecoderOptionFunc
	if configPath != "" {
		fileOpts, err := loadDisplayConfig(configPath)
		if err != nil {
			return nil, err
		}
		opts = fileOpts
	}
	if c.Bool("permissive") {
		opts = append(opts, ippdecoder.WithPermissiveMembers(true))
	}
	return ippdecoder.New(opts...)
}
