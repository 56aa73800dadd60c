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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func init() {
	var exportFormat string
	var outputPath string
	defineCommand(&cli.Command{
		Name:      "export",
		Usage:     "Serialize a captured IPP message as JSON or CBOR",
		ArgsUsage: "[file]",
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:        "format",
				Value:       "json",
				Usage:       "output `format`: json or cbor",
				Destination: &exportFormat,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to `file` instead of stdout",
				Destination: &outputPath,
			},
		),
		Action: func(c *cli.Context) error {
			payload, _, err := readPayload(c)
			if err != nil {
				return err
			}
			d, err := newDecoder(c)
			if err != nil {
				return err
			}
			var out []byte
			switch exportFormat {
			case "json":
				out, err = d.JSON(payload)
				if err == nil {
					out = append(out, '\n')
				}
			case "cbor":
				out, err = d.CBOR(payload)
			default:
				return fmt.Errorf("unknown export format %q", exportFormat)
			}
			if err != nil {
				return err
			}
			if outputPath != "" {
				return os.WriteFile(outputPath, out, 0o644)
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	})
}
