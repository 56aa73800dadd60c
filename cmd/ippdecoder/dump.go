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
	"os"

	"github.com/urfave/cli/v2"
)

func init() {
	defineCommand(&cli.Command{
		Name:      "dump",
		Usage:     "Render a captured IPP message as human-readable text",
		ArgsUsage: "[file]",
		Flags:     inputFlags(),
		Action: func(c *cli.Context) error {
			payload, _, err := readPayload(c)
			if err != nil {
				return err
			}
			d, err := newDecoder(c)
			if err != nil {
				return err
			}
			return d.Dump(payload, os.Stdout)
		},
	})
}
