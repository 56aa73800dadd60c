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

// Command ippdecoder renders captured IPP messages in readable form.
package main

import (
	"log"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/georg-jung/IppDecoder/internal/logging"
)

var (
	logLevel   string
	configPath string
)

var logger = logging.New("cli")

var app = &cli.App{
	Name:    "ippdecoder",
	Usage:   "Decode captured IPP messages into readable form",
	Version: "0.1.0",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Value:       "info",
			Usage:       "log `level`: debug, info, warn, error",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "TOML display configuration `file`",
			Destination: &configPath,
		},
	},
	Before: func(c *cli.Context) error {
		return logging.SetLevel(logLevel)
	},
	DefaultCommand: "dump",
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
