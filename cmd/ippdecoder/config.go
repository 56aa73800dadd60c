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
	"strconv"

	"github.com/BurntSushi/toml"

	ippdecoder "github.com/georg-jung/IppDecoder"
)

// ippdecoder config.toml key mapping to display settings. Codes are
// TOML string keys ("0x4001" or decimal), glossary value keys are
// decimal integers:
//
//	[names.operations]
//	"0x4001" = "Vendor-Diagnostics"
//
//	[glossary.printer-state]
//	"3" = "ready"
//
//	[render]
//	indent = "    "
type fileConfig struct {
	Names    namesConfig                  `toml:"names"`
	Glossary map[string]map[string]string `toml:"glossary"`
	Render   renderConfig                 `toml:"render"`
}

type namesConfig struct {
	Operations map[string]string `toml:"operations"`
	Statuses   map[string]string `toml:"statuses"`
}

type renderConfig struct {
	Indent string `toml:"indent"`
}

// loadDisplayConfig translates a TOML display config into Decoder
// options overlaying the built-in defaults
func loadDisplayConfig(path string) ([]ippdecoder.DecoderOptionFunc, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load display config: %w", err)
	}

	var opts []ippdecoder.DecoderOptionFunc
	for key, name := range raw.Names.Operations {
		code, err := parseCode(key)
		if err != nil {
			return nil, fmt.Errorf("names.operations: %w", err)
		}
		opts = append(opts, ippdecoder.WithOperationName(code, name))
	}
	for key, name := range raw.Names.Statuses {
		code, err := parseCode(key)
		if err != nil {
			return nil, fmt.Errorf("names.statuses: %w", err)
		}
		opts = append(opts, ippdecoder.WithStatusName(code, name))
	}
	for attribute, entries := range raw.Glossary {
		labels := make(map[int32]string, len(entries))
		for key, label := range entries {
			value, err := strconv.ParseInt(key, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("glossary.%s: bad value %q: %w", attribute, key, err)
			}
			labels[int32(value)] = label
		}
		opts = append(opts, ippdecoder.WithGlossary(attribute, labels))
	}
	if meta.IsDefined("render", "indent") {
		opts = append(opts, ippdecoder.WithIndent(raw.Render.Indent))
	}
	return opts, nil
}

// parseCode accepts hex ("0x4001") and decimal operation/status codes
func parseCode(key string) (uint16, error) {
	value, err := strconv.ParseUint(key, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad code %q: %w", key, err)
	}
	return uint16(value), nil
}
