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

// Package logging is a thin wrapper of the zap logging library
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

var root = func() *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}()

// New creates a named logger. By convention this appears once per
// package:
//
//	var logger = logging.New("capture")
func New(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// SetLevel adjusts the level shared by all loggers. Names follow zap:
// debug, info, warn, error
func SetLevel(name string) error {
	parsed, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return err
	}
	level.SetLevel(parsed)
	return nil
}
