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
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/georg-jung/IppDecoder/ipp"
	"github.com/georg-jung/IppDecoder/pipeline"
)

func init() {
	var workers int
	defineCommand(&cli.Command{
		Name:      "batch",
		Usage:     "Decode many captures in parallel, printing results in input order",
		ArgsUsage: "file [file ...]",
		Flags: append(inputFlags(),
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "parallel decode `workers` (0 selects a CPU-based default)",
				Destination: &workers,
			},
		),
		Action: func(c *cli.Context) error {
			return runBatch(c, workers)
		},
	})
}

func runBatch(c *cli.Context, workers int) error {
	if c.Args().Len() == 0 {
		return errors.New("no input files")
	}
	format, err := inputFormat(c)
	if err != nil {
		return err
	}
	d, err := newDecoder(c)
	if err != nil {
		return err
	}

	type batchInput struct {
		path string
		data []byte
	}
	var errs error
	inputs := make([]batchInput, 0, c.Args().Len())
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable input", zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		inputs = append(inputs, batchInput{path: path, data: data})
	}

	opts := []pipeline.PipelineOption{
		pipeline.WithFormatFunc(pipeline.TextFormatter(d.Renderer())),
		pipeline.WithDecoderOptions(ipp.DecoderOptions{
			PermissiveMembers: c.Bool("permissive"),
		}),
	}
	if workers > 0 {
		opts = append(opts, pipeline.WithDecodeWorkers(workers))
	}
	p := pipeline.NewMessagePipeline(opts...)

	ctx := c.Context
	if err := p.Start(ctx); err != nil {
		return multierr.Append(errs, err)
	}

	go func() {
		for _, in := range inputs {
			// Submit only fails when the context is cancelled or the
			// pipeline stopped; the consumer below exits on both
			if err := p.Submit(ctx, in.path, in.data, format); err != nil {
				return
			}
		}
	}()

	received := 0
consume:
	for received < len(inputs) {
		select {
		case item, ok := <-p.Results():
			if !ok {
				break consume
			}
			received++
			if err := item.Err(); err != nil {
				logger.Warn("decode failed", zap.Error(err))
				errs = multierr.Append(errs, err)
				continue
			}
			logger.Info("decoded",
				zap.String("source", item.Source()),
				zap.Duration("took", item.TotalDuration()),
			)
			fmt.Printf("==> %s <==\n%s", item.Source(), item.Output())
		case <-p.Errors():
			// Failures also surface via item.Err() on the results path;
			// receiving here just keeps workers from blocking on a full
			// error channel
		case <-ctx.Done():
			errs = multierr.Append(errs, ctx.Err())
			break consume
		}
	}
	if err := p.Stop(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}
