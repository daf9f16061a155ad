// Copyright 2025 go-fixvec Authors
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

// Command fixvecgen writes a Go file of named fixed-length vector types.
//
// Usage:
//
//	fixvecgen --package geom --types float32,int32,decimal --sizes 2,3,4 -o vectors_gen.go
//
// Each (type, size) pair becomes an alias such as
//
//	type Float32x3 = fixvec.Vector[float32, [3]float32]
//
// The decimal type produces decvec vectors of decimal.Decimal.
//
// It is meant for go:generate directives:
//
//	//go:generate go run github.com/ajroetker/go-fixvec/cmd/fixvecgen --package geom --sizes 2,3 -o vectors_gen.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg     Config
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "fixvecgen",
		Short:        "Generate named fixed-length vector types",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd, verbose)

			name := output
			if name == "" {
				name = "<stdout>"
			}
			logger.Debug("generating", "package", cfg.Package, "types", cfg.Types, "sizes", cfg.Sizes, "output", name)

			src, err := Generate(name, cfg)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("fixvecgen: %w", err)
			}
			logger.Info("wrote vector types", "file", output, "bytes", len(src))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Package, "package", "", "package name of the generated file")
	flags.StringSliceVar(&cfg.Types, "types", []string{"float32", "float64"}, "element types")
	flags.IntSliceVar(&cfg.Sizes, "sizes", []int{2, 3, 4}, "vector lengths")
	flags.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

// newLogger logs to the command's error stream so generated source on
// stdout stays clean.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
