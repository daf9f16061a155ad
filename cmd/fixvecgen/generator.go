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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-fixvec/fixvec"
)

const (
	fixvecImport  = "github.com/ajroetker/go-fixvec/fixvec"
	decvecImport  = "github.com/ajroetker/go-fixvec/fixvec/contrib/decvec"
	decimalImport = "github.com/shopspring/decimal"

	// decimalType selects decvec vectors of decimal.Decimal.
	decimalType = "decimal"
)

var (
	// ErrInvalidType is returned for an element type fixvec cannot hold.
	ErrInvalidType = errors.New("fixvecgen: invalid element type")

	// ErrInvalidSize is returned for a length outside [0, fixvec.MaxLen].
	ErrInvalidSize = errors.New("fixvecgen: invalid vector size")

	// ErrInvalidPackage is returned for a package name that is not a Go
	// identifier.
	ErrInvalidPackage = errors.New("fixvecgen: invalid package name")
)

// elementTypes lists the element types accepted by --types, in the order
// fixvec.Number declares them.
var elementTypes = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"float32", "float64",
	decimalType,
}

func init() {
	imports.LocalPrefix = "github.com/ajroetker/go-fixvec"
}

// Config describes one generated file.
type Config struct {
	Package string   // package clause of the generated file
	Types   []string // element types, see elementTypes
	Sizes   []int    // vector lengths
}

// Alias is one generated type alias.
type Alias struct {
	Name     string // e.g. "Float32x3"
	ElemType string // e.g. "float32"
	Size     int
}

// Plan validates cfg and returns the aliases to generate, types outermost,
// in first-seen order with duplicates dropped.
func Plan(cfg Config) ([]Alias, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, cfg.Package)
	}
	types := lo.Uniq(cfg.Types)
	sizes := lo.Uniq(cfg.Sizes)

	if bad := lo.Filter(types, func(t string, _ int) bool {
		return !slices.Contains(elementTypes, t)
	}); len(bad) > 0 {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrInvalidType, bad, elementTypes)
	}
	if bad := lo.Filter(sizes, func(n int, _ int) bool {
		return n < 0 || n > fixvec.MaxLen
	}); len(bad) > 0 {
		return nil, fmt.Errorf("%w: %v (want 0..%d)", ErrInvalidSize, bad, fixvec.MaxLen)
	}

	aliases := make([]Alias, 0, len(types)*len(sizes))
	for _, t := range types {
		for _, n := range sizes {
			aliases = append(aliases, Alias{Name: aliasName(t, n), ElemType: t, Size: n})
		}
	}
	return aliases, nil
}

// aliasName converts an element type and size to an exported type name.
// E.g., ("float32", 3) -> "Float32x3", ("decimal", 2) -> "Decimalx2".
func aliasName(elemType string, n int) string {
	return fmt.Sprintf("%sx%d", cases.Title(language.English).String(elemType), n)
}

// Generate returns the formatted Go source for cfg. filename is only used
// in formatting error messages.
func Generate(filename string, cfg Config) ([]byte, error) {
	aliases, err := Plan(cfg)
	if err != nil {
		return nil, err
	}

	needFixvec := lo.SomeBy(aliases, func(a Alias) bool { return a.ElemType != decimalType })
	needDecimal := lo.SomeBy(aliases, func(a Alias) bool { return a.ElemType == decimalType })

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by fixvecgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)

	if needFixvec || needDecimal {
		buf.WriteString("import (\n")
		if needDecimal {
			fmt.Fprintf(&buf, "\t%q\n\n", decimalImport)
		}
		if needFixvec {
			fmt.Fprintf(&buf, "\t%q\n", fixvecImport)
		}
		if needDecimal {
			fmt.Fprintf(&buf, "\t%q\n", decvecImport)
		}
		buf.WriteString(")\n")
	}

	for _, a := range aliases {
		buf.WriteString("\n")
		if a.ElemType == decimalType {
			fmt.Fprintf(&buf, "// %s is a vector of %d decimal.Decimal elements.\n", a.Name, a.Size)
			fmt.Fprintf(&buf, "type %s = decvec.Vector[[%d]decimal.Decimal]\n", a.Name, a.Size)
			continue
		}
		fmt.Fprintf(&buf, "// %s is a vector of %d %s elements.\n", a.Name, a.Size, a.ElemType)
		fmt.Fprintf(&buf, "type %s = fixvec.Vector[%s, [%d]%s]\n", a.Name, a.ElemType, a.Size, a.ElemType)
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fixvecgen: formatting %s: %w", filename, err)
	}
	return src, nil
}
