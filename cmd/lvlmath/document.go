// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/tags"
)

var (
	// ErrEmptyDocument indicates the input held no rows.
	ErrEmptyDocument = errors.New("lvlmath: document has no rows")

	// ErrUnknownLayout indicates a layout other than row_major or col_major.
	ErrUnknownLayout = errors.New("lvlmath: unknown layout")
)

// document is the YAML matrix input.
type document struct {
	Rows   [][]float64 `yaml:"rows"`
	Layout string      `yaml:"layout,omitempty"`
}

// readDocument decodes one document from r.
func readDocument(r io.Reader) (*document, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, ErrEmptyDocument
	}

	return &doc, nil
}

// layout maps the document layout name onto a tag; empty selects the
// matrix package default.
func (d *document) layout() (tags.Layout, error) {
	switch d.Layout {
	case "":
		return matrix.DefaultLayout, nil
	case tags.RowMajor.String():
		return tags.RowMajor, nil
	case tags.ColMajor.String():
		return tags.ColMajor, nil
	default:
		return 0, fmt.Errorf("%q: %w", d.Layout, ErrUnknownLayout)
	}
}

// build converts the document into a Dynamic matrix of element type E.
func build[E scalar.Float](d *document) (*matrix.Dynamic[E], error) {
	l, err := d.layout()
	if err != nil {
		return nil, err
	}
	rows := lo.Map(d.Rows, func(row []float64, _ int) []E {
		return lo.Map(row, func(v float64, _ int) E { return E(v) })
	})

	return matrix.FromRows(rows, matrix.WithLayout(l))
}

// rowsOf reads m back into float64 rows for output.
func rowsOf[E scalar.Float](m matrix.Expr[E]) [][]float64 {
	return lo.Times(m.Rows(), func(i int) []float64 {
		return lo.Times(m.Cols(), func(j int) float64 { return float64(m.Get(i, j)) })
	})
}

// matrixResult is the YAML output of inverse and transpose.
type matrixResult struct {
	Rows   [][]float64 `yaml:"rows"`
	Layout string      `yaml:"layout"`
}

// determinantResult is the YAML output of det.
type determinantResult struct {
	Determinant float64 `yaml:"determinant"`
}

// luResult is the YAML output of lu. Order and Sign are set with --pivot.
type luResult struct {
	LU    [][]float64 `yaml:"lu"`
	Order []int       `yaml:"order,omitempty"`
	Sign  *int        `yaml:"sign,omitempty"`
}

// writeYAML encodes v to w with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return enc.Close()
}
