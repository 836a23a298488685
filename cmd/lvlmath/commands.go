// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/scalar"
)

// newInverseCmd prints the inverse of a square matrix.
func newInverseCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Invert a square matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := cfg.input(cmd)
			if err != nil {
				return err
			}
			var opts []matrix.Option
			if cfg.trace {
				opts = append(opts, matrix.WithPivotHook(tracer(cmd.ErrOrStderr())))
			}
			var res *matrixResult
			if cfg.single {
				res, err = inverse[float32](doc, opts)
			} else {
				res, err = inverse[float64](doc, opts)
			}
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), res)
		},
	}
}

func inverse[E scalar.Float](doc *document, opts []matrix.Option) (*matrixResult, error) {
	m, err := build[E](doc)
	if err != nil {
		return nil, err
	}
	if err = m.Inverse(opts...); err != nil {
		return nil, err
	}

	return &matrixResult{Rows: rowsOf[E](m), Layout: m.Layout().String()}, nil
}

// tracer returns a pivot hook that writes one line per pivot to w.
func tracer(w io.Writer) matrix.PivotHook {
	return func(step, row, col int) {
		fmt.Fprintf(w, "pivot step=%d row=%d col=%d\n", step, row, col)
	}
}

// newDetCmd prints the determinant of a square matrix.
func newDetCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Compute the determinant of a square matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := cfg.input(cmd)
			if err != nil {
				return err
			}
			var d float64
			if cfg.single {
				d, err = determinant[float32](doc)
			} else {
				d, err = determinant[float64](doc)
			}
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), determinantResult{Determinant: d})
		},
	}
}

func determinant[E scalar.Float](doc *document) (float64, error) {
	m, err := build[E](doc)
	if err != nil {
		return 0, err
	}
	d, err := matrix.Determinant[E](m)

	return float64(d), err
}

// newTransposeCmd prints the transpose of any matrix.
func newTransposeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose",
		Short: "Transpose a matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := cfg.input(cmd)
			if err != nil {
				return err
			}
			m, err := build[float64](doc)
			if err != nil {
				return err
			}
			if err = m.Transpose(); err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), matrixResult{Rows: rowsOf[float64](m), Layout: m.Layout().String()})
		},
	}
}

// newLUCmd prints the packed LU decomposition.
func newLUCmd(cfg *config) *cobra.Command {
	var pivot bool
	cmd := &cobra.Command{
		Use:   "lu",
		Short: "Decompose a square matrix into packed L and U factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := cfg.input(cmd)
			if err != nil {
				return err
			}
			m, err := build[float64](doc)
			if err != nil {
				return err
			}
			if !pivot {
				lu, err := matrix.LU[float64](m)
				if err != nil {
					return err
				}

				return writeYAML(cmd.OutOrStdout(), luResult{LU: rowsOf[float64](lu)})
			}
			p, err := matrix.LUPivot[float64](m)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), luResult{LU: rowsOf[float64](p.LU), Order: p.Order, Sign: &p.Sign})
		},
	}
	cmd.Flags().BoolVar(&pivot, "pivot", false, "use partial pivoting and report the row order and sign")

	return cmd
}
