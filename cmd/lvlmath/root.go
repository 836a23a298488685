// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// config holds the persistent flags shared by every subcommand.
type config struct {
	file   string
	trace  bool
	single bool
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "lvlmath",
		Short:         "Run lvlmath matrix algorithms on YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&cfg.file, "file", "f", "", "read the matrix document from `path` instead of stdin")
	flags.BoolVar(&cfg.trace, "trace", false, "print Gauss–Jordan pivots on stderr")
	flags.BoolVar(&cfg.single, "single", false, "compute in float32")

	root.AddCommand(
		newInverseCmd(cfg),
		newDetCmd(cfg),
		newTransposeCmd(cfg),
		newLUCmd(cfg),
	)

	return root
}

// input opens the document source selected by --file.
func (c *config) input(cmd *cobra.Command) (*document, error) {
	var r io.Reader = cmd.InOrStdin()
	if c.file != "" {
		f, err := os.Open(c.file)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	return readDocument(r)
}
