package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/born-ml/matkit/internal/iterate"
	"github.com/born-ml/matkit/internal/mat"
)

type dumpOptions struct {
	in    string
	limit int
}

func newDumpCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print \"x y value\" for each pixel of an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readImage(opts.in)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), m, opts.limit)
		},
	}

	cmd.Flags().StringVar(&opts.in, "in", "", "input image")
	cmd.Flags().IntVar(&opts.limit, "limit", 64, "maximum records to print (0 = all)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func dump(w io.Writer, m *mat.Matrix, limit int) error {
	switch m.Type() {
	case mat.Uint8:
		return dumpAs[uint8](w, m, limit)
	case mat.Uint16:
		return dumpAs[uint16](w, m, limit)
	case mat.Vec3bType:
		return dumpAs[mat.Vec3b](w, m, limit)
	case mat.Vec4bType:
		return dumpAs[mat.Vec4b](w, m, limit)
	default:
		return fmt.Errorf("dump: unsupported element type %s", m.Type())
	}
}

func dumpAs[E mat.Element](w io.Writer, m *mat.Matrix, limit int) error {
	en, err := iterate.EnumerateStrict[E](m)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	n := 0
	for e := range en.All() {
		if limit > 0 && n == limit {
			break
		}
		fmt.Fprintf(bw, "%d %d %v\n", e.X, e.Y, *e.Val)
		n++
	}
	return bw.Flush()
}
