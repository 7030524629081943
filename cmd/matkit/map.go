package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/born-ml/matkit/internal/dense"
	"github.com/born-ml/matkit/internal/imageio"
	"github.com/born-ml/matkit/internal/mat"
	"github.com/born-ml/matkit/internal/parallel"
	"github.com/born-ml/matkit/internal/transform"
)

type mapOptions struct {
	in        string
	out       string
	ops       []string
	transpose bool
	strict    bool
	parallel  bool
	workers   int
}

func newMapCmd() *cobra.Command {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Apply per-pixel ops to an image",
		Example: `  matkit map --in photo.jpg --out red.png --op red --op threshold=96
  matkit map --in scan.tiff --out t.png --op gray --transpose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMap(opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.in, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	f.StringVar(&opts.out, "out", "", "output image; format from extension (png, jpeg, gif, bmp, tiff)")
	f.StringArrayVar(&opts.ops, "op", nil, "per-pixel op, repeatable: "+fmt.Sprint(opNames())+" or threshold=N")
	f.BoolVar(&opts.transpose, "transpose", false, "transpose the result (single-channel only)")
	f.BoolVar(&opts.strict, "strict", false, "fail on element type mismatches instead of warning")
	f.BoolVar(&opts.parallel, "parallel", false, "split the per-pixel loop across goroutines")
	f.IntVar(&opts.workers, "workers", runtime.NumCPU(), "goroutines used with --parallel")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runMap(opts *mapOptions) error {
	fns := make([]any, 0, len(opts.ops))
	for _, expr := range opts.ops {
		fn, err := parseOp(expr)
		if err != nil {
			return err
		}
		fns = append(fns, fn)
	}

	m, err := readImage(opts.in)
	if err != nil {
		return err
	}

	pcfg := parallel.Sequential()
	if opts.parallel {
		pcfg = parallel.DefaultConfig()
		pcfg.Enabled = true
		pcfg.NumWorkers = opts.workers
	}

	v := transform.New(m, transform.WithStrict(opts.strict), transform.WithParallel(pcfg))
	for i, fn := range fns {
		v = v.PPTransform(fn)
		if err := v.Err(); err != nil {
			return fmt.Errorf("op %q: %w", opts.ops[i], err)
		}
	}

	if opts.transpose {
		if ch := v.Mat().Type().Channels(); ch != 1 {
			return fmt.Errorf("transpose: %s has %d channels, want 1", v.Mat(), ch)
		}
		v = v.TotalTransform(dense.Whole(dense.Transpose))
	}

	return writeImage(opts.out, v.Mat())
}

func readImage(path string) (*mat.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := imageio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func writeImage(path string, m *mat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imageio.Encode(f, m, imageio.FormatFromPath(path)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
