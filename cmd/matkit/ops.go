package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/born-ml/matkit/internal/mat"
)

// pixelOps are the per-pixel functions selectable with --op.
// Each value is passed to transform.Value.PPTransform as is.
var pixelOps = map[string]any{
	"gray": func(p mat.Vec3b) uint8 {
		return mat.SaturateCast[uint8](0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2]))
	},
	"red": func(p mat.Vec3b) uint8 {
		sum := float64(p[0]) + float64(p[1]) + float64(p[2])
		if sum == 0 {
			return 0
		}
		return mat.SaturateCast[uint8](float64(p[0]) / sum * 255)
	},
	"opaque": func(p mat.Vec4b) mat.Vec3b {
		return mat.Vec3b{p[0], p[1], p[2]}
	},
	"invert": func(x uint8) uint8 {
		return 255 - x
	},
	"float": func(x uint8) float32 {
		return float32(x) / 255
	},
	"byte": func(x float32) uint8 {
		return mat.SaturateCast[uint8](float64(x) * 255)
	},
}

// parseOp resolves an --op value such as "gray" or "threshold=128".
func parseOp(expr string) (any, error) {
	name, arg, hasArg := strings.Cut(expr, "=")
	if name == "threshold" {
		if !hasArg {
			return nil, fmt.Errorf("op %q: threshold needs a value, e.g. threshold=128", expr)
		}
		level, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("op %q: %w", expr, err)
		}
		t := uint8(level)
		return func(x uint8) uint8 {
			if x > t {
				return 255
			}
			return 0
		}, nil
	}

	fn, ok := pixelOps[name]
	if !ok || hasArg {
		return nil, fmt.Errorf("unknown op %q (known: %s, threshold=N)", expr, strings.Join(opNames(), ", "))
	}
	return fn, nil
}

func opNames() []string {
	names := make([]string, 0, len(pixelOps))
	for name := range pixelOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
