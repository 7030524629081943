// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the dense 2D matrix type used by matkit.
//
// # Overview
//
// A Matrix holds rows × cols elements of one runtime DataType in a
// reference-counted buffer:
//   - Single-channel types: float32, float64, int8, int16, int32, int64,
//     uint8, uint16, bool
//   - Pixel types: Vec3b (RGB), Vec4b (RGBA), Vec3f
//
// # Basic Usage
//
//	m, err := mat.FromSlice(2, 3, []uint8{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := mat.At[uint8](m, 1, 2) // 6
//
// # Views
//
// ROI returns a view that shares storage with its parent. Views are usually
// not continuous: consecutive rows are Step() bytes apart with a gap between
// them. Row and Span give zero-copy access in either case.
//
// # Typed Access
//
// At, Set and Data panic if the requested Go type is not the matrix's
// DataType. Row and Span do not check, and reinterpret memory instead.
package mat
