// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package iterate_test

import (
	"fmt"

	"github.com/born-ml/matkit/iterate"
	"github.com/born-ml/matkit/mat"
)

func ExampleEnumerate() {
	m, _ := mat.FromSlice(2, 2, []uint8{10, 20, 30, 40})
	for e := range iterate.Enumerate[uint8](m).All() {
		fmt.Println(e.X, e.Y, *e.Val)
	}
	// Output:
	// 0 0 10
	// 1 0 20
	// 0 1 30
	// 1 1 40
}

func ExampleIterate() {
	m, _ := mat.FromSlice(1, 3, []float32{1, 2, 3})
	for p := range iterate.Iterate[float32](m).All() {
		*p *= 2
	}
	fmt.Println(mat.Data[float32](m))
	// Output: [2 4 6]
}

func ExampleIterable_Begin() {
	m, _ := mat.FromSlice(1, 3, []int32{7, 8, 9})
	it := iterate.Iterate[int32](m)
	for p, end := it.Begin(), it.End(); !p.Equal(end); p.Next() {
		fmt.Print(*p.Get(), " ")
	}
	fmt.Println()
	// Output: 7 8 9
}
