package iterate

import (
	"fmt"
	"testing"

	"github.com/born-ml/matkit/internal/mat"
)

func BenchmarkIteration(b *testing.B) {
	sizes := []int{64, 512}

	for _, size := range sizes {
		m := mat.Zeros[uint8](size, size)

		b.Run(fmt.Sprintf("All-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sum int
				for p := range Iterate[uint8](m).All() {
					sum += int(*p)
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("BeginEnd-%d", size), func(b *testing.B) {
			it := Iterate[uint8](m)
			for i := 0; i < b.N; i++ {
				var sum int
				for p, end := it.Begin(), it.End(); !p.Equal(end); p.Next() {
					sum += int(*p.Get())
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("Enumerate-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sum int
				for e := range Enumerate[uint8](m).All() {
					sum += e.X + e.Y
				}
				_ = sum
			}
		})
	}
}
