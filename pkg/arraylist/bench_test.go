package arraylist_test

import (
	"testing"

	"go.llib.dev/arraylist/pkg/arraylist"
)

func BenchmarkArrayList_Append(b *testing.B) {
	const n = 10_000
	hs := make([]*Handle, n)
	for i := range hs {
		hs[i] = &Handle{ID: i}
	}

	b.Run("additive growth", func(b *testing.B) {
		for b.Loop() {
			l := arraylist.New[*Handle]()
			for _, h := range hs {
				l.Append(h)
			}
		}
	})

	b.Run("multiplicative growth", func(b *testing.B) {
		for b.Loop() {
			l := arraylist.New[*Handle](arraylist.WithGrowthFactor(2))
			for _, h := range hs {
				l.Append(h)
			}
		}
	})

	b.Run("batch", func(b *testing.B) {
		for b.Loop() {
			l := arraylist.New[*Handle]()
			l.Append(hs...)
		}
	})
}

func BenchmarkArrayList_RemoveAll(b *testing.B) {
	const n = 10_000
	a, c := &Handle{ID: 1}, &Handle{ID: 2}
	hs := make([]*Handle, n)
	for i := range hs {
		if i%2 == 0 {
			hs[i] = a
		} else {
			hs[i] = c
		}
	}

	for b.Loop() {
		l := arraylist.Of(hs...)
		l.RemoveAll(a)
	}
}
