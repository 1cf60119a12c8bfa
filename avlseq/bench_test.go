package avlseq_test

import (
	"testing"

	"github.com/katalvlaran/eulerforest/avlseq"
)

// BenchmarkAppend10000 measures building a 10,000 element sequence by
// repeated InsertAfter at the tail.
func BenchmarkAppend10000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := avlseq.New(avlseq.WithCapacity(10000))
		root := s.NewOccurrence(0)
		for j := 1; j < 10000; j++ {
			root = s.InsertAfter(s.Max(root), s.NewOccurrence(j))
		}
	}
}

// BenchmarkSplitConcatenate measures one split plus one concatenate on a
// 100,000 element sequence, moving the pivot around between iterations.
func BenchmarkSplitConcatenate(b *testing.B) {
	const n = 100000
	s := avlseq.New(avlseq.WithCapacity(n))
	hs := make([]avlseq.Handle, n)
	root := s.NewOccurrence(0)
	hs[0] = root
	for j := 1; j < n; j++ {
		hs[j] = s.NewOccurrence(j)
		root = s.InsertAfter(s.Max(root), hs[j])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		left, right := s.Split(hs[(i*7919)%n], i%2 == 0)
		s.Concatenate(left, right)
	}
}
