package ladder_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/ladder"
)

// BenchmarkDistance measures the oracle on an early and a late second mismatch.
func BenchmarkDistance(b *testing.B) {
	b.Run("EarlyExit", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ladder.Distance("ABCDEFGHIJ", "XYCDEFGHIJ")
		}
	})
	b.Run("FullScan", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ladder.Distance("ABCDEFGHIJ", "ABCDEFGHIX")
		}
	})
}

// BenchmarkSolve runs Solve on a dense random 5-letter dictionary.
func BenchmarkSolve(b *testing.B) {
	words := randomWords(42, "ABCDE", 5, 2000)
	s, err := ladder.NewSolver(ladder.NewDictionary(words))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(words)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(words[0], words[len(words)-1])
	}
}

// BenchmarkFindLargestLadder runs the double sweep on the same dictionary.
func BenchmarkFindLargestLadder(b *testing.B) {
	words := randomWords(42, "ABCDE", 5, 2000)
	s, err := ladder.NewSolver(ladder.NewDictionary(words))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(words)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.FindLargestLadder(5)
	}
}
