package ladder_test

import (
	"math/rand"

	"github.com/katalvlaran/wordladder/ladder"
)

// toyWords is the five-word chain COLD–CORD–CARD–WARD–WARM.
var toyWords = []string{"COLD", "CORD", "CARD", "WARD", "WARM"}

// randomWords draws count distinct words of the given length over alphabet
// from a fixed-seed stream, so every run sees the same dictionary.
func randomWords(seed int64, alphabet string, length, count int) []string {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[string]bool, count)
	out := make([]string, 0, count)
	for len(out) < count {
		b := make([]byte, length)
		for i := range b {
			b[i] = alphabet[r.Intn(len(alphabet))]
		}
		w := string(b)
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// bfsDistances is a plain one-directional BFS reference over words,
// returning the step count from src to every reachable word.
func bfsDistances(words []string, src string, skip ladder.ExceptionSet) map[string]int {
	dist := map[string]int{src: 0}
	queue := []string{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range words {
			if _, ok := dist[v]; ok || skip.Has(v) {
				continue
			}
			if ladder.Distance(u, v) == 1 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}
