// Package ladder solves word ladders: given two words of equal length, find a
// shortest chain of dictionary words in which each consecutive pair differs in
// exactly one position.
//
// What
//
//   - Dictionary: an ordered, read-only word list grouped by length.
//   - Distance / Adjacent: the early-exit "differs in one position" oracle.
//   - Solver.Solve: bidirectional BFS between origin and target that honours
//     a caller-controlled exception set.
//   - Solver.FindLargestLadder: double-sweep approximation of the longest
//     shortest ladder for a word length.
//   - Solver.Components / Solver.Connected: component analysis of the
//     same-length graph.
//
// Why
//
//	The word graph is implicit: edges are never materialized, they are
//	rediscovered by comparing a frontier word against every same-length word.
//	Growing one wave from each end and alternating full layers keeps both
//	waves at about half the ladder's length, so the work is roughly the
//	branching factor to the power of half the distance instead of the whole.
//
// Exceptions
//
//	The exception set is a live filter consulted while expanding: an excluded
//	word is simply never discovered. Replacing the set with SetExceptions and
//	calling Solve again routes around words the caller does not want. If the
//	origin or the target itself is excluded, Solve reports ErrNoSolution.
//
// Determinism
//
//	Without WithRandomize/WithSeed the dictionary order decides which of
//	several equally short ladders is returned, so results are reproducible.
//	Randomizing changes which ladder is found, never whether one exists or
//	its length.
//
// Complexity (W = words of the query length, n = word length)
//
//   - Solve:             O(L·W·n) time worst case for L expanded layers, O(W) memory.
//   - FindLargestLadder: two full sweeps, O(W²·n) time, O(W) memory.
//
// Usage
//
//	dict := ladder.NewDictionary([]string{"COLD", "CORD", "CARD", "WARD", "WARM"})
//	s, err := ladder.NewSolver(dict)
//	if err != nil {
//	    // ErrDictionaryNil or ErrOptionViolation
//	}
//	path, err := s.Solve("COLD", "WARM")
//	// path == [COLD CORD CARD WARD WARM]
//
//	s.SetExceptions("CARD")
//	_, err = s.Solve("COLD", "WARM")
//	// errors.Is(err, ladder.ErrNoSolution)
//
//	// Options may also be passed per call; they override the Solver's own
//	// for that call only.
//	path, err = s.Solve("COLD", "WARM", ladder.WithContext(r.Context()))
//
// Errors
//
//   - ErrLengthMismatch   origin and target lengths differ.
//   - ErrNoSolution       the waves were exhausted without meeting.
//   - ErrNoWordsOfLength  no dictionary word has the requested length.
//   - ErrDictionaryNil    NewSolver received a nil dictionary.
//   - ErrOptionViolation  an Option was invalid (e.g. negative seed).
package ladder
