// Package wordladder finds word ladders: chains of same-length words where
// each step changes exactly one letter, such as COLD → CORD → CARD → WARD → WARM.
//
// What is in the box?
//
//	• A bidirectional BFS solver that returns a shortest ladder
//	• An exception set to route around words you do not want
//	• A double-sweep search for the longest shortest ladder of a length
//	• Connected-component statistics per word length
//	• An HTTP API with interactive sessions, Prometheus metrics and an MCP tool server
//
// Layout:
//
//	ladder/     Dictionary, Solver, Path, ExceptionSet; the search itself
//	dictionary/ word-list loading and normalization (afero-backed)
//	config/     YAML configuration
//	logging/    logrus setup shared by the binaries
//	session/    per-user origin/target pairs with their own exceptions
//	server/     chi HTTP API and metrics
//	mcptools/   Model Context Protocol tools over the solver
//	cmd/wordladder command-line entry point
//
// Quick example:
//
//	dict := ladder.NewDictionary([]string{"COLD", "CORD", "CARD", "WARD", "WARM"})
//	s, _ := ladder.NewSolver(dict)
//	path, _ := s.Solve("COLD", "WARM")
//	fmt.Println(path) // COLD → CORD → CARD → WARD → WARM
//
//	go get github.com/katalvlaran/wordladder/ladder
package wordladder
