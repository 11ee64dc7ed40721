// Command wordladder finds shortest word ladders from a dictionary file.
//
// Usage:
//
//	wordladder -dict words.txt COLD WARM          # solve and exit
//	wordladder -dict words.txt                    # prompt for the two words
//	wordladder -dict words.txt -exclude CARD COLD WARM
//	wordladder -dict words.txt -largest 5         # longest ladder among 5-letter words
//	wordladder -dict words.txt -stats 4           # connected components of 4-letter words
//	wordladder -config wordladder.yaml -serve     # HTTP API
//	wordladder -dict words.txt -mcp               # MCP server on stdio
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/logging"
	"github.com/katalvlaran/wordladder/mcptools"
	"github.com/katalvlaran/wordladder/server"
	"github.com/katalvlaran/wordladder/session"
)

// cliArgs holds parsed command-line flags. Zero values leave the config untouched.
type cliArgs struct {
	configPath string
	dictPath   string
	random     bool
	seed       int64
	largest    int
	stats      int
	serve      bool
	listen     string
	mcp        bool
	exclude    string
	logLevel   string
	words      []string
}

func parseArgs(argv []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("wordladder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&a.configPath, "config", "", "path to wordladder.yaml config file")
	fs.StringVar(&a.dictPath, "dict", "", "path to the dictionary, one word per line")
	fs.BoolVar(&a.random, "random", false, "shuffle candidate order so equal-length ladders vary")
	fs.Int64Var(&a.seed, "seed", 0, "seed for -random (implies -random)")
	fs.IntVar(&a.largest, "largest", 0, "find the longest ladder among words of this length")
	fs.IntVar(&a.stats, "stats", 0, "report connected components among words of this length")
	fs.BoolVar(&a.serve, "serve", false, "run the HTTP API")
	fs.StringVar(&a.listen, "listen", "", "HTTP listen address (overrides config)")
	fs.BoolVar(&a.mcp, "mcp", false, "run as an MCP server on stdio")
	fs.StringVar(&a.exclude, "exclude", "", "comma-separated words the ladder must avoid")
	fs.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(argv); err != nil {
		return a, err
	}
	a.words = fs.Args()
	if len(a.words) != 0 && len(a.words) != 2 {
		return a, fmt.Errorf("expected 0 or 2 words, got %d", len(a.words))
	}
	if a.seed < 0 {
		return a, errors.New("-seed must be >= 0")
	}
	if a.exclude != "" && (a.largest > 0 || a.stats > 0 || a.serve || a.mcp) {
		return a, errors.New("-exclude cannot be combined with -largest, -stats, -serve or -mcp")
	}
	return a, nil
}

func main() {
	args, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "wordladder:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, afero.NewOsFs(), args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "wordladder:", err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file if given and applies flag overrides.
func resolveConfig(fs afero.Fs, a cliArgs) (*config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(fs, a.configPath); err != nil {
			return nil, err
		}
	}
	if a.dictPath != "" {
		cfg.Dictionary.Path = a.dictPath
	}
	if a.random {
		cfg.Search.Randomize = true
	}
	if a.seed > 0 {
		cfg.Search.Seed = a.seed
	}
	if a.listen != "" {
		cfg.Server.Listen = a.listen
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, fs afero.Fs, a cliArgs, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(fs, a)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, cfg.LogLevel)

	start := time.Now()
	dict, err := dictionary.Load(fs, cfg.Dictionary.Path,
		dictionary.WithLengthRange(cfg.Dictionary.MinLength, cfg.Dictionary.MaxLength),
		dictionary.WithDedupe(cfg.Dictionary.Dedupe),
	)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"path":    cfg.Dictionary.Path,
		"words":   dict.Len(),
		"elapsed": time.Since(start).String(),
	}).Debug("dictionary loaded")

	opts := []ladder.Option{
		ladder.WithContext(ctx),
		ladder.WithRandomize(cfg.Search.Randomize),
		ladder.WithOnLayer(func(side ladder.Side, depth, frontier, seen int) {
			logger.WithFields(log.Fields{
				"side":     side,
				"depth":    depth,
				"frontier": frontier,
				"seen":     seen,
			}).Debug("layer")
		}),
	}
	if cfg.Search.Seed > 0 {
		opts = append(opts, ladder.WithSeed(cfg.Search.Seed))
	}
	solver, err := ladder.NewSolver(dict, opts...)
	if err != nil {
		return err
	}

	switch {
	case a.mcp:
		logger.Info("wordladder: serving MCP on stdio")
		return mcptools.NewServer(solver).Run(ctx, &mcp.StdioTransport{})
	case a.serve:
		store := session.NewStore(solver, cfg.Server.MaxSessions)
		return server.New(solver, store, logger).Run(ctx, cfg.Server.Listen)
	case a.largest > 0:
		t0 := time.Now()
		path, err := solver.FindLargestLadder(a.largest)
		if err != nil {
			return err
		}
		printLadder(stdout, path, time.Since(t0))
		return nil
	case a.stats > 0:
		return printStats(stdout, solver, a.stats)
	}

	origin, target, err := endpoints(a.words, stdin, stdout)
	if err != nil {
		return err
	}
	for _, w := range []string{origin, target} {
		if !solver.WordExists(w) {
			logger.WithField("word", w).Warn("word is not in the dictionary")
		}
	}

	exclude := ladder.NewExceptionSet()
	for _, w := range strings.Split(a.exclude, ",") {
		if w = dictionary.Normalize(w); w != "" {
			exclude.Add(w)
		}
	}
	for _, w := range []string{origin, target} {
		if exclude.Has(w) {
			return fmt.Errorf("-exclude: %w: %s", session.ErrProtectedWord, w)
		}
	}

	t0 := time.Now()
	path, err := solver.SolveExcluding(origin, target, exclude)
	if err != nil {
		return err
	}
	printLadder(stdout, path, time.Since(t0))
	return nil
}

// endpoints returns the two words from args, or prompts for them on stdin.
func endpoints(words []string, stdin io.Reader, stdout io.Writer) (string, string, error) {
	if len(words) == 2 {
		return dictionary.Normalize(words[0]), dictionary.Normalize(words[1]), nil
	}

	sc := bufio.NewScanner(stdin)
	read := func(prompt string) (string, error) {
		fmt.Fprintln(stdout, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return dictionary.Normalize(sc.Text()), nil
	}

	origin, err := read("Write the origin word: ")
	if err != nil {
		return "", "", fmt.Errorf("read origin: %w", err)
	}
	target, err := read("Write the target word: ")
	if err != nil {
		return "", "", fmt.Errorf("read target: %w", err)
	}
	return origin, target, nil
}

func printLadder(w io.Writer, path ladder.Path, elapsed time.Duration) {
	fmt.Fprintf(w, "%d-step solution found\n\n", path.Steps())
	for _, word := range path {
		fmt.Fprintln(w, word)
	}
	fmt.Fprintf(w, "\nElapsed %s\n", elapsed)
}

func printStats(w io.Writer, solver *ladder.Solver, length int) error {
	comps, err := solver.Components(length)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d words of length %d in %d components\n",
		solver.Dictionary().CountOfLength(length), length, len(comps))
	for i, c := range comps {
		if i == 10 {
			fmt.Fprintf(w, "... %d more\n", len(comps)-i)
			break
		}
		fmt.Fprintf(w, "%6d  %s\n", len(c), c[0])
	}
	return nil
}
