// Package dictionary reads word lists into a ladder.Dictionary.
//
// The format is one word per line. Lines are trimmed and upper-cased,
// blank lines are skipped and, unless disabled, lines starting with '#'
// are treated as comments. Files are read through an afero.Fs so callers
// and tests can swap the OS filesystem for an in-memory one.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/wordladder/ladder"
)

// Sentinel errors for dictionary loading.
var (
	// ErrEmpty is returned when no word survives parsing and filtering.
	ErrEmpty = errors.New("dictionary: no words loaded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dictionary: invalid option supplied")
)

// AppFs is the filesystem Load reads from when fs is nil.
var AppFs = afero.NewOsFs()

// Option configures parsing.
type Option func(*Options)

// Options controls how lines become words.
type Options struct {
	// MinLength and MaxLength bound accepted word lengths; 0 means unbounded.
	MinLength int
	MaxLength int
	// Comments enables skipping lines that start with '#'.
	Comments bool
	// Dedupe drops repeated words, keeping the first occurrence.
	Dedupe bool

	err error
}

// DefaultOptions returns Options with comments enabled, no length bounds
// and duplicates kept.
func DefaultOptions() Options {
	return Options{Comments: true}
}

// WithLengthRange keeps only words with min ≤ len ≤ max. Zero disables a bound.
func WithLengthRange(min, max int) Option {
	return func(o *Options) {
		if min < 0 || max < 0 || (max > 0 && min > max) {
			o.err = fmt.Errorf("%w: bad length range [%d,%d]", ErrOptionViolation, min, max)
			return
		}
		o.MinLength, o.MaxLength = min, max
	}
}

// WithComments enables or disables '#' comment lines.
func WithComments(on bool) Option {
	return func(o *Options) {
		o.Comments = on
	}
}

// WithDedupe drops repeated words.
func WithDedupe(on bool) Option {
	return func(o *Options) {
		o.Dedupe = on
	}
}

// Load reads the word list at path from fs.
func Load(fs afero.Fs, path string, opts ...Option) (*ladder.Dictionary, error) {
	if fs == nil {
		fs = AppFs
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse reads a word list from r.
func Parse(r io.Reader, opts ...Option) (*ladder.Dictionary, error) {
	words, err := ParseWords(r, opts...)
	if err != nil {
		return nil, err
	}
	return ladder.NewDictionary(words), nil
}

// ParseWords reads a word list from r and returns the normalized words
// in input order.
func ParseWords(r io.Reader, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		words []string
		seen  map[string]bool
	)
	if o.Dedupe {
		seen = make(map[string]bool)
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || (o.Comments && strings.HasPrefix(line, "#")) {
			continue
		}
		w := strings.ToUpper(line)
		if o.MinLength > 0 && len(w) < o.MinLength {
			continue
		}
		if o.MaxLength > 0 && len(w) > o.MaxLength {
			continue
		}
		if seen != nil {
			if seen[w] {
				continue
			}
			seen[w] = true
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Normalize applies the loader's normalization to a single query word,
// so interactive input matches dictionary entries.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}
