// Package logging configures logrus for the wordladder binaries.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Formatter renders one entry per line: level, timestamp, padded message,
// then the fields in key order.
type Formatter struct{}

// Format converts a logrus entry into a line of text.
func (f Formatter) Format(entry *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	level := strings.ToUpper(entry.Level.String())
	fmt.Fprintf(b, "%-5s [%s] %-40s", level, entry.Time.Format(time.StampMilli), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%+v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New returns a logger writing to w at the named level
// (debug, info, warn or error; anything else means info).
func New(w io.Writer, level string) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(Formatter{})
	l.SetLevel(ParseLevel(level))
	return l
}

// ParseLevel maps a config level name to a logrus level, defaulting to info.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
