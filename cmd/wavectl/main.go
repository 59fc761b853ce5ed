// See doc.go for documentation
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/fooinha/wave/wave"
)

var (
	window   = flag.Int64("window", 60, "Sliding window length N, in seconds")
	epsilon  = flag.Float64("epsilon", 0.05, "Relative error bound E")
	bound    = flag.Int64("bound", -1, "Per-item value bound R; -1 derives it from -window")
	fast     = flag.Bool("fast", false, "Use the O(1) midpoint estimator instead of the refined traversal")
	input    = flag.String("in", "", "Path to a TSV stream of 'ts\\tv' lines; defaults to stdin")
	startTS  = flag.Int64("start", 0, "Construction timestamp; 0 derives it from the first input line")
	verbose  = flag.Bool("verbose", false, "Print a Debug() fingerprint line after every insert")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	r := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("wavectl: %v", err)
		}
		defer f.Close()
		r = f
	}

	w, err := replay(r)
	if err != nil {
		log.Fatalf("wavectl: %v", err)
	}
	defer w.Destroy()
}

// replay feeds every (ts, v) pair in r through a new Wave in order,
// printing Get(ts, fast) after each accepted Set, and returns the
// resulting Wave so the caller can Destroy it.
func replay(r io.Reader) (*wave.Wave, error) {
	scanner := bufio.NewScanner(r)
	var w *wave.Wave
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return w, fmt.Errorf("line %d: expected 'ts\\tv', got %q", line, text)
		}
		ts, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return w, fmt.Errorf("line %d: bad timestamp: %v", line, err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return w, fmt.Errorf("line %d: bad value: %v", line, err)
		}

		if w == nil {
			construct := *startTS
			if construct == 0 {
				construct = ts
			}
			w, err = wave.New(construct,
				wave.OptWindow(*window),
				wave.OptError(*epsilon),
				wave.OptValueBound(*bound),
			)
			if err != nil {
				return nil, err
			}
		}

		if err := w.Set(v, ts); err != nil {
			log.Error.Printf("wavectl: line %d: set(%d,%d): %v", line, v, ts, err)
			continue
		}
		fmt.Printf("%d\t%d\t%d\n", ts, v, w.Get(ts, *fast))
		if *verbose {
			stats := w.Debug()
			log.Printf("wavectl: total=%d z=%d |L|=%d fingerprint=%x", stats.Total, stats.Z, stats.LengthL, stats.Fingerprint)
		}
	}
	if err := scanner.Err(); err != nil {
		return w, err
	}
	if w == nil {
		return nil, fmt.Errorf("empty input: need at least one 'ts\\tv' line")
	}
	return w, nil
}
