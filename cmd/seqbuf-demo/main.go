// Command seqbuf-demo exercises sequence buffers with integers and floating-point values.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
)

var formats = []string{"text", "json", "gob", "msgp", "raw"}

var (
	flagFormat string
	flagMax    int
)

func init() {
	flag.StringVar(&flagFormat, "format", "text", "dump format: text, json, gob, msgp or raw")
	flag.IntVar(&flagMax, "max", 0, "max capacity of every buffer (0 means unbounded)")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("seqbuf-demo: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nSeqbuf-demo runs the integer and float scenarios and prints the buffers.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if !slices.Contains(formats, flagFormat) {
		log.Fatalf("unknown format %q", flagFormat)
	}
	if flagMax < 0 {
		log.Fatalf("max can't be < 0")
	}

	if err := run(os.Stdout, flagFormat, flagMax); err != nil {
		log.Fatal(err)
	}
}

// run executes every scenario on its own goroutine with its own buffers and writes their
// reports to w in order.
func run(w io.Writer, format string, maxCapacity int) error {
	scenarios := []struct {
		name string
		fn   func(r *report) error
	}{
		{name: "int", fn: intScenario},
		{name: "float", fn: floatScenario},
	}

	outputs := make([]bytes.Buffer, len(scenarios))

	var g errgroup.Group
	for i, s := range scenarios {
		g.Go(func() error {
			r := &report{w: &outputs[i], format: format, maxCapacity: maxCapacity}
			r.header(s.name)
			if err := s.fn(r); err != nil {
				return fmt.Errorf("%s scenario: %w", s.name, err)
			}
			return nil
		})
	}
	err := g.Wait()

	errs := []error{err}
	for i := range outputs {
		if _, werr := w.Write(outputs[i].Bytes()); werr != nil {
			errs = append(errs, fmt.Errorf("write report: %w", werr))
		}
	}

	return errors.Join(errs...)
}
