// Command splitmerge reads two partitions of a line from standard input
// and prints the minimum number of merge/split operations between them
// followed by the number of orderings achieving it.
//
// Usage:
//
//	splitmerge [-v] < input
//
// The input is "L n a_1 ... a_n m b_1 ... b_m".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/glaslos/splitmerge"
)

func main() {
	verbose := flag.Bool("v", false, "log every segment's contribution to stderr")
	flag.Parse()

	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stderr)

	if err := run(os.Stdin, os.Stdout, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(r io.Reader, w io.Writer, verbose bool) error {
	p, err := splitmerge.Parse(bufio.NewReader(r))
	if err != nil {
		return err
	}
	res, err := splitmerge.Solve(p)
	if err != nil {
		return err
	}
	if verbose {
		for _, c := range res.Contributions {
			if c.Trap {
				log.Printf("segment [%d, %d): trap, skipped", c.Start, c.Start+c.Len)
				continue
			}
			log.Printf("segment [%d, %d): %d operations, %d orderings", c.Start, c.Start+c.Len, c.Operations, c.Orderings)
		}
	}
	_, err = fmt.Fprintln(w, res)
	return err
}
