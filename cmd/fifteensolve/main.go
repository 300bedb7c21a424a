// Command fifteensolve reads lines of 16 whitespace-separated tile
// numbers from stdin, one puzzle per line, and prints an optimal move
// sequence for each solvable one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tilepuzzle/fifteen/heuristic"
	"github.com/tilepuzzle/fifteen/pdb"
	"github.com/tilepuzzle/fifteen/puzzle"
)

func main() {
	pdbPath := flag.String("pdb", "", "path to the pattern database (defaults to the package default file name)")
	flag.Parse()

	path := *pdbPath
	if path == "" {
		path = pdb.DefaultFileName
	}

	oracle, err := heuristic.LoadOracle(path)
	if err != nil {
		log.Fatalf("load pattern database from %s: %v", path, err)
	}

	if err := run(os.Stdin, os.Stdout, oracle); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer, oracle *heuristic.Oracle) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		b, err := puzzle.ParseLine(line)
		if err != nil {
			continue
		}
		if !puzzle.Solvable(b) {
			continue
		}

		moves, err := puzzle.Solve(b, oracle)
		if err != nil {
			fmt.Fprintln(out, "Error!")
			return err
		}

		tiles := make([]string, len(moves))
		for i, t := range moves {
			tiles[i] = fmt.Sprintf("%d", t)
		}
		fmt.Fprintf(out, "%d moves: %s \n", len(moves), strings.Join(tiles, " "))
	}
	return scanner.Err()
}
