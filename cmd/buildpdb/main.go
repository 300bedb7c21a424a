// Command buildpdb runs the offline pattern-database build and writes
// the result to disk. It has no reason to run more than once per
// machine: the resulting file is reused by cmd/fifteensolve and by
// anything else that loads heuristic.LoadOracle.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/tilepuzzle/fifteen/pdb"
)

func main() {
	out := flag.String("out", pdb.DefaultFileName, "path to write the pattern database to")
	flag.Parse()

	log.Printf("building pattern database...")
	start := time.Now()

	table, err := pdb.Build()
	if err != nil {
		log.Fatalf("build pattern database: %v", err)
	}
	log.Printf("built %d bytes in %s", len(table), time.Since(start))

	if err := pdb.Save(*out, table); err != nil {
		log.Fatalf("save pattern database to %s: %v", *out, err)
	}
	log.Printf("saved pattern database to %s", *out)
}
