// Command seed converts a JSON or XLSX snapshot into the SQLite snapshot
// tables, so the server can run with SNAPSHOT_FORMAT=sqlite.
package main

import (
	"flag"
	"log"

	"github.com/BorromeoLara/INVE/database"
	"github.com/BorromeoLara/INVE/pkg/snapshot"
)

func main() {
	in := flag.String("in", "data/sites.json", "snapshot to import")
	format := flag.String("format", snapshot.FormatJSON, "input format: json or xlsx")
	out := flag.String("db", "inve.db", "sqlite file to write")
	flag.Parse()

	if *format == snapshot.FormatSQLite {
		log.Fatalf("seed: input is already sqlite")
	}
	src, err := snapshot.Read(*format, *in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}

	db, err := database.OpenSQLite(*out)
	if err != nil {
		log.Fatal(err)
	}
	rep, err := snapshot.SeedSQLite(db, src.Sites)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	for _, r := range rep.Rejected {
		log.Printf("[seed] left out site #%d %q: %s", r.Index, r.SiteID, r.Reason)
	}
	log.Printf("[seed] wrote %d site(s) to %s", rep.Loaded, *out)
}
