/*
Package qrank holds an in-memory copy of the QRank popularity dataset,
mapping Wikidata entity ids to rank scores. Layer processors use the rank
to pick a minimum zoom for labels.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package qrank

import (
	"bufio"
	"compress/gzip"
	"os"
	"strconv"
	"strings"

	"github.com/ajacombs/maplabel/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'maplabel.qrank'.
func tracer() tracing.Trace {
	return tracing.Select("maplabel.qrank")
}

// DB is the entire rank dataset, resident in memory. It is immutable after
// FromCSV and safe for concurrent reads.
type DB struct {
	ranks map[int64]int64
}

// Empty returns a dataset without entries; every lookup yields rank 0.
func Empty() *DB {
	return &DB{ranks: make(map[int64]int64)}
}

// Get returns the rank for a Wikidata entity id, 0 if unknown.
func (db *DB) Get(id int64) int64 {
	return db.ranks[id]
}

// ParseEntity extracts the numeric id from an OSM wikidata tag value such
// as "Q42". Multi-value tags ("Q42;Q43") resolve to their first entry.
// Malformed values yield ok=false; callers treat that as rank 0 rather
// than an error, since tag values are user-contributed.
func ParseEntity(osmValue string) (id int64, ok bool) {
	if i := strings.IndexByte(osmValue, ';'); i >= 0 {
		osmValue = osmValue[:i]
	}
	if len(osmValue) < 2 || osmValue[0] != 'Q' {
		return 0, false
	}
	id, err := strconv.ParseInt(osmValue[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Rank resolves an OSM wikidata tag value to a rank score. Unknown and
// malformed values score 0.
func (db *DB) Rank(osmValue string) int64 {
	id, ok := ParseEntity(osmValue)
	if !ok {
		tracer().Debugf("malformed wikidata value %q scores 0", osmValue)
		return 0
	}
	return db.Get(id)
}

// FromCSV parses a gzipped copy of the QRank dataset ("Entity,QRank" rows).
// Malformed rows fail the load: a truncated dataset would silently skew
// label zoom levels across the whole build.
func FromCSV(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "qrank dataset not readable: %s", path)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "qrank dataset is not gzip: %s", path)
	}
	defer gz.Close()
	db := Empty()
	scanner := bufio.NewScanner(gz)
	if !scanner.Scan() || scanner.Text() != "Entity,QRank" {
		return nil, core.Error(core.EINVALID, "qrank dataset has no Entity,QRank header")
	}
	lineno := 1
	for scanner.Scan() {
		lineno++
		entity, rank, found := strings.Cut(scanner.Text(), ",")
		if !found {
			return nil, core.Error(core.EINVALID, "qrank row without rank (line %d)", lineno)
		}
		id, ok := ParseEntity(entity)
		if !ok {
			return nil, core.Error(core.EINVALID, "qrank row with malformed entity %q (line %d)", entity, lineno)
		}
		r, err := strconv.ParseInt(rank, 10, 64)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "qrank row with malformed rank (line %d)", lineno)
		}
		db.ranks[id] = r
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "qrank dataset read failed")
	}
	tracer().Infof("qrank dataset loaded, %d entities", len(db.ranks))
	return db, nil
}
