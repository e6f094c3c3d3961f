// Package postgis turns bounding boxes into parameterised SQL predicates
// for pre-filtering rows before an exact distance check.
//
// Nothing here talks to a database. The predicates use PostgreSQL
// positional parameters ($1, $2, ...) and can be passed to database/sql,
// lib/pq or pgx as is.
package postgis

import (
	"fmt"
	"strings"

	"github.com/1F47E/geo-bounds/pkg/models"
	"github.com/lib/pq"
)

// SRID of WGS 84 longitude/latitude geometries.
const SRID = 4326

// Predicate is an SQL boolean expression together with its arguments.
type Predicate struct {
	SQL  string
	Args []any
}

// Envelope returns a predicate matching geometries in column whose
// bounding box intersects the box, using the GiST-indexable && operator.
// Placeholders are numbered starting at firstParam.
//
// A box crossing the antimeridian becomes two envelopes joined by OR.
func Envelope(column string, box models.BoundingBox, firstParam int) Predicate {
	col := quote(column)
	n := firstParam
	if n < 1 {
		n = 1
	}

	var clauses []string
	var args []any
	for _, part := range box.Split() {
		clauses = append(clauses, fmt.Sprintf("%s && ST_MakeEnvelope($%d, $%d, $%d, $%d, %d)",
			col, n, n+1, n+2, n+3, SRID))
		args = append(args, part.West, part.South, part.East, part.North)
		n += 4
	}
	return Predicate{SQL: join(clauses), Args: args}
}

// Columns returns a predicate over plain latitude and longitude columns.
// Placeholders are numbered starting at firstParam.
//
// A box crossing the antimeridian matches longitudes east of West or west
// of East.
func Columns(latColumn, lonColumn string, box models.BoundingBox, firstParam int) Predicate {
	lat, lon := quote(latColumn), quote(lonColumn)
	n := firstParam
	if n < 1 {
		n = 1
	}

	latClause := fmt.Sprintf("%s BETWEEN $%d AND $%d", lat, n, n+1)
	var lonClause string
	if box.CrossesAntimeridian() {
		lonClause = fmt.Sprintf("(%s >= $%d OR %s <= $%d)", lon, n+2, lon, n+3)
	} else {
		lonClause = fmt.Sprintf("%s BETWEEN $%d AND $%d", lon, n+2, n+3)
	}

	return Predicate{
		SQL:  latClause + " AND " + lonClause,
		Args: []any{box.South, box.North, box.West, box.East},
	}
}

// quote quotes each dot separated part of a possibly qualified identifier.
func quote(ident string) string {
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

func join(clauses []string) string {
	if len(clauses) == 1 {
		return clauses[0]
	}
	return "(" + strings.Join(clauses, " OR ") + ")"
}
