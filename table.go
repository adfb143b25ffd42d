package sq3

import (
	"context"
	"slices"
)

// fullListingFlag makes .list print table definitions and indexes
const fullListingFlag = "-full"

// tableListing is the parsed form of the .list arguments
type tableListing struct {
	// full also prints each table's definition and indexes
	full bool
	// wanted restricts the listing to these tables; empty means all
	wanted []string
}

// newTableListing parses the .list arguments
func newTableListing(args []string) tableListing {
	var l tableListing
	for _, arg := range args {
		if arg == fullListingFlag {
			l.full = true
			continue
		}
		l.wanted = append(l.wanted, arg)
	}
	return l
}

// includes reports whether the table name is part of the listing
func (l tableListing) includes(name string) bool {
	return len(l.wanted) == 0 || slices.Contains(l.wanted, name)
}

// showTables lists the tables of the database in catalog order
func (s *Session) showTables(ctx context.Context, args []string) {
	listing := newTableListing(args)

	tables, err := s.db.Tables(ctx)
	if err != nil {
		s.diag.fail("SQL Error: %v", err)
		return
	}

	for _, t := range tables {
		if !listing.includes(t.Name) {
			continue
		}
		s.diag.plain("Table: %s", t.Name)
		if !listing.full {
			continue
		}

		s.diag.plain("  Def: %s", t.SQL)
		indexes, err := s.db.Indexes(ctx, t.Name)
		if err != nil {
			s.diag.fail("SQL Error: %v", NewErrorContext("list indexes", s.db.Path()).WithTable(t.Name).Error(err))
			return
		}
		for _, name := range indexes {
			s.diag.plain("  Idx: %s", name)
		}
	}
}
