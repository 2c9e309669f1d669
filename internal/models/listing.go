package models

import (
	"fmt"
	"strconv"
	"strings"

	"archive-listing/internal/parser"
	"archive-listing/internal/utils"
)

// Listing is the decoded result of one "l -slt" run.
type Listing struct {
	info    *Info
	entries []*Entry
	byPath  map[string]*Entry
}

// Totals summarises a listing.
type Totals struct {
	Files int
	Dirs  int
	Size  uint64
}

// NewListing decodes every entry of p, up to limit (parser.NoLimit for
// all). The archive info is decoded too when the listing has a header.
func NewListing(p *parser.Parser, limit int) (*Listing, error) {
	l := &Listing{byPath: make(map[string]*Entry)}

	if p.ParseHeader().Len() > 0 {
		info, err := NewInfo(p)
		if err != nil {
			return nil, err
		}
		l.info = info
	}

	for n, rec := range p.ParseEntries(limit) {
		e, err := NewEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n+1, err)
		}
		e.listing = l
		l.entries = append(l.entries, e)

		key := e.UnixPath()
		if _, dup := l.byPath[key]; !dup {
			l.byPath[key] = e
		}
	}
	return l, nil
}

// Info is nil when the listing had no header block.
func (l *Listing) Info() *Info {
	return l.info
}

func (l *Listing) Entries() []*Entry {
	return l.entries
}

// Lookup finds an entry by path. Both sides are compared in unix form so
// "dir\file" and "dir/file" match the same member.
func (l *Listing) Lookup(path string) (*Entry, bool) {
	e, ok := l.byPath[utils.UnixPath(path)]
	return e, ok
}

func (l *Listing) Totals() Totals {
	var t Totals
	for _, e := range l.entries {
		if e.IsDirectory() {
			t.Dirs++
			continue
		}
		t.Files++
		if n, err := strconv.ParseUint(strings.TrimSpace(e.Size()), 10, 64); err == nil {
			t.Size += n
		}
	}
	return t
}
