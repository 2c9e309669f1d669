package models

import (
	"strings"

	"archive-listing/internal/parser"
	"archive-listing/internal/utils"
)

// Entry is one archive member as reported by the archiver. Optional fields
// are only present when the archive format prints them: zip has Host OS and
// Characteristics, 7z has Block, directories usually lack CRC and Method.
type Entry struct {
	listing *Listing
	data    []string

	path       string
	size       string
	packedSize string

	modified        *string
	created         *string
	attributes      *string
	crc             *string
	encrypted       *string
	method          *string
	block           *string
	comment         *string
	hostOS          *string
	characteristics *string
	folder          *string
}

// NewEntry decodes one record returned by parser.ParseEntries.
func NewEntry(rec *parser.Record) (*Entry, error) {
	e := &Entry{data: rec.Raw}
	rec.Each(func(key, value string) {
		if set, ok := entryFields[key]; ok {
			set(e, value)
		}
	})

	for _, field := range []string{FieldPath, FieldSize, FieldPackedSize} {
		if _, ok := rec.Get(field); !ok {
			return nil, missing("entry", field)
		}
	}
	return e, nil
}

// Data returns the listing lines the entry was decoded from.
func (e *Entry) Data() []string {
	return e.data
}

// Listing is the listing the entry belongs to, nil for standalone entries.
func (e *Entry) Listing() *Listing {
	return e.listing
}

func (e *Entry) IsDirectory() bool {
	if folder, ok := deref(e.folder); ok && folder == "+" {
		return true
	}
	attrs, _ := deref(e.attributes)
	return strings.Contains(attrs, "D")
}

func (e *Entry) IsEncrypted() bool {
	enc, _ := deref(e.encrypted)
	return enc == "+"
}

// Path is the member path with the separator the archive stored.
func (e *Entry) Path() string {
	return e.path
}

// UnixPath is Path with '\' replaced by '/'. Lookups should use it.
func (e *Entry) UnixPath() string {
	return utils.UnixPath(e.path)
}

func (e *Entry) Size() string {
	return e.size
}

// PackedSize is only set for the first file of a solid block, the rest of
// the block reports it blank.
func (e *Entry) PackedSize() string {
	return e.packedSize
}

func (e *Entry) Modified() (string, bool) { return deref(e.modified) }
func (e *Entry) Created() (string, bool) { return deref(e.created) }
func (e *Entry) Attributes() (string, bool) { return deref(e.attributes) }
func (e *Entry) CRC() (string, bool) { return deref(e.crc) }
func (e *Entry) Method() (string, bool) { return deref(e.method) }
func (e *Entry) Block() (string, bool) { return deref(e.block) }
func (e *Entry) Comment() (string, bool) { return deref(e.comment) }
func (e *Entry) Characteristics() (string, bool) { return deref(e.characteristics) }
func (e *Entry) Folder() (string, bool) { return deref(e.folder) }

// HostOS is one of Unix, Win32, FAT, NTFS, Windows or Mac OS.
func (e *Entry) HostOS() (string, bool) { return deref(e.hostOS) }

// Encrypted is the raw "+"/"-" marker. Prefer IsEncrypted.
func (e *Entry) Encrypted() (string, bool) { return deref(e.encrypted) }
