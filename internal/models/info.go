package models

import (
	"regexp"

	"archive-listing/internal/parser"
)

// Some containers (bare gzip, xz) have no Physical Size in the header; the
// banner's "1 file, 42 bytes" summary carries it instead.
var bannerSize = regexp.MustCompile(`\d+ files?, (\d+) bytes`)

// Info describes the archive container itself.
type Info struct {
	data []string

	path         string
	typ          string
	physicalSize *int64
	headersSize  *int64
	method       *string
	solid        *string
	blocks       *int64
	codePage     *string
}

// NewInfo decodes the header block of a listing.
func NewInfo(p *parser.Parser) (*Info, error) {
	header := p.ParseHeader()

	i := &Info{data: p.Lines()}
	var err error
	header.Each(func(key, value string) {
		if err != nil {
			return
		}
		if set, ok := infoFields[key]; ok {
			err = set(i, value)
		}
	})
	if err != nil {
		return nil, err
	}

	for _, field := range []string{FieldPath, FieldType} {
		if _, ok := header.Get(field); !ok {
			return nil, missing("archive info", field)
		}
	}

	if i.physicalSize == nil {
		m := bannerSize.FindStringSubmatch(p.ParseInfo())
		if m == nil {
			return nil, missing("archive info", FieldPhysicalSize)
		}
		n, err := parseInt(FieldPhysicalSize, m[1])
		if err != nil {
			return nil, err
		}
		i.physicalSize = &n
	}
	return i, nil
}

// Data returns the full listing the info was decoded from.
func (i *Info) Data() []string {
	return i.data
}

func (i *Info) IsSolid() bool {
	solid, _ := deref(i.solid)
	return solid == "+"
}

func (i *Info) Path() string { return i.path }
func (i *Info) Type() string { return i.typ }
func (i *Info) PhysicalSize() int64 { return *i.physicalSize }
func (i *Info) Method() (string, bool) { return deref(i.method) }
func (i *Info) CodePage() (string, bool) { return deref(i.codePage) }

func (i *Info) HeadersSize() (int64, bool) {
	if i.headersSize == nil {
		return 0, false
	}
	return *i.headersSize, true
}

func (i *Info) Blocks() (int64, bool) {
	if i.blocks == nil {
		return 0, false
	}
	return *i.blocks, true
}
