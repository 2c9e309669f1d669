// Package parser turns the plain-text output of 7-Zip's "l -slt" listing
// into records of "Key = Value" fields.
//
// A listing is a free-text banner, a "--" line, one header block describing
// the archive, a "----------" line and then one block per member separated
// by blank lines. Nothing here fails: lines that do not look like fields are
// skipped and a listing without sentinels simply yields no records.
package parser

import (
	"bufio"
	"io"
	"strings"
)

// NoLimit disables the entry limit of ParseEntries.
const NoLimit = -1

// Parser holds one captured listing. It is never mutated after creation, so
// a Parser may be shared between goroutines.
type Parser struct {
	lines []string
}

// New wraps already split output lines.
func New(lines []string) *Parser {
	return &Parser{lines: lines}
}

// FromString splits out on newlines, dropping a trailing '\r' per line.
func FromString(out string) *Parser {
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return New(lines)
}

// FromReader reads r to the end and splits it into lines.
func FromReader(r io.Reader) (*Parser, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(lines), nil
}

// Lines returns the raw output lines.
func (p *Parser) Lines() []string {
	return p.lines
}

// ParseInfo returns every line before the first "--", each followed by a
// newline. Without a "--" line it returns the whole output.
func (p *Parser) ParseInfo() string {
	var b strings.Builder
	for _, line := range p.lines {
		if line == HeadTokenStart {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseHeader decodes the block between "--" and the next blank line.
func (p *Parser) ParseHeader() *Record {
	header := newRecord()
	s := stateBanner
	for _, line := range p.lines {
		var ev event
		s, ev = step(s, line)
		switch ev.kind {
		case eventHeaderField:
			header.Set(ev.key, ev.value)
			header.Raw = append(header.Raw, line)
		case eventHeaderEnd:
			return header
		}
		if s == stateEntriesBody || s == stateDone {
			break
		}
	}
	return header
}

// ParseEntries decodes the member blocks after "----------". With a limit
// >= 0 scanning stops as soon as that many records are complete. A
// "Warnings:" or "Errors:" line ends the list and the records gathered so
// far are returned.
func (p *Parser) ParseEntries(limit int) []*Record {
	list, _ := p.parseEntries(limit)
	return list
}

// parseEntries also reports how many lines were inspected.
func (p *Parser) parseEntries(limit int) ([]*Record, int) {
	var (
		list    []*Record
		current = newRecord()
		s       = stateBanner
		scanned int
	)

	for _, line := range p.lines {
		if s == stateEntriesBody && limit >= 0 && len(list) >= limit {
			break
		}
		scanned++

		var ev event
		s, ev = step(s, line)
		switch ev.kind {
		case eventEntryField:
			current.Set(ev.key, ev.value)
			current.Raw = append(current.Raw, line)
		case eventRecordBreak:
			if current.Len() > 0 {
				list = append(list, current)
				current = newRecord()
			}
		}
		if s == stateDone {
			break
		}
	}

	if current.Len() > 0 && (limit < 0 || len(list) < limit) {
		list = append(list, current)
	}
	return list, scanned
}
