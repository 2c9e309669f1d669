package parser

import "strings"

const (
	HeadTokenStart   = "--"
	HeadTokenEnd     = ""
	ListTokenStart   = "----------"
	NewFileListToken = ""
)

type state int

const (
	stateBanner state = iota
	stateHeader
	stateEntriesHead
	stateEntriesBody
	stateDone
)

func (s state) String() string {
	switch s {
	case stateBanner:
		return "Banner"
	case stateHeader:
		return "Header"
	case stateEntriesHead:
		return "EntriesHead"
	case stateEntriesBody:
		return "EntriesBody"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

type eventKind int

const (
	eventNone eventKind = iota
	eventHeaderField
	eventHeaderEnd
	eventEntryField
	eventRecordBreak
	eventListEnd
)

type event struct {
	kind  eventKind
	key   string
	value string
}

// step is the whole grammar of a listing: given the current state and one
// line, it returns the next state and at most one event.
func step(s state, line string) (state, event) {
	switch s {
	case stateBanner:
		switch line {
		case HeadTokenStart:
			return stateHeader, event{}
		case ListTokenStart:
			return stateEntriesBody, event{}
		}
		return stateBanner, event{}

	case stateHeader:
		if line == HeadTokenEnd {
			return stateEntriesHead, event{kind: eventHeaderEnd}
		}
		if line == ListTokenStart {
			return stateEntriesBody, event{kind: eventHeaderEnd}
		}
		if k, v, ok := headerField(line); ok {
			return stateHeader, event{kind: eventHeaderField, key: k, value: v}
		}
		return stateHeader, event{}

	case stateEntriesHead:
		if line == ListTokenStart {
			return stateEntriesBody, event{}
		}
		return stateEntriesHead, event{}

	case stateEntriesBody:
		if line == NewFileListToken {
			return stateEntriesBody, event{kind: eventRecordBreak}
		}
		if strings.HasPrefix(line, "Warnings:") || strings.HasPrefix(line, "Errors:") {
			return stateDone, event{kind: eventListEnd}
		}
		if k, v, ok := splitField(line); ok {
			return stateEntriesBody, event{kind: eventEntryField, key: k, value: v}
		}
		return stateEntriesBody, event{}
	}

	return stateDone, event{}
}

// headerField decodes a line inside the header block. Error and warning
// sub-blocks that 7-Zip prints there are not fields.
func headerField(line string) (string, string, bool) {
	if strings.HasPrefix(line, "ERROR:") ||
		strings.HasPrefix(line, "Open WARNING:") ||
		strings.HasPrefix(line, "WARNINGS:") ||
		!strings.Contains(line, " = ") {
		return "", "", false
	}
	return splitField(line)
}

// splitField cuts on the first " =" only, values may contain '='.
func splitField(line string) (string, string, bool) {
	k, v, ok := strings.Cut(line, " =")
	if !ok {
		return "", "", false
	}
	return k, strings.TrimLeft(v, " \t\r\v\x00"), true
}
