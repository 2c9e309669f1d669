package archiver

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const banner = "archive-listing (native)"

type field struct {
	key   string
	value string
}

type listing struct {
	path    string
	size    int64
	header  []field
	entries [][]field
}

func newListing(path string, size int64) *listing {
	return &listing{path: path, size: size}
}

func (l *listing) headerField(key, value string) {
	l.header = append(l.header, field{key, value})
}

func (l *listing) entry(fields ...field) {
	l.entries = append(l.entries, fields)
}

func (l *listing) lines() []string {
	out := []string{
		"",
		banner,
		"",
		"Scanning the drive for archives:",
		fmt.Sprintf("1 file, %d bytes (%s)", l.size, humanize.IBytes(uint64(l.size))),
		"",
		"Listing archive: " + l.path,
		"",
		"--",
	}
	for _, f := range l.header {
		out = append(out, f.key+" = "+f.value)
	}
	out = append(out, "", "----------")
	for _, fields := range l.entries {
		for _, f := range fields {
			out = append(out, f.key+" = "+f.value)
		}
		out = append(out, "")
	}
	return out
}

func plus(b bool) string {
	if b {
		return "+"
	}
	return "-"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatCRC(crc uint32) string {
	return fmt.Sprintf("%08X", crc)
}

func formatSize[T int64 | uint64](n T) string {
	if n < 0 {
		return ""
	}
	return strconv.FormatUint(uint64(n), 10)
}

// attributes renders "A" or "D", followed by the unix mode when the
// archive was written on a unix host.
func attributes(mode fs.FileMode, unix bool) string {
	var b strings.Builder
	if mode.IsDir() {
		b.WriteByte('D')
	} else {
		b.WriteByte('A')
	}
	if unix {
		b.WriteByte(' ')
		b.WriteString(mode.String())
	}
	return b.String()
}

// Host system names shared by zip's "version made by" and gzip's OS byte.
var hostSystems = []string{
	"FAT", "Amiga", "VMS", "Unix", "VM/CMS", "Atari", "HPFS", "Macintosh",
	"Z-System", "CP/M", "TOPS-20", "NTFS", "SMS/QDOS", "Acorn", "VFAT",
	"MVS", "BeOS", "Tandem", "OS/400", "OS/X",
}

func hostOS(id byte) string {
	if int(id) < len(hostSystems) {
		return hostSystems[id]
	}
	return strconv.Itoa(int(id))
}
