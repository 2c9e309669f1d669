package archiver

import (
	"archive/tar"
	"compress/bzip2"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/nwaples/rardecode/v2"
	"github.com/ulikunitz/xz"
)

const (
	zipHostUnix      = 3
	zipFlagEncrypted = 0x1

	tarBlockSize = 512

	// 7z keeps unix permissions in the high word when this bit is set.
	sevenZipUnixExtension = 0x8000
	sevenZipDirectory     = 0x10
)

func trimDir(name string) string {
	return strings.TrimSuffix(name, "/")
}

func listZip(src string, l *listing) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	l.headerField("Path", src)
	l.headerField("Type", "zip")
	l.headerField("Physical Size", strconv.FormatInt(l.size, 10))
	if r.Comment != "" {
		l.headerField("Comment", r.Comment)
	}

	for _, f := range r.File {
		if err := checkName(f.Name); err != nil {
			return err
		}
		isDir := f.FileInfo().IsDir()
		host := byte(f.CreatorVersion >> 8)

		crc := ""
		if !isDir {
			crc = formatCRC(f.CRC32)
		}
		l.entry(
			field{"Path", trimDir(f.Name)},
			field{"Folder", plus(isDir)},
			field{"Size", formatSize(f.UncompressedSize64)},
			field{"Packed Size", formatSize(f.CompressedSize64)},
			field{"Modified", formatTime(f.Modified)},
			field{"Attributes", attributes(f.Mode(), host == zipHostUnix)},
			field{"Encrypted", plus(f.Flags&zipFlagEncrypted != 0)},
			field{"Comment", f.Comment},
			field{"CRC", crc},
			field{"Method", zipMethod(f.Method)},
			field{"Host OS", hostOS(host)},
			field{"Version", strconv.Itoa(int(f.ReaderVersion))},
		)
	}
	return nil
}

func zipMethod(m uint16) string {
	switch m {
	case zip.Store:
		return "Store"
	case zip.Deflate:
		return "Deflate"
	case 12:
		return "BZip2"
	case 14:
		return "LZMA"
	case 93:
		return "ZSTD"
	}
	return strconv.Itoa(int(m))
}

func listRar(src string, l *listing) error {
	r, err := rardecode.OpenReader(src, rardecode.Password(""))
	if err != nil {
		return fmt.Errorf("failed to open rar: %w", err)
	}
	defer r.Close()

	solid := false
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read rar header: %w", err)
		}
		if err := checkName(header.Name); err != nil {
			return err
		}
		solid = solid || header.Solid

		packed := formatSize(header.PackedSize)
		size := formatSize(header.UnPackedSize)
		if header.UnKnownSize {
			size = ""
		}
		fields := []field{
			{"Path", header.Name},
			{"Folder", plus(header.IsDir)},
			{"Size", size},
			{"Packed Size", packed},
			{"Modified", formatTime(header.ModificationTime)},
		}
		if !header.CreationTime.IsZero() {
			fields = append(fields, field{"Created", formatTime(header.CreationTime)})
		}
		fields = append(fields,
			field{"Attributes", attributes(header.Mode(), header.HostOS == rardecode.HostOSUnix)},
			field{"Host OS", rarHostOS(header.HostOS)},
			field{"Version", strconv.Itoa(header.Version)},
		)
		l.entry(fields...)
	}

	l.headerField("Path", src)
	l.headerField("Type", "Rar")
	l.headerField("Physical Size", strconv.FormatInt(l.size, 10))
	l.headerField("Solid", plus(solid))
	return nil
}

func rarHostOS(id byte) string {
	switch id {
	case rardecode.HostOSMSDOS:
		return "MS DOS"
	case rardecode.HostOSOS2:
		return "OS/2"
	case rardecode.HostOSWindows:
		return "Win32"
	case rardecode.HostOSUnix:
		return "Unix"
	case rardecode.HostOSMacOS:
		return "Mac OS"
	case rardecode.HostOSBeOS:
		return "BeOS"
	}
	return "Unknown"
}

func listSevenZip(src string, l *listing) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	l.headerField("Path", src)
	l.headerField("Type", "7z")
	l.headerField("Physical Size", strconv.FormatInt(l.size, 10))

	for _, f := range r.File {
		if err := checkName(f.Name); err != nil {
			return err
		}
		isDir := f.FileInfo().IsDir()

		// Packed sizes are per folder in 7z, not per file.
		packed, crc := "", formatCRC(f.CRC32)
		if isDir {
			packed, crc = "0", ""
		}
		l.entry(
			field{"Path", f.Name},
			field{"Size", formatSize(f.UncompressedSize)},
			field{"Packed Size", packed},
			field{"Modified", formatTime(f.Modified)},
			field{"Attributes", sevenZipAttributes(f.Attributes)},
			field{"CRC", crc},
			field{"Encrypted", "-"},
		)
	}
	return nil
}

func sevenZipAttributes(attr uint32) string {
	isDir := attr&sevenZipDirectory != 0
	mode := fs.FileMode(0)
	if isDir {
		mode |= fs.ModeDir
	}
	unix := attr&sevenZipUnixExtension != 0
	if unix {
		mode |= fs.FileMode(attr>>16) & fs.ModePerm
	}
	return attributes(mode, unix)
}

func listTar(src string, l *listing) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open tar: %w", err)
	}
	defer f.Close()

	l.headerField("Path", src)
	l.headerField("Type", "tar")
	l.headerField("Physical Size", strconv.FormatInt(l.size, 10))

	tr := tar.NewReader(f)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read tar header: %w", err)
		}
		if err := checkName(h.Name); err != nil {
			return err
		}
		isDir := h.Typeflag == tar.TypeDir
		packed := (h.Size + tarBlockSize - 1) / tarBlockSize * tarBlockSize

		fields := []field{
			{"Path", trimDir(h.Name)},
			{"Folder", plus(isDir)},
			{"Size", formatSize(h.Size)},
			{"Packed Size", formatSize(packed)},
			{"Modified", formatTime(h.ModTime.UTC())},
			{"Mode", h.FileInfo().Mode().String()},
			{"User", h.Uname},
			{"Group", h.Gname},
		}
		if h.Typeflag == tar.TypeSymlink {
			fields = append(fields, field{"Symbolic Link", h.Linkname})
		}
		if h.Typeflag == tar.TypeLink {
			fields = append(fields, field{"Hard Link", h.Linkname})
		}
		l.entry(fields...)
	}
	return nil
}

// Single-stream compressors: the member is the archive name without its
// extension and there is no Physical Size in the header.
func streamName(src string, ext string) string {
	base := filepath.Base(src)
	if strings.EqualFold(filepath.Ext(base), ".tgz") {
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".tar"
	}
	if strings.EqualFold(filepath.Ext(base), ext) {
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

func listGzip(src string, l *listing) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open gzip: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read gzip header: %w", err)
	}
	defer zr.Close()

	headers := int64(10)
	if len(zr.Extra) > 0 {
		headers += 2 + int64(len(zr.Extra))
	}
	if zr.Name != "" {
		headers += int64(len(zr.Name)) + 1
	}
	if zr.Comment != "" {
		headers += int64(len(zr.Comment)) + 1
	}

	name := zr.Name
	if name == "" {
		name = streamName(src, ".gz")
	}
	if err := checkName(name); err != nil {
		return err
	}
	modified := formatTime(zr.ModTime.UTC())
	host := zr.OS

	size, err := io.Copy(io.Discard, zr)
	if err != nil {
		return fmt.Errorf("failed to decompress gzip: %w", err)
	}

	const trailer = 8
	packed := l.size - headers - trailer
	if packed < 0 {
		packed = 0
	}

	l.headerField("Path", src)
	l.headerField("Type", "gzip")
	l.headerField("Headers Size", strconv.FormatInt(headers, 10))
	l.entry(
		field{"Path", name},
		field{"Size", formatSize(size)},
		field{"Packed Size", formatSize(packed)},
		field{"Modified", modified},
		field{"Host OS", hostOS(host)},
	)
	return nil
}

func listXz(src string, l *listing) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open xz: %w", err)
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read xz header: %w", err)
	}
	size, err := io.Copy(io.Discard, xr)
	if err != nil {
		return fmt.Errorf("failed to decompress xz: %w", err)
	}

	l.headerField("Path", src)
	l.headerField("Type", "xz")
	l.headerField("Method", "LZMA2")
	l.entry(
		field{"Path", streamName(src, ".xz")},
		field{"Size", formatSize(size)},
		field{"Packed Size", formatSize(l.size)},
		field{"Method", "LZMA2"},
	)
	return nil
}

func listBzip2(src string, l *listing) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open bzip2: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(io.Discard, bzip2.NewReader(f))
	if err != nil {
		return fmt.Errorf("failed to decompress bzip2: %w", err)
	}

	l.headerField("Path", src)
	l.headerField("Type", "bzip2")
	l.entry(
		field{"Path", streamName(src, ".bz2")},
		field{"Size", formatSize(size)},
		field{"Packed Size", formatSize(l.size)},
	)
	return nil
}
