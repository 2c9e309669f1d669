package parser

// Captured 7-Zip 23.01 output for a small solid 7z archive.
var sevenZipListing = []string{
	"",
	"7-Zip 23.01 (x64) : Copyright (c) 1999-2023 Igor Pavlov : 2023-06-20",
	" 64-bit locale=C.UTF-8 Threads:8 OPEN_MAX:1024",
	"",
	"Scanning the drive for archives:",
	"1 file, 165348 bytes (162 KiB)",
	"",
	"Listing archive: test.7z",
	"",
	"--",
	"Path = test.7z",
	"Type = 7z",
	"Physical Size = 165348",
	"Headers Size = 246",
	"Method = LZMA2:192k",
	"Solid = +",
	"Blocks = 1",
	"",
	"----------",
	"Path = test",
	"Size = 0",
	"Packed Size = 0",
	"Modified = 2018-10-14 15:41:42.5198371",
	"Attributes = D",
	"CRC = ",
	"Encrypted = -",
	"Method = ",
	"Block = ",
	"",
	"Path = 1.jpg",
	"Size = 91216",
	"Packed Size = 165102",
	"Modified = 2013-06-10 09:56:07.0000000",
	"Attributes = A",
	"CRC = 871345C2",
	"Encrypted = -",
	"Method = LZMA2:192k",
	"Block = 0",
	"",
	"Path = test\\2.jpg",
	"Size = 73103",
	"Packed Size = ",
	"Modified = 2013-06-10 09:56:07.0000000",
	"Attributes = A",
	"CRC = 3B1B8C6C",
	"Encrypted = -",
	"Method = LZMA2:192k",
	"Block = 0",
	"",
	"Path = test\\test.txt",
	"Size = 14",
	"Packed Size =",
	"Modified = 2013-10-23 16:28:51.0000000",
	"Attributes = A -rw-r--r--",
	"CRC = A346C3A7",
	"Encrypted = -",
	"Method = LZMA2:192k",
	"Block = 0",
	"",
	"",
}

// A zip with trailing garbage, as listed by 7-Zip.
var warningsZipListing = []string{
	"",
	"7-Zip [64] 16.02 : Copyright (c) 1999-2016 Igor Pavlov : 2016-05-21",
	"",
	"Listing archive: warnings.zip",
	"",
	"--",
	"Path = warnings.zip",
	"Type = zip",
	"WARNINGS:",
	"There are data after the end of archive",
	"Physical Size = 165038",
	"Tail Size = 12",
	"",
	"----------",
	"Path = 1.jpg",
	"Folder = -",
	"Size = 91216",
	"Packed Size = 91216",
	"Modified = 2013-06-10 09:56:07",
	"Attributes = A",
	"Encrypted = -",
	"Comment = ",
	"CRC = 871345C2",
	"Method = Store",
	"Characteristics = NTFS",
	"Host OS = FAT",
	"Version = 10",
	"",
	"Warnings: 1",
	"",
}

// A gzip stream has no Physical Size in its header block.
var gzipListing = []string{
	"",
	"7-Zip 23.01 (x64) : Copyright (c) 1999-2023 Igor Pavlov : 2023-06-20",
	"",
	"Scanning the drive for archives:",
	"1 file, 42 bytes (1 KiB)",
	"",
	"Listing archive: test.tgz",
	"",
	"--",
	"Path = test.tgz",
	"Type = gzip",
	"Headers Size = 19",
	"",
	"----------",
	"Path = test.tar",
	"Size = 174592",
	"Packed Size = 23",
	"Modified = 2018-10-14 16:01:03",
	"Host OS = Unix",
	"",
}
