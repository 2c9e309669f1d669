package parser

import "strings"

const warningsHeader = "\nWARNINGS:"

// ParseWarnings extracts the archive warnings 7-Zip prints above the first
// "--" line of a test ("t") run. It returns nil when there are none.
func ParseWarnings(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")

	pos := strings.Index(output, "\n"+HeadTokenStart)
	if pos < 0 {
		return nil
	}
	head := output[:pos]

	at := strings.LastIndex(head, warningsHeader)
	if at < 0 {
		return nil
	}
	block := strings.TrimSpace(head[at+len(warningsHeader):])
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}

// TestPassed reports whether a test run ended without errors.
func TestPassed(output string) bool {
	return strings.Contains(output, "Everything is Ok")
}

// ToolVersion returns the "7-Zip ..." line of a banner, or "" if the banner
// does not carry one.
func ToolVersion(banner string) string {
	for _, line := range strings.Split(banner, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "7-Zip") || strings.HasPrefix(line, "p7zip") {
			return line
		}
	}
	return ""
}
