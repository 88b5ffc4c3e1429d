package elfobj

import (
	"bytes"
	"fmt"
	"strings"
)

// readString scans table from off to the next NUL. ok is false when off is
// past the table or no terminator exists before the end; the truncated tail
// is still returned so corrupted tables stay inspectable.
func readString(table []byte, off uint64) (string, bool) {
	if off >= uint64(len(table)) {
		return "", false
	}
	i := bytes.IndexByte(table[off:], 0)
	if i < 0 {
		return string(table[off:]), false
	}
	return string(table[off : off+uint64(i)]), true
}

func placeholderName(off uint32) string {
	return fmt.Sprintf("<offset 0x%x>", off)
}

// resolveString resolves a name offset against a string table, downgrading
// failures to diagnostics. what names the referencing field for the report.
func (f *File) resolveString(table []byte, off uint64, what string) string {
	if off >= uint64(len(table)) {
		f.diag(DiagOutOfBounds, "%s: string offset 0x%x past end of a %d-byte table",
			what, off, len(table))
		return placeholderName(uint32(off))
	}
	s, ok := readString(table, off)
	if !ok {
		f.diag(DiagUnterminatedString, "%s: no NUL before end of table", what)
	}
	return s
}

// stringTableStrings splits a whole string table into its strings, skipping
// empty entries. Feeds the strings report.
func stringTableStrings(table []byte) []string {
	if len(table) == 0 {
		return nil
	}
	t := table
	if t[len(t)-1] == 0 {
		t = t[:len(t)-1]
	}
	parts := strings.Split(string(t), "\x00")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
