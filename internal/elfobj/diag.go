package elfobj

import "fmt"

// DiagKind classifies a recoverable parse condition.
type DiagKind uint8

const (
	DiagTruncatedTable DiagKind = iota
	DiagMalformedSectionTable
	DiagMissingStringTable
	DiagUnterminatedString
	DiagDanglingSectionReference
	DiagOutOfBounds
)

func (k DiagKind) String() string {
	switch k {
	case DiagTruncatedTable:
		return "truncated table"
	case DiagMalformedSectionTable:
		return "malformed section table"
	case DiagMissingStringTable:
		return "missing string table"
	case DiagUnterminatedString:
		return "unterminated string"
	case DiagDanglingSectionReference:
		return "dangling section reference"
	case DiagOutOfBounds:
		return "out of bounds"
	}
	return fmt.Sprintf("diag(%d)", uint8(k))
}

// Diag records one recoverable condition found while parsing. Diagnostics
// accumulate on the File in encounter order; they never abort the parse.
type Diag struct {
	Kind   DiagKind
	Detail string
}

func (d Diag) String() string {
	return d.Kind.String() + ": " + d.Detail
}
