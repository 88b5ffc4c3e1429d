package elfobj

import (
	"reflect"
	"testing"
)

func TestReadString(t *testing.T) {
	table := []byte("\x00.text\x00.data\x00tail")
	tests := []struct {
		off  uint64
		want string
		ok   bool
	}{
		{0, "", true},
		{1, ".text", true},
		{3, "ext", true},
		{7, ".data", true},
		{13, "tail", false}, // no NUL before end of table
		{14, "ail", false},
		{17, "", false}, // one past the end
		{99, "", false},
	}
	for _, tc := range tests {
		got, ok := readString(table, tc.off)
		if got != tc.want || ok != tc.ok {
			t.Errorf("readString(%d) = %q/%v, want %q/%v", tc.off, got, ok, tc.want, tc.ok)
		}
	}
}

func TestReadStringUnterminatedTail(t *testing.T) {
	got, ok := readString([]byte("abc"), 1)
	if got != "bc" || ok {
		t.Errorf("readString = %q/%v, want the truncated tail and ok=false", got, ok)
	}
}

func TestStringTableStrings(t *testing.T) {
	got := stringTableStrings([]byte("\x00one\x00two\x00"))
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("stringTableStrings = %v", got)
	}
	if got := stringTableStrings(nil); got != nil {
		t.Errorf("stringTableStrings(nil) = %v, want nil", got)
	}
}
