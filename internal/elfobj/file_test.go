package elfobj

import (
	"reflect"
	"testing"
)

func TestParseFullFixture(t *testing.T) {
	f, err := Parse(fullFixture(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Sections) != 8 {
		t.Fatalf("got %d sections, want 8", len(f.Sections))
	}
	if len(f.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", f.Diags)
	}

	sym, ok := f.LookupSymbol("main")
	if !ok || sym.Type != SymTypeFunc || sym.Value != 0x1000 {
		t.Errorf("LookupSymbol(main) = %v/%v", sym, ok)
	}
	if _, ok := f.LookupSymbol("nosuch"); ok {
		t.Error("LookupSymbol resolved a name that does not exist")
	}

	sec, index, ok := f.SectionByName(".rela.text")
	if !ok || sec.Type != SectionTypeRela {
		t.Fatalf("SectionByName(.rela.text) = %v/%v", sec, ok)
	}
	if index != 4 {
		t.Errorf("section index = %d, want 4", index)
	}
	st, ok := f.SymbolTableFor(3)
	if !ok || len(st.Symbols) != 3 {
		t.Errorf("SymbolTableFor(3) = %v/%v", st, ok)
	}

	if libs := f.NeededLibraries(); len(libs) != 1 || libs[0] != "libc.so.6" {
		t.Errorf("NeededLibraries = %v", libs)
	}
	strs, err := f.StringTableStrings(2)
	if err != nil {
		t.Fatalf("StringTableStrings: %v", err)
	}
	if !reflect.DeepEqual(strs, []string{"main", "external"}) {
		t.Errorf("StringTableStrings = %v", strs)
	}
	if _, err := f.StringTableStrings(1); err == nil {
		t.Error("StringTableStrings accepted a non-string-table section")
	}
}

// Parsing has no hidden state: the same buffer yields structurally equal
// models and diagnostics every time.
func TestParseIdempotent(t *testing.T) {
	raw := fullFixture(t)
	a, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two parses of the same buffer disagree")
	}
}

func TestParseIdempotentCorrupted(t *testing.T) {
	raw := fullFixture(t)
	raw = raw[:len(raw)-40] // chop into the section header table
	a, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(a.Diags, b.Diags) {
		t.Error("diagnostics differ between parses of the same buffer")
	}
	if !hasDiag(a, DiagTruncatedTable) {
		t.Errorf("diagnostics = %v, want a truncated table report", a.Diags)
	}
}
