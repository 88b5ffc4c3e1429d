package elfobj

import "fmt"

// DynamicEntry is one tag/value pair from a dynamic linking section. Str is
// the resolved string for string-valued tags (NEEDED, SONAME, RPATH,
// RUNPATH) and empty otherwise.
type DynamicEntry struct {
	Tag   DynTag
	Value uint64
	Str   string
}

func (d DynamicEntry) String() string {
	if d.Str != "" {
		return fmt.Sprintf("%s %q", d.Tag, d.Str)
	}
	return fmt.Sprintf("%s 0x%x", d.Tag, d.Value)
}

func dynMinEntSize(c Class) uint64 {
	if c == Class32 {
		return 8
	}
	return 16
}

// parseDynamic decodes the first SHT_DYNAMIC section: tag/value pairs up to
// the DT_NULL sentinel (kept, as readelf shows it) or the declared size,
// whichever comes first.
func (f *File) parseDynamic(r reader) {
	f.DynamicSection = -1
	index := -1
	for i := range f.Sections {
		if f.Sections[i].Type == SectionTypeDynamic {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}
	sec := &f.Sections[index]
	f.DynamicSection = index

	minSize := dynMinEntSize(r.class)
	stride := sec.EntSize
	if stride < minSize {
		f.diag(DiagMalformedSectionTable,
			"dynamic section %q: entry size %d below the required %d", sec.Name, sec.EntSize, minSize)
		return
	}

	// The string table for NEEDED-style values hangs off the link field.
	var strs []byte
	link := int(sec.Link)
	if link > 0 && link < len(f.Sections) && f.Sections[link].Type == SectionTypeStrtab {
		strs, _ = f.sectionData(link)
	}
	strtabMissing := false

	data, ok := f.sectionData(index)
	if !ok {
		return
	}
	count := uint64(len(data)) / stride
	for n := uint64(0); n < count; n++ {
		entry := data[n*stride:]
		var e DynamicEntry
		if r.class == Class32 {
			e.Tag = DynTag(int32(r.order.Uint32(entry[0:])))
			e.Value = uint64(r.order.Uint32(entry[4:]))
		} else {
			e.Tag = DynTag(int64(r.order.Uint64(entry[0:])))
			e.Value = r.order.Uint64(entry[8:])
		}
		if stringTag(e.Tag) {
			if strs == nil {
				if !strtabMissing {
					f.diag(DiagMissingStringTable,
						"dynamic section %q: link %d is not a usable string table", sec.Name, sec.Link)
					strtabMissing = true
				}
				e.Str = placeholderName(uint32(e.Value))
			} else {
				e.Str = f.resolveString(strs, e.Value,
					fmt.Sprintf("dynamic entry %d (%s)", n, e.Tag))
			}
		}
		f.Dynamic = append(f.Dynamic, e)
		if e.Tag == DynTagNull {
			break
		}
	}
}

// NeededLibraries returns the resolved DT_NEEDED names in table order.
func (f *File) NeededLibraries() []string {
	var out []string
	for _, e := range f.Dynamic {
		if e.Tag == DynTagNeeded {
			out = append(out, e.Str)
		}
	}
	return out
}
