// Package callgraph attributes decoded call sites to their enclosing
// functions and builds graphs over the result.
package callgraph

import (
	"fmt"
	"sort"

	"github.com/zboralski/lattice"

	"elfscope/internal/disasm"
)

// Entry is one function entry point, taken from the symbol table.
type Entry struct {
	Name string
	Addr uint64
	Size uint64
}

// FuncInfo holds the instructions and call sites of one function.
type FuncInfo struct {
	Name      string
	Insts     []disasm.Inst
	CallEdges []disasm.CallEdge
}

// Split partitions a decoded instruction stream by function entry points.
// A zero-size entry extends to the next entry (or end of stream).
// Instructions before the first entry are dropped. symbols, when non-nil,
// names direct call targets.
func Split(insts []disasm.Inst, entries []Entry, symbols disasm.SymbolLookup) []FuncInfo {
	if len(entries) == 0 || len(insts) == 0 {
		return nil
	}
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Addr < sorted[j].Addr })

	var funcs []FuncInfo
	for i, e := range sorted {
		end := ^uint64(0)
		if e.Size > 0 {
			end = e.Addr + e.Size
		} else if i+1 < len(sorted) {
			end = sorted[i+1].Addr
		}
		lo := sort.Search(len(insts), func(k int) bool { return insts[k].Addr >= e.Addr })
		hi := sort.Search(len(insts), func(k int) bool { return insts[k].Addr >= end })
		if lo >= hi {
			continue
		}
		body := insts[lo:hi]
		funcs = append(funcs, FuncInfo{
			Name:      e.Name,
			Insts:     body,
			CallEdges: disasm.ExtractCallEdges(body, symbols),
		})
	}
	return funcs
}

// BuildCallGraph constructs a lattice.Graph from the split functions. Each
// function becomes a node; each direct call becomes an edge. Unnamed targets
// get sub_<hexaddr> placeholder nodes; indirect calls are skipped.
func BuildCallGraph(funcs []FuncInfo) *lattice.Graph {
	g := &lattice.Graph{}
	for _, f := range funcs {
		g.Nodes = append(g.Nodes, f.Name)
		for _, e := range f.CallEdges {
			if e.Kind != "call" {
				continue
			}
			callee := e.TargetName
			if callee == "" {
				callee = fmt.Sprintf("sub_%x", e.TargetPC)
			}
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: f.Name,
				Callee: callee,
			})
		}
	}
	g.Dedup()
	return g
}

// SectionLink is one sh_link relationship between two named sections.
type SectionLink struct {
	From string
	To   string
}

// BuildSectionGraph constructs a lattice.Graph of section cross-references
// (symbol tables to string tables, relocation tables to their targets).
func BuildSectionGraph(names []string, links []SectionLink) *lattice.Graph {
	g := &lattice.Graph{Nodes: append([]string(nil), names...)}
	for _, l := range links {
		g.Edges = append(g.Edges, lattice.Edge{Caller: l.From, Callee: l.To})
	}
	g.Dedup()
	return g
}
