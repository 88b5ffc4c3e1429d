package disasm

// CallEdge is a call site extracted from a decoded instruction stream.
type CallEdge struct {
	FromPC     uint64 `json:"from_pc"`
	Kind       string `json:"kind"` // "call" or "indirect"
	TargetPC   uint64 `json:"target_pc,omitempty"`
	TargetName string `json:"target_name,omitempty"`
}

// ExtractCallEdges collects the call sites from insts. symbols, when
// non-nil, names direct targets.
func ExtractCallEdges(insts []Inst, symbols SymbolLookup) []CallEdge {
	var edges []CallEdge
	for _, inst := range insts {
		switch inst.Call {
		case CallDirect:
			e := CallEdge{FromPC: inst.Addr, Kind: "call", TargetPC: inst.Target}
			if symbols != nil {
				if name, ok := symbols(inst.Target); ok {
					e.TargetName = name
				}
			}
			edges = append(edges, e)
		case CallIndirect:
			edges = append(edges, CallEdge{FromPC: inst.Addr, Kind: "indirect"})
		}
	}
	return edges
}
