package ingest

import "github.com/mdraeger/networks/core"

// NameTable maps external node names to dense ids, first-seen-gets-next-id,
// so the resulting ids are contiguous in [0, Len()) — exactly what
// compactstar.Build requires.
//
// A NameTable is not safe for concurrent interning; populate it during
// ingestion, then share it read-only like the network itself.
type NameTable struct {
	ids   map[string]core.NodeID
	names []string
}

// NewNameTable returns an empty NameTable.
func NewNameTable() *NameTable {
	return &NameTable{ids: make(map[string]core.NodeID)}
}

// Intern returns the id for name, assigning the next dense id on first
// sight.
func (t *NameTable) Intern(name string) core.NodeID {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := core.NodeID(len(t.names))
	t.ids[name] = id
	t.names = append(t.names, name)

	return id
}

// Lookup returns the id previously assigned to name. The bool is false
// when the name was never interned; no id is invented.
func (t *NameTable) Lookup(name string) (core.NodeID, bool) {
	id, ok := t.ids[name]

	return id, ok
}

// Name returns the external name for id. The bool is false for ids never
// assigned, including the invalid sentinel.
func (t *NameTable) Name(id core.NodeID) (string, bool) {
	if int(id) >= len(t.names) {
		return "", false
	}

	return t.names[id], true
}

// Len returns the number of distinct names interned so far.
func (t *NameTable) Len() int { return len(t.names) }
