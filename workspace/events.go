package workspace

import (
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// EventKind identifies one of the seven events a Workspace emits, per
// spec.md §5.
type EventKind uint8

const (
	FileAdded EventKind = iota
	FileUpdated
	FileRemoved
	DependencyAdded
	SymbolInserted
	ImportAdded
	FileChanged
)

// String returns a human-readable label for the event kind.
func (k EventKind) String() string {
	switch k {
	case FileAdded:
		return "FileAdded"
	case FileUpdated:
		return "FileUpdated"
	case FileRemoved:
		return "FileRemoved"
	case DependencyAdded:
		return "DependencyAdded"
	case SymbolInserted:
		return "SymbolInserted"
	case ImportAdded:
		return "ImportAdded"
	case FileChanged:
		return "FileChanged"
	default:
		return "unknown"
	}
}

// Event is one observable workspace occurrence. Only the fields relevant
// to Kind are populated; the rest are zero.
type Event struct {
	Kind EventKind

	// File is set for FileAdded, FileUpdated, FileRemoved, and
	// FileChanged.
	File location.SourceID

	// DependencyFrom and DependencyTo are set for DependencyAdded: From
	// imports To.
	DependencyFrom location.SourceID
	DependencyTo   location.SourceID

	// Symbol is set for SymbolInserted.
	Symbol *symtab.Symbol

	// ImportPath and ImportIsWildcard are set for ImportAdded.
	ImportPath       string
	ImportIsWildcard bool

	// RelationType is set alongside DependencyAdded when the dependency
	// stems from a specific relationship edge; zero otherwise.
	RelationType relgraph.Type
}

// Subscriber receives every Event emitted by a Workspace, synchronously
// and in the order the mutation produced them. A subscriber must not call
// back into the Workspace during delivery: per spec.md §5 this is a
// documented contract, not one the Workspace enforces.
type Subscriber func(Event)

// Subscribe registers sub to receive future events. Returns an
// unsubscribe function.
func (w *Workspace) Subscribe(sub Subscriber) (unsubscribe func()) {
	w.subscribers = append(w.subscribers, sub)
	id := len(w.subscribers) - 1
	return func() {
		w.subscribers[id] = nil
	}
}

func (w *Workspace) emit(ev Event) {
	for _, sub := range w.subscribers {
		if sub != nil {
			sub(ev)
		}
	}
}
