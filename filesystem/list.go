package filesystem

import (
	"fmt"
	"slices"
	"strings"

	"github.com/brettbedarf/nautilus/internal/util"
)

// ListOptions are the ls flags.
type ListOptions struct {
	All  bool // -a: include dot entries and synthesize "." and ".."
	Long bool // -l: "mode owner name"
	Dir  bool // -d: describe the directory itself instead of its contents
}

// Entry is one listed line.
type Entry struct {
	Name  string
	Kind  NodeKind
	Mode  Mode
	Owner string
}

func newEntryFor(n Node, name string) Entry {
	return Entry{Name: name, Kind: n.Kind(), Mode: n.Mode(), Owner: n.Owner()}
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// lastSegment is the final name of path as typed; "/" for the root.
func lastSegment(path string) string {
	trimmed := strings.TrimRight(path, pathSep)
	if trimmed == "" {
		return pathSep
	}
	return trimmed[strings.LastIndex(trimmed, pathSep)+1:]
}

// List returns the entries ls prints for path ("" means the working directory).
//
// A directory lists its children sorted by name, which requires read on the
// directory and execute on its ancestors. A file, or a directory with -d,
// lists only itself under the name it was given, which requires read on its
// parent and execute on the parent and its ancestors. Names starting with "."
// are left out unless All is set; for a single entry that is the last segment
// as typed, so "ls -d ." prints nothing. The stored child order is never changed.
func (s *Session) List(path string, opts ListOptions) ([]Entry, error) {
	const op = "ls"
	logger := util.GetLogger("List")

	display := path
	if path == "" {
		path, display = ".", "."
	}
	if err := validatePath(path); err != nil {
		return nil, withOp(op, err)
	}
	node, err := s.Resolve(path)
	if err != nil {
		return nil, withOp(op, err)
	}

	dir, isDir := node.(*Directory)
	if !isDir || opts.Dir {
		parent := node.Parent()
		if err := s.require(op, parent, Read, path); err != nil {
			return nil, err
		}
		if err := s.requireTraversable(op, parent, path); err != nil {
			return nil, err
		}
		if hidden(lastSegment(display)) && !opts.All {
			return nil, nil
		}
		return []Entry{newEntryFor(node, display)}, nil
	}

	if err := s.require(op, dir, Read, path); err != nil {
		return nil, err
	}
	if err := s.requireTraversable(op, dir.Parent(), path); err != nil {
		return nil, err
	}

	children := dir.Children()
	slices.SortStableFunc(children, func(a, b Node) int {
		return strings.Compare(a.Name(), b.Name())
	})
	entries := make([]Entry, 0, len(children)+2)
	if opts.All {
		entries = append(entries, newEntryFor(dir, "."), newEntryFor(dir.Parent(), ".."))
	}
	for _, ch := range children {
		if hidden(ch.Name()) && !opts.All {
			continue
		}
		entries = append(entries, newEntryFor(ch, ch.Name()))
	}
	logger.Trace().Str("path", dir.Path()).Int("entries", len(entries)).Msg("Listed directory")
	return entries, nil
}

// FormatEntries renders entries one per line, in long form when long is set.
func FormatEntries(entries []Entry, long bool) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if long {
			lines = append(lines, fmt.Sprintf("%s %s %s", e.Mode, e.Owner, e.Name))
			continue
		}
		lines = append(lines, e.Name)
	}
	return lines
}
