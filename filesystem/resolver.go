package filesystem

import (
	"strings"
)

// Resolve turns path into a node. Absolute paths start at the root, relative
// paths at the working directory. "." stays put, ".." moves to the parent (the
// root's parent is the root). Any other segment must name a child of the
// current directory, otherwise the result is a NotFound error. Resolve never
// creates nodes.
func (s *Session) Resolve(path string) (Node, error) {
	return s.walk(path, nil)
}

// ResolveRoute resolves path like [Session.Resolve] but additionally requires
// capability c on every node reached through a named segment. A failing check
// yields PermissionDenied, distinct from NotFound.
func (s *Session) ResolveRoute(path string, c Capability) (Node, error) {
	return s.walk(path, func(n Node) bool {
		return s.CheckCapability(n, c)
	})
}

func (s *Session) walk(path string, allow func(Node) bool) (Node, error) {
	if path == "" {
		return nil, &FSError{Code: CodeInvalidSyntax, Path: path}
	}
	p := normalize(path)

	var cur Node = s.Cwd
	if isAbs(p) {
		cur = s.FS.Root()
	}
	for _, seg := range strings.Split(p, pathSep) {
		switch seg {
		case "", ".":
			continue
		case "..":
			if parent := cur.Parent(); parent != nil {
				cur = parent
			}
			continue
		}
		dir, ok := cur.(*Directory)
		if !ok {
			return nil, &FSError{Code: CodeNotFound, Path: path}
		}
		child, ok := dir.Child(seg)
		if !ok {
			return nil, &FSError{Code: CodeNotFound, Path: path}
		}
		if allow != nil && !allow(child) {
			return nil, &FSError{Code: CodePermissionDenied, Path: path}
		}
		cur = child
	}
	return cur, nil
}

// resolveDir resolves path and requires a directory. A missing path reports
// missingCode so callers can distinguish NotFound from AncestorMissing.
func (s *Session) resolveDir(path string, missingCode ErrorCode) (*Directory, error) {
	node, err := s.Resolve(path)
	if err != nil {
		if CodeOf(err) == CodeNotFound {
			return nil, &FSError{Code: missingCode, Path: path}
		}
		return nil, err
	}
	dir, ok := node.(*Directory)
	if !ok {
		return nil, &FSError{Code: CodeNotDirectory, Path: path}
	}
	return dir, nil
}
