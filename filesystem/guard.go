package filesystem

// CheckCapability reports whether the actor holds c on n. Root is always
// granted. Otherwise the owner triad applies when the actor owns n and the
// other triad applies to everybody else.
func (s *Session) CheckCapability(n Node, c Capability) bool {
	if s.IsRoot() {
		return true
	}
	m := n.Mode()
	triad := m.Other()
	if n.Owner() == s.User {
		triad = m.Owner()
	}
	return triad.Has(c)
}

// Ancestors returns the directories from n's parent up to and including the
// root, found by walking parent links. The root has no ancestors.
func Ancestors(n Node) []*Directory {
	var out []*Directory
	if d, ok := n.(*Directory); ok && d.IsRoot() {
		return out
	}
	for d := n.Parent(); d != nil; d = d.Parent() {
		out = append(out, d)
		if d.IsRoot() {
			break
		}
	}
	return out
}

// traversable reports whether dir and all of its ancestors grant execute.
func (s *Session) traversable(dir *Directory) bool {
	if !s.CheckCapability(dir, Exec) {
		return false
	}
	for _, d := range Ancestors(dir) {
		if !s.CheckCapability(d, Exec) {
			return false
		}
	}
	return true
}

// requireTraversable returns PermissionDenied unless dir can be descended into.
func (s *Session) requireTraversable(op string, dir *Directory, path string) error {
	if s.traversable(dir) {
		return nil
	}
	return newError(op, CodePermissionDenied, path)
}

// require returns PermissionDenied unless the actor holds c on n.
func (s *Session) require(op string, n Node, c Capability, path string) error {
	if s.CheckCapability(n, c) {
		return nil
	}
	return newError(op, CodePermissionDenied, path)
}
