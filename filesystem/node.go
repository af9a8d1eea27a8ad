package filesystem

import (
	"github.com/google/uuid"
)

// NodeKind tags the two Node variants.
type NodeKind uint8

const (
	FileKind NodeKind = iota
	DirKind
)

func (k NodeKind) String() string {
	if k == DirKind {
		return "directory"
	}
	return "file"
}

// Node is either a *File or a *Directory. Directory-only members live on
// *Directory; callers switch on the concrete type.
//
// Node performs no validation. It is plain structural storage trusted by the
// resolver, guard and operations built on top of it.
type Node interface {
	ID() uuid.UUID
	Name() string
	Kind() NodeKind
	// Parent returns the containing directory. The root returns itself.
	Parent() *Directory
	// Path is derived by walking parent links, so it always matches the
	// node's live position.
	Path() string
	Owner() string
	Mode() Mode

	base() *entry
}

// entry holds the attributes shared by both variants
type entry struct {
	id     uuid.UUID
	name   string
	parent *Directory // nil only while detached
	owner  string
	mode   Mode
}

func newEntry(name, owner string, mode Mode) entry {
	return entry{id: uuid.New(), name: name, owner: owner, mode: mode}
}

func (e *entry) base() *entry { return e }

// ID is unique per node; copies and moves always receive a fresh one.
func (e *entry) ID() uuid.UUID { return e.id }

func (e *entry) Name() string { return e.name }

func (e *entry) Owner() string { return e.owner }

func (e *entry) Mode() Mode { return e.mode }

func (e *entry) Parent() *Directory { return e.parent }

func (e *entry) isRoot() bool {
	return e.parent != nil && &e.parent.entry == e
}

// Path returns the absolute path of the node. Detached nodes return their bare name.
func (e *entry) Path() string {
	if e.isRoot() {
		return "/"
	}
	if e.parent == nil {
		return e.name
	}
	pPath := e.parent.Path()
	if pPath == "/" {
		return pPath + e.name
	}
	return pPath + "/" + e.name
}

// File is a leaf node.
type File struct {
	entry
}

// NewFile creates a detached file. Attach it with [Directory.AddChild].
func NewFile(name, owner string, mode Mode) *File {
	return &File{entry: newEntry(name, owner, mode&^ModeDir)}
}

func (f *File) Kind() NodeKind { return FileKind }

// Directory holds its children in insertion order.
type Directory struct {
	entry
	children []Node
}

// NewDirectory creates a detached directory. Attach it with [Directory.AddChild].
func NewDirectory(name, owner string, mode Mode) *Directory {
	return &Directory{entry: newEntry(name, owner, mode|ModeDir)}
}

// newRoot creates the root directory whose parent is itself.
func newRoot(owner string, mode Mode) *Directory {
	root := NewDirectory("/", owner, mode)
	root.parent = root
	return root
}

func (d *Directory) Kind() NodeKind { return DirKind }

// IsRoot reports whether d is the self-parented root.
func (d *Directory) IsRoot() bool { return d.isRoot() }

// AddChild appends child and sets its parent to d. The child is returned for chaining.
func (d *Directory) AddChild(child Node) Node {
	child.base().parent = d
	d.children = append(d.children, child)
	return child
}

// Child returns the first child named name.
func (d *Directory) Child(name string) (Node, bool) {
	for _, ch := range d.children {
		if ch.Name() == name {
			return ch, true
		}
	}
	return nil, false
}

// Children returns a copy of the children in insertion order.
func (d *Directory) Children() []Node {
	out := make([]Node, len(d.children))
	copy(out, d.children)
	return out
}

// Len returns the number of children.
func (d *Directory) Len() int { return len(d.children) }

// RemoveChild detaches child from d, clearing its parent link.
// Returns false if child was not one of d's children.
func (d *Directory) RemoveChild(child Node) bool {
	for i, ch := range d.children {
		if ch == child {
			d.children = append(d.children[:i], d.children[i+1:]...)
			child.base().parent = nil
			return true
		}
	}
	return false
}

// Walk visits every descendant of d depth-first in pre-order. d itself is not visited.
func (d *Directory) Walk(fn func(Node)) {
	for _, ch := range d.children {
		fn(ch)
		if sub, ok := ch.(*Directory); ok {
			sub.Walk(fn)
		}
	}
}

var (
	_ Node = (*File)(nil)
	_ Node = (*Directory)(nil)
)
