package filesystem

import (
	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/util"
)

// FileSystem owns the node tree. It is not safe for concurrent use; commands
// are applied one at a time through a [Session].
type FileSystem struct {
	root *Directory // Root of node tree
}

// NewFS creates an empty tree whose root "/" is owned by root with drwxr-x.
func NewFS() *FileSystem {
	logger := util.GetLogger("NewFS")
	fs := &FileSystem{root: newRoot(nautilus.RootUser, DefaultDirMode)}
	logger.Trace().Str("root", fs.root.ID().String()).Msg("Created filesystem")
	return fs
}

// Root returns the root directory.
func (fs *FileSystem) Root() *Directory {
	return fs.root
}

// Stats returns the number of directories and files below the root.
func (fs *FileSystem) Stats() (dirs, files int) {
	fs.root.Walk(func(n Node) {
		switch n.(type) {
		case *Directory:
			dirs++
		case *File:
			files++
		}
	})
	return dirs, files
}
