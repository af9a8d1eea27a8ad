package filesystem

import (
	"github.com/brettbedarf/nautilus/internal/util"
)

// Remove detaches the file at path. The actor needs write on the file, execute
// on its parent and every ancestor, and write on its parent.
func (s *Session) Remove(path string) error {
	const op = "rm"
	logger := util.GetLogger("Remove")

	if err := validatePath(path); err != nil {
		return withOp(op, err)
	}
	node, err := s.Resolve(path)
	if err != nil {
		return withOp(op, err)
	}
	file, ok := node.(*File)
	if !ok {
		return newError(op, CodeIsDirectory, path)
	}
	parent := file.Parent()
	if err := s.require(op, file, Write, path); err != nil {
		return err
	}
	if err := s.requireTraversable(op, parent, path); err != nil {
		return err
	}
	if err := s.require(op, parent, Write, path); err != nil {
		return err
	}

	parent.RemoveChild(file)
	logger.Debug().Str("path", path).Str("user", s.User).Msg("Removed file")
	return nil
}

// RemoveDir detaches the empty directory at path. It refuses the working
// directory and the root. The actor needs execute on the parent and every
// ancestor and write on the parent.
func (s *Session) RemoveDir(path string) error {
	const op = "rmdir"
	logger := util.GetLogger("RemoveDir")

	if err := validatePath(path); err != nil {
		return withOp(op, err)
	}
	node, err := s.Resolve(path)
	if err != nil {
		return withOp(op, err)
	}
	dir, ok := node.(*Directory)
	if !ok {
		return newError(op, CodeNotDirectory, path)
	}
	if dir.Len() > 0 {
		return newError(op, CodeNotEmpty, path)
	}
	if dir == s.Cwd || dir.IsRoot() {
		return newError(op, CodeInUse, path)
	}
	parent := dir.Parent()
	if err := s.requireTraversable(op, parent, path); err != nil {
		return err
	}
	if err := s.require(op, parent, Write, path); err != nil {
		return err
	}

	parent.RemoveChild(dir)
	logger.Debug().Str("path", path).Str("user", s.User).Msg("Removed directory")
	return nil
}
