package filesystem

import (
	"github.com/brettbedarf/nautilus/internal/util"
)

// checkDestination verifies dst is free and its parent is an existing directory.
func (s *Session) checkDestination(op, dst string) (*Directory, string, error) {
	if existing, err := s.Resolve(dst); err == nil {
		if existing.Kind() == DirKind {
			return nil, "", &FSError{Code: CodeIsDirectory, Op: op, Path: dst, Message: "Destination is a directory"}
		}
		return nil, "", newError(op, CodeAlreadyExists, dst)
	}
	parentPath, name := splitParent(dst)
	parent, err := s.resolveDir(parentPath, CodeNotFound)
	if err != nil {
		return nil, "", withOp(op, err)
	}
	return parent, name, nil
}

// resolveSourceFile resolves src and requires a file.
func (s *Session) resolveSourceFile(op, src string) (*File, error) {
	node, err := s.Resolve(src)
	if err != nil {
		return nil, withOp(op, err)
	}
	file, ok := node.(*File)
	if !ok {
		return nil, &FSError{Code: CodeIsDirectory, Op: op, Path: src, Message: "Source is a directory"}
	}
	return file, nil
}

// Copy creates a new file at dst with a fresh identity, the actor as owner and
// [DefaultFileMode]. src is left untouched.
//
// Checks, in order: src is an existing file, dst does not exist, dst's parent is
// an existing directory, read on src, execute on src's ancestors, execute on
// dst's parent and its ancestors, write on dst's parent.
func (s *Session) Copy(src, dst string) (*File, error) {
	const op = "cp"
	logger := util.GetLogger("Copy")

	if err := validatePath(src); err != nil {
		return nil, withOp(op, err)
	}
	if err := validatePath(dst); err != nil {
		return nil, withOp(op, err)
	}
	file, err := s.resolveSourceFile(op, src)
	if err != nil {
		return nil, err
	}
	parent, name, err := s.checkDestination(op, dst)
	if err != nil {
		return nil, err
	}
	if err := s.require(op, file, Read, src); err != nil {
		return nil, err
	}
	if err := s.requireTraversable(op, file.Parent(), src); err != nil {
		return nil, err
	}
	if err := s.requireTraversable(op, parent, dst); err != nil {
		return nil, err
	}
	if err := s.require(op, parent, Write, dst); err != nil {
		return nil, err
	}

	cp := s.createFile(parent, name)
	logger.Debug().Str("src", file.Path()).Str("dst", cp.Path()).Str("owner", s.User).Msg("Copied file")
	return cp, nil
}

// Move relocates the file at src to dst. It is a create-then-detach pair: the
// new file has a fresh identity, the actor as owner and [DefaultFileMode], and
// the original is detached from its parent. Both steps happen only after every
// check has passed.
//
// Checks, in order: dst is not a file, src exists, dst is not a directory, src
// is a file, dst's parent is an existing directory, execute on src's parent and its ancestors, write on
// src's parent, execute on dst's parent and its ancestors, write on dst's parent.
func (s *Session) Move(src, dst string) (*File, error) {
	const op = "mv"
	logger := util.GetLogger("Move")

	if err := validatePath(src); err != nil {
		return nil, withOp(op, err)
	}
	if err := validatePath(dst); err != nil {
		return nil, withOp(op, err)
	}
	existing, dstErr := s.Resolve(dst)
	if dstErr == nil && existing.Kind() == FileKind {
		return nil, newError(op, CodeAlreadyExists, dst)
	}
	if _, err := s.Resolve(src); err != nil {
		return nil, withOp(op, err)
	}
	if dstErr == nil && existing.Kind() == DirKind {
		return nil, &FSError{Code: CodeIsDirectory, Op: op, Path: dst, Message: "Destination is a directory"}
	}
	file, err := s.resolveSourceFile(op, src)
	if err != nil {
		return nil, err
	}
	parent, name, err := s.checkDestination(op, dst)
	if err != nil {
		return nil, err
	}
	srcParent := file.Parent()
	if err := s.requireTraversable(op, srcParent, src); err != nil {
		return nil, err
	}
	if err := s.require(op, srcParent, Write, src); err != nil {
		return nil, err
	}
	if err := s.requireTraversable(op, parent, dst); err != nil {
		return nil, err
	}
	if err := s.require(op, parent, Write, dst); err != nil {
		return nil, err
	}

	moved := s.createFile(parent, name)
	srcParent.RemoveChild(file)
	logger.Debug().Str("src", src).Str("dst", moved.Path()).Str("owner", s.User).Msg("Moved file")
	return moved, nil
}

// createFile attaches a new file owned by the actor. Callers validate first.
func (s *Session) createFile(parent *Directory, name string) *File {
	f := NewFile(name, s.User, DefaultFileMode)
	parent.AddChild(f)
	return f
}
