package filesystem

import (
	"fmt"

	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/util"
)

// AddDirNode provisions a directory from a seed request, creating missing
// parents on the way. Only root may provision. Owner and Perms are applied
// when set.
func (s *Session) AddDirNode(req *nautilus.DirCreateRequest) (*Directory, error) {
	const op = "provision"
	logger := util.GetLogger("Provision")

	mode, err := s.checkRequest(op, &req.NodeRequest, true)
	if err != nil {
		return nil, err
	}
	dir, err := s.Mkdir(req.Path, true)
	if err != nil {
		return nil, err
	}
	if err := s.applyRequest(op, dir, &req.NodeRequest, mode); err != nil {
		return nil, err
	}
	logger.Debug().Str("path", dir.Path()).Str("owner", dir.Owner()).Str("mode", dir.Mode().String()).Msg("Provisioned directory")
	return dir, nil
}

// AddFileNode provisions a file from a seed request. Missing parent
// directories are created with default attributes.
func (s *Session) AddFileNode(req *nautilus.FileCreateRequest) (*File, error) {
	const op = "provision"
	logger := util.GetLogger("Provision")

	mode, err := s.checkRequest(op, &req.NodeRequest, false)
	if err != nil {
		return nil, err
	}
	if existing, err := s.Resolve(req.Path); err == nil && existing.Kind() == DirKind {
		return nil, &FSError{Code: CodeIsDirectory, Op: op, Path: req.Path}
	}
	if parentPath, _ := splitParent(req.Path); parentPath != "." && parentPath != "/" {
		if _, err := s.Mkdir(parentPath, true); err != nil {
			return nil, err
		}
	}
	node, err := s.Touch(req.Path)
	if err != nil {
		return nil, err
	}
	file := node.(*File)
	if err := s.applyRequest(op, file, &req.NodeRequest, mode); err != nil {
		return nil, err
	}
	logger.Debug().Str("path", file.Path()).Str("owner", file.Owner()).Str("mode", file.Mode().String()).Msg("Provisioned file")
	return file, nil
}

// checkRequest validates everything about req that can fail, before anything
// is created. It returns the parsed mode, or 0 when Perms is empty.
func (s *Session) checkRequest(op string, req *nautilus.NodeRequest, dir bool) (Mode, error) {
	if !s.IsRoot() {
		return 0, newError(op, CodeNotPermitted, req.Path)
	}
	if err := validatePath(req.Path); err != nil {
		return 0, withOp(op, err)
	}
	if req.Owner != "" && !s.knownUser(req.Owner) {
		return 0, &FSError{Code: CodeInvalidUser, Op: op, Path: req.Path}
	}
	if req.Perms == "" {
		return 0, nil
	}
	mode, err := parsePerms(req.Perms, dir)
	if err != nil {
		return 0, &FSError{Code: CodeInvalidSyntax, Op: op, Path: req.Path, Message: "Invalid mode"}
	}
	return mode, nil
}

// applyRequest replays chown and chmod on n so that provisioned attributes go
// through the same operations as the shell.
func (s *Session) applyRequest(op string, n Node, req *nautilus.NodeRequest, mode Mode) error {
	path := n.Path()
	if req.Owner != "" {
		if _, err := s.Chown(req.Owner, path, false); err != nil {
			return withOp(op, err)
		}
	}
	if req.Perms == "" {
		return nil
	}
	for _, change := range []ModeChange{
		{Op: OpSet, Owner: true, Bits: mode.Owner()},
		{Op: OpSet, Other: true, Bits: mode.Other()},
	} {
		if _, err := s.Chmod(change.String(), path, false); err != nil {
			return withOp(op, err)
		}
	}
	return nil
}

// parsePerms accepts the 6 character "rw-r--" triad pair or the full 7
// character form. A type character that disagrees with the node is rejected.
func parsePerms(perms string, dir bool) (Mode, error) {
	switch len(perms) {
	case 6:
		owner, err := ParseTriad(perms[:3])
		if err != nil {
			return 0, err
		}
		other, err := ParseTriad(perms[3:])
		if err != nil {
			return 0, err
		}
		return NewMode(dir, owner, other), nil
	case 7:
		m, err := ParseMode(perms)
		if err != nil {
			return 0, err
		}
		if m.IsDir() != dir {
			return 0, fmt.Errorf("permission string %q does not match node type", perms)
		}
		return m, nil
	}
	return 0, fmt.Errorf("invalid permission string %q", perms)
}
