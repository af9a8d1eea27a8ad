package filesystem

import (
	"strings"

	"github.com/brettbedarf/nautilus/internal/util"
)

// Mkdir creates the directory at path owned by the actor with [DefaultDirMode].
//
// Without parents the target must not exist, its parent must exist, the parent
// and every ancestor must grant execute and the parent must grant write.
//
// With parents (mkdir -p) every missing directory on the way is created as
// well. Existing directories passed through must grant execute and the deepest
// existing one must grant write. An existing directory at path is returned
// unchanged. Nothing is created unless every check passes.
func (s *Session) Mkdir(path string, parents bool) (*Directory, error) {
	const op = "mkdir"
	logger := util.GetLogger("Mkdir")

	if err := validatePath(path); err != nil {
		return nil, withOp(op, err)
	}
	if parents {
		return s.mkdirAll(path)
	}

	if _, err := s.Resolve(path); err == nil {
		return nil, newError(op, CodeAlreadyExists, path)
	}
	parentPath, name := splitParent(path)
	parent, err := s.resolveDir(parentPath, CodeAncestorMissing)
	if err != nil {
		return nil, withOp(op, err)
	}
	if err := s.requireTraversable(op, parent, path); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Ancestor not traversable")
		return nil, err
	}
	if err := s.require(op, parent, Write, path); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Parent not writable")
		return nil, err
	}

	dir := NewDirectory(name, s.User, DefaultDirMode)
	parent.AddChild(dir)
	logger.Debug().Str("path", dir.Path()).Str("owner", s.User).Msg("Created directory")
	return dir, nil
}

// mkdirAll plans the walk first and only then creates the missing tail.
func (s *Session) mkdirAll(path string) (*Directory, error) {
	const op = "mkdir"
	logger := util.GetLogger("Mkdir")

	p := normalize(path)
	cur := s.Cwd
	if isAbs(p) {
		cur = s.FS.Root()
	}

	segs := strings.Split(p, pathSep)
	var missing []string
	for i, seg := range segs {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(missing) > 0 {
				missing = missing[:len(missing)-1]
			} else {
				cur = cur.Parent()
			}
			continue
		}
		if len(missing) > 0 {
			missing = append(missing, seg)
			continue
		}
		child, ok := cur.Child(seg)
		if !ok {
			missing = append(missing, seg)
			continue
		}
		dir, ok := child.(*Directory)
		if !ok {
			code := CodeNotDirectory
			if i == len(segs)-1 {
				code = CodeAlreadyExists
			}
			return nil, newError(op, code, path)
		}
		cur = dir
	}

	if len(missing) == 0 {
		logger.Trace().Str("path", path).Msg("Directory already exists")
		return cur, nil
	}
	if err := s.requireTraversable(op, cur, path); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Ancestor not traversable")
		return nil, err
	}
	if err := s.require(op, cur, Write, path); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Parent not writable")
		return nil, err
	}

	for _, name := range missing {
		dir := NewDirectory(name, s.User, DefaultDirMode)
		cur.AddChild(dir)
		cur = dir
	}
	logger.Debug().Str("path", cur.Path()).Str("owner", s.User).Int("created", len(missing)).Msg("Created directories")
	return cur, nil
}

// Touch creates an empty file at path owned by the actor with [DefaultFileMode].
// If path already exists it is returned untouched and no error is reported.
func (s *Session) Touch(path string) (Node, error) {
	const op = "touch"
	logger := util.GetLogger("Touch")

	if err := validatePath(path); err != nil {
		return nil, withOp(op, err)
	}
	if existing, err := s.Resolve(path); err == nil {
		logger.Trace().Str("path", path).Msg("Already exists")
		return existing, nil
	}
	parentPath, name := splitParent(path)
	parent, err := s.resolveDir(parentPath, CodeAncestorMissing)
	if err != nil {
		return nil, withOp(op, err)
	}
	if err := s.requireTraversable(op, parent, path); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Ancestor not traversable")
		return nil, err
	}
	if err := s.require(op, parent, Write, path); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Parent not writable")
		return nil, err
	}

	file := s.createFile(parent, name)
	logger.Debug().Str("path", file.Path()).Str("owner", s.User).Msg("Created file")
	return file, nil
}
