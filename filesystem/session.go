package filesystem

import (
	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/util"
)

// Session is the resolution context every operation runs against: the tree,
// the acting user, the known accounts and the working directory.
//
// Operations read User and Cwd but never change them; only [Session.Cd] and the
// shell's su move them between commands.
type Session struct {
	FS    *FileSystem
	User  string
	Users nautilus.UserLookup
	Cwd   *Directory
}

// NewSession starts a session as root in "/".
func NewSession(fs *FileSystem, users nautilus.UserLookup) *Session {
	return &Session{
		FS:    fs,
		User:  nautilus.RootUser,
		Users: users,
		Cwd:   fs.Root(),
	}
}

// IsRoot reports whether the actor is the privileged root user.
func (s *Session) IsRoot() bool {
	return s.User == nautilus.RootUser
}

// Pwd returns the working directory path.
func (s *Session) Pwd() string {
	return s.Cwd.Path()
}

// Cd changes the working directory. Every directory named along the route
// must grant execute.
func (s *Session) Cd(path string) error {
	const op = "cd"
	logger := util.GetLogger("Cd")

	if err := validatePath(path); err != nil {
		return withOp(op, err)
	}
	node, err := s.Resolve(path)
	if err != nil {
		return withOp(op, err)
	}
	dir, ok := node.(*Directory)
	if !ok {
		return &FSError{Code: CodeNotDirectory, Op: op, Path: path, Message: "Destination is a file"}
	}
	if _, err := s.ResolveRoute(path, Exec); err != nil {
		logger.Debug().Str("path", path).Str("user", s.User).Msg("Traversal denied")
		return withOp(op, err)
	}
	s.Cwd = dir
	logger.Trace().Str("cwd", dir.Path()).Msg("Changed directory")
	return nil
}
