package filesystem

import (
	"testing"

	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/mocks"
	"github.com/stretchr/testify/require"
)

// createSession returns a root session on an empty tree knowing the given users.
func createSession(t *testing.T, users ...string) *Session {
	t.Helper()
	return NewSession(NewFS(), mocks.NewUsers(users...))
}

// createDir creates path and any missing parents as the current actor.
func createDir(t *testing.T, s *Session, path string) *Directory {
	t.Helper()
	dir, err := s.Mkdir(path, true)
	require.NoError(t, err)
	return dir
}

// createFile touches path as the current actor, creating missing parents first.
func createFile(t *testing.T, s *Session, path string) *File {
	t.Helper()
	if parent, _ := splitParent(path); parent != "." && parent != "/" {
		createDir(t, s, parent)
	}
	node, err := s.Touch(path)
	require.NoError(t, err)
	file, ok := node.(*File)
	require.True(t, ok, "%s is not a file", path)
	return file
}

// asUser runs fn with the session acting as user and restores the actor after.
func asUser(s *Session, user string, fn func()) {
	prev := s.User
	s.User = user
	defer func() { s.User = prev }()
	fn()
}

// chown changes ownership as root regardless of the current actor.
func chown(t *testing.T, s *Session, user, path string) {
	t.Helper()
	asUser(s, nautilus.RootUser, func() {
		_, err := s.Chown(user, path, false)
		require.NoError(t, err)
	})
}

// chmod applies mode as root regardless of the current actor.
func chmod(t *testing.T, s *Session, mode, path string) {
	t.Helper()
	asUser(s, nautilus.RootUser, func() {
		_, err := s.Chmod(mode, path, false)
		require.NoError(t, err)
	})
}

func mustResolve(t *testing.T, s *Session, path string) Node {
	t.Helper()
	node, err := s.Resolve(path)
	require.NoError(t, err)
	return node
}

func childNames(d *Directory) []string {
	var names []string
	for _, ch := range d.Children() {
		names = append(names, ch.Name())
	}
	return names
}
