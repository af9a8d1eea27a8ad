package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	assert.True(t, s.IsRoot())
	assert.Equal(t, "/", s.Pwd())
	assert.Same(t, s.FS.Root(), s.Cwd)
}

func TestCd(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	b := createDir(t, s, "/a/b")

	require.NoError(t, s.Cd("/a/b"))
	assert.Same(t, b, s.Cwd)
	assert.Equal(t, "/a/b", s.Pwd())

	require.NoError(t, s.Cd("../.."))
	assert.Equal(t, "/", s.Pwd())

	require.NoError(t, s.Cd("a"))
	assert.Equal(t, "/a", s.Pwd())
}

func TestCd_Errors(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	createFile(t, s, "/a/f")
	createDir(t, s, "/a/b")
	chmod(t, s, "o-x", "/a")

	err := s.Cd("/a/f")
	assert.ErrorIs(t, err, ErrNotDirectory)
	assert.EqualError(t, err, "cd: Destination is a file")

	assert.ErrorIs(t, s.Cd("/nope"), ErrNotFound)
	assert.ErrorIs(t, s.Cd(""), ErrInvalidSyntax)

	asUser(s, "alice", func() {
		assert.ErrorIs(t, s.Cd("/a/b"), ErrPermissionDenied)
	})
	assert.Equal(t, "/", s.Pwd(), "failed cd leaves cwd alone")
}

func TestScenario_SharedDataDirectory(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")

	_, err := run(s, "mkdir /data")
	require.NoError(t, err)

	s.User = "alice"
	_, err = run(s, "touch /data/f.txt")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	s.User = "root"
	_, err = run(s, "chmod +w /data")
	require.NoError(t, err)

	s.User = "alice"
	res, err := run(s, "touch /data/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Node.Owner())
	assert.Equal(t, "/data/f.txt", res.Node.Path())
}
