package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChmod_SetBoth(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	a := createDir(t, s, "/a")
	chown(t, s, "alice", "/a")

	asUser(s, "alice", func() {
		report, err := s.Chmod("=rx", "/a", false)
		require.NoError(t, err)
		require.Len(t, report.Changed, 1)
		assert.Empty(t, report.Skipped)

		assert.False(t, s.CheckCapability(a, Write))
		assert.True(t, s.CheckCapability(a, Exec))
	})
	assert.Equal(t, "dr-xr-x", a.Mode().String())
}

func TestChmod_NotOwner(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	f := createFile(t, s, "/f")
	chmod(t, s, "o+w", "/f")

	asUser(s, "alice", func() {
		require.True(t, s.CheckCapability(f, Write))
		_, err := s.Chmod("o+x", "/f", false)
		assert.ErrorIs(t, err, ErrNotPermitted)
	})
	assert.Equal(t, "-rw-rw-", f.Mode().String())
}

func TestChmod_Errors(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	createDir(t, s, "/locked/mine")
	chown(t, s, "alice", "/locked/mine")
	chmod(t, s, "o-x", "/locked")

	_, err := s.Chmod("u+z", "/locked", false)
	assert.ErrorIs(t, err, ErrInvalidSyntax)
	assert.EqualError(t, err, "chmod: Invalid mode")

	_, err = s.Chmod("u+x", "/nope", false)
	assert.ErrorIs(t, err, ErrNotFound)

	asUser(s, "alice", func() {
		_, err := s.Chmod("u+x", "/locked/mine", false)
		assert.ErrorIs(t, err, ErrPermissionDenied, "parent not traversable")
	})
}

func TestChmod_RecursiveSkipsFailures(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	d := createDir(t, s, "/d")
	mine := createFile(t, s, "/d/mine")
	theirs := createFile(t, s, "/d/theirs")
	chown(t, s, "alice", "/d")
	chown(t, s, "alice", "/d/mine")

	asUser(s, "alice", func() {
		// Removing owner execute on /d must not hide /d/mine, checks run
		// against the tree as it was before the call.
		report, err := s.Chmod("a-x", "/d", true)
		require.NoError(t, err)
		assert.Len(t, report.Changed, 2)
		require.Len(t, report.Skipped, 1)
		assert.ErrorIs(t, report.Skipped[0], ErrNotPermitted)
	})

	assert.Equal(t, "drw-r--", d.Mode().String())
	assert.Equal(t, "-rw-r--", mine.Mode().String())
	assert.Equal(t, "-rw-r--", theirs.Mode().String())

	// Now /d lacks execute, so its children are unreachable for alice.
	asUser(s, "alice", func() {
		report, err := s.Chmod("u+x", "/d", true)
		require.NoError(t, err)
		assert.Len(t, report.Changed, 1)
		require.Len(t, report.Skipped, 2)
		assert.ErrorIs(t, report.Skipped[0], ErrPermissionDenied)
		assert.ErrorIs(t, report.Skipped[1], ErrNotPermitted)
	})
	assert.Equal(t, "drwxr--", d.Mode().String())
	assert.Equal(t, "-rw-r--", mine.Mode().String())
}

func TestChmod_NonRecursiveFailureAborts(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	createFile(t, s, "/f")

	asUser(s, "alice", func() {
		report, err := s.Chmod("u+x", "/f", false)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrNotPermitted)
	})
}

func TestChown(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	a := createDir(t, s, "/a")
	f := createFile(t, s, "/a/f")

	report, err := s.Chown("alice", "/a", false)
	require.NoError(t, err)
	assert.Len(t, report.Changed, 1)
	assert.Equal(t, "alice", a.Owner())
	assert.Equal(t, "root", f.Owner())

	report, err = s.Chown("alice", "/a", true)
	require.NoError(t, err)
	assert.Len(t, report.Changed, 2)
	assert.Equal(t, "alice", f.Owner())

	_, err = s.Chown("root", "/a/f", false)
	require.NoError(t, err)
	assert.Equal(t, "root", f.Owner())
}

func TestChown_Errors(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	createFile(t, s, "/f")

	_, err := s.Chown("mallory", "/f", false)
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = s.Chown("alice", "/nope", false)
	assert.ErrorIs(t, err, ErrNotFound)

	asUser(s, "alice", func() {
		_, err := s.Chown("alice", "/f", false)
		assert.ErrorIs(t, err, ErrNotPermitted)
	})
	assert.Equal(t, "root", mustResolve(t, s, "/f").Owner())
}

func TestChown_NilUsers(t *testing.T) {
	t.Parallel()
	s := NewSession(NewFS(), nil)
	createFile(t, s, "/f")

	_, err := s.Chown("alice", "/f", false)
	assert.ErrorIs(t, err, ErrInvalidUser)
	_, err = s.Chown("root", "/f", false)
	assert.NoError(t, err)
}
