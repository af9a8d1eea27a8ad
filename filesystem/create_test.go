package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdir(t *testing.T) {
	t.Parallel()
	s := createSession(t)

	dir, err := s.Mkdir("/a", false)
	require.NoError(t, err)
	assert.Equal(t, "/a", dir.Path())
	assert.Equal(t, "root", dir.Owner())
	assert.Equal(t, "drwxr-x", dir.Mode().String())
	assert.Same(t, dir, mustResolve(t, s, "/a"))
}

func TestMkdir_Errors(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	createDir(t, s, "/a")
	createFile(t, s, "/f")

	tests := []struct {
		path string
		want error
	}{
		{path: "/a", want: ErrAlreadyExists},
		{path: "/f", want: ErrAlreadyExists},
		{path: "/x/y", want: ErrAncestorMissing},
		{path: "/f/y", want: ErrNotDirectory},
		{path: "/a/b$", want: ErrInvalidSyntax},
		{path: "", want: ErrInvalidSyntax},
	}
	for _, tt := range tests {
		_, err := s.Mkdir(tt.path, false)
		assert.ErrorIs(t, err, tt.want, tt.path)
		assert.Equal(t, "mkdir", err.(*FSError).Op, tt.path)
	}
}

func TestMkdir_PermissionDenied(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	createDir(t, s, "/locked/inner")
	chmod(t, s, "o-x", "/locked")

	asUser(s, "alice", func() {
		_, err := s.Mkdir("/a", false)
		assert.ErrorIs(t, err, ErrPermissionDenied, "root has no other write")

		_, err = s.Mkdir("/locked/inner/x", false)
		assert.ErrorIs(t, err, ErrPermissionDenied, "ancestor without execute")
	})
}

func TestMkdir_Parents(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	chmod(t, s, "o+w", "/")

	asUser(s, "alice", func() {
		c, err := s.Mkdir("a/b/c", true)
		require.NoError(t, err)
		assert.Equal(t, "/a/b/c", c.Path())

		for _, p := range []string{"/a", "/a/b", "/a/b/c"} {
			n := mustResolve(t, s, p)
			assert.Equal(t, DirKind, n.Kind(), p)
			assert.Equal(t, "alice", n.Owner(), p)
		}
	})

	dirs, files := s.FS.Stats()
	assert.Equal(t, 3, dirs)
	assert.Zero(t, files)
}

func TestMkdir_ParentsExisting(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	b := createDir(t, s, "/a/b")

	got, err := s.Mkdir("/a/b", true)
	require.NoError(t, err)
	assert.Same(t, b, got)

	got, err = s.Mkdir("/a/b/../b/c/../d", true)
	require.NoError(t, err)
	assert.Equal(t, "/a/b/d", got.Path())
	assert.Equal(t, []string{"d"}, childNames(b))
}

func TestMkdir_ParentsDotDotInMissingTail(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	u := createDir(t, s, "/home/u")
	require.NoError(t, s.Cd("/home/u"))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"past missing tail", "new/../../z", "/home/z"},
		{"back into existing", "new/../../u/k", "/home/u/k"},
		{"nested tail", "x/y/../../../w/v", "/home/w/v"},
	}
	for _, tt := range tests {
		got, err := s.Mkdir(tt.path, true)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got.Path(), tt.name)
		assert.Same(t, got, mustResolve(t, s, tt.want), tt.name)
	}
	assert.Equal(t, []string{"k"}, childNames(u))
}

func TestMkdir_ParentsThroughFile(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	createFile(t, s, "/f")

	_, err := s.Mkdir("/f/x/y", true)
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = s.Mkdir("/f", true)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMkdir_ParentsNoPartialCreate(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")

	asUser(s, "alice", func() {
		_, err := s.Mkdir("/x/y/z", true)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
	dirs, _ := s.FS.Stats()
	assert.Zero(t, dirs)
}

func TestTouch(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	chmod(t, s, "o+w", "/")

	asUser(s, "alice", func() {
		for _, name := range []string{"plain", "with space", "dash-dot.ext", "_under"} {
			f := createFile(t, s, name)
			got := mustResolve(t, s, name)
			assert.Same(t, f, got)
			assert.Equal(t, "alice", got.Owner())
			assert.Equal(t, "-rw-r--", got.Mode().String())
		}
	})
}

func TestTouch_ExistingIsNoop(t *testing.T) {
	t.Parallel()
	s := createSession(t)
	f := createFile(t, s, "/f")
	d := createDir(t, s, "/d")

	got, err := s.Touch("/f")
	require.NoError(t, err)
	assert.Equal(t, f.ID(), got.ID())

	got, err = s.Touch("/d")
	require.NoError(t, err)
	assert.Same(t, d, got)

	_, files := s.FS.Stats()
	assert.Equal(t, 1, files)
}

func TestTouch_Errors(t *testing.T) {
	t.Parallel()
	s := createSession(t, "alice")
	createFile(t, s, "/f")

	_, err := s.Touch("/missing/f")
	assert.ErrorIs(t, err, ErrAncestorMissing)

	_, err = s.Touch("/f/g")
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = s.Touch("/bad|name")
	assert.ErrorIs(t, err, ErrInvalidSyntax)

	asUser(s, "alice", func() {
		_, err := s.Touch("/new")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
