package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Defaults(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-rw-r--", DefaultFileMode.String())
	assert.Equal(t, "drwxr-x", DefaultDirMode.String())
	assert.True(t, DefaultDirMode.IsDir())
	assert.False(t, DefaultFileMode.IsDir())
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "drwxr-x"},
		{in: "-rw-r--"},
		{in: "-------"},
		{in: "drwxrwx"},
		{in: "rwxr-x", wantErr: true},
		{in: "xrwxr-x", wantErr: true},
		{in: "-wrxr-x", wantErr: true},
		{in: "drwxr-xx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			m, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, m.String())
		})
	}
}

func TestParseModeChange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    ModeChange
		wantErr bool
	}{
		{in: "u+x", want: ModeChange{Op: OpAdd, Owner: true, Bits: Triad(Exec)}},
		{in: "o-rw", want: ModeChange{Op: OpRemove, Other: true, Bits: Triad(Read | Write)}},
		{in: "a=r", want: ModeChange{Op: OpSet, Owner: true, Other: true, Bits: Triad(Read)}},
		{in: "uo=", want: ModeChange{Op: OpSet, Owner: true, Other: true}},
		{in: "uu+w", want: ModeChange{Op: OpAdd, Owner: true, Bits: Triad(Write)}},
		{in: "=rx", want: ModeChange{Op: OpSet, Owner: true, Other: true, Bits: Triad(Read | Exec)}},
		{in: "+w", want: ModeChange{Op: OpAdd, Owner: true, Other: true, Bits: Triad(Write)}},
		{in: "", wantErr: true},
		{in: "u", wantErr: true},
		{in: "u+-x", wantErr: true},
		{in: "g+x", wantErr: true},
		{in: "u+q", wantErr: true},
		{in: "u=r=w", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseModeChange(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeChange_Apply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		start  string
		change string
		want   string
	}{
		{name: "add owner exec", start: "-rw-r--", change: "u+x", want: "-rwxr--"},
		{name: "remove other read", start: "-rw-r--", change: "o-r", want: "-rw----"},
		{name: "set both", start: "drwxr-x", change: "=rx", want: "dr-xr-x"},
		{name: "clear all", start: "drwxr-x", change: "a=", want: "d------"},
		{name: "add is idempotent", start: "-rw-r--", change: "u+rw", want: "-rw-r--"},
		{name: "remove missing bit", start: "-r-----", change: "o-w", want: "-r-----"},
		{name: "other write on dir", start: "drwxr-x", change: "o+w", want: "drwxrwx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, err := ParseMode(tt.start)
			require.NoError(t, err)
			change, err := ParseModeChange(tt.change)
			require.NoError(t, err)
			assert.Equal(t, tt.want, change.Apply(start).String())
		})
	}
}

func TestModeChange_String(t *testing.T) {
	t.Parallel()
	change, err := ParseModeChange("=xr")
	require.NoError(t, err)
	assert.Equal(t, "a=rx", change.String())
}
