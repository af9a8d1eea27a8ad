// Package users keeps the set of known account names. The filesystem only
// reads it through nautilus.UserLookup; the shell's adduser and deluser
// commands mutate it.
package users

import (
	"errors"
	"slices"

	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/internal/util"
	"github.com/puzpuzpuz/xsync/v4"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user does not exist")
	ErrRootAccount  = errors.New("cannot remove root")
	ErrInvalidName  = errors.New("invalid user name")
)

// Registry is the set of known accounts. root is always present.
type Registry struct {
	names *xsync.Map[string, struct{}]
}

// NewRegistry creates a registry holding root plus seed. Invalid or
// duplicate seed names are ignored.
func NewRegistry(seed ...string) *Registry {
	r := &Registry{names: xsync.NewMap[string, struct{}]()}
	r.names.Store(nautilus.RootUser, struct{}{})
	for _, name := range seed {
		if err := r.Add(name); err != nil && !errors.Is(err, ErrUserExists) {
			logger := util.GetLogger("Users")
			logger.Warn().Err(err).Str("user", name).Msg("Ignoring seed user")
		}
	}
	return r
}

// ValidName reports whether name can be used as an account name: non-empty
// and free of whitespace, ':' and '/'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch r {
		case ' ', '\t', '\n', ':', '/':
			return false
		}
	}
	return true
}

// Add registers name.
func (r *Registry) Add(name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	if _, loaded := r.names.LoadOrStore(name, struct{}{}); loaded {
		return ErrUserExists
	}
	logger := util.GetLogger("Users")
	logger.Debug().Str("user", name).Msg("Added user")
	return nil
}

// Remove forgets name. root can never be removed.
func (r *Registry) Remove(name string) error {
	if name == nautilus.RootUser {
		return ErrRootAccount
	}
	if _, loaded := r.names.LoadAndDelete(name); !loaded {
		return ErrUserNotFound
	}
	logger := util.GetLogger("Users")
	logger.Debug().Str("user", name).Msg("Removed user")
	return nil
}

// Exists implements nautilus.UserLookup.
func (r *Registry) Exists(name string) bool {
	_, ok := r.names.Load(name)
	return ok
}

// List returns all account names sorted.
func (r *Registry) List() []string {
	out := make([]string, 0, r.names.Size())
	r.names.Range(func(name string, _ struct{}) bool {
		out = append(out, name)
		return true
	})
	slices.Sort(out)
	return out
}

var _ nautilus.UserLookup = (*Registry)(nil)
