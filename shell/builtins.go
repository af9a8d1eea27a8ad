package shell

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/brettbedarf/nautilus"
	"github.com/brettbedarf/nautilus/filesystem"
	"github.com/brettbedarf/nautilus/users"
)

// CommandNames returns every command the shell accepts, builtins and
// filesystem commands together, sorted.
func CommandNames() []string {
	names := append(filesystem.CommandNames(), slices.Collect(maps.Keys(builtins))...)
	slices.Sort(names)
	return names
}

// builtin commands act on the shell itself rather than the tree. They report
// whether the shell should exit.
type builtin func(sh *Shell, args []string) (bool, error)

var builtins = map[string]builtin{
	"exit":    runExit,
	"su":      runSu,
	"adduser": runAddUser,
	"deluser": runDelUser,
}

const rootWarning = `WARNING: You are just about to delete the root account
Usually this is never required as it may render the whole system unusable
If you really want this, call deluser with parameter --force
(but this ` + "`deluser`" + ` does not allow ` + "`--force`" + `, haha)
Stopping now without having performed any action`

func shellError(op string, code filesystem.ErrorCode, msg string) error {
	return &filesystem.FSError{Code: code, Op: op, Message: msg}
}

func runExit(sh *Shell, args []string) (bool, error) {
	if len(args) != 0 {
		return false, shellError("exit", filesystem.CodeInvalidSyntax, "")
	}
	fmt.Fprintf(sh.out, "bye, %s\n", sh.session.User)
	return true, nil
}

// runSu switches the actor. Without an argument it switches to root. No
// password is asked for.
func runSu(sh *Shell, args []string) (bool, error) {
	switch len(args) {
	case 0:
		sh.session.User = nautilus.RootUser
	case 1:
		if !sh.users.Exists(args[0]) {
			return false, shellError("su", filesystem.CodeInvalidUser, "")
		}
		sh.session.User = args[0]
	default:
		return false, shellError("su", filesystem.CodeInvalidSyntax, "")
	}
	sh.logger.Debug().Str("user", sh.session.User).Msg("Switched user")
	return false, nil
}

func runAddUser(sh *Shell, args []string) (bool, error) {
	const op = "adduser"
	if !sh.session.IsRoot() {
		return false, shellError(op, filesystem.CodeNotPermitted, "")
	}
	if len(args) != 1 {
		return false, shellError(op, filesystem.CodeInvalidSyntax, "")
	}
	err := sh.users.Add(args[0])
	switch {
	case errors.Is(err, users.ErrUserExists):
		return false, shellError(op, filesystem.CodeAlreadyExists, "The user already exists")
	case errors.Is(err, users.ErrInvalidName):
		return false, shellError(op, filesystem.CodeInvalidSyntax, "")
	}
	return false, err
}

func runDelUser(sh *Shell, args []string) (bool, error) {
	const op = "deluser"
	if !sh.session.IsRoot() {
		return false, shellError(op, filesystem.CodeNotPermitted, "")
	}
	if len(args) != 1 {
		return false, shellError(op, filesystem.CodeInvalidSyntax, "")
	}
	err := sh.users.Remove(args[0])
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		return false, shellError(op, filesystem.CodeInvalidUser, "The user does not exist")
	case errors.Is(err, users.ErrRootAccount):
		fmt.Fprintln(sh.out, rootWarning)
		return false, nil
	}
	return false, err
}
