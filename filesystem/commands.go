package filesystem

import (
	"maps"
	"slices"
	"strings"
)

// Result is what an argument-list command hands back to its dispatcher.
type Result struct {
	Node    Node     // created or changed node, if any
	Lines   []string // output lines for ls and pwd
	Skipped []error  // per-entry failures of chmod -r / chown -r
}

// Command is the argument-list entry point of one operation. Argument shape is
// validated before anything is resolved; a bad shape is InvalidSyntax.
type Command func(s *Session, args []string) (*Result, error)

var commands = map[string]Command{
	"pwd":   runPwd,
	"cd":    runCd,
	"mkdir": runMkdir,
	"touch": runTouch,
	"cp":    runCopy,
	"mv":    runMove,
	"rm":    runRemove,
	"rmdir": runRemoveDir,
	"chmod": runChmod,
	"chown": runChown,
	"ls":    runList,
}

// LookupCommand returns the filesystem command registered under name.
func LookupCommand(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// CommandNames returns the registered command names sorted.
func CommandNames() []string {
	return slices.Sorted(maps.Keys(commands))
}

func syntaxError(op string) error {
	return newError(op, CodeInvalidSyntax, "")
}

func runPwd(s *Session, args []string) (*Result, error) {
	if len(args) != 0 {
		return nil, syntaxError("pwd")
	}
	return &Result{Node: s.Cwd, Lines: []string{s.Pwd()}}, nil
}

func runCd(s *Session, args []string) (*Result, error) {
	if len(args) != 1 {
		return nil, syntaxError("cd")
	}
	if err := s.Cd(args[0]); err != nil {
		return nil, err
	}
	return &Result{Node: s.Cwd}, nil
}

func runMkdir(s *Session, args []string) (*Result, error) {
	var (
		path    string
		parents bool
	)
	switch {
	case len(args) == 1 && args[0] != "-p":
		path = args[0]
	case len(args) == 2 && args[0] == "-p":
		path, parents = args[1], true
	default:
		return nil, syntaxError("mkdir")
	}
	dir, err := s.Mkdir(path, parents)
	if err != nil {
		return nil, err
	}
	return &Result{Node: dir}, nil
}

func runTouch(s *Session, args []string) (*Result, error) {
	if len(args) != 1 {
		return nil, syntaxError("touch")
	}
	node, err := s.Touch(args[0])
	if err != nil {
		return nil, err
	}
	return &Result{Node: node}, nil
}

func runCopy(s *Session, args []string) (*Result, error) {
	if len(args) != 2 {
		return nil, syntaxError("cp")
	}
	file, err := s.Copy(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &Result{Node: file}, nil
}

func runMove(s *Session, args []string) (*Result, error) {
	if len(args) != 2 {
		return nil, syntaxError("mv")
	}
	file, err := s.Move(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return &Result{Node: file}, nil
}

func runRemove(s *Session, args []string) (*Result, error) {
	if len(args) != 1 {
		return nil, syntaxError("rm")
	}
	if err := s.Remove(args[0]); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

func runRemoveDir(s *Session, args []string) (*Result, error) {
	if len(args) != 1 {
		return nil, syntaxError("rmdir")
	}
	if err := s.RemoveDir(args[0]); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

// recursiveArgs splits "[-r] first path" argument lists used by chmod and chown.
func recursiveArgs(op string, args []string) (first, path string, recursive bool, err error) {
	switch {
	case len(args) == 2:
		return args[0], args[1], false, nil
	case len(args) == 3 && args[0] == "-r":
		return args[1], args[2], true, nil
	}
	return "", "", false, syntaxError(op)
}

func runChmod(s *Session, args []string) (*Result, error) {
	mode, path, recursive, err := recursiveArgs("chmod", args)
	if err != nil {
		return nil, err
	}
	report, err := s.Chmod(mode, path, recursive)
	if err != nil {
		return nil, err
	}
	return reportResult(report), nil
}

func runChown(s *Session, args []string) (*Result, error) {
	user, path, recursive, err := recursiveArgs("chown", args)
	if err != nil {
		return nil, err
	}
	report, err := s.Chown(user, path, recursive)
	if err != nil {
		return nil, err
	}
	return reportResult(report), nil
}

func reportResult(report *ChangeReport) *Result {
	res := &Result{Skipped: report.Skipped}
	if len(report.Changed) > 0 {
		res.Node = report.Changed[0]
	}
	return res
}

// parseListArgs accepts flag groups like "-a", "-l", "-d" or "-al" in any
// position and at most one path.
func parseListArgs(args []string) (string, ListOptions, error) {
	var (
		path string
		opts ListOptions
	)
	for _, arg := range args {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			for _, f := range arg[1:] {
				switch f {
				case 'a':
					opts.All = true
				case 'l':
					opts.Long = true
				case 'd':
					opts.Dir = true
				default:
					return "", ListOptions{}, syntaxError("ls")
				}
			}
			continue
		}
		if path != "" {
			return "", ListOptions{}, syntaxError("ls")
		}
		path = arg
	}
	return path, opts, nil
}

func runList(s *Session, args []string) (*Result, error) {
	path, opts, err := parseListArgs(args)
	if err != nil {
		return nil, err
	}
	entries, err := s.List(path, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Lines: FormatEntries(entries, opts.Long)}, nil
}
