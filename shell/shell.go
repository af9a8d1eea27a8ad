// Package shell runs the interactive read-eval loop over a filesystem session.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"github.com/brettbedarf/nautilus/config"
	"github.com/brettbedarf/nautilus/filesystem"
	"github.com/brettbedarf/nautilus/internal/util"
	"github.com/brettbedarf/nautilus/users"
)

// Shell reads command lines, dispatches them and prints results and errors.
type Shell struct {
	session *filesystem.Session
	users   *users.Registry
	cfg     *config.Config
	out     io.Writer
	logger  zerolog.Logger
}

// New creates a Shell. session.Users should be registry so that adduser and
// deluser are visible to chown.
func New(session *filesystem.Session, registry *users.Registry, cfg *config.Config, out io.Writer) *Shell {
	return &Shell{
		session: session,
		users:   registry,
		cfg:     cfg,
		out:     out,
		logger:  util.GetLogger("Shell"),
	}
}

// Prompt renders the prompt for the current actor and working directory.
func (sh *Shell) Prompt() string {
	return sh.cfg.RenderPrompt(sh.session.User, sh.session.Pwd())
}

// Run loops until exit, end of input or ctx is cancelled. End of input and
// cancellation are not errors.
func (sh *Shell) Run(ctx context.Context, in LineReader) error {
	for {
		if err := ctx.Err(); err != nil {
			sh.logger.Debug().Err(err).Msg("Shell cancelled")
			return nil
		}
		line, err := in.ReadLine(sh.Prompt())
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(sh.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if sh.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the shell should exit.
func (sh *Shell) Execute(line string) bool {
	args, err := shlex.Split(line)
	if err != nil {
		sh.logger.Debug().Err(err).Str("line", line).Msg("Tokenizing failed")
		fmt.Fprintln(sh.out, "Invalid syntax")
		return false
	}
	if len(args) == 0 {
		return false
	}
	name, args := args[0], args[1:]
	sh.logger.Trace().Str("cmd", name).Strs("args", args).Str("user", sh.session.User).Msg("Executing")

	if builtin, ok := builtins[name]; ok {
		quit, err := builtin(sh, args)
		sh.report(name, err)
		return quit
	}
	cmd, ok := filesystem.LookupCommand(name)
	if !ok {
		fmt.Fprintf(sh.out, "%s: Command not found\n", name)
		return false
	}
	res, err := cmd(sh.session, args)
	sh.report(name, err)
	if res == nil {
		return false
	}
	for _, line := range res.Lines {
		fmt.Fprintln(sh.out, line)
	}
	for _, skipped := range res.Skipped {
		sh.report(name, skipped)
	}
	return false
}

func (sh *Shell) report(name string, err error) {
	if err == nil {
		return
	}
	sh.logger.Debug().Err(err).Str("cmd", name).Str("code", filesystem.CodeOf(err).String()).Msg("Command failed")
	fmt.Fprintln(sh.out, err.Error())
}
