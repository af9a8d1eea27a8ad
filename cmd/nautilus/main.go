package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brettbedarf/nautilus/config"
	"github.com/brettbedarf/nautilus/filesystem"
	"github.com/brettbedarf/nautilus/internal/util"
	"github.com/brettbedarf/nautilus/requests"
	"github.com/brettbedarf/nautilus/shell"
	"github.com/brettbedarf/nautilus/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	verbose    int
	seedPath   string
	user       string
	users      []string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "nautilus",
		Short: "Nautilus - in-memory Unix-like filesystem shell",
		Long: `Nautilus is an interactive shell over an in-memory filesystem tree with
Unix-style owners and rwx permissions. Nothing is persisted; the tree lives
for the lifetime of the process.

Commands: ` + strings.Join(shell.CommandNames(), ", "),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.WarnVerbose, "Log verbosity level between 1 (error) and 5 (trace)")
	flags.StringVarP(&opts.seedPath, "seed", "s", "", "Path to a YAML or JSON seed file provisioned before the first prompt")
	flags.StringVarP(&opts.user, "user", "u", "", "Account to start the shell as (default root)")
	flags.StringSliceVar(&opts.users, "users", nil, "Accounts known at startup besides root")
	return cmd
}

// loadConfig layers defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		fileCfg, err := config.NewConfigFromFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", opts.configPath, err)
		}
		cfg = fileCfg
	}

	var override config.ConfigOverride
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		override.LogLvl = &opts.verbose
	}
	if flags.Changed("seed") {
		override.SeedFile = &opts.seedPath
	}
	if flags.Changed("user") {
		override.User = &opts.user
	}
	if flags.Changed("users") {
		override.Users = &opts.users
	}
	cfg.Merge(&override)
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	util.InitializeLogger(cfg.LogLvl, errOut)
	logger := util.GetLogger("main")

	registry := users.NewRegistry(cfg.Users...)
	session := filesystem.NewSession(filesystem.NewFS(), registry)

	if cfg.SeedFile != "" {
		reqs, err := requests.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to load seed %s: %w", cfg.SeedFile, err)
		}
		if err := requests.ApplySeed(session, reqs); err != nil {
			return err
		}
	}
	if cfg.User != "" && !registry.Exists(cfg.User) {
		return fmt.Errorf("unknown user %q", cfg.User)
	}
	if cfg.User != "" {
		session.User = cfg.User
	}

	reader, closer, err := lineReader(in, out)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info().Str("user", session.User).Strs("users", registry.List()).Msg("Nautilus shell starting")
	return shell.New(session, registry, cfg, out).Run(ctx, reader)
}

// lineReader uses the terminal-aware reader for the real stdin and a plain
// scanner for anything else.
func lineReader(in io.Reader, out io.Writer) (shell.LineReader, io.Closer, error) {
	if in == os.Stdin && out == os.Stdout {
		return shell.NewStdioReader()
	}
	return shell.NewScanReader(in, out), io.NopCloser(nil), nil
}
