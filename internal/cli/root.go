package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/config"
	"scaffkit.dev/scaffkit/internal/output"
	"scaffkit.dev/scaffkit/internal/runtime"
)

type rootOptions struct {
	cwd        string
	verbose    bool
	configFile string
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "scaffkit",
		Short: "Scaffkit scaffolds and maintains project directories and their git repositories",
		Long: `Scaffkit scaffolds and maintains project directories and their git repositories.

It creates repositories with a first commit, reports repository state, manages
remotes and tags, backs files up to numbered versions and deletes build trees
only when every path matches a pattern you give it.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return beforeCommand(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return afterCommand(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cwd, "cwd", "C", "", "Run as if scaffkit was started in this directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show git commands with their output and full error details")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default is .scaffkit.yaml in the working or home directory)")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newFindUpCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newFilesCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newGitCmd())

	return rootCmd
}

// beforeCommand loads configuration and stores the runtime context on cmd
func beforeCommand(cmd *cobra.Command, opts *rootOptions) error {
	cwdFlag := opts.cwd
	if cwdFlag == "" {
		cwdFlag = "."
	}
	cwd, err := abspath.New(cwdFlag)
	if err != nil {
		return err
	}
	if !cwd.IsDir() {
		return fmt.Errorf("%s is not a directory", cwd)
	}

	searchPaths := []string{cwd.String()}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}
	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile, SearchPaths: searchPaths})
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Verbose = true
	}

	splog, err := output.NewSplogWithOptions(output.Options{
		Writer: cmd.OutOrStdout(),
		Debug:  cfg.Verbose,
		File: output.LogFile{
			Path:       cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
		},
	})
	if err != nil {
		return err
	}
	if cfg.File != "" {
		splog.Debug("Using config file %s", cfg.File)
	}

	ctx := runtime.NewContext(cmd.Context(), cfg, splog, cwd)
	cmd.SetContext(runtime.WithContext(cmd.Context(), ctx))
	return nil
}

// afterCommand releases what beforeCommand set up. It is safe to call more than once.
func afterCommand(cmd *cobra.Command) error {
	ctx, err := runtime.FromContext(cmd.Context())
	if err != nil {
		return nil
	}
	return ctx.Close()
}
