// Package cli provides the command-line interface for issue-dataset.
package cli

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"issue-dataset/packages/config"
	"issue-dataset/packages/handlers"
	"issue-dataset/packages/repository"

	"github.com/spf13/cobra"
)

// TokenEnv names the optional variable holding a GitHub token
const TokenEnv = "GITHUB_TOKEN"

// newListerFunc builds the issue source, allowing it to be replaced in tests.
var newListerFunc = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.IssueLister, error) {
	token := os.Getenv(TokenEnv)
	if token != "" {
		logger.Info("Initializing GitHub client", "auth", "token")
	} else {
		logger.Info("Initializing GitHub client", "auth", "anonymous")
	}
	client, err := repository.NewClient(ctx, token, cfg.APIURL)
	if err != nil {
		return nil, err
	}
	return repository.NewGitHubIssues(client, logger), nil
}

// NewRootCommand creates the issue-dataset command.
func NewRootCommand(version string) *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "issue-dataset OUTPUT_FOLDER",
		Short: "Build a labelled text dataset from GitHub issues",
		Long: `issue-dataset reads params.yaml, lists the issues of a GitHub repository
created in the configured window and writes every issue carrying exactly one
of the configured labels to OUTPUT_FOLDER/<label>/<number>.txt.

Set GITHUB_TOKEN (or put it in .env) for authenticated access.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			lister, err := newListerFunc(ctx, cfg, logger)
			if err != nil {
				return err
			}

			collector := &handlers.Collector{
				Lister:    lister,
				Config:    cfg,
				OutputDir: args[0],
				Logger:    logger,
			}
			summary, err := collector.Run(ctx)
			if err != nil {
				return err
			}

			for _, label := range slices.Sorted(maps.Keys(summary.PerLabel)) {
				logger.Info("Label total", "label", label, "issues", summary.PerLabel[label])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath, "Path to the parameters file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped issues and issue bodies")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
