package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"igosint/pkg/config"
	"igosint/pkg/instagram"
	"igosint/pkg/logger"
	"igosint/pkg/scraper"
	"igosint/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

const usageText = `
🔍 igosint - Instagram profile OSINT

Usage:
  igosint <username> [options]

Options:
  --social-search     search for the username on other social sites
  --image-download    download the profile image

Examples:
  igosint instagram_user
  igosint username --social-search --image-download
  igosint -- config            (a username that matches a subcommand)

⚠️  For educational and research use on public data only.
`

// rootOptions holds the flags of the root command
type rootOptions struct {
	configFile    string
	logLevel      string
	outputDir     string
	noColor       bool
	quiet         bool
	verbose       bool
	markdown      bool
	socialSearch  bool
	imageDownload bool
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "igosint <username>",
		Short: "Collect public information about an Instagram profile",
		Long: `igosint fetches a public Instagram profile page and extracts the visible
account metadata: title, description, profile image, account type, follower,
following and post counts, full name and biography.

Optionally it checks whether the same username exists on other social sites
and downloads the profile image. Results are written to a JSON report under
output/reports/.`,
		Example: `  # Profile extraction only
  igosint johndoe

  # Everything, with a Markdown report next to the JSON one
  igosint johndoe --social-search --image-download --markdown`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetOutput(cmd.OutOrStdout())
			if opts.noColor {
				ui.SetColorEnabled(false)
			}
			if opts.quiet {
				ui.SetQuietMode(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), usageText)
				return nil
			}
			return runAnalysis(cmd, opts, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./.igosint.yaml, then $XDG_CONFIG_HOME/igosint/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all output except errors and the report path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every request (same as --log-level debug)")

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "base output directory (default \"output\")")
	cmd.Flags().BoolVar(&opts.socialSearch, "social-search", false, "search for the username on other social sites")
	cmd.Flags().BoolVar(&opts.imageDownload, "image-download", false, "download the profile image")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "also write a Markdown report")

	cmd.SetVersionTemplate(`igosint {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// commandFlags collects the flags that override configuration values
func (o *rootOptions) commandFlags() map[string]interface{} {
	flags := make(map[string]interface{})
	if o.outputDir != "" {
		flags["output"] = o.outputDir
	}
	switch {
	case o.logLevel != "":
		flags["log-level"] = o.logLevel
	case o.verbose:
		flags["log-level"] = "debug"
	}
	if o.markdown {
		flags["markdown"] = true
	}
	return flags
}

func runAnalysis(cmd *cobra.Command, opts *rootOptions, arg string) error {
	username := instagram.SanitizeUsername(arg)
	if !instagram.IsValidUsername(username) {
		return fmt.Errorf("invalid Instagram username %q: use 1-30 letters, digits, underscores or single periods", arg)
	}

	cfg, err := config.Load(opts.configFile, opts.commandFlags())
	if err != nil {
		return err
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()
	log.WithField("version", version).Info("igosint starting")

	ui.PrintLogo()
	ui.PrintInfo("Target Profile", "@"+username)

	s := scraper.New(cfg, log)
	result, err := s.Run(cmd.Context(), username, scraper.Options{
		SocialSearch:  opts.socialSearch,
		ImageDownload: opts.imageDownload,
	})
	if err != nil {
		return err
	}

	ui.PrintSummary(result.Report)
	ui.PrintCompletion(result.ReportPath)
	return nil
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
