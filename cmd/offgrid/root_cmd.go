package main

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/offgrid/internal/config"
	"github.com/ytget/offgrid/internal/download"
	"github.com/ytget/offgrid/internal/logging"
	"github.com/ytget/offgrid/internal/model"
)

// Flag names
const (
	FlagBaseDir   = "base-dir"
	FlagManifest  = "manifest"
	FlagLogLevel  = "log-level"
	FlagPDFEngine = "pdf-engine"
	FlagProgress  = "progress"
	FlagStrict    = "strict"
	FlagNoInstall = "no-install"
)

// cli holds configuration resolved before any subcommand runs
type cli struct {
	env      config.Env
	progress bool
	manifest model.Manifest
	log      *log.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "offgrid",
		Short:         "Keep an offline library of survival resources in sync",
		Long:          "offgrid downloads survival PDFs, categorized videos, an archive.org bundle and a repository mirror into a local directory, fetching only what is missing.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(FlagBaseDir, "", "resource directory (env OFFGRID_BASE_DIR)")
	flags.String(FlagManifest, "", "manifest YAML file, built-in when empty (env OFFGRID_MANIFEST)")
	flags.String(FlagLogLevel, "", "log level: debug, info, warn, error (env OFFGRID_LOG_LEVEL)")
	flags.String(FlagPDFEngine, "", "pdf download engine: http or got (env OFFGRID_PDF_ENGINE)")
	flags.BoolVar(&c.progress, FlagProgress, false, "show byte progress bars for pdf downloads")

	root.AddCommand(
		newSyncCmd(c),
		newCheckCmd(c),
		newDirsCmd(c),
		newListCmd(c),
		newToolsCmd(c),
	)
	return root
}

// resolve applies env, then flags, then loads the manifest and logger
func (c *cli) resolve(cmd *cobra.Command) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override(FlagBaseDir, &env.BaseDir)
	override(FlagManifest, &env.ManifestPath)
	override(FlagLogLevel, &env.LogLevel)
	override(FlagPDFEngine, &env.PDFEngine)
	if err := env.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewWithOutput(env.LogLevel, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	manifest, err := config.LoadManifest(env.ManifestPath)
	if err != nil {
		return err
	}

	c.env = env
	c.manifest = manifest
	c.log = logger
	return nil
}

// newService wires the synchronizer with the configured fetch engine
func (c *cli) newService() *download.Service {
	var fetcher download.Fetcher
	switch c.env.PDFEngine {
	case config.PDFEngineGot:
		fetcher = download.NewGotFetcher(c.env.UserAgent)
	default:
		fetcher = download.NewHTTPFetcher(
			download.WithHTTPClient(&http.Client{Timeout: c.env.HTTPTimeout}),
			download.WithUserAgent(c.env.UserAgent),
			download.WithProgress(c.progress),
		)
	}

	return download.NewService(c.env.BaseDir, c.manifest,
		download.WithFetcher(fetcher),
		download.WithLogger(c.log),
		download.WithVideoDownloader(download.NewYTDLPRunner(c.log)),
	)
}

func (c *cli) printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
