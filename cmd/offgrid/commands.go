package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ytget/offgrid/internal/browser"
	"github.com/ytget/offgrid/internal/download"
	"github.com/ytget/offgrid/internal/model"
)

// installTooling runs before sync and from the tools command
var installTooling = func(ctx context.Context, svc *download.Service) {
	svc.InstallTooling(ctx)
}

func newSyncCmd(c *cli) *cobra.Command {
	var strict, noInstall bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download every missing resource",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := c.newService()
			if !noInstall {
				installTooling(cmd.Context(), svc)
			}
			report, err := svc.Run(cmd.Context())

			c.printf(cmd, "%s\n", report.Summary())
			for _, task := range report.Failed() {
				c.printf(cmd, "  failed: %s (%s)\n", task.Source, task.LastError)
			}
			if err != nil {
				return err
			}
			if strict && len(report.Failed()) > 0 {
				return fmt.Errorf("%d resources failed to download", len(report.Failed()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, FlagStrict, false, "exit non-zero when any resource fails")
	cmd.Flags().BoolVar(&noInstall, FlagNoInstall, false, "do not install missing yt-dlp and git before syncing")
	return cmd
}

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report resources missing from the base directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			missing := c.newService().Missing()
			if len(missing) == 0 {
				c.printf(cmd, "all resources present in %s\n", c.env.BaseDir)
				return nil
			}
			for _, path := range missing {
				c.printf(cmd, "missing: %s\n", path)
			}
			return fmt.Errorf("%d resources missing", len(missing))
		},
	}
}

func newDirsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Create the base directory and every category directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := c.newService()
			if err := svc.EnsureDirectories(); err != nil {
				return err
			}
			for _, dir := range svc.ExpectedDirs() {
				c.printf(cmd, "%s\n", dir)
			}
			return nil
		},
	}
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List categories, or the files of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := newCatalog(c.env.BaseDir, c.manifest)
			if len(args) == 0 {
				for _, name := range catalog.Categories() {
					c.printf(cmd, "%s\n", name)
				}
				return nil
			}

			files, err := catalog.ListFiles(args[0])
			if err != nil {
				return err
			}
			for _, f := range files {
				rel, err := filepath.Rel(c.env.BaseDir, f)
				if err != nil {
					rel = f
				}
				c.printf(cmd, "%s\n", rel)
			}
			return nil
		},
	}
}

func newToolsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Install yt-dlp and git when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installTooling(cmd.Context(), c.newService())
			return nil
		},
	}
}

func newCatalog(baseDir string, manifest model.Manifest) *browser.Catalog {
	return browser.NewCatalog(baseDir, manifest.BrowseCategories())
}
