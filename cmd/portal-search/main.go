package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/altinukshini/portal-search/internal/catalog"
	"github.com/altinukshini/portal-search/internal/cli"
	"github.com/altinukshini/portal-search/internal/config"
	"github.com/altinukshini/portal-search/internal/controller"
	"github.com/altinukshini/portal-search/internal/logging"
	"github.com/altinukshini/portal-search/internal/ops"
	"github.com/altinukshini/portal-search/internal/search"
	"github.com/altinukshini/portal-search/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags
	root := &cobra.Command{
		Use:           "portal-search",
		Short:         "Search the subjects of a course catalog as you type",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), flags, os.Environ(), config.DefaultDotenv)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(newSearchCmd(flags), newVersionCmd())
	return root
}

func runTUI(cfg config.Config) error {
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"catalog": cfg.CatalogPath,
		"groups":  len(cat.Groups),
		"items":   cat.ItemCount(),
		"profile": cfg.Profile.Name,
	}).Info("catalog loaded")

	dispatcher := tui.NewDispatcher()
	ctrl := controller.New(cat, search.New(), cfg.Profile, controller.ClockScheduler{},
		controller.WithDispatch(dispatcher.Dispatch),
		controller.WithLogger(logger),
	)
	links := ops.NewLinks(cfg.CatalogPath, cfg.Browser, io.Discard, io.Discard)

	app := tui.NewApp(cfg, cat, ctrl, links, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	dispatcher.SetProgram(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newSearchCmd(flags *config.Flags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Print the subjects matching QUERY and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseFormat(output)
			if err != nil {
				return err
			}
			cfg, err := config.Load(cmd.Flags(), flags, os.Environ(), config.DefaultDotenv)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}

			view := search.New().Apply(cat, strings.Join(args, " "))
			p := cli.Printer{
				Out:      cmd.OutOrStdout(),
				Format:   format,
				Colorize: term.FromEnv().IsTerminalOutput(),
			}
			return p.Print(cli.NewResult(cat, view))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.FormatText), "output format: text, json or yaml")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "portal-search", version)
		},
	}
}
