package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/texted/internal/app"
	"github.com/dshills/texted/internal/config"
	"github.com/dshills/texted/internal/ui"
)

// ErrNotTerminal is returned when the editor is started without a TTY.
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	dictionary string
	logLevel   string
	history    int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "texted [FILE]",
		Short: "texted - a terminal text editor with spellcheck and autocomplete",
		Long: "texted edits a plain-text file with multi-level undo, inline word\n" +
			"completion (Tab) and a dictionary spellchecker (Space).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return runEditor(cmd, flags, file)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "configuration file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.dictionary, "dictionary", "", "word list, one word per line")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&flags.history, "history", 0, "maximum undo depth")

	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newSuggestCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig layers the flags that were set over file and environment.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, string, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	overrides := make(map[string]any)
	if cmd.Flags().Changed("dictionary") {
		overrides["dictionary.path"] = flags.dictionary
	}
	if cmd.Flags().Changed("log-level") {
		overrides["logging.level"] = flags.logLevel
	}
	if cmd.Flags().Changed("history") {
		overrides["history.capacity"] = flags.history
	}

	cfg, err := config.Load(config.Options{Path: path, Overrides: overrides})
	if err != nil {
		return config.Config{}, "", fmt.Errorf("load config: %w", err)
	}
	return cfg, path, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runEditor(cmd *cobra.Command, flags *globalFlags, file string) error {
	if !isTerminal() {
		return ErrNotTerminal
	}

	cfg, cfgPath, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	application, err := app.New(context.Background(), app.Options{
		Config:  cfg,
		File:    file,
		Version: version,
	})
	if err != nil {
		return err
	}

	runErr := runScreen(application, cfg, cfgPath)
	closeErr := application.Close()

	stderr := cmd.ErrOrStderr()
	reportWarnings(stderr, application.Warnings())
	if err := application.Unsaved(); err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	if runErr != nil {
		return runErr
	}
	return closeErr
}

func runScreen(application *app.Application, cfg config.Config, cfgPath string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	logger := application.Logger().WithComponent("ui")
	frontend := ui.New(screen, application, cfg.UI, cfg.ThemeIndex(), ui.WithLogger(logger))

	err = frontend.WatchConfig(cfgPath, func() (config.UIConfig, error) {
		reloaded, err := config.Load(config.Options{Path: cfgPath})
		return reloaded.UI, err
	})
	if err != nil {
		logger.Warn("config watch disabled: %v", err)
	}

	return frontend.Run()
}

func reportWarnings(w io.Writer, warnings []error) {
	for _, err := range warnings {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
}
