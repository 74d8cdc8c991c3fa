package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/texted/internal/dictionary"
	"github.com/dshills/texted/internal/spellcheck"
)

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	dict := dictionary.New()
	if _, err := dict.LoadFile(path); err != nil {
		return nil, err
	}
	return dict, nil
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Spellcheck every word of a file",
		Long:  "check prints a spellcheck log record for each word of FILE that is not in the dictionary.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			dict, err := loadDictionary(cfg.Dictionary.Path)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rep, err := spellcheck.NewChecker(dict).Scan(f, spellcheck.NewWriterSink(cmd.OutOrStdout()))
			if err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d words, %d unknown\n", rep.Words, rep.Unknown)
			return nil
		},
	}
}

func newSuggestCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest PREFIX",
		Short: "List dictionary words starting with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			dict, err := loadDictionary(cfg.Dictionary.Path)
			if err != nil {
				return err
			}

			for _, w := range dict.Suggest(strings.ToLower(args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texted %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
