package main

import (
	"fmt"
	"os"

	"github.com/ReedOei/omega-automata/hoaparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check <automaton.hoa>",
	Short: "Parse and lint an automaton",
	Long:  "Parse an HOA document and report structural diagnostics. Exits non-zero on error-severity findings.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading automaton file: %w", err)
	}

	doc, err := hoaparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing automaton: %w", err)
	}

	diagnostics, err := hoaparser.ValidateOrError(doc)
	for _, d := range diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}
	if err != nil {
		return fmt.Errorf("checking automaton: %w", err)
	}

	if viper.GetBool("verbose") || len(diagnostics) == 0 {
		fmt.Fprintf(os.Stderr, "OK: %d header items, %d state records\n", len(doc.Header), len(doc.States))
	}
	return nil
}
