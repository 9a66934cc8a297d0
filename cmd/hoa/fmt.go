package main

import (
	"fmt"
	"os"

	"github.com/ReedOei/omega-automata/hoaparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <automaton.hoa>",
	Short: "Reprint an automaton in canonical form",
	Long:  "Parse an HOA document and write its canonical serialization to stdout.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading automaton file: %w", err)
	}

	doc, err := hoaparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing automaton: %w", err)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Parsed %d header items, %d state records\n", len(doc.Header), len(doc.States))
	}

	_, err = os.Stdout.Write(hoaparser.Serialize(doc))
	return err
}
