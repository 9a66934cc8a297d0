package main

import (
	"fmt"
	"os"

	"github.com/ReedOei/omega-automata/hoaparser"
	"github.com/ReedOei/omega-automata/nba"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert <automaton.hoa>",
	Short: "Project an automaton through the Buchi bridge",
	Long: "Parse an HOA document, convert it to the in-memory Buchi automaton " +
		"representation, and write the resulting single-set Buchi document to stdout. " +
		"Generalized acceptance, aliases, and descriptive metadata are dropped.",
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading automaton file: %w", err)
	}

	doc, err := hoaparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing automaton: %w", err)
	}

	automaton := nba.FromDocument(doc)
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Automaton: %d states\n", automaton.Len())
	}

	_, err = os.Stdout.Write(hoaparser.Serialize(nba.ToDocument(automaton)))
	return err
}
