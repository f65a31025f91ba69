package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/vidocq/internal/analyzer"
)

func newLexiconCmd() *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "List the keywords used by the local analyzer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if match != "" {
				return printMatches(cmd.OutOrStdout(), match)
			}
			for _, term := range analyzer.Lexicon() {
				fmt.Fprintln(cmd.OutOrStdout(), term)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "Show which keywords a text would trigger")

	return cmd
}

func printMatches(w io.Writer, text string) error {
	terms := analyzer.DefaultScanner().Match(text)
	if len(terms) == 0 {
		color.New(color.FgGreen).Fprintln(w, "Aucun mot-clé détecté")
		return nil
	}
	color.New(color.FgYellow, color.Bold).Fprintf(w, "%d mot(s)-clé(s): %s\n", len(terms), strings.Join(terms, ", "))
	return nil
}
