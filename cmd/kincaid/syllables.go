package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newSyllablesCmd(c *cli) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "syllables WORD...",
		Short: "Estimate syllables for each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, word := range args {
				if !explain {
					if _, err := fmt.Fprintf(out, "%s\t%d\n", word, c.analyzer.SyllablesInWord(word)); err != nil {
						return err
					}
					continue
				}
				if err := c.printBreakdown(out, word); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "show vowel groups and matching rules")
	return cmd
}

func (c *cli) printBreakdown(w io.Writer, word string) error {
	b := c.analyzer.Explain(word)
	_, err := fmt.Fprintf(w, "%s\t%d\n  vowel groups: %d\n  add (+%d):    %s\n  deduct (-%d): %s\n",
		word, b.Syllables,
		b.VowelGroups,
		len(b.Add), joinOrDash(b.Add),
		len(b.Deduct), joinOrDash(b.Deduct),
	)
	return err
}

func joinOrDash(patterns []string) string {
	if len(patterns) == 0 {
		return "-"
	}
	return strings.Join(patterns, " ")
}
