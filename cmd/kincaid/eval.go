package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kincaid/internal/cmudict"
	"github.com/heartmarshall/kincaid/internal/config"
)

type evalOptions struct {
	dict     string
	baseline int
	workers  int
	show     int
}

func newEvalCmd(c *cli) *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compare syllable estimates with the CMU pronouncing dictionary",
		Long: `Eval parses a CMU pronouncing dictionary, estimates the syllables of every
headword and counts the words whose estimate matches none of the
dictionary's pronunciations. It fails when the count exceeds the baseline.

Unset flags fall back to the eval section of the configuration
(KINCAID_CMUDICT, EVAL_BASELINE, EVAL_WORKERS).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			eval := mergeEvalFlags(cmd, cfg.Eval, opts)
			if eval.DictPath == "" {
				return errors.New("no dictionary: pass --dict or set KINCAID_CMUDICT")
			}
			return c.runEval(cmd, eval, opts.show)
		},
	}

	cmd.Flags().StringVar(&opts.dict, "dict", "", "path to cmudict file")
	cmd.Flags().IntVar(&opts.baseline, "baseline", 0, "maximum allowed mistakes")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel workers")
	cmd.Flags().IntVar(&opts.show, "show", 0, "print the first N mismatches")
	return cmd
}

// mergeEvalFlags overrides cfg with the flags the user set explicitly.
func mergeEvalFlags(cmd *cobra.Command, cfg config.EvalConfig, opts evalOptions) config.EvalConfig {
	if cmd.Flags().Changed("dict") {
		cfg.DictPath = opts.dict
	}
	if cmd.Flags().Changed("baseline") {
		cfg.Baseline = opts.baseline
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	return cfg
}

func (c *cli) runEval(cmd *cobra.Command, cfg config.EvalConfig, show int) error {
	start := time.Now()

	dict, err := cmudict.NewParser().ParseFile(cfg.DictPath)
	if err != nil {
		return err
	}
	c.logger.Info("dictionary parsed",
		slog.String("path", cfg.DictPath),
		slog.Int("lines", dict.Stats.TotalLines),
		slog.Int("parsed", dict.Stats.ParsedLines),
		slog.Int("skipped", dict.Stats.SkippedLines),
		slog.Int("words", dict.Stats.UniqueWords),
	)

	res, err := cmudict.Evaluate(cmd.Context(), dict, c.analyzer, cfg.Workers)
	if err != nil {
		return err
	}
	c.logger.Info("evaluation finished", slog.Duration("duration", time.Since(start)))

	if err := printEval(cmd.OutOrStdout(), res, cfg.Baseline, show); err != nil {
		return err
	}
	return res.CheckBaseline(cfg.Baseline)
}

func printEval(w io.Writer, res cmudict.Result, baseline, show int) error {
	if _, err := fmt.Fprintf(w, "words:    %d\nmistakes: %d (baseline %d)\naccuracy: %.2f%%\n",
		res.Words, res.Mistakes, baseline, res.Accuracy()*100); err != nil {
		return err
	}

	for _, m := range res.Mismatches[:min(max(show, 0), len(res.Mismatches))] {
		if _, err := fmt.Fprintf(w, "  %s\texpected %v, got %d\n", m.Word, m.Expected, m.Predicted); err != nil {
			return err
		}
	}
	return nil
}
