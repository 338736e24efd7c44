package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kincaid/internal/watch"
	"github.com/heartmarshall/kincaid/pkg/readability"
)

type analyzeOptions struct {
	json  bool
	watch bool
}

type reportJSON struct {
	Source             string  `json:"source"`
	Words              int     `json:"words"`
	Sentences          int     `json:"sentences"`
	Syllables          int     `json:"syllables"`
	ReadingEase        float64 `json:"readingEase"`
	ReadingEaseDefined bool    `json:"readingEaseDefined"`
}

func newAnalyzeCmd(c *cli) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [FILE|-]",
		Short: "Print word, sentence and syllable counts plus reading ease",
		Long: `Analyze reads FILE, or standard input when FILE is "-" or omitted, and
prints its counts and Flesch reading ease. With --watch the file is
re-analyzed every time it changes until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			if opts.watch && src == "-" {
				return errors.New("--watch needs a file argument")
			}

			if err := c.analyzeSource(cmd, src, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			return c.watchSource(cmd, src, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the report as JSON")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-analyze FILE whenever it changes")
	return cmd
}

func (c *cli) analyzeSource(cmd *cobra.Command, src string, opts analyzeOptions) error {
	text, err := readSource(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}

	report := c.analyzer.Analyze(text)
	c.logger.Debug("analyzed",
		slog.String("source", src),
		slog.Int("words", report.Words),
	)
	return printReport(cmd.OutOrStdout(), src, report, opts.json)
}

func (c *cli) watchSource(cmd *cobra.Command, src string, opts analyzeOptions) error {
	w, err := watch.New(c.logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	err = w.Watch(src, func(string) {
		if err := c.analyzeSource(cmd, src, opts); err != nil {
			c.logger.Warn("re-analyze failed",
				slog.String("source", src),
				slog.String("error", err.Error()),
			)
		}
	})
	if err != nil {
		return err
	}

	c.logger.Info("watching", slog.String("source", src))
	<-cmd.Context().Done()
	return nil
}

func readSource(stdin io.Reader, src string) (string, error) {
	if src == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	return string(b), nil
}

func printReport(w io.Writer, src string, r readability.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(reportJSON{
			Source:             src,
			Words:              r.Words,
			Sentences:          r.Sentences,
			Syllables:          r.Syllables,
			ReadingEase:        readability.DisplayScore(r.ReadingEase),
			ReadingEaseDefined: r.Defined(),
		})
	}

	ease := "n/a (no words)"
	if r.Defined() {
		ease = fmt.Sprintf("%.2f", readability.DisplayScore(r.ReadingEase))
	}
	_, err := fmt.Fprintf(w, "words:        %d\nsentences:    %d\nsyllables:    %d\nreading ease: %s\n",
		r.Words, r.Sentences, r.Syllables, ease)
	return err
}
