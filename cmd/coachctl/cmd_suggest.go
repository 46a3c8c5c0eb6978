package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"strategycoach/pkg/coach"
	"strategycoach/pkg/confkit"
	llmpkg "strategycoach/pkg/llm"
	"strategycoach/pkg/prompt"
)

func newSuggestCmd() *cobra.Command {
	var (
		situation  string
		llmPath    string
		promptPath string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the configured generator for strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			confkit.LoadDotenvOnce()
			cfg, err := llmpkg.LoadConfig(llmPath)
			if err != nil {
				return err
			}
			if !cfg.Enabled() {
				return coach.ErrDisabled
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			gen, err := llmpkg.NewGenerator(ctx, cfg)
			if err != nil {
				return err
			}
			defer gen.Close()

			opts := []coach.Option{coach.WithSuggestionCount(count)}
			if promptPath != "" {
				tpl, err := prompt.NewCoachTemplate(promptPath)
				if err != nil {
					return err
				}
				opts = append(opts, coach.WithTemplate(tpl))
			}
			return runSuggest(ctx, cmd, gen, situation, opts...)
		},
	}

	cmd.Flags().StringVarP(&situation, "situation", "s", "", "the athlete's situation, in Korean")
	cmd.Flags().StringVar(&llmPath, "llm-config", "etc/llm.yaml", "path to llm client configuration")
	cmd.Flags().StringVar(&promptPath, "prompt", "", "override the built-in instruction template")
	cmd.Flags().IntVarP(&count, "count", "n", prompt.DefaultSuggestionCount, "number of strategies to request")
	_ = cmd.MarkFlagRequired("situation")
	return cmd
}

func runSuggest(ctx context.Context, cmd *cobra.Command, gen coach.TextGenerator, situation string, opts ...coach.Option) error {
	c, err := coach.New(gen, opts...)
	if err != nil {
		return err
	}
	res, err := c.Suggest(ctx, situation)
	if err != nil {
		var genErr *coach.GenerationError
		if errors.As(err, &genErr) {
			return fmt.Errorf("generator call failed: %w", genErr.Err)
		}
		return err
	}
	if !res.Usable {
		fmt.Fprintln(cmd.ErrOrStderr(), "reply contained no usable strategy blocks")
	}
	return writeJSON(cmd.OutOrStdout(), res)
}
