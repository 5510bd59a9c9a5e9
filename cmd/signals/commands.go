package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"news-signal-engine/internal/feed"
	"news-signal-engine/internal/logger"
	"news-signal-engine/internal/store"
	"news-signal-engine/internal/types"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "signals",
		Short: "Turn news stories into BUY/SELL/HOLD signals",
		Long: `signals scores news stories with a financial lexicon, maps them to tickers,
checks price and technical indicators, and prints ranked recommendations.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "Configuration file path (built-in defaults when empty)")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [STORIES.json]",
		Short: "Analyze a JSON array of stories (stdin when no file or \"-\")",
		Example: `  signals analyze testdata/stories.json
  cat stories.json | signals analyze --keep-hold --max 20
  signals analyze --feeds --log-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var stories []types.Story
			if useFeeds, _ := cmd.Flags().GetBool("feeds"); useFeeds {
				stories, err = feed.NewFetcher(cfg.Feeds).Fetch(ctx)
			} else {
				src := "-"
				if len(args) == 1 {
					src = args[0]
				}
				stories, err = readStories(src, cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			opts, err := analyzeOptions(cmd)
			if err != nil {
				return err
			}

			eng, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			res, err := eng.AnalyzeStories(ctx, stories, opts)
			if err != nil {
				return err
			}

			if logRun, _ := cmd.Flags().GetBool("log-run"); logRun {
				appendRunLog(ctx, res)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().Int("max", 0, "Maximum recommendations (config value when 0)")
	cmd.Flags().Bool("keep-hold", false, "Include HOLD recommendations")
	cmd.Flags().String("now", "", "Reference time in RFC3339 for story ages (wall clock when empty)")
	cmd.Flags().Bool("log-run", false, "Append recommendations to the daily run log")
	cmd.Flags().Bool("feeds", false, "Read stories from the configured RSS feeds instead of a file")
	return cmd
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Print stories from the configured RSS feeds as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			stories, err := feed.NewFetcher(cfg.Feeds).Fetch(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stories)
		},
	}
}

func analyzeOptions(cmd *cobra.Command) (types.AnalyzeOptions, error) {
	var opts types.AnalyzeOptions
	opts.MaxRecommendations, _ = cmd.Flags().GetInt("max")
	if keep, _ := cmd.Flags().GetBool("keep-hold"); keep {
		filter := false
		opts.FilterHold = &filter
	}
	if now, _ := cmd.Flags().GetString("now"); now != "" {
		t, err := time.Parse(time.RFC3339, now)
		if err != nil {
			return opts, fmt.Errorf("invalid --now: %w", err)
		}
		opts.Now = t
	}
	return opts, nil
}

func readStories(src string, stdin io.Reader) ([]types.Story, error) {
	var r io.Reader = stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var stories []types.Story
	if err := json.NewDecoder(r).Decode(&stories); err != nil {
		return nil, fmt.Errorf("decode stories: %w", err)
	}
	return stories, nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: %d tradeable tickers\n", len(cfg.Universe.Tradeable))
			return nil
		},
	})

	return configCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "signals %s\n", version)
		},
	}
}

func loadConfig(cmd *cobra.Command) (*store.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return store.Default(), nil
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(cmd.Context(), "Failed to load config", err, "path", path)
		return nil, err
	}
	return cfg, nil
}
