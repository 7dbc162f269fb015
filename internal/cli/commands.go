package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyike/FinAdvisorGo/config"
	"github.com/dyike/FinAdvisorGo/internal/advisor"
	"github.com/dyike/FinAdvisorGo/internal/dataflows"
	"github.com/dyike/FinAdvisorGo/internal/display"
	"github.com/dyike/FinAdvisorGo/internal/llm"
	"github.com/dyike/FinAdvisorGo/internal/storage"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "finadvisor",
		Short: "FinAdvisor - conversational stock and finance assistant",
		Long: `FinAdvisor answers questions about stocks and personal finance in the
terminal. It routes each question to the right capability: general finance
explanations, per-company stock analysis with a price chart, recent company
news, or a lowest-P/E table.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug, os.Stderr)
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start the interactive chat.
			return runChat(cmd.Context(), cfg, "")
		},
	}

	rootCmd.AddCommand(newChatCmd(cfg))
	rootCmd.AddCommand(newAskCmd(cfg))
	rootCmd.AddCommand(newHistoryCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newChatCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive advisor session",
		RunE: func(cmd *cobra.Command, args []string) error {
			lookback, _ := cmd.Flags().GetString("lookback")
			return runChat(cmd.Context(), cfg, lookback)
		},
	}

	cmd.Flags().String("lookback", "", "Trend lookback window: 1y, 3y or 5y (prompted when omitted)")

	return cmd
}

func newAskCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [QUESTION]",
		Short: "Ask a single question and exit",
		Long: `Ask one question without entering the chat loop.
Example: finadvisor ask "What is the current price of Apple's stock?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return runAsk(cmd.Context(), cfg, question)
		},
	}

	return cmd
}

func newHistoryCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recent chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), cfg)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("FinAdvisor v1.0.0")
			fmt.Println("Conversational stock and finance assistant")
		},
	}
}

// setupLogging routes diagnostic logging to w in debug mode and discards
// it otherwise. Faults still reach the user through the fixed apology text.
func setupLogging(debug bool, w io.Writer) {
	if debug {
		log.SetOutput(w)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	log.SetOutput(io.Discard)
}

// buildDispatcher wires the full advisor stack from configuration.
func buildDispatcher(ctx context.Context, cfg *config.Config) (*advisor.Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	completer, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	yahoo := dataflows.NewYahooClient(cfg)
	finnhub := dataflows.NewFinnhubClient(cfg)
	newsapi := dataflows.NewNewsAPIClient(cfg)

	return advisor.NewDispatcher(
		advisor.NewClassifier(completer),
		advisor.NewResolver(completer),
		advisor.NewGeneralResponder(completer),
		advisor.NewStockResponder(completer, yahoo, finnhub, cfg.LookbackDays()),
		advisor.NewNewsResponder(newsapi),
		advisor.NewPERatioResponder(yahoo, advisor.DefaultWatchlist()),
	), nil
}

func runChat(ctx context.Context, cfg *config.Config, lookback string) error {
	if lookback == "" {
		picked, err := PromptForLookback(cfg.TrendLookback)
		if err != nil {
			return err
		}
		lookback = picked
	}
	cfg.TrendLookback = lookback
	if err := cfg.Validate(); err != nil {
		return err
	}

	dispatcher, err := buildDispatcher(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(filepath.Join(cfg.DataDir, "chat.db"))
	if err != nil {
		// History is a convenience; the session works without it.
		fmt.Printf("warning: chat history disabled: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	session := NewSession(cfg, dispatcher, store)
	return session.Run(ctx)
}

func runAsk(ctx context.Context, cfg *config.Config, question string) error {
	dispatcher, err := buildDispatcher(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println(display.Status("Generating response..."))
	res := dispatcher.Ask(ctx, question)

	if chart := display.RenderTrendChart(res.Trend, res.Quote, chartWidth, chartHeight); chart != "" {
		fmt.Println(chart)
	}
	fmt.Printf("%s: ", display.AssistantLabel())
	display.StreamMessage(os.Stdout, res.Text, display.DefaultWordDelay)

	return nil
}

func runHistory(ctx context.Context, cfg *config.Config) error {
	store, err := storage.Open(filepath.Join(cfg.DataDir, "chat.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.Sessions(ctx, 20)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No chat sessions recorded yet.")
		return nil
	}

	for _, id := range sessions {
		turns, err := store.RecentTurns(ctx, id, 1)
		if err != nil {
			return err
		}
		first := ""
		if len(turns) > 0 {
			first = turns[0].Content
		}
		fmt.Printf("%s  %s\n", id, first)
	}
	return nil
}
