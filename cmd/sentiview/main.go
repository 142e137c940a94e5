package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiview/config"
	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/ingest"
	"github.com/spacesedan/sentiview/internal/logging"
	"github.com/spacesedan/sentiview/internal/models"
	"github.com/spacesedan/sentiview/internal/sentiment"
	"github.com/spacesedan/sentiview/internal/session"
	"github.com/spacesedan/sentiview/internal/ui"
)

var offline bool

var rootCmd = &cobra.Command{
	Use:   "sentiview",
	Short: "Terminal client for the SentimentAPI sentiment-analysis service",
	Long: `sentiview is a terminal client for the SentimentAPI service.

Run without arguments to start the interactive interface: login or demo
mode, single and batch analysis, session history and product tagging.
The analyze, batch and history subcommands expose the same operations
for scripted use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Classify a single text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		var result models.Analysis
		if offline {
			result = sentiment.AnalyzeLocal(text)
		} else {
			var err error
			result, err = clients.GetSentimentClient().AnalyzeSingle(text)
			if err != nil {
				return err
			}
		}

		fmt.Printf("%s (%.1f%%)\n", result.Sentiment, result.Score*100)
		return nil
	},
}

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Classify many texts from a CSV file or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, notices, err := readBatchInput(batchFile)
		if err != nil {
			return err
		}
		for _, notice := range notices {
			fmt.Fprintln(os.Stderr, notice)
		}

		var result models.BatchResult
		if offline {
			result = sentiment.AnalyzeLocalBatch(clients.NonEmptyLines(text))
		} else {
			result, err = clients.GetSentimentClient().AnalyzeBatch(text)
			if err != nil {
				return err
			}
		}

		for _, item := range result.Items {
			fmt.Printf("%-9s %5.1f%%  %s\n", item.Sentiment, item.Score*100, item.Text)
		}
		for _, stat := range sentiment.Statistics(result) {
			fmt.Printf("%s: %d (%.1f%%)\n", stat.Name, stat.Value, stat.Percentage)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the saved analysis sessions of the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.NewStore()
		if err != nil {
			return err
		}
		user, found, err := store.Load()
		if err != nil {
			return err
		}
		if !found || !user.Authenticated() {
			return fmt.Errorf("no hay sesión iniciada; usa la interfaz interactiva para iniciar sesión")
		}

		sessions, err := clients.GetSentimentClient().GetHistory(user.Token)
		if err != nil {
			return err
		}

		for _, s := range sessions {
			fmt.Printf("#%-6d %-12s media %.2f  total %d  pos %d  neg %d  neu %d\n",
				s.SessionID, s.Date, s.AvgScore, s.Total, s.Positivos, s.Negativos, s.Neutrales)
		}
		return nil
	},
}

func runInteractive() error {
	logPath := filepath.Join(os.TempDir(), "sentiview.log")
	if dir, err := os.UserCacheDir(); err == nil {
		logPath = filepath.Join(dir, "sentiview", "sentiview.log")
	}
	closer, err := logging.InitFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer closer.Close()

	store, err := session.NewStore()
	if err != nil {
		return err
	}

	ctrl := session.DefaultController(store)
	ctrl.Offline = offline

	model := ui.NewModel(ctrl, clients.GetCatalogClient())
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func readBatchInput(path string) (string, []string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		result, err := ingest.ExtractTexts(data)
		if err != nil {
			return "", nil, err
		}
		return strings.Join(result.Texts, "\n"),
			session.IngestNotices(result.Truncated, result.DecodeFallback), nil
	}

	return string(data), nil, nil
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false,
		"classify locally with VADER instead of calling the backend")
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "",
		"CSV file with a 'texto' column, or - for stdin")

	rootCmd.AddCommand(analyzeCmd, batchCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
