package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/engine"
	"github.com/jonathan/resume-engine/internal/generation"
	"github.com/jonathan/resume-engine/internal/ledger"
	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
)

var (
	scoreLedgerPath string
	scoreJDPath     string
	scoreRankLimit  int
	scoreVerbose    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [job description]",
	Short: "Score a job description against a ledger file",
	Long: `Score a job description against a career ledger JSON file without a
database or LLM. The job description is read from --jd or passed as an
argument; the breakdown is printed as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreLedgerPath, "ledger", "", "Path to ledger snapshot JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJDPath, "jd", "", "Path to job description text file")
	scoreCmd.Flags().IntVar(&scoreRankLimit, "rank-limit", 0, "Maximum ranked projects (default 3)")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print a formatted breakdown instead of JSON")
	_ = scoreCmd.MarkFlagRequired("ledger")
	rootCmd.AddCommand(scoreCmd)
}

// staticStore serves a ledger snapshot loaded from disk.
type staticStore struct {
	snapshot ledger.Snapshot
}

func (s *staticStore) ListSkills(context.Context) ([]types.Skill, error) {
	return s.snapshot.Skills, nil
}

func (s *staticStore) ListProjects(context.Context) ([]types.Project, error) {
	return s.snapshot.Projects, nil
}

func (s *staticStore) ListExperiences(context.Context) ([]types.Experience, error) {
	return s.snapshot.Experiences, nil
}

func (s *staticStore) ListAchievements(context.Context) ([]types.Achievement, error) {
	return s.snapshot.Achievements, nil
}

func runScore(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(scoreLedgerPath)
	if err != nil {
		return fmt.Errorf("failed to read ledger file: %w", err)
	}
	if err := schemas.ValidateLedgerSnapshot(string(data)); err != nil {
		return fmt.Errorf("invalid ledger file: %w", err)
	}

	store := &staticStore{}
	if err := json.Unmarshal(data, &store.snapshot); err != nil {
		return fmt.Errorf("failed to parse ledger file: %w", err)
	}

	jd, err := readJobDescription(args)
	if err != nil {
		return err
	}

	eng, err := engine.New(nil, ledger.NewAccessor(store), generation.New(nil), engine.Options{
		RankLimit: scoreRankLimit,
	})
	if err != nil {
		return err
	}

	breakdown, err := eng.Score(context.Background(), jd)
	if err != nil {
		return err
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintBreakdown(breakdown)
		printer.PrintRankedProjects(breakdown.RankedProjects)
		printer.PrintSuggestions(breakdown.ImprovementSuggestions)
		return nil
	}

	out, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readJobDescription(args []string) (string, error) {
	if scoreJDPath != "" {
		data, err := os.ReadFile(scoreJDPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a job description as an argument or via --jd")
}
