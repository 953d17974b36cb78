package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentwire/talentctl/filter"
	"github.com/talentwire/talentctl/talentwire"
)

var (
	matchIndexes    []string
	matchTake       int
	matchFilterExpr string
	matchPreset     string
	matchUI         bool
	searchExpr      string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match parsed documents against indexes",
}

var matchResumeCmd = &cobra.Command{
	Use:   "resume <parsed-resume.json>",
	Short: "Match a parsed resume against job or resume indexes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := loadJSON[talentwire.ParsedResume](args[0])
		if err != nil {
			return err
		}
		req := &talentwire.MatchResumeRequest{
			ResumeData:           resume,
			IndexIDsToSearchInto: matchTargetIndexes(),
			Take:                 matchTakeCount(),
		}
		if matchUI {
			resp, err := client.UI(talentwire.UIOptions{}).MatchResume(cmd.Context(), req)
			return printUISession(resp, err)
		}
		resp, err := client.MatchResume(cmd.Context(), req)
		return printMatches(resp, err)
	},
}

var matchJobCmd = &cobra.Command{
	Use:   "job <parsed-job.json>",
	Short: "Match a parsed job order against indexes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := loadJSON[talentwire.ParsedJob](args[0])
		if err != nil {
			return err
		}
		req := &talentwire.MatchJobRequest{
			JobData:              job,
			IndexIDsToSearchInto: matchTargetIndexes(),
			Take:                 matchTakeCount(),
		}
		if matchUI {
			resp, err := client.UI(talentwire.UIOptions{}).MatchJob(cmd.Context(), req)
			return printUISession(resp, err)
		}
		resp, err := client.MatchJob(cmd.Context(), req)
		return printMatches(resp, err)
	},
}

var matchDocumentCmd = &cobra.Command{
	Use:   "document <index-id> <document-id>",
	Short: "Match a document already stored in an index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &talentwire.MatchIndexedDocumentRequest{
			IndexIDsToSearchInto: matchTargetIndexes(),
			Take:                 matchTakeCount(),
		}
		if matchUI {
			resp, err := client.UI(talentwire.UIOptions{}).MatchIndexedDocument(cmd.Context(), args[0], args[1], req)
			return printUISession(resp, err)
		}
		resp, err := client.MatchIndexedDocument(cmd.Context(), args[0], args[1], req)
		return printMatches(resp, err)
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a filtered search over indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &talentwire.SearchRequest{
			IndexIDsToSearchInto: matchTargetIndexes(),
			Take:                 matchTakeCount(),
		}
		if searchExpr != "" {
			req.FilterCriteria = &talentwire.FilterCriteria{SearchExpression: searchExpr}
		}

		if matchUI {
			resp, err := client.UI(talentwire.UIOptions{}).Search(cmd.Context(), req)
			return printUISession(resp, err)
		}

		resp, err := client.Search(cmd.Context(), req)
		if err != nil {
			reportAPIError(err)
			return err
		}

		if len(resp.Value.Results) == 0 {
			fmt.Println("No documents found.")
			return nil
		}
		fmt.Printf("Found %d of %d documents:\n", resp.Value.CurrentCount, resp.Value.TotalCount)
		for _, r := range resp.Value.Results {
			fmt.Printf("• %s/%s", r.IndexID, r.ID)
			if len(r.UserDefinedTags) > 0 {
				fmt.Printf("  [%s]", strings.Join(r.UserDefinedTags, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(searchCmd)
	matchCmd.AddCommand(matchResumeCmd)
	matchCmd.AddCommand(matchJobCmd)
	matchCmd.AddCommand(matchDocumentCmd)

	for _, c := range []*cobra.Command{matchResumeCmd, matchJobCmd, matchDocumentCmd, searchCmd} {
		c.Flags().StringSliceVarP(&matchIndexes, "indexes", "i", nil, "index IDs to search (default from config)")
		c.Flags().IntVar(&matchTake, "take", 0, "maximum number of results (default from config)")
		c.Flags().BoolVar(&matchUI, "ui", false, "generate an interactive session URL instead of printing results")
	}
	for _, c := range []*cobra.Command{matchResumeCmd, matchJobCmd, matchDocumentCmd} {
		c.Flags().StringVarP(&matchFilterExpr, "filter", "f", "", "client-side filter expression")
		c.Flags().StringVarP(&matchPreset, "preset", "p", "", "use a preset filter from config")
	}
	searchCmd.Flags().StringVarP(&searchExpr, "expression", "e", "", "server-side search expression")
}

func matchTargetIndexes() []string {
	if len(matchIndexes) > 0 {
		return matchIndexes
	}
	return cfg.Matching.Indexes
}

func matchTakeCount() int {
	if matchTake > 0 {
		return matchTake
	}
	return cfg.Matching.Take
}

// getFilterExpression determines the client-side filter to apply.
// Priority: command line filter > preset > config default > none.
func getFilterExpression() (string, error) {
	if matchFilterExpr != "" {
		return matchFilterExpr, nil
	}
	if matchPreset != "" {
		if expr, ok := cfg.Matching.Presets[matchPreset]; ok {
			return expr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", matchPreset)
	}
	return cfg.Matching.DefaultFilter, nil
}

// printMatches applies the client-side filter and renders the score table.
func printMatches(resp *talentwire.MatchResponse, err error) error {
	if err != nil {
		reportAPIError(err)
		return err
	}

	matches := resp.Value.Matches

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		f, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		before := len(matches)
		matches = f.Apply(matches)
		logger.Debug().Str("filter", expr).Int("before", before).Int("after", len(matches)).
			Msg("Applied client-side filter")
	}

	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	fmt.Printf("Showing %d of %d matches:\n", len(matches), resp.Value.TotalCount)
	fmt.Printf("%-30s %-20s %8s %8s\n", "DOCUMENT", "INDEX", "SCORE", "WEIGHTED")
	fmt.Println(strings.Repeat("-", 70))
	for _, m := range matches {
		fmt.Printf("%-30s %-20s %8.1f %8.1f\n", m.ID, m.IndexID, m.Score, m.WeightedScore)
		if len(m.UserDefinedTags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(m.UserDefinedTags, ", "))
		}
	}
	return nil
}

// printUISession renders the hosted session URL of a --ui run.
func printUISession(resp *talentwire.UISessionResponse, err error) error {
	if err != nil {
		reportAPIError(err)
		return err
	}
	fmt.Printf("Session %s ready:\n%s\n", resp.Value.SessionID, resp.Value.URL)
	return nil
}

// loadJSON reads a JSON document file into the given type.
func loadJSON[T any](file string) (*T, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	return &value, nil
}
