package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentwire/talentctl/talentwire"
)

var (
	scoreSourceResume string
	scoreSourceJob    string
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a source document against target documents",
	Long: `Bimetric scoring compares one source document against a set of targets
without touching any index. The source is either a parsed resume or a parsed
job order; the targets decide which subcommand to use.`,
}

var scoreResumesCmd = &cobra.Command{
	Use:   "resumes <parsed-resume.json>...",
	Short: "Score the source against target resumes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &talentwire.BimetricScoreResumesRequest{}
		if err := loadScoreSource(&req.SourceResume, &req.SourceJob); err != nil {
			return err
		}
		for _, file := range args {
			resume, err := loadJSON[talentwire.ParsedResume](file)
			if err != nil {
				return err
			}
			req.TargetResumes = append(req.TargetResumes, talentwire.ParsedResumeWithID{
				ID:         documentIDForFile(file),
				ResumeData: resume,
			})
		}

		resp, err := client.BimetricScoreResumes(cmd.Context(), req)
		if err != nil {
			reportAPIError(err)
			return err
		}
		printScores(resp.Value.Matches)
		return nil
	},
}

var scoreJobsCmd = &cobra.Command{
	Use:   "jobs <parsed-job.json>...",
	Short: "Score the source against target job orders",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &talentwire.BimetricScoreJobsRequest{}
		if err := loadScoreSource(&req.SourceResume, &req.SourceJob); err != nil {
			return err
		}
		for _, file := range args {
			job, err := loadJSON[talentwire.ParsedJob](file)
			if err != nil {
				return err
			}
			req.TargetJobs = append(req.TargetJobs, talentwire.ParsedJobWithID{
				ID:      documentIDForFile(file),
				JobData: job,
			})
		}

		resp, err := client.BimetricScoreJobs(cmd.Context(), req)
		if err != nil {
			reportAPIError(err)
			return err
		}
		printScores(resp.Value.Matches)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.AddCommand(scoreResumesCmd)
	scoreCmd.AddCommand(scoreJobsCmd)

	for _, c := range []*cobra.Command{scoreResumesCmd, scoreJobsCmd} {
		c.Flags().StringVar(&scoreSourceResume, "source-resume", "", "parsed resume JSON file to use as the source")
		c.Flags().StringVar(&scoreSourceJob, "source-job", "", "parsed job JSON file to use as the source")
	}
}

// loadScoreSource fills exactly one of the source slots from the flags.
func loadScoreSource(resume **talentwire.ParsedResumeWithID, job **talentwire.ParsedJobWithID) error {
	switch {
	case scoreSourceResume != "" && scoreSourceJob != "":
		return fmt.Errorf("only one of --source-resume and --source-job may be given")
	case scoreSourceResume != "":
		data, err := loadJSON[talentwire.ParsedResume](scoreSourceResume)
		if err != nil {
			return err
		}
		*resume = &talentwire.ParsedResumeWithID{
			ID:         documentIDForFile(scoreSourceResume),
			ResumeData: data,
		}
	case scoreSourceJob != "":
		data, err := loadJSON[talentwire.ParsedJob](scoreSourceJob)
		if err != nil {
			return err
		}
		*job = &talentwire.ParsedJobWithID{
			ID:      documentIDForFile(scoreSourceJob),
			JobData: data,
		}
	default:
		return fmt.Errorf("one of --source-resume or --source-job is required")
	}
	return nil
}

func printScores(matches []talentwire.BimetricScoreResult) {
	if len(matches) == 0 {
		fmt.Println("No scores returned.")
		return
	}
	fmt.Printf("%-30s %8s %8s %8s\n", "TARGET", "SCORE", "REVERSE", "WEIGHTED")
	fmt.Println(strings.Repeat("-", 58))
	for _, m := range matches {
		fmt.Printf("%-30s %8.1f %8.1f %8.1f\n", m.ID, m.Score, m.ReverseScore, m.WeightedScore)
	}
}
