package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentwire/talentctl/talentwire"
)

var (
	indexTypeFlag string
	indexDocTags  []string
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage indexes and the documents stored in them",
}

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all indexes on the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListIndexes(cmd.Context())
		if err != nil {
			reportAPIError(err)
			return err
		}

		if len(resp.Value) == 0 {
			fmt.Println("No indexes found.")
			return nil
		}

		fmt.Printf("%-30s %-10s %s\n", "NAME", "TYPE", "DOCUMENTS")
		fmt.Println(strings.Repeat("-", 52))
		for _, idx := range resp.Value {
			fmt.Printf("%-30s %-10s %d\n", idx.Name, idx.IndexType, idx.DocumentCount)
		}
		return nil
	},
}

var indexCreateCmd = &cobra.Command{
	Use:   "create <index-id>",
	Short: "Create a new index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexType, err := parseIndexType(indexTypeFlag)
		if err != nil {
			return err
		}

		resp, err := client.CreateIndex(cmd.Context(), args[0], indexType)
		if err != nil {
			reportAPIError(err)
			return err
		}

		logger.Info().Str("index", args[0]).Str("transaction_id", resp.Info.TransactionID).
			Msg("Index created")
		fmt.Printf("✓ Created %s index %q\n", indexType, args[0])
		return nil
	},
}

var indexDeleteCmd = &cobra.Command{
	Use:   "delete <index-id>",
	Short: "Delete an index and every document in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := client.DeleteIndex(cmd.Context(), args[0]); err != nil {
			reportAPIError(err)
			return err
		}
		fmt.Printf("✓ Deleted index %q\n", args[0])
		return nil
	},
}

var indexAddCmd = &cobra.Command{
	Use:   "add <index-id> <parsed-document.json>...",
	Short: "Add parsed documents to an index",
	Long: `Add already-parsed documents to an index. The document kind is taken
from --type; the document ID is derived from the file name.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexType, err := parseIndexType(indexTypeFlag)
		if err != nil {
			return err
		}
		indexID, files := args[0], args[1:]

		for _, file := range files {
			docID := documentIDForFile(file)

			switch indexType {
			case talentwire.IndexTypeResume:
				resume, err := loadJSON[talentwire.ParsedResume](file)
				if err != nil {
					return err
				}
				_, err = client.IndexResume(cmd.Context(), indexID, docID, &talentwire.IndexResumeRequest{
					ResumeData:      resume,
					UserDefinedTags: indexDocTags,
				})
				if err != nil {
					reportAPIError(err)
					return err
				}
			case talentwire.IndexTypeJob:
				job, err := loadJSON[talentwire.ParsedJob](file)
				if err != nil {
					return err
				}
				_, err = client.IndexJob(cmd.Context(), indexID, docID, &talentwire.IndexJobRequest{
					JobData:         job,
					UserDefinedTags: indexDocTags,
				})
				if err != nil {
					reportAPIError(err)
					return err
				}
			}

			fmt.Printf("✓ Indexed %s as %s/%s\n", file, indexID, docID)
		}
		return nil
	},
}

var indexRemoveCmd = &cobra.Command{
	Use:   "remove <index-id> <document-id>...",
	Short: "Remove documents from an index",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexID, documentIDs := args[0], args[1:]

		// Single deletions take the cheaper single-document endpoint.
		var err error
		if len(documentIDs) == 1 {
			_, err = client.DeleteDocument(cmd.Context(), indexID, documentIDs[0])
		} else {
			_, err = client.DeleteDocuments(cmd.Context(), indexID, documentIDs)
		}
		if err != nil {
			reportAPIError(err)
			return err
		}

		fmt.Printf("✓ Removed %d document(s) from %q\n", len(documentIDs), indexID)
		return nil
	},
}

var indexTagsCmd = &cobra.Command{
	Use:   "tags <index-id> <document-id>",
	Short: "Replace the user-defined tags on an indexed document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		updates := []talentwire.DocumentTagsUpdate{
			{DocumentID: args[1], UserDefinedTags: indexDocTags},
		}
		if _, err := client.UpdateDocumentTags(cmd.Context(), args[0], updates); err != nil {
			reportAPIError(err)
			return err
		}
		fmt.Printf("✓ Updated tags on %s/%s to [%s]\n", args[0], args[1], strings.Join(indexDocTags, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexListCmd)
	indexCmd.AddCommand(indexCreateCmd)
	indexCmd.AddCommand(indexDeleteCmd)
	indexCmd.AddCommand(indexAddCmd)
	indexCmd.AddCommand(indexRemoveCmd)
	indexCmd.AddCommand(indexTagsCmd)

	indexCreateCmd.Flags().StringVarP(&indexTypeFlag, "type", "t", "resume", "index type (resume or job)")
	indexAddCmd.Flags().StringVarP(&indexTypeFlag, "type", "t", "resume", "document kind (resume or job)")
	indexAddCmd.Flags().StringSliceVar(&indexDocTags, "tag", nil, "user-defined tag for the documents (repeatable)")
	indexTagsCmd.Flags().StringSliceVar(&indexDocTags, "tag", nil, "tag to set (repeatable; empty clears all tags)")
}

func parseIndexType(value string) (talentwire.IndexType, error) {
	switch strings.ToLower(value) {
	case "resume", "resumes":
		return talentwire.IndexTypeResume, nil
	case "job", "jobs":
		return talentwire.IndexTypeJob, nil
	default:
		return "", fmt.Errorf("invalid index type: %s (must be 'resume' or 'job')", value)
	}
}
