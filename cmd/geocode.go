package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talentwire/talentctl/talentwire"
)

var (
	geocodeIndexTo string
	geocodeDocID   string
	geocodeTags    []string
)

// geocodeCmd represents the geocode command
var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Geocode already-parsed documents",
	Long: `Geocode the address of an already-parsed resume or job order. With
--index-to the geocoded document is stored into an index in the same call.`,
}

var geocodeResumeCmd = &cobra.Command{
	Use:   "resume <parsed-resume.json>",
	Short: "Geocode a parsed resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := loadJSON[talentwire.ParsedResume](args[0])
		if err != nil {
			return err
		}

		if geocodeIndexTo != "" {
			resp, err := client.GeocodeAndIndexResume(cmd.Context(), geocodeIndexTo, geocodeDocumentID(args[0]),
				&talentwire.GeocodeAndIndexResumeRequest{
					ResumeData:      resume,
					Provider:        talentwire.GeocodeProvider(cfg.Geocoding.Provider),
					ProviderKey:     cfg.Geocoding.ProviderKey,
					UserDefinedTags: geocodeTags,
				})
			if err != nil {
				return reportGeocodeIndexError(err)
			}
			fmt.Printf("✓ Geocoded and indexed into %s/%s\n", geocodeIndexTo, geocodeDocumentID(args[0]))
			printCoordinates(resp.Value.ResumeData.Location)
			return nil
		}

		resp, err := client.GeocodeResume(cmd.Context(), &talentwire.GeocodeResumeRequest{
			ResumeData:  resume,
			Provider:    talentwire.GeocodeProvider(cfg.Geocoding.Provider),
			ProviderKey: cfg.Geocoding.ProviderKey,
		})
		if err != nil {
			reportAPIError(err)
			return err
		}
		printCoordinates(resp.Value.ResumeData.Location)
		return nil
	},
}

var geocodeJobCmd = &cobra.Command{
	Use:   "job <parsed-job.json>",
	Short: "Geocode a parsed job order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := loadJSON[talentwire.ParsedJob](args[0])
		if err != nil {
			return err
		}

		if geocodeIndexTo != "" {
			resp, err := client.GeocodeAndIndexJob(cmd.Context(), geocodeIndexTo, geocodeDocumentID(args[0]),
				&talentwire.GeocodeAndIndexJobRequest{
					JobData:         job,
					Provider:        talentwire.GeocodeProvider(cfg.Geocoding.Provider),
					ProviderKey:     cfg.Geocoding.ProviderKey,
					UserDefinedTags: geocodeTags,
				})
			if err != nil {
				return reportGeocodeIndexError(err)
			}
			fmt.Printf("✓ Geocoded and indexed into %s/%s\n", geocodeIndexTo, geocodeDocumentID(args[0]))
			printCoordinates(resp.Value.JobData.Location)
			return nil
		}

		resp, err := client.GeocodeJob(cmd.Context(), &talentwire.GeocodeJobRequest{
			JobData:     job,
			Provider:    talentwire.GeocodeProvider(cfg.Geocoding.Provider),
			ProviderKey: cfg.Geocoding.ProviderKey,
		})
		if err != nil {
			reportAPIError(err)
			return err
		}
		printCoordinates(resp.Value.JobData.Location)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
	geocodeCmd.AddCommand(geocodeResumeCmd)
	geocodeCmd.AddCommand(geocodeJobCmd)

	for _, c := range []*cobra.Command{geocodeResumeCmd, geocodeJobCmd} {
		c.Flags().StringVar(&geocodeIndexTo, "index-to", "", "store the geocoded document into this index")
		c.Flags().StringVar(&geocodeDocID, "doc-id", "", "document ID to store under (default derived from file name)")
		c.Flags().StringSliceVar(&geocodeTags, "tag", nil, "user-defined tag for the indexed document (repeatable)")
	}
}

func geocodeDocumentID(file string) string {
	if geocodeDocID != "" {
		return geocodeDocID
	}
	return documentIDForFile(file)
}

// reportGeocodeIndexError explains a partial failure: the geocode worked but
// storing the result did not.
func reportGeocodeIndexError(err error) error {
	if idxErr, ok := talentwire.AsIndexError(err); ok {
		logger.Error().Str("code", idxErr.Code).Str("transaction_id", idxErr.TransactionID).
			Msg("Document was geocoded but could not be indexed")
		return fmt.Errorf("indexing failed after geocoding: %s", idxErr.Message)
	}
	reportAPIError(err)
	return err
}

func printCoordinates(loc *talentwire.Location) {
	if loc == nil || loc.GeoCoordinates == nil {
		fmt.Println("✓ Geocoded, but no coordinates were returned.")
		return
	}
	fmt.Printf("✓ Coordinates: %.5f, %.5f (%s)\n",
		loc.GeoCoordinates.Latitude, loc.GeoCoordinates.Longitude, loc.GeoCoordinates.Source)
}
