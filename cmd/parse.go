package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/talentwire/talentctl/talentwire"
)

var (
	parseGeocode bool
	parseIndexTo string
	parseTags    []string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse resume and job order documents",
}

var parseResumeCmd = &cobra.Command{
	Use:   "resume <file-or-dir>...",
	Short: "Parse one or more resume files",
	Long: `Parse resume files into structured candidate data. Directory arguments
are expanded to the files they contain. With --index-to the parsed documents
are stored into an index in the same call; with --geocode the candidate
address is geocoded as well.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandFiles(args)
		if err != nil {
			return err
		}
		return runParseBatch(cmd.Context(), files, parseOne(client.ParseResume))
	},
}

var parseJobCmd = &cobra.Command{
	Use:   "job <file-or-dir>...",
	Short: "Parse one or more job order files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandFiles(args)
		if err != nil {
			return err
		}
		return runParseBatch(cmd.Context(), files, parseOne(client.ParseJob))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.AddCommand(parseResumeCmd)
	parseCmd.AddCommand(parseJobCmd)

	for _, c := range []*cobra.Command{parseResumeCmd, parseJobCmd} {
		c.Flags().BoolVar(&parseGeocode, "geocode", false, "geocode the document address while parsing")
		c.Flags().StringVar(&parseIndexTo, "index-to", "", "store the parsed document into this index")
		c.Flags().StringSliceVar(&parseTags, "tag", nil, "user-defined tag for indexed documents (repeatable)")
	}
}

// parseOutcome is the per-file result of a batch parse.
type parseOutcome struct {
	file    string
	txnID   string
	warning string
	err     error
}

// parseOne adapts one of the typed parse operations to the batch runner.
func parseOne[T any](op func(context.Context, *talentwire.ParseRequest) (*talentwire.Response[T], error)) func(context.Context, string) parseOutcome {
	return func(ctx context.Context, file string) parseOutcome {
		req, err := buildParseRequest(file)
		if err != nil {
			return parseOutcome{file: file, err: err}
		}

		resp, err := op(ctx, req)
		if err != nil {
			// An embedded stage can fail while the parse itself succeeded;
			// report that as a warning rather than a batch failure.
			if geoErr, ok := talentwire.AsGeocodeError(err); ok {
				return parseOutcome{file: file, txnID: geoErr.TransactionID,
					warning: "geocoding failed: " + geoErr.Message}
			}
			if idxErr, ok := talentwire.AsIndexError(err); ok {
				return parseOutcome{file: file, txnID: idxErr.TransactionID,
					warning: "indexing failed: " + idxErr.Message}
			}
			return parseOutcome{file: file, err: err}
		}
		return parseOutcome{file: file, txnID: resp.Info.TransactionID}
	}
}

// buildParseRequest reads a document file and assembles the parse request
// from the command flags and configuration.
func buildParseRequest(file string) (*talentwire.ParseRequest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}

	req := &talentwire.ParseRequest{
		Document: talentwire.NewDocument(data, info.ModTime()),
	}

	if parseGeocode {
		req.GeocodeOptions = &talentwire.GeocodeOptions{
			IncludeGeocoding: true,
			Provider:         talentwire.GeocodeProvider(cfg.Geocoding.Provider),
			ProviderKey:      cfg.Geocoding.ProviderKey,
		}
	}

	if parseIndexTo != "" {
		req.IndexingOptions = &talentwire.IndexingOptions{
			IndexID:         parseIndexTo,
			DocumentID:      documentIDForFile(file),
			UserDefinedTags: parseTags,
		}
	}

	return req, nil
}

// expandFiles flattens directory arguments into the regular files they
// contain (non-recursive).
func expandFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to parse")
	}
	return files, nil
}

// documentIDForFile derives a stable document ID from the file name.
func documentIDForFile(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// runParseBatch parses the given files concurrently, capped by the configured
// concurrency, and prints a per-file summary.
func runParseBatch(ctx context.Context, files []string, parse func(context.Context, string) parseOutcome) error {
	logger.Info().Int("files", len(files)).Int("concurrency", cfg.Parsing.Concurrency).
		Msg("Parsing documents")

	outcomes := make([]parseOutcome, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parsing.Concurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			outcomes[i] = parse(ctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed int
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			failed++
			fmt.Printf("✗ %s: %v\n", o.file, o.err)
			reportAPIError(o.err)
		case o.warning != "":
			fmt.Printf("⚠ %s: parsed with warning (%s) [txn %s]\n", o.file, o.warning, o.txnID)
		default:
			fmt.Printf("✓ %s [txn %s]\n", o.file, o.txnID)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to parse", failed, len(files))
	}
	return nil
}
