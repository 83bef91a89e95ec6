package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"marvel-metadata/core/storage"
	"marvel-metadata/feature/issues"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	parseOut        string
	parseYear       int
	parseFromBucket bool
	parseUploadKey  string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [PATH...]",
	Short: "Decode saved __data.json payloads to JSONL",
	Long: `Decodes one or more saved __data.json payloads (files, or directories of *.json
files) into issue records and writes them as JSONL. With --from-bucket the payloads are
read from the configured storage bucket and prefix instead.

The year page of each payload is taken from --year, or inferred from a four-digit year
in its name.`,
	Example: `  marvel-metadata parse response-2022.json --out data/issues.jsonl --year 2022
  marvel-metadata parse data/payloads/ --out data/issues.jsonl
  marvel-metadata parse --from-bucket --upload exports/issues.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if parseFromBucket == (len(args) > 0) {
			return errors.New("pass either payload paths or --from-bucket")
		}
		if parseOut == "" && parseUploadKey == "" {
			return errors.New("one of --out or --upload is required")
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		ctx := cmd.Context()

		var (
			source issues.Source = issues.FileSource{Paths: args}
			client storage.Client
		)
		if parseFromBucket || parseUploadKey != "" {
			client, err = storage.NewClient(rt.cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}
		if parseFromBucket {
			source = issues.BucketSource{Client: client, Bucket: rt.cfg.Storage.Bucket, Prefix: rt.cfg.Storage.Prefix}
		}

		payloads, err := source.Payloads(ctx)
		if err != nil {
			return err
		}
		if len(payloads) == 0 {
			return errors.New("no payloads found")
		}
		if parseYear > 0 {
			for i := range payloads {
				year := parseYear
				payloads[i].Year = &year
			}
		}

		rt.log.Info("Decoding payloads", zap.Int("count", len(payloads)), zap.Int("workers", rt.cfg.Decode.Workers))

		svc := issues.NewService(rt.log, rt.cfg.Decode)
		results, err := svc.DecodeAll(ctx, payloads)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}

		fmt.Println(renderTable(
			[]string{"Payload", "Year", "Pool", "Issues", "Dropped", "Null refs", "Status"},
			parseRows(results),
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft},
		))

		all := issues.Flatten(results)
		if len(all) == 0 {
			return errors.New("no issues decoded")
		}

		if parseOut != "" {
			n, err := issues.WriteJSONLFile(parseOut, all)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", parseOut, err)
			}
			rt.log.Info("Wrote JSONL", zap.String("file", parseOut), zap.Int("issues", n))
		}
		if parseUploadKey != "" {
			n, err := issues.UploadJSONL(ctx, client, rt.cfg.Storage.Bucket, parseUploadKey, all)
			if err != nil {
				return err
			}
			rt.log.Info("Uploaded JSONL", zap.String("bucket", rt.cfg.Storage.Bucket), zap.String("key", parseUploadKey), zap.Int("issues", n))
		}

		fmt.Printf("Parsed %d issues from %d payloads\n", len(all), len(results))
		return nil
	},
}

func parseRows(results []issues.PayloadResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		year := "-"
		if r.Year != nil {
			year = strconv.Itoa(*r.Year)
		}
		if r.Err != nil {
			rows = append(rows, []string{r.Name, year, "", "", "", "", r.Err.Error()})
			continue
		}
		d := r.Result.Diagnostics
		rows = append(rows, []string{
			r.Name,
			year,
			strconv.Itoa(d.PoolSize),
			strconv.Itoa(d.Decoded),
			strconv.Itoa(d.Dropped),
			strconv.Itoa(d.OutOfRangeRefs),
			"ok",
		})
	}
	return rows
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Output JSONL file path")
	parseCmd.Flags().IntVarP(&parseYear, "year", "y", 0, "Year page to tag issues with (default: inferred from the payload name)")
	parseCmd.Flags().BoolVar(&parseFromBucket, "from-bucket", false, "Read payloads from the configured storage bucket and prefix")
	parseCmd.Flags().StringVar(&parseUploadKey, "upload", "", "Also upload the JSONL to this object key in the storage bucket")
	RootCmd.AddCommand(parseCmd)
}
