package cmd

import (
	"fmt"
	"strconv"

	"marvel-metadata/feature/readinglist"

	"github.com/spf13/cobra"
)

var (
	similarCorpus corpusFlags
	similarLimit  int
)

// similarCmd represents the similar command
var similarCmd = &cobra.Command{
	Use:   "similar TITLE",
	Short: "List corpus titles similar to a title",
	Long:  `Shows which corpus titles share a match key fragment with TITLE. Useful when list-build reports a title as missing.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		source, release, err := similarCorpus.open(rt)
		if err != nil {
			return err
		}
		defer release()

		cfg := rt.cfg.Match
		if cmd.Flags().Changed("limit") {
			cfg.SimilarLimit = similarLimit
		}
		svc := readinglist.NewService(rt.log, cfg)

		sug, err := svc.Suggest(cmd.Context(), source, args[0])
		if err != nil {
			return err
		}

		if sug.Match.Matched {
			fmt.Printf("Match: %s (confidence %.1f)\n\n", sug.Match.URL, sug.Match.Confidence)
		} else {
			fmt.Printf("No match for %q\n\n", args[0])
		}

		if len(sug.Similar) == 0 {
			fmt.Println("No similar titles")
			return nil
		}

		rows := make([][]string, len(sug.Similar))
		for i, e := range sug.Similar {
			rows[i] = []string{strconv.Itoa(i + 1), e.Title, e.URL}
		}
		fmt.Println(renderTable([]string{"#", "Title", "URL"}, rows, []columnAlignment{alignRight}))
		return nil
	},
}

func init() {
	similarCorpus.register(similarCmd)
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 5, "Maximum number of titles to show")
	RootCmd.AddCommand(similarCmd)
}
