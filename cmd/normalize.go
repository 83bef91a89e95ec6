package cmd

import (
	"fmt"
	"strconv"

	"marvel-metadata/core/normalize"

	"github.com/spf13/cobra"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize TITLE...",
	Short: "Show how titles are normalized for matching",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows := make([][]string, 0, len(args))
		for _, title := range args {
			series, _ := normalize.SeriesName(title)
			issue, _ := normalize.IssueNumber(title)
			year := ""
			if y, ok := normalize.Year(title); ok {
				year = strconv.Itoa(y)
			}
			rows = append(rows, []string{title, normalize.ForMatch(title), series, year, issue})
		}
		fmt.Println(renderTable(
			[]string{"Title", "Match key", "Series", "Year", "Issue"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
		))
	},
}

func init() {
	RootCmd.AddCommand(normalizeCmd)
}
