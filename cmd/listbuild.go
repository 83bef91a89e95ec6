package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"marvel-metadata/feature/readinglist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listCorpus      corpusFlags
	listName        string
	listDescription string
	listRange       string
	listNote        string
	listFuzzy       bool
	listFormat      string
	listOut         string
)

// listBuildCmd represents the list-build command
var listBuildCmd = &cobra.Command{
	Use:   "list-build TITLE...",
	Short: "Build a reading list checklist",
	Long: `Matches each title against a corpus of decoded issues and renders a checklist
in Markdown or JSON. A title such as "Avengers (2012) #1" with --range 1-44 expands to
one entry per issue.`,
	Example: `  marvel-metadata list-build "Avengers (2012) #1" --range 1-44 --from-jsonl data/issues.jsonl --out out/avengers.md
  marvel-metadata list-build "Infinity (2013) #1" "New Avengers (2013) #1" --from-db --fuzzy --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		source, release, err := listCorpus.open(rt)
		if err != nil {
			return err
		}
		defer release()

		cfg := rt.cfg.Match
		if cmd.Flags().Changed("fuzzy") {
			cfg.Fuzzy = listFuzzy
		}
		svc := readinglist.NewService(rt.log, cfg)

		var items []readinglist.Item
		for _, title := range args {
			items = append(items, svc.Expander().Item(readinglist.Item{Title: title, Note: listNote}, listRange)...)
		}

		name := listName
		if name == "" {
			name = args[0]
		}

		list, err := svc.Build(cmd.Context(), source, name, listDescription, items)
		if err != nil {
			return err
		}

		if err := writeChecklist(list, rt.log); err != nil {
			return err
		}

		missing := list.Missing()
		fmt.Fprintf(os.Stderr, "Matched: %d/%d\n", list.Found(), len(list.Items))
		if len(missing) > 0 {
			fmt.Fprintln(os.Stderr, "\nMissing titles:")
			for _, item := range missing {
				fmt.Fprintf(os.Stderr, "  - %s\n", item.Title)
			}
		}
		return nil
	},
}

func writeChecklist(list *readinglist.Checklist, log *zap.Logger) error {
	if listOut == "" {
		w := bufio.NewWriter(os.Stdout)
		if err := readinglist.Format(w, list, listFormat); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return w.Flush()
	}

	if err := writeChecklistFile(listOut, listFormat, list); err != nil {
		return err
	}
	log.Info("Checklist written", zap.String("file", listOut))
	return nil
}

// writeChecklistFile writes list to path, creating parent directories as needed.
func writeChecklistFile(path, format string, list *readinglist.Checklist) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := readinglist.Format(f, list, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if !strings.EqualFold(format, readinglist.FormatJSON) {
		if _, err := io.WriteString(f, "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

func init() {
	listCorpus.register(listBuildCmd)
	listBuildCmd.Flags().StringVar(&listName, "name", "", "List name (default: the first title)")
	listBuildCmd.Flags().StringVar(&listDescription, "description", "", "List description")
	listBuildCmd.Flags().StringVar(&listRange, "range", "", `Issue range "A-B" applied to every title`)
	listBuildCmd.Flags().StringVar(&listNote, "note", "", "Note attached to unexpanded titles")
	listBuildCmd.Flags().BoolVar(&listFuzzy, "fuzzy", false, "Enable normalized and simplified title matching")
	listBuildCmd.Flags().StringVarP(&listFormat, "format", "f", readinglist.FormatMarkdown, "Output format: markdown or json")
	listBuildCmd.Flags().StringVarP(&listOut, "out", "o", "", "Output file path (default: stdout)")
	RootCmd.AddCommand(listBuildCmd)
}
