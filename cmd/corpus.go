package cmd

import (
	"errors"
	"fmt"

	"marvel-metadata/core/database"
	"marvel-metadata/feature/readinglist"

	"github.com/spf13/cobra"
)

// corpusFlags selects where titles are matched from.
type corpusFlags struct {
	jsonl string
	db    bool
}

func (f *corpusFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.jsonl, "from-jsonl", "", "Use a JSONL export as the title corpus")
	cmd.Flags().BoolVar(&f.db, "from-db", false, "Use the configured database table as the title corpus")
}

// open returns the selected corpus source and a function releasing it.
func (f *corpusFlags) open(rt *runtime) (readinglist.CorpusSource, func(), error) {
	switch {
	case f.jsonl == "" && !f.db:
		return nil, nil, errors.New("must specify --from-jsonl or --from-db")
	case f.jsonl != "" && f.db:
		return nil, nil, errors.New("specify only one of --from-jsonl or --from-db")
	case f.jsonl != "":
		return readinglist.JSONLSource{Path: f.jsonl}, func() {}, nil
	}

	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection required: %w", err)
	}
	release := func() { _ = database.Close(db) }
	return readinglist.DBSource{DB: db, Table: rt.cfg.Match.CorpusTable}, release, nil
}
