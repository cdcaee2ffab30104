package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gitsum/gitsum/schema"
)

// writeSummaryCSV emits one row per category plus a totals row, enough
// for spreadsheet-side tracking of a developer's output over time.
func writeSummaryCSV(w io.Writer, s *schema.Summary) error {
	header := []string{"category", "commits", "added", "deleted"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cat := range s.Categories {
			row := []string{
				string(cat.Category),
				strconv.Itoa(cat.Commits),
				strconv.Itoa(cat.Added),
				strconv.Itoa(cat.Deleted),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		total := []string{
			"Total",
			strconv.Itoa(s.TotalCommits),
			strconv.Itoa(s.TotalAdded),
			strconv.Itoa(s.TotalDeleted),
		}
		return cw.Write(total)
	})
}
