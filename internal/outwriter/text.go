package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// directoryLimit caps the directory impact table.
const directoryLimit = 10

// writeSummaryText renders the full colorized report.
func writeSummaryText(w io.Writer, s *schema.Summary, t *Theme) error {
	fmt.Fprintf(w, "\n%s\n\n", t.Header.Sprint("=== Git Commit Summary ==="))

	if len(s.ActiveAuthors) > 0 {
		fmt.Fprintf(w, "%s %s\n", t.Label.Sprint("Commits by:"), strings.Join(s.ActiveAuthors, ", "))
	} else {
		fmt.Fprintf(w, "%s no active users found\n", t.Label.Sprint("Commits by:"))
	}

	fmt.Fprintf(w, "\n%s %d\n", t.Label.Sprint("Total commits:"), s.TotalCommits)
	if s.Frequency != nil {
		fmt.Fprintf(w, "%s %.1f per %s\n", t.Label.Sprint("Commit frequency:"), s.Frequency.Rate, s.Frequency.Period)
	}
	fmt.Fprintf(w, "%s %s %s\n",
		t.Label.Sprint("Lines changed:"),
		t.Add.Sprintf("+%d", s.TotalAdded),
		t.Del.Sprintf("-%d", s.TotalDeleted))

	writeCocomoBlock(w, s, t)
	writeCategoryBlock(w, s, t)
	writeHeavyBlock(w, s, t)
	writeRecentBlock(w, s, t)
	return writeDirectoryTable(w, s, t)
}

// writeCocomoBlock prints the effort projection.
func writeCocomoBlock(w io.Writer, s *schema.Summary, t *Theme) {
	basis := "impact lines"
	if s.Cocomo.Pure {
		basis = "net lines"
	}
	fmt.Fprintf(w, "\n%s\n", t.Label.Sprint("Estimated effort (COCOMO organic):"))
	fmt.Fprintf(w, "    %s %.2f KLOC (%s)\n", t.Accent.Sprint("Size:"), s.Cocomo.KLOC, basis)
	fmt.Fprintf(w, "    %s %.1f person-months\n", t.Accent.Sprint("Effort:"), s.Cocomo.EffortMonths)
	fmt.Fprintf(w, "    %s %.1f months, %.1f developers\n", t.Accent.Sprint("Schedule:"), s.Cocomo.DevTime, s.Cocomo.AvgStaff)
	fmt.Fprintf(w, "    %s $%.2f\n", t.Accent.Sprint("Cost:"), s.Cocomo.Cost)
}

// writeCategoryBlock prints per-category counts, already alphabetical.
func writeCategoryBlock(w io.Writer, s *schema.Summary, t *Theme) {
	fmt.Fprintf(w, "\n%s\n", t.Label.Sprint("Commits by category:"))
	for _, cat := range s.Categories {
		fmt.Fprintf(w, "    %s %d commits (%s %s)\n",
			t.Accent.Sprintf("%s:", cat.Category),
			cat.Commits,
			t.Add.Sprintf("+%d", cat.Added),
			t.Del.Sprintf("-%d", cat.Deleted))
	}
}

// writeHeavyBlock prints the highest-churn commits.
func writeHeavyBlock(w io.Writer, s *schema.Summary, t *Theme) {
	fmt.Fprintf(w, "\n%s\n", t.Label.Sprintf("Heavy changes (top %d):", len(s.HeavyCommits)))
	for _, c := range s.HeavyCommits {
		fmt.Fprintf(w, "    %s %s (%d lines: %s %s)\n",
			t.Accent.Sprint(c.ShortHash()),
			c.Subject,
			c.Churn(),
			t.Add.Sprintf("+%d", c.Added),
			t.Del.Sprintf("-%d", c.Deleted))
	}
}

// writeRecentBlock prints per-day commit detail, newest day first.
func writeRecentBlock(w io.Writer, s *schema.Summary, t *Theme) {
	fmt.Fprintf(w, "\n%s\n", t.Label.Sprint("Recent activity:"))
	for _, day := range s.RecentDays {
		fmt.Fprintf(w, "    %s\n", t.Date.Sprintf("%s:", day.Date.Format(contract.DateFormat)))
		for _, c := range day.Commits {
			fmt.Fprintf(w, "        %s %s (%s %s)\n",
				t.Accent.Sprint(c.ShortHash()),
				c.Subject,
				t.Add.Sprintf("+%d", c.Added),
				t.Del.Sprintf("-%d", c.Deleted))
		}
	}
}

// writeDirectoryTable renders the top directories by impact as a table.
func writeDirectoryTable(w io.Writer, s *schema.Summary, t *Theme) error {
	if len(s.Directories) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\n%s\n", t.Label.Sprintf("Files impact (top %d, level %d):", directoryLimit, s.DirLevel))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Directory", "Files", "Added", "Deleted", "Impact"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxPath := maxTablePathWidth()
	var data [][]string
	for i, d := range s.Directories {
		if i >= directoryLimit {
			break
		}
		data = append(data, []string{
			contract.TruncatePath(d.Path, maxPath),
			strconv.Itoa(d.Files),
			strconv.Itoa(d.Added),
			strconv.Itoa(d.Deleted),
			strconv.Itoa(d.Impact),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// maxTablePathWidth leaves room for the numeric columns within the
// detected terminal width.
func maxTablePathWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Conservative default for narrow terminals and CI
	}
	const numericColumns = 40
	if width-numericColumns < 20 {
		return 20
	}
	return width - numericColumns
}
