package runstore

import (
	"fmt"

	"github.com/gitsum/gitsum/schema"
)

// PrintStatus prints run store status information.
func PrintStatus(status schema.RunStoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run ID: %d\n", status.LastRunID)
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
	}
}

// PrintRuns prints recent run records, newest first.
func PrintRuns(records []schema.RunRecord) {
	if len(records) == 0 {
		fmt.Println("No recorded runs")
		return
	}
	for _, rec := range records {
		fmt.Printf("#%d %s %s\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), rec.RepoPath)
		fmt.Printf("    window=%s authors=%s commits=%d +%d -%d effort=%.1fpm cost=$%.2f (%dms)\n",
			rec.Window, rec.AuthorFilter, rec.CommitCount, rec.TotalAdded,
			rec.TotalDeleted, rec.EffortMonths, rec.Cost, rec.DurationMs)
	}
}
