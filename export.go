package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ncruces/zenity"

	"github.com/JoeLucas99/DemTestFinal3/results"
)

// exportResults asks for a destination and writes the finished session as
// CSV. The returned note is shown on the results screen.
func (a *App) exportResults() string {
	if len(a.trials) == 0 {
		return "nothing to export"
	}

	name, err := zenity.SelectFileSave(
		zenity.Title("Export session as CSV"),
		zenity.Filename(fmt.Sprintf("session-%d.csv", a.record.ID)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "CSV files", Patterns: []string{"*.csv"}}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return ""
		}
		return fmt.Sprintf("export failed: %v", err)
	}

	if err := writeCSVFile(name, a.record, a.trials); err != nil {
		if derr := zenity.Error(err.Error(), zenity.Title("Export failed")); derr != nil {
			log.Printf("Failed to show error dialog: %v", derr)
		}
		return fmt.Sprintf("export failed: %v", err)
	}
	return fmt.Sprintf("exported to %s", name)
}

func writeCSVFile(name string, rec results.SessionRecord, trials []results.Trial) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := results.WriteCSV(f, rec, trials); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}
