package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes one row per trial with a header line. Angles keep their
// full precision; correctness is encoded as 0/1 for easy aggregation.
func WriteCSV(w io.Writer, rec SessionRecord, trials []Trial) error {
	cw := csv.NewWriter(w)
	header := []string{"session_id", "trial", "target_angle", "selected_angle", "correct", "elapsed_ms"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	id := strconv.FormatInt(rec.ID, 10)
	for _, tr := range trials {
		row := []string{
			id,
			strconv.Itoa(tr.Index),
			strconv.FormatFloat(tr.TargetAngle, 'g', -1, 64),
			strconv.FormatFloat(tr.SelectedAngle, 'g', -1, 64),
			strconv.Itoa(boolToInt(tr.Correct)),
			strconv.FormatInt(tr.ElapsedMs, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
