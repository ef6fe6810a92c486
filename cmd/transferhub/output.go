package main

import (
	"fmt"
	"io"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/review"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// render writes payload as indented JSON or as the table fill builds.
func render(w io.Writer, format string, payload any, fill func(t table.Writer)) error {
	switch format {
	case outputJSON:
		out, err := sonic.ConfigStd.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case outputTable, "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		fill(t)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputTable, outputJSON)
	}
}

func renderRunSummary(w io.Writer, format string, s usecase.RunSummary) error {
	return render(w, format, s, func(t table.Writer) {
		t.SetTitle("pass " + s.Pass)
		t.AppendHeader(table.Row{"Field", "Value"})
		t.AppendRows([]table.Row{
			{"run id", s.RunID},
			{"started", s.StartedAt.Format("2006-01-02 15:04:05")},
			{"duration", s.Duration},
			{"tasks", s.Tasks},
			{"resolved", s.Resolved},
			{"unresolved", s.Unresolved},
			{"skipped", s.Skipped},
			{"rows updated", s.RowsUpdated},
			{"conflicts", s.Conflicts},
			{"checkpoints", s.Checkpoints},
		})
	})
}

func renderRescueTasks(w io.Writer, format string, tasks []usecase.RescueTask) error {
	return render(w, format, tasks, func(t table.Writer) {
		t.SetTitle("rescue tasks")
		t.AppendHeader(table.Row{"Club ID", "Club", "Season", "State"})
		for _, task := range tasks {
			t.AppendRow(table.Row{task.ClubID, task.ClubName, task.Season, task.State})
		}
		t.AppendFooter(table.Row{"", "", "total", len(tasks)})
	})
}

func renderReviewItems(w io.Writer, format string, items []review.Item) error {
	return render(w, format, items, func(t table.Writer) {
		t.SetTitle("manual review needed")
		t.AppendHeader(table.Row{"Club ID", "Club", "Season", "Country", "Occurrences"})
		for _, item := range items {
			t.AppendRow(table.Row{item.ClubID, item.ClubName, item.Season, item.ExistingCountry, item.Occurrences})
		}
		t.AppendFooter(table.Row{"", "", "", "total", len(items)})
	})
}

func renderConflicts(w io.Writer, format string, conflicts []usecase.LeagueConflict) error {
	return render(w, format, conflicts, func(t table.Writer) {
		t.SetTitle("club seasons with more than one league")
		t.AppendHeader(table.Row{"Club ID", "Season", "Leagues"})
		for _, c := range conflicts {
			t.AppendRow(table.Row{c.ClubID, c.Season, fmt.Sprint(c.Leagues)})
		}
	})
}

func renderAudit(w io.Writer, format string, audit usecase.ClubAudit) error {
	return render(w, format, audit, func(t table.Writer) {
		t.SetTitle(strconv.Itoa(len(audit.Names)) + " canonical club names")
		t.AppendHeader(table.Row{"Name A", "Name B", "Similarity"})
		for _, s := range audit.Suggestions {
			t.AppendRow(table.Row{s.A, s.B, fmt.Sprintf("%.3f", s.Similarity)})
		}
	})
}

func renderCoverage(w io.Writer, format string, c usecase.Coverage) error {
	return render(w, format, c, func(t table.Writer) {
		t.SetTitle("base table coverage")
		t.AppendHeader(table.Row{"Metric", "Count"})
		t.AppendRows([]table.Row{
			{"records", c.Records},
			{"visible", c.Visible},
			{"unresolved league sides", c.UnresolvedLeagues},
			{"unresolved country sides", c.UnresolvedCountries},
			{"with birth date", c.WithBirthDate},
			{"with citizenship", c.WithCitizenship},
			{"with value at transfer", c.WithValueAtTransfer},
			{"with value next season", c.WithValueNextSeason},
			{"without player id", c.WithoutPlayerID},
		})
	})
}
