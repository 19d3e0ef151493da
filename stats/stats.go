// Package stats renders productivity summaries fetched from the backend.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pterm/pterm"

	"github.com/leoarenas/pomodorotrack/api"
	"github.com/leoarenas/pomodorotrack/internal/timeutil"
	"github.com/leoarenas/pomodorotrack/internal/ui"
)

const fetchTimeout = 30 * time.Second

// Stats fetches aggregates from the backend and writes formatted reports.
type Stats struct {
	client *api.Client
	Opts   Opts
}

// Opts controls report output.
type Opts struct {
	// JSON emits the raw backend payload instead of a formatted report.
	JSON bool
}

// New returns a Stats reporter backed by the API client.
func New(client *api.Client, opts Opts) *Stats {
	return &Stats{
		client: client,
		Opts:   opts,
	}
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// Today reports the current day's completed work.
func (s *Stats) Today(w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	today, err := s.client.StatsToday(ctx)
	if err != nil {
		return err
	}

	if s.Opts.JSON {
		return printJSON(w, today)
	}

	fmt.Fprintln(w, ui.Highlight(fmt.Sprintf("Today (%s)", today.Date)))
	fmt.Fprintln(w)

	data := [][]string{
		{"total time", ui.Green(timeutil.FormatMinutes(today.TotalMinutes))},
		{"pomodoros", ui.Cyan(fmt.Sprintf("%d", today.PomodorosCompleted))},
		{"entries", fmt.Sprintf("%d", today.RecordsCount)},
	}

	for _, row := range data {
		fmt.Fprintf(w, "%-12s %s\n", row[0], row[1])
	}

	return nil
}

// Week reports the current week as a daily bar chart.
func (s *Stats) Week(w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	week, err := s.client.StatsWeek(ctx)
	if err != nil {
		return err
	}

	if s.Opts.JSON {
		return printJSON(w, week)
	}

	fmt.Fprintln(w, ui.Highlight(
		fmt.Sprintf("Week %s to %s", week.WeekStart, week.WeekEnd),
	))
	fmt.Fprintln(w)

	days := make([]string, 0, len(week.DailyStats))
	for day := range week.DailyStats {
		days = append(days, day)
	}

	sort.Strings(days)

	bars := make([]pterm.Bar, 0, len(days))

	for _, day := range days {
		stat := week.DailyStats[day]

		label := day
		if d, err := time.Parse("2006-01-02", day); err == nil {
			label = d.Format("Mon 02")
		}

		bars = append(bars, pterm.Bar{
			Label: label,
			Value: stat.TotalTime,
		})
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, chart)

	fmt.Fprintf(
		w,
		"Total: %s across %d pomodoros\n",
		ui.Green(timeutil.FormatMinutes(week.TotalTime)),
		week.TotalPomodoros,
	)

	return nil
}

// Projects reports completed work grouped by project.
func (s *Stats) Projects(w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	projects, err := s.client.StatsByProject(ctx)
	if err != nil {
		return err
	}

	if s.Opts.JSON {
		return printJSON(w, projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(w, "No completed work yet")
		return nil
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].TotalMinutes > projects[j].TotalMinutes
	})

	data := [][]string{
		{"#", "project", "total time", "pomodoros"},
	}

	for i, p := range projects {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			p.ProjectName,
			timeutil.FormatMinutes(p.TotalMinutes),
			fmt.Sprintf("%d", p.Pomodoros),
		})
	}

	ui.PrintTable(data, w)

	return nil
}

// Show writes the requested report to standard output.
func (s *Stats) Show(report string) error {
	switch report {
	case "week":
		return s.Week(os.Stdout)
	case "projects":
		return s.Projects(os.Stdout)
	default:
		return s.Today(os.Stdout)
	}
}
