package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/robogirl96/pottypanda/pkg/tracker"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// History prints log entries as a table, newest first as given.
func (pp *PrettyPrint) History(entries ...*tracker.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		when := e.Timestamp.Local().Format("Jan 2 15:04")
		if e.Timestamp.IsZero() {
			when = "-"
		}
		row := []interface{}{when, e.Kind.Title(), e.Result.Display(), e.Note}
		if pp.ShowID {
			row = append([]interface{}{e.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Profiles prints the profile list, marking the active one.
func (pp *PrettyPrint) Profiles(profiles []tracker.Profile, activeID string) {
	active := color.New(color.Bold, color.FgHiGreen)
	plain := color.New()
	faint := color.New(color.Faint)

	for _, p := range profiles {
		marker := "  "
		line := plain
		if p.ID == activeID {
			marker = "* "
			line = active
		}
		_, _ = line.Printf("%s%s", marker, p.Name)
		if pp.ShowID {
			_, _ = faint.Printf("  (%s)", p.ID)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// LastSeen prints the relative-time summary line used by history output.
func (pp *PrettyPrint) LastSeen(label, relative string, at time.Time) {
	f := color.New(color.Faint)
	if at.IsZero() {
		_, _ = f.Printf("%s: %s\n\n", label, relative)
		return
	}
	_, _ = f.Printf("%s: %s (%s)\n\n", label, relative, at.Local().Format("Jan 2 15:04"))
}
