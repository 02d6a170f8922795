// Package output renders fetched collections for the CLI.
package output

import (
	"io"
	"strconv"

	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Table renders rows with a header using plain left-aligned columns.
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

// NewTable creates a new table writing to w.
func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// Render outputs the table.
func (t *Table) Render() {
	t.table.Header(t.header)
	t.table.Bulk(t.rows)
	t.table.Render()
}

// CollectionTable builds a table for a collection of the given kind.
func CollectionTable(w io.Writer, kind model.Kind, collection model.Collection) *Table {
	var t *Table

	switch kind {
	case model.KindTeamWeekScorer:
		t = NewTable(w, []string{"Name", "Team", "Week", "Goals"})
		for _, rec := range collection {
			s, ok := rec.(model.TeamWeekScorer)
			if !ok {
				continue
			}
			t.AddRow([]string{
				str(s.Name), str(s.Team), num(s.Week), num(s.Goals),
			})
		}
	default:
		t = NewTable(w, []string{"Name", "Team", "Goals"})
		for _, rec := range collection {
			s, ok := rec.(model.Scorer)
			if !ok {
				continue
			}
			t.AddRow([]string{
				str(s.Name), str(s.Team), num(s.Goals),
			})
		}
	}

	return t
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func num(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
