package report

import (
	"strings"
	"testing"
)

func TestTableString(t *testing.T) {
	table := NewTable(
		Column{Name: "Parameter", Align: AlignLeft},
		Column{Name: "Value", Align: AlignRight},
	)
	table.AddRow("Images", "12")
	table.AddRow("Annotated images", "7")

	want := strings.Join([]string{
		"    Parameter     | Value",
		"------------------+-------",
		" Images           |    12",
		" Annotated images |     7",
	}, "\n")

	if got := table.String(); got != want {
		t.Errorf("Unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableWideCells(t *testing.T) {
	table := NewTable(
		Column{Name: "Class name", Align: AlignLeft},
		Column{Name: "Quantity", Align: AlignRight},
	)
	table.AddRow("a-rather-long-class-name", "3")

	lines := strings.Split(table.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	// Every line ends at the same column except for trimmed padding.
	if !strings.Contains(lines[0], "Class name") {
		t.Errorf("Expected centered header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "+") {
		t.Errorf("Expected a column separator, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], " a-rather-long-class-name | ") {
		t.Errorf("Expected left-aligned cell, got %q", lines[2])
	}
	if !strings.HasSuffix(lines[2], "3") {
		t.Errorf("Expected right-aligned quantity, got %q", lines[2])
	}
}

func TestTableMissingCells(t *testing.T) {
	table := NewTable(
		Column{Name: "A", Align: AlignLeft},
		Column{Name: "B", Align: AlignRight},
	)
	table.AddRow("only")

	lines := strings.Split(table.String(), "\n")
	if !strings.HasPrefix(lines[2], " only |") {
		t.Errorf("Expected the missing cell to render empty, got %q", lines[2])
	}
}

func TestTableNoRows(t *testing.T) {
	table := NewTable(Column{Name: "Header", Align: AlignLeft})

	lines := strings.Split(table.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and separator only, got %d lines", len(lines))
	}
	if lines[1] != "--------" {
		t.Errorf("Expected separator of width 8, got %q", lines[1])
	}
}
