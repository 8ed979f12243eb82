package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	lines := Format([][]string{
		{"Osh", "25000 so'm"},
		{"Lavash", "9000 so'm"},
	}, []Alignment{AlignLeft, AlignRight})
	if lines[0] != "Osh     25000 so'm" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "Lavash   9000 so'm" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestColumnsUsesDisplayWidth(t *testing.T) {
	cols := Columns([][]string{{"Чай", "x"}, {"Burger"}}, nil)
	if cols[0][0] != "Чай   " {
		t.Fatalf("expected cyrillic cell padded by runes, got %q", cols[0][0])
	}
	if len(cols[1]) != 2 || cols[1][1] != " " {
		t.Fatalf("expected short row padded, got %q", cols[1])
	}
	if Columns(nil, nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
