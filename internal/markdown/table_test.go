package markdown

import "testing"

func TestHumanizeHeader(t *testing.T) {
	tests := map[string]string{
		"EntityA":      "Entity A",
		"EntityAType":  "Entity A Type",
		"Relationship": "Relationship",
		"ID":           "I D",
		"":             "",
	}
	for in, want := range tests {
		if got := HumanizeHeader(in); got != want {
			t.Errorf("HumanizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTable(t *testing.T) {
	rows := []map[string]any{
		{"A": "x|y", "B": 3},
		{"A": "line1\nline2"},
	}
	got := Table("Things", []string{"A", "B"}, rows, nil)
	want := "### Things\n" +
		"|A|B|\n" +
		"|---|---|\n" +
		"| x\\|y | 3 |\n" +
		"| line1<br>line2 |  |\n"
	if got != want {
		t.Errorf("Table =\n%s\nwant\n%s", got, want)
	}
}

func TestTableHeadersOnly(t *testing.T) {
	got := Table("Relationships", []string{"EntityA", "EntityBType"}, nil, HumanizeHeader)
	want := "### Relationships\n|Entity A|Entity B Type|\n|---|---|\n"
	if got != want {
		t.Errorf("Table =\n%q\nwant\n%q", got, want)
	}
}
