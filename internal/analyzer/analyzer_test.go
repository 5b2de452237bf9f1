package analyzer

import (
	"testing"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/model"
)

func TestCountByLevelEmpty(t *testing.T) {
	tally := CountByLevel(nil)

	if tally.Len() != 0 {
		t.Errorf("expected empty tally, got %d levels", tally.Len())
	}
}

func TestCountByLevelSingleLevel(t *testing.T) {
	records := []model.Record{
		{Level: "INFO", Text: "a"},
		{Level: "INFO", Text: "b"},
		{Level: "INFO", Text: "c"},
	}

	tally := CountByLevel(records)

	if tally.Len() != 1 {
		t.Fatalf("expected 1 level, got %d", tally.Len())
	}
	if tally.Get("INFO") != 3 {
		t.Errorf("expected 3 INFO, got %d", tally.Get("INFO"))
	}
}

func TestCountByLevelFirstSeenOrder(t *testing.T) {
	records := []model.Record{
		{Level: "INFO"},
		{Level: "ERROR"},
		{Level: "INFO"},
		{Level: "DEBUG"},
		{Level: "ERROR"},
	}

	tally := CountByLevel(records)

	levels := tally.Levels()
	want := []string{"INFO", "ERROR", "DEBUG"}
	if len(levels) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(levels))
	}
	for i, l := range want {
		if levels[i] != l {
			t.Errorf("position %d: expected %s, got %s", i, l, levels[i])
		}
	}
	if tally.Get("INFO") != 2 || tally.Get("ERROR") != 2 || tally.Get("DEBUG") != 1 {
		t.Errorf("wrong counts: INFO=%d ERROR=%d DEBUG=%d",
			tally.Get("INFO"), tally.Get("ERROR"), tally.Get("DEBUG"))
	}
}

func TestCountByLevelCaseSensitive(t *testing.T) {
	records := []model.Record{
		{Level: "error"},
		{Level: "ERROR"},
	}

	tally := CountByLevel(records)

	// Distinct casings are distinct levels.
	if tally.Len() != 2 {
		t.Errorf("expected 2 distinct levels, got %d", tally.Len())
	}
}

func TestFilterByLevel(t *testing.T) {
	records := []model.Record{
		{DateTime: "2024-01-22 08:30:01", Level: "INFO", Text: "first"},
		{DateTime: "2024-01-22 09:00:45", Level: "ERROR", Text: "boom"},
		{DateTime: "2024-01-22 10:30:55", Level: "INFO", Text: "second"},
	}

	filtered := FilterByLevel(records, "info")

	if len(filtered) != 2 {
		t.Fatalf("expected 2 records, got %d", len(filtered))
	}
	if filtered[0].Text != "first" || filtered[1].Text != "second" {
		t.Errorf("original order not preserved: %+v", filtered)
	}
}

func TestFilterByLevelStoredCaseMatters(t *testing.T) {
	// The query is uppercased but stored levels are compared verbatim, so
	// lowercase stored levels never match.
	records := []model.Record{{Level: "error", Text: "boom"}}

	if got := FilterByLevel(records, "error"); len(got) != 0 {
		t.Errorf("expected no matches against lowercase stored level, got %d", len(got))
	}
}

func TestFilterByLevelNoMatches(t *testing.T) {
	records := []model.Record{{Level: "INFO"}}

	filtered := FilterByLevel(records, "FATAL")

	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %d records", len(filtered))
	}
}
