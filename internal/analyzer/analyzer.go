package analyzer

import (
	"strings"

	"github.com/Kalmar41k/goit-algo-hw-05/internal/model"
)

// Tally holds per-level record counts, iterable in the order each level was
// first seen in the input.
type Tally struct {
	order  []string
	counts map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one occurrence of level.
func (t *Tally) Add(level string) {
	if _, seen := t.counts[level]; !seen {
		t.order = append(t.order, level)
	}
	t.counts[level]++
}

// Levels returns the counted levels in first-seen order.
func (t *Tally) Levels() []string {
	return t.order
}

// Get returns the count for level, zero if the level was never seen.
func (t *Tally) Get(level string) int {
	return t.counts[level]
}

// Len returns the number of distinct levels counted.
func (t *Tally) Len() int {
	return len(t.order)
}

// CountByLevel tallies every record by its level field. Levels are not
// normalized, so distinct casings count as distinct levels.
func CountByLevel(records []model.Record) *Tally {
	tally := NewTally()
	for _, rec := range records {
		tally.Add(rec.Level)
	}
	return tally
}

// FilterByLevel returns the records whose stored level equals the uppercased
// query. The match is case-insensitive on the query only: stored levels are
// compared verbatim. Original order is preserved.
func FilterByLevel(records []model.Record, level string) []model.Record {
	query := strings.ToUpper(level)

	var filtered []model.Record
	for _, rec := range records {
		if rec.Level == query {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
