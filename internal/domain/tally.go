package domain

import "github.com/montanaflynn/stats"

// Tally counts occurrences per LinkKey and remembers first-seen order.
type Tally struct {
	keys   []LinkKey
	counts map[LinkKey]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[LinkKey]int)}
}

// Add increments the count of k by one.
func (t *Tally) Add(k LinkKey) {
	if _, ok := t.counts[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.counts[k]++
}

// Count returns the number of times k was added.
func (t *Tally) Count(k LinkKey) int { return t.counts[k] }

// Has reports whether k was added at least once.
func (t *Tally) Has(k LinkKey) bool {
	_, ok := t.counts[k]
	return ok
}

// Keys returns the keys in first-seen order.
func (t *Tally) Keys() []LinkKey {
	out := make([]LinkKey, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len is the number of distinct keys.
func (t *Tally) Len() int { return len(t.keys) }

// TallyStats summarizes a Tally.
type TallyStats struct {
	Items int
	Total int
	Max   int
}

// Stats returns the number of items, the sum of all counts and the highest count.
func (t *Tally) Stats() TallyStats {
	if len(t.keys) == 0 {
		return TallyStats{}
	}
	data := make(stats.Float64Data, 0, len(t.keys))
	for _, k := range t.keys {
		data = append(data, float64(t.counts[k]))
	}
	total, _ := data.Sum()
	maxCount, _ := data.Max()
	return TallyStats{Items: len(t.keys), Total: int(total), Max: int(maxCount)}
}

// Tallies groups the per-category tallies built from one event sequence.
// CreatedIssues is never populated by the classifier: issues are opened
// through an event type the feed does not surface for this report. It is
// kept so both item categories render the same way.
type Tallies struct {
	CreatedIssues         *Tally
	CommentedIssues       *Tally
	CreatedPullRequests   *Tally
	CommentedPullRequests *Tally
	EditedWikiPages       *Tally
}

// NewTallies returns five empty tallies.
func NewTallies() *Tallies {
	return &Tallies{
		CreatedIssues:         NewTally(),
		CommentedIssues:       NewTally(),
		CreatedPullRequests:   NewTally(),
		CommentedPullRequests: NewTally(),
		EditedWikiPages:       NewTally(),
	}
}
