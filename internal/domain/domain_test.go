package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkKey(t *testing.T) {
	testCases := []struct {
		name      string
		key       LinkKey
		wantLabel string
		wantRef   string
		wantURL   string
	}{
		{
			name:      "pull request or issue",
			key:       ItemKey("org/a", 1, "Fix bug"),
			wantLabel: "Fix bug",
			wantRef:   "org/a#1",
			wantURL:   "https://github.com/org/a/issues/1",
		},
		{
			name:      "wiki page",
			key:       WikiKey("org/c", "Home"),
			wantLabel: "Home",
			wantRef:   "org/c.wiki/Home",
			wantURL:   "https://github.com/org/c/wiki/Home",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantLabel, tc.key.Label())
			assert.Equal(t, tc.wantRef, tc.key.Ref())
			assert.Equal(t, tc.wantURL, tc.key.URL())
		})
	}

	// Keys built from the same target must collide.
	assert.Equal(t, ItemKey("org/a", 1, "Fix bug"), ItemKey("org/a", 1, "Fix bug"))
	assert.NotEqual(t, ItemKey("org/a", 1, "Fix bug"), ItemKey("org/a", 2, "Fix bug"))
}

func TestTally(t *testing.T) {
	a := ItemKey("org/a", 1, "A")
	b := ItemKey("org/a", 2, "B")

	tally := NewTally()
	tally.Add(b)
	tally.Add(a)
	tally.Add(b)

	assert.Equal(t, []LinkKey{b, a}, tally.Keys())
	assert.Equal(t, 2, tally.Count(b))
	assert.Equal(t, 1, tally.Count(a))
	assert.Equal(t, 0, tally.Count(ItemKey("org/a", 3, "C")))
	assert.True(t, tally.Has(a))
	assert.False(t, tally.Has(ItemKey("org/a", 3, "C")))
	assert.Equal(t, 2, tally.Len())
	assert.Equal(t, TallyStats{Items: 2, Total: 3, Max: 2}, tally.Stats())
	assert.Equal(t, TallyStats{}, NewTally().Stats())
}

func TestDigest_String(t *testing.T) {
	assert.Equal(t, "", Digest{}.String())
	assert.True(t, Digest{}.IsEmpty())

	d := Digest{Sections: []Section{
		{Header: "*Pull requests*", Lines: []string{"Open A", "Open B"}},
		{Header: "*Wiki*", Lines: []string{"Edit C 1 time"}},
	}}
	want := "*Pull requests*\n• Open A\n• Open B\n\n*Wiki*\n• Edit C 1 time\n\n"
	assert.Equal(t, want, d.String())
	assert.False(t, d.IsEmpty())
}
