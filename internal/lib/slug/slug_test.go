package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "league name", in: "Settlers of Kalguur", want: "settlers-of-kalguur"},
		{name: "punctuation stripped", in: "Necropolis League!", want: "necropolis-league"},
		{name: "blank falls back", in: "   ", want: "event"},
		{name: "empty falls back", in: "", want: "event"},
		{name: "only symbols fall back", in: "!!! ???", want: "event"},
		{name: "whitespace runs collapse", in: "Race \t  Season\n 3", want: "race-season-3"},
		{name: "hyphen runs collapse", in: "SSF -- HC -- Race", want: "ssf-hc-race"},
		{name: "leading and trailing hyphens trimmed", in: "--Boss Rush--", want: "boss-rush"},
		{name: "non ascii dropped", in: "Événement Spécial", want: "vnement-spcial"},
		{name: "ampersand entity", in: "Tom &amp; Jerry", want: "tom-amp-jerry"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Generate(tc.in))
		})
	}
}

func TestGenerateTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 99) + " bcd"
	got := Generate(long)

	assert.Equal(t, strings.Repeat("a", 99), got, "dangling hyphen after the cut must be dropped")
	assert.LessOrEqual(t, len(got), MaxLength)

	exact := strings.Repeat("x", 150)
	assert.Len(t, Generate(exact), MaxLength)
}

func TestGenerateIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Settlers of Kalguur",
		"Necropolis League!",
		"   ",
		"3.25 Patch Notes & Launch",
		strings.Repeat("word ", 40),
	}

	for _, in := range inputs {
		once := Generate(in)
		assert.Equal(t, once, Generate(once), "input %q", in)
		assert.NotEmpty(t, once)
	}
}
