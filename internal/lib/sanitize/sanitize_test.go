package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "<script>", want: "&lt;script&gt;"},
		{in: `Tom & "Jerry"`, want: "Tom &amp; &quot;Jerry&quot;"},
		{in: "Kalguur's Gold", want: "Kalguur&#039;s Gold"},
		{in: "&amp;", want: "&amp;amp;"},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, HTML(tc.in), "input %q", tc.in)
	}
}

func TestHTMLLeavesSafeTextUnchanged(t *testing.T) {
	t.Parallel()

	safe := []string{
		"Settlers of Kalguur",
		"Race starts at 16:00 UTC; bring friends!",
		"Ünïcödé text, numbers 1234 and symbols #@%*()",
	}

	for _, s := range safe {
		assert.Equal(t, s, HTML(s))
	}
}
