package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStripsMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "quantum computing", "quantum computing"},
		{"script removed entirely", "<script>x</script>", ""},
		{"tags stripped, text kept", "<b>funding</b> round", "funding round"},
		{"event handlers gone", `<img src=x onerror=alert(1)>launch`, "launch"},
		{"whitespace trimmed", "  release  ", "release"},
		{"empty stays empty", "", ""},
		{"encoded markup stays inert", "&lt;script&gt;x&lt;/script&gt;", "&lt;script&gt;x&lt;/script&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestTextIdempotentOnSanitizedOutput(t *testing.T) {
	inputs := []string{
		"AI roadmap",
		"<script>x</script>",
		"<i>beta</i> access",
		"a  b",
		"&lt;script&gt;x&lt;/script&gt;",
		"&amp;lt;b&amp;gt;",
	}
	for _, in := range inputs {
		once := Text(in)
		assert.NotContains(t, once, "<")
		assert.Equal(t, once, Text(once))
	}
}
