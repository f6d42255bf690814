package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	cases := []struct {
		name  string
		input string
		blank bool
	}{
		{name: "empty", input: "", blank: true},
		{name: "spaces", input: "   ", blank: true},
		{name: "mixed whitespace", input: "\n  \t\r\n", blank: true},
		{name: "word", input: "a", blank: false},
		{name: "padded word", input: "\n  a  \n", blank: false},
		{name: "non-breaking space", input: "\u00a0", blank: false},
		{name: "form feed", input: "\f", blank: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.blank, IsBlank(c.input))
			assert.Equal(t, !c.blank, Keep(c.input))
		})
	}
}
