package tuitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "bold\nplain", StripANSI(in))
}

func TestType(t *testing.T) {
	msgs := Type("ab")

	assert.Len(t, msgs, 2)
	assert.Equal(t, KeyPress('a'), msgs[0])
	assert.Equal(t, "b", KeyPress('b').String())
}
