package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageLogStacksRepeats(t *testing.T) {
	var l MessageLog
	l.Add("That way is blocked.", TagImpossible)
	l.Add("That way is blocked.", TagImpossible)
	l.Add("That way is blocked.", TagImpossible)
	l.Add("You picked up the Sword!", TagPlain)
	l.Add("That way is blocked.", TagImpossible)

	all := l.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "That way is blocked. (x3)", all[0].FullText())
	assert.Equal(t, "You picked up the Sword!", all[1].FullText())
	assert.Equal(t, 1, all[2].Count)
}

func TestMessageLogLast(t *testing.T) {
	var l MessageLog
	assert.Empty(t, l.Last(5))
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s, TagPlain)
	}
	last := l.Last(2)
	assert.Equal(t, []string{"c", "d"}, []string{last[0].Text, last[1].Text})
	assert.Len(t, l.Last(10), 4)
	assert.Nil(t, l.Last(0))

	// Returned slices are copies.
	last[0].Text = "changed"
	assert.Equal(t, "c", l.Last(2)[0].Text)
}
