package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2024, 6, 10, 9, 30, 15, 42, loc)

	got := StartOfDay(ts)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, "2024-06-10", DateString(got))
}

func TestFixed(t *testing.T) {
	ts := time.Date(2024, 3, 1, 8, 59, 59, 0, time.UTC)
	c := Fixed(ts)

	assert.True(t, c.Now().Equal(ts))
	assert.True(t, c.Now().Equal(c.Now()))
}

func TestNew_UsesLocation(t *testing.T) {
	loc := time.FixedZone("X", -3*60*60)
	c := New(loc)

	assert.Equal(t, loc, c.Now().Location())
	assert.Equal(t, time.Local, New(nil).Now().Location())
}
