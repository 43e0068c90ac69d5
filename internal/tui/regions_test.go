package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionRegionContains(t *testing.T) {
	r := ActionRegion{Key: "F5", Name: "Run", Row: 3, ColStart: 10, ColEnd: 20}

	assert.True(t, r.Contains(3, 10))
	assert.True(t, r.Contains(3, 15))
	assert.True(t, r.Contains(3, 20), "column range is inclusive")

	assert.False(t, r.Contains(3, 9))
	assert.False(t, r.Contains(3, 21))
	assert.False(t, r.Contains(2, 15), "row must match exactly")
	assert.False(t, r.Contains(4, 15))
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	var rr RegionRegistry
	rr.Add(ActionRegion{Key: "F5", Name: "Run", Row: 3, ColStart: 10, ColEnd: 20})
	rr.Add(ActionRegion{Key: "F6", Name: "Test", Row: 3, ColStart: 15, ColEnd: 25})

	hit, ok := rr.HitTest(3, 18)
	assert.True(t, ok)
	assert.Equal(t, "F5", hit.Key)

	hit, ok = rr.HitTest(3, 22)
	assert.True(t, ok)
	assert.Equal(t, "F6", hit.Key)

	_, ok = rr.HitTest(5, 18)
	assert.False(t, ok)
}

func TestRegistryResetAndHover(t *testing.T) {
	var rr RegionRegistry
	rr.Add(ActionRegion{Key: "Q", Name: "Quit", Row: 8, ColStart: 0, ColEnd: 5})

	assert.Equal(t, "Quit", rr.HoverName(8, 2))
	assert.Equal(t, "", rr.HoverName(8, 6))

	rr.Reset()
	assert.Equal(t, 0, rr.Len())
	assert.Equal(t, "", rr.HoverName(8, 2))
}
