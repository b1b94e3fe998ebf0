package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelHistoryKeepsNewest(t *testing.T) {
	h := newLevelHistory(3)
	assert.Empty(t, h.snapshot())

	h.add(10)
	h.add(20)
	assert.Equal(t, []float64{10, 20}, h.snapshot())

	h.add(30)
	h.add(40)
	assert.Equal(t, []float64{20, 30, 40}, h.snapshot())
	assert.Equal(t, 3, h.size())

	h.reset()
	assert.Equal(t, 0, h.size())
	assert.Empty(t, h.snapshot())

	h.add(5)
	assert.Equal(t, []float64{5}, h.snapshot())
}

func TestLevelHistorySnapshotIsACopy(t *testing.T) {
	h := newLevelHistory(2)
	h.add(1)
	snap := h.snapshot()
	snap[0] = 99
	assert.Equal(t, []float64{1}, h.snapshot())
}

func TestLevelHistoryMinimumLimit(t *testing.T) {
	h := newLevelHistory(0)
	h.add(1)
	h.add(2)
	assert.Equal(t, []float64{2}, h.snapshot())
}
