package history

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pixelstretcher/internal/raster"
)

func paint(buf *raster.Buffer, i int) {
	buf.Image().SetRGBA(i%buf.Width(), 0, color.RGBA{R: uint8(i + 1), A: 255})
}

func TestSeedKeepsDepthAtLeastOne(t *testing.T) {
	buf := raster.New(4, 4)
	h := New(buf)
	assert.Equal(t, 1, h.Depth())
	assert.False(t, h.Undo(buf))
	assert.False(t, h.Undo(buf))
	assert.Equal(t, 1, h.Depth())
	assert.Equal(t, uint64(1), h.Latest().Seq)
}

func TestUndoRestoresLoadState(t *testing.T) {
	buf := raster.New(8, 8)
	buf.Fill(color.RGBA{G: 40, A: 255})
	want := buf.Pix()
	h := New(buf)

	const n = 6
	for i := 0; i < n; i++ {
		paint(buf, i)
		h.Commit(buf)
	}
	require.Equal(t, n+1, h.Depth())
	require.NotEqual(t, want, buf.Pix())

	for i := 0; i < n; i++ {
		assert.True(t, h.Undo(buf), "undo %d", i)
	}
	assert.Equal(t, want, buf.Pix())
	assert.Equal(t, 1, h.Depth())
	assert.False(t, h.Undo(buf))
	assert.Equal(t, want, buf.Pix())
}

func TestUndoStepsBackOneStroke(t *testing.T) {
	buf := raster.New(4, 1)
	h := New(buf)
	paint(buf, 0)
	h.Commit(buf)
	afterFirst := buf.Pix()
	paint(buf, 1)
	h.Commit(buf)

	require.True(t, h.Undo(buf))
	assert.Equal(t, afterFirst, buf.Pix())
}

func TestEntriesAreDeepCopies(t *testing.T) {
	buf := raster.New(2, 2)
	h := New(buf)
	h.Commit(buf)
	buf.Fill(color.RGBA{B: 200, A: 255})
	h.Undo(buf)
	assert.Equal(t, make([]uint8, 16), buf.Pix())
}

func TestLimitEvictsOldestAfterSeed(t *testing.T) {
	buf := raster.New(4, 1)
	seed := buf.Pix()
	h := New(buf, WithLimit(3))
	for i := 0; i < 5; i++ {
		paint(buf, i)
		h.Commit(buf)
	}
	assert.Equal(t, 3, h.Depth())
	assert.Equal(t, uint64(6), h.Latest().Seq)

	h.Undo(buf)
	h.Undo(buf)
	assert.Equal(t, seed, buf.Pix(), "seed survives eviction")
}

func TestLimitBelowMinimumStillUndoes(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		buf := raster.New(2, 1)
		seed := buf.Pix()
		h := New(buf, WithLimit(n))
		assert.Equal(t, MinLimit, h.Limit())

		paint(buf, 0)
		h.Commit(buf)
		assert.Equal(t, 2, h.Depth())
		paint(buf, 1)
		h.Commit(buf)
		assert.Equal(t, 2, h.Depth())

		assert.True(t, h.Undo(buf))
		assert.False(t, h.Undo(buf))
		assert.Equal(t, 1, h.Depth())
		assert.Equal(t, seed, buf.Pix())
	}
}

func TestResetIsUndoable(t *testing.T) {
	buf := raster.New(3, 3)
	seed := buf.Pix()
	h := New(buf)
	paint(buf, 2)
	h.Commit(buf)
	edited := buf.Pix()

	h.Reset(buf)
	assert.Equal(t, seed, buf.Pix())
	assert.Equal(t, 3, h.Depth())

	require.True(t, h.Undo(buf))
	assert.Equal(t, edited, buf.Pix())
}

func TestClockStampsEntries(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	buf := raster.New(1, 1)
	h := New(buf, WithClock(func() time.Time { return at }))
	e := h.Commit(buf)
	assert.Equal(t, at, e.Time)
	assert.Equal(t, uint64(2), e.Seq)
}
