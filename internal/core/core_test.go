package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuiltinSeeds(t *testing.T) {
	require.Equal(t, []string{"center", "left", "random"}, SeedNames())

	require.Equal(t, []uint8{0, 0, 1, 0, 0}, Seeds()["center"](5, 0))
	require.Equal(t, []uint8{0, 1, 0, 0, 0}, Seeds()["left"](5, 0))

	random := Seeds()["random"]
	require.Equal(t, random(40, 9), random(40, 9))
	require.Len(t, random(40, 9), 40)
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Seeds())
	Register("", func(int, int64) []uint8 { return nil })
	Register("nil", nil)
	require.Len(t, Seeds(), before)
}

func TestPacerReleasesAtRate(t *testing.T) {
	p := NewPacer(10)
	start := time.Unix(100, 0)
	require.Zero(t, p.Due(start))
	require.Zero(t, p.Due(start.Add(50*time.Millisecond)))
	require.Equal(t, 1, p.Due(start.Add(120*time.Millisecond)))
	require.Equal(t, 2, p.Due(start.Add(320*time.Millisecond)))
}

func TestPacerCapsCatchUp(t *testing.T) {
	p := NewPacer(100)
	start := time.Unix(0, 0)
	p.Due(start)
	require.Equal(t, maxCatchUp, p.Due(start.Add(5*time.Second)))
	require.Zero(t, p.Due(start.Add(5*time.Second+time.Millisecond)))
}
