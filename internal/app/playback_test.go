package app

import (
	"testing"

	"eca/pkg/eca"

	"github.com/stretchr/testify/require"
)

func TestPlaybackAdvance(t *testing.T) {
	p := NewPlayback(5)
	require.Equal(t, 1, p.Revealed())

	p.Advance(2)
	require.Equal(t, 3, p.Revealed())
	p.Advance(10)
	require.Equal(t, 5, p.Revealed())
	require.True(t, p.Done())

	p.Restart()
	require.Equal(t, 1, p.Revealed())
	require.False(t, p.Done())
}

func TestPlaybackPauseAndStep(t *testing.T) {
	p := NewPlayback(4)
	p.TogglePause()
	p.Advance(3)
	require.Equal(t, 1, p.Revealed())

	p.StepOnce()
	p.Advance(3)
	require.Equal(t, 2, p.Revealed())
	p.Advance(3)
	require.Equal(t, 2, p.Revealed())

	p.TogglePause()
	p.Advance(1)
	require.Equal(t, 3, p.Revealed())
}

func TestPlaybackEmpty(t *testing.T) {
	p := NewPlayback(0)
	require.Zero(t, p.Revealed())
	p.Advance(1)
	require.Zero(t, p.Revealed())
	require.True(t, p.Done())
}

func TestCaption(t *testing.T) {
	p := NewPlayback(50)
	p.Advance(11)
	require.Equal(t, "rule 30  generation 12/50", Caption(eca.MustRuleNumber(30), p))
	p.TogglePause()
	require.Equal(t, "rule 30  generation 12/50  paused", Caption(eca.MustRuleNumber(30), p))
}
