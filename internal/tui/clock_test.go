package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/toast/toasttest"
)

func TestLoopClockDefersCallbacks(t *testing.T) {
	t.Parallel()
	base := toasttest.NewManualClock(time.Unix(0, 0))
	clock := newLoopClock(base)
	defer clock.stop()

	ran := 0
	clock.AfterFunc(time.Second, func() { ran++ })
	base.Advance(time.Second)
	require.Zero(t, ran)

	msg, ok := clock.wait()().(timerFiredMsg)
	require.True(t, ok)
	msg.timer.fire()
	msg.timer.fire()
	require.Equal(t, 1, ran)
}

func TestLoopClockStopAfterQueueing(t *testing.T) {
	t.Parallel()
	base := toasttest.NewManualClock(time.Unix(0, 0))
	clock := newLoopClock(base)
	defer clock.stop()

	ran := false
	timer := clock.AfterFunc(time.Second, func() { ran = true })
	base.Advance(time.Second)
	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	msg := clock.wait()().(timerFiredMsg)
	msg.timer.fire()
	require.False(t, ran)
}

func TestLoopClockWaitEndsOnStop(t *testing.T) {
	t.Parallel()
	clock := newLoopClock(nil)
	clock.stop()
	clock.stop()
	require.Nil(t, clock.wait()())
}
