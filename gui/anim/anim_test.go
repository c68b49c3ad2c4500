package anim

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimationEndpoints(t *testing.T) {
	var got []int32
	a := &Animation{Start: 255, End: 0, Duration: 1000, Path: Linear,
		Callback: func(_ *Animation, v int32) { got = append(got, v) }}

	if v := a.Value(); v != 255 {
		t.Errorf("Value at 0 = %d, want 255", v)
	}
	for i := 0; i < 4; i++ {
		a.Advance(250)
		if i < 3 && a.IsFinished() {
			t.Fatalf("finished after %d ms", a.Elapsed)
		}
	}
	if !a.IsFinished() {
		t.Fatal("not finished at duration")
	}
	want := []int32{191, 127, 64, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %d, want %d", i, got[i], want[i])
		}
	}
	a.Advance(100)
	if len(got) != 4 {
		t.Errorf("finished animation called back again: %v", got)
	}
}

func TestZeroDurationIsFinished(t *testing.T) {
	a := &Animation{Start: 1, End: 9}
	if !a.IsFinished() || a.Value() != 9 {
		t.Errorf("finished=%v value=%d", a.IsFinished(), a.Value())
	}
}

func TestZeroDurationReportsEnd(t *testing.T) {
	var s Scheduler
	var got []int32
	a := &Animation{Start: 1, End: 9, Delay: 5,
		Callback: func(_ *Animation, v int32) { got = append(got, v) }}
	s.Start(a)
	s.Advance(3)
	if len(got) != 0 || s.Active() != 1 {
		t.Fatalf("during delay: values %v active %d", got, s.Active())
	}
	s.Advance(3)
	s.Advance(3)
	if len(got) != 1 || got[0] != 9 {
		t.Errorf("values = %v, want [9]", got)
	}
	if s.Active() != 0 {
		t.Errorf("active = %d after final value", s.Active())
	}
}

func TestOvershootClamps(t *testing.T) {
	a := &Animation{Start: 0, End: 100, Duration: 10, Elapsed: 20}
	if a.Value() != 100 || a.Progress() != 1 {
		t.Errorf("value %d progress %v", a.Value(), a.Progress())
	}
}

func TestEaseAdapter(t *testing.T) {
	p := Ease(ease.InOutQuad)
	if p(0) != 0 || p(1) != 1 {
		t.Errorf("ends = %v %v", p(0), p(1))
	}
	if v := p(0.25); v != 0.125 {
		t.Errorf("InOutQuad(0.25) = %v, want 0.125", v)
	}
	a := &Animation{Start: 0, End: 200, Duration: 100, Elapsed: 25, Path: p}
	if v := a.Value(); v != 25 {
		t.Errorf("Value = %d, want 25", v)
	}
}

func TestPingPongReturnsToStart(t *testing.T) {
	a := &Animation{Start: 10, End: 50, Duration: 100, Path: PingPong(Linear)}
	for _, c := range []struct {
		elapsed uint32
		want    int32
	}{{0, 10}, {25, 30}, {50, 50}, {75, 30}, {100, 10}} {
		a.Elapsed = c.elapsed
		if v := a.Value(); v != c.want {
			t.Errorf("Value at %d ms = %d, want %d", c.elapsed, v, c.want)
		}
	}
}

func TestSchedulerDetachesFinished(t *testing.T) {
	var s Scheduler
	short := &Animation{Start: 0, End: 10, Duration: 10}
	long := &Animation{Start: 0, End: 10, Duration: 30}
	s.Start(short)
	s.Start(long)
	s.Advance(10)
	if s.Active() != 1 || !short.IsFinished() {
		t.Fatalf("active = %d", s.Active())
	}
	s.Advance(20)
	if s.Active() != 0 || !long.IsFinished() {
		t.Errorf("active = %d", s.Active())
	}
}

func TestFreedAnimationNeverAdvances(t *testing.T) {
	var s Scheduler
	calls := 0
	a := &Animation{Start: 0, End: 10, Duration: 100,
		Callback: func(*Animation, int32) { calls++ }}
	s.Start(a)
	s.Advance(10)
	s.Free(a)
	s.Advance(10)
	a.Advance(10)
	if calls != 1 || a.Elapsed != 10 || s.Active() != 0 {
		t.Errorf("calls %d elapsed %d active %d", calls, a.Elapsed, s.Active())
	}
}

func TestCallbackMayFreeOthers(t *testing.T) {
	var s Scheduler
	b := &Animation{Start: 0, End: 1, Duration: 50}
	a := &Animation{Start: 0, End: 1, Duration: 50,
		Callback: func(*Animation, int32) { s.Free(b) }}
	s.Start(a)
	s.Start(b)
	s.Advance(10)
	if b.Elapsed != 0 || s.Active() != 1 {
		t.Errorf("b elapsed %d active %d", b.Elapsed, s.Active())
	}
}

func TestDelayAndRepeat(t *testing.T) {
	var s Scheduler
	var got []int32
	a := &Animation{Start: 0, End: 10, Duration: 10, Delay: 5, Repeat: 1,
		Callback: func(_ *Animation, v int32) { got = append(got, v) }}
	s.Start(a)
	s.Advance(5)
	if len(got) != 0 {
		t.Fatalf("called during delay: %v", got)
	}
	s.Advance(10)
	if a.IsFinished() || s.Active() != 1 {
		t.Fatal("finished before its repeat")
	}
	s.Advance(5)
	s.Advance(5)
	want := []int32{10, 5, 10}
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values = %v, want %v", got, want)
		}
	}
	if !a.IsFinished() || s.Active() != 0 {
		t.Error("not finished after repeat")
	}
}
