package console

import (
	"bytes"
	"testing"
	"time"
)

func TestRendersLatchedFrame(t *testing.T) {
	var buf bytes.Buffer
	d := New(0)
	d.Out = &buf

	d.Set(0, true)
	d.Set(3, true)
	d.Sleep(200 * time.Millisecond)
	d.AllOff()
	d.Sleep(50 * time.Millisecond)

	want := "[*--*] 200ms\n[----] 50ms\n"
	if got := buf.String(); got != want {
		t.Fatalf("output=%q want %q", got, want)
	}
}

func TestSpeedZeroNeverSleeps(t *testing.T) {
	var buf bytes.Buffer
	d := New(0)
	d.Out = &buf

	start := time.Now()
	d.AllOn()
	d.Sleep(10 * time.Second)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("speed=0 slept for %v", elapsed)
	}
}
