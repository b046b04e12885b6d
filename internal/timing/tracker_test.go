package timing

import (
	"context"
	"testing"
	"time"
)

func TestStartEndRecords(t *testing.T) {
	tracker := NewTracker()

	ctx := tracker.Start("load")
	elapsed := tracker.End(ctx)

	if elapsed < 0 {
		t.Errorf("End returned negative duration %v", elapsed)
	}
	recorded := tracker.Durations("load")
	if len(recorded) != 1 {
		t.Fatalf("got %d recordings, want 1", len(recorded))
	}
	if recorded[0] != elapsed {
		t.Errorf("recorded %v, End returned %v", recorded[0], elapsed)
	}
}

func TestEndWithoutSpan(t *testing.T) {
	tracker := NewTracker()

	if got := tracker.End(context.Background()); got != 0 {
		t.Errorf("End on bare context = %v, want 0", got)
	}
	if all := tracker.All(); len(all) != 0 {
		t.Errorf("bare End recorded something: %v", all)
	}
}

func TestAverage(t *testing.T) {
	tracker := NewTracker()
	tracker.mu.Lock()
	tracker.timings["save"] = []time.Duration{10 * time.Millisecond, 30 * time.Millisecond}
	tracker.mu.Unlock()

	if got := tracker.Average("save"); got != 20*time.Millisecond {
		t.Errorf("Average = %v, want 20ms", got)
	}
	if got := tracker.Average("missing"); got != 0 {
		t.Errorf("Average of unrecorded operation = %v, want 0", got)
	}
}

func TestDurationsReturnsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.End(tracker.Start("op"))

	first := tracker.Durations("op")
	first[0] = time.Hour

	second := tracker.Durations("op")
	if second[0] == time.Hour {
		t.Errorf("internal recordings mutated through accessor copy")
	}
}

func TestReset(t *testing.T) {
	tracker := NewTracker()
	tracker.End(tracker.Start("load"))
	tracker.End(tracker.Start("save"))

	tracker.Reset("load")
	if got := tracker.Durations("load"); got != nil {
		t.Errorf("load recordings survive Reset: %v", got)
	}
	if got := tracker.Durations("save"); len(got) != 1 {
		t.Errorf("save recordings dropped by scoped Reset: %v", got)
	}

	tracker.Reset("")
	if all := tracker.All(); len(all) != 0 {
		t.Errorf("recordings survive full Reset: %v", all)
	}
}
