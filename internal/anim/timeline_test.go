package anim

import "testing"

func TestTimelineAfter(t *testing.T) {
	var tl Timeline
	var order []string

	tl.After(3, func() { order = append(order, "c") })
	tl.After(1, func() { order = append(order, "a") })
	tl.After(3, func() { order = append(order, "d") })
	tl.After(0, func() { order = append(order, "b") })

	tl.Tick()
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("after tick 1: %v, expected [a b]", order)
	}

	tl.Tick()
	if len(order) != 2 {
		t.Fatalf("after tick 2: %v, expected nothing new", order)
	}

	tl.Tick()
	if len(order) != 4 || order[2] != "c" || order[3] != "d" {
		t.Errorf("after tick 3: %v, expected [a b c d]", order)
	}
	if tl.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", tl.Pending())
	}
}

func TestTimelineScheduleFromCallback(t *testing.T) {
	var tl Timeline
	fired := 0
	tl.After(1, func() {
		tl.After(0, func() { fired++ })
	})

	tl.Tick()
	if fired != 0 {
		t.Fatal("callback scheduled during Tick must wait for the next tick")
	}
	tl.Tick()
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}
}

func TestTimelineClear(t *testing.T) {
	var tl Timeline
	fired := false
	tl.After(2, func() { fired = true })
	tl.Clear()
	tl.Tick()
	tl.Tick()

	if fired {
		t.Error("cleared callback should not run")
	}
	if tl.Now() != 2 {
		t.Errorf("Now() = %d, expected 2", tl.Now())
	}
}
