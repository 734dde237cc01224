package main

import "testing"

func TestLoadScenarioRejectsNonPositiveFPS(t *testing.T) {
	oldFPS, oldPace, oldConfig := flagFPS, flagPace, flagConfig
	t.Cleanup(func() { flagFPS, flagPace, flagConfig = oldFPS, oldPace, oldConfig })
	flagPace, flagConfig = "normal", ""

	for _, fps := range []int{0, -30} {
		flagFPS = fps
		if _, _, err := loadScenario(); err == nil {
			t.Errorf("loadScenario() with --fps %d should fail", fps)
		}
	}

	flagFPS = 30
	if _, pace, err := loadScenario(); err != nil || pace != "normal" {
		t.Errorf("loadScenario() with --fps 30 = %q, %v", pace, err)
	}
}
