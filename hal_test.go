package chromawave

import "testing"

func TestBusyIdleActiveHigh(t *testing.T) {
	if !ActiveHigh.busyIdle(false) {
		t.Fatal("ActiveHigh: level low should mean idle")
	}
	if ActiveHigh.busyIdle(true) {
		t.Fatal("ActiveHigh: level high should mean busy")
	}
}

func TestBusyIdleActiveLow(t *testing.T) {
	if !ActiveLow.busyIdle(true) {
		t.Fatal("ActiveLow: level high should mean idle")
	}
	if ActiveLow.busyIdle(false) {
		t.Fatal("ActiveLow: level low should mean busy")
	}
}
