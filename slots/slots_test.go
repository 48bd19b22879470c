package slots_test

import (
	"testing"

	"staffing-server/slots"
)

func TestGenerate_FranceQuarterHour(t *testing.T) {
	got := slots.Generate("FRANCIA", "09:00", "12:00")

	if len(got) != 12 {
		t.Fatalf("Expected 12 slots, got %d: %v", len(got), got)
	}
	if got[0] != "09:00" {
		t.Errorf("Expected first slot 09:00, got %s", got[0])
	}
	if got[1] != "09:15" {
		t.Errorf("Expected second slot 09:15, got %s", got[1])
	}
	if got[len(got)-1] != "11:45" {
		t.Errorf("Expected last slot 11:45 (close minus granularity), got %s", got[len(got)-1])
	}
}

func TestGenerate_SpainHalfHour(t *testing.T) {
	got := slots.Generate("ESPAÑA", "09:00", "12:00")

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerate_CountryCasing(t *testing.T) {
	if got := slots.Generate("francia", "09:00", "10:00"); len(got) != 4 {
		t.Errorf("Expected lowercase country to keep 15-min granularity, got %v", got)
	}
}

func TestGenerate_SplitShift(t *testing.T) {
	got := slots.Generate("", "09:00-11:00,15:00-16:00", "")

	want := []string{"09:00", "09:30", "10:00", "10:30", "15:00", "15:30"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerate_SplitShiftSkipsBadInterval(t *testing.T) {
	got := slots.Generate("", "garbage-interval,15:00-16:00", "")

	want := []string{"15:00", "15:30"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected only the valid sub-interval, got %v", got)
	}
}

func TestGenerate_MalformedFallsBackToDefault(t *testing.T) {
	got := slots.Generate("X", "garbage", "also-garbage")

	// Default window 09:00-21:00 at 30 minutes is 24 slots.
	if len(got) != 24 {
		t.Fatalf("Expected 24 default slots, got %d: %v", len(got), got)
	}
	if got[0] != "09:00" || got[len(got)-1] != "20:30" {
		t.Errorf("Expected default window 09:00..20:30, got %s..%s", got[0], got[len(got)-1])
	}
}

func TestGenerate_InvertedWindowFallsBackToDefault(t *testing.T) {
	got := slots.Generate("", "18:00", "10:00")
	if len(got) != 24 {
		t.Errorf("Expected default sequence for open >= close, got %v", got)
	}
}

func TestGenerate_OffGridMinutesRoundDown(t *testing.T) {
	got := slots.Generate("", "09:10", "10:40")

	want := []string{"09:00", "09:30", "10:00"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d slots, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
