package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{".jpg", ".jpeg", ".png"}
	if !IsInSlice(".png", slice) {
		t.Errorf("IsInSlice(.png) = false, want true")
	}
	if IsInSlice(".gif", slice) {
		t.Errorf("IsInSlice(.gif) = true, want false")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"9", 540, true},
		{"9:30", 570, true},
		{"09:00", 540, true},
		{"17:30", 1050, true},
		{"9 AM", 540, true},
		{"9:00 AM", 540, true},
		{"5:30pm", 1050, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 720, true},
		{"12:15 a.m.", 15, true},
		{"0:00", 0, true},
		{"", 0, false},
		{"25:00", 0, false},
		{"13:00 PM", 0, false},
		{"9:75", 0, false},
		{"noon", 0, false},
	}
	for _, c := range cases {
		minutes, ok := ParseClock(c.input)
		if ok != c.ok || (ok && minutes != c.minutes) {
			t.Errorf("ParseClock(%q) = (%d, %v), want (%d, %v)", c.input, minutes, ok, c.minutes, c.ok)
		}
	}
}
