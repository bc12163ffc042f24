package dateutil

import (
	"testing"
	"time"
)

func TestSQLWeekday(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected int
	}{
		{
			name:     "Sunday is 1",
			input:    Date(2025, time.January, 5),
			expected: Sunday,
		},
		{
			name:     "Monday is 2",
			input:    Date(2025, time.January, 6),
			expected: Monday,
		},
		{
			name:     "Saturday is 7",
			input:    Date(2025, time.January, 4),
			expected: Saturday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SQLWeekday(tt.input); got != tt.expected {
				t.Errorf("SQLWeekday(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsWeekendDay(t *testing.T) {
	for dow := Sunday; dow <= Saturday; dow++ {
		want := dow == Sunday || dow == Saturday
		if got := IsWeekendDay(dow); got != want {
			t.Errorf("IsWeekendDay(%d) = %v, want %v", dow, got, want)
		}
	}
}

func TestIsLastDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"Jan 31", Date(2025, time.January, 31), true},
		{"Jan 30", Date(2025, time.January, 30), false},
		{"Feb 28 leap year", Date(2024, time.February, 28), false},
		{"Feb 29 leap year", Date(2024, time.February, 29), true},
		{"Feb 28 common year", Date(2025, time.February, 28), true},
		{"Dec 31", Date(2024, time.December, 31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLastDayOfMonth(tt.input); got != tt.expected {
				t.Errorf("IsLastDayOfMonth(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWeekOfYear(t *testing.T) {
	// Pinned against Python strftime("%U") + 1.
	tests := []struct {
		name     string
		input    time.Time
		expected int
	}{
		{
			name:     "Jan 1 before first Sunday",
			input:    Date(2024, time.January, 1), // Monday
			expected: 1,
		},
		{
			name:     "first Sunday starts week 2",
			input:    Date(2024, time.January, 7),
			expected: 2,
		},
		{
			name:     "Jan 1 on a Sunday starts week 2 immediately",
			input:    Date(2023, time.January, 1),
			expected: 2,
		},
		{
			name:     "end of a leap year",
			input:    Date(2024, time.December, 31), // Tuesday
			expected: 53,
		},
		{
			name:     "mid-year",
			input:    Date(2025, time.January, 5), // first Sunday of 2025
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOfYear(tt.input); got != tt.expected {
				t.Errorf("WeekOfYear(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDayOfYear(t *testing.T) {
	if got := DayOfYear(Date(2024, time.March, 1)); got != 61 {
		t.Errorf("DayOfYear(2024-03-01) = %d, want 61 (leap year)", got)
	}
	if got := DayOfYear(Date(2025, time.March, 1)); got != 60 {
		t.Errorf("DayOfYear(2025-03-01) = %d, want 60", got)
	}
}

func TestQuarter(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, tt := range tests {
		if got := Quarter(tt.month); got != tt.expected {
			t.Errorf("Quarter(%v) = %d, want %d", tt.month, got, tt.expected)
		}
	}
}

func TestDayName(t *testing.T) {
	if got := DayName(Sunday); got != "Sunday" {
		t.Errorf("DayName(Sunday) = %q, want %q", got, "Sunday")
	}
	if got := DayName(Saturday); got != "Saturday" {
		t.Errorf("DayName(Saturday) = %q, want %q", got, "Saturday")
	}

	defer func() {
		if recover() == nil {
			t.Error("DayName(0) did not panic")
		}
	}()
	DayName(0)
}

func TestMonthName(t *testing.T) {
	if got := MonthName(time.September); got != "September" {
		t.Errorf("MonthName(September) = %q, want %q", got, "September")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "ISO date",
			input:    "2025-01-15",
			expected: Date(2025, time.January, 15),
		},
		{
			name:     "dotted date",
			input:    "15.01.2025",
			expected: Date(2025, time.January, 15),
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	from := Date(2024, time.December, 30)
	to := Date(2025, time.January, 2)
	if got := DaysBetween(from, to); got != 3 {
		t.Errorf("DaysBetween(%v, %v) = %d, want 3", from, to, got)
	}
}
