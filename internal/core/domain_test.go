package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-01-01", true},
		{"2025-12-31", true},
		{"2025-02-30", false},
		{"31-12-2025", false},
		{"2025/12/31", false},
		{"not a date", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseDate(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("ParseDate(%q) expected error", tc.in)
			}
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidDate", tc.in, err)
			}
			continue
		}
		if d.String() != tc.in {
			t.Fatalf("ParseDate(%q).String() = %q", tc.in, d.String())
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, 8, 21)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-08-21"` {
		t.Fatalf("marshal = %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"now"`), &back); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Description: "uber ride",
		Amount:      120.50,
		Category:    "Transport",
		Date:        NewDate(2025, 8, 21),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		e    Expense
		want error
	}{
		{"empty description", Expense{Description: "   ", Amount: 1, Category: "Food", Date: NewDate(2025, 1, 1)}, ErrEmptyDescription},
		{"zero amount", Expense{Description: "x", Amount: 0, Category: "Food", Date: NewDate(2025, 1, 1)}, ErrInvalidAmount},
		{"negative amount", Expense{Description: "x", Amount: -5, Category: "Food", Date: NewDate(2025, 1, 1)}, ErrInvalidAmount},
		{"empty category", Expense{Description: "x", Amount: 1, Category: " ", Date: NewDate(2025, 1, 1)}, ErrEmptyCategory},
		{"zero date", Expense{Description: "x", Amount: 1, Category: "Food"}, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.e.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := (Budget{Category: "Food", Budget: 1000}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Budget{Category: "", Budget: 1000}).Validate(); !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
	if err := (Budget{Category: "Food", Budget: 0}).Validate(); !errors.Is(err, ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
	if err := (Budget{Category: "Food", Budget: -10}).Validate(); !errors.Is(err, ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		{199.999, 200.0},
		{0.1 + 0.2, 0.3},
		{1234.5678, 1234.57},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
