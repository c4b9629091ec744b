package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-03-05"` {
		t.Errorf("Marshal = %s, want \"2024-03-05\"", b)
	}

	var got Date
	if err := json.Unmarshal([]byte(`"2023-12-31"`), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(NewDate(2023, time.December, 31)) {
		t.Errorf("Unmarshal = %s", got)
	}

	if err := json.Unmarshal([]byte(`"31/12/2023"`), &got); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestParseDateRange(t *testing.T) {
	if _, err := ParseDate("0000-01-01"); err == nil {
		t.Error("expected error for year 0000")
	}
	d, err := ParseDate("0001-01-01")
	if err != nil {
		t.Fatalf("ParseDate(0001-01-01): %v", err)
	}
	if !d.Equal(NewDate(1, time.January, 1)) {
		t.Errorf("ParseDate(0001-01-01) = %s", d)
	}
}

func TestDateScan(t *testing.T) {
	want := NewDate(2024, time.January, 2)
	loc := time.FixedZone("X", 3600)

	tests := []struct {
		name string
		src  any
	}{
		{"time", time.Date(2024, 1, 2, 0, 0, 0, 0, loc)},
		{"string", "2024-01-02"},
		{"bytes", []byte("2024-01-02")},
		{"rfc3339", "2024-01-02T00:00:00Z"},
		{"datetime", "2024-01-02 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%v): %v", tt.src, err)
			}
			if !d.Equal(want) {
				t.Errorf("Scan(%v) = %s, want %s", tt.src, d, want)
			}
		})
	}

	var d Date
	if err := d.Scan(nil); err == nil {
		t.Error("expected error scanning NULL")
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.July, 9).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "2024-07-09" {
		t.Errorf("Value = %v, want 2024-07-09", v)
	}
}

func TestMemberView(t *testing.T) {
	m := &Member{ID: 3, Name: "Alice", Age: 30, TrainerID: 1}

	b, err := json.Marshal(m.View())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"name":"Alice","age":30,"trainer_id":1}` {
		t.Errorf("View JSON = %s", b)
	}
}
