package content

import (
	"testing"
	"time"
)

func TestRecordText(t *testing.T) {
	r := Record{ID: "r", Properties: map[string]any{
		"s": "hello", "f": 2.5, "i": 3, "b": true,
	}}
	tests := []struct {
		key  string
		want string
	}{
		{"s", "hello"},
		{"f", "2.5"},
		{"i", "3"},
		{"b", "true"},
		{"missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Text(tt.key); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestRecordFloat(t *testing.T) {
	r := Record{ID: "r", Properties: map[string]any{"n": 4.0, "s": "1.5", "bad": "x", "b": true}}

	if v, err := r.Float("n"); err != nil || v != 4 {
		t.Errorf("Float(n) = %v, %v", v, err)
	}
	if v, err := r.Float("s"); err != nil || v != 1.5 {
		t.Errorf("Float(s) = %v, %v", v, err)
	}
	for _, key := range []string{"bad", "b", "missing"} {
		if _, err := r.Float(key); err == nil {
			t.Errorf("Float(%q): expected error", key)
		}
	}
}

func TestRecordTime(t *testing.T) {
	r := Record{ID: "r", Properties: map[string]any{
		"date": "2024-03-05", "stamp": "2024-03-05T10:00:00Z", "bad": "soon",
	}}
	d, err := r.Time("date")
	if err != nil || !d.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time(date) = %v, %v", d, err)
	}
	s, err := r.Time("stamp")
	if err != nil || s.Hour() != 10 {
		t.Errorf("Time(stamp) = %v, %v", s, err)
	}
	if _, err := r.Time("bad"); err == nil {
		t.Error("Time(bad): expected error")
	}
}

func TestMapStatRequiresValue(t *testing.T) {
	if _, err := MapStat(Record{ID: "x", Properties: map[string]any{"Label": "Years"}}); err == nil {
		t.Error("expected error for missing Value")
	}
	s, err := MapStat(Record{ID: "y", Properties: map[string]any{"Label": "Years", "Value": 12, "Suffix": "+"}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Value != 12 || s.Suffix != "+" {
		t.Errorf("got %+v", s)
	}
}
