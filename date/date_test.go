package date

import "testing"

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2026, 2, 11)
	d2 := New(2026, 2, 11)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer
		// for the timezone), this test also checks that the property remains true.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-02-11", want: New(2026, 2, 11)},
		{in: "2026-2-3", want: New(2026, 2, 3)},
		{in: "11/02/2026", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) err = %v, wantErr=%v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2026, 2, 10), New(2026, 2, 11)
	if a.Compare(b) >= 0 {
		t.Errorf("Compare: %v should be before %v", a, b)
	}
	if b.Compare(a) <= 0 {
		t.Errorf("Compare: %v should be after %v", b, a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare: %v should equal itself", a)
	}
}
