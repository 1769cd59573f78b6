package portfolio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-01-01", want: NewDate(2023, time.January, 1)},
		{in: "2023-1-1", want: NewDate(2023, time.January, 1)},
		{in: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{in: "someday", wantErr: true},
		{in: "2023/01/01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	jan := MustParseDate("2023-01-01")
	feb := MustParseDate("2023-02-01")

	if !jan.Before(feb) || feb.Before(jan) {
		t.Error("Before() disagrees with calendar order")
	}
	if !feb.After(jan) || jan.After(feb) {
		t.Error("After() disagrees with calendar order")
	}
	if jan.Compare(feb) >= 0 || feb.Compare(jan) <= 0 || jan.Compare(jan) != 0 {
		t.Error("Compare() disagrees with calendar order")
	}
}

func TestDate_String(t *testing.T) {
	if got := MustParseDate("2023-7-4").String(); got != "2023-07-04" {
		t.Errorf("String() = %q, want 2023-07-04", got)
	}
	if !(Date{}).IsZero() {
		t.Error("zero Date is not IsZero")
	}
	if MustParseDate("2023-01-01").IsZero() {
		t.Error("parsed Date reports IsZero")
	}
}
