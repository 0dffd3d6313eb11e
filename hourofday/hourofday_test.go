package hourofday_test

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rickb777/date/v2"

	"github.com/tempusgo/tempus/hourofday"
)

func TestNew(t *testing.T) {
	for i := 0; i <= 23; i++ {
		got, err := hourofday.New(i)
		if err != nil {
			t.Fatalf("New(%d): unexpected error %v", i, err)
		}
		if got.Value() != i {
			t.Errorf("New(%d).Value() = %d", i, got.Value())
		}
		again, _ := hourofday.New(i)
		if again != got {
			t.Errorf("New(%d) built two unequal values", i)
		}
	}
}

func TestNewOutOfRange(t *testing.T) {
	for _, hour := range []int{-1, 24, 100} {
		if _, err := hourofday.New(hour); !errors.Is(err, hourofday.ErrOutOfRange) {
			t.Errorf("New(%d): expected ErrOutOfRange, got %v", hour, err)
		}
	}
}

func TestFromHalf(t *testing.T) {
	for i := 0; i <= 23; i++ {
		half := hourofday.AM
		if i >= 12 {
			half = hourofday.PM
		}
		got, err := hourofday.FromHalf(half, i%12)
		if err != nil {
			t.Fatalf("FromHalf(%s, %d): unexpected error %v", half, i%12, err)
		}
		if got.Value() != i {
			t.Errorf("FromHalf(%s, %d).Value() = %d, expected %d", half, i%12, got.Value(), i)
		}
	}
}

func TestFromHalfOutOfRange(t *testing.T) {
	for _, hour := range []int{-1, 12} {
		if _, err := hourofday.FromHalf(hourofday.AM, hour); !errors.Is(err, hourofday.ErrOutOfRange) {
			t.Errorf("FromHalf(AM, %d): expected ErrOutOfRange, got %v", hour, err)
		}
	}
}

func TestFromHalfUnknownAmPm(t *testing.T) {
	if _, err := hourofday.FromHalf(hourofday.AmPm(2), 1); !errors.Is(err, hourofday.ErrUnknownAmPm) {
		t.Errorf("expected ErrUnknownAmPm, got %v", err)
	}
}

func TestAmPmOf(t *testing.T) {
	for i := 0; i <= 23; i++ {
		expected := hourofday.AM
		if i >= 12 {
			expected = hourofday.PM
		}
		got, err := hourofday.AmPmOf(i)
		if err != nil {
			t.Fatalf("AmPmOf(%d): unexpected error %v", i, err)
		}
		if got != expected {
			t.Errorf("AmPmOf(%d) = %s, expected %s", i, got, expected)
		}
	}
	if _, err := hourofday.AmPmOf(24); !errors.Is(err, hourofday.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestFrom(t *testing.T) {
	src := time.Date(2012, time.March, 2, 0, 20, 0, 0, time.UTC)
	for i := 0; i <= 23; i++ {
		got, err := hourofday.From(src)
		if err != nil {
			t.Fatalf("From at hour %d: unexpected error %v", i, err)
		}
		if got.Value() != i {
			t.Errorf("From at hour %d: got %d", i, got.Value())
		}
		src = src.Add(time.Hour)
	}
}

func TestFromUnsupportedSource(t *testing.T) {
	// A calendar date has no hour-of-day component to derive from.
	if _, err := hourofday.From(date.New(2012, time.March, 2)); !errors.Is(err, hourofday.ErrUnsupportedSource) {
		t.Errorf("expected ErrUnsupportedSource, got %v", err)
	}
}

func TestFromNilSource(t *testing.T) {
	if _, err := hourofday.From(nil); !errors.Is(err, hourofday.ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
}

func TestFromTypedNilSource(t *testing.T) {
	// A nil *time.Time satisfies HourSource; it must be rejected, not
	// dereferenced.
	if _, err := hourofday.From((*time.Time)(nil)); !errors.Is(err, hourofday.ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
}

func TestViews(t *testing.T) {
	for i := 0; i <= 23; i++ {
		h, err := hourofday.New(i)
		if err != nil {
			t.Fatalf("New(%d): unexpected error %v", i, err)
		}

		expectedAmPm := hourofday.AM
		if i >= 12 {
			expectedAmPm = hourofday.PM
		}
		if got := h.AmPm(); got != expectedAmPm {
			t.Errorf("hour %d: AmPm() = %s, expected %s", i, got, expectedAmPm)
		}

		if got := h.HourOfAmPm(); got != i%12 {
			t.Errorf("hour %d: HourOfAmPm() = %d, expected %d", i, got, i%12)
		}

		expectedClock := i % 12
		if expectedClock == 0 {
			expectedClock = 12
		}
		if got := h.ClockHourOfAmPm(); got != expectedClock {
			t.Errorf("hour %d: ClockHourOfAmPm() = %d, expected %d", i, got, expectedClock)
		}

		expectedClockOfDay := i
		if i == 0 {
			expectedClockOfDay = 24
		}
		if got := h.ClockHourOfDay(); got != expectedClockOfDay {
			t.Errorf("hour %d: ClockHourOfDay() = %d, expected %d", i, got, expectedClockOfDay)
		}
	}
}

func TestAdjustTime(t *testing.T) {
	base := time.Date(2012, time.March, 2, 0, 20, 30, 40, time.UTC)
	expected := base
	for i := 0; i <= 23; i++ {
		h, err := hourofday.New(i)
		if err != nil {
			t.Fatalf("New(%d): unexpected error %v", i, err)
		}
		if got := h.AdjustTime(base); !got.Equal(expected) {
			t.Errorf("hour %d: AdjustTime = %v, expected %v", i, got, expected)
		}
		expected = expected.Add(time.Hour)
	}
}

func TestCompare(t *testing.T) {
	for i := 0; i <= 23; i++ {
		a, _ := hourofday.New(i)
		for j := 0; j <= 23; j++ {
			b, _ := hourofday.New(j)
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			if got := a.Compare(b); got != expected {
				t.Errorf("New(%d).Compare(New(%d)) = %d, expected %d", i, j, got, expected)
			}
			if (a == b) != (i == j) {
				t.Errorf("New(%d) == New(%d) disagrees with %d == %d", i, j, i, j)
			}
		}
	}
}

func TestString(t *testing.T) {
	for i := 0; i <= 23; i++ {
		h, _ := hourofday.New(i)
		if got := h.String(); got != "HourOfDay="+strconv.Itoa(i) {
			t.Errorf("expected HourOfDay=%d, got %q", i, got)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original, _ := hourofday.New(13)
	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(encoded) != `"13"` {
		t.Errorf("expected \"13\", got %s", encoded)
	}

	var decoded hourofday.HourOfDay
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if decoded != original {
		t.Errorf("expected %v back, got %v", original, decoded)
	}
}

func TestUnmarshalRevalidates(t *testing.T) {
	var h hourofday.HourOfDay
	if err := json.Unmarshal([]byte(`"24"`), &h); !errors.Is(err, hourofday.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := json.Unmarshal([]byte(`"noon"`), &h); err == nil {
		t.Error("expected an error")
	}
}
