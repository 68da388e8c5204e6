package duration

import (
	"errors"
	"math"
	"testing"
)

func TestFromStandard(t *testing.T) {
	tests := []struct {
		name       string
		std        Standard
		wantMillis int64
		indefinite bool
	}{
		{name: "short", std: Short, wantMillis: 4000},
		{name: "long", std: Long, wantMillis: 10000},
		{name: "indefinite", std: Indefinite, wantMillis: IndefiniteMillis, indefinite: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromStandard(tt.std)
			if got := d.Millis(); got != tt.wantMillis {
				t.Errorf("Millis() = %d, want %d", got, tt.wantMillis)
			}
			if got := d.IsIndefinite(); got != tt.indefinite {
				t.Errorf("IsIndefinite() = %v, want %v", got, tt.indefinite)
			}
			tag, ok := d.StandardTag()
			if !ok || tag != tt.std {
				t.Errorf("StandardTag() = (%v, %v), want (%v, true)", tag, ok, tt.std)
			}
		})
	}
}

func TestFromMillis(t *testing.T) {
	d, err := FromMillis(1)
	if err != nil {
		t.Fatalf("FromMillis(1) error: %v", err)
	}
	if d.Millis() != 1 {
		t.Errorf("Millis() = %d, want 1", d.Millis())
	}
	if d.IsIndefinite() {
		t.Error("IsIndefinite() = true, want false")
	}
	if _, ok := d.StandardTag(); ok {
		t.Error("StandardTag() ok = true for custom duration")
	}
}

func TestFromMillisRejectsNonPositive(t *testing.T) {
	for _, ms := range []int64{0, -1} {
		if _, err := FromMillis(ms); !errors.Is(err, ErrNonPositive) {
			t.Errorf("FromMillis(%d) error = %v, want ErrNonPositive", ms, err)
		}
	}
}

func TestFromMillisMaxIsIndefinite(t *testing.T) {
	d, err := FromMillis(math.MaxInt64)
	if err != nil {
		t.Fatalf("FromMillis(MaxInt64) error: %v", err)
	}
	if !d.IsIndefinite() {
		t.Error("IsIndefinite() = false, want true")
	}
}

func TestFromSeconds(t *testing.T) {
	tests := []struct {
		name       string
		s          float64
		wantMillis int64
	}{
		{name: "one second", s: 1, wantMillis: 1000},
		{name: "truncates toward zero", s: 1.0015, wantMillis: 1001},
		{name: "one millisecond", s: 0.001, wantMillis: 1},
		{name: "sub-millisecond floors to 1ms", s: 0.0004, wantMillis: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromSeconds(tt.s)
			if err != nil {
				t.Fatalf("FromSeconds(%g) error: %v", tt.s, err)
			}
			if got := d.Millis(); got != tt.wantMillis {
				t.Errorf("Millis() = %d, want %d", got, tt.wantMillis)
			}
		})
	}
}

func TestFromSecondsHugeValuesAreIndefinite(t *testing.T) {
	for _, s := range []float64{
		float64(math.MaxInt64) / 1000, // first value past int64 milliseconds
		1e18,
		math.MaxFloat64,
	} {
		d, err := FromSeconds(s)
		if err != nil {
			t.Fatalf("FromSeconds(%g) error: %v", s, err)
		}
		if !d.IsIndefinite() {
			t.Errorf("FromSeconds(%g).IsIndefinite() = false, Millis() = %d", s, d.Millis())
		}
	}
}

func TestFromSecondsRejectsNonPositive(t *testing.T) {
	for _, s := range []float64{0, -0.5} {
		if _, err := FromSeconds(s); !errors.Is(err, ErrNonPositive) {
			t.Errorf("FromSeconds(%g) error = %v, want ErrNonPositive", s, err)
		}
	}
}

func TestZeroValueIsShort(t *testing.T) {
	var d Duration
	if d.Millis() != ShortMillis {
		t.Errorf("zero value Millis() = %d, want %d", d.Millis(), int64(ShortMillis))
	}
}

func TestString(t *testing.T) {
	if got := FromStandard(Indefinite).String(); got != "indefinite" {
		t.Errorf("String() = %q, want %q", got, "indefinite")
	}
	d, _ := FromMillis(250)
	if got := d.String(); got != "250ms" {
		t.Errorf("String() = %q, want %q", got, "250ms")
	}
}
