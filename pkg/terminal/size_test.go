package terminal

import "testing"

func TestEnvIntParsesPositiveIntegers(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{"valid", "120", 80, 120},
		{"empty", "", 80, 80},
		{"garbage", "wide", 80, 80},
		{"zero", "0", 80, 80},
		{"negative", "-5", 24, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value == "" {
				t.Setenv("WEFT_TEST_DIM", "")
			} else {
				t.Setenv("WEFT_TEST_DIM", tc.value)
			}
			if got := envInt("WEFT_TEST_DIM", tc.fallback); got != tc.want {
				t.Errorf("envInt(%q, %d) = %d, want %d", tc.value, tc.fallback, got, tc.want)
			}
		})
	}
}

func TestSizeFromEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")

	s := sizeFromEnv()
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("sizeFromEnv = %+v, want 80x24 defaults", s)
	}
}

func TestSizeFromEnvReadsVariables(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "50")

	s := sizeFromEnv()
	if s.Cols != 132 || s.Rows != 50 {
		t.Errorf("sizeFromEnv = %+v, want 132x50", s)
	}
}

func TestScreenSizeNeverReturnsZero(t *testing.T) {
	w, h := ScreenSize()
	if w <= 0 || h <= 0 {
		t.Errorf("ScreenSize = %dx%d, want positive dimensions", w, h)
	}
}
