package metrics_test

import (
	"testing"

	"github.com/rsinghcodes/nutriai/internal/metrics"
)

func TestClassifyBMIBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bmi  float64
		want string
	}{
		{10.0, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.99, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
		{42.0, "Obese"},
	}
	for _, tc := range cases {
		got := metrics.ClassifyBMI(tc.bmi)
		if got.Label != tc.want {
			t.Fatalf("ClassifyBMI(%v) = %q, want %q", tc.bmi, got.Label, tc.want)
		}
		if got.Message == "" {
			t.Fatalf("ClassifyBMI(%v) returned empty message", tc.bmi)
		}
	}
}
