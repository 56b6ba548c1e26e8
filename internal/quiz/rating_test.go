package quiz

import "testing"

func TestDerivedScoreBounds(t *testing.T) {
	const n = 15
	for points := 0.0; points <= 2*n; points += 0.25 {
		score := DerivedScore(points, n)
		if score < 55 || score > 145 {
			t.Fatalf("points %.2f produced out-of-band score %d", points, score)
		}
	}
	if got := DerivedScore(0, n); got != 55 {
		t.Fatalf("expected floor 55, got %d", got)
	}
	if got := DerivedScore(2*n, n); got != 145 {
		t.Fatalf("expected ceiling 145, got %d", got)
	}
}

func TestRatingLabels(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{145, "Very Superior"},
		{130, "Very Superior"},
		{129, "Superior"},
		{120, "Superior"},
		{119, "Bright"},
		{110, "Bright"},
		{109, "Average"},
		{90, "Average"},
		{89, "Low Average"},
		{80, "Low Average"},
		{79, "Below Average"},
		{55, "Below Average"},
	}
	for _, tc := range cases {
		if got := Rating(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}
