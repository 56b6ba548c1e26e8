package quiz

import "math"

// DerivedScore maps accumulated weighted points into the 55..145 band.
// A correct answer contributes between 1 and 2 points depending on speed,
// so points range over [0, 2N] and the score clamps implicitly.
func DerivedScore(points float64, totalQuestions int) int {
	maxPoints := float64(2 * totalQuestions)
	return int(math.Round(55 + 90*points/maxPoints))
}

// Rating is the qualitative label for a derived score.
func Rating(score int) string {
	switch {
	case score >= 130:
		return "Very Superior"
	case score >= 120:
		return "Superior"
	case score >= 110:
		return "Bright"
	case score >= 90:
		return "Average"
	case score >= 80:
		return "Low Average"
	default:
		return "Below Average"
	}
}
