package mongodb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldRatingFirstReview(t *testing.T) {
	num, sum, avg := foldRating(0, 0, 4)

	require.Equal(t, 1, num)
	require.Equal(t, 4.0, sum)
	require.Equal(t, 4.0, avg)
}

func TestFoldRatingRunningAverage(t *testing.T) {
	// Two ratings totalling 7 (avg 3.5), then a 5 lands.
	num, sum, avg := foldRating(2, 7, 5)

	require.Equal(t, 3, num)
	require.Equal(t, 12.0, sum)
	require.Equal(t, 4.0, avg)
}

func TestFoldRatingAverageConsistency(t *testing.T) {
	num, sum := 0, 0.0
	for _, rating := range []float64{5, 3, 4, 1, 2, 5, 5} {
		var avg float64
		num, sum, avg = foldRating(num, sum, rating)
		require.InDelta(t, sum/float64(num), avg, 1e-12)
		require.InDelta(t, sum, avg*float64(num), 1e-9)
	}
}
