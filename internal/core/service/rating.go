package service

import (
	"math"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// AverageRating computes a worker's displayed reputation score: the
// arithmetic mean of the rating across all jobs that carry one, rounded to
// one decimal place. A worker with no rated jobs scores zero.
func AverageRating(jobs []*domain.Job) float64 {
	sum, count := 0, 0
	for _, j := range jobs {
		if j.Rating > 0 {
			sum += j.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}
