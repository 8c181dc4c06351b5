package service

import (
	"testing"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

func ratedJobs(ratings ...int) []*domain.Job {
	jobs := make([]*domain.Job, len(ratings))
	for i, r := range ratings {
		jobs[i] = &domain.Job{Rating: r}
	}
	return jobs
}

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no jobs", nil, 0},
		{"unrated only", []int{0, 0}, 0},
		{"single", []int{5}, 5.0},
		{"rounds down", []int{5, 4, 4}, 4.3},
		{"rounds up", []int{5, 4}, 4.5},
		{"ignores unrated", []int{0, 3, 0, 4}, 3.5},
		{"repeating third", []int{1, 2, 2}, 1.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AverageRating(ratedJobs(tc.ratings...)); got != tc.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tc.ratings, got, tc.want)
			}
		})
	}
}
