package service

import (
	"context"
	"strings"

	"github.com/dailyhub/dailyhub/internal/upstream"
)

const maxExercises = 5

// Workout returns up to five exercises for a muscle group, as returned
// upstream.
func (g *Gateway) Workout(ctx context.Context, muscle string) ([]upstream.Exercise, error) {
	if strings.TrimSpace(muscle) == "" {
		return nil, validationError("No muscle group provided.")
	}

	exercises, err := g.up.Exercises.Exercises(ctx, muscle)
	if err != nil {
		return nil, upstreamError("Failed to fetch exercises.", err)
	}
	if len(exercises) == 0 {
		return nil, notFoundError("No exercises found for that muscle group.")
	}

	if len(exercises) > maxExercises {
		exercises = exercises[:maxExercises]
	}
	return exercises, nil
}
