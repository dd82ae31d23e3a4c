package optim

import (
	"context"
	"math"

	"github.com/san-kum/climsim/internal/ebm"
)

// GridSearch evaluates a run over every combination of the given
// parameter values and keeps the combination minimizing an objective.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search runs the simulation for each grid point and scores it with
// objective. Runs that fail are skipped rather than aborting the sweep.
func (g *GridSearch) Search(
	ctx context.Context,
	run func(params map[string]float64) (*ebm.Result, error),
	objective func(*ebm.Result) float64,
) (map[string]float64, float64, error) {

	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), run, objective, &best, &bestParams)

	if err := ctx.Err(); err != nil {
		return bestParams, best, err
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	run func(map[string]float64) (*ebm.Result, error),
	objective func(*ebm.Result) float64,
	best *float64,
	bestParams *map[string]float64,
) {
	if ctx.Err() != nil {
		return
	}

	if depth == len(g.paramNames) {
		result, err := run(current)
		if err != nil {
			return
		}

		val := objective(result)
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.searchRecursive(ctx, depth+1, newParams, run, objective, best, bestParams)
	}
}
