package optim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/climsim/internal/ebm"
)

func TestGridSearchFindsMinimum(t *testing.T) {
	gs := NewGridSearch(
		[]string{"a", "b"},
		[][]float64{
			{1.0, 2.0, 3.0},
			{10.0, 20.0},
		},
	)

	run := func(params map[string]float64) (*ebm.Result, error) {
		return &ebm.Result{
			Metrics: map[string]float64{"score": params["a"] + params["b"]},
		}, nil
	}
	objective := func(r *ebm.Result) float64 {
		return math.Abs(r.Metrics["score"] - 13.0)
	}

	best, val, err := gs.Search(context.Background(), run, objective)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if best["a"] != 3.0 || best["b"] != 10.0 {
		t.Errorf("expected a=3 b=10, got %v", best)
	}
	if val != 0 {
		t.Errorf("expected objective 0, got %f", val)
	}
}

func TestGridSearchSkipsFailedRuns(t *testing.T) {
	gs := NewGridSearch([]string{"a"}, [][]float64{{1.0, 2.0, 3.0}})

	run := func(params map[string]float64) (*ebm.Result, error) {
		if params["a"] == 1.0 {
			return nil, errors.New("unstable")
		}
		return &ebm.Result{Metrics: map[string]float64{"score": params["a"]}}, nil
	}
	objective := func(r *ebm.Result) float64 { return r.Metrics["score"] }

	best, val, err := gs.Search(context.Background(), run, objective)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if best["a"] != 2.0 || val != 2.0 {
		t.Errorf("expected a=2 val=2, got %v val=%f", best, val)
	}
}

func TestGridSearchCancellation(t *testing.T) {
	gs := NewGridSearch([]string{"a"}, [][]float64{{1.0, 2.0}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := func(params map[string]float64) (*ebm.Result, error) {
		t.Fatal("run should not execute after cancellation")
		return nil, nil
	}
	objective := func(r *ebm.Result) float64 { return 0 }

	_, _, err := gs.Search(ctx, run, objective)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
