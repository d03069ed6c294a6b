// Package orchestrator composes Preloader -> Transformer -> Publisher
// into one pipeline run, recording wall-clock timings per stage.
package orchestrator

import (
	"context"
	"time"

	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/preload"
	"github.com/merkulovlad/orderpipe/internal/publish"
	"github.com/merkulovlad/orderpipe/internal/transform"
)

// Orchestrator wires one preloader, one transformer, and one publisher
// into the per-event pipeline run.
type Orchestrator struct {
	preloader   preload.Preloader
	transformer *transform.Transformer
	publisher   *publish.Publisher
}

func New(preloader preload.Preloader, transformer *transform.Transformer, publisher *publish.Publisher) *Orchestrator {
	return &Orchestrator{preloader: preloader, transformer: transformer, publisher: publisher}
}

// Run executes preload, transform, and publish in sequence, recording
// each stage's wall-clock duration. An empty input short-circuits with
// a zeroed Result. A preload error is fatal and propagates.
func (o *Orchestrator) Run(ctx context.Context, orders []model.Order, useGrouping bool) (model.Result, error) {
	start := time.Now()
	if len(orders) == 0 {
		return model.Result{}, nil
	}

	ids := make([]string, len(orders))
	for i, ord := range orders {
		ids[i] = ord.ID
	}

	preloadStart := time.Now()
	pc, err := o.preloader.Preload(ctx, ids)
	preloadMs := time.Since(preloadStart).Milliseconds()
	if err != nil {
		return model.Result{}, err
	}

	processStart := time.Now()
	successes, failures := o.transformer.ProcessOrders(ctx, orders, pc)
	processingMs := time.Since(processStart).Milliseconds()

	publishStart := time.Now()
	o.publisher.Publish(ctx, successes, useGrouping)
	publishMs := time.Since(publishStart).Milliseconds()

	return model.Result{
		Successes: successes,
		Failures:  failures,
		Timings: model.Timings{
			PreloadMs:    preloadMs,
			ProcessingMs: processingMs,
			PublishMs:    publishMs,
			TotalMs:      time.Since(start).Milliseconds(),
		},
	}, nil
}
