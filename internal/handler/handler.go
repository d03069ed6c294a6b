// Package handler is the per-message entry point: dedup, validation,
// fetch, orchestration, dead-lettering, and the commit decision.
package handler

import (
	"context"
	"fmt"

	"github.com/merkulovlad/orderpipe/internal/deadletter"
	"github.com/merkulovlad/orderpipe/internal/dedup"
	"github.com/merkulovlad/orderpipe/internal/docstore"
	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/orchestrator"
	"github.com/merkulovlad/orderpipe/internal/pipelineerr"
	"github.com/merkulovlad/orderpipe/internal/trace"
	"github.com/merkulovlad/orderpipe/internal/validator"
)

// Outcome reports what the handler did with one event, mainly for
// tests and logging; the caller only needs to know whether to commit.
type Outcome struct {
	Commit bool
	Reason string
	Result model.Result
}

// Handler wires the full per-event state machine. groupedEventTypes
// names the eventType values routed through the Grouper; anything else
// is individual.
type Handler struct {
	dedup             *dedup.Service
	validator         *validator.Validator
	orderSource       docstore.OrderSource
	orchestrator      *orchestrator.Orchestrator
	deadLetter        deadletter.Sink
	log               logger.InterfaceLogger
	groupedEventTypes map[string]bool
}

func New(
	dedupSvc *dedup.Service,
	val *validator.Validator,
	orderSource docstore.OrderSource,
	orch *orchestrator.Orchestrator,
	deadLetter deadletter.Sink,
	log logger.InterfaceLogger,
	groupedEventTypes []string,
) *Handler {
	set := make(map[string]bool, len(groupedEventTypes))
	for _, t := range groupedEventTypes {
		set[t] = true
	}
	return &Handler{
		dedup:             dedupSvc,
		validator:         val,
		orderSource:       orderSource,
		orchestrator:      orch,
		deadLetter:        deadLetter,
		log:               log,
		groupedEventTypes: set,
	}
}

// Handle runs one event through DEDUP_CHECK -> VALIDATE -> FETCH ->
// ORCHESTRATE -> DEAD_LETTER -> COMMIT. An error return means "do not
// commit": the caller must propagate it so the driver redelivers the
// event. Any other return (Commit=true, err=nil) means the offset
// should be committed regardless of Outcome.Reason.
func (h *Handler) Handle(ctx context.Context, e model.Event) (Outcome, error) {
	ctx = trace.WithContext(ctx, trace.FromContext(ctx))

	if !h.dedup.TryAcquire(e) {
		return Outcome{Commit: true, Reason: "duplicate"}, nil
	}

	decision, err := h.validator.ValidateEvent(ctx, e)
	if err != nil {
		return Outcome{}, &pipelineerr.FatalError{Stage: "validate", Err: fmt.Errorf("event %s: %w", e.EventID, err)}
	}
	if !decision.Process {
		return Outcome{Commit: true, Reason: decision.Reason}, nil
	}

	orders, err := h.orderSource.FetchOrdersForEvent(ctx, e)
	if err != nil {
		return Outcome{}, fmt.Errorf("fetch orders for event %s: %w", e.EventID, err)
	}
	if len(orders) == 0 {
		return Outcome{Commit: true, Reason: "no pending orders"}, nil
	}

	useGrouping := h.groupedEventTypes[e.EventType]
	result, err := h.orchestrator.Run(ctx, orders, useGrouping)
	if err != nil {
		return Outcome{}, &pipelineerr.FatalError{Stage: "orchestrate", Err: fmt.Errorf("event %s: %w", e.EventID, err)}
	}

	if len(result.Failures) > 0 {
		if err := h.deadLetter.Send(ctx, result.Failures); err != nil {
			return Outcome{}, &pipelineerr.FatalError{Stage: "dead_letter", Err: fmt.Errorf("event %s: %w", e.EventID, err)}
		}
	}

	if len(result.Successes) > 0 {
		ids := make([]string, len(result.Successes))
		for i, o := range result.Successes {
			ids[i] = o.OrderID
		}
		go h.orderSource.BatchUpdateOrderStatus(context.WithoutCancel(ctx), ids, model.StatusProcessed)
	}

	return Outcome{Commit: true, Result: result}, nil
}
