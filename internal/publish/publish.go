// Package publish emits processed orders to the downstream queue with
// bounded concurrency, serializing each grouped or individual message
// to JSON and sending it best-effort.
package publish

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/merkulovlad/orderpipe/internal/group"
	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/pipelineerr"
	"github.com/merkulovlad/orderpipe/internal/queueclient"
	"github.com/merkulovlad/orderpipe/internal/trace"
)

// Stats summarizes one Publish call's outcome; failures are logged,
// never propagated. Publish is best-effort at the core level.
type Stats struct {
	Sent   int
	Failed int
}

// Publisher routes processed orders through the Grouper (when
// requested) or straight to individual destinations, fanning sends out
// over a bounded semaphore.
type Publisher struct {
	client                queueclient.QueueClient
	grouper               *group.Grouper
	log                   logger.InterfaceLogger
	publishConcurrency    int64
	groupDestination      string
	individualDestination string
}

func New(client queueclient.QueueClient, grouper *group.Grouper, log logger.InterfaceLogger, publishConcurrency int64, groupDestination, individualDestination string) *Publisher {
	if publishConcurrency <= 0 {
		publishConcurrency = 50
	}
	return &Publisher{
		client:                client,
		grouper:               grouper,
		log:                   log,
		publishConcurrency:    publishConcurrency,
		groupDestination:      groupDestination,
		individualDestination: individualDestination,
	}
}

// Publish sends successes, optionally routed through the grouper first.
// It returns once every send has completed or failed; it never returns
// an error itself.
func (p *Publisher) Publish(ctx context.Context, successes []model.ProcessedOrder, useGrouping bool) Stats {
	if len(successes) == 0 {
		return Stats{}
	}

	var groupedMessages []model.GroupedMessage
	individuals := successes
	if useGrouping && p.grouper != nil {
		groupedMessages, individuals = p.grouper.Group(successes)
	}

	sem := semaphore.NewWeighted(p.publishConcurrency)
	var wg sync.WaitGroup
	var sent, failed atomic.Int64

	for _, gm := range groupedMessages {
		gm := gm
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				failed.Add(1)
				p.log.Errorf("acquire publish permit for group %s: %v", gm.GroupID, err)
				return
			}
			defer sem.Release(1)
			p.sendGroup(ctx, gm, &sent, &failed)
		}()
	}

	for _, o := range individuals {
		o := o
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				failed.Add(1)
				p.log.Errorf("acquire publish permit for order %s: %v", o.OrderID, err)
				return
			}
			defer sem.Release(1)
			p.sendIndividual(ctx, o, &sent, &failed)
		}()
	}

	wg.Wait()
	return Stats{Sent: int(sent.Load()), Failed: int(failed.Load())}
}

func (p *Publisher) sendGroup(ctx context.Context, gm model.GroupedMessage, sent, failed *atomic.Int64) {
	traceID := trace.FromContext(ctx).TraceID
	gm.TraceID = traceID
	gm.GroupedAt = time.Now().UTC()
	gm.GroupedBy = "publisher"
	body, err := json.Marshal(gm)
	if err != nil {
		failed.Add(1)
		p.log.Errorf("marshal grouped message %s: %v", gm.GroupID, err)
		return
	}
	if err := p.client.Send(ctx, p.groupDestination, traceHeaders(traceID), body); err != nil {
		pubErr := &pipelineerr.PublishError{MessageID: gm.GroupID, Err: err}
		failed.Add(1)
		p.log.Errorf("%v", pubErr)
		return
	}
	sent.Add(1)
}

func (p *Publisher) sendIndividual(ctx context.Context, o model.ProcessedOrder, sent, failed *atomic.Int64) {
	traceID := o.TraceID
	if traceID == "" {
		traceID = trace.FromContext(ctx).TraceID
		o.TraceID = traceID
	}
	body, err := json.Marshal(o)
	if err != nil {
		failed.Add(1)
		p.log.Errorf("marshal processed order %s: %v", o.OrderID, err)
		return
	}
	if err := p.client.Send(ctx, p.individualDestination, traceHeaders(traceID), body); err != nil {
		pubErr := &pipelineerr.PublishError{MessageID: o.OrderID, Err: err}
		failed.Add(1)
		p.log.Errorf("%v", pubErr)
		return
	}
	sent.Add(1)
}

// traceHeaders carries the event's trace id as the transport header a
// downstream consumer correlates logs against.
func traceHeaders(traceID string) map[string]string {
	if traceID == "" {
		return nil
	}
	return map[string]string{"X-Trace-Id": traceID}
}
