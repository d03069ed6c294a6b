// Package validator performs the cached lookup of partner and unit
// status that decides whether an event should be processed or skipped.
package validator

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/merkulovlad/orderpipe/internal/cache"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/repository"
)

// Decision is the outcome of validating an event.
type Decision struct {
	Process bool
	Reason  string // populated when Process is false
}

// Validator looks up partner and unit status through their caches,
// falling back to the repository on miss. Missing results are never
// negatively cached, so a subsequent lookup retries the store.
type Validator struct {
	repo         repository.Repository
	partnerCache cache.InterfaceCache[model.PartnerStatus]
	unitCache    cache.InterfaceCache[model.UnitStatus]
	partnerGroup singleflight.Group
	unitGroup    singleflight.Group
}

// New wraps the repository with partner/unit caches; their size bound
// and TTL are the caller's to configure.
func New(repo repository.Repository, partnerCache cache.InterfaceCache[model.PartnerStatus], unitCache cache.InterfaceCache[model.UnitStatus]) *Validator {
	return &Validator{repo: repo, partnerCache: partnerCache, unitCache: unitCache}
}

// ValidateEvent decides process vs skip: skip iff both partner and
// unit are non-ACTIVE (missing counts as non-ACTIVE).
func (v *Validator) ValidateEvent(ctx context.Context, e model.Event) (Decision, error) {
	partner, err := v.lookupPartner(ctx, e.TradingPartnerName)
	if err != nil {
		return Decision{}, fmt.Errorf("lookup partner: %w", err)
	}
	unit, err := v.lookupUnit(ctx, e.BusinessUnitName)
	if err != nil {
		return Decision{}, fmt.Errorf("lookup unit: %w", err)
	}

	partnerActive := partner != nil && model.IsActive(partner.Status)
	unitActive := unit != nil && model.IsActive(unit.Status)

	if !partnerActive && !unitActive {
		return Decision{Process: false, Reason: "partner and unit both non-active"}, nil
	}
	return Decision{Process: true}, nil
}

func (v *Validator) lookupPartner(ctx context.Context, name string) (*model.PartnerStatus, error) {
	if name == "" {
		return nil, nil
	}
	if cached, ok := v.partnerCache.Get(name); ok {
		return &cached, nil
	}
	res, err, _ := v.partnerGroup.Do(name, func() (interface{}, error) {
		if cached, ok := v.partnerCache.Get(name); ok {
			return &cached, nil
		}
		p, err := v.repo.FindTradingPartnerByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if p != nil {
			v.partnerCache.Set(name, *p)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*model.PartnerStatus), nil
}

func (v *Validator) lookupUnit(ctx context.Context, name string) (*model.UnitStatus, error) {
	if name == "" {
		return nil, nil
	}
	if cached, ok := v.unitCache.Get(name); ok {
		return &cached, nil
	}
	res, err, _ := v.unitGroup.Do(name, func() (interface{}, error) {
		if cached, ok := v.unitCache.Get(name); ok {
			return &cached, nil
		}
		u, err := v.repo.FindBusinessUnitByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if u != nil {
			v.unitCache.Set(name, *u)
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*model.UnitStatus), nil
}
