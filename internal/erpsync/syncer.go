package erpsync

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=erpsync

import (
	"context"
	"time"

	"loyalty-server/internal/bonus/processor"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

const pendingBatchSize = 500

// Syncer mirrors MoySklad shipments into purchases and accrues bonus for them
type Syncer struct {
	erp      ERPClient
	store    SyncStore
	accruer  Accruer
	lookback time.Duration
	logger   *observability.Logger
	now      func() time.Time
}

func New(erp ERPClient, store SyncStore, accruer Accruer, lookback time.Duration, logger *observability.Logger) *Syncer {
	return &Syncer{
		erp:      erp,
		store:    store,
		accruer:  accruer,
		lookback: lookback,
		logger:   logger,
		now:      time.Now,
	}
}

// Result counts what one run did. Failed demands are retried by the next run
// through the pending purchase sweep.
type Result struct {
	Since      time.Time `json:"since"`
	Demands    int       `json:"demands"`
	Agents     int       `json:"agents"`
	Accrued    int       `json:"accrued"`
	Duplicates int       `json:"duplicates"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	Retried    int       `json:"retried"`
}

// Run pulls demands updated since the newest mirrored purchase minus the
// lookback window. Per-demand failures are logged and counted.
func (s *Syncer) Run(ctx context.Context) (Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "operation", Value: "erp_sync"})

	since, err := s.since(ctx)
	if err != nil {
		return Result{}, err
	}
	result := Result{Since: since}

	demands, err := s.erp.ListDemandsUpdatedSince(ctx, since)
	if err != nil {
		s.logger.Error(ctx, "failed to list demands", err)
		return result, err
	}
	result.Demands = len(demands)

	synced := make(map[string]bool)
	for _, d := range demands {
		dctx := observability.WithFields(ctx,
			observability.Field{Key: "demand_id", Value: d.ID},
			observability.Field{Key: "agent_id", Value: d.AgentID()},
		)

		agentID := d.AgentID()
		if agentID == "" || d.ID == "" {
			result.Skipped++
			s.logger.Warn(dctx, "demand without counterparty skipped")
			continue
		}

		if !synced[agentID] {
			if err := s.syncAgent(dctx, agentID); err != nil {
				result.Failed++
				s.logger.WarnWithError(dctx, "failed to sync counterparty", err)
				continue
			}
			synced[agentID] = true
			result.Agents++
		}

		res, err := s.accruer.AccruePurchase(dctx, processor.AccruePurchaseRequest{
			AgentID:  agentID,
			DemandID: d.ID,
			Amount:   d.Amount(),
			Moment:   d.Moment.Time,
		})
		switch {
		case err != nil:
			result.Failed++
			s.logger.WarnWithError(dctx, "failed to accrue purchase", err)
		case res.Duplicate:
			result.Duplicates++
		default:
			result.Accrued++
		}
	}

	s.retryPending(ctx, &result)

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "demands", Value: result.Demands},
		observability.Field{Key: "accrued", Value: result.Accrued},
		observability.Field{Key: "failed", Value: result.Failed},
	), "erp sync finished")
	return result, nil
}

func (s *Syncer) since(ctx context.Context) (time.Time, error) {
	latest, err := s.store.LatestPurchaseMoment(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to read sync watermark", err)
		return time.Time{}, err
	}
	now := s.now()
	if latest == nil || latest.After(now) {
		return now.Add(-s.lookback), nil
	}
	return latest.Add(-s.lookback), nil
}

func (s *Syncer) syncAgent(ctx context.Context, agentID string) error {
	cp, err := s.erp.GetCounterparty(ctx, agentID)
	if err != nil {
		return err
	}
	_, err = s.store.UpsertAgent(ctx, store.UpsertAgentParams{
		AgentID: cp.ID,
		Name:    cp.Name,
		Phone:   nonEmpty(cp.Phone),
		Email:   nonEmpty(cp.Email),
		Address: nonEmpty(cp.ActualAddress),
	})
	return err
}

// retryPending re-applies purchases mirrored earlier whose accrual failed
func (s *Syncer) retryPending(ctx context.Context, result *Result) {
	pending, err := s.store.ListPendingPurchases(ctx, pendingBatchSize)
	if err != nil {
		s.logger.WarnWithError(ctx, "failed to list pending purchases", err)
		return
	}
	for _, p := range pending {
		_, err := s.accruer.AccruePurchase(ctx, processor.AccruePurchaseRequest{
			AgentID:  p.AgentID,
			DemandID: p.DemandID,
			Amount:   p.Amount,
			Moment:   p.Moment,
		})
		if err != nil {
			s.logger.WarnWithError(observability.WithFields(ctx,
				observability.Field{Key: "demand_id", Value: p.DemandID},
			), "pending purchase still failing", err)
			continue
		}
		result.Retried++
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
