package scheduler

import (
	"context"
	"time"

	"loyalty-server/internal/callqueue/processor"
	"loyalty-server/internal/erpsync"
	segments "loyalty-server/internal/segments/processor"
)

// Job names used in logs and metrics
const (
	JobERPSync    = "erp_sync"
	JobSegments   = "segments"
	JobReclassify = "reclassify"
)

type ERPSyncer interface {
	Run(ctx context.Context) (erpsync.Result, error)
}

type SegmentRecomputer interface {
	Recompute(ctx context.Context) (segments.RecomputeResult, error)
}

type QueueReclassifier interface {
	Reclassify(ctx context.Context) (processor.ReclassifyResult, error)
}

type funcJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

func (j funcJob) Name() string { return j.name }

func (j funcJob) Schedule() time.Duration { return j.interval }

func (j funcJob) Run(ctx context.Context) error { return j.run(ctx) }

// NewERPSyncJob mirrors MoySklad shipments on interval
func NewERPSyncJob(syncer ERPSyncer, interval time.Duration) Job {
	return funcJob{name: JobERPSync, interval: interval, run: func(ctx context.Context) error {
		_, err := syncer.Run(ctx)
		return err
	}}
}

// NewSegmentsJob recomputes RFM segments on interval
func NewSegmentsJob(recomputer SegmentRecomputer, interval time.Duration) Job {
	return funcJob{name: JobSegments, interval: interval, run: func(ctx context.Context) error {
		_, err := recomputer.Recompute(ctx)
		return err
	}}
}

// NewReclassifyJob rebuilds the call queues on interval
func NewReclassifyJob(reclassifier QueueReclassifier, interval time.Duration) Job {
	return funcJob{name: JobReclassify, interval: interval, run: func(ctx context.Context) error {
		_, err := reclassifier.Reclassify(ctx)
		return err
	}}
}
