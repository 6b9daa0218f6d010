// Package scheduler runs the periodic maintenance jobs on cron specs
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/provider"
)

const jobTimeout = 2 * time.Minute

// Maintenance is the admin side the jobs drive
type Maintenance interface {
	ReconcileTicketProgress(ctx context.Context) (int64, error)
	PendingDigest(ctx context.Context) (*entity.PendingDigest, error)
}

// LeaseCleaner removes expired user leases
type LeaseCleaner interface {
	CleanupExpiredLeases(ctx context.Context) (int64, error)
}

// Specs are the cron expressions of the jobs. An empty spec disables its job.
type Specs struct {
	Reconcile   string
	Digest      string
	LockCleanup string
}

// Scheduler owns the cron runner
type Scheduler struct {
	cron        *cron.Cron
	specs       Specs
	maintenance Maintenance
	leases      LeaseCleaner
	notifier    coreport.Notifier
	admins      provider.AdminDirectory
	logger      coreport.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler in timezone. notifier may be nil, the digest is
// then only logged.
func New(
	timezone string,
	specs Specs,
	maintenance Maintenance,
	leases LeaseCleaner,
	notifier coreport.Notifier,
	admins provider.AdminDirectory,
	logger coreport.Logger,
) *Scheduler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("Unknown scheduler timezone, using UTC", map[string]any{
			"timezone": timezone,
			"error":    err.Error(),
		})
		loc = time.UTC
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		specs:       specs,
		maintenance: maintenance,
		leases:      leases,
		notifier:    notifier,
		admins:      admins,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start registers the jobs and starts the runner
func (s *Scheduler) Start() error {
	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"reconcile_ticket_progress", s.specs.Reconcile, s.RunReconcile},
		{"pending_digest", s.specs.Digest, s.RunDigest},
		{"lock_cleanup", s.specs.LockCleanup, s.RunLockCleanup},
	}

	for _, job := range jobs {
		if job.spec == "" {
			continue
		}
		if _, err := s.cron.AddFunc(job.spec, s.wrap(job.name, job.run)); err != nil {
			return fmt.Errorf("schedule %s (%q): %w", job.name, job.spec, err)
		}
		s.logger.Info("Job scheduled", map[string]any{"job": job.name, "spec": job.spec})
	}

	s.cron.Start()
	return nil
}

// Stop cancels running jobs and waits for them to return
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped", nil)
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Job panicked", map[string]any{"job": name, "panic": fmt.Sprint(r)})
			}
		}()

		ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			s.logger.Error("Job failed", map[string]any{"job": name, "error": err.Error()})
			return
		}
		s.logger.Debug("Job finished", map[string]any{
			"job":         name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

// RunReconcile repairs drift of the ticket progress table
func (s *Scheduler) RunReconcile(ctx context.Context) error {
	drifted, err := s.maintenance.ReconcileTicketProgress(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("Ticket progress reconciled", map[string]any{"drifted_rows": drifted})
	return nil
}

// RunDigest tells the admins how much work is waiting. Nothing is sent
// when the queues are empty.
func (s *Scheduler) RunDigest(ctx context.Context) error {
	digest, err := s.maintenance.PendingDigest(ctx)
	if err != nil {
		return err
	}
	if digest.PendingWithdraws == 0 && digest.NewPrizeRequests == 0 {
		return nil
	}

	text := fmt.Sprintf(
		"Pending withdraws: %d (%d Stars)\nNew prize requests: %d",
		digest.PendingWithdraws, digest.PendingAmount, digest.NewPrizeRequests,
	)
	s.logger.Info("Pending digest", map[string]any{
		"pending_withdraws":  digest.PendingWithdraws,
		"pending_amount":     digest.PendingAmount,
		"new_prize_requests": digest.NewPrizeRequests,
	})
	if s.notifier == nil {
		return nil
	}

	for _, adminID := range s.admins.AdminIDs() {
		if err := s.notifier.Notify(ctx, adminID, text); err != nil {
			s.logger.Warn("Failed to deliver digest", map[string]any{
				"admin_id": adminID,
				"error":    err.Error(),
			})
		}
	}
	return nil
}

// RunLockCleanup sweeps leases left behind by crashed replicas
func (s *Scheduler) RunLockCleanup(ctx context.Context) error {
	n, err := s.leases.CleanupExpiredLeases(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("Expired user leases removed", map[string]any{"count": n})
	}
	return nil
}
