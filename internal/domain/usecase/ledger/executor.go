package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/persistence"
)

// Options tunes the executor
type Options struct {
	// QueueSize is the buffer of each per-user queue
	QueueSize int
	// IdleTimeout is how long a user's worker waits for work before exiting
	IdleTimeout time.Duration
	// LockTTL is the lifetime of a cross-replica user lease
	LockTTL time.Duration
	// Holder identifies this process in the user_locks table
	Holder string
}

// DefaultOptions returns the executor defaults
func DefaultOptions() Options {
	return Options{
		QueueSize:   100,
		IdleTimeout: 30 * time.Second,
		LockTTL:     5 * time.Second,
		Holder:      "ledger",
	}
}

// Work is one atomic unit of ledger mutations. ctx carries the database
// transaction; tx exposes the repositories bound to it.
type Work func(ctx context.Context, tx *Tx) error

// Tx groups the repositories bound to one database transaction
type Tx struct {
	Users         persistence.UserRepository
	Transactions  persistence.TransactionRepository
	Payments      persistence.PaymentRepository
	Cases         persistence.CaseRepository
	Progress      persistence.TicketProgressRepository
	Withdraws     persistence.WithdrawRequestRepository
	PrizeRequests persistence.PrizeRequestRepository
}

func bind(ctx context.Context, uow persistence.UnitOfWork) *Tx {
	return &Tx{
		Users:         uow.GetUserRepository(ctx),
		Transactions:  uow.GetTransactionRepository(ctx),
		Payments:      uow.GetPaymentRepository(ctx),
		Cases:         uow.GetCaseRepository(ctx),
		Progress:      uow.GetTicketProgressRepository(ctx),
		Withdraws:     uow.GetWithdrawRequestRepository(ctx),
		PrizeRequests: uow.GetPrizeRequestRepository(ctx),
	}
}

// Executor runs ledger work for a user one unit at a time. Each active user
// gets a queue and a worker goroutine that exits once the queue stays idle.
type Executor struct {
	uow          persistence.UnitOfWork
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	opts         Options

	mu      sync.Mutex
	queues  map[int64]*userQueue
	closed  bool
	stop    chan struct{}
	workers sync.WaitGroup
}

type userQueue struct {
	jobs    chan *job
	pending int // submitted but not yet finished, guarded by Executor.mu
}

type job struct {
	ctx    context.Context
	userID int64
	leased bool
	work   Work
	result chan error
}

// NewExecutor creates a ledger executor
func NewExecutor(
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	opts Options,
) *Executor {
	def := DefaultOptions()
	if opts.QueueSize <= 0 {
		opts.QueueSize = def.QueueSize
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = def.IdleTimeout
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = def.LockTTL
	}
	if opts.Holder == "" {
		opts.Holder = def.Holder
	}

	return &Executor{
		uow:          uow,
		logger:       logger,
		timeProvider: timeProvider,
		opts:         opts,
		queues:       make(map[int64]*userQueue),
		stop:         make(chan struct{}),
	}
}

// Execute runs work in one database transaction, ordered after every earlier
// submission for the same user
func (e *Executor) Execute(ctx context.Context, userID int64, work Work) error {
	return e.submit(ctx, &job{ctx: ctx, userID: userID, work: work})
}

// ExecuteLeased is Execute guarded additionally by the user's lease, so that
// other replicas cannot run leased work for the same user at the same time
func (e *Executor) ExecuteLeased(ctx context.Context, userID int64, work Work) error {
	return e.submit(ctx, &job{ctx: ctx, userID: userID, leased: true, work: work})
}

// InTransaction runs work in one database transaction without queueing.
// Used for configuration writes that touch no user row.
func (e *Executor) InTransaction(ctx context.Context, work Work) error {
	return e.runInTransaction(ctx, work)
}

// Read binds the repositories outside of any transaction
func (e *Executor) Read(ctx context.Context) *Tx {
	return bind(ctx, e.uow)
}

func (e *Executor) submit(ctx context.Context, j *job) error {
	j.result = make(chan error, 1)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return errs.ErrShuttingDown
	}
	q, ok := e.queues[j.userID]
	if !ok {
		q = &userQueue{jobs: make(chan *job, e.opts.QueueSize)}
		e.queues[j.userID] = q
		e.workers.Add(1)
		go e.worker(j.userID, q)
	}
	q.pending++
	e.mu.Unlock()

	select {
	case q.jobs <- j:
	case <-ctx.Done():
		e.done(q)
		return ctx.Err()
	case <-e.stop:
		e.done(q)
		return errs.ErrShuttingDown
	}

	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		e.logger.Warn("Context canceled while waiting for ledger work", map[string]any{
			"user_id": j.userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (e *Executor) done(q *userQueue) {
	e.mu.Lock()
	q.pending--
	e.mu.Unlock()
}

func (e *Executor) worker(userID int64, q *userQueue) {
	defer e.workers.Done()

	e.logger.Debug("Ledger worker started", map[string]any{"user_id": userID})

	idle := time.NewTimer(e.opts.IdleTimeout)
	defer idle.Stop()

	for {
		select {
		case j := <-q.jobs:
			j.result <- e.process(j)
			e.done(q)
			idle.Reset(e.opts.IdleTimeout)

		case <-idle.C:
			e.mu.Lock()
			if q.pending == 0 {
				delete(e.queues, userID)
				e.mu.Unlock()
				e.logger.Debug("Ledger worker idle, exiting", map[string]any{"user_id": userID})
				return
			}
			e.mu.Unlock()
			idle.Reset(e.opts.IdleTimeout)

		case <-e.stop:
			// Submitters racing with shutdown either hand their job over or
			// give up on their own, both of which settle pending.
			for {
				e.mu.Lock()
				n := q.pending
				e.mu.Unlock()
				if n == 0 {
					return
				}
				select {
				case j := <-q.jobs:
					j.result <- errs.ErrShuttingDown
					e.done(q)
				case <-time.After(10 * time.Millisecond):
				}
			}
		}
	}
}

func (e *Executor) process(j *job) error {
	if err := j.ctx.Err(); err != nil {
		return err
	}

	if j.leased {
		locks := e.uow.GetUserLockRepository(j.ctx)
		if err := locks.AcquireLock(j.ctx, j.userID, e.opts.Holder, e.opts.LockTTL); err != nil {
			if errors.Is(err, errs.ErrUserLocked) {
				e.logger.Warn("User lease held by another replica", map[string]any{
					"user_id": j.userID,
				})
			}
			return err
		}
		defer func() {
			if err := locks.ReleaseLock(context.WithoutCancel(j.ctx), j.userID, e.opts.Holder); err != nil {
				e.logger.Warn("Failed to release user lease", map[string]any{
					"user_id": j.userID,
					"error":   err.Error(),
				})
			}
		}()
	}

	return e.runInTransaction(j.ctx, j.work)
}

func (e *Executor) runInTransaction(ctx context.Context, work Work) (err error) {
	start := e.timeProvider.Now()

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
				e.logger.Error("Rollback after panic failed", map[string]any{"error": rbErr.Error()})
			}
			e.logger.Error("Panic in ledger work", map[string]any{"panic": fmt.Sprint(r)})
			err = fmt.Errorf("%w: %v", errs.ErrInternalServer, r)
		}
	}()

	if err = work(txCtx, bind(txCtx, e.uow)); err != nil {
		if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
			e.logger.Error("Rollback failed", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	if err = e.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	e.logger.Debug("Ledger work committed", map[string]any{
		"duration_ms": e.timeProvider.Since(start).Std().Milliseconds(),
	})
	return nil
}

// CleanupExpiredLeases deletes user leases past their expiry
func (e *Executor) CleanupExpiredLeases(ctx context.Context) (int64, error) {
	n, err := e.uow.GetUserLockRepository(ctx).CleanupExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup expired leases: %w", err)
	}
	return n, nil
}

// ActiveQueues returns the number of users with a live worker
func (e *Executor) ActiveQueues() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queues)
}

// Shutdown rejects new work, fails queued work with ErrShuttingDown and
// waits for running work to finish
func (e *Executor) Shutdown() {
	e.logger.Info("Shutting down ledger executor", nil)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.stop)
	e.mu.Unlock()

	e.workers.Wait()
	e.logger.Info("Ledger executor shut down successfully", nil)
}
