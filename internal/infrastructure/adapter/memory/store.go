// Package memory implements every persistence port in process memory with
// real transaction semantics: a unit works on a private copy of the state
// and only its commit publishes it. Units are serialized by one store-wide
// mutex, which stands in for row locks.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/persistence"
)

type lease struct {
	holder    string
	expiresAt time.Time
}

type state struct {
	users     map[int64]*entity.User
	txs       map[int64]*entity.Transaction
	txOrder   []int64
	payments  map[string]*entity.Payment
	cases     map[string]entity.RawCase
	progress  map[int64]map[string]int64
	withdraws map[int64]*entity.WithdrawRequest
	prizeReqs map[int64]*entity.PrizeRequest
	locks     map[int64]lease

	nextTxID       int64
	nextPaymentID  int64
	nextWithdrawID int64
	nextPrizeReqID int64
}

func newState() *state {
	return &state{
		users:     map[int64]*entity.User{},
		txs:       map[int64]*entity.Transaction{},
		payments:  map[string]*entity.Payment{},
		cases:     map[string]entity.RawCase{},
		progress:  map[int64]map[string]int64{},
		withdraws: map[int64]*entity.WithdrawRequest{},
		prizeReqs: map[int64]*entity.PrizeRequest{},
		locks:     map[int64]lease{},
	}
}

// clone copies the state deeply enough that a rolled back unit leaves no trace
func (s *state) clone() *state {
	c := *s
	c.users = make(map[int64]*entity.User, len(s.users))
	for k, v := range s.users {
		c.users[k] = v.Clone()
	}
	// Ledger rows are never mutated in place, UpdateMeta swaps in a copy.
	c.txs = maps.Clone(s.txs)
	c.txOrder = append([]int64(nil), s.txOrder...)
	c.payments = make(map[string]*entity.Payment, len(s.payments))
	for k, v := range s.payments {
		p := *v
		c.payments[k] = &p
	}
	c.cases = maps.Clone(s.cases)
	c.progress = make(map[int64]map[string]int64, len(s.progress))
	for k, v := range s.progress {
		c.progress[k] = maps.Clone(v)
	}
	c.withdraws = make(map[int64]*entity.WithdrawRequest, len(s.withdraws))
	for k, v := range s.withdraws {
		r := *v
		c.withdraws[k] = &r
	}
	c.prizeReqs = make(map[int64]*entity.PrizeRequest, len(s.prizeReqs))
	for k, v := range s.prizeReqs {
		r := *v
		c.prizeReqs[k] = &r
	}
	c.locks = maps.Clone(s.locks)
	return &c
}

// Store is the in-memory database
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time

	faultMu sync.Mutex
	faults  map[string]error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		state:  newState(),
		now:    time.Now,
		faults: map[string]error{},
	}
}

// SetClock replaces the clock used for lock leases
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailOn makes every call of the named operation return err until cleared
// with a nil err. Operation names look like "transactions.create".
func (s *Store) FailOn(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	return s.faults[op]
}

type txKey struct{}

type memTx struct {
	state *state
	done  bool
}

func txFrom(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey{}).(*memTx)
	return tx
}

// run executes fn against the unit's private state, or against the shared
// state in autocommit mode
func (s *Store) run(ctx context.Context, op string, fn func(st *state) error) error {
	if err := s.fault(op); err != nil {
		return err
	}
	if tx := txFrom(ctx); tx != nil && !tx.done {
		return fn(tx.state)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.state.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.state = work
	return nil
}

// UnitOfWork implements persistence.UnitOfWork over a Store
type UnitOfWork struct {
	store *Store
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work over store
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin takes the store lock and hands out a private copy of the state
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if txFrom(ctx) != nil {
		return nil, errors.New("nested transactions are not supported")
	}
	if err := u.store.fault("begin"); err != nil {
		return nil, err
	}
	u.store.mu.Lock()
	return context.WithValue(ctx, txKey{}, &memTx{state: u.store.state.clone()}), nil
}

// Commit publishes the unit's state and releases the store lock
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil || tx.done {
		return errors.New("no transaction in context")
	}
	tx.done = true
	defer u.store.mu.Unlock()

	if err := u.store.fault("commit"); err != nil {
		return err
	}
	u.store.state = tx.state
	return nil
}

// Rollback discards the unit's state and releases the store lock
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil || tx.done {
		return errors.New("no transaction in context")
	}
	tx.done = true
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) GetUserRepository(context.Context) persistence.UserRepository {
	return &userRepo{store: u.store}
}

func (u *UnitOfWork) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return &transactionRepo{store: u.store}
}

func (u *UnitOfWork) GetPaymentRepository(context.Context) persistence.PaymentRepository {
	return &paymentRepo{store: u.store}
}

func (u *UnitOfWork) GetCaseRepository(context.Context) persistence.CaseRepository {
	return &caseRepo{store: u.store}
}

func (u *UnitOfWork) GetTicketProgressRepository(context.Context) persistence.TicketProgressRepository {
	return &progressRepo{store: u.store}
}

func (u *UnitOfWork) GetWithdrawRequestRepository(context.Context) persistence.WithdrawRequestRepository {
	return &withdrawRepo{store: u.store}
}

func (u *UnitOfWork) GetPrizeRequestRepository(context.Context) persistence.PrizeRequestRepository {
	return &prizeRequestRepo{store: u.store}
}

func (u *UnitOfWork) GetUserLockRepository(context.Context) persistence.UserLockRepository {
	return &lockRepo{store: u.store}
}

// Snapshot helpers for tests

// User returns a copy of a committed user
func (s *Store) User(id int64) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// Transactions returns copies of the committed ledger rows of a user, oldest first
func (s *Store) Transactions(userID int64) []*entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Transaction
	for _, id := range s.state.txOrder {
		if t := s.state.txs[id]; t.UserID == userID {
			out = append(out, t.Clone())
		}
	}
	return out
}

// PaymentCount returns the number of committed payments
func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.payments)
}

// Progress returns a copy of the committed ticket progress of a user
func (s *Store) Progress(userID int64) entity.ProgressMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.state.progress[userID])
}

// PutUser stores a user directly, bypassing the ledger. Test setup only.
func (s *Store) PutUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID] = u.Clone()
}

// PutCases stores raw cases directly. Test setup only.
func (s *Store) PutCases(cases ...entity.RawCase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cases {
		s.state.cases[c.ID] = c
	}
}
