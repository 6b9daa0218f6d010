package memory

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/entity"
	errs "github.com/amirhossein-jamali/stars-roulette/internal/domain/error"
)

type userRepo struct{ store *Store }

func (r *userRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	err := r.store.run(ctx, "users.get", func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		out = u.Clone()
		return nil
	})
	return out, err
}

func (r *userRepo) GetForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	if err := r.store.fault("users.get_for_update"); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) EnsureExists(ctx context.Context, user *entity.User) (bool, error) {
	var created bool
	err := r.store.run(ctx, "users.ensure", func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return nil
		}
		st.users[user.ID] = user.Clone()
		created = true
		return nil
	})
	return created, err
}

func (r *userRepo) Update(ctx context.Context, user *entity.User) error {
	return r.store.run(ctx, "users.update", func(st *state) error {
		if _, ok := st.users[user.ID]; !ok {
			return errs.ErrUserNotFound
		}
		if user.Balance() < 0 || user.TicketsSneakers() < 0 || user.TicketsBracelet() < 0 {
			return errs.ErrNegativeBalance
		}
		st.users[user.ID] = user.Clone()
		return nil
	})
}

func (r *userRepo) ReferralSummary(ctx context.Context, filter entity.ReferralFilter) ([]entity.ReferralSummaryRow, error) {
	var out []entity.ReferralSummaryRow
	err := r.store.run(ctx, "users.referral_summary", func(st *state) error {
		deposits := depositSums(st)
		bonuses := map[int64]int64{}
		for _, t := range st.txs {
			if isReferrerBonus(t) {
				bonuses[t.UserID] += t.Amount
			}
		}

		rows := map[int64]*entity.ReferralSummaryRow{}
		for _, u := range st.users {
			if u.ReferrerID == nil || !matchInvitee(u, filter) {
				continue
			}
			ref := *u.ReferrerID
			row, ok := rows[ref]
			if !ok {
				row = &entity.ReferralSummaryRow{ReferrerID: ref, TotalBonus: bonuses[ref]}
				rows[ref] = row
			}
			row.InvitedCount++
			row.TotalDeposit += deposits[u.ID]
		}

		for _, row := range rows {
			out = append(out, *row)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].InvitedCount != out[j].InvitedCount {
				return out[i].InvitedCount > out[j].InvitedCount
			}
			return out[i].ReferrerID < out[j].ReferrerID
		})
		if filter.Limit > 0 && len(out) > filter.Limit {
			out = out[:filter.Limit]
		}
		return nil
	})
	return out, err
}

func (r *userRepo) ReferralDetails(ctx context.Context, referrerID int64, filter entity.ReferralFilter) ([]entity.ReferralDetailRow, error) {
	var out []entity.ReferralDetailRow
	err := r.store.run(ctx, "users.referral_details", func(st *state) error {
		deposits := depositSums(st)
		for _, u := range st.users {
			if u.ReferrerID == nil || *u.ReferrerID != referrerID {
				continue
			}
			if (filter.From != nil && u.CreatedAt.Before(*filter.From)) ||
				(filter.To != nil && u.CreatedAt.After(*filter.To)) {
				continue
			}
			out = append(out, entity.ReferralDetailRow{
				UserID:     u.ID,
				CreatedAt:  u.CreatedAt,
				DepositSum: deposits[u.ID],
			})
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].UserID > out[j].UserID
		})
		if filter.Limit > 0 && len(out) > filter.Limit {
			out = out[:filter.Limit]
		}
		return nil
	})
	return out, err
}

func depositSums(st *state) map[int64]int64 {
	out := map[int64]int64{}
	for _, t := range st.txs {
		if t.Type == entity.TxDeposit {
			out[t.UserID] += t.Amount
		}
	}
	return out
}

func isReferrerBonus(t *entity.Transaction) bool {
	if t.Type != entity.TxReferral || t.Meta == nil {
		return false
	}
	k := t.Meta.Kind()
	return k == entity.MetaReferralDepositBonus || k == entity.MetaReferralSignupReferrer
}

func matchInvitee(u *entity.User, f entity.ReferralFilter) bool {
	if f.Query != nil && u.ID != *f.Query && *u.ReferrerID != *f.Query {
		return false
	}
	if f.From != nil && u.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && u.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

type transactionRepo struct{ store *Store }

func (r *transactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	return r.store.run(ctx, "transactions.create", func(st *state) error {
		if _, ok := st.users[t.UserID]; !ok {
			return errs.ErrUserNotFound
		}
		st.nextTxID++
		t.ID = st.nextTxID
		st.txs[t.ID] = t.Clone()
		st.txOrder = append(st.txOrder, t.ID)
		return nil
	})
}

func (r *transactionRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.store.run(ctx, "transactions.get_for_update", func(st *state) error {
		t, ok := st.txs[id]
		if !ok {
			return errs.ErrTransactionNotFound
		}
		out = t.Clone()
		return nil
	})
	return out, err
}

func (r *transactionRepo) UpdateMeta(ctx context.Context, t *entity.Transaction) error {
	return r.store.run(ctx, "transactions.update_meta", func(st *state) error {
		cur, ok := st.txs[t.ID]
		if !ok {
			return errs.ErrTransactionNotFound
		}
		next := cur.Clone()
		next.Meta = entity.CloneMeta(t.Meta)
		st.txs[t.ID] = next
		return nil
	})
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.store.run(ctx, "transactions.list", func(st *state) error {
		for i := len(st.txOrder) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
			if t := st.txs[st.txOrder[i]]; t.UserID == userID {
				out = append(out, t.Clone())
			}
		}
		return nil
	})
	return out, err
}

type paymentRepo struct{ store *Store }

func (r *paymentRepo) ExistsByChargeID(ctx context.Context, chargeID string) (bool, error) {
	var exists bool
	err := r.store.run(ctx, "payments.exists", func(st *state) error {
		_, exists = st.payments[chargeID]
		return nil
	})
	return exists, err
}

func (r *paymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	return r.store.run(ctx, "payments.create", func(st *state) error {
		if _, ok := st.payments[p.TelegramPaymentChargeID]; ok {
			return errs.ErrDuplicatePayment
		}
		st.nextPaymentID++
		p.ID = st.nextPaymentID
		cp := *p
		st.payments[p.TelegramPaymentChargeID] = &cp
		return nil
	})
}

type caseRepo struct{ store *Store }

func (r *caseRepo) List(ctx context.Context) ([]entity.RawCase, error) {
	var out []entity.RawCase
	err := r.store.run(ctx, "cases.list", func(st *state) error {
		for _, c := range st.cases {
			out = append(out, c)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return nil
	})
	return out, err
}

func (r *caseRepo) Get(ctx context.Context, id string) (*entity.RawCase, error) {
	var out *entity.RawCase
	err := r.store.run(ctx, "cases.get", func(st *state) error {
		c, ok := st.cases[id]
		if !ok {
			return errs.ErrUnknownCase
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *caseRepo) Save(ctx context.Context, c entity.RawCase) error {
	return r.store.run(ctx, "cases.save", func(st *state) error {
		st.cases[c.ID] = c
		return nil
	})
}

func (r *caseRepo) ReplaceAll(ctx context.Context, cases []entity.RawCase) error {
	return r.store.run(ctx, "cases.replace_all", func(st *state) error {
		st.cases = make(map[string]entity.RawCase, len(cases))
		for _, c := range cases {
			st.cases[c.ID] = c
		}
		return nil
	})
}

func (r *caseRepo) SeedIfEmpty(ctx context.Context, cases []entity.RawCase) (bool, error) {
	var seeded bool
	err := r.store.run(ctx, "cases.seed", func(st *state) error {
		if len(st.cases) > 0 {
			return nil
		}
		for _, c := range cases {
			st.cases[c.ID] = c
		}
		seeded = true
		return nil
	})
	return seeded, err
}

type progressRepo struct{ store *Store }

func (r *progressRepo) GetByUser(ctx context.Context, userID int64) (entity.ProgressMap, error) {
	out := entity.ProgressMap{}
	err := r.store.run(ctx, "progress.get", func(st *state) error {
		for code, n := range st.progress[userID] {
			if n > 0 {
				out[code] = n
			}
		}
		return nil
	})
	return out, err
}

func (r *progressRepo) Add(ctx context.Context, userID int64, prizeCode string, delta int64) error {
	return r.store.run(ctx, "progress.add", func(st *state) error {
		m, ok := st.progress[userID]
		if !ok {
			m = map[string]int64{}
			st.progress[userID] = m
		}
		m[prizeCode] += delta
		return nil
	})
}

func (r *progressRepo) Reconcile(ctx context.Context) (int64, error) {
	var drifted int64
	err := r.store.run(ctx, "progress.reconcile", func(st *state) error {
		want := map[int64]map[string]int64{}
		for _, t := range st.txs {
			lot, ok := t.TicketLot()
			if !ok {
				continue
			}
			if want[t.UserID] == nil {
				want[t.UserID] = map[string]int64{}
			}
			want[t.UserID][lot.PrizeCode] += lot.Left()
		}

		for uid, codes := range want {
			for code, n := range codes {
				if st.progress[uid][code] != n {
					drifted++
				}
			}
		}
		for uid, codes := range st.progress {
			for code, n := range codes {
				if _, ok := want[uid][code]; !ok && n != 0 {
					drifted++
				}
			}
		}
		st.progress = want
		return nil
	})
	return drifted, err
}

type withdrawRepo struct{ store *Store }

func (r *withdrawRepo) Create(ctx context.Context, req *entity.WithdrawRequest) error {
	return r.store.run(ctx, "withdraws.create", func(st *state) error {
		st.nextWithdrawID++
		req.ID = st.nextWithdrawID
		cp := *req
		st.withdraws[req.ID] = &cp
		return nil
	})
}

func (r *withdrawRepo) GetForUpdate(ctx context.Context, id int64) (*entity.WithdrawRequest, error) {
	var out *entity.WithdrawRequest
	err := r.store.run(ctx, "withdraws.get_for_update", func(st *state) error {
		w, ok := st.withdraws[id]
		if !ok {
			return errs.ErrRequestNotFound
		}
		cp := *w
		out = &cp
		return nil
	})
	return out, err
}

func (r *withdrawRepo) Update(ctx context.Context, req *entity.WithdrawRequest) error {
	return r.store.run(ctx, "withdraws.update", func(st *state) error {
		if _, ok := st.withdraws[req.ID]; !ok {
			return errs.ErrRequestNotFound
		}
		cp := *req
		st.withdraws[req.ID] = &cp
		return nil
	})
}

func (r *withdrawRepo) ListRecent(ctx context.Context, limit int) ([]*entity.WithdrawRequest, error) {
	var out []*entity.WithdrawRequest
	err := r.store.run(ctx, "withdraws.list", func(st *state) error {
		for _, w := range st.withdraws {
			cp := *w
			out = append(out, &cp)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

func (r *withdrawRepo) PendingTotals(ctx context.Context) (int64, int64, error) {
	var count, amount int64
	err := r.store.run(ctx, "withdraws.pending_totals", func(st *state) error {
		for _, w := range st.withdraws {
			if w.Status == entity.StatusPending {
				count++
				amount += w.Amount
			}
		}
		return nil
	})
	return count, amount, err
}

type prizeRequestRepo struct{ store *Store }

func (r *prizeRequestRepo) Create(ctx context.Context, req *entity.PrizeRequest) error {
	return r.store.run(ctx, "prize_requests.create", func(st *state) error {
		st.nextPrizeReqID++
		req.ID = st.nextPrizeReqID
		cp := *req
		st.prizeReqs[req.ID] = &cp
		return nil
	})
}

func (r *prizeRequestRepo) GetForUpdate(ctx context.Context, id int64) (*entity.PrizeRequest, error) {
	var out *entity.PrizeRequest
	err := r.store.run(ctx, "prize_requests.get_for_update", func(st *state) error {
		p, ok := st.prizeReqs[id]
		if !ok {
			return errs.ErrRequestNotFound
		}
		cp := *p
		out = &cp
		return nil
	})
	return out, err
}

func (r *prizeRequestRepo) Update(ctx context.Context, req *entity.PrizeRequest) error {
	return r.store.run(ctx, "prize_requests.update", func(st *state) error {
		if _, ok := st.prizeReqs[req.ID]; !ok {
			return errs.ErrRequestNotFound
		}
		cp := *req
		st.prizeReqs[req.ID] = &cp
		return nil
	})
}

func (r *prizeRequestRepo) ListRecent(ctx context.Context, limit int) ([]*entity.PrizeRequest, error) {
	var out []*entity.PrizeRequest
	err := r.store.run(ctx, "prize_requests.list", func(st *state) error {
		for _, p := range st.prizeReqs {
			cp := *p
			out = append(out, &cp)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

func (r *prizeRequestRepo) CountByStatus(ctx context.Context, status entity.RequestStatus) (int64, error) {
	var n int64
	err := r.store.run(ctx, "prize_requests.count", func(st *state) error {
		for _, p := range st.prizeReqs {
			if p.Status == status {
				n++
			}
		}
		return nil
	})
	return n, err
}

type lockRepo struct{ store *Store }

func (r *lockRepo) AcquireLock(ctx context.Context, userID int64, holder string, duration time.Duration) error {
	return r.store.run(ctx, "locks.acquire", func(st *state) error {
		now := r.store.now()
		if l, ok := st.locks[userID]; ok && l.holder != holder && l.expiresAt.After(now) {
			return errs.ErrUserLocked
		}
		st.locks[userID] = lease{holder: holder, expiresAt: now.Add(duration)}
		return nil
	})
}

func (r *lockRepo) ReleaseLock(ctx context.Context, userID int64, holder string) error {
	return r.store.run(ctx, "locks.release", func(st *state) error {
		if l, ok := st.locks[userID]; ok && l.holder == holder {
			delete(st.locks, userID)
		}
		return nil
	})
}

func (r *lockRepo) CleanupExpired(ctx context.Context) (int64, error) {
	var n int64
	err := r.store.run(ctx, "locks.cleanup", func(st *state) error {
		now := r.store.now()
		for id, l := range st.locks {
			if !l.expiresAt.After(now) {
				delete(st.locks, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// LockHolder reports the current lease holder of a user, for tests
func (s *Store) LockHolder(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.locks[userID].holder
}

// String renders a short summary, handy in failing test output
func (s *Store) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return "memory.Store{users=" + strconv.Itoa(len(s.state.users)) +
		" transactions=" + strconv.Itoa(len(s.state.txs)) + "}"
}
