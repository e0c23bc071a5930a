package deposit

import (
	"time"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/domain"
)

// RentPerSale is the protocol constant each active listing locks from its
// owner's storage credit, in platform storage units.
const RentPerSale = int64(10000)

// StorageCredit is the prepaid balance covering the storage cost of active
// listings. Balance is the free portion; rent held by active listings has
// already been moved out through Reserve.
type StorageCredit struct {
	Account   domain.Address `bson:"account"`
	Balance   int64          `bson:"balance"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, account domain.Address) (*StorageCredit, error)
	// Add credits (or debits, with a negative delta) the balance and returns
	// the document after the change
	Add(ctx ctx.Ctx, account domain.Address, delta int64) (*StorageCredit, error)
	// DebitIfCovered atomically subtracts amount when the balance covers it;
	// ErrInsufficientStorageCredit otherwise
	DebitIfCovered(ctx ctx.Ctx, account domain.Address, amount int64) error
	// ResetIfBalance zeroes the balance when it still equals expected;
	// query.ErrNotFound when the balance moved concurrently
	ResetIfBalance(ctx ctx.Ctx, account domain.Address, expected int64) error
}

// UseCase is the storage-rent ledger. Reserve and Release are only called by
// listing operations; settlement outcome never touches rent accounting.
type UseCase interface {
	// Deposit credits the target account; deposits below one rent unit are
	// rejected
	Deposit(ctx ctx.Ctx, account domain.Address, amount int64) error
	// Withdraw transfers the free balance back to the account; no-op when
	// nothing is withdrawable. Returns the withdrawn amount.
	Withdraw(ctx ctx.Ctx, account domain.Address) (int64, error)
	BalanceOf(ctx ctx.Ctx, account domain.Address) (int64, error)
	MinimumBalance() int64

	// Reserve locks rent for `units` additional listings
	Reserve(ctx ctx.Ctx, account domain.Address, units int64) error
	// Release gives the rent of `units` listings back
	Release(ctx ctx.Ctx, account domain.Address, units int64) error
}
