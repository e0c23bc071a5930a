package sale

import (
	"math/big"
	"time"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/ptr"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/payout"
)

// DefaultBidHistoryLength bounds the per-currency bid history unless
// configured otherwise.
const DefaultBidHistoryLength = 1

// SaleId is the composite key of a listing. Identifiers may contain arbitrary
// characters, so the key is structured rather than delimiter-joined.
type SaleId struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// Condition is an accepted currency with its asking price.
type Condition struct {
	Currency domain.Address `json:"currency" bson:"currency"`
	Price    string         `json:"price" bson:"price"`
}

// Bid is a retained purchase proposal. Bids persist until outbid, consumed by
// acceptBid, or the Sale is removed.
type Bid struct {
	Currency  domain.Address `json:"currency" bson:"currency"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
	Amount    string         `json:"amount" bson:"amount"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Sale is one listing of an asset against one or more currency conditions.
// Owner never mutates in place; a sold asset has to be re-listed by the new
// owner.
type Sale struct {
	SaleId     `bson:",inline"`
	Owner      domain.Address   `json:"owner" bson:"owner"`
	ApprovalId uint64           `json:"approvalId" bson:"approvalId"`
	Conditions []Condition      `json:"conditions" bson:"conditions"`
	Bids       []Bid            `json:"bids" bson:"bids"`
	Royalties  []payout.Royalty `json:"royalties,omitempty" bson:"royalties,omitempty"`
	Category   string           `json:"category,omitempty" bson:"category,omitempty"`

	// SettlementLock is set while a purchase on this Sale is in flight; at
	// most one settlement per Sale at any time.
	SettlementLock bool      `json:"settlementLock" bson:"settlementLock"`
	LockedAttempt  int64     `json:"lockedAttempt" bson:"lockedAttempt"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

func (s *Sale) ToId() SaleId {
	return s.SaleId
}

// ConditionFor returns the asking condition for a currency
func (s *Sale) ConditionFor(currency domain.Address) (*Condition, bool) {
	for i := range s.Conditions {
		if s.Conditions[i].Currency == currency {
			return &s.Conditions[i], true
		}
	}
	return nil, false
}

// SetCondition adds or updates the asking price of a currency
func (s *Sale) SetCondition(currency domain.Address, price string) {
	for i := range s.Conditions {
		if s.Conditions[i].Currency == currency {
			s.Conditions[i].Price = price
			return
		}
	}
	s.Conditions = append(s.Conditions, Condition{Currency: currency, Price: price})
}

// DropCondition removes a currency's condition. Removing the last condition
// keeps the Sale listed; the owner has to delist explicitly.
func (s *Sale) DropCondition(currency domain.Address) bool {
	for i := range s.Conditions {
		if s.Conditions[i].Currency == currency {
			s.Conditions = append(s.Conditions[:i], s.Conditions[i+1:]...)
			return true
		}
	}
	return false
}

// BidsFor returns the retained bid history of a currency in stored order
// (ascending amounts).
func (s *Sale) BidsFor(currency domain.Address) []Bid {
	var res []Bid
	for _, b := range s.Bids {
		if b.Currency == currency {
			res = append(res, b)
		}
	}
	return res
}

// HighestBid returns the top retained bid of a currency, or nil
func (s *Sale) HighestBid(currency domain.Address) *Bid {
	var best *Bid
	var bestAmount *big.Int
	for i := range s.Bids {
		if s.Bids[i].Currency != currency {
			continue
		}
		amount, err := domain.ParseAmount(s.Bids[i].Amount)
		if err != nil {
			continue
		}
		if bestAmount == nil || amount.Cmp(bestAmount) > 0 {
			best = &s.Bids[i]
			bestAmount = amount
		}
	}
	return best
}

// PlaceBid appends a bid to a currency's history. The amount must strictly
// exceed the current highest bid; an empty history accepts any positive
// amount. When the history would exceed historyLength, the lowest-amount
// entry is evicted and returned so the caller can release its funds.
func (s *Sale) PlaceBid(bid Bid, historyLength int) (*Bid, error) {
	amount, err := domain.ParsePositiveAmount(bid.Amount)
	if err != nil {
		return nil, err
	}
	// retained amounts are canonical decimal strings; settlement compares
	// them against attempt prices
	bid.Amount = amount.String()

	if highest := s.HighestBid(bid.Currency); highest != nil {
		highestAmount, err := domain.ParseAmount(highest.Amount)
		if err != nil {
			return nil, err
		}
		if amount.Cmp(highestAmount) <= 0 {
			return nil, domain.ErrBidTooLow
		}
	}

	s.Bids = append(s.Bids, bid)

	if historyLength < 1 {
		historyLength = DefaultBidHistoryLength
	}
	history := s.BidsFor(bid.Currency)
	if len(history) <= historyLength {
		return nil, nil
	}

	// evict the lowest-amount entry so the history keeps the top
	// `historyLength` amounts seen
	lowestIdx := -1
	var lowestAmount *big.Int
	for i := range s.Bids {
		if s.Bids[i].Currency != bid.Currency {
			continue
		}
		a, err := domain.ParseAmount(s.Bids[i].Amount)
		if err != nil {
			continue
		}
		if lowestAmount == nil || a.Cmp(lowestAmount) < 0 {
			lowestIdx = i
			lowestAmount = a
		}
	}
	if lowestIdx < 0 {
		return nil, nil
	}
	evicted := s.Bids[lowestIdx]
	s.Bids = append(s.Bids[:lowestIdx], s.Bids[lowestIdx+1:]...)
	return &evicted, nil
}

// TakeBids removes and returns every retained bid of a currency
func (s *Sale) TakeBids(currency domain.Address) []Bid {
	var taken []Bid
	var kept []Bid
	for _, b := range s.Bids {
		if b.Currency == currency {
			taken = append(taken, b)
		} else {
			kept = append(kept, b)
		}
	}
	s.Bids = kept
	return taken
}

// Patchable carries the mutable Sale fields for partial updates
type Patchable struct {
	Conditions *[]Condition `bson:"conditions,omitempty"`
	Bids       *[]Bid       `bson:"bids,omitempty"`
}

type FindAllOptions struct {
	Owner      *domain.Address
	Collection *domain.Address
	Category   *string
	Currency   *domain.Address
	Offset     *int32
	Limit      *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

func WithCollection(collection domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Collection = &collection
		return nil
	}
}

func WithCategory(category string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
		return nil
	}
}

func WithCurrency(currency domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Currency = &currency
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = ptr.Int32(offset)
		options.Limit = ptr.Int32(limit)
		return nil
	}
}

// Repo is the Sale storage layer. The Sale table is the single source of
// truth; secondary lookups (owner, collection, category, currency support)
// are served by indexed fields.
type Repo interface {
	Create(ctx ctx.Ctx, sale *Sale) error
	FindOne(ctx ctx.Ctx, id SaleId) (*Sale, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Sale, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	// Update patches conditions/bids; rejected with ErrListingLocked while a
	// settlement is in flight
	Update(ctx ctx.Ctx, id SaleId, patchable Patchable) error
	// UpdateLocked patches a Sale held by the given attempt; used by
	// settlement finalization before releasing the lock
	UpdateLocked(ctx ctx.Ctx, id SaleId, attemptId int64, patchable Patchable) error
	Remove(ctx ctx.Ctx, id SaleId) error

	// Lock atomically sets the settlement lock for the given attempt;
	// ErrListingLocked if another attempt holds it
	Lock(ctx ctx.Ctx, id SaleId, attemptId int64) error
	// Unlock clears the settlement lock held by the given attempt
	Unlock(ctx ctx.Ctx, id SaleId, attemptId int64) error
	// RemoveLocked removes a Sale while it is still locked by the given
	// attempt; used when a purchase consumes the last condition
	RemoveLocked(ctx ctx.Ctx, id SaleId, attemptId int64) error
}

// SaleWithDisplayPrice augments a Sale view with human-readable prices
type SaleWithDisplayPrice struct {
	*Sale
	DisplayPrices map[domain.Address]string `json:"displayPrices,omitempty"`
}

// UseCase is the caller-facing marketplace surface
type UseCase interface {
	CreateSale(ctx ctx.Ctx, sale *Sale) error
	UpdateConditions(ctx ctx.Ctx, caller domain.Address, id SaleId, conditions []Condition) error
	RemoveCondition(ctx ctx.Ctx, caller domain.Address, id SaleId, currency domain.Address) error
	RemoveSale(ctx ctx.Ctx, caller domain.Address, id SaleId) error

	GetSale(ctx ctx.Ctx, id SaleId) (*SaleWithDisplayPrice, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Sale, error)

	// SubmitBid records a funded bid; the returned bid, if any, was displaced
	// by capacity eviction and its funds have to be released by the caller
	SubmitBid(ctx ctx.Ctx, id SaleId, bid Bid) (*Bid, error)
	PeekHighestBid(ctx ctx.Ctx, id SaleId, currency domain.Address) (*Bid, error)

	SupportedCurrencies(ctx ctx.Ctx) ([]*domain.Currency, error)
	AddSupportedCurrencies(ctx ctx.Ctx, caller domain.Address, currencies []domain.Currency) ([]bool, error)
}

// Registry is the settlement-facing listing surface. The settlement
// coordinator borrows a Sale through Lock and has to give it back through
// exactly one of Unlock or FinalizePurchase.
type Registry interface {
	// Lock acquires the per-Sale settlement lock and returns the locked Sale
	Lock(ctx ctx.Ctx, id SaleId, attemptId int64) (*Sale, error)
	// Unlock releases the lock leaving the Sale unchanged
	Unlock(ctx ctx.Ctx, id SaleId, attemptId int64) error
	// FinalizePurchase removes the consumed condition and the currency's bid
	// history, releases the lock, and removes the Sale (releasing its rent)
	// when no conditions remain. Returned bids lost their backing sale or
	// lost the purchase race; their funds have to be refunded by the caller.
	FinalizePurchase(ctx ctx.Ctx, id SaleId, attemptId int64, currency domain.Address) (removed bool, refunds []Bid, err error)
}
