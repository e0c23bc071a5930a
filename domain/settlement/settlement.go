package settlement

import (
	"math/big"
	"time"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/payout"
	"github.com/x-market/goapi/domain/sale"
)

// State of one purchase attempt. A locked attempt moves to exactly one of
// Finalized or RolledBack when the asset-ledger callback arrives.
type State string

const (
	StateAwaitingAssetTransfer State = "awaiting_asset_transfer"
	StateFinalized             State = "finalized"
	StateRolledBack            State = "rolled_back"
)

// Attempt is the persisted continuation of an in-flight purchase: everything
// needed to resume when the asset ledger calls back.
type Attempt struct {
	AttemptId  int64          `bson:"attemptId"`
	Collection domain.Address `bson:"collection"`
	TokenId    domain.TokenId `bson:"tokenId"`
	Buyer      domain.Address `bson:"buyer"`
	Seller     domain.Address `bson:"seller"`
	Currency   domain.Address `bson:"currency"`
	Price      string         `bson:"price"`
	ApprovalId uint64         `bson:"approvalId"`
	// Royalties is snapshotted from the Sale at lock time so the payout can
	// still be computed after finalization removes the Sale
	Royalties []payout.Royalty `bson:"royalties,omitempty"`
	// FromBid marks attempts entered through acceptBid rather than a direct
	// deposit purchase
	FromBid    bool      `bson:"fromBid"`
	State      State     `bson:"state"`
	CreatedAt  time.Time `bson:"createdAt"`
	ResolvedAt time.Time `bson:"resolvedAt,omitempty"`
}

func (a *Attempt) SaleId() sale.SaleId {
	return sale.SaleId{Collection: a.Collection, TokenId: a.TokenId}
}

type AttemptRepo interface {
	// NextAttemptId returns a monotonically increasing attempt id
	NextAttemptId(ctx ctx.Ctx) (int64, error)
	Create(ctx ctx.Ctx, attempt *Attempt) error
	FindOne(ctx ctx.Ctx, attemptId int64) (*Attempt, error)
	// Resolve moves an awaiting attempt to a terminal state;
	// ErrStaleCallback when the attempt is unknown or already resolved
	Resolve(ctx ctx.Ctx, attemptId int64, state State) error
}

// TransferResult is the asset ledger's answer to a transfer-with-payout
// request. Payout is optional; when absent the engine computes one locally.
type TransferResult struct {
	Ok     bool
	Payout payout.Payout
	Reason string
}

// TransferRequest asks the asset ledger to move custody and report the
// payout split. The call is asynchronous: the ledger answers through the
// coordinator's ResolveTransfer hook, tagged with the attempt id.
type TransferRequest struct {
	AttemptId     int64
	From          domain.Address
	To            domain.Address
	Collection    domain.Address
	TokenId       domain.TokenId
	ApprovalId    uint64
	Price         *big.Int
	MaxRecipients int
}

// AssetRegistry is the external asset-ownership ledger
type AssetRegistry interface {
	TransferWithPayout(ctx ctx.Ctx, req *TransferRequest) error
}

// CurrencyRegistry is one external currency ledger
type CurrencyRegistry interface {
	Transfer(ctx ctx.Ctx, to domain.Address, amount *big.Int) error
}

// CurrencyRegistrySet resolves the ledger of a supported currency
type CurrencyRegistrySet interface {
	Get(ctx ctx.Ctx, currency domain.Address) (CurrencyRegistry, error)
}

// PurchaseMessage is the listing reference attached to a currency deposit.
// Kind selects between an immediate purchase and a funded bid.
type PurchaseMessage struct {
	Collection domain.Address `json:"collection"`
	TokenId    domain.TokenId `json:"tokenId"`
	// Price optionally pins the expected asking price
	Price string `json:"price,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

const (
	PurchaseKindBuy = "buy"
	PurchaseKindBid = "bid"
)

// UseCase is the settlement coordinator
type UseCase interface {
	// OnDepositReceived is the purchase entry point, driven by a deposit
	// notification from a currency ledger. It returns the unused part of the
	// deposit, which the notifying ledger refunds to the sender.
	OnDepositReceived(ctx ctx.Ctx, currency, from domain.Address, amount string, encodedMsg string) (unused string, err error)

	// AcceptBid lets the Sale owner consume the highest retained bid of a
	// currency and settle against it
	AcceptBid(ctx ctx.Ctx, caller domain.Address, id sale.SaleId, currency domain.Address) error

	// ResolveTransfer finishes an attempt when the asset ledger reports the
	// outcome; stale or duplicate callbacks are rejected with
	// ErrStaleCallback and have no effect
	ResolveTransfer(ctx ctx.Ctx, attemptId int64, result *TransferResult) error
}
