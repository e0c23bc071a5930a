package usecase

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/payout"
	"github.com/x-market/goapi/domain/sale"
	"github.com/x-market/goapi/domain/settlement"
	"github.com/x-market/goapi/service/query"
)

type SettlementUseCaseCfg struct {
	Mongo         query.Mongo
	AttemptRepo   settlement.AttemptRepo
	SaleRegistry  sale.Registry
	SaleUC        sale.UseCase
	AssetRegistry settlement.AssetRegistry
	Registries    settlement.CurrencyRegistrySet
}

type impl struct {
	mongo         query.Mongo
	attemptRepo   settlement.AttemptRepo
	saleRegistry  sale.Registry
	saleUC        sale.UseCase
	assetRegistry settlement.AssetRegistry
	registries    settlement.CurrencyRegistrySet
}

func New(cfg *SettlementUseCaseCfg) settlement.UseCase {
	return &impl{
		mongo:         cfg.Mongo,
		attemptRepo:   cfg.AttemptRepo,
		saleRegistry:  cfg.SaleRegistry,
		saleUC:        cfg.SaleUC,
		assetRegistry: cfg.AssetRegistry,
		registries:    cfg.Registries,
	}
}

// OnDepositReceived drives the purchase entry point. When err is non-nil no
// state changed and the notifying ledger refunds the full deposit; unused is
// only meaningful on success.
func (im *impl) OnDepositReceived(ctx ctx.Ctx, currency, from domain.Address, amount string, encodedMsg string) (string, error) {
	amt, err := domain.ParsePositiveAmount(amount)
	if err != nil {
		return amount, err
	}

	msg := settlement.PurchaseMessage{}
	if err := json.Unmarshal([]byte(encodedMsg), &msg); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"msg": encodedMsg,
		}).Warn("undecodable purchase message")
		return amount, domain.ErrInvalidMessage
	}
	if msg.Collection.IsEmpty() || len(msg.TokenId) == 0 {
		return amount, domain.ErrInvalidMessage
	}

	id := sale.SaleId{Collection: msg.Collection, TokenId: msg.TokenId}

	if msg.Kind == settlement.PurchaseKindBid {
		return im.placeBid(ctx, id, currency, from, amt)
	}

	return im.purchase(ctx, id, currency, from, amt, &msg)
}

// placeBid records a funded bid. The deposit is consumed in full; only a
// displaced bid's funds travel back.
func (im *impl) placeBid(ctx ctx.Ctx, id sale.SaleId, currency, from domain.Address, amt *big.Int) (string, error) {
	evicted, err := im.saleUC.SubmitBid(ctx, id, sale.Bid{
		Currency:  currency,
		Bidder:    from,
		Amount:    amt.String(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return amt.String(), err
	}

	if evicted != nil {
		im.refund(ctx, evicted.Currency, evicted.Bidder, evicted.Amount)
	}
	return "0", nil
}

func (im *impl) purchase(ctx ctx.Ctx, id sale.SaleId, currency, from domain.Address, amt *big.Int, msg *settlement.PurchaseMessage) (string, error) {
	attemptId, err := im.attemptRepo.NextAttemptId(ctx)
	if err != nil {
		return amt.String(), err
	}

	s, err := im.saleRegistry.Lock(ctx, id, attemptId)
	if err != nil {
		return amt.String(), err
	}

	cond, ok := s.ConditionFor(currency)
	if !ok {
		im.unlock(ctx, id, attemptId)
		return amt.String(), domain.ErrConditionNotFound
	}
	price, err := domain.ParsePositiveAmount(cond.Price)
	if err != nil {
		im.unlock(ctx, id, attemptId)
		return amt.String(), err
	}
	if msg.Price != "" {
		pinned, err := domain.ParsePositiveAmount(msg.Price)
		if err != nil {
			im.unlock(ctx, id, attemptId)
			return amt.String(), err
		}
		if pinned.Cmp(price) != 0 {
			// the asking price moved since the buyer looked
			im.unlock(ctx, id, attemptId)
			return amt.String(), domain.ErrPriceMismatch
		}
	}
	if amt.Cmp(price) < 0 {
		im.unlock(ctx, id, attemptId)
		return amt.String(), domain.ErrPriceMismatch
	}
	if from.Equals(s.Owner) {
		im.unlock(ctx, id, attemptId)
		return amt.String(), domain.ErrBadParamInput
	}

	attempt := &settlement.Attempt{
		AttemptId:  attemptId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Buyer:      from,
		Seller:     s.Owner,
		Currency:   currency,
		Price:      price.String(),
		ApprovalId: s.ApprovalId,
		Royalties:  s.Royalties,
		FromBid:    false,
		State:      settlement.StateAwaitingAssetTransfer,
	}
	if err := im.dispatch(ctx, attempt, price); err != nil {
		return amt.String(), err
	}

	return new(big.Int).Sub(amt, price).String(), nil
}

func (im *impl) AcceptBid(ctx ctx.Ctx, caller domain.Address, id sale.SaleId, currency domain.Address) error {
	attemptId, err := im.attemptRepo.NextAttemptId(ctx)
	if err != nil {
		return err
	}

	s, err := im.saleRegistry.Lock(ctx, id, attemptId)
	if err != nil {
		return err
	}
	if !s.Owner.Equals(caller) {
		im.unlock(ctx, id, attemptId)
		return domain.ErrNotOwner
	}

	highest := s.HighestBid(currency)
	if highest == nil {
		im.unlock(ctx, id, attemptId)
		return domain.ErrNoBids
	}
	price, err := domain.ParsePositiveAmount(highest.Amount)
	if err != nil {
		im.unlock(ctx, id, attemptId)
		return err
	}

	attempt := &settlement.Attempt{
		AttemptId:  attemptId,
		Collection: id.Collection,
		TokenId:    id.TokenId,
		Buyer:      highest.Bidder,
		Seller:     s.Owner,
		Currency:   currency,
		Price:      price.String(),
		ApprovalId: s.ApprovalId,
		Royalties:  s.Royalties,
		FromBid:    true,
		State:      settlement.StateAwaitingAssetTransfer,
	}
	return im.dispatch(ctx, attempt, price)
}

// dispatch persists the attempt and hands the transfer to the asset ledger.
// Failures before the ledger accepted the request roll everything back.
func (im *impl) dispatch(ctx ctx.Ctx, attempt *settlement.Attempt, price *big.Int) error {
	id := attempt.SaleId()

	if err := im.attemptRepo.Create(ctx, attempt); err != nil {
		im.unlock(ctx, id, attempt.AttemptId)
		return err
	}

	req := &settlement.TransferRequest{
		AttemptId:     attempt.AttemptId,
		From:          attempt.Seller,
		To:            attempt.Buyer,
		Collection:    attempt.Collection,
		TokenId:       attempt.TokenId,
		ApprovalId:    attempt.ApprovalId,
		Price:         price,
		MaxRecipients: payout.MaxRecipients,
	}
	if err := im.assetRegistry.TransferWithPayout(ctx, req); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"attemptId": attempt.AttemptId,
		}).Error("assetRegistry.TransferWithPayout failed")
		if abortErr := im.abort(ctx, attempt); abortErr != nil {
			ctx.WithFields(log.Fields{
				"err":       abortErr,
				"attemptId": attempt.AttemptId,
			}).Error("failed to abort attempt")
		}
		return err
	}

	return nil
}

// abort moves the attempt to its rolled-back state and releases the sale in
// one transaction; a partial abort would strand the lock with no callback
// left to clear it
func (im *impl) abort(c ctx.Ctx, attempt *settlement.Attempt) error {
	return im.mongo.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
		if err := im.attemptRepo.Resolve(txCtx, attempt.AttemptId, settlement.StateRolledBack); err != nil {
			return err
		}
		return im.saleRegistry.Unlock(txCtx, attempt.SaleId(), attempt.AttemptId)
	})
}

func (im *impl) ResolveTransfer(ctx ctx.Ctx, attemptId int64, result *settlement.TransferResult) error {
	attempt, err := im.attemptRepo.FindOne(ctx, attemptId)
	if err == domain.ErrNotFound {
		return domain.ErrStaleCallback
	} else if err != nil {
		return err
	}

	if !result.Ok {
		return im.rollback(ctx, attempt, result.Reason)
	}
	return im.finalize(ctx, attempt, result)
}

// finalize commits a successful transfer. The terminal transition and the
// sale-side finalization commit in one transaction: a duplicate callback can
// never disburse twice, and a transient failure leaves the attempt awaiting
// so the ledger's retried callback can complete and clear the lock.
func (im *impl) finalize(c ctx.Ctx, attempt *settlement.Attempt, result *settlement.TransferResult) error {
	price, err := domain.ParseAmount(attempt.Price)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"attempt": attempt,
		}).Error("stored price unparsable")
		return err
	}

	p := result.Payout
	if !im.payoutAcceptable(p, price) {
		local, err := payout.Compute(price, attempt.Royalties, attempt.Seller)
		if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"attemptId": attempt.AttemptId,
			}).Error("payout.Compute failed, paying seller in full")
			local = payout.Payout{attempt.Seller: price}
		}
		p = local
	}

	var removed bool
	var refunds []sale.Bid
	err = im.mongo.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
		if err := im.attemptRepo.Resolve(txCtx, attempt.AttemptId, settlement.StateFinalized); err != nil {
			return err
		}
		var err error
		removed, refunds, err = im.saleRegistry.FinalizePurchase(txCtx, attempt.SaleId(), attempt.AttemptId, attempt.Currency)
		return err
	})
	if err == domain.ErrStaleCallback {
		return err
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"attemptId": attempt.AttemptId,
		}).Error("settlement finalization failed")
		return err
	}
	c.WithFields(log.Fields{
		"attemptId": attempt.AttemptId,
		"removed":   removed,
	}).Info("purchase finalized")

	registry, err := im.registries.Get(c, attempt.Currency)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"currency": attempt.Currency,
		}).Error("registries.Get failed")
		return err
	}
	for account, share := range p {
		if share.Sign() <= 0 {
			continue
		}
		if err := registry.Transfer(c, account, share); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"account": account,
				"share":   share,
			}).Error("payout transfer failed")
		}
	}

	im.refundDisplaced(c, attempt, refunds)
	return nil
}

func (im *impl) rollback(ctx ctx.Ctx, attempt *settlement.Attempt, reason string) error {
	if err := im.abort(ctx, attempt); err != nil {
		if err != domain.ErrStaleCallback {
			ctx.WithFields(log.Fields{
				"err":       err,
				"attemptId": attempt.AttemptId,
			}).Error("settlement rollback failed")
		}
		return err
	}
	ctx.WithFields(log.Fields{
		"attemptId": attempt.AttemptId,
		"reason":    reason,
	}).Info("purchase rolled back")

	// a bid-backed attempt leaves the bid (and its funds) in the book; a
	// direct purchase gives the buyer the price back
	if !attempt.FromBid {
		im.refund(ctx, attempt.Currency, attempt.Buyer, attempt.Price)
	}
	return nil
}

// refundDisplaced releases the funds of every bid the finalization evicted,
// except the consumed one when the purchase came through acceptBid.
func (im *impl) refundDisplaced(ctx ctx.Ctx, attempt *settlement.Attempt, refunds []sale.Bid) {
	price, err := domain.ParseAmount(attempt.Price)
	if err != nil {
		price = nil
	}
	consumedSkipped := !attempt.FromBid
	for _, b := range refunds {
		if !consumedSkipped &&
			b.Currency == attempt.Currency &&
			b.Bidder.Equals(attempt.Buyer) &&
			amountEquals(b.Amount, price) {
			consumedSkipped = true
			continue
		}
		im.refund(ctx, b.Currency, b.Bidder, b.Amount)
	}
}

// amountEquals compares a stored amount string against a parsed amount
// numerically, so legacy non-canonical strings still match
func amountEquals(s string, n *big.Int) bool {
	if n == nil {
		return false
	}
	m, err := domain.ParseAmount(s)
	if err != nil {
		return false
	}
	return m.Cmp(n) == 0
}

func (im *impl) payoutAcceptable(p payout.Payout, price *big.Int) bool {
	if len(p) == 0 || len(p) > payout.MaxRecipients {
		return false
	}
	return p.Total().Cmp(price) == 0
}

func (im *impl) unlock(ctx ctx.Ctx, id sale.SaleId, attemptId int64) {
	if err := im.saleRegistry.Unlock(ctx, id, attemptId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"attemptId": attemptId,
		}).Error("saleRegistry.Unlock failed")
	}
}

func (im *impl) refund(ctx ctx.Ctx, currency, to domain.Address, amount string) {
	n, err := domain.ParseAmount(amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"amount": amount,
		}).Error("domain.ParseAmount failed")
		return
	}
	registry, err := im.registries.Get(ctx, currency)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
		}).Error("registries.Get failed")
		return
	}
	if err := registry.Transfer(ctx, to, n); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
			"to":       to,
			"amount":   amount,
		}).Error("refund transfer failed")
	}
}
