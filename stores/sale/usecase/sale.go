package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/deposit"
	"github.com/x-market/goapi/domain/payout"
	"github.com/x-market/goapi/domain/sale"
	"github.com/x-market/goapi/domain/settlement"
)

type SaleUseCaseCfg struct {
	SaleRepo     sale.Repo
	CurrencyRepo domain.CurrencyRepo
	DepositUC    deposit.UseCase
	Registries   settlement.CurrencyRegistrySet
	Admins       []domain.Address
	// BidHistoryLength bounds the retained bids per currency; zero falls back
	// to sale.DefaultBidHistoryLength
	BidHistoryLength int
}

type impl struct {
	saleRepo         sale.Repo
	currencyRepo     domain.CurrencyRepo
	depositUC        deposit.UseCase
	registries       settlement.CurrencyRegistrySet
	admins           []domain.Address
	bidHistoryLength int
}

// New builds the marketplace listing surface. The returned value also
// implements sale.Registry for the settlement coordinator.
func New(cfg *SaleUseCaseCfg) sale.UseCase {
	return &impl{
		saleRepo:         cfg.SaleRepo,
		currencyRepo:     cfg.CurrencyRepo,
		depositUC:        cfg.DepositUC,
		registries:       cfg.Registries,
		admins:           cfg.Admins,
		bidHistoryLength: cfg.BidHistoryLength,
	}
}

func (im *impl) CreateSale(ctx ctx.Ctx, s *sale.Sale) error {
	if s.Owner.IsEmpty() || len(s.Conditions) == 0 {
		return domain.ErrBadParamInput
	}

	for i := range s.Conditions {
		cond := &s.Conditions[i]
		if err := im.ensureSupported(ctx, cond.Currency); err != nil {
			return err
		}
		price, err := domain.ParsePositiveAmount(cond.Price)
		if err != nil {
			return err
		}
		// amounts are stored canonically so later comparisons can rely on
		// string equality
		cond.Price = price.String()
	}

	if err := im.validateRoyalties(s); err != nil {
		return err
	}

	s.Bids = nil
	s.SettlementLock = false
	s.LockedAttempt = 0
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	if err := im.depositUC.Reserve(ctx, s.Owner, 1); err != nil {
		return err
	}

	if err := im.saleRepo.Create(ctx, s); err != nil {
		if releaseErr := im.depositUC.Release(ctx, s.Owner, 1); releaseErr != nil {
			ctx.WithFields(log.Fields{
				"err":  releaseErr,
				"sale": s,
			}).Error("depositUC.Release failed")
		}
		return err
	}

	return nil
}

func (im *impl) UpdateConditions(ctx ctx.Ctx, caller domain.Address, id sale.SaleId, conditions []sale.Condition) error {
	if len(conditions) == 0 {
		return domain.ErrBadParamInput
	}

	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !s.Owner.Equals(caller) {
		return domain.ErrNotOwner
	}

	for _, cond := range conditions {
		if err := im.ensureSupported(ctx, cond.Currency); err != nil {
			return err
		}
		price, err := domain.ParsePositiveAmount(cond.Price)
		if err != nil {
			return err
		}
		s.SetCondition(cond.Currency, price.String())
	}

	return im.saleRepo.Update(ctx, id, sale.Patchable{Conditions: &s.Conditions})
}

func (im *impl) RemoveCondition(ctx ctx.Ctx, caller domain.Address, id sale.SaleId, currency domain.Address) error {
	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !s.Owner.Equals(caller) {
		return domain.ErrNotOwner
	}
	if !s.DropCondition(currency) {
		return domain.ErrConditionNotFound
	}

	// bids on the dropped currency lose their target and get their funds
	// back
	refunds := s.TakeBids(currency)

	if err := im.saleRepo.Update(ctx, id, sale.Patchable{Conditions: &s.Conditions, Bids: &s.Bids}); err != nil {
		return err
	}

	im.refundBids(ctx, refunds)
	return nil
}

func (im *impl) RemoveSale(ctx ctx.Ctx, caller domain.Address, id sale.SaleId) error {
	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !s.Owner.Equals(caller) {
		return domain.ErrNotOwner
	}

	if err := im.saleRepo.Remove(ctx, id); err != nil {
		return err
	}

	if err := im.depositUC.Release(ctx, s.Owner, 1); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("depositUC.Release failed")
	}

	im.refundBids(ctx, s.Bids)
	return nil
}

func (im *impl) GetSale(ctx ctx.Ctx, id sale.SaleId) (*sale.SaleWithDisplayPrice, error) {
	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &sale.SaleWithDisplayPrice{Sale: s}
	res.DisplayPrices = map[domain.Address]string{}
	for _, cond := range s.Conditions {
		currency, err := im.currencyRepo.FindOne(ctx, cond.Currency)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"currency": cond.Currency,
			}).Error("currencyRepo.FindOne failed")
			return nil, err
		}
		if currency == nil {
			continue
		}
		price, err := domain.ParseAmount(cond.Price)
		if err != nil {
			continue
		}
		res.DisplayPrices[cond.Currency] = decimal.NewFromBigInt(price, -currency.Decimals).String()
	}

	return res, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...sale.FindAllOptionsFunc) ([]*sale.Sale, error) {
	res, err := im.saleRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("saleRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) SubmitBid(ctx ctx.Ctx, id sale.SaleId, bid sale.Bid) (*sale.Bid, error) {
	if err := im.ensureSupported(ctx, bid.Currency); err != nil {
		return nil, err
	}

	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := s.ConditionFor(bid.Currency); !ok {
		return nil, domain.ErrConditionNotFound
	}

	if bid.CreatedAt.IsZero() {
		bid.CreatedAt = time.Now()
	}

	evicted, err := s.PlaceBid(bid, im.bidHistoryLength)
	if err != nil {
		return nil, err
	}

	if err := im.saleRepo.Update(ctx, id, sale.Patchable{Bids: &s.Bids}); err != nil {
		return nil, err
	}

	return evicted, nil
}

func (im *impl) PeekHighestBid(ctx ctx.Ctx, id sale.SaleId, currency domain.Address) (*sale.Bid, error) {
	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	highest := s.HighestBid(currency)
	if highest == nil {
		return nil, domain.ErrNoBids
	}
	return highest, nil
}

func (im *impl) SupportedCurrencies(ctx ctx.Ctx) ([]*domain.Currency, error) {
	res, err := im.currencyRepo.FindAll(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("currencyRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) AddSupportedCurrencies(ctx ctx.Ctx, caller domain.Address, currencies []domain.Currency) ([]bool, error) {
	if !im.isAdmin(caller) {
		return nil, domain.ErrNotAdmin
	}

	added := make([]bool, 0, len(currencies))
	for i := range currencies {
		currency := currencies[i]
		existing, err := im.currencyRepo.FindOne(ctx, currency.Id)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"currency": currency.Id,
			}).Error("currencyRepo.FindOne failed")
			return nil, err
		}
		if currency.CreatedAt.IsZero() {
			currency.CreatedAt = time.Now()
		}
		if err := im.currencyRepo.Upsert(ctx, &currency); err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"currency": currency.Id,
			}).Error("currencyRepo.Upsert failed")
			return nil, err
		}
		added = append(added, existing == nil)
	}

	return added, nil
}

// Lock implements sale.Registry
func (im *impl) Lock(ctx ctx.Ctx, id sale.SaleId, attemptId int64) (*sale.Sale, error) {
	if err := im.saleRepo.Lock(ctx, id, attemptId); err != nil {
		return nil, err
	}
	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		// give the lock back rather than strand the sale
		if unlockErr := im.saleRepo.Unlock(ctx, id, attemptId); unlockErr != nil {
			ctx.WithFields(log.Fields{
				"err":       unlockErr,
				"id":        id,
				"attemptId": attemptId,
			}).Error("saleRepo.Unlock failed")
		}
		return nil, err
	}
	return s, nil
}

// Unlock implements sale.Registry
func (im *impl) Unlock(ctx ctx.Ctx, id sale.SaleId, attemptId int64) error {
	return im.saleRepo.Unlock(ctx, id, attemptId)
}

// FinalizePurchase implements sale.Registry
func (im *impl) FinalizePurchase(ctx ctx.Ctx, id sale.SaleId, attemptId int64, currency domain.Address) (bool, []sale.Bid, error) {
	s, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return false, nil, err
	}

	if !s.DropCondition(currency) {
		// the lock held since dispatch, so the settled condition must exist
		return false, nil, xerrors.Errorf("condition %s missing on locked sale %v", currency, id)
	}
	refunds := s.TakeBids(currency)

	if len(s.Conditions) == 0 {
		if err := im.saleRepo.RemoveLocked(ctx, id, attemptId); err != nil {
			return false, nil, err
		}
		if err := im.depositUC.Release(ctx, s.Owner, 1); err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("depositUC.Release failed")
		}
		// bids on the remaining currencies lost their backing sale
		refunds = append(refunds, s.Bids...)
		return true, refunds, nil
	}

	if err := im.saleRepo.UpdateLocked(ctx, id, attemptId, sale.Patchable{Conditions: &s.Conditions, Bids: &s.Bids}); err != nil {
		return false, nil, err
	}
	if err := im.saleRepo.Unlock(ctx, id, attemptId); err != nil {
		return false, nil, err
	}
	return false, refunds, nil
}

func (im *impl) ensureSupported(ctx ctx.Ctx, currency domain.Address) error {
	res, err := im.currencyRepo.FindOne(ctx, currency)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
		}).Error("currencyRepo.FindOne failed")
		return err
	}
	if res == nil {
		return domain.ErrUnsupportedCurrency
	}
	return nil
}

func (im *impl) validateRoyalties(s *sale.Sale) error {
	if len(s.Royalties) > payout.MaxRoyaltyRecipients {
		return domain.ErrTooManyRecipients
	}
	totalBps := int64(0)
	for _, r := range s.Royalties {
		totalBps += r.Bps
	}
	if totalBps > payout.MaxRoyaltyBps {
		return domain.ErrRoyaltyCapExceeded
	}
	return nil
}

func (im *impl) isAdmin(caller domain.Address) bool {
	for _, admin := range im.admins {
		if admin.Equals(caller) {
			return true
		}
	}
	return false
}

// refundBids sends displaced bid funds back through the currency ledgers.
// Transfer failures are logged; the ledgers retry disbursements on their
// side.
func (im *impl) refundBids(ctx ctx.Ctx, bids []sale.Bid) {
	for _, b := range bids {
		amount, err := domain.ParseAmount(b.Amount)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"bid": b,
			}).Error("domain.ParseAmount failed")
			continue
		}
		registry, err := im.registries.Get(ctx, b.Currency)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"currency": b.Currency,
			}).Error("registries.Get failed")
			continue
		}
		if err := registry.Transfer(ctx, b.Bidder, amount); err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"bid": b,
			}).Error("bid refund transfer failed")
		}
	}
}
