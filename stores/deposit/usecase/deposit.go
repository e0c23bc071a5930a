package usecase

import (
	"math/big"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/deposit"
	"github.com/x-market/goapi/domain/settlement"
)

type DepositUseCaseCfg struct {
	CreditRepo deposit.Repo
	Registries settlement.CurrencyRegistrySet
}

type impl struct {
	creditRepo deposit.Repo
	registries settlement.CurrencyRegistrySet
}

func New(cfg *DepositUseCaseCfg) deposit.UseCase {
	return &impl{
		creditRepo: cfg.CreditRepo,
		registries: cfg.Registries,
	}
}

func (im *impl) Deposit(ctx ctx.Ctx, account domain.Address, amount int64) error {
	if amount < deposit.RentPerSale {
		return domain.ErrDepositBelowMinimum
	}
	if _, err := im.creditRepo.Add(ctx, account, amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("creditRepo.Add failed")
		return err
	}
	return nil
}

func (im *impl) Withdraw(ctx ctx.Ctx, account domain.Address) (int64, error) {
	credit, err := im.creditRepo.FindOne(ctx, account)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("creditRepo.FindOne failed")
		return 0, err
	}
	withdrawable := credit.Balance
	if withdrawable <= 0 {
		return 0, nil
	}

	// claim the balance before moving funds so a concurrent withdraw cannot
	// pay out twice
	if err := im.creditRepo.ResetIfBalance(ctx, account, withdrawable); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("creditRepo.ResetIfBalance failed")
		return 0, err
	}

	registry, err := im.registries.Get(ctx, domain.NativeCurrency)
	if err != nil {
		ctx.WithField("err", err).Error("registries.Get failed")
		return 0, err
	}
	if err := registry.Transfer(ctx, account, big.NewInt(withdrawable)); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
			"amount":  withdrawable,
		}).Error("native transfer failed, re-crediting")
		if _, addErr := im.creditRepo.Add(ctx, account, withdrawable); addErr != nil {
			ctx.WithField("err", addErr).Error("creditRepo.Add failed")
		}
		return 0, err
	}
	return withdrawable, nil
}

func (im *impl) BalanceOf(ctx ctx.Ctx, account domain.Address) (int64, error) {
	credit, err := im.creditRepo.FindOne(ctx, account)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("creditRepo.FindOne failed")
		return 0, err
	}
	return credit.Balance, nil
}

func (im *impl) MinimumBalance() int64 {
	return deposit.RentPerSale
}

func (im *impl) Reserve(ctx ctx.Ctx, account domain.Address, units int64) error {
	if err := im.creditRepo.DebitIfCovered(ctx, account, units*deposit.RentPerSale); err != nil {
		if err != domain.ErrInsufficientStorageCredit {
			ctx.WithFields(log.Fields{
				"err":     err,
				"account": account,
				"units":   units,
			}).Error("creditRepo.DebitIfCovered failed")
		}
		return err
	}
	return nil
}

func (im *impl) Release(ctx ctx.Ctx, account domain.Address, units int64) error {
	if _, err := im.creditRepo.Add(ctx, account, units*deposit.RentPerSale); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
			"units":   units,
		}).Error("creditRepo.Add failed")
		return err
	}
	return nil
}
