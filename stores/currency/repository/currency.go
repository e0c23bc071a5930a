package repository

import (
	bCtx "github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/database/mongoclient"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/service/query"
)

type currencyMongoRepo struct {
	q query.Mongo
}

func NewCurrencyRepo(q query.Mongo) domain.CurrencyRepo {
	return &currencyMongoRepo{
		q: q,
	}
}

func (r *currencyMongoRepo) FindOne(ctx bCtx.Ctx, id domain.Address) (*domain.Currency, error) {
	currency := &domain.Currency{}
	if qry, err := mongoclient.MakeBsonM(&domain.Currency{Id: id}); err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	} else if err := r.q.FindOne(ctx, domain.TableCurrencies, qry, currency); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return currency, nil
}

func (r *currencyMongoRepo) FindAll(ctx bCtx.Ctx) ([]*domain.Currency, error) {
	res := []*domain.Currency{}
	if err := r.q.Search(ctx, domain.TableCurrencies, 0, 0, "createdAt", map[string]interface{}{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *currencyMongoRepo) Upsert(ctx bCtx.Ctx, currency *domain.Currency) error {
	selector, err := mongoclient.MakeBsonM(&domain.Currency{Id: currency.Id})
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableCurrencies, selector, currency); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  currency.Id,
		}).Error("failed to upsert")
		return err
	}
	return nil
}
