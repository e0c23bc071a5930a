package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/deposit"
	"github.com/x-market/goapi/service/query"
)

type storageCreditMongoRepo struct {
	q query.Mongo
}

func NewStorageCreditRepo(q query.Mongo) deposit.Repo {
	return &storageCreditMongoRepo{
		q: q,
	}
}

func (r *storageCreditMongoRepo) FindOne(ctx bCtx.Ctx, account domain.Address) (*deposit.StorageCredit, error) {
	credit := &deposit.StorageCredit{}
	selector := bson.M{"account": account}
	if err := r.q.FindOne(ctx, domain.TableStorageCredits, selector, credit); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return &deposit.StorageCredit{Account: account}, nil
	}
	return credit, nil
}

func (r *storageCreditMongoRepo) Add(ctx bCtx.Ctx, account domain.Address, delta int64) (*deposit.StorageCredit, error) {
	credit := &deposit.StorageCredit{}
	selector := bson.M{"account": account}
	if err := r.q.Increment(ctx, domain.TableStorageCredits, selector, credit, "balance", delta); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
			"delta":   delta,
		}).Error("q.Increment failed")
		return nil, err
	}
	return credit, nil
}

func (r *storageCreditMongoRepo) DebitIfCovered(ctx bCtx.Ctx, account domain.Address, amount int64) error {
	selector := bson.M{"account": account, "balance": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"balance": -amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	if err := r.q.CustomPatch(ctx, domain.TableStorageCredits, selector, update, false); err == query.ErrNotFound {
		return domain.ErrInsufficientStorageCredit
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
			"amount":  amount,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *storageCreditMongoRepo) ResetIfBalance(ctx bCtx.Ctx, account domain.Address, expected int64) error {
	selector := bson.M{"account": account, "balance": expected}
	update := bson.M{
		"$set": bson.M{"balance": int64(0), "updatedAt": time.Now()},
	}
	if err := r.q.CustomPatch(ctx, domain.TableStorageCredits, selector, update, false); err == query.ErrNotFound {
		// the balance moved between read and claim
		return domain.ErrWithdrawConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
