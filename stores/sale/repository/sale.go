package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/database/mongoclient"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/sale"
	"github.com/x-market/goapi/service/query"
)

type saleRepoImpl struct {
	q query.Mongo
}

func NewSaleRepo(q query.Mongo) sale.Repo {
	return &saleRepoImpl{q}
}

func (im *saleRepoImpl) makeQuery(opts ...sale.FindAllOptionsFunc) (bson.M, error) {
	options, err := sale.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Owner != nil {
		query["owner"] = *options.Owner
	}

	if options.Collection != nil {
		query["collection"] = *options.Collection
	}

	if options.Category != nil {
		query["category"] = *options.Category
	}

	if options.Currency != nil {
		query["conditions.currency"] = *options.Currency
	}

	return query, nil
}

func (im *saleRepoImpl) Create(ctx ctx.Ctx, s *sale.Sale) error {
	if err := im.q.Insert(ctx, domain.TableSales, s); err == query.ErrDuplicateKey {
		return domain.ErrDuplicateListing
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"sale": s,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *saleRepoImpl) FindOne(ctx ctx.Ctx, id sale.SaleId) (*sale.Sale, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := sale.Sale{}
	err = im.q.FindOne(ctx, domain.TableSales, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *saleRepoImpl) FindAll(ctx ctx.Ctx, opts ...sale.FindAllOptionsFunc) ([]*sale.Sale, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, err := sale.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*sale.Sale{}
	// ObjectIds are monotonic, so ascending _id enumerates in stable
	// insertion order even when createdAt collides
	if err := im.q.Search(ctx, domain.TableSales, offset, limit, "_id", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *saleRepoImpl) Count(ctx ctx.Ctx, opts ...sale.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableSales, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *saleRepoImpl) Update(ctx ctx.Ctx, id sale.SaleId, patchable sale.Patchable) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}
	// a locked sale is owned by the in-flight settlement
	selector["settlementLock"] = false

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableSales, selector, updater)
	if err == query.ErrNotFound {
		return im.missingOrLocked(ctx, id)
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *saleRepoImpl) UpdateLocked(ctx ctx.Ctx, id sale.SaleId, attemptId int64, patchable sale.Patchable) error {
	selector := bson.M{
		"collection":     id.Collection,
		"tokenId":        id.TokenId,
		"settlementLock": true,
		"lockedAttempt":  attemptId,
	}

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableSales, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrStaleCallback
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"attemptId": attemptId,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *saleRepoImpl) Remove(ctx ctx.Ctx, id sale.SaleId) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}
	selector["settlementLock"] = false

	err = im.q.Remove(ctx, domain.TableSales, selector)
	if err == query.ErrNotFound {
		return im.missingOrLocked(ctx, id)
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}

func (im *saleRepoImpl) Lock(ctx ctx.Ctx, id sale.SaleId, attemptId int64) error {
	selector := bson.M{
		"collection":     id.Collection,
		"tokenId":        id.TokenId,
		"settlementLock": false,
	}
	updater := bson.M{
		"$set": bson.M{
			"settlementLock": true,
			"lockedAttempt":  attemptId,
		},
	}

	err := im.q.CustomPatch(ctx, domain.TableSales, selector, updater, false)
	if err == query.ErrNotFound {
		return im.missingOrLocked(ctx, id)
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"attemptId": attemptId,
		}).Error("failed to q.CustomPatch")
		return err
	}

	return nil
}

func (im *saleRepoImpl) Unlock(ctx ctx.Ctx, id sale.SaleId, attemptId int64) error {
	selector := bson.M{
		"collection":     id.Collection,
		"tokenId":        id.TokenId,
		"settlementLock": true,
		"lockedAttempt":  attemptId,
	}
	updater := bson.M{
		"$set": bson.M{
			"settlementLock": false,
			"lockedAttempt":  int64(0),
		},
	}

	err := im.q.CustomPatch(ctx, domain.TableSales, selector, updater, false)
	if err == query.ErrNotFound {
		return domain.ErrStaleCallback
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"attemptId": attemptId,
		}).Error("failed to q.CustomPatch")
		return err
	}

	return nil
}

func (im *saleRepoImpl) RemoveLocked(ctx ctx.Ctx, id sale.SaleId, attemptId int64) error {
	selector := bson.M{
		"collection":     id.Collection,
		"tokenId":        id.TokenId,
		"settlementLock": true,
		"lockedAttempt":  attemptId,
	}

	err := im.q.Remove(ctx, domain.TableSales, selector)
	if err == query.ErrNotFound {
		return domain.ErrStaleCallback
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"attemptId": attemptId,
		}).Error("failed to q.Remove")
		return err
	}

	return nil
}

// missingOrLocked disambiguates a conditional-write miss: the sale is either
// gone or held by an in-flight settlement
func (im *saleRepoImpl) missingOrLocked(ctx ctx.Ctx, id sale.SaleId) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		return domain.ErrListingNotFound
	}
	cnt, err := im.q.Count(ctx, domain.TableSales, selector)
	if err != nil || cnt == 0 {
		return domain.ErrListingNotFound
	}
	return domain.ErrListingLocked
}
