package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/settlement"
	"github.com/x-market/goapi/service/query"
)

// attemptCounter is the persisted high-water mark behind NextAttemptId
type attemptCounter struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

const counterName = "attemptId"

type attemptRepoImpl struct {
	q query.Mongo
}

func NewAttemptRepo(q query.Mongo) settlement.AttemptRepo {
	return &attemptRepoImpl{q}
}

func (im *attemptRepoImpl) NextAttemptId(ctx ctx.Ctx) (int64, error) {
	counter := attemptCounter{}
	err := im.q.Increment(ctx, domain.TableSettlementCounter, bson.M{"name": counterName}, &counter, "seq", int64(1))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Increment")
		return 0, err
	}
	return counter.Seq, nil
}

func (im *attemptRepoImpl) Create(ctx ctx.Ctx, attempt *settlement.Attempt) error {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	if err := im.q.Insert(ctx, domain.TableSettlements, attempt); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"attempt": attempt,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *attemptRepoImpl) FindOne(ctx ctx.Ctx, attemptId int64) (*settlement.Attempt, error) {
	res := settlement.Attempt{}
	err := im.q.FindOne(ctx, domain.TableSettlements, bson.M{"attemptId": attemptId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"attemptId": attemptId,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *attemptRepoImpl) Resolve(ctx ctx.Ctx, attemptId int64, state settlement.State) error {
	selector := bson.M{
		"attemptId": attemptId,
		"state":     settlement.StateAwaitingAssetTransfer,
	}
	updater := bson.M{
		"$set": bson.M{
			"state":      state,
			"resolvedAt": time.Now(),
		},
	}

	err := im.q.CustomPatch(ctx, domain.TableSettlements, selector, updater, false)
	if err == query.ErrNotFound {
		// unknown attempt or already resolved: either way the callback is
		// stale
		return domain.ErrStaleCallback
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"attemptId": attemptId,
			"state":     state,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
