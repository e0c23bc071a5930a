package domain

import (
	"time"

	"github.com/x-market/goapi/base/ctx"
)

// NativeCurrency is the host platform currency, supported from init.
const NativeCurrency = Address("native")

// Currency is an accepted payment currency. Endpoint is the base url of the
// currency ledger this engine disburses through.
type Currency struct {
	Id        Address   `bson:"id"`
	Symbol    string    `bson:"symbol"`
	Decimals  int32     `bson:"decimals"`
	Endpoint  string    `bson:"endpoint"`
	CreatedAt time.Time `bson:"createdAt"`
}

type CurrencyRepo interface {
	FindOne(ctx.Ctx, Address) (*Currency, error)
	FindAll(ctx.Ctx) ([]*Currency, error)
	Upsert(ctx.Ctx, *Currency) error
}
