package currencyregistry

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"time"

	bCtx "github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/settlement"
)

type transferPayload struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type set struct {
	client         http.Client
	timeout        time.Duration
	currencyRepo   domain.CurrencyRepo
	nativeEndpoint string
}

func NewSet(cfg *SetCfg) Set {
	return &set{
		client:         cfg.HttpClient,
		timeout:        cfg.Timeout,
		currencyRepo:   cfg.CurrencyRepo,
		nativeEndpoint: cfg.NativeEndpoint,
	}
}

func (s *set) Get(ctx bCtx.Ctx, currency domain.Address) (settlement.CurrencyRegistry, error) {
	if currency == domain.NativeCurrency {
		return &registry{set: s, endpoint: s.nativeEndpoint}, nil
	}

	res, err := s.currencyRepo.FindOne(ctx, currency)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"currency": currency,
		}).Error("currencyRepo.FindOne failed")
		return nil, err
	}
	if res == nil || res.Endpoint == "" {
		return nil, domain.ErrUnsupportedCurrency
	}
	return &registry{set: s, endpoint: res.Endpoint}, nil
}

// registry is the ledger client of one currency
type registry struct {
	set      *set
	endpoint string
}

func (r *registry) Transfer(ctx bCtx.Ctx, to domain.Address, amount *big.Int) error {
	payload := transferPayload{
		To:     to.String(),
		Amount: amount.String(),
	}
	return r.set.post(ctx, r.endpoint+"/transfers", payload)
}

func (s *set) post(ctx bCtx.Ctx, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("json.Marshal failed")
		return err
	}

	ctx, cancel := bCtx.WithTimeout(ctx, s.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode not 2xx")
		return ErrStatusCodeNotOk
	}
	return nil
}
