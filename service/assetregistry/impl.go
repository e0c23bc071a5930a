package assetregistry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/log"
	"github.com/x-market/goapi/domain/settlement"
)

type transferPayload struct {
	AttemptId     int64  `json:"attemptId"`
	From          string `json:"from"`
	To            string `json:"to"`
	Collection    string `json:"collection"`
	TokenId       string `json:"tokenId"`
	ApprovalId    uint64 `json:"approvalId"`
	Price         string `json:"price"`
	MaxRecipients int    `json:"maxRecipients"`
	CallbackUrl   string `json:"callbackUrl,omitempty"`
}

type client struct {
	client      http.Client
	timeout     time.Duration
	endpoint    string
	callbackUrl string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:      cfg.HttpClient,
		timeout:     cfg.Timeout,
		endpoint:    cfg.Endpoint,
		callbackUrl: cfg.CallbackUrl,
	}
}

func (c *client) TransferWithPayout(ctx bCtx.Ctx, req *settlement.TransferRequest) error {
	payload := transferPayload{
		AttemptId:     req.AttemptId,
		From:          req.From.String(),
		To:            req.To.String(),
		Collection:    req.Collection.String(),
		TokenId:       req.TokenId.String(),
		ApprovalId:    req.ApprovalId,
		Price:         req.Price.String(),
		MaxRecipients: req.MaxRecipients,
		CallbackUrl:   c.callbackUrl,
	}
	return c.post(ctx, c.endpoint+"/transfers", payload)
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("json.Marshal failed")
		return err
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
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

	resp, err := c.client.Do(req)
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
