package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/delivery"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/payout"
	dSale "github.com/x-market/goapi/domain/sale"
	"github.com/x-market/goapi/domain/settlement"
)

type handler struct {
	settlement settlement.UseCase
}

func New(e *echo.Echo, settlement settlement.UseCase) {
	h := &handler{settlement}

	e.POST("/sales/:collection/:tokenId/accept-bid", h.acceptBid)

	// currency ledgers notify received deposits here; the response carries
	// the unused amount the ledger refunds to the sender
	e.POST("/hooks/currency-deposit", h.onDepositReceived)
	// the asset ledger reports transfer outcomes here, tagged with the
	// attempt id it was handed in the transfer request
	e.POST("/hooks/asset-transfer-result", h.resolveTransfer)
}

func (h *handler) acceptBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller   domain.Address `json:"caller" validate:"required"`
		Currency domain.Address `json:"currency" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	id := dSale.SaleId{
		Collection: domain.Address(_ctx.Param("collection")),
		TokenId:    domain.TokenId(_ctx.Param("tokenId")),
	}
	if err := h.settlement.AcceptBid(ctx, p.Caller, id, p.Currency); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusAccepted, "ok")
}

func (h *handler) onDepositReceived(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Currency domain.Address `json:"currency" validate:"required"`
		From     domain.Address `json:"from" validate:"required"`
		Amount   string         `json:"amount" validate:"required"`
		Msg      string         `json:"msg" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	unused, err := h.settlement.OnDepositReceived(ctx, p.Currency, p.From, p.Amount, p.Msg)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, map[string]string{"unused": unused})
}

func (h *handler) resolveTransfer(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		AttemptId int64             `json:"attemptId" validate:"required"`
		Ok        bool              `json:"ok"`
		Payout    map[string]string `json:"payout,omitempty"`
		Reason    string            `json:"reason,omitempty"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	result := &settlement.TransferResult{Ok: p.Ok, Reason: p.Reason}
	if len(p.Payout) > 0 {
		parsed, err := payout.FromWire(p.Payout)
		if err != nil {
			return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
		}
		result.Payout = parsed
	}

	if err := h.settlement.ResolveTransfer(ctx, p.AttemptId, result); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}
