package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/delivery"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/deposit"
	"github.com/x-market/goapi/domain/payout"
	dSale "github.com/x-market/goapi/domain/sale"
)

type handler struct {
	sale    dSale.UseCase
	deposit deposit.UseCase
}

// approvalMsg is the condition payload attached to an asset-approval grant
type approvalMsg struct {
	Conditions []dSale.Condition `json:"conditions"`
	Royalties  []payout.Royalty  `json:"royalties,omitempty"`
	Category   string            `json:"category,omitempty"`
}

func New(e *echo.Echo, sale dSale.UseCase, deposit deposit.UseCase) {
	h := &handler{sale, deposit}

	e.GET("/sales", h.getSales)
	e.GET("/sales/:collection/:tokenId", h.getSale)
	e.PUT("/sales/:collection/:tokenId/conditions", h.updateConditions)
	e.DELETE("/sales/:collection/:tokenId/conditions/:currency", h.removeCondition)
	e.DELETE("/sales/:collection/:tokenId", h.removeSale)
	e.GET("/sales/:collection/:tokenId/bids/:currency/highest", h.getHighestBid)

	e.GET("/currencies", h.getCurrencies)
	e.POST("/currencies", h.addCurrencies)

	e.POST("/storage/deposit", h.storageDeposit)
	e.POST("/storage/withdraw", h.storageWithdraw)
	e.GET("/storage/balances/:account", h.getStorageBalance)

	// the asset ledger notifies a granted transfer approval here; the
	// attached message carries the asking conditions
	e.POST("/hooks/asset-approval", h.onApprovalReceived)
}

func saleIdFromPath(_ctx echo.Context) dSale.SaleId {
	return dSale.SaleId{
		Collection: domain.Address(_ctx.Param("collection")),
		TokenId:    domain.TokenId(_ctx.Param("tokenId")),
	}
}

func (h *handler) getSales(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Owner      *domain.Address `query:"owner"`
		Collection *domain.Address `query:"collection"`
		Category   *string         `query:"category"`
		Currency   *domain.Address `query:"currency"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dSale.FindAllOptionsFunc{
		dSale.WithPagination(p.Offset, p.Limit),
	}
	if p.Owner != nil {
		opts = append(opts, dSale.WithOwner(*p.Owner))
	}
	if p.Collection != nil {
		opts = append(opts, dSale.WithCollection(*p.Collection))
	}
	if p.Category != nil {
		opts = append(opts, dSale.WithCategory(*p.Category))
	}
	if p.Currency != nil {
		opts = append(opts, dSale.WithCurrency(*p.Currency))
	}

	res, err := h.sale.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getSale(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	res, err := h.sale.GetSale(ctx, saleIdFromPath(_ctx))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) updateConditions(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller     domain.Address    `json:"caller" validate:"required"`
		Conditions []dSale.Condition `json:"conditions" validate:"required,min=1"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	if err := h.sale.UpdateConditions(ctx, p.Caller, saleIdFromPath(_ctx), p.Conditions); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) removeCondition(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `query:"caller" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	currency := domain.Address(_ctx.Param("currency"))
	if err := h.sale.RemoveCondition(ctx, p.Caller, saleIdFromPath(_ctx), currency); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) removeSale(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `query:"caller" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	if err := h.sale.RemoveSale(ctx, p.Caller, saleIdFromPath(_ctx)); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) getHighestBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	currency := domain.Address(_ctx.Param("currency"))
	res, err := h.sale.PeekHighestBid(ctx, saleIdFromPath(_ctx), currency)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getCurrencies(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	res, err := h.sale.SupportedCurrencies(ctx)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) addCurrencies(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller     domain.Address    `json:"caller" validate:"required"`
		Currencies []domain.Currency `json:"currencies" validate:"required,min=1"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.sale.AddSupportedCurrencies(ctx, p.Caller, p.Currencies)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) storageDeposit(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller" validate:"required"`
		// Account optionally credits another account's storage
		Account domain.Address `json:"account"`
		Amount  int64          `json:"amount" validate:"required,gt=0"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	account := p.Account
	if account.IsEmpty() {
		account = p.Caller
	}

	if err := h.deposit.Deposit(ctx, account, p.Amount); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) storageWithdraw(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Caller domain.Address `json:"caller" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	withdrawn, err := h.deposit.Withdraw(ctx, p.Caller)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, map[string]int64{"withdrawn": withdrawn})
}

func (h *handler) getStorageBalance(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	account := domain.Address(_ctx.Param("account"))
	balance, err := h.deposit.BalanceOf(ctx, account)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, map[string]int64{
		"balance": balance,
		"minimum": h.deposit.MinimumBalance(),
	})
}

func (h *handler) onApprovalReceived(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Owner      domain.Address `json:"owner" validate:"required"`
		Collection domain.Address `json:"collection" validate:"required"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		ApprovalId uint64         `json:"approvalId"`
		Msg        string         `json:"msg" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	msg := approvalMsg{}
	if err := json.Unmarshal([]byte(p.Msg), &msg); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, domain.ErrInvalidMessage)
	}

	s := &dSale.Sale{
		SaleId:     dSale.SaleId{Collection: p.Collection, TokenId: p.TokenId},
		Owner:      p.Owner,
		ApprovalId: p.ApprovalId,
		Conditions: msg.Conditions,
		Royalties:  msg.Royalties,
		Category:   msg.Category,
	}
	if err := h.sale.CreateSale(ctx, s); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, s)
}
