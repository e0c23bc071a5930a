package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/x-market/goapi/base/backoff"
	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/base/database/mongoclient"
	"github.com/x-market/goapi/base/log"
	bValidator "github.com/x-market/goapi/base/validator"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/sale"
	mmiddleware "github.com/x-market/goapi/middleware"
	"github.com/x-market/goapi/service/assetregistry"
	"github.com/x-market/goapi/service/currencyregistry"
	"github.com/x-market/goapi/service/query"
	currency_repository "github.com/x-market/goapi/stores/currency/repository"
	deposit_repository "github.com/x-market/goapi/stores/deposit/repository"
	deposit_usecase "github.com/x-market/goapi/stores/deposit/usecase"
	sale_delivery "github.com/x-market/goapi/stores/sale/delivery/http"
	sale_repository "github.com/x-market/goapi/stores/sale/repository"
	sale_usecase "github.com/x-market/goapi/stores/sale/usecase"
	settlement_delivery "github.com/x-market/goapi/stores/settlement/delivery/http"
	settlement_repository "github.com/x-market/goapi/stores/settlement/repository"
	settlement_usecase "github.com/x-market/goapi/stores/settlement/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug()
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	httpTimeout := viper.GetDuration("http.timeout")

	// construct repositories
	currencyRepo := currency_repository.NewCurrencyRepo(q)
	saleRepo := sale_repository.NewSaleRepo(q)
	creditRepo := deposit_repository.NewStorageCreditRepo(q)
	attemptRepo := settlement_repository.NewAttemptRepo(q)

	// external ledgers
	registries := currencyregistry.NewSet(&currencyregistry.SetCfg{
		HttpClient:     http.Client{},
		Timeout:        httpTimeout,
		CurrencyRepo:   currencyRepo,
		NativeEndpoint: viper.GetString("registries.nativeEndpoint"),
	})
	assetRegistry := assetregistry.NewClient(&assetregistry.ClientCfg{
		HttpClient:  http.Client{},
		Timeout:     httpTimeout,
		Endpoint:    viper.GetString("registries.assetEndpoint"),
		CallbackUrl: viper.GetString("registries.callbackUrl"),
	})

	// the native currency is supported from init; the upsert is idempotent so
	// it retries through replica-set warmup
	seedBackoff := backoff.NewExponential(time.Second, 10*time.Second)
	seedRetries := 0
	for {
		err := currencyRepo.Upsert(context, &domain.Currency{
			Id:        domain.NativeCurrency,
			Symbol:    viper.GetString("market.nativeSymbol"),
			Decimals:  viper.GetInt32("market.nativeDecimals"),
			Endpoint:  viper.GetString("registries.nativeEndpoint"),
			CreatedAt: time.Now(),
		})
		if err == nil {
			break
		}
		seedRetries++
		if seedRetries >= 5 {
			context.WithField("err", err).Panic("failed to seed native currency")
		}
		context.WithField("err", err).Warn("native currency seed failed, retrying")
		seedBackoff.Backoff(context)
	}

	admins := []domain.Address{}
	for _, addr := range viper.GetStringSlice("market.admins") {
		admins = append(admins, domain.Address(addr))
	}

	// construct usecases
	depositUC := deposit_usecase.New(&deposit_usecase.DepositUseCaseCfg{
		CreditRepo: creditRepo,
		Registries: registries,
	})
	saleUC := sale_usecase.New(&sale_usecase.SaleUseCaseCfg{
		SaleRepo:         saleRepo,
		CurrencyRepo:     currencyRepo,
		DepositUC:        depositUC,
		Registries:       registries,
		Admins:           admins,
		BidHistoryLength: viper.GetInt("market.bidHistoryLength"),
	})
	settlementUC := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		Mongo:         q,
		AttemptRepo:   attemptRepo,
		SaleRegistry:  saleUC.(sale.Registry),
		SaleUC:        saleUC,
		AssetRegistry: assetRegistry,
		Registries:    registries,
	})

	// construct deliveries
	sale_delivery.New(e, saleUC, depositUC)
	settlement_delivery.New(e, settlementUC)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
