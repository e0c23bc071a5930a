package currencyregistry

import (
	"errors"
	"net/http"
	"time"

	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/settlement"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 2xx")
)

// Set resolves the ledger client of each supported currency from the
// currency table; the native ledger endpoint comes from config.
type Set interface {
	settlement.CurrencyRegistrySet
}

type SetCfg struct {
	HttpClient     http.Client
	Timeout        time.Duration
	CurrencyRepo   domain.CurrencyRepo
	NativeEndpoint string
}
