package assetregistry

import (
	"errors"
	"net/http"
	"time"

	"github.com/x-market/goapi/domain/settlement"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 2xx")
)

// Client talks to the asset-ownership ledger. TransferWithPayout only
// dispatches the request; the ledger reports the outcome asynchronously
// through the settlement resolve hook.
type Client interface {
	settlement.AssetRegistry
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Endpoint   string
	// CallbackUrl is where the ledger posts the transfer outcome
	CallbackUrl string
}
