package domain

import (
	"math/big"
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is an account id on the host platform. Asset collections and
// currencies are identified by the address of their ledger account.
type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLower() == b.ToLower()
}

func (a Address) String() string {
	return string(a)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// Table is a collection name of the persistent store
type Table string

const (
	TableSales             Table = "sales"
	TableStorageCredits    Table = "storage_credits"
	TableSettlements       Table = "settlements"
	TableSettlementCounter Table = "settlement_counter"
	TableCurrencies        Table = "currencies"
)

// ParseAmount parses a base-10 currency amount. Amounts travel as decimal
// strings at the API and storage boundary and as big.Int in memory.
func ParseAmount(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, ErrInvalidAmountFormat
	}
	return n, nil
}

// ParsePositiveAmount rejects zero amounts as well
func ParsePositiveAmount(s string) (*big.Int, error) {
	n, err := ParseAmount(s)
	if err != nil {
		return nil, err
	}
	if n.Sign() == 0 {
		return nil, ErrInvalidAmountFormat
	}
	return n, nil
}
