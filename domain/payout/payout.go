package payout

import (
	"math/big"

	"github.com/x-market/goapi/domain"
)

const (
	// BpsDenominator is the basis-point scale of royalty shares
	BpsDenominator = 10000
	// MaxRoyaltyBps caps the royalty total at 20%
	MaxRoyaltyBps = 2000
	// MaxRoyaltyRecipients bounds the royalty table size
	MaxRoyaltyRecipients = 5
	// MaxRecipients bounds the disbursement fan-out (royalties + seller)
	MaxRecipients = MaxRoyaltyRecipients + 1
)

// Royalty is one royalty share in basis points
type Royalty struct {
	Account domain.Address `json:"account" bson:"account"`
	Bps     int64          `json:"bps" bson:"bps"`
}

// Payout maps each recipient to its share of a sale price. The shares of a
// computed payout always sum to the total price.
type Payout map[domain.Address]*big.Int

// Total sums all shares
func (p Payout) Total() *big.Int {
	total := new(big.Int)
	for _, amount := range p {
		total.Add(total, amount)
	}
	return total
}

// FromWire parses a payout of decimal-string amounts
func FromWire(wire map[string]string) (Payout, error) {
	p := Payout{}
	for account, amount := range wire {
		n, err := domain.ParseAmount(amount)
		if err != nil {
			return nil, err
		}
		p[domain.Address(account)] = n
	}
	return p, nil
}

// ToWire renders the payout with decimal-string amounts
func (p Payout) ToWire() map[string]string {
	wire := map[string]string{}
	for account, amount := range p {
		wire[string(account)] = amount.String()
	}
	return wire
}

// Compute splits totalPrice between the royalty recipients and the seller.
// Each royalty share is floor(totalPrice * bps / 10000); the seller absorbs
// the rounding remainder. The seller share can never go negative because the
// royalty total is capped below the full price.
func Compute(totalPrice *big.Int, royalties []Royalty, seller domain.Address) (Payout, error) {
	if len(royalties) > MaxRoyaltyRecipients {
		return nil, domain.ErrTooManyRecipients
	}

	totalBps := int64(0)
	for _, r := range royalties {
		totalBps += r.Bps
	}
	if totalBps > MaxRoyaltyBps {
		return nil, domain.ErrRoyaltyCapExceeded
	}

	p := Payout{}
	sellerShare := new(big.Int).Set(totalPrice)
	for _, r := range royalties {
		share := new(big.Int).Mul(totalPrice, big.NewInt(r.Bps))
		share.Div(share, big.NewInt(BpsDenominator))
		sellerShare.Sub(sellerShare, share)
		if prev, ok := p[r.Account]; ok {
			p[r.Account] = prev.Add(prev, share)
		} else {
			p[r.Account] = share
		}
	}

	if prev, ok := p[seller]; ok {
		p[seller] = prev.Add(prev, sellerShare)
	} else {
		p[seller] = sellerShare
	}
	return p, nil
}
