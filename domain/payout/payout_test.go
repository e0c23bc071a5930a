package payout

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-market/goapi/domain"
)

func TestCompute(t *testing.T) {
	req := require.New(t)

	seller := domain.Address("seller")
	royaltyAccount := domain.Address("creator")

	cases := []struct {
		name      string
		price     int64
		royalties []Royalty
		want      map[domain.Address]int64
		wantErr   error
	}{
		{
			name:      "max royalty",
			price:     1000,
			royalties: []Royalty{{Account: royaltyAccount, Bps: 2000}},
			want:      map[domain.Address]int64{royaltyAccount: 200, seller: 800},
		},
		{
			name:      "no royalties",
			price:     1000,
			royalties: nil,
			want:      map[domain.Address]int64{seller: 1000},
		},
		{
			name:  "seller absorbs rounding remainder",
			price: 999,
			royalties: []Royalty{
				{Account: "a", Bps: 150},
				{Account: "b", Bps: 333},
			},
			// 999*150/10000=14, 999*333/10000=33
			want: map[domain.Address]int64{"a": 14, "b": 33, seller: 952},
		},
		{
			name:      "royalty cap exceeded",
			price:     1000,
			royalties: []Royalty{{Account: "a", Bps: 1500}, {Account: "b", Bps: 600}},
			wantErr:   domain.ErrRoyaltyCapExceeded,
		},
		{
			name:  "too many recipients",
			price: 1000,
			royalties: []Royalty{
				{Account: "a", Bps: 100},
				{Account: "b", Bps: 100},
				{Account: "c", Bps: 100},
				{Account: "d", Bps: 100},
				{Account: "e", Bps: 100},
				{Account: "f", Bps: 100},
			},
			wantErr: domain.ErrTooManyRecipients,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Compute(big.NewInt(c.price), c.royalties, seller)
			if c.wantErr != nil {
				req.ErrorIs(err, c.wantErr)
				return
			}
			req.NoError(err)
			req.Len(got, len(c.want))
			for account, amount := range c.want {
				req.Equal(amount, got[account].Int64(), "account %s", account)
			}
			req.Equal(c.price, got.Total().Int64())
		})
	}
}

func TestComputeAlwaysSumsToPrice(t *testing.T) {
	req := require.New(t)

	royalties := []Royalty{
		{Account: "a", Bps: 1},
		{Account: "b", Bps: 777},
		{Account: "c", Bps: 999},
	}
	for price := int64(1); price < 5000; price += 13 {
		p, err := Compute(big.NewInt(price), royalties, "seller")
		req.NoError(err)
		req.Equal(price, p.Total().Int64())
		req.True(p["seller"].Sign() >= 0)
	}
}

func TestWireRoundTrip(t *testing.T) {
	req := require.New(t)

	p, err := Compute(big.NewInt(1000), []Royalty{{Account: "creator", Bps: 250}}, "seller")
	req.NoError(err)

	parsed, err := FromWire(p.ToWire())
	req.NoError(err)
	req.Equal(p.Total().Int64(), parsed.Total().Int64())
	req.Equal(int64(25), parsed["creator"].Int64())
}
