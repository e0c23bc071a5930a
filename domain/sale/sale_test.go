package sale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-market/goapi/domain"
)

func TestConditions(t *testing.T) {
	req := require.New(t)

	s := &Sale{
		SaleId: SaleId{Collection: "nft", TokenId: "1"},
		Owner:  "alice",
	}

	s.SetCondition("native", "1000")
	s.SetCondition("usdt", "500")

	cond, ok := s.ConditionFor("native")
	req.True(ok)
	req.Equal("1000", cond.Price)

	s.SetCondition("native", "2000")
	cond, ok = s.ConditionFor("native")
	req.True(ok)
	req.Equal("2000", cond.Price)
	req.Len(s.Conditions, 2)

	req.True(s.DropCondition("usdt"))
	req.False(s.DropCondition("usdt"))
	_, ok = s.ConditionFor("usdt")
	req.False(ok)
	req.Len(s.Conditions, 1)
}

func TestPlaceBidFirstBid(t *testing.T) {
	req := require.New(t)

	s := &Sale{}

	_, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "0"}, 1)
	req.ErrorIs(err, domain.ErrInvalidAmountFormat)

	_, err = s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "not-a-number"}, 1)
	req.ErrorIs(err, domain.ErrInvalidAmountFormat)

	evicted, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "1"}, 1)
	req.NoError(err)
	req.Nil(evicted)
	req.Len(s.Bids, 1)
}

func TestPlaceBidCanonicalizesAmount(t *testing.T) {
	req := require.New(t)

	s := &Sale{}
	_, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "0800"}, 1)
	req.NoError(err)

	// retained amounts never carry leading zeros
	req.Equal("800", s.Bids[0].Amount)

	highest := s.HighestBid("native")
	req.NotNil(highest)
	req.Equal("800", highest.Amount)
}

func TestPlaceBidMustExceedHighest(t *testing.T) {
	req := require.New(t)

	s := &Sale{}
	_, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "100"}, 2)
	req.NoError(err)

	// equal amount rejected
	_, err = s.PlaceBid(Bid{Currency: "native", Bidder: "carol", Amount: "100"}, 2)
	req.ErrorIs(err, domain.ErrBidTooLow)

	_, err = s.PlaceBid(Bid{Currency: "native", Bidder: "carol", Amount: "99"}, 2)
	req.ErrorIs(err, domain.ErrBidTooLow)

	evicted, err := s.PlaceBid(Bid{Currency: "native", Bidder: "carol", Amount: "101"}, 2)
	req.NoError(err)
	req.Nil(evicted)

	highest := s.HighestBid("native")
	req.NotNil(highest)
	req.Equal(domain.Address("carol"), highest.Bidder)
}

func TestPlaceBidEviction(t *testing.T) {
	req := require.New(t)

	s := &Sale{}
	_, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "100"}, 1)
	req.NoError(err)

	evicted, err := s.PlaceBid(Bid{Currency: "native", Bidder: "carol", Amount: "200"}, 1)
	req.NoError(err)
	req.NotNil(evicted)
	req.Equal(domain.Address("bob"), evicted.Bidder)
	req.Equal("100", evicted.Amount)
	req.Len(s.Bids, 1)

	// another currency keeps its own history
	evicted, err = s.PlaceBid(Bid{Currency: "usdt", Bidder: "dave", Amount: "1"}, 1)
	req.NoError(err)
	req.Nil(evicted)
	req.Len(s.Bids, 2)
}

func TestPlaceBidHistoryBound(t *testing.T) {
	req := require.New(t)

	s := &Sale{}
	for _, amount := range []string{"100", "200", "300"} {
		evicted, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: amount}, 3)
		req.NoError(err)
		req.Nil(evicted)
	}
	req.Len(s.BidsFor("native"), 3)

	evicted, err := s.PlaceBid(Bid{Currency: "native", Bidder: "carol", Amount: "400"}, 3)
	req.NoError(err)
	req.NotNil(evicted)
	req.Equal("100", evicted.Amount)
	req.Len(s.BidsFor("native"), 3)

	highest := s.HighestBid("native")
	req.Equal("400", highest.Amount)
}

func TestTakeBids(t *testing.T) {
	req := require.New(t)

	s := &Sale{}
	_, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "100"}, 2)
	req.NoError(err)
	_, err = s.PlaceBid(Bid{Currency: "usdt", Bidder: "carol", Amount: "50"}, 2)
	req.NoError(err)

	taken := s.TakeBids("native")
	req.Len(taken, 1)
	req.Equal(domain.Address("bob"), taken[0].Bidder)
	req.Len(s.Bids, 1)
	req.Nil(s.HighestBid("native"))
	req.NotNil(s.HighestBid("usdt"))
}

func TestHighestBidLargeAmounts(t *testing.T) {
	req := require.New(t)

	// amounts beyond int64
	s := &Sale{}
	_, err := s.PlaceBid(Bid{Currency: "native", Bidder: "bob", Amount: "10000000000000000000000000"}, 2)
	req.NoError(err)
	_, err = s.PlaceBid(Bid{Currency: "native", Bidder: "carol", Amount: "10000000000000000000000001"}, 2)
	req.NoError(err)

	highest := s.HighestBid("native")
	req.Equal(domain.Address("carol"), highest.Bidder)
}
