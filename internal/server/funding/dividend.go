package funding

import (
	"math/big"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

// Distribution is how a joining amount is split among existing stakes.
type Distribution struct {
	Deltas []models.DividendDelta
	// Dust is the amount lost to rounding down. It is not credited to anyone.
	Dust int64
}

// Distribute gives every stake floor(amount * stake / total). Stakes whose
// share rounds to zero get no delta. With no stake value nothing is paid out.
func Distribute(stakes []models.Stake, amount int64) Distribution {
	t := new(big.Int)
	for _, s := range stakes {
		t.Add(t, big.NewInt(s.Amount))
	}
	if t.Sign() <= 0 || amount <= 0 {
		return Distribution{Dust: max(amount, 0)}
	}

	var (
		d    Distribution
		paid int64
		a    = big.NewInt(amount)
	)
	for _, s := range stakes {
		share := new(big.Int).Mul(a, big.NewInt(s.Amount))
		share.Quo(share, t)
		v := share.Int64()
		if v <= 0 {
			continue
		}
		d.Deltas = append(d.Deltas, models.DividendDelta{StakeID: s.ID, HolderID: s.HolderID, Amount: v})
		paid += v
	}
	d.Dust = amount - paid
	return d
}
