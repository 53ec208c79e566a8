// Package grant implements rarity-weighted collectible selection for the
// starter-pack and airdrop flows. Selection is pure: persistence, retries and
// supply checks stay in the caller.
package grant

import (
	"errors"
	"github.com/google/uuid"
	"github.com/yur1-dev/koka-backend/internal/model"
	"math/rand"
)

var ErrEmptyPool = errors.New("empty selection pool")

// StarterWeights is the default rarity distribution for new accounts.
var StarterWeights = map[string]int{
	model.RarityCommon:    55,
	model.RarityUncommon:  25,
	model.RarityRare:      12,
	model.RarityEpic:      6,
	model.RarityLegendary: 2,
}

// FounderWeights shifts the distribution toward rare+ for founder accounts.
var FounderWeights = map[string]int{
	model.RarityCommon:    15,
	model.RarityUncommon:  20,
	model.RarityRare:      30,
	model.RarityEpic:      22,
	model.RarityLegendary: 13,
}

// Select picks one collectible from pool, weighting each candidate by its
// rarity. Rarities missing from weights contribute zero weight; if nothing
// carries weight the pick falls back to uniform.
func Select(pool []model.Collectible, weights map[string]int, rng *rand.Rand) (model.Collectible, error) {
	if len(pool) == 0 {
		return model.Collectible{}, ErrEmptyPool
	}

	total := 0
	for i := range pool {
		total += weights[pool[i].Rarity]
	}

	if total == 0 {
		return pool[rng.Intn(len(pool))], nil
	}

	n := rng.Intn(total)
	for i := range pool {
		n -= weights[pool[i].Rarity]
		if n < 0 {
			return pool[i], nil
		}
	}

	return pool[len(pool)-1], nil
}

// Without returns pool minus the collectible with the given id. Used to
// exclude an exhausted candidate before the next retry.
func Without(pool []model.Collectible, id uuid.UUID) []model.Collectible {
	res := make([]model.Collectible, 0, len(pool))
	for i := range pool {
		if pool[i].ID != id {
			res = append(res, pool[i])
		}
	}
	return res
}
