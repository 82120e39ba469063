package core

import (
	"math"
	"sort"

	"github.com/lmarsden/fullback/schema"
)

// RankPlayers sorts players by overall score in descending order and returns
// the top 'limit' players. NaN scores sort last. If limit is greater than the
// number of players, all players are returned in sorted order.
func RankPlayers(players []schema.PlayerResult, limit int) []schema.PlayerResult {
	sort.SliceStable(players, func(i, j int) bool {
		return scoreLess(players[j].Overall, players[i].Overall)
	})
	if limit > 0 && len(players) > limit {
		return players[:limit]
	}
	return players
}

// RankByFeasibility sorts players by feasibility in descending order and
// returns the top 'limit' players.
func RankByFeasibility(players []schema.PlayerResult, limit int) []schema.PlayerResult {
	sort.SliceStable(players, func(i, j int) bool {
		return scoreLess(players[j].Feasibility, players[i].Feasibility)
	})
	if limit > 0 && len(players) > limit {
		return players[:limit]
	}
	return players
}

// scoreLess orders a before b, pushing NaN to the bottom of any ranking.
func scoreLess(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return a < b
}
