package playoff

import (
	"github.com/atgjack/prob"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// HomeFieldBonus is the flat probability bump the weighted model gives the
// home team.
const HomeFieldBonus = 0.05

// Default parameters for the Gaussian margin model: the historical standard
// deviation of NFL scoring margins and the home edge in points.
const (
	DefaultGaussianSigma  = 13.45
	DefaultHomeEdgePoints = 2.0
)

// WinModel predicts the probability that the home team wins a matchup.
// None of the implementations is a calibrated predictor; they are simple
// heuristics for biasing simulated outcomes.
type WinModel interface {
	HomeWinProbability(home, away *nfl.Team) float64
}

// CoinFlip gives every game even odds.
type CoinFlip struct{}

// HomeWinProbability always returns 0.5.
func (CoinFlip) HomeWinProbability(home, away *nfl.Team) float64 {
	return 0.5
}

// RecordWeighted weights the home team by the two teams' win percentages
// plus a flat home-field bonus. Missing team data degrades to a fair coin
// flip plus the bonus.
type RecordWeighted struct {
	Bonus float64
}

// NewRecordWeighted makes a RecordWeighted model with the standard bonus.
func NewRecordWeighted() RecordWeighted {
	return RecordWeighted{Bonus: HomeFieldBonus}
}

// HomeWinProbability returns homePct/(homePct+awayPct) + bonus.
func (m RecordWeighted) HomeWinProbability(home, away *nfl.Team) float64 {
	if home == nil || away == nil {
		return 0.5 + m.Bonus
	}
	hp, ap := home.WinPct(), away.WinPct()
	if hp+ap == 0 {
		return 0.5 + m.Bonus
	}
	return hp/(hp+ap) + m.Bonus
}

// GaussianDiff predicts from the difference in average scoring margin,
// pushed through a normal CDF. The home team gets a flat edge in points.
type GaussianDiff struct {
	dist prob.Normal
	edge float64
}

// NewGaussianDiff makes a GaussianDiff model. Non-positive sigma falls back
// to the default.
func NewGaussianDiff(sigma, homeEdgePoints float64) *GaussianDiff {
	if sigma <= 0 {
		sigma = DefaultGaussianSigma
	}
	return &GaussianDiff{
		dist: prob.Normal{Mu: 0, Sigma: sigma},
		edge: homeEdgePoints,
	}
}

// HomeWinProbability returns the CDF of the predicted margin.
func (m *GaussianDiff) HomeWinProbability(home, away *nfl.Team) float64 {
	if home == nil || away == nil {
		return m.dist.Cdf(m.edge)
	}
	diff := home.PointDiffPerGame() - away.PointDiffPerGame() + m.edge
	return m.dist.Cdf(diff)
}
