package analytics

import "sort"

// RiskReturnPoint is one player's position on the risk/return scatter:
// volatility on the x axis, total return percent on the y axis.
type RiskReturnPoint struct {
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Volatility    float64 `json:"volatility"`
	ReturnPercent float64 `json:"return_percent"`
}

// FrontierResult carries the full scatter, the efficient-frontier
// envelope, and the point with the best return-per-unit-risk.
type FrontierResult struct {
	Points        []RiskReturnPoint `json:"points"`
	Frontier      []RiskReturnPoint `json:"frontier"`
	MostEfficient *RiskReturnPoint  `json:"most_efficient"`
}

// Frontier approximates the efficient frontier of the risk/return
// scatter. Points are sorted ascending by volatility, then a monotone
// stack keeps only points forming the concave-from-above upper
// envelope: the previous point is popped whenever the slope into it is
// not steeper than the slope out of it, and a point joins the frontier
// only if its return exceeds the current tail's.
func Frontier(points []RiskReturnPoint) FrontierResult {
	sorted := make([]RiskReturnPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Volatility < sorted[b].Volatility
	})

	var frontier []RiskReturnPoint
	for _, point := range sorted {
		for len(frontier) >= 2 {
			last := frontier[len(frontier)-1]
			secondLast := frontier[len(frontier)-2]
			slopeIn := (last.ReturnPercent - secondLast.ReturnPercent) / (last.Volatility - secondLast.Volatility)
			slopeOut := (point.ReturnPercent - last.ReturnPercent) / (point.Volatility - last.Volatility)
			if slopeOut > slopeIn {
				frontier = frontier[:len(frontier)-1]
			} else {
				break
			}
		}
		if len(frontier) == 0 || point.ReturnPercent > frontier[len(frontier)-1].ReturnPercent {
			frontier = append(frontier, point)
		}
	}

	return FrontierResult{
		Points:        sorted,
		Frontier:      frontier,
		MostEfficient: mostEfficient(frontier),
	}
}

// mostEfficient picks the frontier point maximizing return per unit of
// volatility. Zero-volatility points are excluded; the ratio is
// undefined there.
func mostEfficient(frontier []RiskReturnPoint) *RiskReturnPoint {
	var best *RiskReturnPoint
	bestRatio := 0.0
	for i := range frontier {
		if frontier[i].Volatility <= 0 {
			continue
		}
		ratio := frontier[i].ReturnPercent / frontier[i].Volatility
		if best == nil || ratio > bestRatio {
			best = &frontier[i]
			bestRatio = ratio
		}
	}
	return best
}
