package candle

import (
	"math"

	"github.com/newthinker/opinionlab/internal/core"
)

// QualityScore rates how trustworthy a market's data is, from 0 to 100.
// Trading activity contributes up to 40, resolution status 30 and data
// completeness 30.
func QualityScore(volume float64, status core.MarketStatus, candleCount int) float64 {
	activity := math.Min(volume/100000*40, 40)
	if activity < 0 {
		activity = 0
	}

	var resolution float64
	switch status {
	case core.StatusResolved:
		resolution = 30
	case core.StatusActive:
		resolution = 15
	}

	completeness := math.Min(float64(candleCount)/100*30, 30)

	return activity + resolution + completeness
}
