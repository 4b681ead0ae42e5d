package technical

import (
	"sort"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/shopspring/decimal"
)

type sides struct {
	yes, no       decimal.Decimal
	hasYes, hasNo bool
}

// Merge joins YES and NO price histories by timestamp. A side missing at a
// timestamp is derived as 1 minus the other side. Ticks are returned in
// ascending timestamp order.
func Merge(yes, no []core.PricePoint) []Tick {
	byTime := make(map[int64]*sides, len(yes)+len(no))
	get := func(ts int64) *sides {
		s, ok := byTime[ts]
		if !ok {
			s = &sides{}
			byTime[ts] = s
		}
		return s
	}

	for _, p := range yes {
		s := get(p.Timestamp)
		s.yes, s.hasYes = p.Price, true
	}
	for _, p := range no {
		s := get(p.Timestamp)
		s.no, s.hasNo = p.Price, true
	}

	one := decimal.NewFromInt(1)
	ticks := make([]Tick, 0, len(byTime))
	for ts, s := range byTime {
		if !s.hasYes {
			s.yes = one.Sub(s.no)
		}
		if !s.hasNo {
			s.no = one.Sub(s.yes)
		}
		y, _ := s.yes.Float64()
		n, _ := s.no.Float64()
		ticks = append(ticks, Tick{Timestamp: ts, Yes: y, No: n})
	}

	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i].Timestamp < ticks[j].Timestamp
	})
	return ticks
}
