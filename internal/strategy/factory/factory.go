// internal/strategy/factory/factory.go
package factory

import (
	"fmt"
	"sort"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
	"github.com/newthinker/opinionlab/internal/strategy/early_entry"
	"github.com/newthinker/opinionlab/internal/strategy/market_making"
	"github.com/newthinker/opinionlab/internal/strategy/stop_loss"
	"github.com/newthinker/opinionlab/internal/strategy/volume_fade"
)

var constructors = map[strategy.Type]func() strategy.Strategy{
	strategy.TypeEarlyEntry:      func() strategy.Strategy { return early_entry.New(0) },
	strategy.TypeVolumeFade:      func() strategy.Strategy { return volume_fade.New(0) },
	strategy.TypeMarketMaking:    func() strategy.Strategy { return market_making.New(0) },
	strategy.TypeStopLossNearRes: func() strategy.Strategy { return stop_loss.New(0) },
}

// New creates and initializes the strategy selected by cfg.Type.
func New(cfg strategy.Config) (strategy.Strategy, error) {
	ctor, ok := constructors[cfg.Type]
	if !ok {
		return nil, core.WrapError(core.ErrInvalidStrategy,
			fmt.Errorf("unknown strategy type: %q", cfg.Type))
	}

	s := ctor()
	if err := s.Init(cfg.Params); err != nil {
		return nil, err
	}
	return s, nil
}

// Types lists the supported strategy tags
func Types() []strategy.Type {
	types := make([]strategy.Type, 0, len(constructors))
	for t := range constructors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
