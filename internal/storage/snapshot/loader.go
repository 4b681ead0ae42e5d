// internal/storage/snapshot/loader.go
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/newthinker/opinionlab/internal/core"
)

// historyEnvelope matches price-history responses wrapped in an object
type historyEnvelope struct {
	History []core.PricePoint `json:"history"`
}

// DecodePriceHistory accepts either a bare array of points or an object
// with a "history" array.
func DecodePriceHistory(data []byte) ([]core.PricePoint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []core.PricePoint{}, nil
	}

	if trimmed[0] == '[' {
		var points []core.PricePoint
		if err := json.Unmarshal(trimmed, &points); err != nil {
			return nil, fmt.Errorf("decoding price history: %w", err)
		}
		return points, nil
	}

	var env historyEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decoding price history: %w", err)
	}
	if env.History == nil {
		return []core.PricePoint{}, nil
	}
	return env.History, nil
}

// LoadPriceHistory reads and decodes a price-history snapshot
func LoadPriceHistory(ctx context.Context, src Source, path string) ([]core.PricePoint, error) {
	data, err := src.Read(ctx, path)
	if err != nil {
		return nil, core.WrapError(core.ErrSourceFailed, fmt.Errorf("reading %s: %w", path, err))
	}
	return DecodePriceHistory(data)
}

// LoadCandles reads a JSON array of candles
func LoadCandles(ctx context.Context, src Source, path string) ([]core.Candle, error) {
	data, err := src.Read(ctx, path)
	if err != nil {
		return nil, core.WrapError(core.ErrSourceFailed, fmt.Errorf("reading %s: %w", path, err))
	}
	var candles []core.Candle
	if err := json.Unmarshal(data, &candles); err != nil {
		return nil, fmt.Errorf("decoding candles: %w", err)
	}
	return candles, nil
}

// LoadMarketMeta reads market metadata
func LoadMarketMeta(ctx context.Context, src Source, path string) (*core.MarketMeta, error) {
	data, err := src.Read(ctx, path)
	if err != nil {
		return nil, core.WrapError(core.ErrSourceFailed, fmt.Errorf("reading %s: %w", path, err))
	}
	var meta core.MarketMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decoding market metadata: %w", err)
	}
	return &meta, nil
}
