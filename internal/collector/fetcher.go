package collector

import (
	"context"
	"errors"

	"SwingScout/internal/model"
)

// ErrNoData indicates the source returned nothing usable for a symbol.
// Treated as a soft failure: the symbol is skipped, never the whole scan.
var ErrNoData = errors.New("no price data available")

// Fetcher defines the interface for fetching one symbol's price history.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
