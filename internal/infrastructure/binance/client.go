package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"explosion-backend/internal/domain"
)

// SpotBaseURL is the default Binance spot REST endpoint.
const SpotBaseURL = "https://api.binance.com"

const requestTimeout = 10 * time.Second

// Client talks to the Binance spot REST API. It implements
// domain.MarketDataProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = SpotBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// ticker24h mirrors the wire shape: numerics arrive as strings, except the
// trade count.
type ticker24h struct {
	Symbol             string `json:"symbol"`
	PriceChangePercent string `json:"priceChangePercent"`
	LastPrice          string `json:"lastPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
	Count              int64  `json:"count"`
}

type serverTime struct {
	ServerTime int64 `json:"serverTime"`
}

// Ticker24h returns 24h statistics for all symbols in one call.
func (c *Client) Ticker24h(ctx context.Context) ([]domain.TickerSnapshot, error) {
	var raw []ticker24h
	if err := c.get(ctx, c.baseURL+"/api/v3/ticker/24hr", &raw); err != nil {
		return nil, errors.Wrap(err, "fetch 24h tickers")
	}

	snapshots := make([]domain.TickerSnapshot, 0, len(raw))
	for _, t := range raw {
		snapshots = append(snapshots, domain.TickerSnapshot{
			Symbol:             t.Symbol,
			LastPrice:          parseFloat(t.LastPrice),
			PriceChangePercent: parseFloat(t.PriceChangePercent),
			Volume:             parseFloat(t.Volume),
			QuoteVolume:        parseFloat(t.QuoteVolume),
			TradeCount:         t.Count,
		})
	}
	return snapshots, nil
}

// Klines returns candlestick data, oldest first.
// Binance returns: [ [open_time, open, high, low, close, volume, ...], ... ]
func (c *Client) Klines(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error) {
	url := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d", c.baseURL, symbol, interval, limit)

	var raw [][]interface{}
	if err := c.get(ctx, url, &raw); err != nil {
		return nil, errors.Wrapf(err, "fetch klines for %s", symbol)
	}

	candles := make([]domain.Candle, 0, len(raw))
	for _, k := range raw {
		if len(k) < 6 {
			continue
		}
		candles = append(candles, domain.Candle{
			Open:   parseField(k[1]),
			High:   parseField(k[2]),
			Low:    parseField(k[3]),
			Close:  parseField(k[4]),
			Volume: parseField(k[5]),
		})
	}
	return candles, nil
}

// ServerTime does one lightweight round-trip, used by the health check.
func (c *Client) ServerTime(ctx context.Context) (time.Time, error) {
	var st serverTime
	if err := c.get(ctx, c.baseURL+"/api/v3/time", &st); err != nil {
		return time.Time{}, errors.Wrap(err, "fetch server time")
	}
	return time.UnixMilli(st.ServerTime), nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("binance API error: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseFloat degrades malformed numerics to zero instead of failing the
// whole payload.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// parseField handles kline fields, which arrive as strings or numbers.
func parseField(v interface{}) float64 {
	switch val := v.(type) {
	case string:
		return parseFloat(val)
	case float64:
		return val
	}
	return 0
}
