package universe

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source is one provider of the raw symbol universe. A failed or empty fetch
// is a soft failure; the resolver falls through to the next source.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
	Name() string
}

// Resolver tries sources in priority order and truncates the result to
// MaxSize. The last source is expected to be the static built-in list, so
// Resolve never returns an empty universe.
type Resolver struct {
	Sources []Source
	MaxSize int
}

// NewResolver builds the default source chain: bulk equity listing, index
// API, static fallback.
func NewResolver(bulkURL, indexURL, proxyURL string, maxSize int) *Resolver {
	client := newHTTPClient(proxyURL)
	return &Resolver{
		Sources: []Source{
			&BulkListSource{URL: bulkURL, Client: client},
			&IndexAPISource{URL: indexURL, Client: client},
			&StaticSource{},
		},
		MaxSize: maxSize,
	}
}

// Resolve returns the symbol universe. Source errors and empty listings are
// logged at warning level and never propagate past this boundary.
func (r *Resolver) Resolve(ctx context.Context) []string {
	for _, src := range r.Sources {
		symbols, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("[WARN] universe source %s failed: %v", src.Name(), err)
			continue
		}
		if len(symbols) == 0 {
			log.Printf("[WARN] universe source %s returned no symbols", src.Name())
			continue
		}
		log.Printf("[INFO] universe resolved via %s: %d symbols", src.Name(), len(symbols))
		if r.MaxSize > 0 && len(symbols) > r.MaxSize {
			symbols = symbols[:r.MaxSize]
		}
		return symbols
	}
	// Unreachable with the static terminal source in the chain, but keep the
	// contract honest for custom chains.
	log.Println("[WARN] all universe sources failed, using static list")
	symbols := StaticSymbols()
	if r.MaxSize > 0 && len(symbols) > r.MaxSize {
		symbols = symbols[:r.MaxSize]
	}
	return symbols
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   15 * time.Second,
		Transport: transport,
	}
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.nseindia.com/")
}

// BulkListSource downloads the exchange's full equity listing CSV.
type BulkListSource struct {
	URL    string
	Client *http.Client
}

func (s *BulkListSource) Name() string { return "bulk-csv" }

func (s *BulkListSource) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.URL, nil)
	if err != nil {
		return nil, err
	}
	setBrowserHeaders(req)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download listing: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download listing: status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var symbols []string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse listing: %w", err)
		}
		if first { // header row
			first = false
			continue
		}
		if len(record) == 0 {
			continue
		}
		sym := strings.TrimSpace(record[0])
		if validSymbol(sym) {
			symbols = append(symbols, sym+".NS")
		}
	}
	return symbols, nil
}

// IndexAPISource queries the exchange's index constituents API.
type IndexAPISource struct {
	URL    string
	Client *http.Client
}

func (s *IndexAPISource) Name() string { return "index-api" }

func (s *IndexAPISource) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.URL, nil)
	if err != nil {
		return nil, err
	}
	setBrowserHeaders(req)
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch index: status %d", resp.StatusCode)
	}

	var payload struct {
		Data []struct {
			Symbol string `json:"symbol"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}

	var symbols []string
	for _, item := range payload.Data {
		if validSymbol(item.Symbol) {
			symbols = append(symbols, item.Symbol+".NS")
		}
	}
	return symbols, nil
}

// StaticSource serves the built-in liquid-symbol list; it always succeeds.
type StaticSource struct{}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Fetch(_ context.Context) ([]string, error) {
	return StaticSymbols(), nil
}

// validSymbol filters out index rows, blanks, and series junk from listings.
func validSymbol(sym string) bool {
	if sym == "" {
		return false
	}
	for _, r := range sym {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '&':
		default:
			return false
		}
	}
	return true
}
