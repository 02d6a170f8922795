package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leaguedesk/airbase-client/pkg/client"
	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrPageLimit is returned when the backend keeps handing out continuation
// cursors past the configured page bound. A healthy backend terminates by
// omitting the cursor; hitting this limit means a cursor cycle or a bound
// set too low.
var ErrPageLimit = errors.New("page limit exceeded")

// Config holds fetcher configuration.
type Config struct {
	// MaxPages bounds one fetch against a non-terminating cursor sequence.
	MaxPages int

	// Tables overrides the default backend table per kind.
	Tables map[model.Kind]string
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		MaxPages: 50,
	}
}

// Fetcher retrieves complete, ordered collections from the Airbase API.
type Fetcher struct {
	client *client.Client
	config Config
	logger zerolog.Logger
}

// New creates a new collection fetcher.
func New(c *client.Client, cfg Config) *Fetcher {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 50
	}

	return &Fetcher{
		client: c,
		config: cfg,
		logger: log.With().Str("component", "fetcher").Logger(),
	}
}

// FetchAll retrieves every page of records for the given kind and returns
// the concatenation in server order. Pages are requested strictly in
// sequence because each continuation cursor is only known after the prior
// page decodes. The returned collection may be empty, never nil on success.
func (f *Fetcher) FetchAll(ctx context.Context, kind model.Kind) (model.Collection, error) {
	desc, err := kind.Descriptor()
	if err != nil {
		return nil, err
	}

	table := desc.Table
	if override, ok := f.config.Tables[kind]; ok && override != "" {
		table = override
	}

	start := time.Now()
	collection := model.Collection{}
	offset := ""

	for pageNum := 1; pageNum <= f.config.MaxPages; pageNum++ {
		body, err := f.client.FetchPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}

		p, err := parsePage(kind, desc.Codec, body)
		if err != nil {
			return nil, err
		}

		collection = append(collection, p.Records...)

		f.logger.Debug().
			Str("kind", kind.String()).
			Int("page", pageNum).
			Int("records", len(p.Records)).
			Bool("has_more", p.Offset != "").
			Msg("Page decoded")

		if p.Offset == "" {
			f.logger.Info().
				Str("kind", kind.String()).
				Int("pages", pageNum).
				Int("records", len(collection)).
				Dur("duration", time.Since(start)).
				Msg("Fetch complete")
			return collection, nil
		}

		offset = p.Offset
	}

	f.logger.Warn().
		Str("kind", kind.String()).
		Int("max_pages", f.config.MaxPages).
		Msg("Backend kept returning continuation cursors")

	return nil, fmt.Errorf("%w after %d pages for kind %s", ErrPageLimit, f.config.MaxPages, kind)
}
