package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/twitchlens/twitchapi"
)

// DefaultConcurrency caps how many gateway lookups run at once. RapidAPI
// plans are rate limited, so this stays deliberately low.
const DefaultConcurrency = 4

// Analyzer builds channel reports and comparisons on top of the gateway
// client.
type Analyzer struct {
	api         twitchapi.API
	logger      zerolog.Logger
	concurrency int
}

// NewAnalyzer creates a new analyzer backed by the given API client.
func NewAnalyzer(api twitchapi.API, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		api:         api,
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
}

// ChannelReport assembles a full report for one channel. The streamer
// profile is required and its failure fails the report; every other
// section is fetched concurrently and failures are recorded per section.
func (a *Analyzer) ChannelReport(ctx context.Context, channel string) (*Report, error) {
	a.logger.Debug().Str("channel", channel).Msg("Building channel report")

	info, err := a.api.GetStreamerInfo(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to get streamer info for %s: %w", channel, err)
	}

	report := &Report{
		Channel:      channel,
		Status:       StatusFromPayload(channel, info),
		StreamerInfo: info,
		Sections:     make(map[Section]json.RawMessage),
		Errors:       make(map[Section]error),
	}

	sections := []struct {
		name  Section
		fetch func(context.Context, string) (json.RawMessage, error)
	}{
		{SectionUserID, a.api.GetUserID},
		{SectionVideos, a.api.GetChannelVideos},
		{SectionPanels, a.api.GetChannelPanels},
		{SectionGoals, a.api.GetChannelGoals},
		{SectionLeaderboards, a.api.GetChannelLeaderboards},
		{SectionRestrictions, a.api.GetChatRestrictions},
		{SectionPinnedChat, a.api.GetPinnedChat},
		{SectionPointsContext, a.api.GetChannelPointsContext},
		{SectionStreamTags, a.api.GetStreamTags},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	// Use mutex to protect concurrent writes
	var mu sync.Mutex

	for _, section := range sections {
		g.Go(func() error {
			payload, err := section.fetch(ctx, channel)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				a.logger.Warn().
					Err(err).
					Str("channel", channel).
					Str("section", string(section.name)).
					Msg("Failed to fetch report section")
				report.Errors[section.name] = err
				// Continue with the other sections
				return nil
			}

			report.Sections[section.name] = payload
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.UserID = userIDFromPayload(report.Sections[SectionUserID])

	return report, nil
}

// CompareChannels fetches the streamer profile for each channel
// concurrently and returns one status row per channel, in input order.
// A failed lookup yields a row with Err set rather than failing the
// whole comparison.
func (a *Analyzer) CompareChannels(ctx context.Context, channels []string) ([]ChannelStatus, error) {
	if len(channels) == 0 {
		return nil, nil
	}

	statuses := make([]ChannelStatus, len(channels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, channel := range channels {
		g.Go(func() error {
			payload, err := a.api.GetStreamerInfo(ctx, channel)
			if err != nil {
				a.logger.Warn().
					Err(err).
					Str("channel", channel).
					Msg("Failed to fetch streamer info")
				statuses[i] = ChannelStatus{
					Channel:     channel,
					DisplayName: channel,
					Err:         err,
				}
				return nil
			}

			statuses[i] = StatusFromPayload(channel, payload)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return statuses, nil
}

// CheckEndpoints probes every gateway endpoint against a channel and
// reports which ones answered. The viewer card needs a username and is
// skipped when none is given.
func (a *Analyzer) CheckEndpoints(ctx context.Context, channel, username string) []EndpointCheck {
	checks := []struct {
		name string
		call func(context.Context) (json.RawMessage, error)
		skip bool
	}{
		{name: "streamer info", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetStreamerInfo(ctx, channel)
		}},
		{name: "user id", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetUserID(ctx, channel)
		}},
		{name: "channel panels", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetChannelPanels(ctx, channel)
		}},
		{name: "channel videos", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetChannelVideos(ctx, channel)
		}},
		{name: "stream viewers", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetStreamViewers(ctx, channel)
		}},
		{name: "channel goals", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetChannelGoals(ctx, channel)
		}},
		{name: "channel leaderboards", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetChannelLeaderboards(ctx, channel)
		}},
		{name: "channel points context", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetChannelPointsContext(ctx, channel)
		}},
		{name: "chat restrictions", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetChatRestrictions(ctx, channel)
		}},
		{name: "pinned chat", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetPinnedChat(ctx, channel)
		}},
		{name: "stream tags", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetStreamTags(ctx, channel)
		}},
		{name: "viewer card", skip: username == "", call: func(ctx context.Context) (json.RawMessage, error) {
			return a.api.GetViewerCard(ctx, channel, username)
		}},
	}

	results := make([]EndpointCheck, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, check := range checks {
		if check.skip {
			results[i] = EndpointCheck{Name: check.name, Skipped: true}
			continue
		}

		g.Go(func() error {
			_, err := check.call(ctx)
			results[i] = EndpointCheck{Name: check.name, Err: err}
			return nil
		})
	}

	// Individual failures are captured per check
	_ = g.Wait()

	return results
}
