package twitchapi

import (
	"context"
	"encoding/json"
)

// API defines the interface for Twitch gateway lookups. Every method is a
// read-only query scoped to a single channel; payloads are returned as
// raw JSON exactly as the gateway produced them.
type API interface {
	// GetChannelPanels retrieves the panels displayed on a channel page
	GetChannelPanels(ctx context.Context, channel string) (json.RawMessage, error)

	// GetViewerCard retrieves a user's viewer card within a channel
	GetViewerCard(ctx context.Context, channel, username string) (json.RawMessage, error)

	// GetStreamerInfo retrieves profile and live-stream details
	GetStreamerInfo(ctx context.Context, channel string) (json.RawMessage, error)

	// GetChannelVideos retrieves the videos published by a channel
	GetChannelVideos(ctx context.Context, channel string) (json.RawMessage, error)

	// GetStreamViewers retrieves the current viewer count
	GetStreamViewers(ctx context.Context, channel string) (json.RawMessage, error)

	// GetUserID retrieves the numeric user ID behind a channel name
	GetUserID(ctx context.Context, channel string) (json.RawMessage, error)

	// GetChannelPointsContext retrieves channel points configuration
	GetChannelPointsContext(ctx context.Context, channel string) (json.RawMessage, error)

	// GetChatRestrictions retrieves chat restriction settings
	GetChatRestrictions(ctx context.Context, channel string) (json.RawMessage, error)

	// GetPinnedChat retrieves currently pinned chat messages
	GetPinnedChat(ctx context.Context, channel string) (json.RawMessage, error)

	// GetChannelGoals retrieves follower and subscriber goals
	GetChannelGoals(ctx context.Context, channel string) (json.RawMessage, error)

	// GetChannelLeaderboards retrieves gifter and cheerer leaderboards
	GetChannelLeaderboards(ctx context.Context, channel string) (json.RawMessage, error)

	// GetStreamTags retrieves the tags attached to a stream
	GetStreamTags(ctx context.Context, channel string) (json.RawMessage, error)
}

var _ API = (*Client)(nil)
