package twitchapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// requireParam guards against blank lookup parameters before any request
// is built.
func requireParam(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Param: name}
	}
	return nil
}

// GetChannelPanels retrieves the panels displayed below a channel's player.
func (c *Client) GetChannelPanels(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_channel_panels", url.Values{"channel": {channel}})
}

// GetViewerCard retrieves the viewer card for a user within a channel,
// including badges, relationship and moderation state.
func (c *Client) GetViewerCard(ctx context.Context, channel, username string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	if err := requireParam("username", username); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_viewer_card", url.Values{"channel": {channel}, "username": {username}})
}

// GetStreamerInfo retrieves profile and live-stream details for a streamer.
func (c *Client) GetStreamerInfo(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_streamer_info", url.Values{"channel": {channel}})
}

// GetChannelVideos retrieves the videos published by a channel.
func (c *Client) GetChannelVideos(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_channel_videos", url.Values{"channel": {channel}})
}

// GetStreamViewers retrieves the current viewer count for a live stream.
func (c *Client) GetStreamViewers(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_stream_viewers", url.Values{"channel": {channel}})
}

// GetUserID retrieves the numeric Twitch user ID behind a channel name.
func (c *Client) GetUserID(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_user_id", url.Values{"channel": {channel}})
}

// GetChannelPointsContext retrieves the channel points configuration and
// balance context for a channel.
func (c *Client) GetChannelPointsContext(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_channel_points_context", url.Values{"channel": {channel}})
}

// GetChatRestrictions retrieves the chat restriction settings of a channel,
// such as follower-only or subscriber-only mode.
func (c *Client) GetChatRestrictions(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_chat_restrictions", url.Values{"channel": {channel}})
}

// GetPinnedChat retrieves the currently pinned chat messages of a channel.
func (c *Client) GetPinnedChat(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_pinned_chat", url.Values{"channel": {channel}})
}

// GetChannelGoals retrieves the follower and subscriber goals of a channel.
func (c *Client) GetChannelGoals(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_channel_goals", url.Values{"channel": {channel}})
}

// GetChannelLeaderboards retrieves the gifter and cheerer leaderboards of
// a channel.
func (c *Client) GetChannelLeaderboards(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_channel_leaderboards", url.Values{"channel": {channel}})
}

// GetStreamTags retrieves the tags attached to a channel's stream.
func (c *Client) GetStreamTags(ctx context.Context, channel string) (json.RawMessage, error) {
	if err := requireParam("channel", channel); err != nil {
		return nil, err
	}
	return c.fetch(ctx, "get_stream_tags", url.Values{"channel": {channel}})
}
