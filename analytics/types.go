package analytics

import (
	"encoding/json"
)

// Section identifies one optional block of a channel report.
type Section string

// Report sections, fetched alongside the streamer profile.
const (
	SectionUserID        Section = "user_id"
	SectionVideos        Section = "videos"
	SectionPanels        Section = "panels"
	SectionGoals         Section = "goals"
	SectionLeaderboards  Section = "leaderboards"
	SectionRestrictions  Section = "chat_restrictions"
	SectionPinnedChat    Section = "pinned_chat"
	SectionPointsContext Section = "channel_points"
	SectionStreamTags    Section = "stream_tags"
)

// ChannelStatus summarizes the live state of a single channel. It is the
// row type used by comparisons and by filter expressions.
type ChannelStatus struct {
	Channel     string
	DisplayName string
	Description string
	Live        bool
	Title       string
	Game        string
	Viewers     int64
	Err         error
}

// Failed reports whether the status row stands in for a lookup that
// could not be completed.
func (s ChannelStatus) Failed() bool {
	return s.Err != nil
}

// Report bundles everything known about one channel. Status is derived
// from the streamer profile; the optional sections hold raw gateway
// payloads, with per-section failures recorded instead of aborting the
// whole report.
type Report struct {
	Channel      string
	Status       ChannelStatus
	StreamerInfo json.RawMessage
	UserID       string
	Sections     map[Section]json.RawMessage
	Errors       map[Section]error
}

// EndpointCheck is the outcome of one endpoint probe.
type EndpointCheck struct {
	Name    string
	Skipped bool
	Err     error
}

// OK reports whether the probe completed without error.
func (c EndpointCheck) OK() bool {
	return !c.Skipped && c.Err == nil
}

// streamerInfo mirrors the slice of the streamer profile payload that
// status rows are built from. Everything else in the payload is ignored
// here and passed through untouched on the report.
type streamerInfo struct {
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Description string `json:"description"`
		Stream      *struct {
			Title        string `json:"title"`
			ViewersCount int64  `json:"viewersCount"`
			Game         *struct {
				Name string `json:"name"`
			} `json:"game"`
		} `json:"stream"`
	} `json:"user"`
}

// userIDPayload mirrors the user ID lookup response.
type userIDPayload struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// StatusFromPayload derives a status row from a raw streamer profile
// payload. Payloads without the expected shape produce an offline row
// that falls back to the channel name.
func StatusFromPayload(channel string, payload json.RawMessage) ChannelStatus {
	status := ChannelStatus{
		Channel:     channel,
		DisplayName: channel,
	}

	var info streamerInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return status
	}

	if info.User.DisplayName != "" {
		status.DisplayName = info.User.DisplayName
	}
	status.Description = info.User.Description

	if stream := info.User.Stream; stream != nil {
		status.Live = true
		status.Title = stream.Title
		status.Viewers = stream.ViewersCount
		if stream.Game != nil {
			status.Game = stream.Game.Name
		}
	}

	return status
}

// userIDFromPayload extracts the numeric user ID from a user ID lookup
// payload, or returns an empty string when the payload has no ID.
func userIDFromPayload(payload json.RawMessage) string {
	if len(payload) == 0 {
		return ""
	}

	var parsed userIDPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return ""
	}

	return parsed.User.ID
}
