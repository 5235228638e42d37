// Package twitchapi provides a client for the Twitch API gateway on RapidAPI.
//
// The gateway exposes read-only Twitch channel data (streamer profiles,
// videos, panels, goals, leaderboards, chat state) behind a single host.
// This package implements a thin, idiomatic Go client for those lookups.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client; every lookup funnels through one fetch path
//   - API: Interface definition for testability and modularity
//   - Errors: Structured error types for each failure class
//   - Options: Builder-style configuration for timeout, transport and debugging
//
// # Usage
//
// Create a new client with your RapidAPI key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := twitchapi.NewClient(
//		"your-rapidapi-key",
//		logger,
//		twitchapi.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Look up a streamer
//	ctx := context.Background()
//	info, err := client.GetStreamerInfo(ctx, "ninja")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Payloads come back as json.RawMessage, byte for byte as the gateway
// produced them. The client verifies the body is valid JSON and otherwise
// leaves interpretation to the caller; there is no caching, retrying or
// pagination.
//
// # Error Handling
//
// The package defines one error type per failure class:
//
//   - ConfigError: The client was built with unusable settings
//   - ValidationError: A lookup parameter was blank; nothing was sent
//   - APIError: The request failed in transit or the gateway answered non-2xx
//   - DecodeError: The gateway reported success but the body was not JSON
//
// APIError includes helper methods for classification:
//
//	var apiErr *twitchapi.APIError
//	if errors.As(err, &apiErr) {
//		if apiErr.IsRateLimited() {
//			// Back off before the next lookup
//		}
//	}
package twitchapi
