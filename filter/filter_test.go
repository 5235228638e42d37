package filter

import (
	"errors"
	"strings"
	"testing"

	"github.com/s0up4200/twitchlens/analytics"
)

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Live && Viewers > 1000`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:        "whitespace only",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `contains("unclosed`,
			wantErr:    true,
		},
		{
			name:       "status helpers",
			expression: `playing("fortnite") || titleContains("drops")`,
			wantErr:    false,
		},
		{
			name:       "complex expression",
			expression: `Live && contains(Game, "fort") && Viewers >= 500 && !Failed`,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errContains != "" && !contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if filter == nil {
				t.Errorf("expected filter but got nil")
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	live := analytics.ChannelStatus{
		Channel:     "ninja",
		DisplayName: "Ninja",
		Description: "Professional gamer and streamer.",
		Live:        true,
		Title:       "Friday Fortnite!",
		Game:        "Fortnite",
		Viewers:     41231,
	}
	offline := analytics.ChannelStatus{
		Channel:     "shroud",
		DisplayName: "shroud",
		Description: "Variety FPS streamer.",
	}
	failed := analytics.ChannelStatus{
		Channel: "gone_channel",
		Err:     errors.New("channel not found"),
	}

	tests := []struct {
		name       string
		expression string
		status     analytics.ChannelStatus
		expected   bool
	}{
		{
			name:       "live channel",
			expression: `Live`,
			status:     live,
			expected:   true,
		},
		{
			name:       "offline channel",
			expression: `Live`,
			status:     offline,
			expected:   false,
		},
		{
			name:       "viewer threshold met",
			expression: `Viewers > 1000`,
			status:     live,
			expected:   true,
		},
		{
			name:       "viewer threshold not met",
			expression: `Viewers > 100000`,
			status:     live,
			expected:   false,
		},
		{
			name:       "game contains",
			expression: `contains(Game, "fort")`,
			status:     live,
			expected:   true,
		},
		{
			name:       "playing helper",
			expression: `playing("fortnite")`,
			status:     live,
			expected:   true,
		},
		{
			name:       "playing helper requires live",
			expression: `playing("fortnite")`,
			status:     offline,
			expected:   false,
		},
		{
			name:       "title contains helper",
			expression: `titleContains("friday")`,
			status:     live,
			expected:   true,
		},
		{
			name:       "failed lookup",
			expression: `Failed`,
			status:     failed,
			expected:   true,
		},
		{
			name:       "exclude failed rows",
			expression: `!Failed && Live`,
			status:     failed,
			expected:   false,
		},
		{
			name:       "case insensitive contains",
			expression: `contains(DisplayName, "NINJA")`,
			status:     live,
			expected:   true,
		},
		{
			name:       "complex expression",
			expression: `Live && Viewers > 1000 && playing("Fortnite")`,
			status:     live,
			expected:   true,
		},
		{
			name:       "non-boolean result",
			expression: `Viewers`,
			status:     live,
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile filter: %v", err)
			}

			result := filter.Evaluate(tt.status)
			if result != tt.expected {
				t.Errorf("expected %v but got %v for expression %q", tt.expected, result, tt.expression)
			}
		})
	}
}

func TestCreateFilter(t *testing.T) {
	predicate, err := CreateFilter(`Live && Viewers >= 100`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !predicate(analytics.ChannelStatus{Channel: "ninja", Live: true, Viewers: 250}) {
		t.Errorf("expected predicate to match live channel")
	}
	if predicate(analytics.ChannelStatus{Channel: "shroud"}) {
		t.Errorf("expected predicate to reject offline channel")
	}

	_, err = CreateFilter("")
	var compErr *CompilationError
	if !errors.As(err, &compErr) {
		t.Errorf("expected CompilationError but got %T", err)
	}
}

func TestApply(t *testing.T) {
	filter, err := CompileFilter(`Live`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	statuses := []analytics.ChannelStatus{
		{Channel: "ninja", Live: true},
		{Channel: "shroud"},
		{Channel: "pokimane", Live: true},
	}

	matches := Apply(filter, statuses)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches but got %d", len(matches))
	}
	if matches[0].Channel != "ninja" || matches[1].Channel != "pokimane" {
		t.Errorf("expected input order to be preserved, got %q and %q", matches[0].Channel, matches[1].Channel)
	}
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))
	cachingCompiler, ok := compiler.(CachingCompiler)
	if !ok {
		t.Fatal("expected compiler to support caching")
	}

	// Compiling the same expression twice caches a single entry
	if _, err := compiler.Compile(`Live`); err != nil {
		t.Fatalf("first compilation failed: %v", err)
	}
	if _, err := compiler.Compile(`Live`); err != nil {
		t.Fatalf("second compilation failed: %v", err)
	}
	if cachingCompiler.Size() != 1 {
		t.Errorf("expected cache size 1 but got %d", cachingCompiler.Size())
	}

	// A third distinct expression evicts the oldest entry
	if _, err := compiler.Compile(`Viewers > 10`); err != nil {
		t.Fatalf("compilation failed: %v", err)
	}
	if _, err := compiler.Compile(`Failed`); err != nil {
		t.Fatalf("compilation failed: %v", err)
	}
	if cachingCompiler.Size() != 2 {
		t.Errorf("expected cache size capped at 2 but got %d", cachingCompiler.Size())
	}

	cachingCompiler.Clear()
	if cachingCompiler.Size() != 0 {
		t.Errorf("expected cache size 0 after clear but got %d", cachingCompiler.Size())
	}
}

// Helper function
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
