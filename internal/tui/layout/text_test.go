package layout

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ANSI", "hello", "hello"},
		{"bold", "\x1b[1mhello\x1b[0m", "hello"},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"mixed", "normal \x1b[1;4mbold underline\x1b[0m normal", "normal bold underline normal"},
		{"empty", "", ""},
		{"only ANSI", "\x1b[1m\x1b[0m", ""},
		{"multiple codes", "\x1b[1m\x1b[31mred bold\x1b[0m", "red bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain text", "hello", 5},
		{"with ANSI bold", "\x1b[1mhello\x1b[0m", 5},
		{"wide characters", "こんにちは", 10},
		{"mixed ANSI and wide characters", "\x1b[1mこんにちは\x1b[0m", 10},
		{"accented", "café", 4},
		{"empty", "", 0},
		{"only ANSI", "\x1b[1m\x1b[0m", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleLength(tt.input)
			if got != tt.want {
				t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"no truncation needed", "hello", 10, "hello", false},
		{"exact length", "hello", 5, "hello", false},
		{"needs truncation", "hello world", 8, "hello...", true},
		{"very short max", "hello", 3, "...", true},
		{"max is 2", "hello", 2, "..", true},
		{"max is 1", "hello", 1, ".", true},
		{"max is 0", "hello", 0, "", true},
		{"empty string", "", 10, "", false},
		{"wide text", "こんにちは", 7, "こん...", true},
		{"wide char does not fit beside ellipsis", "こんにちは", 4, "...", true},
		{"wide no truncation", "こんにちは", 10, "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestJoinEnds(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"fits with gap", "Work", "12", 10, "Work    12"},
		{"no right pads", "Work", "", 6, "Work  "},
		{"left truncated", "Development", "3", 8, "Dev... 3"},
		{"right too wide is dropped", "Work", "1234", 5, "Work "},
		{"zero width", "Work", "1", 0, ""},
		{"wide left truncated", "开发者社区讨论组", "12", 10, "开发... 12"},
		{"wide left odd budget", "开发者社区讨论组", "1", 10, "开发...  1"},
		{"wide left fits", "开发", "3", 8, "开发   3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinEnds(tt.left, tt.right, tt.width, cfg)
			if got != tt.want {
				t.Errorf("JoinEnds(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
			}
			if w := lipgloss.Width(got); tt.width > 0 && w != tt.width {
				t.Errorf("JoinEnds(%q, %q, %d) is %d cells wide", tt.left, tt.right, tt.width, w)
			}
		})
	}
}
