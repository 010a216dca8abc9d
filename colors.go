// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ColorScheme struct {
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes for plain CLI output, set by InitializeColors.
var (
	Green = "\033[92m"
	Reset = "\033[0m"
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode guesses light or dark background from the environment
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(name))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("4"),
		Accent:      lipgloss.Color("5"),
		Success:     lipgloss.Color("2"),
		Error:       lipgloss.Color("1"),
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("39"),
		Accent:      lipgloss.Color("205"),
		Success:     lipgloss.Color("46"),
		Error:       lipgloss.Color("196"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("252"),
		TextMuted:   lipgloss.Color("243"),
	}
}

// InitializeColors picks the scheme and ANSI codes for the detected terminal.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
		Green = "\033[32m"
	} else {
		currentColorScheme = createDarkColorScheme()
		Green = "\033[92m"
	}
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// Styles holds all the styling for the explore UI
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	ActiveTab      lipgloss.Style
	InactiveTab    lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		ActiveTab: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Underline(true).
			Bold(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Padding(0, 1),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}
