package model

import (
	"fmt"
	"strings"
)

// Theme is the two-valued colour scheme of the UI. It lives in memory only.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps "light"/"dark" (any case) to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q", s)
}
