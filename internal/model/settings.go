package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidProvider = errors.New("model: invalid ai provider")

type AIProvider string

const (
	ProviderGemini AIProvider = "gemini"
	ProviderOpenAI AIProvider = "openai"
	ProviderCustom AIProvider = "custom"
)

func (p AIProvider) IsValid() bool {
	switch p {
	case ProviderGemini, ProviderOpenAI, ProviderCustom:
		return true
	default:
		return false
	}
}

// ThemeColors lists the five named palettes the UI can render.
var ThemeColors = []string{"sage", "clay", "ocean", "sand", "rose"}

func IsThemeColor(name string) bool {
	for _, c := range ThemeColors {
		if c == name {
			return true
		}
	}
	return false
}

// Settings is the process-wide configuration. Loading always merges the
// stored blob over DefaultSettings so fields added after the data was written
// still come back with a usable value.
type Settings struct {
	ThemeColor         string     `json:"themeColor"`
	IsDetailMode       bool       `json:"isDetailMode"`
	IsDarkMode         bool       `json:"isDarkMode"`
	BrainClockInterval int        `json:"brainClockInterval"`
	UserName           string     `json:"userName"`
	AIProvider         AIProvider `json:"aiProvider"`
	AIAPIKey           string     `json:"aiApiKey"`
	AIBaseURL          string     `json:"aiBaseUrl"`
	AIModel            string     `json:"aiModel"`
}

func DefaultSettings() Settings {
	return Settings{
		ThemeColor:         "sage",
		IsDetailMode:       true,
		IsDarkMode:         false,
		BrainClockInterval: 30,
		UserName:           "User",
		AIProvider:         ProviderGemini,
		AIAPIKey:           "",
		AIBaseURL:          "https://api.openai.com/v1",
		AIModel:            "gemini-2.5-flash-latest",
	}
}

func (s Settings) Validate() error {
	if !s.AIProvider.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProvider, s.AIProvider)
	}
	if s.AIProvider != ProviderGemini && strings.TrimSpace(s.AIBaseURL) == "" {
		return errors.New("model: ai base url is required for openai/custom providers")
	}
	return nil
}
