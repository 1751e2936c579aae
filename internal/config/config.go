package config

import (
	"encoding/json"
	"os"
	"sync"
)

// Config holds application configuration
type Config struct {
	// Window geometry and title
	Window Window `json:"window"`

	// Rendering parameters
	Rendering Rendering `json:"rendering"`
}

// Window contains window creation parameters
type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// Rendering contains presentation parameters
type Rendering struct {
	// VSync synchronizes buffer swaps with the display refresh
	VSync bool `json:"vsync"`

	// ShowFPS appends the measured frame rate to the window title
	ShowFPS bool `json:"show_fps"`
}

var (
	instance *Config
	once     sync.Once
	mu       sync.RWMutex
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Two Quads One Shader Effect",
		},
		Rendering: Rendering{
			VSync:   true,
			ShowFPS: true,
		},
	}
}

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		if instance == nil {
			instance = DefaultConfig()
			// Try to load from file
			if data, err := os.ReadFile("config.json"); err == nil {
				json.Unmarshal(data, instance)
			}
		}
	})
	return instance
}

// Load loads configuration from a file
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		instance = DefaultConfig()
	}

	return json.Unmarshal(data, instance)
}

// Save saves configuration to a file
func Save(path string) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		instance = DefaultConfig()
	}

	data, err := json.MarshalIndent(instance, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
