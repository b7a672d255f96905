/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in
// the user scope. Environment variables are treated as read-only overrides
// at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type GeneralConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark" (informational for now)
}

// DiagramConfig tunes the interactive diagram. The defaults match the
// documented behavior; they exist so users on unusual displays can adjust.
type DiagramConfig struct {
	WidthPx       int     `yaml:"width_px"`        // raster width for exports
	LabelMinPx    float64 `yaml:"label_min_px"`    // gap-label suppression threshold
	WheelZoomStep float64 `yaml:"wheel_zoom_step"` // scale change per wheel deltaY unit
}

type ExportConfig struct {
	PageSize string `yaml:"page_size"` // "A4" or "Letter"
	DPI      int    `yaml:"dpi"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Diagram       DiagramConfig `yaml:"diagram"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Theme: "system"},
		Diagram:       DiagramConfig{WidthPx: 1200, LabelMinPx: 25, WheelZoomStep: 0.01},
		Export:        ExportConfig{PageSize: "A4", DPI: 150},
		Logging:       LoggingConfig{Level: "info", Format: "console", File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvDiagramWidth  = "WSP_DIAGRAM_WIDTH"
	EnvLabelMinPx    = "WSP_LABEL_MIN_PX"
	EnvWheelZoomStep = "WSP_WHEEL_ZOOM_STEP"
	EnvExportPage    = "WSP_EXPORT_PAGE"
	EnvExportDPI     = "WSP_EXPORT_DPI"
	// Logging envs are read directly by the log package as well.
	EnvLogLevel  = "WSP_LOG_LEVEL"
	EnvLogFormat = "WSP_LOG_FORMAT"
	EnvLogFile   = "WSP_LOG_FILE"
)

const fileName = "config.yaml"

// Dir returns the user-scope configuration directory for the app.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "wallspacer"), nil
}

// Path returns the full path of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file, applies defaults for missing fields and env
// overrides on top. A missing file is not an error: defaults are returned.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config: %w", err)
	}
	normalize(&cfg)
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config to the user scope, creating the directory if needed.
// Env overrides are runtime-only and are never written back.
func Save(cfg AppConfig) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, fileName), data, 0o644)
}

// normalize repairs out-of-range values instead of failing the load.
func normalize(cfg *AppConfig) {
	def := Defaults()
	if cfg.ConfigVersion <= 0 {
		cfg.ConfigVersion = def.ConfigVersion
	}
	if cfg.Diagram.WidthPx < 200 {
		cfg.Diagram.WidthPx = def.Diagram.WidthPx
	}
	if cfg.Diagram.LabelMinPx <= 0 {
		cfg.Diagram.LabelMinPx = def.Diagram.LabelMinPx
	}
	if cfg.Diagram.WheelZoomStep <= 0 {
		cfg.Diagram.WheelZoomStep = def.Diagram.WheelZoomStep
	}
	switch strings.ToUpper(strings.TrimSpace(cfg.Export.PageSize)) {
	case "A4", "LETTER":
	default:
		cfg.Export.PageSize = def.Export.PageSize
	}
	if cfg.Export.DPI <= 0 {
		cfg.Export.DPI = def.Export.DPI
	}
}

func applyEnv(cfg *AppConfig) {
	if v, ok := envInt(EnvDiagramWidth); ok && v >= 200 {
		cfg.Diagram.WidthPx = v
	}
	if v, ok := envFloat(EnvLabelMinPx); ok && v > 0 {
		cfg.Diagram.LabelMinPx = v
	}
	if v, ok := envFloat(EnvWheelZoomStep); ok && v > 0 {
		cfg.Diagram.WheelZoomStep = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPage)); v != "" {
		cfg.Export.PageSize = v
	}
	if v, ok := envInt(EnvExportDPI); ok && v > 0 {
		cfg.Export.DPI = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	normalize(cfg)
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(key string) (float64, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
