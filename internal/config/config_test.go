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
	"runtime"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.ConfigVersion != 1 {
		t.Fatalf("unexpected config version: %d", cfg.ConfigVersion)
	}
	if cfg.Diagram.LabelMinPx != 25 || cfg.Diagram.WheelZoomStep != 0.01 {
		t.Fatalf("unexpected diagram defaults: %+v", cfg.Diagram)
	}
	if cfg.Export.PageSize != "A4" || cfg.Export.DPI != 150 {
		t.Fatalf("unexpected export defaults: %+v", cfg.Export)
	}
}

func TestNormalizeRepairsBadValues(t *testing.T) {
	cfg := AppConfig{
		Diagram: DiagramConfig{WidthPx: 10, LabelMinPx: -3, WheelZoomStep: 0},
		Export:  ExportConfig{PageSize: "tabloid", DPI: -1},
	}
	normalize(&cfg)
	def := Defaults()
	if cfg.Diagram != def.Diagram {
		t.Fatalf("diagram not repaired: %+v", cfg.Diagram)
	}
	if cfg.Export != def.Export {
		t.Fatalf("export not repaired: %+v", cfg.Export)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvDiagramWidth, "1600")
	t.Setenv(EnvLabelMinPx, "30")
	t.Setenv(EnvExportPage, "Letter")
	t.Setenv(EnvLogLevel, "debug")
	cfg := Defaults()
	applyEnv(&cfg)
	if cfg.Diagram.WidthPx != 1600 || cfg.Diagram.LabelMinPx != 30 {
		t.Fatalf("diagram overrides not applied: %+v", cfg.Diagram)
	}
	if cfg.Export.PageSize != "Letter" || cfg.Logging.Level != "debug" {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Export, cfg.Logging)
	}
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvDiagramWidth, "wide")
	t.Setenv(EnvWheelZoomStep, "-1")
	cfg := Defaults()
	applyEnv(&cfg)
	if cfg.Diagram != Defaults().Diagram {
		t.Fatalf("garbage env values mutated config: %+v", cfg.Diagram)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME redirect is linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := Defaults()
	cfg.General.Theme = "dark"
	cfg.Export.DPI = 300
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General.Theme != "dark" || got.Export.DPI != 300 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME redirect is linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != Defaults() {
		t.Fatalf("missing file should yield defaults, got %+v", got)
	}
}
