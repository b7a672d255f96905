/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wallspacer/internal/config"
	"wallspacer/internal/crash"
	"wallspacer/internal/export"
	"wallspacer/internal/layout"
	applog "wallspacer/internal/log"
	"wallspacer/internal/report"
	"wallspacer/internal/ui"
	"wallspacer/internal/version"
)

func usage() {
	fmt.Println("Wall Spacer — object spacing calculator")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wallspacer version|-v|--version                     Show version")
	fmt.Println("  wallspacer calc <wall> <count> <width> [<spacing>]   Print the placement report")
	fmt.Println("  wallspacer export <wall> <count> <width> <spacing> <out.pdf|out.png>")
	fmt.Println("                                                      Export the placement (spacing may be \"\")")
	fmt.Println("  wallspacer ui                                        Launch desktop UI (build with -tags fyne)")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer crash.Recover()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Wall Spacer — object spacing calculator")
			fmt.Println(version.String())
			return
		case "calc":
			if len(args) < 5 {
				fmt.Println("calc requires <wall> <count> <width> and optionally <spacing>")
				usage()
				os.Exit(2)
			}
			spacing := ""
			if len(args) > 5 {
				spacing = args[5]
			}
			res, _, err := compute(l, args[2], args[3], args[4], spacing)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Print(report.Text(res))
			return
		case "export":
			if len(args) < 7 {
				fmt.Println("export requires <wall> <count> <width> <spacing> <out.pdf|out.png>")
				usage()
				os.Exit(2)
			}
			res, req, err := compute(l, args[2], args[3], args[4], args[5])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if err := runExport(l, res, req, args[6]); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote", args[6])
			return
		case "ui":
			if err := ui.Run(); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func compute(l *slog.Logger, wall, count, width, spacing string) (*layout.Result, layout.Request, error) {
	req, err := layout.ParseRequest(wall, count, width, spacing)
	if err != nil {
		return nil, layout.Request{}, err
	}
	res, err := layout.Compute(req)
	if err != nil {
		return nil, layout.Request{}, err
	}
	l.Info("layout computed", slog.String("mode", string(res.Mode)), slog.Int("objects", len(res.Objects)))
	return res, req, nil
}

func runExport(l *slog.Logger, res *layout.Result, req layout.Request, out string) error {
	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	op := applog.WithOperation(l, "export")
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		err = export.WritePNG(res, out, export.PNGOptions{WidthPx: cfg.Diagram.WidthPx})
	case ".pdf":
		err = export.WritePDF(res, req, out, export.PDFOptions{
			PageSize: cfg.Export.PageSize,
			WidthPx:  cfg.Diagram.WidthPx,
		})
	default:
		return fmt.Errorf("unsupported export format %q (use .pdf or .png)", filepath.Ext(out))
	}
	if err != nil {
		op.Error("export failed", slog.Any("err", err))
		return err
	}
	op.Info("export done", slog.String("path", out))
	return nil
}
