// main.go
//
// A marketing swipe file, creative production pipeline and ad attribution service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of swipefile.
// swipefile is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// swipefile is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with swipefile.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/database"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/services"
)

func main() {
	file := flag.String("f", "", "saved ad library export (HTML)")
	name := flag.String("name", "", "import run name, defaults to the file name")
	brandID := flag.Uint64("brand", 0, "assign the imported ads to this brand")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{Mode: cfg.LogMode, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log, *file, *name, *brandID); err != nil {
		log.Error("Import failed", "file", *file, "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger, path, name string, brandID uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	db, err := database.Connect(cfg, log)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	opts := services.ImportOptions{Name: name}
	if opts.Name == "" {
		opts.Name = filepath.Base(path)
	}
	if brandID != 0 {
		opts.BrandID = &brandID
	}

	result, err := services.ImportAds(context.Background(), db, log, opts, f)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
