// seed.go
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

package database

import (
	"encoding/json"
	"fmt"

	"github.com/localnerve/swipefile/data"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedTaxon struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type seedTaxonomy struct {
	Formats         []seedTaxon `json:"formats"`
	Hooks           []seedTaxon `json:"hooks"`
	Themes          []seedTaxon `json:"themes"`
	Desires         []seedTaxon `json:"desires"`
	AwarenessLevels []seedTaxon `json:"awarenessLevels"`
	Demographics    []seedTaxon `json:"demographics"`
}

// Seed inserts the embedded default taxonomy, leaving existing names alone
func Seed(db *gorm.DB) error {
	var seed seedTaxonomy
	if err := json.Unmarshal(data.SeedTaxonomy, &seed); err != nil {
		return fmt.Errorf("failed to decode seed taxonomy: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedRows(tx, seed.Formats, func(t models.Taxon) any { return &models.AdFormat{Taxon: t} }); err != nil {
			return err
		}
		if err := seedRows(tx, seed.Hooks, func(t models.Taxon) any { return &models.AdHook{Taxon: t} }); err != nil {
			return err
		}
		if err := seedRows(tx, seed.Themes, func(t models.Taxon) any { return &models.AdTheme{Taxon: t} }); err != nil {
			return err
		}
		if err := seedRows(tx, seed.Desires, func(t models.Taxon) any { return &models.AdDesire{Taxon: t} }); err != nil {
			return err
		}
		if err := seedRows(tx, seed.AwarenessLevels, func(t models.Taxon) any { return &models.AdAwarenessLevel{Taxon: t} }); err != nil {
			return err
		}
		return seedRows(tx, seed.Demographics, func(t models.Taxon) any { return &models.AdDemographic{Taxon: t} })
	})
}

func seedRows(tx *gorm.DB, rows []seedTaxon, build func(models.Taxon) any) error {
	for _, row := range rows {
		value := build(models.Taxon{Name: row.Name, Category: row.Category, Description: row.Description})
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(value).Error
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", row.Name, err)
		}
	}
	return nil
}
