// taxonomy.go
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

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/swipefile/internal/database"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// TaxonPtr constrains the pointer types of the taxonomy models
type TaxonPtr[T any] interface {
	*T
	models.Taxonomy
}

// TaxonInput is the writable part of a taxonomy row
type TaxonInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Category    string `json:"category" validate:"max=255"`
	Description string `json:"description"`
}

func taxonTable[T any, P TaxonPtr[T]]() string {
	var zero T
	return P(&zero).TableName()
}

// ListTaxa returns every row of one taxonomy, optionally filtered by name
func ListTaxa[T any, P TaxonPtr[T]](ctx context.Context, db *gorm.DB, q string) ([]T, error) {
	rows := []T{}
	query := silent(db).WithContext(ctx).Order("name ASC")
	if q = strings.TrimSpace(q); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	err := query.Find(&rows).Error
	return rows, err
}

// GetTaxon loads one taxonomy row
func GetTaxon[T any, P TaxonPtr[T]](ctx context.Context, db *gorm.DB, id uint64) (*T, error) {
	var row T
	if err := silent(db).WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, classify(err, taxonTable[T, P](), id)
	}
	return &row, nil
}

// QuickAddTaxon finds a row by its unique name or creates it.
// created reports whether a new row was written.
func QuickAddTaxon[T any, P TaxonPtr[T]](ctx context.Context, db *gorm.DB, in TaxonInput) (row *T, created bool, err error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, false, invalid("name is required")
	}
	db = db.WithContext(ctx)

	found, err := findTaxonByName[T, P](db, name)
	if err != nil || found != nil {
		return found, false, err
	}

	var value T
	base := P(&value).Base()
	base.Name = name
	base.Category = strings.TrimSpace(in.Category)
	base.Description = in.Description
	if err := db.Create(P(&value)).Error; err != nil {
		if database.IsDuplicate(err) {
			// lost a race with another quick add
			found, ferr := findTaxonByName[T, P](db, name)
			if ferr == nil && found != nil {
				return found, false, nil
			}
		}
		return nil, false, classify(err, taxonTable[T, P](), name)
	}
	return &value, true, nil
}

func findTaxonByName[T any, P TaxonPtr[T]](db *gorm.DB, name string) (*T, error) {
	var row T
	err := db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateTaxon renames or re-describes a taxonomy row
func UpdateTaxon[T any, P TaxonPtr[T]](ctx context.Context, db *gorm.DB, id uint64, in TaxonInput) (*T, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}

	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, classify(err, taxonTable[T, P](), id)
	}
	base := P(&row).Base()
	base.Name = name
	base.Category = strings.TrimSpace(in.Category)
	base.Description = in.Description

	if err := db.WithContext(ctx).Save(P(&row)).Error; err != nil {
		return nil, classify(err, taxonTable[T, P](), name)
	}
	return &row, nil
}

// DeleteTaxon removes a taxonomy row, nulling optional references.
// A required reference from an angle refuses the delete.
func DeleteTaxon[T any, P TaxonPtr[T]](ctx context.Context, db *gorm.DB, id uint64) error {
	table := taxonTable[T, P]()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, id).Error; err != nil {
			return classify(err, table, id)
		}

		refs := P(&row).References()
		for _, ref := range refs {
			if !ref.Required {
				continue
			}
			var count int64
			if err := tx.Table(ref.Table).Where(ref.Column+" = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return conflict("%s %d is used by %d %s", table, id, count, ref.Table)
			}
		}
		for _, ref := range refs {
			if ref.Required {
				continue
			}
			if err := tx.Table(ref.Table).Where(ref.Column+" = ?", id).Update(ref.Column, nil).Error; err != nil {
				return err
			}
		}

		return tx.Delete(P(&row)).Error
	})
}

// FindCopycatFormat returns the reserved copycat format, creating it when missing
func FindCopycatFormat(ctx context.Context, db *gorm.DB, name string) (*models.AdFormat, error) {
	format, _, err := QuickAddTaxon[models.AdFormat](ctx, db, TaxonInput{Name: name, Category: "Direct Response"})
	return format, err
}
