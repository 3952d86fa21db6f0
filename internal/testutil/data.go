// data.go
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

package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// CreateBrand creates a brand with the given name
func CreateBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{Name: name, BreakEvenROAS: 1.5}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("Failed to create brand: %v", err)
	}
	return brand
}

// CreateAngle creates an angle wired to the first seeded row of each required taxonomy
func CreateAngle(t *testing.T, db *gorm.DB, name string) *models.AdAngle {
	t.Helper()
	var (
		desire      models.AdDesire
		theme       models.AdTheme
		demographic models.AdDemographic
		awareness   models.AdAwarenessLevel
	)
	for _, dest := range []any{&desire, &theme, &demographic, &awareness} {
		if err := db.Order("id").First(dest).Error; err != nil {
			t.Fatalf("Failed to find seeded taxonomy: %v", err)
		}
	}

	angle := &models.AdAngle{
		Name:             name,
		DesireID:         desire.ID,
		ThemeID:          theme.ID,
		DemographicID:    demographic.ID,
		AwarenessLevelID: awareness.ID,
	}
	if err := db.Create(angle).Error; err != nil {
		t.Fatalf("Failed to create angle: %v", err)
	}
	return angle
}

// CreateHook creates a hook with the given name
func CreateHook(t *testing.T, db *gorm.DB, name string) *models.AdHook {
	t.Helper()
	hook := &models.AdHook{Taxon: models.Taxon{Name: name}}
	if err := db.Create(hook).Error; err != nil {
		t.Fatalf("Failed to create hook: %v", err)
	}
	return hook
}

// CreateAd creates a competitor ad with an optional hook
func CreateAd(t *testing.T, db *gorm.DB, postID string, hookID *uint64) *models.Ad {
	t.Helper()
	now := time.Now().UTC()
	ad := &models.Ad{
		PostID:         postID,
		AdvertiserName: "Competitor",
		Headline:       fmt.Sprintf("Headline %s", postID),
		FirstSeen:      now,
		LastSeen:       now,
		HookID:         hookID,
	}
	if err := db.Create(ad).Error; err != nil {
		t.Fatalf("Failed to create ad: %v", err)
	}
	return ad
}

// CreateBatch creates a batch of the given type on angle
func CreateBatch(t *testing.T, db *gorm.DB, name string, batchType models.BatchType, angleID uint64, referenceAdID *uint64) *models.AdBatch {
	t.Helper()
	batch := &models.AdBatch{
		Name:          name,
		Status:        models.StatusIdeation,
		BatchType:     batchType,
		AngleID:       angleID,
		ReferenceAdID: referenceAdID,
	}
	if err := db.Create(batch).Error; err != nil {
		t.Fatalf("Failed to create batch: %v", err)
	}
	return batch
}

// CreateCreator creates a creator under brand
func CreateCreator(t *testing.T, db *gorm.DB, brandID uint64, name, email string) *models.Creator {
	t.Helper()
	creator := &models.Creator{BrandID: brandID, Name: name, Email: email, Status: models.CreatorActive}
	if err := db.Create(creator).Error; err != nil {
		t.Fatalf("Failed to create creator: %v", err)
	}
	return creator
}

// CreateCreative creates a creative carrying the given legacy tag names
func CreateCreative(t *testing.T, db *gorm.DB, brandID uint64, name string, tags ...string) *models.Creative {
	t.Helper()
	creative := &models.Creative{BrandID: brandID, Name: name, Type: models.CreativeVideo}
	if err := db.Create(creative).Error; err != nil {
		t.Fatalf("Failed to create creative: %v", err)
	}
	for _, name := range tags {
		tag := models.ParseTag(name)
		if err := db.Where("kind = ? AND label = ?", tag.Kind, tag.Label).FirstOrCreate(&tag).Error; err != nil {
			t.Fatalf("Failed to create tag %s: %v", name, err)
		}
		if err := db.Model(creative).Association("Tags").Append(&tag); err != nil {
			t.Fatalf("Failed to associate tag %s: %v", name, err)
		}
	}
	return creative
}
