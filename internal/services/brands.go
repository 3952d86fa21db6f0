// brands.go
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
	"fmt"
	"strconv"
	"strings"

	"github.com/localnerve/swipefile/internal/integrations/gdrive"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// BrandInput is the writable, non-credential part of a Brand
type BrandInput struct {
	Name               string      `json:"name" validate:"required,max=255"`
	LogoURL            string      `json:"logoUrl" validate:"omitempty,url"`
	Palette            models.JSON `json:"palette" swaggertype:"object"`
	BreakEvenROAS      float64     `json:"breakEvenRoas" validate:"min=0"`
	GoogleRootFolderID string      `json:"googleRootFolderId"`
}

// FacebookCredentials connects a brand to an ad account
type FacebookCredentials struct {
	AccessToken string `json:"accessToken" validate:"required"`
	AdAccountID string `json:"adAccountId" validate:"required"`
}

// GoogleExchange completes the Google consent flow
type GoogleExchange struct {
	Code         string `json:"code" validate:"required"`
	RootFolderID string `json:"rootFolderId"`
}

// ListBrands returns every brand by name
func ListBrands(ctx context.Context, db *gorm.DB) ([]models.Brand, error) {
	brands := []models.Brand{}
	err := silent(db).WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

// GetBrand loads one brand
func GetBrand(ctx context.Context, db *gorm.DB, id uint64) (*models.Brand, error) {
	var brand models.Brand
	if err := silent(db).WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, classify(err, "brand", id)
	}
	return &brand, nil
}

// CreateBrand creates a brand; names are unique
func CreateBrand(ctx context.Context, db *gorm.DB, in BrandInput) (*models.Brand, error) {
	brand := models.Brand{}
	if err := applyBrandInput(&brand, in); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, classify(err, "brand", brand.Name)
	}
	return &brand, nil
}

// UpdateBrand overwrites the brand profile; credentials are untouched
func UpdateBrand(ctx context.Context, db *gorm.DB, id uint64, in BrandInput) (*models.Brand, error) {
	var brand models.Brand
	if err := db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, classify(err, "brand", id)
	}
	if err := applyBrandInput(&brand, in); err != nil {
		return nil, err
	}
	err := db.WithContext(ctx).Model(&brand).
		Select("name", "logo_url", "palette", "break_even_roas", "google_root_folder_id").
		Updates(&brand).Error
	if err != nil {
		return nil, classify(err, "brand", brand.Name)
	}
	return GetBrand(ctx, db, id)
}

func applyBrandInput(brand *models.Brand, in BrandInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return invalid("name is required")
	}
	if in.BreakEvenROAS < 0 {
		return invalid("breakEvenRoas must not be negative")
	}
	brand.Name = name
	brand.LogoURL = in.LogoURL
	brand.Palette = in.Palette
	brand.BreakEvenROAS = in.BreakEvenROAS
	brand.GoogleRootFolderID = strings.TrimSpace(in.GoogleRootFolderID)
	return nil
}

// DeleteBrand removes a brand and everything it owns in one transaction.
// Ads and angles survive with their brand link cleared.
func DeleteBrand(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var brand models.Brand
		if err := tx.First(&brand, id).Error; err != nil {
			return classify(err, "brand", id)
		}

		var batchIDs []uint64
		if err := tx.Model(&models.AdBatch{}).Where("brand_id = ?", id).Pluck("id", &batchIDs).Error; err != nil {
			return err
		}
		if err := deleteBatchRows(tx, batchIDs); err != nil {
			return err
		}

		creatives := tx.Model(&models.Creative{}).Select("id").Where("brand_id = ?", id)
		if err := tx.Exec("DELETE FROM creative_tags WHERE creative_id IN (?)", creatives).Error; err != nil {
			return err
		}
		if err := tx.Where("brand_id = ?", id).Delete(&models.Creative{}).Error; err != nil {
			return err
		}

		creators := tx.Model(&models.Creator{}).Select("id").Where("brand_id = ?", id)
		if err := tx.Exec("DELETE FROM batch_creators WHERE creator_id IN (?)", creators).Error; err != nil {
			return err
		}
		for _, model := range []any{&models.Creator{}, &models.FacebookAd{}, &models.ScanJob{}} {
			if err := tx.Where("brand_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		for _, model := range []any{&models.Ad{}, &models.AdAngle{}} {
			if err := tx.Model(model).Where("brand_id = ?", id).Update("brand_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&brand).Error
	})
}

// SetFacebookCredentials stores the ad account connection of a brand
func SetFacebookCredentials(ctx context.Context, db *gorm.DB, id uint64, in FacebookCredentials) (*models.Brand, error) {
	token := strings.TrimSpace(in.AccessToken)
	account := strings.TrimPrefix(strings.TrimSpace(in.AdAccountID), "act_")
	if token == "" || account == "" {
		return nil, invalid("accessToken and adAccountId are required")
	}
	if _, err := strconv.ParseUint(account, 10, 64); err != nil {
		return nil, invalid("adAccountId %q is not numeric", in.AdAccountID)
	}

	brand, err := GetBrand(ctx, db, id)
	if err != nil {
		return nil, err
	}
	err = db.WithContext(ctx).Model(brand).Updates(map[string]any{
		"facebook_access_token":  token,
		"facebook_ad_account_id": account,
	}).Error
	if err != nil {
		return nil, err
	}
	return GetBrand(ctx, db, id)
}

// GoogleAuthURL returns the consent URL whose state carries the brand id
func GoogleAuthURL(ctx context.Context, db *gorm.DB, google GoogleAuth, id uint64) (string, error) {
	if google == nil {
		return "", fmt.Errorf("%w: google oauth client is not configured", ErrNotConnected)
	}
	if _, err := GetBrand(ctx, db, id); err != nil {
		return "", err
	}
	return google.AuthURL(strconv.FormatUint(id, 10)), nil
}

// ExchangeGoogleCode stores the refresh token obtained from code
func ExchangeGoogleCode(ctx context.Context, db *gorm.DB, google GoogleAuth, id uint64, in GoogleExchange) (*models.Brand, error) {
	if google == nil {
		return nil, fmt.Errorf("%w: google oauth client is not configured", ErrNotConnected)
	}
	brand, err := GetBrand(ctx, db, id)
	if err != nil {
		return nil, err
	}
	refreshToken, err := google.Exchange(ctx, strings.TrimSpace(in.Code))
	if err != nil {
		return nil, upstream("google oauth", err)
	}

	updates := map[string]any{"google_refresh_token": refreshToken}
	if root := strings.TrimSpace(in.RootFolderID); root != "" {
		updates["google_root_folder_id"] = root
	}
	if err := db.WithContext(ctx).Model(brand).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetBrand(ctx, db, id)
}

// brandDrive opens the Drive client of a connected brand
func brandDrive(ctx context.Context, db *gorm.DB, google GoogleAuth, brandID uint64) (DriveClient, *models.Brand, error) {
	if google == nil {
		return nil, nil, fmt.Errorf("%w: google oauth client is not configured", ErrNotConnected)
	}
	brand, err := GetBrand(ctx, db, brandID)
	if err != nil {
		return nil, nil, err
	}
	if brand.GoogleRefreshToken == "" {
		return nil, nil, fmt.Errorf("%w: brand %d has no google connection", ErrNotConnected, brandID)
	}
	client, err := google.Drive(ctx, brand.GoogleRefreshToken)
	if err != nil {
		return nil, nil, upstream("google drive", err)
	}
	return client, brand, nil
}

// ListDriveFolder lists one folder of the brand's Drive, defaulting to the root folder
func ListDriveFolder(ctx context.Context, db *gorm.DB, google GoogleAuth, brandID uint64, folderID string) ([]gdrive.File, error) {
	client, brand, err := brandDrive(ctx, db, google, brandID)
	if err != nil {
		return nil, err
	}
	if folderID == "" {
		folderID = brand.GoogleRootFolderID
	}
	if folderID == "" {
		return nil, invalid("folderId is required when the brand has no root folder")
	}
	files, err := client.ListFolder(ctx, folderID)
	if err != nil {
		return nil, upstream("google drive", err)
	}
	if files == nil {
		files = []gdrive.File{}
	}
	return files, nil
}
