// ai.go
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
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// maxTranscribeBytes is the upload limit of the transcription endpoint
const maxTranscribeBytes = 25 << 20

const copywriterSystem = "You are a direct response creative strategist writing for paid social video ads. " +
	"Be concrete, use plain language and keep every line filmable."

// VariationProposal is one AI suggested variation
type VariationProposal struct {
	Hook              string `json:"hook"`
	Script            string `json:"script"`
	Notes             string `json:"notes"`
	RequestedDuration int    `json:"requestedDuration"`
}

// VariationResult carries the stored proposals and any items created from them
type VariationResult struct {
	Variations []VariationProposal `json:"variations"`
	Items      []models.BatchItem  `json:"items"`
}

type briefResponse struct {
	Brief        string `json:"brief"`
	CreatorBrief string `json:"creatorBrief"`
}

type variationResponse struct {
	Variations []VariationProposal `json:"variations"`
}

func requireAI(ai Generator) error {
	if ai == nil {
		return fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrNotConnected)
	}
	return nil
}

func describeAngle(angle *models.AdAngle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Angle: %s\n", angle.Name)
	if angle.Desire != nil {
		fmt.Fprintf(&b, "Desire: %s\n", angle.Desire.Name)
	}
	if angle.Theme != nil {
		fmt.Fprintf(&b, "Theme: %s\n", angle.Theme.Name)
	}
	if angle.Demographic != nil {
		fmt.Fprintf(&b, "Demographic: %s\n", angle.Demographic.Name)
	}
	if angle.AwarenessLevel != nil {
		fmt.Fprintf(&b, "Awareness level: %s\n", angle.AwarenessLevel.Name)
	}
	return b.String()
}

func describeBatch(batch *BatchDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch: %s (%s)\n", batch.Name, batch.BatchType)
	if batch.Angle != nil {
		b.WriteString(describeAngle(batch.Angle))
	}
	if batch.Idea != "" {
		fmt.Fprintf(&b, "Idea: %s\n", batch.Idea)
	}
	if batch.MainMessaging != "" {
		fmt.Fprintf(&b, "Main messaging: %s\n", batch.MainMessaging)
	}
	if ad := batch.ReferenceAd; ad != nil {
		fmt.Fprintf(&b, "Reference ad headline: %s\n", ad.Headline)
		fmt.Fprintf(&b, "Reference ad text: %s\n", ad.Description)
		if ad.Transcript != "" {
			fmt.Fprintf(&b, "Reference ad transcript: %s\n", ad.Transcript)
		}
	}
	return b.String()
}

// GenerateConceptDoc writes a concept document for an angle
func GenerateConceptDoc(ctx context.Context, db *gorm.DB, ai Generator, angleID uint64) (*models.AdAngle, error) {
	if err := requireAI(ai); err != nil {
		return nil, err
	}
	angle, err := GetAngle(ctx, db, angleID)
	if err != nil {
		return nil, err
	}

	prompt := "Write a one page concept document for this ad angle: the core promise, " +
		"the main objection to overcome, three hook ideas and proof points to show on camera.\n\n" +
		describeAngle(angle)
	doc, err := ai.GenerateText(ctx, copywriterSystem, prompt)
	if err != nil {
		return nil, upstream("openai", err)
	}

	if err := db.WithContext(ctx).Model(angle).UpdateColumn("concept_doc", doc).Error; err != nil {
		return nil, err
	}
	return GetAngle(ctx, db, angleID)
}

// GenerateBrief writes the editor brief and the creator brief of a batch
func GenerateBrief(ctx context.Context, db *gorm.DB, ai Generator, batchID uint64) (*BatchDetail, error) {
	if err := requireAI(ai); err != nil {
		return nil, err
	}
	batch, err := GetBatch(ctx, db, batchID)
	if err != nil {
		return nil, err
	}

	prompt := "Write a production brief for the editor and a separate brief for the UGC creator. " +
		`Answer with a JSON object {"brief": string, "creatorBrief": string}.` + "\n\n" + describeBatch(batch)
	var out briefResponse
	if err := ai.GenerateJSON(ctx, copywriterSystem, prompt, &out); err != nil {
		return nil, upstream("openai", err)
	}
	if strings.TrimSpace(out.Brief) == "" && strings.TrimSpace(out.CreatorBrief) == "" {
		return nil, upstream("openai", fmt.Errorf("empty brief"))
	}

	err = db.WithContext(ctx).Model(&models.AdBatch{ID: batchID}).UpdateColumns(map[string]any{
		"brief":         out.Brief,
		"creator_brief": out.CreatorBrief,
		"updated_at":    nowUTC(),
	}).Error
	if err != nil {
		return nil, err
	}
	return GetBatch(ctx, db, batchID)
}

// GenerateVariations asks for count variation proposals and stores them on the batch.
// With apply set each proposal becomes a batch item; hooks are quick-added by name.
func GenerateVariations(ctx context.Context, db *gorm.DB, ai Generator, batchID uint64, count int, apply bool) (*VariationResult, error) {
	if err := requireAI(ai); err != nil {
		return nil, err
	}
	if count < 1 || count > 10 {
		return nil, invalid("count must be between 1 and 10")
	}
	batch, err := GetBatch(ctx, db, batchID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Propose %d distinct variations for this batch. Each variation has a hook line, "+
		"a short script, production notes and a requested duration in seconds. Answer with a JSON object "+
		`{"variations": [{"hook": string, "script": string, "notes": string, "requestedDuration": number}]}.`+
		"\n\n%s", count, describeBatch(batch))
	var out variationResponse
	if err := ai.GenerateJSON(ctx, copywriterSystem, prompt, &out); err != nil {
		return nil, upstream("openai", err)
	}
	if len(out.Variations) > count {
		out.Variations = out.Variations[:count]
	}

	stored, err := models.NewJSON(out.Variations)
	if err != nil {
		return nil, err
	}
	err = db.WithContext(ctx).Model(&models.AdBatch{ID: batchID}).UpdateColumns(map[string]any{
		"ai_variations": stored,
		"updated_at":    nowUTC(),
	}).Error
	if err != nil {
		return nil, err
	}

	result := &VariationResult{Variations: out.Variations, Items: []models.BatchItem{}}
	if !apply {
		return result, nil
	}
	for _, proposal := range out.Variations {
		in := BatchItemInput{
			Script:            proposal.Script,
			Notes:             proposal.Notes,
			RequestedDuration: max(proposal.RequestedDuration, 0),
		}
		if hook := strings.TrimSpace(proposal.Hook); hook != "" {
			row, _, err := QuickAddTaxon[models.AdHook](ctx, db, TaxonInput{Name: hook, Category: "AI"})
			if err != nil {
				return nil, err
			}
			in.HookID = &row.ID
		}
		item, err := AddBatchItem(ctx, db, batchID, in)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *item)
	}
	return result, nil
}

// AnalyzeAd transcribes the ad video, when it has one, and derives its main messaging
func AnalyzeAd(ctx context.Context, db *gorm.DB, ai Generator, client *http.Client, adID uint64) (*models.Ad, error) {
	if err := requireAI(ai); err != nil {
		return nil, err
	}
	ad, err := GetAd(ctx, db, adID)
	if err != nil {
		return nil, err
	}

	transcript := ad.Transcript
	if ad.VideoURL != "" {
		if transcript, err = transcribeURL(ctx, ai, client, ad.VideoURL); err != nil {
			return nil, err
		}
	}

	var b strings.Builder
	b.WriteString("Summarize the main messaging of this ad in two or three sentences: " +
		"the promise, who it speaks to and the proof it offers.\n\n")
	fmt.Fprintf(&b, "Headline: %s\nText: %s\n", ad.Headline, ad.Description)
	if transcript != "" {
		fmt.Fprintf(&b, "Transcript: %s\n", transcript)
	}
	messaging, err := ai.GenerateText(ctx, copywriterSystem, b.String())
	if err != nil {
		return nil, upstream("openai", err)
	}

	err = db.WithContext(ctx).Model(ad).UpdateColumns(map[string]any{
		"transcript":     transcript,
		"main_messaging": messaging,
		"updated_at":     nowUTC(),
	}).Error
	if err != nil {
		return nil, err
	}
	return GetAd(ctx, db, adID)
}

func transcribeURL(ctx context.Context, ai Generator, client *http.Client, url string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", invalid("video url %q: %v", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", upstream("video download", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", upstream("video download", fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.ContentLength > maxTranscribeBytes {
		return "", invalid("video is %d bytes, the transcription limit is %d", resp.ContentLength, maxTranscribeBytes)
	}

	name := path.Base(req.URL.Path)
	if path.Ext(name) == "" {
		name = "ad.mp4"
	}
	text, err := ai.Transcribe(ctx, name, io.LimitReader(resp.Body, maxTranscribeBytes))
	if err != nil {
		return "", upstream("openai", err)
	}
	return text, nil
}
