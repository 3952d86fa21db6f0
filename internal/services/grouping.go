// grouping.go
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
	"github.com/localnerve/swipefile/internal/models"
)

// CreativeGroup is one stack of the deck view
type CreativeGroup struct {
	Key       string            `json:"key"`
	Label     string            `json:"label"`
	Kind      models.TagKind    `json:"kind"`
	Creatives []models.Creative `json:"creatives"`
}

// Deck is the grouped projection of a creative list; it is never stored
type Deck struct {
	Groups    []CreativeGroup   `json:"groups"`
	Ungrouped []models.Creative `json:"ungrouped"`
}

// GroupKey picks the grouping tag of a creative: a group id first, then a
// level one folder. The lowest label wins when a kind appears twice.
func GroupKey(tags []models.Tag) (models.Tag, bool) {
	var best models.Tag
	found := false
	for _, kind := range []models.TagKind{models.TagGroupID, models.TagLevel1} {
		for _, t := range tags {
			if t.Kind != kind {
				continue
			}
			if !found || t.Label < best.Label {
				best, found = t, true
			}
		}
		if found {
			return best, true
		}
	}
	return models.Tag{}, false
}

// BuildDeck groups creatives by GroupKey, keeping first appearance order
func BuildDeck(creatives []models.Creative) Deck {
	deck := Deck{Groups: []CreativeGroup{}, Ungrouped: []models.Creative{}}
	index := map[string]int{}

	for _, c := range creatives {
		tag, ok := GroupKey(c.Tags)
		if !ok {
			deck.Ungrouped = append(deck.Ungrouped, c)
			continue
		}
		key := tag.LegacyName()
		i, seen := index[key]
		if !seen {
			i = len(deck.Groups)
			index[key] = i
			deck.Groups = append(deck.Groups, CreativeGroup{Key: key, Label: tag.Label, Kind: tag.Kind})
		}
		deck.Groups[i].Creatives = append(deck.Groups[i].Creatives, c)
	}
	return deck
}
