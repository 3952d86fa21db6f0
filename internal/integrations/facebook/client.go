// client.go
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

// Package facebook reads ad-level insights from the Graph API.
package facebook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	fb "github.com/huandu/facebook/v2"
)

const insightFields = "ad_id,ad_name,campaign_name,adset_name,spend,cpm,ctr,impressions,clicks,purchase_roas"

// roasActionTypes are checked in order; the first present wins
var roasActionTypes = []string{"omni_purchase", "purchase"}

// AdInsight is one ad's lifetime performance
type AdInsight struct {
	AdID          string
	AdName        string
	CampaignName  string
	AdsetName     string
	Status        string
	Spend         float64
	ROAS          float64
	PurchaseValue float64
	CPM           float64
	CTR           float64
	Impressions   int64
	Clicks        int64
	Raw           map[string]any
}

type actionValue struct {
	ActionType string `facebook:"action_type"`
	Value      string `facebook:"value"`
}

// Client fetches insights with a caller supplied access token
type Client struct {
	Version    string
	DatePreset string
	HTTPClient fb.HttpClient
}

// NewClient builds a Graph client pinned to version
func NewClient(version, datePreset string) *Client {
	return &Client{Version: version, DatePreset: datePreset}
}

func (c *Client) session(ctx context.Context, accessToken string) *fb.Session {
	session := &fb.Session{Version: c.Version, HttpClient: c.HTTPClient}
	session.SetAccessToken(accessToken)
	return session.WithContext(ctx)
}

// AdInsights returns ad-level insights and delivery status for one ad account
func (c *Client) AdInsights(ctx context.Context, accessToken, adAccountID string) ([]AdInsight, error) {
	account := adAccountID
	if !strings.HasPrefix(account, "act_") {
		account = "act_" + account
	}
	session := c.session(ctx, accessToken)

	statuses, err := c.adStatuses(session, account)
	if err != nil {
		return nil, err
	}

	params := fb.Params{
		"level":  "ad",
		"fields": insightFields,
		"limit":  500,
	}
	if c.DatePreset != "" {
		params["date_preset"] = c.DatePreset
	}

	var insights []AdInsight
	err = each(session, "/"+account+"/insights", params, func(row fb.Result) error {
		insight, err := decodeInsight(row)
		if err != nil {
			return err
		}
		insight.Status = statuses[insight.AdID]
		insights = append(insights, insight)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return insights, nil
}

func (c *Client) adStatuses(session *fb.Session, account string) (map[string]string, error) {
	statuses := map[string]string{}
	err := each(session, "/"+account+"/ads", fb.Params{"fields": "id,effective_status", "limit": 500}, func(row fb.Result) error {
		var id, status string
		if err := row.DecodeField("id", &id); err != nil {
			return err
		}
		_ = row.DecodeField("effective_status", &status)
		statuses[id] = status
		return nil
	})
	return statuses, err
}

// each walks every page of a Graph edge
func each(session *fb.Session, path string, params fb.Params, fn func(fb.Result) error) error {
	res, err := session.Get(path, params)
	if err != nil {
		return fmt.Errorf("graph %s: %w", path, err)
	}
	paging, err := res.Paging(session)
	if err != nil {
		return fmt.Errorf("graph %s paging: %w", path, err)
	}
	for {
		for _, row := range paging.Data() {
			if err := fn(row); err != nil {
				return fmt.Errorf("graph %s: %w", path, err)
			}
		}
		noMore, err := paging.Next()
		if err != nil {
			return fmt.Errorf("graph %s next page: %w", path, err)
		}
		if noMore {
			return nil
		}
	}
}

func decodeInsight(row fb.Result) (AdInsight, error) {
	insight := AdInsight{Raw: map[string]any(row)}
	if err := row.DecodeField("ad_id", &insight.AdID); err != nil {
		return insight, err
	}
	_ = row.DecodeField("ad_name", &insight.AdName)
	_ = row.DecodeField("campaign_name", &insight.CampaignName)
	_ = row.DecodeField("adset_name", &insight.AdsetName)

	insight.Spend = floatField(row, "spend")
	insight.CPM = floatField(row, "cpm")
	insight.CTR = floatField(row, "ctr")
	insight.Impressions = int64(floatField(row, "impressions"))
	insight.Clicks = int64(floatField(row, "clicks"))

	var roas []actionValue
	if _, ok := row["purchase_roas"]; ok {
		if err := row.DecodeField("purchase_roas", &roas); err != nil {
			return insight, err
		}
	}
	insight.ROAS = pickROAS(roas)
	insight.PurchaseValue = insight.ROAS * insight.Spend
	return insight, nil
}

func pickROAS(values []actionValue) float64 {
	for _, actionType := range roasActionTypes {
		for _, v := range values {
			if v.ActionType == actionType {
				f, _ := strconv.ParseFloat(v.Value, 64)
				return f
			}
		}
	}
	return 0
}

// floatField reads a Graph numeric value, which arrives as a string or number
func floatField(row fb.Result, field string) float64 {
	switch v := row[field].(type) {
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case float64:
		return v
	case interface{ String() string }:
		f, _ := strconv.ParseFloat(v.String(), 64)
		return f
	}
	return 0
}
