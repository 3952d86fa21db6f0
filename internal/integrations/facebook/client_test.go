package facebook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewrite sends every Graph request to the test server
type rewrite struct {
	target *url.URL
}

func (r rewrite) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = r.target.Scheme
	req.URL.Host = r.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	target, _ := url.Parse(srv.URL)

	client := NewClient("v21.0", "maximum")
	client.HTTPClient = &http.Client{Transport: rewrite{target: target}}
	return client
}

func TestAdInsights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/act_42/ads"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{"id": "9001", "effective_status": "ACTIVE"}},
			})
		case strings.HasSuffix(r.URL.Path, "/act_42/insights"):
			assert.Equal(t, "ad", r.URL.Query().Get("level"))
			assert.Equal(t, "maximum", r.URL.Query().Get("date_preset"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{
					"ad_id":         "9001",
					"ad_name":       "Batch 12 / A",
					"spend":         "100.00",
					"cpm":           "12.5",
					"ctr":           "1.25",
					"impressions":   "8000",
					"clicks":        "100",
					"purchase_roas": []map[string]string{{"action_type": "purchase", "value": "1.5"}, {"action_type": "omni_purchase", "value": "2.5"}},
				}},
			})
		default:
			http.NotFound(w, r)
		}
	})

	insights, err := client.AdInsights(context.Background(), "token", "42")
	require.NoError(t, err)
	require.Len(t, insights, 1)

	got := insights[0]
	assert.Equal(t, "9001", got.AdID)
	assert.Equal(t, "ACTIVE", got.Status)
	assert.InDelta(t, 100.0, got.Spend, 0.001)
	assert.InDelta(t, 2.5, got.ROAS, 0.001)
	assert.InDelta(t, 250.0, got.PurchaseValue, 0.001)
	assert.EqualValues(t, 8000, got.Impressions)
	assert.EqualValues(t, 100, got.Clicks)
}

func TestPickROASFallsBackToPurchase(t *testing.T) {
	assert.InDelta(t, 1.5, pickROAS([]actionValue{{ActionType: "purchase", Value: "1.5"}}), 0.001)
	assert.Zero(t, pickROAS(nil))
}
