package discord

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

func testNotifierConfig(webhookURL string) *config.Config {
	return &config.Config{
		Discord: config.Discord{
			WebhookURL: webhookURL,
			MentionIDs: "<@111> <@222>",
		},
		Report: config.Report{
			PreviewRowLimit: 10,
		},
	}
}

func testReport() domain.ProfitabilityReport {
	return domain.ProfitabilityReport{
		ReportDate:       "2025-03-10",
		RevenueThreshold: 1.0,
		Sites: []domain.SiteDay{
			{SiteID: 101, Domain: "a.com", Cost: 12.5, Revenue: 0.5},
			{SiteID: 202, Domain: "b.com", Cost: 3.2, Revenue: 0.9},
		},
	}
}

func TestSendLowRevenueAlert(t *testing.T) {
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = body

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewNotifier(testNotifierConfig(server.URL))

	err := notifier.SendLowRevenueAlert(testReport(), "sites_cost_pos_lowrev_yday_with_domain.csv")

	assert.NoError(t, err)

	var payload webhookPayload
	require.NoError(t, json.Unmarshal(received, &payload))

	assert.Equal(t, "<@111> <@222>", payload.Content)
	assert.Equal(t, "Monitor de Rentabilidade", payload.Username)
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, alertColor, payload.Embeds[0].Color)
	assert.Contains(t, payload.Embeds[0].Description, "**2 sites**")
	assert.Contains(t, payload.Embeds[0].Description, "2025-03-10")

	require.Len(t, payload.Embeds[0].Fields, 2)
	assert.Contains(t, payload.Embeds[0].Fields[0].Value, "a.com")
	assert.Contains(t, payload.Embeds[0].Fields[1].Value, "sites_cost_pos_lowrev_yday_with_domain.csv")
}

func TestSendLowRevenueAlertWithoutWebhookIsNoOp(t *testing.T) {
	notifier := NewNotifier(testNotifierConfig(""))

	err := notifier.SendLowRevenueAlert(testReport(), "arquivo.csv")

	assert.NoError(t, err)
}

func TestSendLowRevenueAlertWebhookRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid payload"))
	}))
	defer server.Close()

	notifier := NewNotifier(testNotifierConfig(server.URL))

	err := notifier.SendLowRevenueAlert(testReport(), "arquivo.csv")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
