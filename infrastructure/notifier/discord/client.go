package discord

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/internal/config"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	webhookUsername = "Monitor de Rentabilidade"
	alertColor      = 15158332 // vermelho
)

// Notifier envia alertas de rentabilidade para um webhook do Discord.
type Notifier interface {
	// SendLowRevenueAlert notifica os sites com custo e baixa receita. Quando
	// nenhum webhook está configurado a chamada vira no-op com um log de aviso:
	// o CSV é o artefato principal, a notificação é melhor esforço.
	SendLowRevenueAlert(report domain.ProfitabilityReport, artifactName string) error
}

type DiscordNotifier struct {
	httpClient *http.Client
	cfg        config.Discord
	preview    int
}

func NewNotifier(cfg *config.Config) Notifier {
	return &DiscordNotifier{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:     cfg.Discord,
		preview: cfg.Report.PreviewRowLimit,
	}
}

type webhookPayload struct {
	Content  string  `json:"content"`
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string       `json:"title"`
	Color       int          `json:"color"`
	Description string       `json:"description"`
	Fields      []embedField `json:"fields"`
}

type embedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (n *DiscordNotifier) SendLowRevenueAlert(report domain.ProfitabilityReport, artifactName string) error {
	if n.cfg.WebhookURL == "" {
		logrus.Warn("URL do webhook do Discord não configurada. Alerta não enviado.")
		return nil
	}

	payload := webhookPayload{
		Content:  n.cfg.MentionIDs,
		Username: webhookUsername,
		Embeds: []embed{
			{
				Title: "🚨 Alerta: Sites com Custo e Baixa Receita",
				Color: alertColor,
				Description: fmt.Sprintf(
					"Foram encontrados **%d sites** com `custo > 0` e `receita <= %g` para a data de **%s**.",
					len(report.Sites), report.RevenueThreshold, report.ReportDate,
				),
				Fields: []embedField{
					{
						Name:  fmt.Sprintf("Amostra dos Dados (até %d sites):", n.preview),
						Value: fmt.Sprintf("```\n%s\n```", FormatPreview(report.Sites, n.preview)),
					},
					{
						Name:  "Relatório Completo",
						Value: fmt.Sprintf("A lista completa foi salva no arquivo: `%s`", artifactName),
					},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload do webhook: %w", err)
	}

	resp, err := n.httpClient.Post(n.cfg.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao enviar alerta para o Discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook do Discord respondeu %d: %s", resp.StatusCode, string(respBody))
	}

	logrus.Info("Alerta enviado para o Discord com sucesso")
	return nil
}
