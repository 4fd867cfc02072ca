// Package report escreve os artefatos CSV que são o produto final de cada
// execução. O CSV sempre sai com cabeçalho, mesmo vazio: automações a jusante
// dependem da existência do arquivo.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

// ProfitabilityCSVName é o nome fixo do artefato diário de rentabilidade.
const ProfitabilityCSVName = "sites_cost_pos_lowrev_yday_with_domain.csv"

type CSVSink struct {
	outputDir string
}

func NewCSVSink(outputDir string) *CSVSink {
	return &CSVSink{outputDir: outputDir}
}

// WriteProfitability grava o relatório de rentabilidade e retorna o caminho
// do arquivo gerado.
func (s *CSVSink) WriteProfitability(sites []domain.SiteDay) (string, error) {
	path := filepath.Join(s.outputDir, ProfitabilityCSVName)

	records := make([][]string, 0, len(sites)+1)
	records = append(records, []string{"site_id", "domain", "cost", "revenue"})
	for _, site := range sites {
		records = append(records, []string{
			strconv.FormatInt(site.SiteID, 10),
			site.Domain,
			strconv.FormatFloat(site.Cost, 'f', -1, 64),
			strconv.FormatFloat(site.Revenue, 'f', -1, 64),
		})
	}

	if err := writeRecords(path, records); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(sites),
	}).Info("Arquivo CSV de rentabilidade salvo")

	return path, nil
}

// WriteProfitabilityPlaceholder grava um CSV só com cabeçalho. Usado quando a
// execução falha depois da configuração, para o workflow a jusante não quebrar
// por arquivo ausente.
func (s *CSVSink) WriteProfitabilityPlaceholder() {
	path := filepath.Join(s.outputDir, ProfitabilityCSVName)
	if err := writeRecords(path, [][]string{{"site_id", "domain", "cost", "revenue"}}); err != nil {
		logrus.WithError(err).Error("Não foi possível criar nem mesmo um CSV vazio")
		return
	}
	logrus.WithField("path", path).Warn("CSV vazio criado devido a erro na execução")
}

// WriteTrafficCrossing grava o cruzamento requests x visitors com sufixo de
// timestamp no nome, e retorna o caminho do arquivo.
func (s *CSVSink) WriteTrafficCrossing(rows []domain.TrafficCrossing, timestamp string) (string, error) {
	path := filepath.Join(s.outputDir, fmt.Sprintf("requests_vs_visitors_%s.csv", timestamp))

	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"site_id", "domain", "start_date", "end_date", "total_requests", "visitors", "requests_per_visitor", "visitors_per_request"})
	for _, row := range rows {
		records = append(records, []string{
			strconv.FormatInt(row.SiteID, 10),
			row.Domain,
			row.StartDate,
			row.EndDate,
			strconv.FormatInt(row.TotalRequests, 10),
			strconv.FormatInt(row.Visitors, 10),
			formatRatio(row.RequestsPerVisitor),
			formatRatio(row.VisitorsPerRequest),
		})
	}

	if err := writeRecords(path, records); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(rows),
	}).Info("Arquivo CSV de requests x visitors salvo")

	return path, nil
}

func formatRatio(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

func writeRecords(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("erro ao escrever CSV: %w", err)
	}
	writer.Flush()

	return writer.Error()
}
