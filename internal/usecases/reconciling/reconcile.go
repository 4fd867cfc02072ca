package reconciling

import (
	"sort"

	"github.com/wearenalytics/site-profit-monitor/internal/domain"
	"github.com/wearenalytics/site-profit-monitor/pkg/utils"
)

// Options são os parâmetros de filtro da reconciliação.
type Options struct {
	// RevenueThreshold é o teto inclusivo de receita: sites com receita igual
	// ao limiar ainda entram no relatório.
	RevenueThreshold float64

	// ExcludeSiteZero remove o site_id 0, que é um balde agregado e não um
	// site real.
	ExcludeSiteZero bool
}

// Reconcile combina os três agregados em linhas SiteDay, aplica o filtro de
// rentabilidade e ordena do pior ofensor para o melhor. É uma função pura:
// mesmas entradas, mesma saída ordenada.
//
// O conjunto âncora é o de custos: um site sem custo nunca interessa,
// independente da receita. Um site com custo e sem nenhuma linha de receita é
// um caso de receita zero, não de dado ausente.
func Reconcile(
	costs map[int64]float64,
	revenues map[int64]domain.RevenueAggregate,
	fallbackDomains map[int64]string,
	opts Options,
) []domain.SiteDay {
	sites := make([]domain.SiteDay, 0, len(costs))

	for siteID, totalCost := range costs {
		if totalCost <= 0 {
			continue
		}
		if opts.ExcludeSiteZero && siteID == 0 {
			continue
		}

		var totalRevenue float64
		var siteDomain string

		if agg, ok := revenues[siteID]; ok {
			totalRevenue = agg.TotalRevenue
			siteDomain = agg.Domain
		}

		if totalRevenue > opts.RevenueThreshold {
			continue
		}

		// Precedência de domínio: observado na data > mais recente na janela
		// de fallback > "unknown".
		if siteDomain == "" {
			siteDomain = fallbackDomains[siteID]
		}
		if siteDomain == "" {
			siteDomain = domain.UnknownDomain
		}

		sites = append(sites, domain.SiteDay{
			SiteID:  siteID,
			Domain:  siteDomain,
			Cost:    totalCost,
			Revenue: totalRevenue,
		})
	}

	// Menor receita primeiro; empate decidido pelo maior custo, depois pelo
	// site_id para manter a saída estável entre execuções.
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Revenue != sites[j].Revenue {
			return sites[i].Revenue < sites[j].Revenue
		}
		if sites[i].Cost != sites[j].Cost {
			return sites[i].Cost > sites[j].Cost
		}
		return sites[i].SiteID < sites[j].SiteID
	})

	for i := range sites {
		sites[i].Cost = utils.RoundWithTwoDecimalPlace(sites[i].Cost)
		sites[i].Revenue = utils.RoundWithSixDecimalPlace(sites[i].Revenue)
	}

	return sites
}
