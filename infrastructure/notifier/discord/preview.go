package discord

import (
	"fmt"
	"strings"

	"github.com/wearenalytics/site-profit-monitor/internal/domain"
)

// FormatPreview monta uma tabela de largura fixa com até limit linhas, no
// formato que o Discord renderiza dentro de um bloco de código.
func FormatPreview(sites []domain.SiteDay, limit int) string {
	if len(sites) == 0 {
		return "(nenhum site)"
	}

	if limit > 0 && len(sites) > limit {
		sites = sites[:limit]
	}

	domainWidth := len("domain")
	for _, site := range sites {
		if len(site.Domain) > domainWidth {
			domainWidth = len(site.Domain)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%8s  %-*s  %10s  %10s\n", "site_id", domainWidth, "domain", "cost", "revenue")
	for _, site := range sites {
		fmt.Fprintf(&b, "%8d  %-*s  %10.2f  %10.6f\n", site.SiteID, domainWidth, site.Domain, site.Cost, site.Revenue)
	}

	return strings.TrimRight(b.String(), "\n")
}
