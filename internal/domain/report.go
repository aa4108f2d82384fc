package domain

import "time"

// Report reúne o resultado de todas as análises sobre uma mesma tabela
type Report struct {
	ID                      string        `json:"id"`
	Period                  string        `json:"period,omitempty"` // Período no formato mm-yyyy, quando aplicável
	GeneratedAt             time.Time     `json:"generated_at"`
	Rows                    int           `json:"rows"`
	OpportunityCost         float64       `json:"opportunity_cost"`
	ProductLineContribution *float64      `json:"product_line_contribution,omitempty"`
	Summary                 *SalesSummary `json:"summary,omitempty"`
	HourlyItemRate          []Point       `json:"hourly_item_rate"`
}
