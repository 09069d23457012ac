// Package cost turns AI usage logs into a USD/VND cost report.
package cost

import (
	"strings"

	"github.com/maheshrc27/contentops/internal/models"
)

// DefaultUsdToVnd is used when no exchange rate is configured.
const DefaultUsdToVnd = 25000.0

type Breakdown struct {
	Generate float64 `json:"generate"`
	Edit     float64 `json:"edit"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type Report struct {
	TotalUSD    float64               `json:"totalUsd"`
	GenerateUSD float64               `json:"generateUsd"`
	EditUSD     float64               `json:"editUsd"`
	TotalVND    float64               `json:"totalVnd"`
	Rate        float64               `json:"rate"`
	ByType      map[string]*Breakdown `json:"byType"`
	Rows        int                   `json:"rows"`
	Unpriced    int                   `json:"unpriced"`
}

type registry struct {
	byID   map[string]*models.AIModel
	byName map[string]*models.AIModel
}

func newRegistry(list []*models.AIModel) registry {
	r := registry{
		byID:   make(map[string]*models.AIModel, len(list)),
		byName: make(map[string]*models.AIModel, len(list)),
	}
	for _, m := range list {
		if m == nil {
			continue
		}
		r.byID[m.ID] = m
		r.byName[strings.ToLower(m.Name)] = m
	}
	return r
}

func (r registry) lookup(entry *models.CostLog) *models.AIModel {
	if m, ok := r.byID[entry.ModelID]; ok && entry.ModelID != "" {
		return m
	}
	if entry.ModelName != "" {
		return r.byName[strings.ToLower(entry.ModelName)]
	}
	return nil
}

// UnitPrice returns the per-unit USD price of an operation on a model.
func UnitPrice(m *models.AIModel, operation string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch operation {
	case models.OperationGenerate:
		return m.GeneratePrice, true
	case models.OperationEdit:
		return m.EditPrice, true
	default:
		return 0, false
	}
}

// Estimate prices every log row against the model registry. Rows whose model
// or operation is unknown cost nothing and are counted as unpriced.
func Estimate(logs []*models.CostLog, priced []*models.AIModel, rate float64) Report {
	if rate <= 0 {
		rate = DefaultUsdToVnd
	}
	reg := newRegistry(priced)

	report := Report{
		Rate:   rate,
		ByType: map[string]*Breakdown{},
	}

	for _, entry := range logs {
		if entry == nil {
			continue
		}
		report.Rows++

		b, ok := report.ByType[entry.MediaType]
		if !ok {
			b = &Breakdown{}
			report.ByType[entry.MediaType] = b
		}
		b.Count++

		price, ok := UnitPrice(reg.lookup(entry), entry.Operation)
		if !ok {
			report.Unpriced++
			continue
		}

		amount := entry.Quantity * price
		switch entry.Operation {
		case models.OperationGenerate:
			b.Generate += amount
			report.GenerateUSD += amount
		case models.OperationEdit:
			b.Edit += amount
			report.EditUSD += amount
		}
	}

	for _, b := range report.ByType {
		b.Total = b.Generate + b.Edit
	}
	report.TotalUSD = report.GenerateUSD + report.EditUSD
	report.TotalVND = report.TotalUSD * rate
	return report
}
