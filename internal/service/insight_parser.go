package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"career-compass/internal/domain"
)

// InsightResponseParser valida la respuesta estructurada del generador.
// Una respuesta a la que le falte cualquier campo requerido para cualquier
// carrera es un fallo de dependencia para el batch completo, no parcial.
type InsightResponseParser struct{}

type insightBatchPayload struct {
	Insights []struct {
		CareerID        string   `json:"career_id"`
		Explanation     string   `json:"explanation"`
		SkillsToDevelop []string `json:"skills_to_develop"`
		GrowthPaths     []string `json:"growth_paths"`
		SalaryRange     string   `json:"salary_range"`
	} `json:"insights"`
}

// Parse extrae el JSON de la respuesta cruda y exige, por cada carrera del
// top-5: explicacion, tres o mas skills, dos o mas growth paths y un rango
// salarial. Devuelve los insights indexados por career id.
func (InsightResponseParser) Parse(raw string, top []domain.CareerMatch) (map[string]domain.CareerInsight, error) {
	jsonObj := extractFirstJSONObject(raw)
	if jsonObj == "" {
		return nil, fmt.Errorf("insight response: no json object found")
	}

	var payload insightBatchPayload
	if err := json.Unmarshal([]byte(jsonObj), &payload); err != nil {
		return nil, fmt.Errorf("insight response: %w", err)
	}

	byID := make(map[string]domain.CareerInsight, len(payload.Insights))
	for _, entry := range payload.Insights {
		insight := domain.CareerInsight{
			Explanation:     strings.TrimSpace(entry.Explanation),
			SkillsToDevelop: trimAll(entry.SkillsToDevelop),
			GrowthPaths:     trimAll(entry.GrowthPaths),
			SalaryRange:     strings.TrimSpace(entry.SalaryRange),
		}
		if insight.Explanation == "" || len(insight.SkillsToDevelop) < 3 || len(insight.GrowthPaths) < 2 || insight.SalaryRange == "" {
			return nil, fmt.Errorf("insight response: incomplete entry for career %q", entry.CareerID)
		}
		byID[entry.CareerID] = insight
	}

	for _, m := range top {
		if _, ok := byID[m.Career.ID]; !ok {
			return nil, fmt.Errorf("insight response: missing entry for career %q", m.Career.ID)
		}
	}
	return byID, nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}
