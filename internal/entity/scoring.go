package entity

import (
	"strings"
	"time"
)

// Tabela de pontuação por faixa de faturamento declarado.
// Labels fora da tabela pontuam 0 (o lead não é rejeitado por isso).
var revenueScores = map[string]int{
	"Over $1B":      50,
	"$500M - $1B":   40,
	"$100M - $500M": 30,
	"$50M - $100M":  20,
	"$10M - $50M":   10,
	"$1M - $10M":    5,
}

// Faixas de senioridade, em ordem de prioridade. A primeira que casar vence;
// os pontos NÃO acumulam.
var positionTiers = []struct {
	keywords []string
	points   int
}{
	{[]string{"ceo", "president"}, 30},
	{[]string{"executive", "vp"}, 20},
	{[]string{"director", "manager"}, 15},
	{[]string{"head", "lead"}, 10},
}

// Score calcula a qualidade de um lead em [0, 100] a partir da faixa de
// faturamento, do cargo e do tamanho do nome da empresa.
func Score(revenue, position, company string) int {
	score := revenueScores[revenue]

	pos := strings.ToLower(position)
	for _, tier := range positionTiers {
		matched := false
		for _, kw := range tier.keywords {
			if strings.Contains(pos, kw) {
				matched = true
				break
			}
		}
		if matched {
			score += tier.points
			break
		}
	}

	switch {
	case len(company) >= 20:
		score += 20
	case len(company) >= 10:
		score += 15
	case len(company) > 0:
		score += 10
	}

	if score > 100 {
		score = 100
	}

	return score
}

// Categorize mapeia o score para HOT (>=80), WARM (>=50) ou COLD.
func Categorize(score int) string {
	switch {
	case score >= 80:
		return CategoryHot
	case score >= 50:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// ScheduleFollowUp devolve o prazo de follow-up para a categoria:
// HOT em 1h, WARM em 24h, COLD em 72h.
func ScheduleFollowUp(category string, now time.Time) time.Time {
	switch category {
	case CategoryHot:
		return now.Add(1 * time.Hour)
	case CategoryWarm:
		return now.Add(24 * time.Hour)
	default:
		return now.Add(72 * time.Hour)
	}
}

// RevenueLabels lista as faixas reconhecidas (útil pro front montar o select).
func RevenueLabels() []string {
	return []string{
		"Over $1B",
		"$500M - $1B",
		"$100M - $500M",
		"$50M - $100M",
		"$10M - $50M",
		"$1M - $10M",
	}
}
