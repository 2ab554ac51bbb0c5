package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aurumprivate/aurum-leads/internal/entity"
)

// TestScoreDeterministic - mesma entrada, mesmo score, sempre
func TestScoreDeterministic(t *testing.T) {
	inputs := []struct {
		revenue, position, company string
	}{
		{"Over $1B", "CEO", "Acme Global Holdings"},
		{"$1M - $10M", "Analyst", "X"},
		{"", "", ""},
		{"garbage", "Intern", "Beta"},
	}

	for _, in := range inputs {
		first := entity.Score(in.revenue, in.position, in.company)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, entity.Score(in.revenue, in.position, in.company))
		}
	}
}

// TestScoreBounded - qualquer entrada cai em [0, 100]
func TestScoreBounded(t *testing.T) {
	inputs := []struct {
		revenue, position, company string
	}{
		{"Over $1B", "CEO and President and Executive VP", "A Very Long Company Name Indeed LLC"},
		{"", "", ""},
		{"not a label", "not a title", "x"},
		{"$500M - $1B", "Head Lead Director Manager", "Golden Gate Capital Partners"},
	}

	for _, in := range inputs {
		score := entity.Score(in.revenue, in.position, in.company)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

// TestScoreRevenueTable - cada faixa reconhecida pontua o valor da tabela
func TestScoreRevenueTable(t *testing.T) {
	expected := map[string]int{
		"Over $1B":      50,
		"$500M - $1B":   40,
		"$100M - $500M": 30,
		"$50M - $100M":  20,
		"$10M - $50M":   10,
		"$1M - $10M":    5,
		"Under $1M":     0, // fora da tabela
		"":              0,
	}

	for label, points := range expected {
		assert.Equal(t, points, entity.Score(label, "", ""), "revenue %q", label)
	}
}

// TestScorePositionTiers - substring case-insensitive, primeira faixa que casar vence
func TestScorePositionTiers(t *testing.T) {
	cases := map[string]int{
		"CEO":                     30,
		"ceo & founder":           30,
		"President":               30,
		"Chief Executive Officer": 20, // "executive" casa antes de qualquer outra
		"VP of Sales":             20,
		"Sales Director":          15,
		"Regional Manager":        15,
		"Head of Operations":      10,
		"Team Lead":               10,
		"Lead Manager":            15, // manager tem prioridade sobre lead
		"Analyst":                 0,
		"":                        0,
	}

	for position, points := range cases {
		assert.Equal(t, points, entity.Score("", position, ""), "position %q", position)
	}
}

// TestScoreCompanyLength - pontos pelo tamanho do nome da empresa
func TestScoreCompanyLength(t *testing.T) {
	cases := map[string]int{
		"":                        0,
		"X":                       10,
		"Acme Corp":               10, // 9 chars
		"Madison Ave":             15, // 11 chars
		"Acme Global Holdings":    20, // 20 chars exatos
		"Acme Corp International": 20,
	}

	for company, points := range cases {
		assert.Equal(t, points, entity.Score("", "", company), "company %q", company)
	}
}

// TestCategorizeBoundaries - partição total de [0,100] com cortes em 50 e 80
func TestCategorizeBoundaries(t *testing.T) {
	assert.Equal(t, entity.CategoryCold, entity.Categorize(0))
	assert.Equal(t, entity.CategoryCold, entity.Categorize(49))
	assert.Equal(t, entity.CategoryWarm, entity.Categorize(50))
	assert.Equal(t, entity.CategoryWarm, entity.Categorize(79))
	assert.Equal(t, entity.CategoryHot, entity.Categorize(80))
	assert.Equal(t, entity.CategoryHot, entity.Categorize(100))
}

// TestScheduleFollowUpOffsets - prazos exatos por categoria
func TestScheduleFollowUpOffsets(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(3600*time.Second), entity.ScheduleFollowUp(entity.CategoryHot, now))
	assert.Equal(t, now.Add(86400*time.Second), entity.ScheduleFollowUp(entity.CategoryWarm, now))
	assert.Equal(t, now.Add(259200*time.Second), entity.ScheduleFollowUp(entity.CategoryCold, now))
}

// TestScoreEndToEndScenarios - os três cenários de referência do funil
func TestScoreEndToEndScenarios(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name             string
		revenue          string
		position         string
		company          string
		expectedScore    int
		expectedCategory string
		expectedFollowUp time.Time
	}{
		{
			name:             "conglomerado com CEO vira HOT",
			revenue:          "Over $1B",
			position:         "CEO",
			company:          "Acme Global Holdings",
			expectedScore:    100,
			expectedCategory: entity.CategoryHot,
			expectedFollowUp: now.Add(1 * time.Hour),
		},
		{
			name:             "analista de empresa pequena vira COLD",
			revenue:          "$1M - $10M",
			position:         "Analyst",
			company:          "X",
			expectedScore:    15,
			expectedCategory: entity.CategoryCold,
			expectedFollowUp: now.Add(72 * time.Hour),
		},
		{
			name:             "VP na fronteira dos 50 pontos fica WARM",
			revenue:          "$50M - $100M",
			position:         "VP of Sales",
			company:          "Beta",
			expectedScore:    50,
			expectedCategory: entity.CategoryWarm,
			expectedFollowUp: now.Add(24 * time.Hour),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := entity.Score(tc.revenue, tc.position, tc.company)
			assert.Equal(t, tc.expectedScore, score)

			category := entity.Categorize(score)
			assert.Equal(t, tc.expectedCategory, category)

			assert.Equal(t, tc.expectedFollowUp, entity.ScheduleFollowUp(category, now))
		})
	}
}

// TestRevenueLabelsMatchTable - o select do front cobre exatamente a tabela
func TestRevenueLabelsMatchTable(t *testing.T) {
	labels := entity.RevenueLabels()
	assert.Len(t, labels, 6)

	for _, label := range labels {
		assert.Greater(t, entity.Score(label, "", ""), 0, "label %q deveria pontuar", label)
	}
}
