package engine

import (
	"sort"

	"pokedex/internal/models"
)

type typeAgg struct {
	Count int
	Total int
}

// Summarize counts records per primary type and per generation. Total is
// parsed strictly, so one bad row fails the summary.
func (e *Engine) Summarize() (*models.Summary, error) {
	byType := make(map[string]*typeAgg)
	byGen := make(map[string]int)
	var genOrder []string

	data := &models.Summary{
		Types:       make([]models.TypeStat, 0),
		Generations: make([]models.GenerationRow, 0),
	}

	for i := 1; i < e.store.Len(); i++ {
		rec := e.store.Row(i)
		total, err := e.cols.Int(rec, i, ColTotal)
		if err != nil {
			return nil, err
		}

		t := e.cols.Field(rec, ColType1)
		agg, ok := byType[t]
		if !ok {
			agg = &typeAgg{}
			byType[t] = agg
		}
		agg.Count++
		agg.Total += total

		g := e.cols.Field(rec, ColGeneration)
		if _, seen := byGen[g]; !seen {
			genOrder = append(genOrder, g)
		}
		byGen[g]++

		if e.cols.Legendary(rec) {
			data.Legendary++
		}
		data.Records++
	}

	for t, agg := range byType {
		data.Types = append(data.Types, models.TypeStat{
			Type: t, Count: agg.Count, AvgTotal: agg.Total / agg.Count,
		})
	}
	// Most common first, ties by name for stable output
	sort.Slice(data.Types, func(i, j int) bool {
		if data.Types[i].Count != data.Types[j].Count {
			return data.Types[i].Count > data.Types[j].Count
		}
		return data.Types[i].Type < data.Types[j].Type
	})

	// Generations keep file order
	for _, g := range genOrder {
		data.Generations = append(data.Generations, models.GenerationRow{Generation: g, Count: byGen[g]})
	}

	return data, nil
}

// Creatures converts every row of res to its typed form.
func (e *Engine) Creatures(res *Result) ([]models.Creature, error) {
	out := make([]models.Creature, 0, res.Len())
	for k, rec := range res.Rows {
		c, err := e.cols.Creature(rec, res.Index[k])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
