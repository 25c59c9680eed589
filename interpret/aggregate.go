package interpret

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/transcripta/classify"
	"github.com/tsawler/transcripta/grades"
	"github.com/tsawler/transcripta/model"
)

// Aggregator folds classified tables into credit totals and course
// lists.
type Aggregator struct {
	classifier *classify.Classifier
	interp     *Interpreter
	scale      *grades.Scale

	// Parallel fans tables out to one goroutine each. Tables are
	// independent; each produces a partial result and the partials are
	// reduced in input order, so output ordering and totals match the
	// sequential path exactly.
	Parallel bool
}

// NewAggregator creates an Aggregator with default configuration.
func NewAggregator() *Aggregator {
	return NewAggregatorWith(classify.NewClassifier(), grades.DefaultScale())
}

// NewAggregatorWith creates an Aggregator around an existing
// classifier and grade scale.
func NewAggregatorWith(c *classify.Classifier, scale *grades.Scale) *Aggregator {
	if c == nil {
		c = classify.NewClassifier()
	}
	if scale == nil {
		scale = grades.DefaultScale()
	}
	return &Aggregator{
		classifier: c,
		interp:     NewInterpreterWith(c, scale),
		scale:      scale,
	}
}

// partial is one table's contribution to the aggregate.
type partial struct {
	counted   []model.CourseRecord
	failed    []model.CourseRecord
	rejection *model.Rejection
	incidents []Incident
}

// AggregateGrids normalizes raw grids into tables and aggregates them.
// Grids that normalize to nothing contribute only their index gap.
func (a *Aggregator) AggregateGrids(grids []model.RawGrid) (*model.AggregateResult, []Incident) {
	tables := make([]*model.Table, 0, len(grids))
	for i, grid := range grids {
		if t := a.classifier.BuildTable(grid, i); t != nil {
			tables = append(tables, t)
		}
	}
	return a.Aggregate(tables)
}

// Aggregate runs classification, acceptance and row interpretation
// over every table and reduces the results. Tables failing the
// acceptance test are reported in Rejections and skipped; a table that
// panics wholesale is reported as an Incident with RowIndex -1 and
// excluded. No failure aborts the batch.
func (a *Aggregator) Aggregate(tables []*model.Table) (*model.AggregateResult, []Incident) {
	partials := make([]partial, len(tables))

	if a.Parallel && len(tables) > 1 {
		var g errgroup.Group
		for i, t := range tables {
			i, t := i, t
			g.Go(func() error {
				partials[i] = a.aggregateOne(t)
				return nil
			})
		}
		// Workers never return errors; panics are recovered per table.
		_ = g.Wait()
	} else {
		for i, t := range tables {
			partials[i] = a.aggregateOne(t)
		}
	}

	return a.reduce(partials)
}

// aggregateOne processes a single table into a partial result.
func (a *Aggregator) aggregateOne(t *model.Table) (p partial) {
	defer func() {
		if r := recover(); r != nil {
			p = partial{incidents: []Incident{{
				TableIndex: t.Index,
				RowIndex:   -1,
				Err:        fmt.Errorf("interpreting table: %v", r),
			}}}
		}
	}()

	ok, missing := a.classifier.IsGradesTable(t)
	if !ok {
		p.rejection = &model.Rejection{TableIndex: t.Index, MissingRoles: missing}
		return p
	}

	roles := a.classifier.Classify(t)
	p.counted, p.failed, p.incidents = a.interp.InterpretTable(t, roles)
	return p
}

// reduce merges partials in input order and computes totals. Counted
// credits sum into TotalCredits; failed courses are excluded. Grade
// points accumulate credit-weighted for counted courses whose grade
// the scale recognizes.
func (a *Aggregator) reduce(partials []partial) (*model.AggregateResult, []Incident) {
	result := &model.AggregateResult{}
	var incidents []Incident

	for _, p := range partials {
		if p.rejection != nil {
			result.Rejections = append(result.Rejections, *p.rejection)
		}
		incidents = append(incidents, p.incidents...)

		for _, rec := range p.counted {
			result.TotalCredits += rec.Credit
			if pts, ok := a.scale.GradePoints(rec.Grade); ok {
				result.TotalGradePoints += rec.Credit * pts
			}
		}
		result.Counted = append(result.Counted, p.counted...)
		result.Failed = append(result.Failed, p.failed...)
	}
	return result, incidents
}
