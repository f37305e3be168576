// Package catalog holds the static question catalog and NIS2 control
// register. Versioned, hand-authored constant data: loaded once, validated
// at startup, and injected into the scoring engine as an immutable
// parameter.
package catalog

import (
	"fmt"

	"github.com/nis2ready/nis2ready-backend/internal/assessment/domain"
)

// Catalog bundles the question catalog, control register and category
// definitions.
type Catalog struct {
	questions  []domain.Question
	controls   []domain.Control
	categories []domain.Category

	questionsByID  map[string]*domain.Question
	controlsByID   map[string]*domain.Control
	categoriesByID map[string]*domain.Category
}

// New builds an indexed catalog.
func New(questions []domain.Question, controls []domain.Control, categories []domain.Category) *Catalog {
	c := &Catalog{
		questions:      questions,
		controls:       controls,
		categories:     categories,
		questionsByID:  make(map[string]*domain.Question, len(questions)),
		controlsByID:   make(map[string]*domain.Control, len(controls)),
		categoriesByID: make(map[string]*domain.Category, len(categories)),
	}
	for i := range c.questions {
		c.questionsByID[c.questions[i].ID] = &c.questions[i]
	}
	for i := range c.controls {
		c.controlsByID[c.controls[i].ID] = &c.controls[i]
	}
	for i := range c.categories {
		c.categoriesByID[c.categories[i].ID] = &c.categories[i]
	}
	return c
}

// Load returns the built-in catalog.
func Load() *Catalog {
	return New(assessmentQuestions, nis2Controls, questionCategories)
}

// Question returns a catalog question by id.
func (c *Catalog) Question(id string) (*domain.Question, bool) {
	q, ok := c.questionsByID[id]
	return q, ok
}

// Control returns a register entry by id.
func (c *Catalog) Control(id string) (*domain.Control, bool) {
	ctrl, ok := c.controlsByID[id]
	return ctrl, ok
}

// Category returns a category definition by id.
func (c *Catalog) Category(id string) (*domain.Category, bool) {
	cat, ok := c.categoriesByID[id]
	return cat, ok
}

// Questions returns the questions in catalog order.
func (c *Catalog) Questions() []domain.Question { return c.questions }

// Controls returns the register in catalog order.
func (c *Catalog) Controls() []domain.Control { return c.controls }

// Categories returns the category definitions in their fixed order.
func (c *Catalog) Categories() []domain.Category { return c.categories }

// Validate checks referential integrity. Inconsistent catalog data is a
// fatal startup error so the per-call engine never has to handle it.
func (c *Catalog) Validate() error {
	if len(c.questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}
	if len(c.categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	seenCategories := make(map[string]bool)
	for _, cat := range c.categories {
		if seenCategories[cat.ID] {
			return fmt.Errorf("duplicate category %q", cat.ID)
		}
		seenCategories[cat.ID] = true
	}

	seenQuestions := make(map[string]bool)
	for _, q := range c.questions {
		if seenQuestions[q.ID] {
			return fmt.Errorf("duplicate question %q", q.ID)
		}
		seenQuestions[q.ID] = true

		if _, ok := c.categoriesByID[q.Category]; !ok {
			return fmt.Errorf("question %q references unknown category %q", q.ID, q.Category)
		}
		if _, ok := c.controlsByID[q.ControlID]; !ok {
			return fmt.Errorf("question %q references unknown control %q", q.ID, q.ControlID)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}

		seenValues := make(map[string]bool)
		for _, o := range q.Options {
			if seenValues[o.Value] {
				return fmt.Errorf("question %q has duplicate option %q", q.ID, o.Value)
			}
			seenValues[o.Value] = true
			if o.Score < 0 || o.Score > 100 {
				return fmt.Errorf("question %q option %q score %d out of range", q.ID, o.Value, o.Score)
			}
			if !validMaturity(o.MaturityLevel) {
				return fmt.Errorf("question %q option %q has unknown maturity level %q", q.ID, o.Value, o.MaturityLevel)
			}
		}
	}

	for _, ctrl := range c.controls {
		if _, ok := c.categoriesByID[ctrl.Category]; !ok {
			return fmt.Errorf("control %q references unknown category %q", ctrl.ID, ctrl.Category)
		}
	}

	return nil
}

func validMaturity(level domain.MaturityLevel) bool {
	for _, l := range domain.MaturityLevels {
		if l == level {
			return true
		}
	}
	return false
}
