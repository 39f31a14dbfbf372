package analysis

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// defaultCatalog is parsed once at process start and never mutated.
var defaultCatalog = mustLoadCatalog(defaultCatalogYAML)

// Catalog holds the mood vocabularies, the exercise table and the
// motivational message. It is read-only after construction.
type Catalog struct {
	positiveMoods map[string]struct{}
	avoidMoods    map[string]struct{}
	exerciseMoods map[string]struct{}
	exercises     map[string]string
	avoidFrom     int
	avoidTo       int
	motivation    string
}

type catalogFile struct {
	PositiveMoods []string `yaml:"positive_moods"`
	AvoidMoods    []string `yaml:"avoid_moods"`
	AvoidWindow   struct {
		From int `yaml:"from"`
		To   int `yaml:"to"`
	} `yaml:"avoid_window"`
	ExerciseMoods []string `yaml:"exercise_moods"`
	Exercises     []struct {
		Title    string `yaml:"title"`
		Exercise string `yaml:"exercise"`
	} `yaml:"exercises"`
	Motivation []string `yaml:"motivation"`
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog parses a catalog from YAML
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if file.AvoidWindow.From > file.AvoidWindow.To {
		return nil, fmt.Errorf("invalid avoid window: from %d is after to %d", file.AvoidWindow.From, file.AvoidWindow.To)
	}

	c := &Catalog{
		positiveMoods: toSet(file.PositiveMoods),
		avoidMoods:    toSet(file.AvoidMoods),
		exerciseMoods: toSet(file.ExerciseMoods),
		exercises:     make(map[string]string, len(file.Exercises)),
		avoidFrom:     file.AvoidWindow.From,
		avoidTo:       file.AvoidWindow.To,
		motivation:    strings.Join(file.Motivation, "\n"),
	}

	for _, e := range file.Exercises {
		if e.Title == "" || e.Exercise == "" {
			return nil, errors.New("catalog exercise entries need both title and exercise")
		}
		if e.Title != strings.ToLower(e.Title) {
			return nil, fmt.Errorf("catalog exercise title %q must be lowercase", e.Title)
		}
		c.exercises[e.Title] = e.Exercise
	}

	return c, nil
}

func mustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsPositive reports whether mood is in the positive vocabulary (case-sensitive)
func (c *Catalog) IsPositive(mood string) bool {
	_, ok := c.positiveMoods[mood]
	return ok
}

// IsAvoidMood reports whether mood marks a task as one to avoid (case-sensitive)
func (c *Catalog) IsAvoidMood(mood string) bool {
	_, ok := c.avoidMoods[mood]
	return ok
}

// InAvoidWindow reports whether a start minute falls inside the avoid window
func (c *Catalog) InAvoidWindow(minute int) bool {
	return minute >= c.avoidFrom && minute <= c.avoidTo
}

// IsExerciseMood expects an already lowercased mood
func (c *Catalog) IsExerciseMood(lowerMood string) bool {
	_, ok := c.exerciseMoods[lowerMood]
	return ok
}

// Exercise looks up the coping exercise for an already lowercased title
func (c *Catalog) Exercise(lowerTitle string) (string, bool) {
	e, ok := c.exercises[lowerTitle]
	return e, ok
}

// Motivation returns the fixed motivational message
func (c *Catalog) Motivation() string {
	return c.motivation
}
