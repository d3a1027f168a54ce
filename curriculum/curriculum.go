package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Substrand is a leaf curriculum topic
type Substrand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Strand groups substrands within a subject
type Strand struct {
	Name       string      `json:"name"`
	Substrands []Substrand `json:"substrands"`
}

// Subject holds the strands taught for one subject at one grade
type Subject struct {
	Name    string   `json:"name"`
	Strands []Strand `json:"strands"`
}

// Tree is the static CBC curriculum content keyed by grade then subject
type Tree map[string]map[string]Subject

var (
	tree     Tree
	loadOnce sync.Once
	loadErr  error
	treePath string
)

// Load reads the curriculum JSON file once and keeps it in memory
func Load(path string) error {
	treePath = path
	loadOnce.Do(func() {
		raw, err := os.ReadFile(treePath)
		if err != nil {
			loadErr = fmt.Errorf("failed to read curriculum file: %w", err)
			return
		}
		if err := json.Unmarshal(raw, &tree); err != nil {
			loadErr = fmt.Errorf("failed to parse curriculum file: %w", err)
		}
	})
	return loadErr
}

// Lookup returns the subject tree for a grade/subject pair
func Lookup(grade, subject string) (*Subject, error) {
	if tree == nil {
		return nil, fmt.Errorf("curriculum not loaded")
	}
	subjects, ok := tree[grade]
	if !ok {
		return nil, fmt.Errorf("unknown grade: %s", grade)
	}
	subj, ok := subjects[subject]
	if !ok {
		return nil, fmt.Errorf("unknown subject %s for %s", subject, grade)
	}
	return &subj, nil
}

// Grades lists the grades present in the loaded tree
func Grades() []string {
	grades := make([]string, 0, len(tree))
	for g := range tree {
		grades = append(grades, g)
	}
	return grades
}
