// Package seed loads the content catalog from YAML. Units are numbered in
// document order, so authors never write sequence numbers by hand.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"couplepath/services/progress-service/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogFS embed.FS

type yamlCatalog struct {
	Programs []yamlProgram `yaml:"programs"`
}

type yamlProgram struct {
	ID     string             `yaml:"id"`
	Title  string             `yaml:"title"`
	Kind   domain.ProgramKind `yaml:"kind"`
	Groups []yamlGroup        `yaml:"groups"`
	Units  []yamlUnit         `yaml:"units"`
}

type yamlGroup struct {
	ID     string           `yaml:"id"`
	Title  string           `yaml:"title"`
	Kind   domain.GroupKind `yaml:"kind"`
	Groups []yamlGroup      `yaml:"groups"`
	Units  []yamlUnit       `yaml:"units"`
}

type yamlUnit struct {
	Title   string         `yaml:"title"`
	Payload map[string]any `yaml:"payload"`
}

// Program is one flattened catalog entry ready to be stored.
type Program struct {
	Program domain.Program
	Groups  []domain.ProgramGroup
	Units   []domain.Unit
}

// Target is any catalog store that can replace a program wholesale.
type Target interface {
	SeedProgram(ctx context.Context, p domain.Program, groups []domain.ProgramGroup, units []domain.Unit) error
}

func Default() ([]Program, error) {
	data, err := defaultCatalogFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadFile reads a catalog from disk, or the embedded one when path is empty.
func LoadFile(path string) ([]Program, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) ([]Program, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: catalog yaml: %v", domain.ErrInvalidArgument, err)
	}

	seen := map[string]bool{}
	out := make([]Program, 0, len(doc.Programs))
	for _, yp := range doc.Programs {
		if yp.ID == "" {
			return nil, fmt.Errorf("%w: program without id", domain.ErrInvalidArgument)
		}
		if seen[yp.ID] {
			return nil, fmt.Errorf("%w: duplicate program %q", domain.ErrInvalidArgument, yp.ID)
		}
		seen[yp.ID] = true

		p, err := flatten(yp)
		if err != nil {
			return nil, fmt.Errorf("program %q: %w", yp.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Apply stores every program in target.
func Apply(ctx context.Context, target Target, programs []Program) error {
	for _, p := range programs {
		if err := target.SeedProgram(ctx, p.Program, p.Groups, p.Units); err != nil {
			return fmt.Errorf("seed %q: %w", p.Program.ID, err)
		}
	}
	return nil
}

type flattener struct {
	programID string
	groups    []domain.ProgramGroup
	units     []domain.Unit
	groupIDs  map[string]bool
}

func flatten(yp yamlProgram) (Program, error) {
	kind := yp.Kind
	if kind == "" {
		kind = domain.ProgramSequential
	}
	if kind != domain.ProgramSequential && kind != domain.ProgramRotating {
		return Program{}, fmt.Errorf("%w: unknown program kind %q", domain.ErrInvalidArgument, kind)
	}

	f := &flattener{programID: yp.ID, groupIDs: map[string]bool{}}
	if err := f.addUnits("", yp.Units); err != nil {
		return Program{}, err
	}
	for _, g := range yp.Groups {
		if err := f.addGroup("", g); err != nil {
			return Program{}, err
		}
	}
	if len(f.units) == 0 {
		return Program{}, fmt.Errorf("%w: program has no units", domain.ErrInvalidArgument)
	}
	if err := domain.ValidateUnits(f.units); err != nil {
		return Program{}, err
	}

	return Program{
		Program: domain.Program{ID: yp.ID, Title: yp.Title, Kind: kind},
		Groups:  f.groups,
		Units:   f.units,
	}, nil
}

func (f *flattener) addGroup(parentID string, g yamlGroup) error {
	if g.ID == "" {
		return fmt.Errorf("%w: group without id under %q", domain.ErrInvalidArgument, parentID)
	}
	if f.groupIDs[g.ID] {
		return fmt.Errorf("%w: duplicate group %q", domain.ErrInvalidArgument, g.ID)
	}
	f.groupIDs[g.ID] = true
	f.groups = append(f.groups, domain.ProgramGroup{
		ProgramID: f.programID,
		ID:        g.ID,
		ParentID:  parentID,
		Kind:      g.Kind,
		Title:     g.Title,
		Position:  len(f.groups) + 1,
	})

	if err := f.addUnits(g.ID, g.Units); err != nil {
		return err
	}
	for _, child := range g.Groups {
		if err := f.addGroup(g.ID, child); err != nil {
			return err
		}
	}
	return nil
}

func (f *flattener) addUnits(groupID string, units []yamlUnit) error {
	for _, yu := range units {
		u := domain.Unit{
			ProgramID:      f.programID,
			SequenceNumber: len(f.units) + 1,
			GroupID:        groupID,
			Title:          yu.Title,
		}
		if len(yu.Payload) > 0 {
			payload, err := json.Marshal(yu.Payload)
			if err != nil {
				return fmt.Errorf("unit %d payload: %w", u.SequenceNumber, err)
			}
			u.Payload = payload
		}
		f.units = append(f.units, u)
	}
	return nil
}
