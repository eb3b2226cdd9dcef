package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// File names expected at the root of a catalog directory.
const (
	MealsFile    = "meals.yaml"
	WorkoutsFile = "workouts.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type mealsDoc struct {
	Meals []Meal `yaml:"meals"`
}

type workoutsDoc struct {
	Workouts []Workout `yaml:"workouts"`
}

// LoadEmbedded returns the default catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir reads meals.yaml and workouts.yaml from dir.
func LoadDir(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads meals.yaml and workouts.yaml from the root of fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var md mealsDoc
	if err := decodeYAML(fsys, MealsFile, &md); err != nil {
		return nil, err
	}
	var wd workoutsDoc
	if err := decodeYAML(fsys, WorkoutsFile, &wd); err != nil {
		return nil, err
	}
	return New(md.Meals, wd.Workouts)
}

func decodeYAML(fsys fs.FS, name string, out any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
