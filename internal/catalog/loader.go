// README: Catalog loading from YAML with validation; the demo data set ships
// embedded so the coordinator works without any external files.
package catalog

import (
	_ "embed"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yml
var demoCatalog []byte

// LoadDemo returns the built-in demo catalog.
func LoadDemo() (*Catalog, error) {
	return parse(demoCatalog)
}

// LoadFile reads a catalog from an external YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	v := validator.New()
	if err := v.Struct(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
