package repository

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/gigmatch/internal/domain/model"
)

var validate = validator.New()

// LoadCatalog reads a YAML catalog of the form
//
//	projects:
//	  - id: shop-1
//	    title: ...
//
// and validates every listing. Duplicate ids are rejected.
func LoadCatalog(path string) ([]model.ProjectListing, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, path, err)
	}

	var listings []model.ProjectListing
	if err := k.UnmarshalWithConf("projects", &listings, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, path, err)
	}
	if err := ValidateListings(listings); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return listings, nil
}

// ValidateListings checks field constraints and id uniqueness.
func ValidateListings(listings []model.ProjectListing) error {
	seen := make(map[string]int, len(listings))
	for i, l := range listings {
		if err := validate.Struct(l); err != nil {
			return fmt.Errorf("%w: listing %d (%q): %w", ErrInvalidCatalog, i, l.ID, err)
		}
		if j, ok := seen[l.ID]; ok {
			return fmt.Errorf("%w: duplicate id %q at %d and %d", ErrInvalidCatalog, l.ID, j, i)
		}
		seen[l.ID] = i
	}
	return nil
}
