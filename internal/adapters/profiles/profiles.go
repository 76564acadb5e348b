// Package profiles supplies the freelancer profile for a search.
package profiles

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/gigmatch/internal/domain/model"
)

// Provider returns the profile to match against. It is called once per
// search; no caching is implied.
type Provider interface {
	GetProfile(ctx context.Context) (model.FreelancerProfile, error)
}

// Static always returns the same profile.
type Static struct {
	Profile model.FreelancerProfile
}

// GetProfile returns a copy of the configured profile.
func (s Static) GetProfile(ctx context.Context) (model.FreelancerProfile, error) {
	if err := ctx.Err(); err != nil {
		return model.FreelancerProfile{}, err
	}
	p := s.Profile
	p.Skills = append([]string(nil), s.Profile.Skills...)
	p.ExperienceTags = append([]string(nil), s.Profile.ExperienceTags...)
	return p, nil
}

// File reads a YAML profile on every call so edits apply to the next search.
type File struct {
	Path string
}

var validate = validator.New()

// GetProfile loads and validates the profile at f.Path.
func (f File) GetProfile(ctx context.Context) (model.FreelancerProfile, error) {
	if f.Path == "" {
		return model.FreelancerProfile{}, ErrNoProfile
	}
	if err := ctx.Err(); err != nil {
		return model.FreelancerProfile{}, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(f.Path), yaml.Parser()); err != nil {
		return model.FreelancerProfile{}, fmt.Errorf("%w: %s: %w", ErrLoad, f.Path, err)
	}
	var p model.FreelancerProfile
	if err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return model.FreelancerProfile{}, fmt.Errorf("%w: %s: %w", ErrLoad, f.Path, err)
	}
	if err := validate.Struct(p); err != nil {
		return model.FreelancerProfile{}, fmt.Errorf("%w: %s: %w", ErrLoad, f.Path, err)
	}
	return p, nil
}

// None reports that no profile is configured.
type None struct{}

// GetProfile always fails with ErrNoProfile.
func (None) GetProfile(context.Context) (model.FreelancerProfile, error) {
	return model.FreelancerProfile{}, ErrNoProfile
}
