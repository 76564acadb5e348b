package profiles_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/gigmatch/internal/adapters/profiles"
	"github.com/okian/gigmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStatic(t *testing.T) {
	Convey("Given a static provider", t, func() {
		p := profiles.Static{Profile: model.FreelancerProfile{Skills: []string{"Go"}, Rating: 4}}

		Convey("Then each call returns an independent copy", func() {
			a, err := p.GetProfile(context.Background())
			So(err, ShouldBeNil)
			a.Skills[0] = "Rust"
			b, _ := p.GetProfile(context.Background())
			So(b.Skills[0], ShouldEqual, "Go")
		})
	})
}

func TestFile(t *testing.T) {
	Convey("Given a profile file", t, func() {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		write := func(s string) {
			So(os.WriteFile(path, []byte(s), 0o600), ShouldBeNil)
		}
		write("skills: [React, TypeScript]\nexperience_tags: [E-commerce]\ncompleted_projects: 42\nrating: 4.8\n")
		p := profiles.File{Path: path}

		Convey("When it is read", func() {
			got, err := p.GetProfile(context.Background())

			Convey("Then the profile is decoded", func() {
				So(err, ShouldBeNil)
				So(got.Skills, ShouldResemble, []string{"React", "TypeScript"})
				So(got.ExperienceTags, ShouldResemble, []string{"E-commerce"})
				So(got.CompletedProjects, ShouldEqual, 42)
				So(got.Rating, ShouldEqual, 4.8)
			})
		})

		Convey("When the file changes between calls", func() {
			write("skills: [Go]\nrating: 3\n")

			Convey("Then the next call sees the change", func() {
				got, err := p.GetProfile(context.Background())
				So(err, ShouldBeNil)
				So(got.Skills, ShouldResemble, []string{"Go"})
			})
		})

		Convey("When the rating is out of range", func() {
			write("rating: 9\n")
			_, err := p.GetProfile(context.Background())
			So(errors.Is(err, profiles.ErrLoad), ShouldBeTrue)
		})

		Convey("When the file is missing", func() {
			_, err := profiles.File{Path: path + ".missing"}.GetProfile(context.Background())
			So(errors.Is(err, profiles.ErrLoad), ShouldBeTrue)
		})
	})

	Convey("Given no profile source", t, func() {
		_, err := profiles.File{}.GetProfile(context.Background())
		So(errors.Is(err, profiles.ErrNoProfile), ShouldBeTrue)
		_, err = profiles.None{}.GetProfile(context.Background())
		So(errors.Is(err, profiles.ErrNoProfile), ShouldBeTrue)
	})
}
