package profile_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a raw freelancer profile", t, func() {
		raw := model.FreelancerProfile{
			Skills:            []string{"  React ", "react", "TypeScript", "", "   "},
			ExperienceTags:    []string{"E-commerce", "e-COMMERCE ", "FinTech"},
			CompletedProjects: 42,
			Rating:            4.8,
		}

		Convey("When it is normalized", func() {
			n, err := profile.Normalize(raw)

			Convey("Then skills are trimmed, lower-cased and deduplicated", func() {
				So(err, ShouldBeNil)
				So(n.Skills(), ShouldResemble, []string{"react", "typescript"})
				So(n.Tags(), ShouldResemble, []string{"e-commerce", "fintech"})
			})

			Convey("And lookups are case-insensitive", func() {
				So(n.HasSkill("REACT"), ShouldBeTrue)
				So(n.HasSkill(" typescript"), ShouldBeTrue)
				So(n.HasSkill("go"), ShouldBeFalse)
				So(n.HasTag("Fintech"), ShouldBeTrue)
			})

			Convey("And the numeric fields are carried over", func() {
				So(n.Completed, ShouldEqual, 42)
				So(n.Rating, ShouldEqual, 4.8)
			})

			Convey("And the input is left untouched", func() {
				So(raw.Skills[0], ShouldEqual, "  React ")
			})
		})
	})

	Convey("Given composed and decomposed spellings of the same skill", t, func() {
		raw := model.FreelancerProfile{Skills: []string{"Caf\u00e9", "Cafe\u0301"}}

		Convey("Then they collapse into one canonical entry", func() {
			n, err := profile.Normalize(raw)
			So(err, ShouldBeNil)
			So(len(n.Skills()), ShouldEqual, 1)
			So(n.HasSkill("CAFÉ"), ShouldBeTrue)
		})
	})

	Convey("Given invalid profiles", t, func() {
		cases := map[string]model.FreelancerProfile{
			"rating above five": {Rating: 5.1},
			"negative rating":   {Rating: -0.1},
			"NaN rating":        {Rating: math.NaN()},
			"negative projects": {Rating: 3, CompletedProjects: -1},
		}
		for name, p := range cases {
			Convey("When the profile has a "+name, func() {
				_, err := profile.Normalize(p)
				So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)
			})
		}
	})

	Convey("Given boundary values", t, func() {
		Convey("Then rating 0 and 5 are accepted", func() {
			_, err := profile.Normalize(model.FreelancerProfile{Rating: 0})
			So(err, ShouldBeNil)
			_, err = profile.Normalize(model.FreelancerProfile{Rating: 5})
			So(err, ShouldBeNil)
		})
	})
}

func TestCanonical(t *testing.T) {
	Convey("Canonical trims and lower-cases", t, func() {
		So(profile.Canonical("  Go Lang\t"), ShouldEqual, "go lang")
		So(profile.Canonical(""), ShouldEqual, "")
	})
}

func TestFold(t *testing.T) {
	Convey("Fold lower-cases and composes but keeps whitespace", t, func() {
		So(profile.Fold(" React "), ShouldEqual, " react ")
		So(profile.Fold("Café"), ShouldEqual, profile.Fold("CAFÉ"))
	})
}
