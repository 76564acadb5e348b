package repository_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/gigmatch/internal/adapters/repository"
	"github.com/okian/gigmatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	Convey("Given a valid catalog file", t, func() {
		path := writeCatalog(t, `
projects:
  - id: shop
    title: Storefront rebuild
    description: Modernise our E-commerce checkout
    required_skills: [React, TypeScript]
    budget_min: 5000
    budget_max: 8000
    deadline_label: 2 weeks
    client:
      name: Acme
      rating: 4.6
      location: Berlin
  - id: ml
    title: Recommendation model
    required_skills: [Python]
    budget_min: 500.5
    budget_max: 1500
`)

		Convey("When it is loaded", func() {
			listings, err := repository.LoadCatalog(path)

			Convey("Then every listing is decoded", func() {
				So(err, ShouldBeNil)
				So(len(listings), ShouldEqual, 2)
				So(listings[0].ID, ShouldEqual, "shop")
				So(listings[0].RequiredSkills, ShouldResemble, []string{"React", "TypeScript"})
				So(listings[0].BudgetMax, ShouldEqual, 8000.0)
				So(listings[0].Client.Name, ShouldEqual, "Acme")
				So(listings[0].Client.Rating, ShouldEqual, 4.6)
				So(listings[1].BudgetMin, ShouldEqual, 500.5)
			})
		})
	})

	Convey("Given invalid catalogs", t, func() {
		cases := map[string]string{
			"missing id":      "projects:\n  - title: x\n",
			"duplicate id":    "projects:\n  - id: a\n  - id: a\n",
			"inverted budget": "projects:\n  - id: a\n    budget_min: 10\n    budget_max: 5\n",
			"negative budget": "projects:\n  - id: a\n    budget_min: -1\n",
			"client rating":   "projects:\n  - id: a\n    client:\n      rating: 7\n",
			"malformed yaml":  "projects: [",
		}
		for name, content := range cases {
			Convey("When the catalog has a "+name, func() {
				_, err := repository.LoadCatalog(writeCatalog(t, content))
				So(errors.Is(err, repository.ErrInvalidCatalog), ShouldBeTrue)
			})
		}

		Convey("When the file is missing", func() {
			_, err := repository.LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
			So(errors.Is(err, repository.ErrInvalidCatalog), ShouldBeTrue)
		})
	})

	Convey("ValidateListings accepts an empty pool", t, func() {
		So(repository.ValidateListings(nil), ShouldBeNil)
		So(repository.ValidateListings([]model.ProjectListing{{ID: "x", BudgetMin: 1, BudgetMax: 1}}), ShouldBeNil)
	})
}
