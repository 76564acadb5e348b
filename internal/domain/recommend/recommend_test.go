package recommend_test

import (
	"errors"
	"testing"

	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/recommend"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecommend(t *testing.T) {
	Convey("Given the tier boundaries", t, func() {
		cases := []struct {
			score int
			tier  model.Tier
		}{
			{100, model.TierPerfect},
			{90, model.TierPerfect},
			{89, model.TierGreat},
			{75, model.TierGreat},
			{74, model.TierGood},
			{60, model.TierGood},
			{59, model.TierFair},
			{0, model.TierFair},
		}
		for _, c := range cases {
			r, err := recommend.Recommend(c.score)
			So(err, ShouldBeNil)
			So(r.Tier, ShouldEqual, c.tier)
			So(r.Message, ShouldEqual, recommend.Message(c.tier))
		}
	})

	Convey("Every integer score from 0 to 100 maps to exactly one tier", t, func() {
		valid := map[model.Tier]bool{}
		for _, tier := range recommend.Tiers() {
			valid[tier] = true
		}
		So(len(valid), ShouldEqual, 4)
		seen := map[model.Tier]int{}
		for s := 0; s <= 100; s++ {
			r, err := recommend.Recommend(s)
			So(err, ShouldBeNil)
			So(valid[r.Tier], ShouldBeTrue)
			So(r.Message, ShouldNotBeBlank)
			seen[r.Tier]++
		}
		So(seen[model.TierPerfect], ShouldEqual, 11)
		So(seen[model.TierGreat], ShouldEqual, 15)
		So(seen[model.TierGood], ShouldEqual, 15)
		So(seen[model.TierFair], ShouldEqual, 60)
	})

	Convey("Messages depend on the tier only", t, func() {
		a, _ := recommend.Recommend(91)
		b, _ := recommend.Recommend(99)
		So(a.Message, ShouldEqual, b.Message)
	})

	Convey("Out-of-range scores fail", t, func() {
		for _, s := range []int{-1, 101, 1000} {
			_, err := recommend.Recommend(s)
			So(errors.Is(err, recommend.ErrInvalidScore), ShouldBeTrue)
		}
	})

	Convey("Unknown tiers have no message", t, func() {
		So(recommend.Message(model.Tier("Legendary")), ShouldEqual, "")
	})
}
