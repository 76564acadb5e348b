package dedupe_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/okian/gigmatch/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeduper(t *testing.T) {
	Convey("Given an unbounded deduper", t, func() {
		d := dedupe.New()

		Convey("When an id is recorded twice", func() {
			first := d.Seen("listing-1")
			second := d.Seen("listing-1")

			Convey("Then only the second call reports it as seen", func() {
				So(first, ShouldBeFalse)
				So(second, ShouldBeTrue)
				So(d.Len(), ShouldEqual, 1)
			})
		})

		Convey("When many ids are recorded", func() {
			for i := range 1000 {
				So(d.Seen(fmt.Sprintf("listing-%d", i)), ShouldBeFalse)
			}

			Convey("Then none is evicted", func() {
				So(d.Len(), ShouldEqual, 1000)
				So(d.Seen("listing-0"), ShouldBeTrue)
			})
		})
	})

	Convey("Given a deduper bounded to three ids", t, func() {
		d := dedupe.New(dedupe.WithCapacity(3))
		for _, id := range []string{"a", "b", "c"} {
			d.Seen(id)
		}

		Convey("When a fourth id arrives", func() {
			So(d.Seen("d"), ShouldBeFalse)

			Convey("Then the oldest id is evicted", func() {
				So(d.Len(), ShouldEqual, 3)
				So(d.Seen("b"), ShouldBeTrue)
				So(d.Seen("c"), ShouldBeTrue)
				So(d.Seen("d"), ShouldBeTrue)
				So(d.Seen("a"), ShouldBeFalse)
			})
		})
	})

	Convey("Given concurrent writers", t, func() {
		d := dedupe.New(dedupe.WithCapacity(-1))
		const workers, perWorker = 8, 100

		var wg sync.WaitGroup
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := range perWorker {
					d.Seen(fmt.Sprintf("listing-%d-%d", w, j))
				}
			}()
		}
		wg.Wait()

		Convey("Then every id is recorded once", func() {
			So(d.Len(), ShouldEqual, workers*perWorker)
		})
	})
}
