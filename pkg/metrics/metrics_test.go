package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(registry),
			WithNamespace("test"),
			WithSubsystem("unit"),
			WithHistogramBuckets([]float64{1, 10, 100}),
		)

		Convey("When searches are recorded", func() {
			m.RecordSearch(12, 3, 4.2)
			m.RecordSearch(8, 0, 1.1)
			m.RecordSearchError("invalid_threshold")

			Convey("Then the counters reflect them", func() {
				So(value(registry, "test_unit_searches_total"), ShouldEqual, 2)
				So(value(registry, "test_unit_listings_scored_total"), ShouldEqual, 20)
				So(value(registry, "test_unit_search_errors_total", "invalid_threshold"), ShouldEqual, 1)
				So(value(registry, "test_unit_search_latency_milliseconds"), ShouldEqual, 2)
			})
		})

		Convey("When recommendations are recorded", func() {
			So(m.RecordRecommendation("Perfect"), ShouldBeNil)
			So(m.RecordRecommendation("Perfect"), ShouldBeNil)
			err := m.RecordRecommendation("Legendary")

			Convey("Then known tiers are counted and unknown ones rejected", func() {
				So(errors.Is(err, ErrUnknownTier), ShouldBeTrue)
				So(value(registry, "test_unit_recommendations_total", "Perfect"), ShouldEqual, 2)
			})
		})

		Convey("When pool and HTTP metrics are recorded", func() {
			m.SetCatalogListings(42)
			m.RecordDuplicateListing()
			m.RecordRepositoryQuery("memory", 0.3)
			m.RecordHTTPRequest("/search", "POST", "200", 3)
			m.RecordErrorByEndpoint("/search", "POST", "bad_request")

			Convey("Then they are exposed with their labels", func() {
				So(value(registry, "test_unit_catalog_listings"), ShouldEqual, 42)
				So(value(registry, "test_unit_listings_duplicate_total"), ShouldEqual, 1)
				So(value(registry, "test_unit_http_requests_total", "/search", "POST", "200"), ShouldEqual, 1)
				So(value(registry, "test_unit_errors_by_endpoint_total", "/search", "bad_request", "POST"), ShouldEqual, 1)
			})
		})

		Convey("When the runtime sampler runs", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				m.RunRuntimeSampler(ctx)
				close(done)
			}()
			time.Sleep(10 * time.Millisecond)
			cancel()
			<-done

			Convey("Then the goroutine gauge is populated", func() {
				So(value(registry, "test_unit_system_goroutine_count"), ShouldBeGreaterThan, 0)
			})
		})
	})

	Convey("Given a manager with a custom refresh interval", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithRefreshInterval(time.Second))
		So(m.RefreshInterval(), ShouldEqual, time.Second)

		Convey("When the interval is changed after construction", func() {
			m.SetRefreshInterval(5 * time.Millisecond)
			So(m.RefreshInterval(), ShouldEqual, 5*time.Millisecond)

			Convey("Then non-positive values are ignored", func() {
				m.SetRefreshInterval(0)
				m.SetRefreshInterval(-time.Second)
				So(m.RefreshInterval(), ShouldEqual, 5*time.Millisecond)
			})
		})
	})

	Convey("Given a default manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
		So(m.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Package helpers record on the global registry", t, func() {
		So(func() {
			RecordSearch(1, 1, 0.5)
			RecordSearchError("internal")
			_ = RecordRecommendation("Fair")
			SetCatalogListings(3)
			RecordRepositoryQuery("postgres", 2)
			RecordDuplicateListing()
			RecordHTTPRequest("/projects", "GET", "200", 1)
			RecordErrorByEndpoint("/projects", "GET", "bad_request")
			SetRefreshInterval(defaultRefreshInterval)
		}, ShouldNotPanic)
		So(globalManager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)

		families, err := GetRegistry().Gather()
		So(err, ShouldBeNil)
		names := map[string]bool{}
		for _, f := range families {
			names[f.GetName()] = true
		}
		So(names["gigmatch_matcher_searches_total"], ShouldBeTrue)
		So(names["gigmatch_matcher_catalog_listings"], ShouldBeTrue)
	})
}

// value returns the counter or gauge value, or the histogram sample count,
// of the series of name whose label values, sorted by label name, equal labels.
func value(reg *prometheus.Registry, name string, labels ...string) float64 {
	families, err := reg.Gather()
	if err != nil {
		return -1
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range f.GetMetric() {
			pairs := metric.GetLabel()
			if len(pairs) != len(labels) {
				continue
			}
			for i, p := range pairs {
				if p.GetValue() != labels[i] {
					continue metrics
				}
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return -1
}
