package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the cheatsheet's prometheus collectors.
type Recorder struct {
	sectionsRun    *prometheus.CounterVec
	divisionErrors prometheus.Counter
}

// NewRecorder creates a Recorder and registers its collectors on reg.
// Registering twice on the same registry returns the registration error.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		sectionsRun: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cheatsheet_sections_total",
				Help: "Total number of cheatsheet sections executed.",
			},
			[]string{"section"},
		),
		divisionErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cheatsheet_division_errors_total",
				Help: "Total number of divisions that failed and were replaced by zero.",
			},
		),
	}

	for _, c := range []prometheus.Collector{r.sectionsRun, r.divisionErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// SectionRun counts one execution of the named section.
func (r *Recorder) SectionRun(section string) {
	if r == nil {
		return
	}
	r.sectionsRun.WithLabelValues(section).Inc()
}

// DivisionError counts one division that fell back to zero.
func (r *Recorder) DivisionError() {
	if r == nil {
		return
	}
	r.divisionErrors.Inc()
}

// Totals reads the counters back from a gatherer: executions per section and
// the division error count.
func Totals(g prometheus.Gatherer) (map[string]float64, float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, 0, err
	}

	sections := make(map[string]float64)
	var divErrs float64
	for _, mf := range mfs {
		switch mf.GetName() {
		case "cheatsheet_sections_total":
			for _, m := range mf.GetMetric() {
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "section" {
						sections[lp.GetValue()] += m.GetCounter().GetValue()
					}
				}
			}
		case "cheatsheet_division_errors_total":
			for _, m := range mf.GetMetric() {
				divErrs += m.GetCounter().GetValue()
			}
		}
	}
	return sections, divErrs, nil
}
