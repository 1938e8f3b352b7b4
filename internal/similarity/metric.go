package similarity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultMetric is the metric used when none is configured.
const DefaultMetric = "ratio"

// UnknownMetricError is returned by New for an unsupported metric name.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown similarity metric %q (expected one of: %s)", e.Name, strings.Join(Metrics(), ", "))
}

var registry = map[string]func() Scorer{
	"ratio": func() Scorer { return ScorerFunc(Ratio) },
	"levenshtein": func() Scorer {
		return fromStrutil(metrics.NewLevenshtein())
	},
	"jaro-winkler": func() Scorer {
		return fromStrutil(metrics.NewJaroWinkler())
	},
	"sorensen-dice": func() Scorer {
		return fromStrutil(metrics.NewSorensenDice())
	},
}

// New returns the scorer registered under name. An empty name selects
// DefaultMetric.
func New(name string) (Scorer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultMetric
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, &UnknownMetricError{Name: name}
	}
	return ctor(), nil
}

// Metrics lists the registered metric names in sorted order.
func Metrics() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromStrutil wraps a strutil metric. strutil reports identical empty
// strings as fully similar already, so only scaling is needed here.
func fromStrutil(m strutil.StringMetric) Scorer {
	return ScorerFunc(func(a, b string) int {
		if a == b {
			return 100
		}
		return percent(strutil.Similarity(a, b, m))
	})
}
