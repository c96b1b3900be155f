package flow

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/residual"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source and sink are the same vertex.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")

	// ErrUnknownAlgorithm is returned for an unsupported Algorithm.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// Algorithm selects a maximum-flow method.
type Algorithm int

const (
	// EdmondsKarpAlgorithm uses BFS shortest augmenting paths. It is the zero value.
	EdmondsKarpAlgorithm Algorithm = iota
	// FordFulkersonAlgorithm uses DFS augmenting paths.
	FordFulkersonAlgorithm
	// DinicAlgorithm uses level graphs and blocking flows.
	DinicAlgorithm
)

var algorithmNames = map[Algorithm]string{
	EdmondsKarpAlgorithm:   "edmonds-karp",
	FordFulkersonAlgorithm: "ford-fulkerson",
	DinicAlgorithm:         "dinic",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "edmonds-karp", "ford-fulkerson", or "dinic" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// FlowOptions configures all max-flow algorithms. A nil *FlowOptions means defaults.
//   - Logger: receives one Debug entry per augmentation (default logrus.StandardLogger()).
//   - OnAugment: if set, called after each augmentation with the arcs used and
//     the amount pushed. The arcs describe the residual network before the push.
type FlowOptions struct {
	Logger    logrus.FieldLogger
	OnAugment func(path []residual.Arc, amount int64)
}

// DefaultOptions returns FlowOptions with the standard logrus logger and no hook.
func DefaultOptions() FlowOptions {
	return FlowOptions{Logger: logrus.StandardLogger()}
}

// normalize returns a filled copy of opts (nil-safe).
func normalize(opts *FlowOptions) FlowOptions {
	o := DefaultOptions()
	if opts != nil {
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
		o.OnAugment = opts.OnAugment
	}

	return o
}
