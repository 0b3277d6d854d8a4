package server

import (
	"io"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
)

// Message IDs passed to the Translator.
const (
	MsgNoRoute        = "No route found"
	MsgInvalidRequest = "Invalid search request"
)

// DefaultMaxSize bounds the side length accepted from clients.
const DefaultMaxSize = 200

// Translator resolves user-facing messages. *gotext.Locale satisfies it.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

// globalLocale uses the package-level gotext configuration.
type globalLocale struct{}

func (globalLocale) Get(str string, vars ...interface{}) string {
	return gotext.Get(str, vars...)
}

// Options configures a Server.
type Options struct {
	Logger      logrus.FieldLogger
	Translator  Translator
	MaxSize     int
	AllowOrigin string // Access-Control-Allow-Origin; empty disables CORS headers
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discarding logger, the global gotext locale,
// DefaultMaxSize and CORS open to any origin.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Logger:      l,
		Translator:  globalLocale{},
		MaxSize:     DefaultMaxSize,
		AllowOrigin: "*",
	}
}

// WithLogger sets the request and search logger. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTranslator sets the message translator. A nil t is ignored.
func WithTranslator(t Translator) Option {
	return func(o *Options) {
		if t != nil {
			o.Translator = t
		}
	}
}

// WithMaxSize caps the board side length. Values below 1 are ignored.
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxSize = n
		}
	}
}

// WithAllowOrigin sets the CORS origin. "" disables the CORS middleware.
func WithAllowOrigin(origin string) Option {
	return func(o *Options) {
		o.AllowOrigin = origin
	}
}

// CoordJSON is a cell on the wire.
type CoordJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c CoordJSON) coord() grid.Coord { return grid.Coord{X: c.X, Y: c.Y} }

func toJSON(cells []grid.Coord) []CoordJSON {
	out := make([]CoordJSON, len(cells))
	for i, c := range cells {
		out[i] = CoordJSON{X: c.X, Y: c.Y}
	}
	return out
}

// SearchRequest is the body of POST /api/v1/search.
// Size 0 means grid.DefaultSize; empty selectors use the legacy defaults
// ("dijkstra" and "one").
type SearchRequest struct {
	Size      int         `json:"size" binding:"omitempty,min=1"`
	Obstacles []CoordJSON `json:"obstacles"`
	Start     *CoordJSON  `json:"start" binding:"required"`
	End       *CoordJSON  `json:"end" binding:"required"`
	Strategy  string      `json:"strategy"`
	Heuristic string      `json:"heuristic"`
}

// CellJSON is one cell of an animation frame.
type CellJSON struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Kind string  `json:"kind"`
	G    float64 `json:"g,omitempty"`
	H    float64 `json:"h,omitempty"`
	F    float64 `json:"f,omitempty"`
}

// SearchResponse is the body of a completed search, found or not.
// Frames holds one entry per animation step: the scored neighbours for the
// greedy walker, a single route cell for Dijkstra and A*.
type SearchResponse struct {
	Strategy  string       `json:"strategy"`
	Heuristic string       `json:"heuristic"`
	Found     bool         `json:"found"`
	Steps     int          `json:"steps"`
	Cost      float64      `json:"cost"`
	Path      []CoordJSON  `json:"path"`
	Frames    [][]CellJSON `json:"frames"`
	Message   string       `json:"message,omitempty"`
	ElapsedMs float64      `json:"elapsedMs"`
	// Reachable counts the cells connected to the start; set only when no
	// route was found.
	Reachable int `json:"reachable,omitempty"`
}

// HeuristicJSON describes one selectable heuristic.
type HeuristicJSON struct {
	Selector string `json:"selector"`
	Name     string `json:"name"`
}

// StrategiesResponse is the body of GET /api/v1/strategies.
type StrategiesResponse struct {
	Strategies       []string        `json:"strategies"`
	Heuristics       []HeuristicJSON `json:"heuristics"`
	DefaultStrategy  string          `json:"defaultStrategy"`
	DefaultHeuristic string          `json:"defaultHeuristic"`
}
