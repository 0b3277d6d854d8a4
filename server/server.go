package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Legacy UI defaults.
const (
	defaultStrategy  = "dijkstra"
	defaultHeuristic = "one"
)

// Server routes HTTP requests to pathfind.
type Server struct {
	opts   Options
	engine *gin.Engine
}

// New builds the router. The gin mode is left to the caller (gin.SetMode).
func New(opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{opts: o, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.logRequests())
	if o.AllowOrigin != "" {
		s.engine.Use(s.cors())
	}
	s.engine.GET("/healthz", s.health)
	api := s.engine.Group("/api/v1")
	api.GET("/strategies", s.strategies)
	api.POST("/search", s.search)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		entry := s.opts.Logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(began),
			"client":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Warn("request failed")
			return
		}
		entry.Info("request")
	}
}

func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", s.opts.AllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) strategies(c *gin.Context) {
	resp := StrategiesResponse{
		DefaultStrategy:  defaultStrategy,
		DefaultHeuristic: defaultHeuristic,
	}
	for _, st := range pathfind.Strategies() {
		resp.Strategies = append(resp.Strategies, st.String())
	}
	for _, k := range heuristic.Kinds() {
		resp.Heuristics = append(resp.Heuristics, HeuristicJSON{Selector: k.Selector(), Name: k.String()})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) search(c *gin.Context) {
	var body SearchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	req, err := s.buildRequest(body)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	out, err := pathfind.Search(c.Request.Context(), req, pathfind.WithLogger(s.opts.Logger))
	switch {
	case errors.Is(err, grid.ErrUnreachable):
		c.JSON(http.StatusOK, SearchResponse{
			Strategy:  req.Strategy.String(),
			Heuristic: req.Heuristic.Selector(),
			Path:      []CoordJSON{},
			Frames:    [][]CellJSON{},
			Message:   s.opts.Translator.Get(MsgNoRoute),
			Reachable: len(req.Grid.Region(req.Start)),
		})
	case err != nil:
		s.badRequest(c, err)
	default:
		c.JSON(http.StatusOK, encodeOutcome(req, out))
	}
}

// buildRequest validates the body and assembles the board. Duplicate
// obstacles are dropped; off-board obstacles are an error.
func (s *Server) buildRequest(body SearchRequest) (pathfind.Request, error) {
	size := body.Size
	if size == 0 {
		size = grid.DefaultSize
	}
	if size > s.opts.MaxSize {
		return pathfind.Request{}, fmt.Errorf("%w: %d exceeds the limit of %d", grid.ErrBadSize, size, s.opts.MaxSize)
	}
	selector := body.Strategy
	if selector == "" {
		selector = defaultStrategy
	}
	strategy, err := pathfind.ParseStrategy(selector)
	if err != nil {
		return pathfind.Request{}, err
	}
	hSelector := body.Heuristic
	if hSelector == "" {
		hSelector = defaultHeuristic
	}

	seen := mapset.New[grid.Coord]()
	cells := make([]grid.Coord, 0, len(body.Obstacles))
	for _, o := range body.Obstacles {
		c := o.coord()
		if seen.Has(c) {
			continue
		}
		seen.Put(c)
		cells = append(cells, c)
	}
	g, err := grid.FromObstacles(size, cells)
	if err != nil {
		return pathfind.Request{}, err
	}

	return pathfind.Request{
		Grid:      g,
		Start:     body.Start.coord(),
		End:       body.End.coord(),
		Strategy:  strategy,
		Heuristic: heuristic.ParseKind(hSelector),
	}, nil
}

func (s *Server) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   err.Error(),
		"message": s.opts.Translator.Get(MsgInvalidRequest),
	})
}

// encodeOutcome flattens an outcome into frames for the renderer.
func encodeOutcome(req pathfind.Request, out *pathfind.Outcome) SearchResponse {
	resp := SearchResponse{
		Strategy:  out.Strategy.String(),
		Heuristic: req.Heuristic.Selector(),
		Found:     true,
		Steps:     out.Steps,
		Cost:      out.Cost(),
		Path:      toJSON(out.Route()),
		ElapsedMs: float64(out.Elapsed.Microseconds()) / 1000,
	}
	if out.Greedy != nil {
		resp.Frames = make([][]CellJSON, 0, len(out.Greedy.Steps))
		for _, st := range out.Greedy.Steps {
			frame := make([]CellJSON, 0, len(st.Candidates))
			for _, cand := range st.Candidates {
				frame = append(frame, CellJSON{
					X: cand.Cell.X, Y: cand.Cell.Y, Kind: cand.Kind.String(),
					G: cand.G, H: cand.H, F: cand.F,
				})
			}
			resp.Frames = append(resp.Frames, frame)
		}
		return resp
	}
	resp.Frames = make([][]CellJSON, 0, len(resp.Path))
	for _, p := range resp.Path {
		resp.Frames = append(resp.Frames, []CellJSON{{X: p.X, Y: p.Y, Kind: grid.Route.String()}})
	}

	return resp
}
