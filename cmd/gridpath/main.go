// Command gridpath runs one search over an ASCII layout and prints the board
// with the route (*) and the examined cells (o) overlaid.
//
// Exit status: 0 when a route is found, 2 when the goal is unreachable,
// 1 on bad input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfind"
)

const (
	exitOK          = 0
	exitBadInput    = 1
	exitUnreachable = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		layoutFile = fs.String("layout", "", "ASCII layout file (default: the built-in 25x25 demo board)")
		strategy   = fs.String("strategy", "dijkstra", "Search strategy: greedy, dijkstra, astar (aStar = greedy)")
		hSelector  = fs.String("heuristic", "one", "Heuristic: one|diagonal, two|manhattan, three|euclidean")
		startFlag  = fs.String("start", "", "Override the start cell, as x,y")
		endFlag    = fs.String("end", "", "Override the end cell, as x,y")
		logLevel   = fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gridpath [options]\n\n")
		fmt.Fprintf(stderr, "Layout glyphs: '.' empty, '#' obstacle, 'S' start, 'E' end.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  gridpath                                   # Dijkstra on the demo board\n")
		fmt.Fprintf(stderr, "  gridpath -strategy greedy -heuristic three\n")
		fmt.Fprintf(stderr, "  gridpath -layout maze.txt -start 0,0 -end 9,9\n")
	}
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "gridpath:", err)
		return exitBadInput
	}
	log.SetLevel(level)

	g, start, end, err := loadBoard(*layoutFile)
	if err != nil {
		log.WithError(err).Error("cannot load layout")
		return exitBadInput
	}
	if start, err = overrideCoord(*startFlag, start); err != nil {
		log.WithError(err).Error("bad -start")
		return exitBadInput
	}
	if end, err = overrideCoord(*endFlag, end); err != nil {
		log.WithError(err).Error("bad -end")
		return exitBadInput
	}
	if err = g.Place(start, end); err != nil {
		log.WithError(err).Error("bad endpoints")
		return exitBadInput
	}
	s, err := pathfind.ParseStrategy(*strategy)
	if err != nil {
		log.WithError(err).Error("bad -strategy")
		return exitBadInput
	}

	out, err := pathfind.Search(context.Background(), pathfind.Request{
		Grid:      g,
		Start:     start,
		End:       end,
		Strategy:  s,
		Heuristic: heuristic.ParseKind(*hSelector),
	}, pathfind.WithLogger(log))
	if errors.Is(err, grid.ErrUnreachable) {
		fmt.Fprint(stdout, g.String())
		fmt.Fprintf(stdout, "no route from %v to %v (start region: %d cells, goal reachable: %t)\n",
			start, end, len(g.Region(start)), g.Connected(start, end))
		return exitUnreachable
	}
	if err != nil {
		log.WithError(err).Error("search failed")
		return exitBadInput
	}

	pathfind.Apply(g, out)
	fmt.Fprint(stdout, g.String())
	fmt.Fprintf(stdout, "strategy: %s\nsteps: %d\n", out.Strategy, out.Steps)
	if out.Strategy != pathfind.Greedy {
		fmt.Fprintf(stdout, "cost: %.3f\n", out.Cost())
	}

	return exitOK
}

// loadBoard reads the layout file, or returns the demo board when path is empty.
func loadBoard(path string) (*grid.Grid, grid.Coord, grid.Coord, error) {
	if path == "" {
		return grid.Demo(), grid.DemoStart, grid.DemoEnd, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, grid.Coord{}, grid.Coord{}, err
	}

	return grid.Parse(string(raw))
}

// overrideCoord parses "x,y", or returns def when s is empty.
func overrideCoord(s string, def grid.Coord) (grid.Coord, error) {
	if s == "" {
		return def, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad y in %q: %w", s, err)
	}

	return grid.Coord{X: x, Y: y}, nil
}
