// Package server exposes pathfind over HTTP/JSON with gin.
//
// Routes:
//
//	GET  /healthz            liveness probe
//	GET  /api/v1/strategies  strategy and heuristic selectors with defaults
//	POST /api/v1/search      run one search
//
// A search request carries the whole board, so the server holds no state
// between requests:
//
//	{"size":25,"obstacles":[{"x":6,"y":3}],"start":{"x":3,"y":5},
//	 "end":{"x":20,"y":22},"strategy":"dijkstra","heuristic":"one"}
//
// An unreachable goal is a normal answer (200, found=false, with a
// localised message). Malformed bodies and invalid boards are 400 with an
// "error" field. User-facing messages go through a gotext translator.
package server
