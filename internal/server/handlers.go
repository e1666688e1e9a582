package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathcost/core"
	"github.com/katalvlaran/pathcost/dijkstra"
	"github.com/katalvlaran/pathcost/internal/cache"
	"github.com/katalvlaran/pathcost/internal/ctxlog"
	"github.com/katalvlaran/pathcost/report"
)

type shortestPathsReq struct {
	Source   string                `json:"source"`
	Directed *bool                 `json:"directed"`
	Graph    map[string][]core.Arc `json:"graph"`
}

type shortestPathsResp struct {
	OK        bool   `json:"ok"`
	RequestID string `json:"request_id"`
	report.DistanceReport
	Cached bool `json:"cached"`
}

func (s *Server) shortestPaths(c *gin.Context) {
	ctx := c.Request.Context()
	logger := ctxlog.FromContext(ctx)

	var req shortestPathsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if req.Source == "" || len(req.Graph) == 0 {
		s.fail(c, http.StatusBadRequest, "source and graph are required")
		return
	}
	directed := req.Directed == nil || *req.Directed

	key := cache.Key(req.Source, directed, req.Graph)
	if s.cache != nil {
		rep, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, s.respond(c, rep, true))
			return
		case !errors.Is(err, cache.ErrMiss):
			logger.Warn("cache read failed", slog.Any("error", err))
		}
	}

	var gopts []core.GraphOption
	if !directed {
		gopts = append(gopts, core.WithUndirected())
	}
	g, err := core.FromAdjacency(req.Graph, gopts...)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if s.maxNodes > 0 && g.VertexCount() > s.maxNodes {
		s.fail(c, http.StatusBadRequest, fmt.Sprintf("graph has %d vertices, limit is %d", g.VertexCount(), s.maxNodes))
		return
	}

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(req.Source), dijkstra.WithLogger(logger))
	if err != nil {
		s.fail(c, statusFor(err), err.Error())
		return
	}

	rep := report.NewDistanceReport(req.Source, dist)
	if s.cache != nil {
		if err := s.cache.Put(ctx, key, rep); err != nil {
			logger.Warn("cache write failed", slog.Any("error", err))
		}
	}

	c.JSON(http.StatusOK, s.respond(c, rep, false))
}

func (s *Server) respond(c *gin.Context, rep report.DistanceReport, cached bool) shortestPathsResp {
	return shortestPathsResp{
		OK:             true,
		RequestID:      c.GetString(ctxRequestID),
		DistanceReport: rep,
		Cached:         cached,
	}
}

func (s *Server) fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg, "request_id": c.GetString(ctxRequestID)})
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dijkstra.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dijkstra.ErrEmptySource):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
