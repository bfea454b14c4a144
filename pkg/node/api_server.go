package node

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lioia/birank/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ApiServerImpl struct {
	Node *Node
}

// NewApiServer wires the HTTP API of a master node.
func NewApiServer(n *Node) *echo.Echo {
	s := &ApiServerImpl{Node: n}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/health", s.Health)
	e.POST("/rank", s.Rank)
	e.POST("/jobs", s.Submit)
	e.GET("/jobs", s.Jobs)
	e.GET("/jobs/:id", s.Job)
	e.DELETE("/jobs/:id", s.Forget)
	return e
}

func (s *ApiServerImpl) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"id":   s.Node.Id,
		"role": RoleToString(s.Node.Role),
	})
}

// Rank computes the job in the request and answers with its result.
func (s *ApiServerImpl) Rank(c echo.Context) error {
	job := Job{Options: s.Node.Options}
	if err := c.Bind(&job); err != nil {
		return err
	}
	utils.ServerLog("rank %s job with %d edges", job.Kind, len(job.Edges))
	res, err := Run(job)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

// Submit queues the job and answers with its id. Without a work queue the
// job is computed on this node before answering.
func (s *ApiServerImpl) Submit(c echo.Context) error {
	job := Job{Options: s.Node.Options}
	if err := c.Bind(&job); err != nil {
		return err
	}
	id, err := gonanoid.New()
	if err != nil {
		return err
	}
	job.ID = id
	if s.Node.Queue == nil {
		// No other node in the network -> computing on this node
		res, err := Run(job)
		if err != nil {
			res.Error = err.Error()
		}
		s.Node.Results.Put(id, res)
	} else {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := s.Node.Enqueue(ctx, job); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, fmt.Sprintf("could not queue job: %v", err))
		}
	}
	utils.ServerLog("job %s submitted", id)
	return c.JSON(http.StatusAccepted, map[string]string{"id": id})
}

// Job answers with a finished job, or 404 while it is unknown or pending.
func (s *ApiServerImpl) Job(c echo.Context) error {
	res, ok := s.Node.Results.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "job not found or not finished")
	}
	return c.JSON(http.StatusOK, res)
}

// Jobs lists the ids of finished jobs.
func (s *ApiServerImpl) Jobs(c echo.Context) error {
	ids := s.Node.Results.Keys()
	sort.Strings(ids)
	return c.JSON(http.StatusOK, map[string]any{
		"count": s.Node.Results.Len(),
		"ids":   ids,
	})
}

// Forget drops a finished job from the master state.
func (s *ApiServerImpl) Forget(c echo.Context) error {
	id := c.Param("id")
	if _, ok := s.Node.Results.Get(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "job not found or not finished")
	}
	s.Node.Results.Delete(id)
	utils.ServerLog("job %s forgotten", id)
	return c.NoContent(http.StatusNoContent)
}
