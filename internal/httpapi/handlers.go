package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskpad/internal/output"
	"taskpad/internal/task"
)

type draftRequest struct {
	Title    string `json:"title"`
	EndDate  string `json:"endDate"` // RFC 3339 or YYYY-MM-DD
	Priority int    `json:"priority"`
}

type editRequest struct {
	draftRequest
	Completed bool `json:"completed"`
}

// draft converts the request. An empty endDate is left zero for validation
// to report.
func (r draftRequest) draft() (task.Draft, error) {
	var end time.Time
	if r.EndDate != "" {
		var err error
		end, err = task.ParseDate(r.EndDate)
		if err != nil {
			return task.Draft{}, err
		}
	}
	return task.Draft{Title: r.Title, EndDate: end, Priority: r.Priority}, nil
}

// POST /tasks
func (s *Server) create(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	d, err := req.draft()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	t, err := s.svc.CreateTask(c.Request.Context(), d)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.NewTaskRecord(t))
}

// viewsResponse holds both lists from one version of the collection.
type viewsResponse struct {
	Active    []output.TaskRecord `json:"active"`
	Completed []output.TaskRecord `json:"completed"`
}

// GET /tasks?sort=priority|endDate
func (s *Server) list(c *gin.Context) {
	key, ok := sortParam(c)
	if !ok {
		return
	}

	active, completed, err := s.svc.Views(c.Request.Context(), key)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, viewsResponse{
		Active:    output.NewTaskRecords(active),
		Completed: output.NewTaskRecords(completed),
	})
}

// GET /tasks/active?sort=priority|endDate
func (s *Server) active(c *gin.Context) {
	key, ok := sortParam(c)
	if !ok {
		return
	}

	tasks, err := s.svc.ActiveTasks(c.Request.Context(), key)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewTaskRecords(tasks))
}

// sortParam reads ?sort=, defaulting to priority. It writes a 400 and
// returns false for an unknown key.
func sortParam(c *gin.Context) (task.SortKey, bool) {
	raw := c.Query("sort")
	if raw == "" {
		return task.DefaultSortKey, true
	}
	key, err := task.ParseSortKey(raw)
	if err != nil {
		badRequest(c, err.Error())
		return "", false
	}
	return key, true
}

// GET /tasks/completed
func (s *Server) completed(c *gin.Context) {
	tasks, err := s.svc.CompletedTasks(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewTaskRecords(tasks))
}

// GET /tasks/:id
func (s *Server) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := s.svc.GetTask(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewTaskRecord(t))
}

// PUT /tasks/:id
func (s *Server) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	d, err := req.draft()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	t, err := s.svc.UpdateTask(c.Request.Context(), id, task.Edit{Draft: d, Completed: req.Completed})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewTaskRecord(t))
}

// POST /tasks/:id/toggle
func (s *Server) toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := s.svc.ToggleComplete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewTaskRecord(t))
}

// DELETE /tasks/:id
func (s *Server) delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := s.svc.DeleteTask(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		badRequest(c, "invalid task id")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrValidation):
		badRequest(c, err.Error())
	case errors.Is(err, task.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.log.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
