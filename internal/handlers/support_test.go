package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/Twix-Akshat/Todo-Demo/internal/cache"
	"github.com/gin-gonic/gin"
)

// memoryViews is an in-memory stand-in for the Redis view cache so the
// suites can observe cache hits and invalidations.
type memoryViews struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []string
}

func newMemoryViews() *memoryViews {
	return &memoryViews{data: map[string][]byte{}}
}

func (m *memoryViews) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryViews) Set(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = data
	return nil
}

func (m *memoryViews) Invalidate(_ context.Context, views ...cache.View) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range views {
		m.invalidated = append(m.invalidated, v.Pattern)
		for key := range m.data {
			if ok, _ := path.Match(v.Pattern, key); ok {
				delete(m.data, key)
			}
		}
	}
	return nil
}

func (m *memoryViews) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// newTestRouter registers the full route set the server uses.
func newTestRouter(pages *PageHandler, tasks *TaskHandler, users *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", pages.Dashboard)
	r.GET("/users", pages.ListUsers)
	r.GET("/users/add", pages.NewUserForm)
	r.GET("/users/edit/:id", pages.EditUserForm)
	r.GET("/tasks/:userId", pages.TaskList)
	r.GET("/tasks/:userId/new", pages.NewTaskForm)
	r.GET("/tasks/:userId/edit/:id", pages.EditTaskForm)

	r.POST("/users", users.Create)
	r.POST("/users/update", users.Update)
	r.POST("/users/delete", users.Delete)
	r.POST("/tasks", tasks.Create)
	r.POST("/tasks/update", tasks.Update)
	r.POST("/tasks/delete", tasks.Delete)
	r.POST("/tasks/complete", tasks.Complete)

	return r
}

func postForm(router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPage(router *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// errorsFromLocation decodes the errors query parameter of a redirect
// target.
func errorsFromLocation(location string) map[string]string {
	u, err := url.Parse(location)
	if err != nil {
		return nil
	}

	var errs map[string]string
	if err := json.Unmarshal([]byte(u.Query().Get("errors")), &errs); err != nil {
		return nil
	}
	return errs
}
