package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/miniproductivity/backend/internal/dto"
	"github.com/miniproductivity/backend/internal/middleware"
	"github.com/miniproductivity/backend/internal/models"
)

// memoryTaskStore keeps created tasks in order, newest first on list,
// standing in for the database in the end-to-end handler flow.
type memoryTaskStore struct {
	mockTaskStore
	tasks []models.Task
}

func newMemoryTaskStore() *memoryTaskStore {
	s := &memoryTaskStore{}
	s.createFunc = func(ownerEmail string, fields map[string]interface{}) (*dto.InsertResult, error) {
		task := models.Task{
			ID:        uuid.New(),
			UserEmail: ownerEmail,
			Status:    models.TaskStatusIncomplete,
		}
		if title, ok := fields["title"].(string); ok {
			task.Title = title
		}
		s.tasks = append([]models.Task{task}, s.tasks...)
		return &dto.InsertResult{Acknowledged: true, InsertedID: task.ID}, nil
	}
	s.listFunc = func(ownerEmail string) ([]models.Task, error) {
		var own []models.Task
		for _, task := range s.tasks {
			if task.UserEmail == ownerEmail {
				own = append(own, task)
			}
		}
		return own, nil
	}
	return s
}

// Full session flow: issue cookie, create two tasks with it, list them back
// newest first, and confirm another user sees none of them.
func TestSessionFlow_IssueCreateList(t *testing.T) {
	cfg := testConfig()
	store := newMemoryTaskStore()

	app := fiber.New()
	auth := middleware.CookieAuth(cfg)
	authHandler := NewAuthHandler(cfg)
	taskHandler := NewTaskHandler(store)
	app.Post("/jwt", authHandler.IssueToken)
	app.Post("/tasks", auth, taskHandler.Create)
	app.Get("/tasks", auth, taskHandler.List)

	// Issue the session cookie
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("jwt request failed: %v", err)
	}
	cookie := sessionCookieFrom(t, resp)

	// Create two tasks under that session
	for _, title := range []string{"write spec", "review spec"} {
		req = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"`+title+`"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		resp, err = app.Test(req)
		if err != nil {
			t.Fatalf("create request failed: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
	}

	// List returns both, newest first, owned by the cookie's email
	req = httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	var tasks []models.Task
	decodeBody(t, resp, &tasks)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "review spec" || tasks[1].Title != "write spec" {
		t.Fatalf("expected newest-first ordering, got %q then %q", tasks[0].Title, tasks[1].Title)
	}
	for _, task := range tasks {
		if task.UserEmail != "a@x.com" {
			t.Fatalf("expected owner a@x.com, got %q", task.UserEmail)
		}
		if task.Status != models.TaskStatusIncomplete {
			t.Fatalf("expected status incomplete, got %q", task.Status)
		}
	}

	// A different user's session sees an empty list
	req = httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"b@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("jwt request failed: %v", err)
	}
	otherCookie := sessionCookieFrom(t, resp)

	req = httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(otherCookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	var otherTasks []models.Task
	decodeBody(t, resp, &otherTasks)
	if len(otherTasks) != 0 {
		t.Fatalf("user B must not see user A's tasks, got %d", len(otherTasks))
	}
}
