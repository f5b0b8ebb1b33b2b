package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/dsa-forge/forge/internal/api"
	"github.com/dsa-forge/forge/internal/database"
	"github.com/dsa-forge/forge/internal/database/dbtest"
	"github.com/dsa-forge/forge/internal/service"
	"github.com/dsa-forge/forge/internal/service/problem_service"
	"github.com/dsa-forge/forge/internal/service/progress_service"
	"github.com/dsa-forge/forge/internal/service/submission_service"
	"github.com/dsa-forge/forge/internal/service/testcase_service"
	"github.com/dsa-forge/forge/internal/service/user_service"
)

func TestMain(m *testing.M) {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	logrus.Info("initializing service")
	service.InitializeServices()

	logrus.Info("starting tests")
	code := m.Run()
	os.Exit(code)
}

type testServer struct {
	router *chi.Mux
	store  *dbtest.Store
}

func newTestServer() *testServer {
	store := dbtest.NewStore()
	us := &user_service.UserService{DB: store}
	ps := &problem_service.ProblemService{DB: store}

	a := &api.Api{
		ProblemServiceConfig: ps,
		SubmissionServiceConfig: &submission_service.SubmissionService{
			DB:                   store,
			UserServiceConfig:    us,
			ProblemServiceConfig: ps,
		},
		ProgressServiceConfig: &progress_service.ProgressService{
			DB:                store,
			UserServiceConfig: us,
		},
		TestCaseServiceConfig: &testcase_service.TestCaseService{
			DB:                   store,
			ProblemServiceConfig: ps,
		},
	}
	return &testServer{router: a.Routes(), store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestProblemLifecycle(t *testing.T) {
	s := newTestServer()

	// create with minimal payload, defaults apply
	rec := s.do(t, http.MethodPost, "/problems", map[string]any{
		"title":       "Two Sum",
		"description": "Find two numbers that add up to target",
		"difficulty":  "EASY",
		"category":    "ARRAYS",
		"tags":        []string{"hash-table", "array"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %v: %v", rec.Code, rec.Body.String())
	}
	created := decodeBody[problem_service.Problem](t, rec)
	if created.ID != 1 {
		t.Errorf("expected id 1, got %v", created.ID)
	}
	if !created.IsActive || created.TimeLimitSeconds != 1 || created.MemoryLimitMB != 256 {
		t.Errorf("defaults not applied: %+v", created)
	}

	// the new problem shows up in the active easy listing
	rec = s.do(t, http.MethodGet, "/problems/active/difficulty/EASY", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("active listing: expected 200, got %v", rec.Code)
	}
	active := decodeBody[[]problem_service.Problem](t, rec)
	if len(active) != 1 || active[0].ID != created.ID {
		t.Fatalf("expected the new problem in the active listing, got %v", active)
	}

	// deactivate, then the active listing is empty
	rec = s.do(t, http.MethodPut, fmt.Sprintf("/problems/%d/deactivate", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("deactivate: expected 200, got %v", rec.Code)
	}
	deactivated := decodeBody[problem_service.Problem](t, rec)
	if deactivated.IsActive {
		t.Error("expected isActive false after deactivation")
	}

	rec = s.do(t, http.MethodGet, "/problems/active/difficulty/EASY", nil)
	active = decodeBody[[]problem_service.Problem](t, rec)
	if len(active) != 0 {
		t.Errorf("expected empty active listing, got %v", active)
	}

	// still fetchable directly
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/problems/%d", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("deactivated problem should stay fetchable, got %v", rec.Code)
	}

	// delete, then 404
	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/problems/%d", created.ID), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %v", rec.Code)
	}
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/problems/%d", created.ID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %v", rec.Code)
	}
	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/problems/%d", created.ID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %v", rec.Code)
	}
}

func TestProblemStatusCodes(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{
			name:   "create_missing_title",
			method: http.MethodPost,
			path:   "/problems",
			body:   map[string]any{"difficulty": "EASY", "category": "ARRAYS"},
			want:   http.StatusBadRequest,
		},
		{
			name:   "create_unknown_difficulty",
			method: http.MethodPost,
			path:   "/problems",
			body:   map[string]any{"title": "X", "difficulty": "BRUTAL", "category": "ARRAYS"},
			want:   http.StatusBadRequest,
		},
		{
			name:   "get_missing_problem",
			method: http.MethodGet,
			path:   "/problems/42",
			want:   http.StatusNotFound,
		},
		{
			name:   "get_non_numeric_id",
			method: http.MethodGet,
			path:   "/problems/abc",
			want:   http.StatusBadRequest,
		},
		{
			name:   "listing_unknown_enum",
			method: http.MethodGet,
			path:   "/problems/difficulty/TRIVIAL",
			want:   http.StatusBadRequest,
		},
		{
			name:   "update_missing_problem_is_bad_request",
			method: http.MethodPut,
			path:   "/problems/42",
			body:   map[string]any{"title": "X", "difficulty": "EASY", "category": "ARRAYS"},
			want:   http.StatusBadRequest,
		},
		{
			name:   "deactivate_missing_problem",
			method: http.MethodPut,
			path:   "/problems/42/deactivate",
			want:   http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, tc.method, tc.path, tc.body)
			if rec.Code != tc.want {
				t.Errorf("expected %v, got %v: %v", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestProblemCountsAreBareIntegers(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/problems", map[string]any{
		"title": "Two Sum", "difficulty": "EASY", "category": "ARRAYS",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %v", rec.Code)
	}

	rec = s.do(t, http.MethodGet, "/problems/stats/difficulty/EASY", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %v", rec.Code)
	}
	if rec.Body.String() != "1" {
		t.Errorf("expected bare integer body, got %q", rec.Body.String())
	}
}

func TestSearchProblemsRoute(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/problems", map[string]any{
		"title": "Two Sum", "difficulty": "EASY", "category": "ARRAYS",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %v", rec.Code)
	}

	rec = s.do(t, http.MethodGet, "/problems/search?q=Two", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %v", rec.Code)
	}
	found := decodeBody[[]problem_service.Problem](t, rec)
	if len(found) != 1 {
		t.Errorf("expected one match, got %v", found)
	}

	rec = s.do(t, http.MethodGet, "/problems/search?q=two", nil)
	found = decodeBody[[]problem_service.Problem](t, rec)
	if len(found) != 0 {
		t.Errorf("search must be case sensitive, got %v", found)
	}
}

func TestSubmissionRoutes(t *testing.T) {
	s := newTestServer()
	user := s.store.SeedUser("alice")

	rec := s.do(t, http.MethodPost, "/problems", map[string]any{
		"title": "Two Sum", "difficulty": "EASY", "category": "ARRAYS",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create problem: got %v", rec.Code)
	}
	problem := decodeBody[problem_service.Problem](t, rec)

	// any client-supplied status is ignored on create
	rec = s.do(t, http.MethodPost, "/submissions", map[string]any{
		"userId":    user.ID,
		"problemId": problem.ID,
		"code":      "return nums",
		"language":  "PYTHON",
		"status":    "ACCEPTED",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create submission: expected 201, got %v: %v", rec.Code, rec.Body.String())
	}
	sub := decodeBody[submission_service.Submission](t, rec)
	if sub.Status != database.SubmissionStatusPending {
		t.Errorf("expected forced PENDING, got %v", sub.Status)
	}

	// unresolvable problem is the client's fault
	rec = s.do(t, http.MethodPost, "/submissions", map[string]any{
		"userId": user.ID, "problemId": 99, "code": "x", "language": "PYTHON",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown problem, got %v", rec.Code)
	}

	// judge reports a verdict
	rec = s.do(t, http.MethodPut, fmt.Sprintf("/submissions/%d", sub.ID), map[string]any{
		"status":          "ACCEPTED",
		"executionTimeMs": 12,
		"memoryUsedMB":    14.5,
		"testCasesPassed": 10,
		"totalTestCases":  10,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update submission: expected 200, got %v: %v", rec.Code, rec.Body.String())
	}
	updated := decodeBody[submission_service.Submission](t, rec)
	if updated.Status != database.SubmissionStatusAccepted {
		t.Errorf("expected ACCEPTED, got %v", updated.Status)
	}
	if updated.Code != sub.Code || updated.UserID != sub.UserID {
		t.Errorf("identity fields must survive the update: %+v", updated)
	}

	// accepted counts come back as bare integers
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/submissions/user/%d/accepted", user.ID), nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "1" {
		t.Errorf("count by user: got %v %q", rec.Code, rec.Body.String())
	}
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/submissions/problem/%d/accepted", problem.ID), nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "1" {
		t.Errorf("count by problem: got %v %q", rec.Code, rec.Body.String())
	}

	// date range wants RFC3339 bounds
	rec = s.do(t, http.MethodGet,
		fmt.Sprintf("/submissions/user/%d/range?start=2020-01-01T00:00:00Z&end=2100-01-01T00:00:00Z", user.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("range: expected 200, got %v: %v", rec.Code, rec.Body.String())
	}
	inRange := decodeBody[[]submission_service.Submission](t, rec)
	if len(inRange) != 1 {
		t.Errorf("expected one submission in range, got %v", inRange)
	}
	rec = s.do(t, http.MethodGet,
		fmt.Sprintf("/submissions/user/%d/range?start=yesterday&end=2100-01-01T00:00:00Z", user.ID), nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed start, got %v", rec.Code)
	}

	// listings by unknown user are 404, not empty
	rec = s.do(t, http.MethodGet, "/submissions/user/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %v", rec.Code)
	}

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/submissions/%d", sub.ID), nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %v", rec.Code)
	}
}

func TestProgressRoutes(t *testing.T) {
	s := newTestServer()
	user := s.store.SeedUser("alice")

	rec := s.do(t, http.MethodPost, "/progress", map[string]any{
		"userId":             user.ID,
		"type":               "OVERALL",
		"problemsSolved":     5,
		"totalProblems":      20,
		"accuracyPercentage": 62.5,
		"averageTimeMs":      40000,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create progress: expected 201, got %v: %v", rec.Code, rec.Body.String())
	}
	created := decodeBody[progress_service.Progress](t, rec)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/progress/user/%d/overall", user.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("overall: expected 200, got %v", rec.Code)
	}
	overall := decodeBody[progress_service.Progress](t, rec)
	if overall.ID != created.ID {
		t.Errorf("expected record %v, got %v", created.ID, overall.ID)
	}

	// updates omit the owner entirely and still validate
	rec = s.do(t, http.MethodPut, fmt.Sprintf("/progress/%d", created.ID), map[string]any{
		"type":               "OVERALL",
		"problemsSolved":     6,
		"totalProblems":      20,
		"accuracyPercentage": 65.0,
		"averageTimeMs":      38000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update progress: expected 200, got %v: %v", rec.Code, rec.Body.String())
	}
	updated := decodeBody[progress_service.Progress](t, rec)
	if updated.UserID != user.ID || updated.ProblemsSolved != 6 {
		t.Errorf("expected owner %v with 6 solved, got %+v", user.ID, updated)
	}

	// unknown owner on create is a bad request
	rec = s.do(t, http.MethodPost, "/progress", map[string]any{
		"userId": 99, "type": "OVERALL",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown user, got %v", rec.Code)
	}

	// missing overall record is 404
	other := s.store.SeedUser("bob")
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/progress/user/%d/overall", other.ID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing overall record, got %v", rec.Code)
	}
}

func TestTestCaseRoutes(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/problems", map[string]any{
		"title": "Two Sum", "difficulty": "EASY", "category": "ARRAYS",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create problem: got %v", rec.Code)
	}
	problem := decodeBody[problem_service.Problem](t, rec)

	for _, tc := range []map[string]any{
		{"problemId": problem.ID, "input": "[2,7], 9", "expectedOutput": "[0,1]", "isSample": true},
		{"problemId": problem.ID, "input": "[1,2], 4", "expectedOutput": "[]", "isHidden": true},
	} {
		rec = s.do(t, http.MethodPost, "/testcases", tc)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create test case: expected 201, got %v: %v", rec.Code, rec.Body.String())
		}
	}

	rec = s.do(t, http.MethodGet, "/testcases/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("by id: expected 200, got %v", rec.Code)
	}
	first := decodeBody[testcase_service.TestCase](t, rec)
	if first.ID != 1 || !first.IsSample {
		t.Errorf("expected the sample case, got %+v", first)
	}
	rec = s.do(t, http.MethodGet, "/testcases/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing test case, got %v", rec.Code)
	}

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/testcases/problem/%d/visible", problem.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("visible: expected 200, got %v", rec.Code)
	}
	visible := decodeBody[[]testcase_service.TestCase](t, rec)
	if len(visible) != 1 || !visible[0].IsSample {
		t.Errorf("hidden case leaked or sample missing: %v", visible)
	}

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/testcases/problem/%d/count", problem.ID), nil)
	if rec.Body.String() != "2" {
		t.Errorf("expected count 2, got %q", rec.Body.String())
	}

	// unresolvable problem on create is a bad request
	rec = s.do(t, http.MethodPost, "/testcases", map[string]any{
		"problemId": 99, "input": "x", "expectedOutput": "y",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown problem, got %v", rec.Code)
	}
}
