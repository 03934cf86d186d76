package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"superpump.app/api/internal/http/handler"
	"superpump.app/api/internal/http/middleware"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/service"
)

var _ = Describe("PostHandler", func() {
	var (
		router *gin.Engine
		posts  *mockPostService
	)

	authed := func(req *http.Request) *http.Request {
		req.Header.Set("Authorization", "Bearer valid-token")
		return req
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		posts = &mockPostService{}
		auth := &mockAuthService{
			validateTokenFn: func(_ context.Context, token string) (*model.User, error) {
				if token == "valid-token" {
					return &model.User{ID: 42}, nil
				}
				return nil, service.ErrSessionExpired
			},
		}
		h := handler.NewPostHandler(posts)
		requireSession := middleware.RequireSession(auth)

		router.POST("/api/v1/posts", requireSession, h.Track)
		router.GET("/api/v1/posts", requireSession, h.List)
		router.GET("/api/v1/posts/metrics", requireSession, h.Metrics)
	})

	Describe("Track", func() {
		It("records a post for the tenant's workspace", func() {
			posts.trackFn = func(_ context.Context, userID int64, input service.TrackPostInput) (*model.Post, error) {
				Expect(userID).To(Equal(int64(42)))
				Expect(input.URL).To(Equal("https://www.linkedin.com/posts/x"))
				return &model.Post{ID: 1, MemberID: input.MemberID, MemberName: input.MemberName, URL: input.URL, Likes: input.Likes}, nil
			}

			body, _ := json.Marshal(map[string]any{
				"member_id":   "U1",
				"member_name": "Ada",
				"url":         "https://www.linkedin.com/posts/x",
				"posted_at":   time.Now().Format(time.RFC3339),
				"likes":       3,
			})
			req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewBuffer(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["likes"]).To(Equal(float64(3)))
		})

		It("returns 404 when the tenant has no workspace", func() {
			posts.trackFn = func(context.Context, int64, service.TrackPostInput) (*model.Post, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			body, _ := json.Marshal(map[string]any{
				"member_id":   "U1",
				"member_name": "Ada",
				"url":         "https://www.linkedin.com/posts/x",
				"posted_at":   time.Now().Format(time.RFC3339),
			})
			req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewBuffer(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a body without a url", func() {
			body, _ := json.Marshal(map[string]any{
				"member_id":   "U1",
				"member_name": "Ada",
			})
			req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewBuffer(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("List", func() {
		It("passes the limit through", func() {
			var gotLimit int32
			posts.listFn = func(_ context.Context, _ int64, limit int32) ([]model.Post, error) {
				gotLimit = limit
				return []model.Post{{ID: 1, URL: "https://x"}}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodGet, "/api/v1/posts?limit=5", nil)))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotLimit).To(Equal(int32(5)))
		})
	})

	Describe("Metrics", func() {
		It("returns totals and the leaderboard", func() {
			posts.metricsFn = func(context.Context, int64) (*service.WorkspaceMetrics, error) {
				return &service.WorkspaceMetrics{
					TotalPosts: 2,
					TotalLikes: 10,
					Leaderboard: []service.MemberMetrics{
						{MemberID: "U1", MemberName: "Ada", Posts: 2, Likes: 10},
					},
				}, nil
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodGet, "/api/v1/posts/metrics", nil)))

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["total_likes"]).To(Equal(float64(10)))
			Expect(resp["leaderboard"].([]any)).To(HaveLen(1))
		})
	})
})
