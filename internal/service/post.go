package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/trace"
	"superpump.app/api/common/id"
	"superpump.app/api/common/logger"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/queue"
	"superpump.app/api/internal/store"
)

const defaultPostListLimit = 50

// TrackPostInput carries one observed post with its latest engagement counts.
type TrackPostInput struct {
	MemberID   string
	MemberName string
	URL        string
	Title      *string
	PostedAt   time.Time
	Likes      int32
	Comments   int32
	Reposts    int32
}

// MemberMetrics aggregates engagement for one workspace member.
type MemberMetrics struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Posts      int32  `json:"posts"`
	Likes      int32  `json:"likes"`
	Comments   int32  `json:"comments"`
	Reposts    int32  `json:"reposts"`
}

// WorkspaceMetrics is the engagement rollup for a workspace.
type WorkspaceMetrics struct {
	TotalPosts    int32           `json:"total_posts"`
	TotalLikes    int32           `json:"total_likes"`
	TotalComments int32           `json:"total_comments"`
	TotalReposts  int32           `json:"total_reposts"`
	Leaderboard   []MemberMetrics `json:"leaderboard"`
}

type PostService interface {
	// Track records a post for the user's workspace. A post already known
	// by URL gets its engagement counts refreshed; a new post is stored and
	// announced to the notifier.
	Track(ctx context.Context, userID int64, input TrackPostInput) (*model.Post, error)
	List(ctx context.Context, userID int64, limit int32) ([]model.Post, error)
	Metrics(ctx context.Context, userID int64) (*WorkspaceMetrics, error)
}

type postService struct {
	workspaceStore store.WorkspaceStore
	postStore      store.PostStore
	producer       queue.Producer
}

func NewPostService(workspaceStore store.WorkspaceStore, postStore store.PostStore, producer queue.Producer) PostService {
	return &postService{
		workspaceStore: workspaceStore,
		postStore:      postStore,
		producer:       producer,
	}
}

func (s *postService) Track(ctx context.Context, userID int64, input TrackPostInput) (*model.Post, error) {
	ws, err := s.workspaceForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: logger.Ptr(ws.ID),
		Component:   "service.post",
	})

	existing, err := s.postStore.GetByWorkspaceAndURL(ctx, ws.ID, input.URL)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up post: %w", err)
	}

	if existing != nil {
		updated, err := s.postStore.UpdateEngagement(ctx, existing.ID, input.Likes, input.Comments, input.Reposts)
		if err != nil {
			return nil, fmt.Errorf("updating engagement: %w", err)
		}
		slog.DebugContext(ctx, "post engagement refreshed", "post_id", updated.ID)
		return updated, nil
	}

	post := &model.Post{
		ID:          id.New(),
		WorkspaceID: ws.ID,
		MemberID:    input.MemberID,
		MemberName:  input.MemberName,
		URL:         input.URL,
		Title:       input.Title,
		PostedAt:    input.PostedAt,
		Likes:       input.Likes,
		Comments:    input.Comments,
		Reposts:     input.Reposts,
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	slog.InfoContext(ctx, "post tracked", "post_id", post.ID, "member_id", post.MemberID)

	if s.producer != nil {
		event := queue.PostEvent{
			PostID:      post.ID,
			WorkspaceID: ws.ID,
		}
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			event.TraceID = logger.Ptr(sc.TraceID().String())
		}
		if err := s.producer.Enqueue(ctx, event); err != nil {
			// The post is stored either way, notification is best effort here.
			slog.ErrorContext(ctx, "failed to enqueue post event", "error", err, "post_id", post.ID)
		}
	}

	return post, nil
}

func (s *postService) List(ctx context.Context, userID int64, limit int32) ([]model.Post, error) {
	ws, err := s.workspaceForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultPostListLimit
	}

	posts, err := s.postStore.ListByWorkspace(ctx, ws.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Metrics(ctx context.Context, userID int64) (*WorkspaceMetrics, error) {
	ws, err := s.workspaceForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postStore.ListByWorkspace(ctx, ws.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	metrics := &WorkspaceMetrics{Leaderboard: []MemberMetrics{}}
	byMember := make(map[string]*MemberMetrics)

	for _, post := range posts {
		metrics.TotalPosts++
		metrics.TotalLikes += post.Likes
		metrics.TotalComments += post.Comments
		metrics.TotalReposts += post.Reposts

		mm, ok := byMember[post.MemberID]
		if !ok {
			mm = &MemberMetrics{MemberID: post.MemberID, MemberName: post.MemberName}
			byMember[post.MemberID] = mm
		}
		mm.Posts++
		mm.Likes += post.Likes
		mm.Comments += post.Comments
		mm.Reposts += post.Reposts
	}

	for _, mm := range byMember {
		metrics.Leaderboard = append(metrics.Leaderboard, *mm)
	}

	sort.Slice(metrics.Leaderboard, func(i, j int) bool {
		a, b := metrics.Leaderboard[i], metrics.Leaderboard[j]
		ea := a.Likes + a.Comments + a.Reposts
		eb := b.Likes + b.Comments + b.Reposts
		if ea != eb {
			return ea > eb
		}
		return a.MemberID < b.MemberID
	})

	return metrics, nil
}

func (s *postService) workspaceForUser(ctx context.Context, userID int64) (*model.Workspace, error) {
	ws, err := s.workspaceStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}
	return ws, nil
}
