package dto

import (
	"time"

	"superpump.app/api/internal/model"
	"superpump.app/api/internal/service"
)

type TrackPostRequest struct {
	MemberID   string    `json:"member_id" binding:"required,max=64"`
	MemberName string    `json:"member_name" binding:"required,min=1,max=255"`
	URL        string    `json:"url" binding:"required,url,max=2048"`
	Title      *string   `json:"title,omitempty" binding:"omitempty,max=512"`
	PostedAt   time.Time `json:"posted_at" binding:"required"`
	Likes      int32     `json:"likes" binding:"min=0"`
	Comments   int32     `json:"comments" binding:"min=0"`
	Reposts    int32     `json:"reposts" binding:"min=0"`
}

type PostResponse struct {
	ID         int64      `json:"id,string"`
	MemberID   string     `json:"member_id"`
	MemberName string     `json:"member_name"`
	URL        string     `json:"url"`
	Title      *string    `json:"title,omitempty"`
	Likes      int32      `json:"likes"`
	Comments   int32      `json:"comments"`
	Reposts    int32      `json:"reposts"`
	PostedAt   time.Time  `json:"posted_at"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToPostResponse(p *model.Post) *PostResponse {
	return &PostResponse{
		ID:         p.ID,
		MemberID:   p.MemberID,
		MemberName: p.MemberName,
		URL:        p.URL,
		Title:      p.Title,
		Likes:      p.Likes,
		Comments:   p.Comments,
		Reposts:    p.Reposts,
		PostedAt:   p.PostedAt,
		NotifiedAt: p.NotifiedAt,
		CreatedAt:  p.CreatedAt,
	}
}

type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}

func ToListPostsResponse(posts []model.Post) *ListPostsResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *ToPostResponse(&posts[i]))
	}
	return &ListPostsResponse{Posts: out}
}

type MetricsResponse struct {
	TotalPosts    int32                   `json:"total_posts"`
	TotalLikes    int32                   `json:"total_likes"`
	TotalComments int32                   `json:"total_comments"`
	TotalReposts  int32                   `json:"total_reposts"`
	Leaderboard   []service.MemberMetrics `json:"leaderboard"`
}

func ToMetricsResponse(m *service.WorkspaceMetrics) *MetricsResponse {
	return &MetricsResponse{
		TotalPosts:    m.TotalPosts,
		TotalLikes:    m.TotalLikes,
		TotalComments: m.TotalComments,
		TotalReposts:  m.TotalReposts,
		Leaderboard:   m.Leaderboard,
	}
}
