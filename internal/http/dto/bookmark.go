package dto

import (
	"time"

	"superpump.app/api/internal/model"
)

type AddBookmarkRequest struct {
	MemberID   string  `json:"member_id" binding:"required,max=64"`
	MemberName string  `json:"member_name" binding:"required,min=1,max=255"`
	ProfileURL *string `json:"profile_url,omitempty" binding:"omitempty,url,max=2048"`
}

type BookmarkResponse struct {
	ID         int64     `json:"id,string"`
	MemberID   string    `json:"member_id"`
	MemberName string    `json:"member_name"`
	ProfileURL *string   `json:"profile_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToBookmarkResponse(bm *model.Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		ID:         bm.ID,
		MemberID:   bm.MemberID,
		MemberName: bm.MemberName,
		ProfileURL: bm.ProfileURL,
		CreatedAt:  bm.CreatedAt,
	}
}

type ListBookmarksResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}

func ToListBookmarksResponse(bookmarks []model.Bookmark) *ListBookmarksResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, *ToBookmarkResponse(&bookmarks[i]))
	}
	return &ListBookmarksResponse{Bookmarks: out}
}
