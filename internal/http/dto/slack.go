package dto

import "superpump.app/api/internal/model"

type MemberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// MembersResponse carries either the member list or a reason code telling the
// dashboard why there is none yet. Both ship with HTTP 200.
type MembersResponse struct {
	Members []MemberResponse `json:"members"`
	Error   string           `json:"error,omitempty"`
}

func ToMembersResponse(members []model.Member, reason string) *MembersResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, MemberResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			AvatarURL: m.AvatarURL,
		})
	}
	return &MembersResponse{Members: out, Error: reason}
}
