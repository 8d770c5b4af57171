package services

import (
	"tripmate/internal/models/db_models"
	resp "tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

func toPublicProfile(u *db_models.User) resp.PublicProfile {
	if u == nil {
		return resp.PublicProfile{}
	}
	return resp.PublicProfile{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		Bio:          u.Bio,
		Country:      u.Country,
		City:         u.City,
		Interests:    u.Interests,
		IsVerified:   u.IsVerified,
	}
}

func toPlanSummary(p *db_models.TravelPlan) resp.PlanSummary {
	if p == nil {
		return resp.PlanSummary{}
	}
	return resp.PlanSummary{
		ID:          p.ID.String(),
		Title:       p.Title,
		Destination: p.Destination,
		Country:     p.Country,
		StartDate:   utils.FromUnixSeconds(p.StartDate),
		EndDate:     utils.FromUnixSeconds(p.EndDate),
	}
}

func toJoinRequestRefs(reqs []db_models.TripJoinRequest) []resp.JoinRequestRef {
	refs := make([]resp.JoinRequestRef, 0, len(reqs))
	for _, r := range reqs {
		refs = append(refs, resp.JoinRequestRef{
			ID:     r.ID.String(),
			Status: string(r.Status),
		})
	}
	return refs
}
