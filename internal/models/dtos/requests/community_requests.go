package requests

import (
	"time"

	"github.com/google/uuid"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/models/entities"
)

func validUUID(v string) bool {
	_, err := uuid.Parse(v)
	return err == nil
}

type CreateCommunityRequest struct {
	Name          string  `json:"name"`
	CommunityType *string `json:"communityType"`
}

func (r *CreateCommunityRequest) Validate() error {
	if r.Name == "" {
		return common.NewValidationError("CreateCommunityRequest", "name is required")
	}
	return nil
}

func (r *CreateCommunityRequest) ToNewCommunity() *entities.Community {
	return &entities.Community{
		ID:            uuid.New().String(),
		Name:          r.Name,
		CommunityType: r.CommunityType,
		CreatedAt:     time.Now(),
	}
}

type CommunityInviteRequest struct {
	Community string   `json:"community"`
	Invitees  []string `json:"invitees"`
}

func (r *CommunityInviteRequest) Validate() error {
	if !validUUID(r.Community) {
		return common.NewValidationError("CommunityInviteRequest", "community must be a valid id")
	}
	if len(r.Invitees) == 0 {
		return common.NewValidationError("CommunityInviteRequest", "invitees are required")
	}
	for _, invitee := range r.Invitees {
		if !validUUID(invitee) {
			return common.NewValidationError("CommunityInviteRequest", "invitees must be valid ids")
		}
	}
	return nil
}

// CommunityObject addresses a community by id, the accept-invite body.
type CommunityObject struct {
	Community string `json:"community"`
}

func (r *CommunityObject) Validate() error {
	if !validUUID(r.Community) {
		return common.NewValidationError("CommunityObject", "community must be a valid id")
	}
	return nil
}

type UpdateCommunityRequest struct {
	Community     string  `json:"community"`
	Name          string  `json:"name"`
	CommunityType *string `json:"communityType"`
}

func (r *UpdateCommunityRequest) Validate() error {
	if r.Community == "" {
		return common.NewValidationError("UpdateCommunityRequest", "community is required")
	}
	if r.Name == "" {
		return common.NewValidationError("UpdateCommunityRequest", "name is required")
	}
	return nil
}

func (r *UpdateCommunityRequest) ToCommunity() *entities.Community {
	return &entities.Community{
		ID:            r.Community,
		Name:          r.Name,
		CommunityType: r.CommunityType,
	}
}
