package requests

import (
	"time"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// Each request body validates itself before any service is touched,
// mirroring the field constraints the mobile clients were built against.

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	if len(r.Username) < 5 || len(r.Username) > 50 {
		return common.NewValidationError("CreateUserRequest", "username must be between 5 and 50 characters")
	}
	if len(r.Password) < 5 || len(r.Password) > 50 {
		return common.NewValidationError("CreateUserRequest", "password must be between 5 and 50 characters")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return common.NewValidationError("LoginRequest", "username and password are required")
	}
	return nil
}

// UpdateUserRequest carries the profile fields that unlock full access.
// Bio is the only optional field.
type UpdateUserRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth string  `json:"dateOfBirth"`
	Bio         *string `json:"bio"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.FirstName == "" || len(r.FirstName) > 50 {
		return common.NewValidationError("UpdateUserRequest", "firstName must be between 1 and 50 characters")
	}
	if r.LastName == "" || len(r.LastName) > 50 {
		return common.NewValidationError("UpdateUserRequest", "lastName must be between 1 and 50 characters")
	}
	if _, err := time.Parse("2006-01-02", r.DateOfBirth); err != nil {
		if _, err := time.Parse(time.RFC3339, r.DateOfBirth); err != nil {
			return common.NewValidationError("UpdateUserRequest", "dateOfBirth must be an ISO 8601 date")
		}
	}
	if r.Bio != nil && len(*r.Bio) > 400 {
		return common.NewValidationError("UpdateUserRequest", "bio must be at most 400 characters")
	}
	return nil
}

// ToUser returns a User carrying only the editable profile fields.
func (r *UpdateUserRequest) ToUser(userID string) *entities.User {
	return &entities.User{
		ID:          userID,
		FirstName:   &r.FirstName,
		LastName:    &r.LastName,
		DateOfBirth: &r.DateOfBirth,
		Bio:         r.Bio,
	}
}

// UsernameObject addresses another user by username, the only identifier
// clients exchange out of band.
type UsernameObject struct {
	Username string `json:"username"`
}

func (r *UsernameObject) Validate() error {
	if len(r.Username) < 5 || len(r.Username) > 50 {
		return common.NewValidationError("UsernameObject", "username must be between 5 and 50 characters")
	}
	return nil
}

// AcceptFriendshipRequest names the original sender whose request is being
// accepted. Status must be ACCEPTED explicitly: the shape leaves room for a
// future decline without a new endpoint.
type AcceptFriendshipRequest struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

func (r *AcceptFriendshipRequest) Validate() error {
	if len(r.Username) < 5 || len(r.Username) > 50 {
		return common.NewValidationError("AcceptFriendshipRequest", "username must be between 5 and 50 characters")
	}
	if r.Status != constants.FriendshipAccepted.String() {
		return common.NewValidationError("AcceptFriendshipRequest", "status must be ACCEPTED")
	}
	return nil
}
