package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// CommunityService owns community records and the membership ledger.
// INVITED moves to MEMBER through AcceptMembership; ADMIN is assigned once
// at community creation and no transition ever produces it.
type CommunityService struct {
	communities CommunityStore
	memberships MembershipStore
}

func NewCommunityService(communities CommunityStore, memberships MembershipStore) *CommunityService {
	return &CommunityService{
		communities: communities,
		memberships: memberships,
	}
}

func (s *CommunityService) GetCommunity(ctx context.Context, communityID string) (*entities.Community, error) {
	community, err := s.communities.FindByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, common.NewAuthorizationError("GetCommunity", "community not found")
	}
	return community, nil
}

func (s *CommunityService) SaveCommunity(ctx context.Context, community *entities.Community) error {
	existing, err := s.communities.FindByID(ctx, community.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.NewConflictError("SaveCommunity", "community already exists")
	}
	return s.communities.Insert(ctx, community)
}

func (s *CommunityService) UpdateCommunity(ctx context.Context, community *entities.Community) error {
	return s.communities.Update(ctx, community)
}

// CreateAdminMembership records the creator's ADMIN row. Called once as part
// of community creation; the invite flow can never produce ADMIN.
func (s *CommunityService) CreateAdminMembership(ctx context.Context, communityID, userID string) error {
	membership := &entities.Membership{
		ID:          uuid.New().String(),
		CommunityID: communityID,
		UserID:      userID,
		Status:      constants.MembershipAdmin,
		CreatedAt:   time.Now(),
	}
	return s.saveMemberships(ctx, []*entities.Membership{membership})
}

// InviteUsers creates one INVITED row per invitee. The whole batch fails
// before any write if any invitee already holds a membership for the
// community.
func (s *CommunityService) InviteUsers(ctx context.Context, communityID string, invitees []string) error {
	memberships := make([]*entities.Membership, 0, len(invitees))
	for _, invitee := range invitees {
		memberships = append(memberships, &entities.Membership{
			ID:          uuid.New().String(),
			CommunityID: communityID,
			UserID:      invitee,
			Status:      constants.MembershipInvited,
			CreatedAt:   time.Now(),
		})
	}
	return s.saveMemberships(ctx, memberships)
}

// saveMemberships checks every row for an existing membership before writing
// any of them. Checks and writes each run concurrently; two racing invites
// for the same user can still both pass the check, which is inherited
// behavior (see DESIGN.md).
func (s *CommunityService) saveMemberships(ctx context.Context, memberships []*entities.Membership) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, membership := range memberships {
		membership := membership
		g.Go(func() error {
			existing, err := s.memberships.FindByUserAndCommunity(gctx, membership.UserID, membership.CommunityID)
			if err != nil {
				return err
			}
			if existing != nil {
				return common.NewConflictError("saveMemberships", "membership already exists")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	for _, membership := range memberships {
		membership := membership
		g.Go(func() error {
			return s.memberships.Insert(gctx, membership)
		})
	}
	return g.Wait()
}

// AcceptMembership transitions INVITED to MEMBER for (user, community).
func (s *CommunityService) AcceptMembership(ctx context.Context, userID, communityID string) error {
	membership, err := s.memberships.FindByUserAndCommunity(ctx, userID, communityID)
	if err != nil {
		return err
	}
	if membership == nil {
		return common.NewAuthorizationError("AcceptMembership", "membership invite does not exist")
	}
	if membership.Status != constants.MembershipInvited {
		return common.NewConflictError("AcceptMembership", "membership is not awaiting acceptance")
	}
	return s.memberships.UpdateStatus(ctx, membership.ID, constants.MembershipMember)
}

func (s *CommunityService) GetMembership(ctx context.Context, userID, communityID string) (*entities.Membership, error) {
	membership, err := s.memberships.FindByUserAndCommunity(ctx, userID, communityID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, common.NewAuthorizationError("GetMembership", "membership not found")
	}
	return membership, nil
}

// IsVisible reports whether any membership row exists for the pair,
// regardless of status. An INVITED user can therefore view community details
// before accepting; preserved as observed, see DESIGN.md.
func (s *CommunityService) IsVisible(ctx context.Context, userID, communityID string) (bool, error) {
	membership, err := s.memberships.FindByUserAndCommunity(ctx, userID, communityID)
	if err != nil {
		return false, err
	}
	return membership != nil, nil
}

func (s *CommunityService) GetCommunityMemberships(ctx context.Context, communityID string) ([]entities.Membership, error) {
	return s.memberships.FindByCommunity(ctx, communityID)
}

// MemberAndAdminIDs returns the users who have joined: MEMBER or ADMIN rows,
// never INVITED ones.
func (s *CommunityService) MemberAndAdminIDs(ctx context.Context, communityID string) ([]string, error) {
	memberships, err := s.memberships.FindByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Status == constants.MembershipMember || membership.Status == constants.MembershipAdmin {
			ids = append(ids, membership.UserID)
		}
	}
	return ids, nil
}

func (s *CommunityService) AdminIDs(ctx context.Context, communityID string) ([]string, error) {
	memberships, err := s.memberships.FindByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Status == constants.MembershipAdmin {
			ids = append(ids, membership.UserID)
		}
	}
	return ids, nil
}

// CommunityIDsForUser returns the communities userID has joined.
func (s *CommunityService) CommunityIDsForUser(ctx context.Context, userID string) ([]string, error) {
	memberships, err := s.memberships.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Status == constants.MembershipMember || membership.Status == constants.MembershipAdmin {
			ids = append(ids, membership.CommunityID)
		}
	}
	return ids, nil
}
