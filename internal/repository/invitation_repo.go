package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/model"
)

// InvitationRepository is the invitation data-access interface.
type InvitationRepository interface {
	Create(ctx context.Context, inv *model.Invitation) error
	GetByID(ctx context.Context, id string) (*model.Invitation, error)
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	ListPending(ctx context.Context, companyID string) ([]model.Invitation, error)
	Update(ctx context.Context, inv *model.Invitation) error
}

type invitationRepo struct {
	db *gorm.DB
}

// NewInvitationRepo creates an InvitationRepository.
func NewInvitationRepo(db *gorm.DB) InvitationRepository {
	return &invitationRepo{db: db}
}

func (r *invitationRepo) Create(ctx context.Context, inv *model.Invitation) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invitationRepo) GetByID(ctx context.Context, id string) (*model.Invitation, error) {
	var inv model.Invitation
	err := r.db.WithContext(ctx).
		Where("invitation_id = ?", id).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepo) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var inv model.Invitation
	err := r.db.WithContext(ctx).
		Where("invitation_token = ?", token).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepo) ListPending(ctx context.Context, companyID string) ([]model.Invitation, error) {
	var invs []model.Invitation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID, model.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invs).Error
	return invs, err
}

func (r *invitationRepo) Update(ctx context.Context, inv *model.Invitation) error {
	return r.db.WithContext(ctx).Save(inv).Error
}
