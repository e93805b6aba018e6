package postgres

import (
	"context"

	"fitclub/internal/domain/entity"
	"fitclub/internal/domain/repository"
	"fitclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// membershipRepository implements the repository.MembershipRepository interface using GORM.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// Create persists a new membership.
func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := toMembershipModel(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		return errors.Wrap(err, "failed to create membership")
	}

	return nil
}

// CreatePayment persists the one-to-one payment record.
func (repo *membershipRepository) CreatePayment(ctx context.Context, payment *entity.MembershipPayment) error {
	paymentM := &model.MembershipPaymentModel{
		MembershipID: payment.MembershipID,
		Status:       string(payment.Status),
		Method:       string(payment.Method),
		CreatedAt:    payment.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return errors.Wrap(err, "failed to create membership payment")
	}

	return nil
}

// FindByID retrieves a membership.
func (repo *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&membershipM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindPayment retrieves the payment record of a membership.
func (repo *membershipRepository) FindPayment(ctx context.Context, membershipID uuid.UUID) (*entity.MembershipPayment, error) {
	var paymentM model.MembershipPaymentModel
	err := repo.db.WithContext(ctx).
		Where("membership_id = ?", membershipID).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership payment")
	}

	return toMembershipPaymentDomain(&paymentM), nil
}

// ListByClient returns the client's memberships with payments, newest first.
func (repo *membershipRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*repository.MembershipWithPayment, error) {
	var membershipModels []model.MembershipModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&membershipModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list client memberships")
	}

	if len(membershipModels) == 0 {
		return []*repository.MembershipWithPayment{}, nil
	}

	ids := make([]uuid.UUID, 0, len(membershipModels))
	for _, m := range membershipModels {
		ids = append(ids, m.ID)
	}

	var paymentModels []model.MembershipPaymentModel
	err = repo.db.WithContext(ctx).
		Where("membership_id IN ?", ids).
		Find(&paymentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load membership payments")
	}

	payments := make(map[uuid.UUID]*entity.MembershipPayment, len(paymentModels))
	for i := range paymentModels {
		payments[paymentModels[i].MembershipID] = toMembershipPaymentDomain(&paymentModels[i])
	}

	results := make([]*repository.MembershipWithPayment, 0, len(membershipModels))
	for i := range membershipModels {
		results = append(results, &repository.MembershipWithPayment{
			Membership: *toMembershipDomain(&membershipModels[i]),
			Payment:    payments[membershipModels[i].ID],
		})
	}

	return results, nil
}

// DeletePaymentsByClient removes all payment records of a client's memberships.
func (repo *membershipRepository) DeletePaymentsByClient(ctx context.Context, clientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("membership_id IN (SELECT id FROM memberships WHERE client_id = ?)", clientID).
		Delete(&model.MembershipPaymentModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete client membership payments")
	}

	return nil
}

// DeleteByClient removes all memberships of a client.
func (repo *membershipRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.MembershipModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete client memberships")
	}

	return nil
}

func toMembershipModel(membership *entity.Membership) *model.MembershipModel {
	return &model.MembershipModel{
		ID:             membership.ID,
		MembershipType: string(membership.Type),
		WithSauna:      membership.WithSauna,
		Price:          membership.Price,
		StartDate:      membership.StartDate,
		EndDate:        membership.EndDate,
		ClientID:       membership.ClientID,
		ReceptionistID: membership.ReceptionistID,
		CreatedAt:      membership.CreatedAt,
	}
}

func toMembershipDomain(membershipM *model.MembershipModel) *entity.Membership {
	return &entity.Membership{
		ID:             membershipM.ID,
		Type:           entity.MembershipType(membershipM.MembershipType),
		WithSauna:      membershipM.WithSauna,
		Price:          membershipM.Price,
		StartDate:      membershipM.StartDate,
		EndDate:        membershipM.EndDate,
		ClientID:       membershipM.ClientID,
		ReceptionistID: membershipM.ReceptionistID,
		CreatedAt:      membershipM.CreatedAt,
	}
}

func toMembershipPaymentDomain(paymentM *model.MembershipPaymentModel) *entity.MembershipPayment {
	return &entity.MembershipPayment{
		MembershipID: paymentM.MembershipID,
		Status:       entity.PaymentStatus(paymentM.Status),
		Method:       entity.PaymentMethod(paymentM.Method),
		CreatedAt:    paymentM.CreatedAt,
	}
}
