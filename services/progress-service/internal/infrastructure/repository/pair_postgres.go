package repository

import (
	"context"
	"errors"
	"fmt"

	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// InsertResponse relies on ux_paired_response: a conflicting insert writes
// nothing and the first answer stays.
func (r *ResponseRepository) InsertResponse(ctx context.Context, resp *domain.PairedResponse) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(resp)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("question %d on %s: %w", resp.QuestionID, resp.Day, domain.ErrAlreadyAnswered)
	}
	return nil
}

func (r *ResponseRepository) ListResponses(ctx context.Context, pairID uuid.UUID, questionID int, day string) ([]domain.PairedResponse, error) {
	var out []domain.PairedResponse
	err := r.db.WithContext(ctx).
		Where("pair_id = ? AND question_id = ? AND day = ?", pairID, questionID, day).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

type CoupleRepository struct {
	db *gorm.DB
}

func NewCoupleRepository(db *gorm.DB) *CoupleRepository {
	return &CoupleRepository{db: db}
}

// CreateCouple writes the couple and one couple_members row per partner in a
// single transaction. A partner already in a couple fails the whole insert.
func (r *CoupleRepository) CreateCouple(ctx context.Context, c *domain.Couple) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create([]domain.CoupleMember{
			{MemberID: c.PartnerAID, CoupleID: c.ID},
			{MemberID: c.PartnerBID, CoupleID: c.ID},
		}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("couple %s: %w", c.ID, domain.ErrAlreadyLinked)
	}
	return err
}

func (r *CoupleRepository) GetCouple(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	var c domain.Couple
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "couple %s", id)
	}
	return &c, nil
}

func (r *CoupleRepository) GetCoupleByMember(ctx context.Context, memberID uuid.UUID) (*domain.Couple, error) {
	var c domain.Couple
	err := r.db.WithContext(ctx).
		Joins("JOIN couple_members ON couple_members.couple_id = couples.id").
		Where("couple_members.member_id = ?", memberID).
		First(&c).Error
	if err != nil {
		return nil, notFound(err, "couple of member %s", memberID)
	}
	return &c, nil
}
