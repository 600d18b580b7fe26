package repository

import (
	"errors"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"gorm.io/gorm"
)

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db}
}

func (r *ConnectionRepository) Create(c *model.Connection) error {
	return r.db.Create(c).Error
}

func (r *ConnectionRepository) Update(c *model.Connection) error {
	return r.db.Save(c).Error
}

func (r *ConnectionRepository) Delete(id string) error {
	return r.db.Delete(&model.Connection{}, "id = ?", id).Error
}

func (r *ConnectionRepository) ListForUser(userID, status string) ([]model.Connection, error) {
	var connections []model.Connection
	q := r.db.Where("user_id_sender = ? OR user_id_receiver = ?", userID, userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&connections).Error
	return connections, err
}

func (r *ConnectionRepository) FindByID(id string) (*model.Connection, error) {
	var c model.Connection
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindBetween looks up a connection in either direction.
func (r *ConnectionRepository) FindBetween(userID, otherUserID string) (*model.Connection, error) {
	var c model.Connection
	err := r.db.
		Where("(user_id_sender = ? AND user_id_receiver = ?) OR (user_id_sender = ? AND user_id_receiver = ?)",
			userID, otherUserID, otherUserID, userID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
