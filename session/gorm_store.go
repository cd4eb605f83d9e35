package session

import (
	"errors"
	"time"

	"learninghub/models"

	"gorm.io/gorm"
)

// GormStore persists sessions in the sessions table so logins survive a
// process restart.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Get(token string) (*models.Session, error) {
	var s models.Session
	if err := g.db.Where("token = ?", token).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (g *GormStore) Save(s *models.Session) error {
	return g.db.Create(s).Error
}

func (g *GormStore) Delete(token string) error {
	return g.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

func (g *GormStore) DeleteExpired(before time.Time) error {
	return g.db.Where("expires_at < ?", before).Delete(&models.Session{}).Error
}
