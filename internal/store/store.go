// Package store persists registrations with gorm. Every write also appends
// a RegistrationHistory snapshot inside the same transaction.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"gorm.io/gorm"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var ErrNotFound = errors.New("registration not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save upserts reg by its id and records the change.
func (s *Store) Save(ctx context.Context, staffID uint, reg models.Registration) error {
	if reg.ID == "" {
		return errors.New("registration has no id")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.RegistrationRecord
		if err := tx.Where("uid = ?", reg.ID).FirstOrInit(&record).Error; err != nil {
			return err
		}

		action := ActionUpdate
		if record.ID == 0 {
			action = ActionCreate
			record.UID = reg.ID
		}
		record.RegistrationFields = models.FieldsOf(reg)

		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		return tx.Create(&models.RegistrationHistory{
			RegistrationUID:    reg.ID,
			Action:             action,
			StaffID:            staffID,
			RegistrationFields: record.RegistrationFields,
		}).Error
	})
}

func (s *Store) Delete(ctx context.Context, staffID uint, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.RegistrationRecord
		if err := tx.Where("uid = ?", id).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&record).Error; err != nil {
			return err
		}

		return tx.Create(&models.RegistrationHistory{
			RegistrationUID:    id,
			Action:             ActionDelete,
			StaffID:            staffID,
			RegistrationFields: record.RegistrationFields,
		}).Error
	})
}

// List returns every live registration in no particular order.
func (s *Store) List(ctx context.Context) ([]models.Registration, error) {
	var records []models.RegistrationRecord
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	regs := make([]models.Registration, 0, len(records))
	for _, r := range records {
		regs = append(regs, r.Registration(r.UID))
	}
	return regs, nil
}

// History returns the snapshots of one registration, newest first.
func (s *Store) History(ctx context.Context, id string) ([]models.RegistrationHistory, error) {
	var history []models.RegistrationHistory
	err := s.db.WithContext(ctx).
		Where("registration_uid = ?", id).
		Order("created_at desc, id desc").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}
