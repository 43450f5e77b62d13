package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"teamboard/internal/board"
	"teamboard/internal/model"
)

// stateMeta is the singleton row carrying the snapshot version and the
// JSON-valued parts of AppState that have no table of their own.
type stateMeta struct {
	ID              int    `gorm:"primaryKey"`
	Version         int64  `gorm:"not null;default:0"`
	Settings        string `gorm:"type:text"`
	UserStats       string `gorm:"type:text"`
	Achievements    string `gorm:"type:text"`
	RoleGrowthGoals string `gorm:"type:text"`
}

func (stateMeta) TableName() string { return "app_settings" }

// DBStore persists the snapshot across postgres tables: one table per
// entity, JSON-array fields as serialized text columns, and the app_settings
// row carrying the version used for the stale-write check.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Load(ctx context.Context) (*model.AppState, error) {
	var meta stateMeta
	err := s.db.WithContext(ctx).First(&meta, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return board.SeedState(time.Now()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state meta: %w", err)
	}

	state := &model.AppState{Version: meta.Version}
	if err := unmarshalMeta(meta, state); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if err := db.Order("position").Find(&state.Columns).Error; err != nil {
		return nil, err
	}
	if err := db.Order("\"order\"").Find(&state.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&state.Tasks).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&state.Projects).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&state.TeamMembers).Error; err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DBStore) Save(ctx context.Context, state *model.AppState) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meta stateMeta
		err := tx.First(&meta, "id = ?", 1).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load state meta: %w", err)
		}
		if state.Version != meta.Version {
			return ErrStaleState
		}

		// Whole-snapshot replace: delete everything, insert the new rows.
		for _, m := range []interface{}{
			&model.Task{}, &model.Category{}, &model.Column{},
			&model.Project{}, &model.TeamMemberDetails{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		if len(state.Columns) > 0 {
			if err := tx.Create(state.Columns).Error; err != nil {
				return err
			}
		}
		if len(state.Categories) > 0 {
			if err := tx.Create(state.Categories).Error; err != nil {
				return err
			}
		}
		if len(state.Tasks) > 0 {
			if err := tx.Create(state.Tasks).Error; err != nil {
				return err
			}
		}
		if len(state.Projects) > 0 {
			if err := tx.Create(state.Projects).Error; err != nil {
				return err
			}
		}
		if len(state.TeamMembers) > 0 {
			if err := tx.Create(state.TeamMembers).Error; err != nil {
				return err
			}
		}

		next, err := marshalMeta(state, meta.Version+1)
		if err != nil {
			return err
		}
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		state.Version = next.Version
		return nil
	})
}

func marshalMeta(state *model.AppState, version int64) (stateMeta, error) {
	settings, err := json.Marshal(state.Settings)
	if err != nil {
		return stateMeta{}, err
	}
	stats, err := json.Marshal(state.UserStats)
	if err != nil {
		return stateMeta{}, err
	}
	achievements, err := json.Marshal(state.Achievements)
	if err != nil {
		return stateMeta{}, err
	}
	growthGoals, err := json.Marshal(state.RoleGrowthGoals)
	if err != nil {
		return stateMeta{}, err
	}
	return stateMeta{
		ID:              1,
		Version:         version,
		Settings:        string(settings),
		UserStats:       string(stats),
		Achievements:    string(achievements),
		RoleGrowthGoals: string(growthGoals),
	}, nil
}

func unmarshalMeta(meta stateMeta, state *model.AppState) error {
	if meta.Settings != "" {
		if err := json.Unmarshal([]byte(meta.Settings), &state.Settings); err != nil {
			return fmt.Errorf("decode settings: %w", err)
		}
	}
	if meta.UserStats != "" {
		if err := json.Unmarshal([]byte(meta.UserStats), &state.UserStats); err != nil {
			return fmt.Errorf("decode user stats: %w", err)
		}
	}
	if meta.Achievements != "" {
		if err := json.Unmarshal([]byte(meta.Achievements), &state.Achievements); err != nil {
			return fmt.Errorf("decode achievements: %w", err)
		}
	}
	if meta.RoleGrowthGoals != "" {
		if err := json.Unmarshal([]byte(meta.RoleGrowthGoals), &state.RoleGrowthGoals); err != nil {
			return fmt.Errorf("decode role growth goals: %w", err)
		}
	}
	return nil
}
