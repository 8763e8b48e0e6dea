// internals/features/locations/model/location_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* Building → Floor → Room hierarchy. Reference data for assignments. */

type BuildingModel struct {
	BuildingID      uuid.UUID `gorm:"type:uuid;primaryKey;column:building_id" json:"building_id"`
	BuildingName    string    `gorm:"type:varchar(150);not null;column:building_name" json:"building_name"`
	BuildingAddress *string   `gorm:"column:building_address" json:"building_address,omitempty"`

	BuildingCreatedAt time.Time      `gorm:"column:building_created_at;autoCreateTime" json:"building_created_at"`
	BuildingUpdatedAt *time.Time     `gorm:"column:building_updated_at;autoUpdateTime" json:"building_updated_at,omitempty"`
	BuildingDeletedAt gorm.DeletedAt `gorm:"column:building_deleted_at;index" json:"building_deleted_at,omitempty"`
}

func (BuildingModel) TableName() string { return "buildings" }

func (m *BuildingModel) BeforeCreate(tx *gorm.DB) error {
	if m.BuildingID == uuid.Nil {
		m.BuildingID = uuid.New()
	}
	return nil
}

type FloorModel struct {
	FloorID         uuid.UUID `gorm:"type:uuid;primaryKey;column:floor_id" json:"floor_id"`
	FloorName       string    `gorm:"type:varchar(150);not null;column:floor_name" json:"floor_name"`
	FloorBuildingID uuid.UUID `gorm:"type:uuid;not null;column:floor_building_id;index" json:"floor_building_id"`
	FloorLevel      *int      `gorm:"column:floor_level" json:"floor_level,omitempty"`

	FloorCreatedAt time.Time      `gorm:"column:floor_created_at;autoCreateTime" json:"floor_created_at"`
	FloorUpdatedAt *time.Time     `gorm:"column:floor_updated_at;autoUpdateTime" json:"floor_updated_at,omitempty"`
	FloorDeletedAt gorm.DeletedAt `gorm:"column:floor_deleted_at;index" json:"floor_deleted_at,omitempty"`
}

func (FloorModel) TableName() string { return "floors" }

func (m *FloorModel) BeforeCreate(tx *gorm.DB) error {
	if m.FloorID == uuid.Nil {
		m.FloorID = uuid.New()
	}
	return nil
}

type RoomModel struct {
	RoomID      uuid.UUID `gorm:"type:uuid;primaryKey;column:room_id" json:"room_id"`
	RoomName    string    `gorm:"type:varchar(150);not null;column:room_name" json:"room_name"`
	RoomFloorID uuid.UUID `gorm:"type:uuid;not null;column:room_floor_id;index" json:"room_floor_id"`
	RoomNumber  *string   `gorm:"type:varchar(30);column:room_number" json:"room_number,omitempty"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt *time.Time     `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at,omitempty"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
