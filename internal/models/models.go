package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:120;not null" json:"first_name"`
	LastName       string    `gorm:"size:120;not null" json:"last_name"`
	Email          string    `gorm:"size:190;uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"size:120;uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	SkillLevel     int       `gorm:"not null;default:0" json:"skill_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Room is the ephemeral payload handed to two matched users. It is never
// persisted; it only exists in the response of the request that allocated it.
type Room struct {
	RoomURL string     `json:"room_url"`
	Config  RoomConfig `json:"config"`
	Users   []uint     `json:"users"`
}

type RoomConfig struct {
	ConfigOverwrite MediaOverrides `json:"configOverwrite"`
}

type MediaOverrides struct {
	StartWithAudioMuted bool `json:"startWithAudioMuted"`
	DisableVideo        bool `json:"disableVideo"`
}
