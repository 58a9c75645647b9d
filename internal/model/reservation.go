package model

import "time"

// Reservation represents a movie-ticket booking owned by a single user.
// Room is the screening room number ("sala" in the upstream schema).
type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Movie     string    `json:"movie" gorm:"size:255;not null"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Showtime  string    `json:"time" gorm:"column:showtime;size:8;not null"`
	Room      int       `json:"room" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
