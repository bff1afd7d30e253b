package pomo

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Tracker records finished and cancelled pomodoro sessions in a local
// sqlite database.
type Tracker struct {
	db *gorm.DB
}

type Session struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Minutes        int
	ElapsedSeconds int
	Completed      bool
}

func NewTracker(dbFilePath string) (*Tracker, error) {
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, err
	}

	return &Tracker{db: db}, nil
}

// Record stores one session. Elapsed is truncated to whole seconds.
func (t *Tracker) Record(minutes int, elapsed time.Duration, completed bool) (*Session, error) {
	session := Session{
		Minutes:        minutes,
		ElapsedSeconds: int(elapsed / time.Second),
		Completed:      completed,
	}

	result := t.db.Create(&session)
	if result.Error != nil {
		return nil, result.Error
	}

	return &session, nil
}

// Recent returns up to limit sessions, most recent first.
func (t *Tracker) Recent(limit int) ([]Session, error) {
	var sessions []Session
	result := t.db.Order("created_at desc").Limit(limit).Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}
