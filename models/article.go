package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	Images    StringList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Summary   string     `json:"summary" gorm:"type:text;not null"`
	Tags      StringList `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Images == nil {
		a.Images = StringList{}
	}
	if a.Tags == nil {
		a.Tags = StringList{}
	}
	return nil
}

// StringList is stored as a jsonb array so tag membership can be
// matched with the containment operator.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}

	if len(data) == 0 {
		*s = StringList{}
		return nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return errors.New("invalid json array for StringList")
	}
	return nil
}
