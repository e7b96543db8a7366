package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug" gorm:"unique"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage,omitempty"`
	Published  bool      `json:"published" gorm:"default:false"`
	Featured   bool      `json:"featured" gorm:"default:false"`
	TagsJSON   string    `json:"-" gorm:"column:tags"`
	Tags       []string  `json:"tags" gorm:"-"`
	AuthorID   uint      `json:"authorId"`
	Author     *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeSave serializes Tags into the tags column.
func (p *BlogPost) BeforeSave(tx *gorm.DB) error {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	raw, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}
	p.TagsJSON = string(raw)
	return nil
}

// AfterFind deserializes the tags column back into Tags. A malformed or
// empty column yields an empty list rather than an error.
func (p *BlogPost) AfterFind(tx *gorm.DB) error {
	p.Tags = []string{}
	if p.TagsJSON == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(p.TagsJSON), &p.Tags); err != nil {
		p.Tags = []string{}
	}
	return nil
}
