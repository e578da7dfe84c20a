package models

import "time"

type EducationContent struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	Author    string    `json:"author" db:"author"`
	Category  string    `json:"category" db:"category"`
	Featured  bool      `json:"featured" db:"featured"`
	ReadTime  string    `json:"read_time" db:"read_time"`
	IsVideo   bool      `json:"is_video" db:"is_video"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EducationItem is the public listing shape of an article or video.
type EducationItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Image       *string   `json:"image"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	ReadTime    string    `json:"readTime"`
	IsVideo     bool      `json:"isVideo"`
	CreatedAt   time.Time `json:"created_at"`
	Date        string    `json:"date"`
}

func (e EducationContent) ToItem() EducationItem {
	return EducationItem{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Content,
		ImageURL:    e.ImageURL,
		Image:       e.ImageURL,
		Author:      e.Author,
		Category:    e.Category,
		Featured:    e.Featured,
		ReadTime:    e.ReadTime,
		IsVideo:     e.IsVideo,
		CreatedAt:   e.CreatedAt,
		Date:        e.CreatedAt.UTC().Format("2006-01-02"),
	}
}

type CreateEducationRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
	ReadTime string `json:"read_time"`
	IsVideo  bool   `json:"is_video"`
}

func (req CreateEducationRequest) ToContent() EducationContent {
	return EducationContent{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: optional(req.ImageURL),
		Author:   req.Author,
		Category: req.Category,
		Featured: req.Featured,
		ReadTime: req.ReadTime,
		IsVideo:  req.IsVideo,
	}
}

// UpdateEducationRequest is a partial update; nil fields are left unchanged.
type UpdateEducationRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
	Author   *string `json:"author"`
	Category *string `json:"category"`
	Featured *bool   `json:"featured"`
	ReadTime *string `json:"read_time"`
	IsVideo  *bool   `json:"is_video"`
}

// ToUpdateMap returns the set fields keyed by column name.
func (req UpdateEducationRequest) ToUpdateMap() map[string]any {
	updates := make(map[string]any)
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.ReadTime != nil {
		updates["read_time"] = *req.ReadTime
	}
	if req.IsVideo != nil {
		updates["is_video"] = *req.IsVideo
	}
	return updates
}
