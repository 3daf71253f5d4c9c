package packets

import (
	"time"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

// ContentResponse mirrors model.Content but flattens times to RFC3339
type ContentResponse struct {
	ID        int    `json:"id"`
	Page      string `json:"page"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	Heading   string `json:"heading"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewContentResponse(c model.Content) ContentResponse {
	return ContentResponse{
		ID:        c.ID,
		Page:      c.Page.String(),
		Content:   c.Content,
		ImageURL:  c.ImageURL,
		Heading:   c.Heading,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
