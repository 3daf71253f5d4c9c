package packets

import "mime/multipart"

// AddContentRequest is the multipart body of POST /admin/Add/<Page>.
type AddContentRequest struct {
	Content string                `form:"content" binding:"required"`
	Heading string                `form:"heading" binding:"required"`
	Image   *multipart.FileHeader `form:"image" binding:"required"`
}

// UpdateContentRequest is the multipart body of POST /admin/Update/<Page>.
// Empty fields keep their stored value.
type UpdateContentRequest struct {
	ID      int                   `form:"id" binding:"required"`
	Content string                `form:"content"`
	Heading string                `form:"heading"`
	Image   *multipart.FileHeader `form:"image"`
}

// Empty reports whether the request carries nothing to change.
func (r UpdateContentRequest) Empty() bool {
	return r.Image == nil && r.Content == "" && r.Heading == ""
}
