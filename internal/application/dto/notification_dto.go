package dto

// PostNotificationInput body de POST /api/admin/notifications. UserID vacío = difusión.
type PostNotificationInput struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
