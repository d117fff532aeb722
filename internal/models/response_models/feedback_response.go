package response_models

type FeedbackResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Rating      int    `json:"rating"`
	Feedback    string `json:"feedback"`
	Suggestions string `json:"suggestions,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}
