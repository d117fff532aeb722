package request_models

type AddFeedbackRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Feedback    string `json:"feedback" binding:"required"`
	Suggestions string `json:"suggestions"`
}
