package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
