package user

type SecurityAnswers struct {
	Q1 string `json:"q1" doc:"Answer to security question 1" minLength:"1"`
	Q2 string `json:"q2" doc:"Answer to security question 2" minLength:"1"`
	Q3 string `json:"q3" doc:"Answer to security question 3" minLength:"1"`
}

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username string          `json:"username" doc:"Account name" minLength:"3" maxLength:"32"`
	Password string          `json:"password" doc:"Password" minLength:"6"`
	Answers  SecurityAnswers `json:"answers" doc:"Security question answers, used for password reset"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Username string `json:"username" minLength:"3" maxLength:"32"`
	Password string `json:"password" minLength:"1"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type resetInput struct {
	Body ResetRequest
}

type ResetRequest struct {
	Username    string          `json:"username" minLength:"3" maxLength:"32"`
	Answers     SecurityAnswers `json:"answers"`
	NewPassword string          `json:"new_password" minLength:"6"`
}

type resetOutput struct {
	Body ResetResponse
}

type ResetResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
