package models

// ContactMessage is a submission from the public contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
