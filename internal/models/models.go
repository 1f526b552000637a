package models

import "time"

// Article is a news article. Content is only returned on single-article
// and admin reads; list endpoints carry the excerpt.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Content     string    `json:"content,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ArticleSummary is the list-endpoint shape: everything but content.
type ArticleSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Country      string    `json:"country"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Admin is an executive console account. MustChangePassword is set on
// seeded accounts and cleared by a successful password change.
type Admin struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
}

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type InvestorInquiry struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Company         string    `json:"company,omitempty"`
	InvestmentRange string    `json:"investment_range,omitempty"`
	Message         string    `json:"message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ChatLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Realm     string    `json:"realm"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the admin dashboard overview payload.
type Stats struct {
	Users             int `json:"users"`
	Articles          int `json:"articles"`
	Contacts          int `json:"contacts"`
	InvestorInquiries int `json:"investor_inquiries"`
	ChatMessages      int `json:"chat_messages"`
}
