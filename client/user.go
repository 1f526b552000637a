package client

import (
	"context"
	"net/http"

	"github.com/halcyon-ai/halcyon/internal/models"
)

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a site account and signs the user in.
func (c *Client) Register(ctx context.Context, name, email, password, country string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, map[string]string{
		"name": name, "email": email, "password": password, "country": country,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := c.user.Save(Session{Token: resp.Token}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates the user realm and persists the credential.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, fallback(err, "Invalid credentials")
	}
	if err := c.user.Save(Session{Token: resp.Token}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Logout() {
	c.user.Clear()
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", RealmUser, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Chat sends one dashboard chat message.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	err := c.do(ctx, http.MethodPost, "/chat", RealmUser, nil,
		map[string]string{"message": message}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// SubmitContact sends the public contact form.
func (c *Client) SubmitContact(ctx context.Context, name, email, subject, message string) error {
	err := c.do(ctx, http.MethodPost, "/contact", "", nil, map[string]string{
		"name": name, "email": email, "subject": subject, "message": message,
	}, nil)
	return fallback(err, "Failed to send message")
}

// SubmitInquiry sends the investor-inquiry form. Company, investment
// range and message are optional.
func (c *Client) SubmitInquiry(ctx context.Context, name, email, company, investmentRange, message string) error {
	err := c.do(ctx, http.MethodPost, "/investor-inquiries", "", nil, map[string]string{
		"name": name, "email": email, "company": company,
		"investment_range": investmentRange, "message": message,
	}, nil)
	return fallback(err, "Failed to send inquiry")
}
