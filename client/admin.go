package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/halcyon-ai/halcyon/internal/models"
)

// Local validation failures for the password-change form. These never
// reach the network.
var (
	ErrPasswordMismatch = errors.New("New passwords do not match")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")
)

type adminLoginResponse struct {
	Token                  string `json:"token"`
	RequiresPasswordChange bool   `json:"requires_password_change"`
}

// AdminLogin authenticates against the admin realm. The credential is
// persisted before the destination is decided, so a gate check on the
// destination already sees it. The returned redirect is the next
// screen: change-password when rotation is due, otherwise the
// dashboard (Proceed).
func (c *Client) AdminLogin(ctx context.Context, username, password string) (Redirect, error) {
	var resp adminLoginResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", "", nil,
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return RedirectLogin, fallback(err, "Invalid credentials")
	}

	if err := c.admin.Save(Session{
		Token:                  resp.Token,
		RequiresPasswordChange: resp.RequiresPasswordChange,
	}); err != nil {
		return RedirectLogin, err
	}
	if resp.RequiresPasswordChange {
		return RedirectChangePassword, nil
	}
	return Proceed, nil
}

// AdminChangePassword validates locally, then rotates the credential.
// Validation short-circuits in order: mismatch first, then length; a
// local failure issues no request. On success the persisted rotation
// flag is cleared and the stored token stays valid.
func (c *Client) AdminChangePassword(ctx context.Context, current, next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	err := c.do(ctx, http.MethodPost, "/admin/change-password", RealmAdmin, nil,
		map[string]string{"current_password": current, "new_password": next}, nil)
	if err != nil {
		return fallback(err, "Failed to change password")
	}

	session := c.admin.Load()
	session.RequiresPasswordChange = false
	return c.admin.Save(session)
}

// AdminLogout drops the admin credential. The user realm is untouched.
func (c *Client) AdminLogout() {
	c.admin.Clear()
}

func (c *Client) AdminStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", RealmAdmin, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", RealmAdmin, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AdminContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := c.do(ctx, http.MethodGet, "/admin/contacts", RealmAdmin, nil, nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) AdminInquiries(ctx context.Context) ([]models.InvestorInquiry, error) {
	var inquiries []models.InvestorInquiry
	if err := c.do(ctx, http.MethodGet, "/admin/investor-inquiries", RealmAdmin, nil, nil, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (c *Client) AdminArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := c.do(ctx, http.MethodGet, "/admin/articles", RealmAdmin, nil, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticleDraft is the create/update payload for the admin console.
type ArticleDraft struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

func (c *Client) AdminCreateArticle(ctx context.Context, draft ArticleDraft) (*models.Article, error) {
	var created models.Article
	if err := c.do(ctx, http.MethodPost, "/admin/articles", RealmAdmin, nil, draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AdminUpdateArticle(ctx context.Context, id string, draft ArticleDraft) (*models.Article, error) {
	var updated models.Article
	if err := c.do(ctx, http.MethodPut, "/admin/articles/"+id, RealmAdmin, nil, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/articles/"+id, RealmAdmin, nil, nil, nil)
}

func (c *Client) AdminChat(ctx context.Context, message string) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	err := c.do(ctx, http.MethodPost, "/admin/chat", RealmAdmin, nil,
		map[string]string{"message": message}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// fallback substitutes a generic message when the server reply carried
// none; transport errors pass through untouched.
func fallback(err error, message string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = message
	}
	return err
}
