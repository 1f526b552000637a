package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/halcyon-ai/halcyon/internal/models"
)

func (s *Store) CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	const query = `
		INSERT INTO contacts (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, name, email, subject, message, created_at
	`
	var created models.Contact
	err := s.db.QueryRow(ctx, query,
		uuid.NewString(), contact.Name, contact.Email, contact.Subject, contact.Message,
	).Scan(&created.ID, &created.Name, &created.Email, &created.Subject, &created.Message, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &created, nil
}

func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	const query = `
		SELECT id::text, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return contacts, nil
}

func (s *Store) CreateInquiry(ctx context.Context, inquiry models.InvestorInquiry) (*models.InvestorInquiry, error) {
	const query = `
		INSERT INTO investor_inquiries (id, name, email, company, investment_range, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, name, email, company, investment_range, message, created_at
	`
	var created models.InvestorInquiry
	err := s.db.QueryRow(ctx, query,
		uuid.NewString(), inquiry.Name, inquiry.Email, inquiry.Company, inquiry.InvestmentRange, inquiry.Message,
	).Scan(&created.ID, &created.Name, &created.Email, &created.Company, &created.InvestmentRange, &created.Message, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return &created, nil
}

func (s *Store) ListInquiries(ctx context.Context) ([]models.InvestorInquiry, error) {
	const query = `
		SELECT id::text, name, email, company, investment_range, message, created_at
		FROM investor_inquiries
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]models.InvestorInquiry, 0)
	for rows.Next() {
		var q models.InvestorInquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Company, &q.InvestmentRange, &q.Message, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return inquiries, nil
}

// CreateChatLog records a chat exchange for analytics.
func (s *Store) CreateChatLog(ctx context.Context, log models.ChatLog) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO chat_logs (id, user_id, realm, message, response) VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), log.UserID, log.Realm, log.Message, log.Response,
	)
	if err != nil {
		return fmt.Errorf("create chat log: %w", err)
	}
	return nil
}

// Stats aggregates the dashboard counters in one round trip.
func (s *Store) Stats(ctx context.Context) (*models.Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM articles),
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM investor_inquiries),
			(SELECT COUNT(*) FROM chat_logs)
	`
	var stats models.Stats
	err := s.db.QueryRow(ctx, query).Scan(
		&stats.Users, &stats.Articles, &stats.Contacts, &stats.InvestorInquiries, &stats.ChatMessages,
	)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return &stats, nil
}
