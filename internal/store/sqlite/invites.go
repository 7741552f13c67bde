package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/askyourcrush/askyourcrush-server/internal/domain"
	"github.com/askyourcrush/askyourcrush-server/internal/store"
)

// inviteColumns is the ordered list of columns selected in invite queries.
// Must match the scan order in scanInvite.
const inviteColumns = `slug, message, theme, sender_name, sender_email, recipient_name,
	event_date, event_time, event_title, response, responded_at, created_at`

// scanInvite scans a sql.Row (or sql.Rows via its Scan method) into a domain.Invite.
func scanInvite(scanner interface{ Scan(dest ...any) error }) (*domain.Invite, error) {
	var inv domain.Invite

	var (
		theme         string
		senderName    sql.NullString
		senderEmail   sql.NullString
		recipientName sql.NullString
		eventDate     sql.NullString
		eventTime     sql.NullString
		response      sql.NullString
		respondedAt   sql.NullString
		createdAt     string
	)

	err := scanner.Scan(
		&inv.Slug,
		&inv.Message,
		&theme,
		&senderName,
		&senderEmail,
		&recipientName,
		&eventDate,
		&eventTime,
		&inv.EventTitle,
		&response,
		&respondedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	inv.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	inv.RespondedAt, err = parseNullableTime(respondedAt)
	if err != nil {
		return nil, err
	}

	inv.Theme = domain.Theme(theme)
	inv.SenderName = senderName.String
	inv.SenderEmail = senderEmail.String
	inv.RecipientName = recipientName.String
	inv.EventDate = eventDate.String
	inv.EventTime = eventTime.String
	inv.Response = domain.Response(response.String)

	return &inv, nil
}

// CreateInvite inserts a new invite into the database.
// Returns store.ErrAlreadyExists if the slug already exists.
func (s *Store) CreateInvite(ctx context.Context, invite *domain.Invite) error {
	var respondedAt sql.NullString
	if invite.RespondedAt != nil {
		respondedAt = nullString(formatTime(*invite.RespondedAt))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invites (
			slug, message, theme, sender_name, sender_email, recipient_name,
			event_date, event_time, event_title, response, responded_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invite.Slug,
		invite.Message,
		string(invite.Theme),
		nullString(invite.SenderName),
		nullString(invite.SenderEmail),
		nullString(invite.RecipientName),
		nullString(invite.EventDate),
		nullString(invite.EventTime),
		invite.EventTitle,
		nullString(string(invite.Response)),
		respondedAt,
		formatTime(invite.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetInvite retrieves an invite by slug.
// Returns store.ErrNotFound if the invite does not exist.
func (s *Store) GetInvite(ctx context.Context, slug string) (*domain.Invite, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE slug = ?`, slug)

	inv, err := scanInvite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// RecordResponse sets the response and responded_at in one conditional
// update guarded by "response IS NULL". Of any number of concurrent callers
// for the same slug exactly one succeeds.
// Returns store.ErrNotFound or store.ErrAlreadyResponded when no row was updated.
func (s *Store) RecordResponse(ctx context.Context, slug string, response domain.Response, at time.Time) (*domain.Invite, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE invites SET
			response = ?,
			responded_at = ?
		WHERE slug = ? AND response IS NULL
		RETURNING `+inviteColumns,
		string(response),
		formatTime(at),
		slug,
	)

	inv, err := scanInvite(row)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Nothing updated: the slug is unknown or the response is already set.
	var existing sql.NullString
	err = s.db.QueryRowContext(ctx,
		`SELECT response FROM invites WHERE slug = ?`, slug).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("response rejected, invite already responded",
		"slug", slug,
		"existing", existing.String,
		"attempted", string(response),
	)
	return nil, store.ErrAlreadyResponded
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
