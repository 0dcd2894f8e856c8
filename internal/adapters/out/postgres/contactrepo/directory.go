package contactrepo

import (
	"context"
	"database/sql"
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecipientDirectory implements RecipientDirectory using GORM.
type GormRecipientDirectory struct {
	db *gorm.DB
}

// NewGormRecipientDirectory creates a new GORM recipient directory.
func NewGormRecipientDirectory(db *gorm.DB) *GormRecipientDirectory {
	return &GormRecipientDirectory{db: db}
}

// CustomerRecipient resolves the customer's contact endpoints.
func (d *GormRecipientDirectory) CustomerRecipient(ctx context.Context, customerID kernel.UUID) (ports.Recipient, error) {
	if err := customerID.Validate(); err != nil {
		return ports.Recipient{}, err
	}

	var dto CustomerContactDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Recipient{}, errs.NewObjectNotFoundError("customer contact", customerID.String())
		}
		return ports.Recipient{}, err
	}

	return ports.Recipient{
		UserID:    customerID,
		Name:      dto.Name,
		Phone:     dto.Phone,
		PushToken: dto.PushToken,
	}, nil
}

// TranslatorRecipient resolves a translator's contact endpoints from the
// translator profile.
func (d *GormRecipientDirectory) TranslatorRecipient(ctx context.Context, translatorID kernel.UUID) (ports.Recipient, error) {
	if err := translatorID.Validate(); err != nil {
		return ports.Recipient{}, err
	}

	row := d.db.WithContext(ctx).Raw(
		"SELECT name, phone, push_token FROM translators WHERE id = @id",
		map[string]any{"id": translatorID.String()},
	).Row()

	recipient := ports.Recipient{UserID: translatorID}
	if err := row.Scan(&recipient.Name, &recipient.Phone, &recipient.PushToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.Recipient{}, errs.NewObjectNotFoundError("translator", translatorID.String())
		}
		return ports.Recipient{}, err
	}

	return recipient, nil
}

// CandidateTranslatorRecipients resolves every translator eligible for the
// job, excluding the one currently bound to it. The eligibility predicate is
// the same join the potential-jobs listing uses, inverted around the job.
func (d *GormRecipientDirectory) CandidateTranslatorRecipients(ctx context.Context, jobID kernel.UUID) ([]ports.Recipient, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	rows, err := d.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, t.phone, t.push_token
		FROM jobs j
		JOIN translator_languages tl
			ON tl.language_from = j.language_from
			AND tl.language_to = j.language_to
		JOIN translators t
			ON t.id = tl.translator_id
		WHERE j.id = @job
			AND (j.city = '' OR j.city = t.city)
			AND (j.translator_id IS NULL OR t.id <> j.translator_id)
	`, map[string]any{"job": jobID.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipients := make([]ports.Recipient, 0)
	for rows.Next() {
		var id uuid.UUID
		var recipient ports.Recipient
		if err = rows.Scan(&id, &recipient.Name, &recipient.Phone, &recipient.PushToken); err != nil {
			return nil, err
		}

		recipient.UserID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, recipient)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipients, nil
}
