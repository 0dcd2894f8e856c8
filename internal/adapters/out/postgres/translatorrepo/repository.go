package translatorrepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTranslatorRepository implements TranslatorRepository using GORM.
type GormTranslatorRepository struct {
	db *gorm.DB
}

// NewGormTranslatorRepository creates a new GORM translator repository.
func NewGormTranslatorRepository(db *gorm.DB) *GormTranslatorRepository {
	return &GormTranslatorRepository{db: db}
}

// Add saves a new translator profile with its language pairs.
func (r *GormTranslatorRepository) Add(ctx context.Context, aggregate *translator.Translator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a translator profile by ID.
func (r *GormTranslatorRepository) Get(ctx context.Context, id kernel.UUID) (*translator.Translator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TranslatorDTO
	err := r.db.WithContext(ctx).
		Preload("Languages").
		First(&dto, "id = ?", id.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("translator", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetEligibleForJob retrieves translators working the job's language pair,
// restricted to the job's city for on-site jobs. The translator currently
// bound to the job is excluded so fan-out never targets the assignee as a
// candidate.
func (r *GormTranslatorRepository) GetEligibleForJob(ctx context.Context, aggregate *job.Job) ([]*translator.Translator, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Languages").
		Joins("JOIN translator_languages tl ON tl.translator_id = translators.id").
		Where("tl.language_from = ? AND tl.language_to = ?", aggregate.LanguageFrom(), aggregate.LanguageTo())

	if aggregate.City() != "" {
		query = query.Where("translators.city = ?", aggregate.City())
	}
	if bound := aggregate.Translator(); bound != nil {
		query = query.Where("translators.id <> ?", bound.Bytes())
	}

	var dtos []TranslatorDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	translators := make([]*translator.Translator, 0, len(dtos))
	for _, dto := range dtos {
		tr, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		translators = append(translators, tr)
	}

	return translators, nil
}
