// Package translatorrepo persists translator profiles and the language pairs
// used for eligibility matching.
package translatorrepo

import (
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"

	"github.com/google/uuid"
)

// TranslatorDTO represents the database structure for translator profiles.
type TranslatorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	PushToken string
	City      string `gorm:"index"`

	Languages []TranslatorLanguageDTO `gorm:"foreignKey:TranslatorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for translator profiles.
func (TranslatorDTO) TableName() string {
	return "translators"
}

// TranslatorLanguageDTO is one directed language pair of a translator's
// profile. The pair index serves the eligibility join.
type TranslatorLanguageDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	TranslatorID uuid.UUID `gorm:"type:uuid;index"`
	LanguageFrom string    `gorm:"index:idx_translator_language_pair"`
	LanguageTo   string    `gorm:"index:idx_translator_language_pair"`
}

// TableName specifies the database table name for language pairs.
func (TranslatorLanguageDTO) TableName() string {
	return "translator_languages"
}

func fromDomain(aggregate *translator.Translator) TranslatorDTO {
	pairs := aggregate.Languages()
	languages := make([]TranslatorLanguageDTO, 0, len(pairs))
	for _, pair := range pairs {
		languages = append(languages, TranslatorLanguageDTO{
			TranslatorID: aggregate.ID().Bytes(),
			LanguageFrom: pair.From,
			LanguageTo:   pair.To,
		})
	}

	return TranslatorDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		PushToken: aggregate.PushToken(),
		City:      aggregate.City(),
		Languages: languages,
	}
}

func toDomain(dto TranslatorDTO) (*translator.Translator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	languages := make([]translator.LanguagePair, 0, len(dto.Languages))
	for _, language := range dto.Languages {
		languages = append(languages, translator.LanguagePair{
			From: language.LanguageFrom,
			To:   language.LanguageTo,
		})
	}

	return translator.NewTranslator(id, dto.Name, dto.Phone, dto.PushToken, dto.City, languages)
}
