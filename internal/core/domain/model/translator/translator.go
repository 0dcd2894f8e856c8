// Package translator contains the Translator aggregate: the interpreter
// profile used for job eligibility matching and notification delivery.
package translator

import (
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrTranslatorIsNotConstructed is returned when a Translator instance was not
// created through the NewTranslator factory method.
var ErrTranslatorIsNotConstructed = errors.New("Translator must be created via NewTranslator constructor")

// LanguagePair is a directed pair of languages a translator works in.
type LanguagePair struct {
	From string
	To   string
}

// Translator represents an interpreter profile. The profile drives two
// concerns: the eligibility predicate for potential jobs and the contact
// endpoints (phone, push token) for notification fan-out.
//
// Invariants:
//   - Must have a valid unique identifier and a name
//   - Must work in at least one language pair
type Translator struct {
	id        kernel.UUID
	name      string
	phone     string
	pushToken string
	city      string
	languages []LanguagePair

	isConstructed bool
}

// NewTranslator creates a validated Translator.
func NewTranslator(
	id kernel.UUID,
	name, phone, pushToken, city string,
	languages []LanguagePair,
) (*Translator, error) {
	tr := &Translator{
		phone:         phone,
		pushToken:     pushToken,
		city:          city,
		isConstructed: true,
	}

	if err := errors.Join(
		tr.setID(id),
		tr.setName(name),
		tr.setLanguages(languages),
	); err != nil {
		return nil, err
	}

	return tr, nil
}

// Validate ensures the Translator instance was properly constructed.
func (t *Translator) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTranslatorIsNotConstructed
	}
	return nil
}

// ID returns the translator's unique identifier.
func (t *Translator) ID() kernel.UUID {
	return t.id
}

// Name returns the translator's display name.
func (t *Translator) Name() string {
	return t.name
}

// Phone returns the SMS endpoint. Empty when SMS is not available.
func (t *Translator) Phone() string {
	return t.phone
}

// PushToken returns the push endpoint. Empty when push is not available.
func (t *Translator) PushToken() string {
	return t.pushToken
}

// City returns the translator's home city used for on-site matching.
func (t *Translator) City() string {
	return t.city
}

// Languages returns the language pairs the translator works in.
func (t *Translator) Languages() []LanguagePair {
	pairs := make([]LanguagePair, len(t.languages))
	copy(pairs, t.languages)
	return pairs
}

// CanTake reports whether the translator is eligible for the given job.
//
// Eligibility rules:
//   - The translator must work the job's language pair
//   - On-site jobs (job has a city) require a matching translator city;
//     phone jobs (empty city) match regardless of location
func (t *Translator) CanTake(j *job.Job) bool {
	if j == nil {
		return false
	}

	if !t.worksPair(j.LanguageFrom(), j.LanguageTo()) {
		return false
	}

	if j.City() != "" && t.city != j.City() {
		return false
	}

	return true
}

func (t *Translator) worksPair(from, to string) bool {
	for _, pair := range t.languages {
		if pair.From == from && pair.To == to {
			return true
		}
	}
	return false
}

func (t *Translator) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Translator) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Translator) setLanguages(languages []LanguagePair) error {
	if len(languages) == 0 {
		return errs.NewValueIsRequiredError("languages")
	}
	for _, pair := range languages {
		if pair.From == "" || pair.To == "" {
			return errs.NewValueIsInvalidError("language pair")
		}
	}
	t.languages = make([]LanguagePair, len(languages))
	copy(t.languages, languages)
	return nil
}
