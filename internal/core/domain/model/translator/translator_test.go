package translator_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobWithCity(t *testing.T, city string) *job.Job {
	t.Helper()
	start := time.Now().Add(time.Hour)
	window, err := kernel.NewTimeWindow(start, start.Add(time.Hour))
	require.NoError(t, err)

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), job.Details{
		LanguageFrom: "sv",
		LanguageTo:   "ar",
		City:         city,
		Window:       window,
		Duration:     time.Hour,
	}, time.Now())
	require.NoError(t, err)
	return j
}

func TestNewTranslator(t *testing.T) {
	t.Run("creates translator with valid profile", func(t *testing.T) {
		id := kernel.NewUUID()

		tr, err := translator.NewTranslator(id, "Amira", "+46700000001", "push-token", "Stockholm",
			[]translator.LanguagePair{{From: "sv", To: "ar"}})

		require.NoError(t, err)
		assert.True(t, tr.ID().IsEqual(id))
		assert.Equal(t, "Amira", tr.Name())
		assert.Equal(t, "Stockholm", tr.City())
		assert.Len(t, tr.Languages(), 1)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := translator.NewTranslator(kernel.NewUUID(), "", "", "", "",
			[]translator.LanguagePair{{From: "sv", To: "ar"}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing language pairs", func(t *testing.T) {
		_, err := translator.NewTranslator(kernel.NewUUID(), "Amira", "", "", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects half-empty language pair", func(t *testing.T) {
		_, err := translator.NewTranslator(kernel.NewUUID(), "Amira", "", "", "",
			[]translator.LanguagePair{{From: "sv"}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTranslator_Validate(t *testing.T) {
	var tr translator.Translator

	err := tr.Validate()

	require.Error(t, err)
	assert.Equal(t, translator.ErrTranslatorIsNotConstructed, err)
}

func TestTranslator_CanTake(t *testing.T) {
	newProfile := func(city string, pairs ...translator.LanguagePair) *translator.Translator {
		tr, err := translator.NewTranslator(kernel.NewUUID(), "Amira", "", "", city, pairs)
		require.NoError(t, err)
		return tr
	}

	t.Run("matching pair and city is eligible", func(t *testing.T) {
		tr := newProfile("Stockholm", translator.LanguagePair{From: "sv", To: "ar"})

		assert.True(t, tr.CanTake(newJobWithCity(t, "Stockholm")))
	})

	t.Run("wrong language pair is not eligible", func(t *testing.T) {
		tr := newProfile("Stockholm", translator.LanguagePair{From: "sv", To: "fi"})

		assert.False(t, tr.CanTake(newJobWithCity(t, "Stockholm")))
	})

	t.Run("language pair direction matters", func(t *testing.T) {
		tr := newProfile("Stockholm", translator.LanguagePair{From: "ar", To: "sv"})

		assert.False(t, tr.CanTake(newJobWithCity(t, "Stockholm")))
	})

	t.Run("on-site job in another city is not eligible", func(t *testing.T) {
		tr := newProfile("Uppsala", translator.LanguagePair{From: "sv", To: "ar"})

		assert.False(t, tr.CanTake(newJobWithCity(t, "Stockholm")))
	})

	t.Run("phone job matches regardless of city", func(t *testing.T) {
		tr := newProfile("Uppsala", translator.LanguagePair{From: "sv", To: "ar"})

		assert.True(t, tr.CanTake(newJobWithCity(t, "")))
	})

	t.Run("nil job is never eligible", func(t *testing.T) {
		tr := newProfile("", translator.LanguagePair{From: "sv", To: "ar"})

		assert.False(t, tr.CanTake(nil))
	})
}
