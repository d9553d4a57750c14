package openklanttest_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-inwoner/openklant/pkg/openklant"
	"github.com/open-inwoner/openklant/pkg/openklant/openklanttest"
)

func buildErr[T any](builder *openklanttest.Builder[T]) error {
	_, err := builder.Build()

	return err
}

func TestFactories_BuildValidPayloads(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()

	builds := map[string]error{
		"actor":           buildErr(openklanttest.Actor()),
		"klantcontact":    buildErr(openklanttest.KlantContact()),
		"betrokkene":      buildErr(openklanttest.Betrokkene(id)),
		"digitaal adres":  buildErr(openklanttest.DigitaalAdres()),
		"interne taak":    buildErr(openklanttest.InterneTaak(id, id)),
		"onderwerpobject": buildErr(openklanttest.OnderwerpObject(id)),
		"persoon":         buildErr(openklanttest.Persoon()),
		"organisatie":     buildErr(openklanttest.Organisatie()),
		"bsn":             buildErr(openklanttest.BSN(id, "123456782")),
	}

	for name, err := range builds {
		assert.NoError(t, err, name)
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("applies options in order", func(t *testing.T) {
		t.Parallel()

		actor, err := openklanttest.Actor().With(
			func(data *openklant.ActorCreateData) { data.Naam = "Eerst" },
			func(data *openklant.ActorCreateData) { data.Naam = "Daarna" },
		).Build()
		require.NoError(t, err)
		assert.Equal(t, "Daarna", actor.Naam)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		t.Parallel()

		builder := openklanttest.InterneTaak(uuid.NewString())

		_, err := builder.Build()
		require.Error(t, err)

		var validationErr *openklant.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"toegewezenAanActoren"}, validationErr.Paths())

		assert.Empty(t, builder.Raw().ToegewezenAanActoren)
	})

	t.Run("returns independent copies", func(t *testing.T) {
		t.Parallel()

		builder := openklanttest.DigitaalAdres()

		first := builder.MustBuild(t)
		first.Adres = "ander@example.nl"

		second := builder.MustBuild(t)
		assert.Equal(t, "jan@example.nl", second.Adres)
	})

	t.Run("bsn must be nine digits", func(t *testing.T) {
		t.Parallel()

		_, err := openklanttest.BSN(uuid.NewString(), "1234").Build()
		require.Error(t, err)
		assert.True(t, openklant.IsValidation(err))
	})
}
