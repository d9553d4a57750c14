package openklant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUUID = "6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31"

func requireValidationPaths(t *testing.T, err error, paths ...string) *ValidationError {
	t.Helper()

	require.Error(t, err)

	validationErr := &ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, paths, validationErr.Paths())

	return validationErr
}

func TestActorCreateSchema(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		err := ActorCreateSchema.Validate(&ActorCreateData{
			Naam:            "Jan Janssen",
			SoortActor:      SoortActorMedewerker,
			IndicatieActief: Bool(true),
		})
		assert.NoError(t, err)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		err := ActorCreateSchema.Validate(&ActorCreateData{})
		validationErr := requireValidationPaths(t, err, "naam", "soortActor")

		field, ok := validationErr.Field("naam")
		require.True(t, ok)
		assert.Equal(t, "is required", field.Message)
	})

	t.Run("unknown enum value", func(t *testing.T) {
		t.Parallel()

		err := ActorCreateSchema.Validate(&ActorCreateData{Naam: "Balie", SoortActor: "robot"})
		validationErr := requireValidationPaths(t, err, "soortActor")
		assert.Equal(t, "oneof", validationErr.Fields[0].Tag)
		assert.Equal(t, "must be one of [medewerker, geautomatiseerde_actor, organisatorische_eenheid]", validationErr.Fields[0].Message)
	})

	t.Run("nested identificator", func(t *testing.T) {
		t.Parallel()

		err := ActorCreateSchema.Validate(&ActorCreateData{
			Naam:               "Balie",
			SoortActor:         SoortActorOrganisatorischeEenheid,
			Actoridentificator: &Identificator{ObjectID: "123"},
		})
		requireValidationPaths(t, err,
			"actoridentificator.codeObjecttype",
			"actoridentificator.codeRegister",
			"actoridentificator.codeSoortObjectId",
		)
	})

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()

		err := ActorCreateSchema.Validate(nil)
		validationErr := requireValidationPaths(t, err, "")
		assert.Equal(t, "validation failed: ActorCreateData is required", validationErr.Error())
	})
}

func TestReferenceValidation(t *testing.T) {
	t.Parallel()

	record := Betrokkene{
		UUID:            testUUID,
		URL:             "http://localhost/betrokkenen/" + testUUID,
		HadKlantcontact: &Reference{UUID: testUUID},
		Rol:             RolKlant,
	}

	err := BetrokkeneSchema.Validate(&record)
	requireValidationPaths(t, err, "hadKlantcontact.url")

	record.HadKlantcontact.URL = "http://localhost/klantcontacten/" + testUUID
	require.NoError(t, BetrokkeneSchema.Validate(&record))

	record.HadKlantcontact = nil
	requireValidationPaths(t, BetrokkeneSchema.Validate(&record), "hadKlantcontact")
}

func TestInterneTaakCreateSchema(t *testing.T) {
	t.Parallel()

	data := &InterneTaakCreateData{
		GevraagdeHandeling:           "Terugbellen",
		AanleidinggevendKlantcontact: Ref(testUUID),
		ToegewezenAanActoren:         []ForeignKey{{UUID: "not-a-uuid"}},
		Status:                       InterneTaakStatusTeVerwerken,
	}

	requireValidationPaths(t, InterneTaakCreateSchema.Validate(data), "toegewezenAanActoren[0].uuid")

	data.ToegewezenAanActoren = nil
	requireValidationPaths(t, InterneTaakCreateSchema.Validate(data), "toegewezenAanActoren")

	data.ToegewezenAanActoren = []ForeignKey{{UUID: testUUID}}
	assert.NoError(t, InterneTaakCreateSchema.Validate(data))
}

func TestDigitaalAdresCreateSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      DigitaalAdresCreateData
		wantPaths []string
	}{
		{
			name: "valid email",
			data: DigitaalAdresCreateData{Adres: "jan@example.nl", SoortDigitaalAdres: SoortDigitaalAdresEmail, Omschrijving: "prive"},
		},
		{
			name:      "email kind with malformed address",
			data:      DigitaalAdresCreateData{Adres: "jan-at-example", SoortDigitaalAdres: SoortDigitaalAdresEmail, Omschrijving: "prive"},
			wantPaths: []string{"adres"},
		},
		{
			name: "phone number is not checked as email",
			data: DigitaalAdresCreateData{Adres: "0612345678", SoortDigitaalAdres: SoortDigitaalAdresTelefoonnummer, Omschrijving: "mobiel"},
		},
		{
			name:      "missing everything",
			data:      DigitaalAdresCreateData{},
			wantPaths: []string{"adres", "soortDigitaalAdres", "omschrijving"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := DigitaalAdresCreateSchema.Validate(&tt.data)
			if len(tt.wantPaths) == 0 {
				assert.NoError(t, err)

				return
			}

			requireValidationPaths(t, err, tt.wantPaths...)
		})
	}
}

func TestPartijCreateSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      PartijCreateData
		wantPaths []string
	}{
		{
			name: "persoon with contactnaam",
			data: PartijCreateData{
				SoortPartij:         SoortPartijPersoon,
				PartijIdentificatie: PartijIdentificatie{Contactnaam: &Contactnaam{Voornaam: "Jan", Achternaam: "Janssen"}},
			},
		},
		{
			name:      "persoon without contactnaam",
			data:      PartijCreateData{SoortPartij: SoortPartijPersoon},
			wantPaths: []string{"partijIdentificatie.contactnaam"},
		},
		{
			name:      "organisatie without naam",
			data:      PartijCreateData{SoortPartij: SoortPartijOrganisatie},
			wantPaths: []string{"partijIdentificatie.naam"},
		},
		{
			name:      "bad voorkeurstaal",
			data:      PartijCreateData{SoortPartij: SoortPartijOrganisatie, Voorkeurstaal: "nl", PartijIdentificatie: PartijIdentificatie{Naam: "Gemeente"}},
			wantPaths: []string{"voorkeurstaal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := PartijCreateSchema.Validate(&tt.data)
			if len(tt.wantPaths) == 0 {
				assert.NoError(t, err)

				return
			}

			requireValidationPaths(t, err, tt.wantPaths...)
		})
	}
}

func TestPartijIdentificatorCreateSchema(t *testing.T) {
	t.Parallel()

	data := &PartijIdentificatorCreateData{
		IdentificeerdePartij: Ref(testUUID),
		PartijIdentificator: PartijIdentificatorGegevens{
			CodeObjecttype:    CodeObjecttypeNatuurlijkPersoon,
			CodeSoortObjectID: CodeSoortObjectIDBSN,
			ObjectID:          "12345",
			CodeRegister:      CodeRegisterBRP,
		},
	}

	validationErr := requireValidationPaths(t, PartijIdentificatorCreateSchema.Validate(data), "partijIdentificator.objectId")
	assert.Equal(t, "must be 9 digits", validationErr.Fields[0].Message)

	data.PartijIdentificator.ObjectID = "111222333"
	assert.NoError(t, PartijIdentificatorCreateSchema.Validate(data))
}

func TestSchemaName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "KlantContact", KlantContactSchema.Name())
	assert.Equal(t, "OnderwerpObjectCreateData", OnderwerpObjectCreateSchema.Name())
}
