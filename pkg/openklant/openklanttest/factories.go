package openklanttest

import (
	"testing"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Option mutates a payload under construction.
type Option[T any] func(*T)

// Builder assembles a create payload from sensible defaults. Build validates
// the result, so a factory never hands out a payload the client would reject
// unless Raw is used.
type Builder[T any] struct {
	value  T
	schema *openklant.Schema[T]
}

func newBuilder[T any](schema *openklant.Schema[T], value T) *Builder[T] {
	return &Builder[T]{value: value, schema: schema}
}

// With applies opts in order.
func (b *Builder[T]) With(opts ...Option[T]) *Builder[T] {
	for _, opt := range opts {
		opt(&b.value)
	}

	return b
}

// Build validates and returns a copy of the payload.
func (b *Builder[T]) Build() (*T, error) {
	value := b.value

	err := b.schema.Validate(&value)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// MustBuild is Build that fails the test on error.
func (b *Builder[T]) MustBuild(t testing.TB) *T {
	t.Helper()

	value, err := b.Build()
	if err != nil {
		t.Fatalf("building %s: %v", b.schema.Name(), err)
	}

	return value
}

// Raw returns a copy of the payload without validating it.
func (b *Builder[T]) Raw() *T {
	value := b.value

	return &value
}

// Actor returns a builder for an active medewerker.
func Actor() *Builder[openklant.ActorCreateData] {
	return newBuilder(openklant.ActorCreateSchema, openklant.ActorCreateData{
		Naam:            "Jan Janssen",
		SoortActor:      openklant.SoortActorMedewerker,
		IndicatieActief: openklant.Bool(true),
	})
}

// KlantContact returns a builder for a successful phone contact.
func KlantContact() *Builder[openklant.KlantContactCreateData] {
	return newBuilder(openklant.KlantContactCreateSchema, openklant.KlantContactCreateData{
		Kanaal:                 "telefoon",
		Onderwerp:              "Vraag over afvalpas",
		Taal:                   "nld",
		IndicatieContactGelukt: openklant.Bool(true),
	})
}

// Betrokkene returns a builder for the klant of klantcontact.
func Betrokkene(klantcontact string) *Builder[openklant.BetrokkeneCreateData] {
	return newBuilder(openklant.BetrokkeneCreateSchema, openklant.BetrokkeneCreateData{
		HadKlantcontact: openklant.Ref(klantcontact),
		Rol:             openklant.RolKlant,
		Initiator:       true,
	})
}

// DigitaalAdres returns a builder for an e-mail address.
func DigitaalAdres() *Builder[openklant.DigitaalAdresCreateData] {
	return newBuilder(openklant.DigitaalAdresCreateSchema, openklant.DigitaalAdresCreateData{
		Adres:              "jan@example.nl",
		SoortDigitaalAdres: openklant.SoortDigitaalAdresEmail,
		Omschrijving:       "prive",
	})
}

// InterneTaak returns a builder for a task raised by klantcontact and
// assigned to actors.
func InterneTaak(klantcontact string, actors ...string) *Builder[openklant.InterneTaakCreateData] {
	assigned := make([]openklant.ForeignKey, 0, len(actors))
	for _, actor := range actors {
		assigned = append(assigned, openklant.ForeignKey{UUID: actor})
	}

	return newBuilder(openklant.InterneTaakCreateSchema, openklant.InterneTaakCreateData{
		GevraagdeHandeling:           "Terugbellen",
		AanleidinggevendKlantcontact: openklant.Ref(klantcontact),
		ToegewezenAanActoren:         assigned,
		Status:                       openklant.InterneTaakStatusTeVerwerken,
	})
}

// OnderwerpObject returns a builder linking klantcontact to a zaak.
func OnderwerpObject(klantcontact string) *Builder[openklant.OnderwerpObjectCreateData] {
	return newBuilder(openklant.OnderwerpObjectCreateSchema, openklant.OnderwerpObjectCreateData{
		Klantcontact: openklant.Ref(klantcontact),
		Onderwerpobjectidentificator: openklant.Identificator{
			ObjectID:          "ZAAK-2024-0001",
			CodeObjecttype:    "zaak",
			CodeRegister:      "openzaak",
			CodeSoortObjectID: "identificatie",
		},
	})
}

// Persoon returns a builder for a natural person.
func Persoon() *Builder[openklant.PartijCreateData] {
	return newBuilder(openklant.PartijCreateSchema, openklant.PartijCreateData{
		SoortPartij:     openklant.SoortPartijPersoon,
		IndicatieActief: true,
		Voorkeurstaal:   "nld",
		PartijIdentificatie: openklant.PartijIdentificatie{
			Contactnaam: &openklant.Contactnaam{Voorletters: "J", Voornaam: "Jan", Achternaam: "Janssen"},
		},
	})
}

// Organisatie returns a builder for an organisation.
func Organisatie() *Builder[openklant.PartijCreateData] {
	return newBuilder(openklant.PartijCreateSchema, openklant.PartijCreateData{
		SoortPartij:     openklant.SoortPartijOrganisatie,
		IndicatieActief: true,
		PartijIdentificatie: openklant.PartijIdentificatie{
			Naam: "Gemeente Voorbeeld",
		},
	})
}

// BSN returns a builder identifying partij by a burgerservicenummer.
func BSN(partij, bsn string) *Builder[openklant.PartijIdentificatorCreateData] {
	return newBuilder(openklant.PartijIdentificatorCreateSchema, openklant.PartijIdentificatorCreateData{
		IdentificeerdePartij: openklant.Ref(partij),
		PartijIdentificator: openklant.PartijIdentificatorGegevens{
			CodeObjecttype:    openklant.CodeObjecttypeNatuurlijkPersoon,
			CodeSoortObjectID: openklant.CodeSoortObjectIDBSN,
			ObjectID:          bsn,
			CodeRegister:      openklant.CodeRegisterBRP,
		},
	})
}
