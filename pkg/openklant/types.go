package openklant

// ForeignKey points at another record by uuid. It is what create payloads send.
type ForeignKey struct {
	UUID string `json:"uuid" yaml:"uuid" validate:"required,uuid"`
}

// Ref returns a ForeignKey for uuid.
func Ref(uuid string) *ForeignKey {
	return &ForeignKey{UUID: uuid}
}

// Reference is how the API returns a related record: its uuid and canonical url.
// A nil *Reference means the relation is absent; a Reference with only one of
// the two fields set fails validation.
type Reference struct {
	UUID string `json:"uuid" yaml:"uuid" validate:"required,uuid"`
	URL  string `json:"url"  yaml:"url"  validate:"required,url"`
}

// ForeignKey converts the reference into the shape create payloads use.
func (r *Reference) ForeignKey() *ForeignKey {
	if r == nil {
		return nil
	}

	return &ForeignKey{UUID: r.UUID}
}

// SoortActor classifies an actor.
type SoortActor string

// SoortActor values.
const (
	SoortActorMedewerker              SoortActor = "medewerker"
	SoortActorGeautomatiseerdeActor   SoortActor = "geautomatiseerde_actor"
	SoortActorOrganisatorischeEenheid SoortActor = "organisatorische_eenheid"
)

// SoortDigitaalAdres classifies a digital address.
type SoortDigitaalAdres string

// SoortDigitaalAdres values.
const (
	SoortDigitaalAdresEmail          SoortDigitaalAdres = "email"
	SoortDigitaalAdresTelefoonnummer SoortDigitaalAdres = "telefoonnummer"
	SoortDigitaalAdresOverig         SoortDigitaalAdres = "overig"
)

// Rol is the role a betrokkene played in a klantcontact.
type Rol string

// Rol values.
const (
	RolVertegenwoordiger Rol = "vertegenwoordiger"
	RolKlant             Rol = "klant"
)

// InterneTaakStatus is the processing state of an interne taak.
type InterneTaakStatus string

// InterneTaakStatus values.
const (
	InterneTaakStatusTeVerwerken InterneTaakStatus = "te_verwerken"
	InterneTaakStatusVerwerkt    InterneTaakStatus = "verwerkt"
)

// SoortPartij classifies a partij.
type SoortPartij string

// SoortPartij values.
const (
	SoortPartijPersoon        SoortPartij = "persoon"
	SoortPartijOrganisatie    SoortPartij = "organisatie"
	SoortPartijContactpersoon SoortPartij = "contactpersoon"
)

// Adres is a postal address.
type Adres struct {
	NummeraanduidingID string `json:"nummeraanduidingId,omitempty" yaml:"nummeraanduidingId,omitempty" validate:"max=255"`
	Adresregel1        string `json:"adresregel1,omitempty"        yaml:"adresregel1,omitempty"        validate:"max=80"`
	Adresregel2        string `json:"adresregel2,omitempty"        yaml:"adresregel2,omitempty"        validate:"max=80"`
	Adresregel3        string `json:"adresregel3,omitempty"        yaml:"adresregel3,omitempty"        validate:"max=80"`
	Land               string `json:"land,omitempty"               yaml:"land,omitempty"               validate:"omitempty,len=4"`
}

// Contactnaam is the name parts of a natural person.
type Contactnaam struct {
	Voorletters           string `json:"voorletters"           yaml:"voorletters"           validate:"max=10"`
	Voornaam              string `json:"voornaam"              yaml:"voornaam"              validate:"max=200"`
	VoorvoegselAchternaam string `json:"voorvoegselAchternaam" yaml:"voorvoegselAchternaam" validate:"max=10"`
	Achternaam            string `json:"achternaam"            yaml:"achternaam"            validate:"max=200"`
}

// Identificator identifies an object in an external register.
type Identificator struct {
	ObjectID          string `json:"objectId"          yaml:"objectId"          validate:"required,max=200"`
	CodeObjecttype    string `json:"codeObjecttype"    yaml:"codeObjecttype"    validate:"required,max=200"`
	CodeRegister      string `json:"codeRegister"      yaml:"codeRegister"      validate:"required,max=200"`
	CodeSoortObjectID string `json:"codeSoortObjectId" yaml:"codeSoortObjectId" validate:"required,max=200"`
}
