package openklant

import "time"

// Actor is someone or something acting on behalf of the organisation.
type Actor struct {
	UUID               string              `json:"uuid"                         yaml:"uuid"                         validate:"required,uuid"`
	URL                string              `json:"url"                          yaml:"url"                          validate:"required,url"`
	Naam               string              `json:"naam"                         yaml:"naam"                         validate:"required,max=200"`
	SoortActor         SoortActor          `json:"soortActor"                   yaml:"soortActor"                   validate:"required,oneof=medewerker geautomatiseerde_actor organisatorische_eenheid"`
	IndicatieActief    bool                `json:"indicatieActief"              yaml:"indicatieActief"`
	Actoridentificator *Identificator      `json:"actoridentificator,omitempty" yaml:"actoridentificator,omitempty"`
	ActorIdentificatie *ActorIdentificatie `json:"actorIdentificatie,omitempty" yaml:"actorIdentificatie,omitempty"`
}

// ActorIdentificatie holds the contact details of a medewerker.
type ActorIdentificatie struct {
	Functie        string `json:"functie,omitempty"        yaml:"functie,omitempty"        validate:"max=40"`
	Emailadres     string `json:"emailadres,omitempty"     yaml:"emailadres,omitempty"     validate:"omitempty,email"`
	Telefoonnummer string `json:"telefoonnummer,omitempty" yaml:"telefoonnummer,omitempty" validate:"max=20"`
}

// ActorCreateData is the payload for creating an actor.
type ActorCreateData struct {
	Naam               string              `json:"naam"                         yaml:"naam"                         validate:"required,max=200"`
	SoortActor         SoortActor          `json:"soortActor"                   yaml:"soortActor"                   validate:"required,oneof=medewerker geautomatiseerde_actor organisatorische_eenheid"`
	IndicatieActief    *bool               `json:"indicatieActief,omitempty"    yaml:"indicatieActief,omitempty"`
	Actoridentificator *Identificator      `json:"actoridentificator,omitempty" yaml:"actoridentificator,omitempty"`
	ActorIdentificatie *ActorIdentificatie `json:"actorIdentificatie,omitempty" yaml:"actorIdentificatie,omitempty"`
}

// Betrokkene is a party involved in a klantcontact.
type Betrokkene struct {
	UUID                 string       `json:"uuid"                           yaml:"uuid"                           validate:"required,uuid"`
	URL                  string       `json:"url"                            yaml:"url"                            validate:"required,url"`
	WasPartij            *Reference   `json:"wasPartij"                      yaml:"wasPartij"`
	HadKlantcontact      *Reference   `json:"hadKlantcontact"                yaml:"hadKlantcontact"                validate:"required"`
	DigitaleAdressen     []Reference  `json:"digitaleAdressen"               yaml:"digitaleAdressen"               validate:"dive"`
	Bezoekadres          *Adres       `json:"bezoekadres,omitempty"          yaml:"bezoekadres,omitempty"`
	Correspondentieadres *Adres       `json:"correspondentieadres,omitempty" yaml:"correspondentieadres,omitempty"`
	Contactnaam          *Contactnaam `json:"contactnaam,omitempty"          yaml:"contactnaam,omitempty"`
	VolledigeNaam        string       `json:"volledigeNaam,omitempty"        yaml:"volledigeNaam,omitempty"`
	Rol                  Rol          `json:"rol"                            yaml:"rol"                            validate:"required,oneof=vertegenwoordiger klant"`
	Organisatienaam      string       `json:"organisatienaam,omitempty"      yaml:"organisatienaam,omitempty"      validate:"max=200"`
	Initiator            bool         `json:"initiator"                      yaml:"initiator"`
}

// BetrokkeneCreateData is the payload for creating a betrokkene.
type BetrokkeneCreateData struct {
	WasPartij            *ForeignKey  `json:"wasPartij"                      yaml:"wasPartij"`
	HadKlantcontact      *ForeignKey  `json:"hadKlantcontact"                yaml:"hadKlantcontact"                validate:"required"`
	Bezoekadres          *Adres       `json:"bezoekadres,omitempty"          yaml:"bezoekadres,omitempty"`
	Correspondentieadres *Adres       `json:"correspondentieadres,omitempty" yaml:"correspondentieadres,omitempty"`
	Contactnaam          *Contactnaam `json:"contactnaam,omitempty"          yaml:"contactnaam,omitempty"`
	Rol                  Rol          `json:"rol"                            yaml:"rol"                            validate:"required,oneof=vertegenwoordiger klant"`
	Organisatienaam      string       `json:"organisatienaam,omitempty"      yaml:"organisatienaam,omitempty"      validate:"max=200"`
	Initiator            bool         `json:"initiator"                      yaml:"initiator"`
}

// DigitaalAdres is an e-mail address, phone number or other digital channel.
type DigitaalAdres struct {
	UUID                    string             `json:"uuid"                    yaml:"uuid"                    validate:"required,uuid"`
	URL                     string             `json:"url"                     yaml:"url"                     validate:"required,url"`
	VerstrektDoorBetrokkene *Reference         `json:"verstrektDoorBetrokkene" yaml:"verstrektDoorBetrokkene"`
	VerstrektDoorPartij     *Reference         `json:"verstrektDoorPartij"     yaml:"verstrektDoorPartij"`
	Adres                   string             `json:"adres"                   yaml:"adres"                   validate:"required,max=80"`
	SoortDigitaalAdres      SoortDigitaalAdres `json:"soortDigitaalAdres"      yaml:"soortDigitaalAdres"      validate:"required,oneof=email telefoonnummer overig"`
	Omschrijving            string             `json:"omschrijving"            yaml:"omschrijving"            validate:"max=40"`
}

// DigitaalAdresCreateData is the payload for creating a digitaal adres.
type DigitaalAdresCreateData struct {
	VerstrektDoorBetrokkene *ForeignKey        `json:"verstrektDoorBetrokkene" yaml:"verstrektDoorBetrokkene"`
	VerstrektDoorPartij     *ForeignKey        `json:"verstrektDoorPartij"     yaml:"verstrektDoorPartij"`
	Adres                   string             `json:"adres"                   yaml:"adres"                   validate:"required,max=80"`
	SoortDigitaalAdres      SoortDigitaalAdres `json:"soortDigitaalAdres"      yaml:"soortDigitaalAdres"      validate:"required,oneof=email telefoonnummer overig"`
	Omschrijving            string             `json:"omschrijving"            yaml:"omschrijving"            validate:"required,max=40"`
}

// InterneTaak is a follow-up task raised by a klantcontact.
type InterneTaak struct {
	UUID                         string            `json:"uuid"                         yaml:"uuid"                         validate:"required,uuid"`
	URL                          string            `json:"url"                          yaml:"url"                          validate:"required,url"`
	Nummer                       string            `json:"nummer"                       yaml:"nummer"                       validate:"max=10"`
	GevraagdeHandeling           string            `json:"gevraagdeHandeling"           yaml:"gevraagdeHandeling"           validate:"required,max=200"`
	AanleidinggevendKlantcontact *Reference        `json:"aanleidinggevendKlantcontact" yaml:"aanleidinggevendKlantcontact" validate:"required"`
	ToegewezenAanActoren         []Reference       `json:"toegewezenAanActoren"         yaml:"toegewezenAanActoren"         validate:"dive"`
	Toelichting                  string            `json:"toelichting"                  yaml:"toelichting"                  validate:"max=400"`
	Status                       InterneTaakStatus `json:"status"                       yaml:"status"                       validate:"required,oneof=te_verwerken verwerkt"`
	ToegewezenOp                 *time.Time        `json:"toegewezenOp,omitempty"       yaml:"toegewezenOp,omitempty"`
	AfgehandeldOp                *time.Time        `json:"afgehandeldOp,omitempty"      yaml:"afgehandeldOp,omitempty"`
}

// InterneTaakCreateData is the payload for creating an interne taak.
type InterneTaakCreateData struct {
	Nummer                       string            `json:"nummer,omitempty"             yaml:"nummer,omitempty"             validate:"max=10"`
	GevraagdeHandeling           string            `json:"gevraagdeHandeling"           yaml:"gevraagdeHandeling"           validate:"required,max=200"`
	AanleidinggevendKlantcontact *ForeignKey       `json:"aanleidinggevendKlantcontact" yaml:"aanleidinggevendKlantcontact" validate:"required"`
	ToegewezenAanActoren         []ForeignKey      `json:"toegewezenAanActoren"         yaml:"toegewezenAanActoren"         validate:"required,min=1,dive"`
	Toelichting                  string            `json:"toelichting,omitempty"        yaml:"toelichting,omitempty"        validate:"max=400"`
	Status                       InterneTaakStatus `json:"status"                       yaml:"status"                       validate:"required,oneof=te_verwerken verwerkt"`
}

// KlantContact is a single contact moment between the organisation and a klant.
type KlantContact struct {
	UUID                      string              `json:"uuid"                      yaml:"uuid"                      validate:"required,uuid"`
	URL                       string              `json:"url"                       yaml:"url"                       validate:"required,url"`
	GingOverOnderwerpobjecten []Reference         `json:"gingOverOnderwerpobjecten" yaml:"gingOverOnderwerpobjecten" validate:"dive"`
	HadBetrokkenActoren       []Reference         `json:"hadBetrokkenActoren"       yaml:"hadBetrokkenActoren"       validate:"dive"`
	OmvatteBijlagen           []Reference         `json:"omvatteBijlagen"           yaml:"omvatteBijlagen"           validate:"dive"`
	HadBetrokkenen            []Reference         `json:"hadBetrokkenen"            yaml:"hadBetrokkenen"            validate:"dive"`
	LeiddeTotInterneTaken     []Reference         `json:"leiddeTotInterneTaken"     yaml:"leiddeTotInterneTaken"     validate:"dive"`
	Nummer                    string              `json:"nummer"                    yaml:"nummer"                    validate:"max=10"`
	Kanaal                    string              `json:"kanaal"                    yaml:"kanaal"                    validate:"required,max=50"`
	Onderwerp                 string              `json:"onderwerp"                 yaml:"onderwerp"                 validate:"required,max=200"`
	Inhoud                    string              `json:"inhoud"                    yaml:"inhoud"                    validate:"max=1000"`
	IndicatieContactGelukt    *bool               `json:"indicatieContactGelukt"    yaml:"indicatieContactGelukt"`
	Taal                      string              `json:"taal"                      yaml:"taal"                      validate:"required,len=3"`
	Vertrouwelijk             bool                `json:"vertrouwelijk"             yaml:"vertrouwelijk"`
	PlaatsgevondenOp          *time.Time          `json:"plaatsgevondenOp"          yaml:"plaatsgevondenOp"`
	Expand                    *KlantContactExpand `json:"_expand,omitempty"         yaml:"_expand,omitempty"`
}

// KlantContactExpand holds the relations inlined by RetrieveExpanded.
type KlantContactExpand struct {
	HadBetrokkenen            []Betrokkene      `json:"hadBetrokkenen,omitempty"            yaml:"hadBetrokkenen,omitempty"            validate:"dive"`
	GingOverOnderwerpobjecten []OnderwerpObject `json:"gingOverOnderwerpobjecten,omitempty" yaml:"gingOverOnderwerpobjecten,omitempty" validate:"dive"`
	LeiddeTotInterneTaken     []InterneTaak     `json:"leiddeTotInterneTaken,omitempty"     yaml:"leiddeTotInterneTaken,omitempty"     validate:"dive"`
}

// KlantContact expansion names.
const (
	ExpandHadBetrokkenen            = "hadBetrokkenen"
	ExpandGingOverOnderwerpobjecten = "gingOverOnderwerpobjecten"
	ExpandLeiddeTotInterneTaken     = "leiddeTotInterneTaken"
)

// KlantContactCreateData is the payload for creating a klantcontact.
type KlantContactCreateData struct {
	Nummer                 string     `json:"nummer,omitempty"           yaml:"nummer,omitempty"           validate:"max=10"`
	Kanaal                 string     `json:"kanaal"                     yaml:"kanaal"                     validate:"required,max=50"`
	Onderwerp              string     `json:"onderwerp"                  yaml:"onderwerp"                  validate:"required,max=200"`
	Inhoud                 string     `json:"inhoud,omitempty"           yaml:"inhoud,omitempty"           validate:"max=1000"`
	IndicatieContactGelukt *bool      `json:"indicatieContactGelukt"     yaml:"indicatieContactGelukt"`
	Taal                   string     `json:"taal"                       yaml:"taal"                       validate:"required,len=3"`
	Vertrouwelijk          bool       `json:"vertrouwelijk"              yaml:"vertrouwelijk"`
	PlaatsgevondenOp       *time.Time `json:"plaatsgevondenOp,omitempty" yaml:"plaatsgevondenOp,omitempty"`
}

// OnderwerpObject links a klantcontact to the object it was about.
type OnderwerpObject struct {
	UUID                         string        `json:"uuid"                         yaml:"uuid"                         validate:"required,uuid"`
	URL                          string        `json:"url"                          yaml:"url"                          validate:"required,url"`
	Klantcontact                 *Reference    `json:"klantcontact"                 yaml:"klantcontact"`
	WasKlantcontact              *Reference    `json:"wasKlantcontact"              yaml:"wasKlantcontact"`
	Onderwerpobjectidentificator Identificator `json:"onderwerpobjectidentificator" yaml:"onderwerpobjectidentificator"`
}

// OnderwerpObjectCreateData is the payload for creating an onderwerpobject.
type OnderwerpObjectCreateData struct {
	Klantcontact                 *ForeignKey   `json:"klantcontact"                 yaml:"klantcontact"`
	WasKlantcontact              *ForeignKey   `json:"wasKlantcontact"              yaml:"wasKlantcontact"`
	Onderwerpobjectidentificator Identificator `json:"onderwerpobjectidentificator" yaml:"onderwerpobjectidentificator"`
}

// PartijIdentificatorGegevens identifies a partij in a base register.
type PartijIdentificatorGegevens struct {
	CodeObjecttype    string `json:"codeObjecttype"    yaml:"codeObjecttype"    validate:"omitempty,oneof=natuurlijk_persoon vestiging niet_natuurlijk_persoon"`
	CodeSoortObjectID string `json:"codeSoortObjectId" yaml:"codeSoortObjectId" validate:"omitempty,oneof=bsn vestigingsnummer rsin kvk_nummer"`
	ObjectID          string `json:"objectId"          yaml:"objectId"          validate:"required,max=200"`
	CodeRegister      string `json:"codeRegister"      yaml:"codeRegister"      validate:"omitempty,oneof=brp hr"`
}

// Register codes and identifier kinds used by PartijIdentificatorGegevens.
const (
	CodeObjecttypeNatuurlijkPersoon     = "natuurlijk_persoon"
	CodeObjecttypeVestiging             = "vestiging"
	CodeObjecttypeNietNatuurlijkPersoon = "niet_natuurlijk_persoon"

	CodeSoortObjectIDBSN              = "bsn"
	CodeSoortObjectIDVestigingsnummer = "vestigingsnummer"
	CodeSoortObjectIDRSIN             = "rsin"
	CodeSoortObjectIDKVKNummer        = "kvk_nummer"

	CodeRegisterBRP = "brp"
	CodeRegisterHR  = "hr"
)

// PartijIdentificator ties a partij to an identifier in a base register.
type PartijIdentificator struct {
	UUID                      string                      `json:"uuid"                      yaml:"uuid"                      validate:"required,uuid"`
	URL                       string                      `json:"url"                       yaml:"url"                       validate:"required,url"`
	IdentificeerdePartij      *Reference                  `json:"identificeerdePartij"      yaml:"identificeerdePartij"`
	AnderePartijIdentificator string                      `json:"anderePartijIdentificator" yaml:"anderePartijIdentificator" validate:"max=200"`
	PartijIdentificator       PartijIdentificatorGegevens `json:"partijIdentificator"       yaml:"partijIdentificator"`
}

// PartijIdentificatorCreateData is the payload for creating a partij-identificator.
type PartijIdentificatorCreateData struct {
	IdentificeerdePartij      *ForeignKey                 `json:"identificeerdePartij"                yaml:"identificeerdePartij"`
	AnderePartijIdentificator string                      `json:"anderePartijIdentificator,omitempty" yaml:"anderePartijIdentificator,omitempty" validate:"max=200"`
	PartijIdentificator       PartijIdentificatorGegevens `json:"partijIdentificator"                 yaml:"partijIdentificator"`
}

// PartijIdentificatie holds the identifying details of a partij. Which fields
// apply depends on SoortPartij: a persoon and a contactpersoon carry a
// Contactnaam, an organisatie carries a Naam.
type PartijIdentificatie struct {
	Contactnaam      *Contactnaam `json:"contactnaam,omitempty"      yaml:"contactnaam,omitempty"`
	VolledigeNaam    string       `json:"volledigeNaam,omitempty"    yaml:"volledigeNaam,omitempty"`
	Naam             string       `json:"naam,omitempty"             yaml:"naam,omitempty"             validate:"max=200"`
	WerkteVoorPartij *ForeignKey  `json:"werkteVoorPartij,omitempty" yaml:"werkteVoorPartij,omitempty"`
}

// Partij is a person or organisation the organisation is in contact with.
type Partij struct {
	UUID                    string              `json:"uuid"                           yaml:"uuid"                           validate:"required,uuid"`
	URL                     string              `json:"url"                            yaml:"url"                            validate:"required,url"`
	Nummer                  string              `json:"nummer"                         yaml:"nummer"                         validate:"max=10"`
	InterneNotitie          string              `json:"interneNotitie"                 yaml:"interneNotitie"                 validate:"max=1000"`
	Betrokkenen             []Reference         `json:"betrokkenen"                    yaml:"betrokkenen"                    validate:"dive"`
	DigitaleAdressen        []Reference         `json:"digitaleAdressen"               yaml:"digitaleAdressen"               validate:"dive"`
	VoorkeursDigitaalAdres  *Reference          `json:"voorkeursDigitaalAdres"         yaml:"voorkeursDigitaalAdres"`
	Rekeningnummers         []Reference         `json:"rekeningnummers"                yaml:"rekeningnummers"                validate:"dive"`
	VoorkeursRekeningnummer *Reference          `json:"voorkeursRekeningnummer"        yaml:"voorkeursRekeningnummer"`
	PartijIdentificatoren   []Reference         `json:"partijIdentificatoren"          yaml:"partijIdentificatoren"          validate:"dive"`
	SoortPartij             SoortPartij         `json:"soortPartij"                    yaml:"soortPartij"                    validate:"required,oneof=persoon organisatie contactpersoon"`
	IndicatieGeheimhouding  *bool               `json:"indicatieGeheimhouding"         yaml:"indicatieGeheimhouding"`
	Voorkeurstaal           string              `json:"voorkeurstaal"                  yaml:"voorkeurstaal"                  validate:"omitempty,len=3"`
	IndicatieActief         bool                `json:"indicatieActief"                yaml:"indicatieActief"`
	Bezoekadres             *Adres              `json:"bezoekadres,omitempty"          yaml:"bezoekadres,omitempty"`
	Correspondentieadres    *Adres              `json:"correspondentieadres,omitempty" yaml:"correspondentieadres,omitempty"`
	PartijIdentificatie     PartijIdentificatie `json:"partijIdentificatie"            yaml:"partijIdentificatie"`
	Expand                  *PartijExpand       `json:"_expand,omitempty"              yaml:"_expand,omitempty"`
}

// PartijExpand holds the relations inlined by RetrieveExpanded.
type PartijExpand struct {
	Betrokkenen           []Betrokkene          `json:"betrokkenen,omitempty"           yaml:"betrokkenen,omitempty"           validate:"dive"`
	DigitaleAdressen      []DigitaalAdres       `json:"digitaleAdressen,omitempty"      yaml:"digitaleAdressen,omitempty"      validate:"dive"`
	PartijIdentificatoren []PartijIdentificator `json:"partijIdentificatoren,omitempty" yaml:"partijIdentificatoren,omitempty" validate:"dive"`
}

// Partij expansion names.
const (
	ExpandBetrokkenen           = "betrokkenen"
	ExpandDigitaleAdressen      = "digitaleAdressen"
	ExpandPartijIdentificatoren = "partijIdentificatoren"
)

// PartijCreateData is the payload for creating a partij.
type PartijCreateData struct {
	Nummer                  string              `json:"nummer,omitempty"               yaml:"nummer,omitempty"               validate:"max=10"`
	InterneNotitie          string              `json:"interneNotitie,omitempty"       yaml:"interneNotitie,omitempty"       validate:"max=1000"`
	DigitaleAdressen        []ForeignKey        `json:"digitaleAdressen"               yaml:"digitaleAdressen"               validate:"dive"`
	VoorkeursDigitaalAdres  *ForeignKey         `json:"voorkeursDigitaalAdres"         yaml:"voorkeursDigitaalAdres"`
	Rekeningnummers         []ForeignKey        `json:"rekeningnummers"                yaml:"rekeningnummers"                validate:"dive"`
	VoorkeursRekeningnummer *ForeignKey         `json:"voorkeursRekeningnummer"        yaml:"voorkeursRekeningnummer"`
	SoortPartij             SoortPartij         `json:"soortPartij"                    yaml:"soortPartij"                    validate:"required,oneof=persoon organisatie contactpersoon"`
	IndicatieGeheimhouding  *bool               `json:"indicatieGeheimhouding"         yaml:"indicatieGeheimhouding"`
	Voorkeurstaal           string              `json:"voorkeurstaal,omitempty"        yaml:"voorkeurstaal,omitempty"        validate:"omitempty,len=3"`
	IndicatieActief         bool                `json:"indicatieActief"                yaml:"indicatieActief"`
	Bezoekadres             *Adres              `json:"bezoekadres,omitempty"          yaml:"bezoekadres,omitempty"`
	Correspondentieadres    *Adres              `json:"correspondentieadres,omitempty" yaml:"correspondentieadres,omitempty"`
	PartijIdentificatie     PartijIdentificatie `json:"partijIdentificatie"            yaml:"partijIdentificatie"`
}
