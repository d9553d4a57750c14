package openklanttest

import (
	"strings"

	"github.com/open-inwoner/openklant/internal/constants"
)

// foreignKey describes a field that holds {uuid} on input and {uuid, url} on
// output. An empty target accepts any uuid without an existence check.
type foreignKey struct {
	field  string
	target string
	list   bool
}

// reverseRelation lists the records of source whose sourceField points at the
// rendered record. The result is merged into field.
type reverseRelation struct {
	field       string
	source      string
	sourceField string
}

// matcher decides whether record matches a custom filter value.
type matcher func(s *store, record map[string]any, value string) bool

type collection struct {
	path     string
	required []string
	defaults map[string]any
	keys     []foreignKey
	reverse  []reverseRelation
	expand   []string
	filters  map[string]string
	matchers map[string]matcher
	numbered bool
	derive   func(record map[string]any)
}

// collections mirrors the klantinteracties resource model. Filters map a query
// key to the dotted record path it compares against.
var collections = []*collection{
	{
		path:     constants.PathActoren,
		required: []string{"naam", "soortActor"},
		defaults: map[string]any{"indicatieActief": true},
		filters: map[string]string{
			"naam":            "naam",
			"soortActor":      "soortActor",
			"indicatieActief": "indicatieActief",
		},
	},
	{
		path:     constants.PathBetrokkenen,
		required: []string{"hadKlantcontact", "rol"},
		defaults: map[string]any{"initiator": false, "organisatienaam": ""},
		keys: []foreignKey{
			{field: "wasPartij", target: constants.PathPartijen},
			{field: "hadKlantcontact", target: constants.PathKlantContacten},
		},
		reverse: []reverseRelation{
			{field: "digitaleAdressen", source: constants.PathDigitaleAdressen, sourceField: "verstrektDoorBetrokkene"},
		},
		filters: map[string]string{
			"wasPartij__uuid":       "wasPartij.uuid",
			"hadKlantcontact__uuid": "hadKlantcontact.uuid",
			"rol":                   "rol",
			"organisatienaam":       "organisatienaam",
		},
		derive: deriveVolledigeNaam("contactnaam", "volledigeNaam"),
	},
	{
		path:     constants.PathDigitaleAdressen,
		required: []string{"adres", "soortDigitaalAdres"},
		defaults: map[string]any{"omschrijving": ""},
		keys: []foreignKey{
			{field: "verstrektDoorBetrokkene", target: constants.PathBetrokkenen},
			{field: "verstrektDoorPartij", target: constants.PathPartijen},
		},
		filters: map[string]string{
			"adres":                         "adres",
			"soortDigitaalAdres":            "soortDigitaalAdres",
			"verstrektDoorPartij__uuid":     "verstrektDoorPartij.uuid",
			"verstrektDoorBetrokkene__uuid": "verstrektDoorBetrokkene.uuid",
		},
	},
	{
		path:     constants.PathInterneTaken,
		required: []string{"gevraagdeHandeling", "aanleidinggevendKlantcontact", "toegewezenAanActoren", "status"},
		defaults: map[string]any{"toelichting": ""},
		keys: []foreignKey{
			{field: "aanleidinggevendKlantcontact", target: constants.PathKlantContacten},
			{field: "toegewezenAanActoren", target: constants.PathActoren, list: true},
		},
		filters: map[string]string{
			"nummer":                             "nummer",
			"status":                             "status",
			"toegewezenAanActoren__uuid":         "toegewezenAanActoren.uuid",
			"aanleidinggevendKlantcontact__uuid": "aanleidinggevendKlantcontact.uuid",
		},
		numbered: true,
	},
	{
		path:     constants.PathKlantContacten,
		required: []string{"kanaal", "onderwerp", "taal"},
		defaults: map[string]any{
			"hadBetrokkenActoren": []any{},
			"omvatteBijlagen":     []any{},
			"inhoud":              "",
			"vertrouwelijk":       false,
		},
		reverse: []reverseRelation{
			{field: "hadBetrokkenen", source: constants.PathBetrokkenen, sourceField: "hadKlantcontact"},
			{field: "gingOverOnderwerpobjecten", source: constants.PathOnderwerpObjecten, sourceField: "klantcontact"},
			{field: "leiddeTotInterneTaken", source: constants.PathInterneTaken, sourceField: "aanleidinggevendKlantcontact"},
		},
		expand: []string{"hadBetrokkenen", "gingOverOnderwerpobjecten", "leiddeTotInterneTaken"},
		filters: map[string]string{
			"kanaal":                 "kanaal",
			"onderwerp":              "onderwerp",
			"nummer":                 "nummer",
			"indicatieContactGelukt": "indicatieContactGelukt",
		},
		numbered: true,
	},
	{
		path:     constants.PathOnderwerpObjecten,
		required: []string{"onderwerpobjectidentificator"},
		keys: []foreignKey{
			{field: "klantcontact", target: constants.PathKlantContacten},
			{field: "wasKlantcontact", target: constants.PathKlantContacten},
		},
		filters: map[string]string{
			"klantcontact__uuid":                   "klantcontact.uuid",
			"onderwerpobjectidentificatorObjectId": "onderwerpobjectidentificator.objectId",
		},
	},
	{
		path:     constants.PathPartijIdentificatoren,
		required: []string{"partijIdentificator"},
		defaults: map[string]any{"anderePartijIdentificator": ""},
		keys: []foreignKey{
			{field: "identificeerdePartij", target: constants.PathPartijen},
		},
		filters: map[string]string{
			"partijIdentificatorObjectId":          "partijIdentificator.objectId",
			"partijIdentificatorCodeSoortObjectId": "partijIdentificator.codeSoortObjectId",
			"identificeerdePartij__uuid":           "identificeerdePartij.uuid",
		},
	},
	{
		path:     constants.PathPartijen,
		required: []string{"soortPartij"},
		defaults: map[string]any{"interneNotitie": "", "indicatieActief": true},
		keys: []foreignKey{
			{field: "digitaleAdressen", target: constants.PathDigitaleAdressen, list: true},
			{field: "voorkeursDigitaalAdres", target: constants.PathDigitaleAdressen},
			{field: "rekeningnummers", list: true},
			{field: "voorkeursRekeningnummer"},
		},
		reverse: []reverseRelation{
			{field: "betrokkenen", source: constants.PathBetrokkenen, sourceField: "wasPartij"},
			{field: "digitaleAdressen", source: constants.PathDigitaleAdressen, sourceField: "verstrektDoorPartij"},
			{field: "partijIdentificatoren", source: constants.PathPartijIdentificatoren, sourceField: "identificeerdePartij"},
		},
		expand: []string{"betrokkenen", "digitaleAdressen", "partijIdentificatoren"},
		filters: map[string]string{
			"soortPartij":     "soortPartij",
			"indicatieActief": "indicatieActief",
		},
		matchers: map[string]matcher{
			"partijIdentificator__objectId": partijIdentificatorObjectID,
		},
		numbered: true,
		derive:   deriveVolledigeNaam("partijIdentificatie.contactnaam", "partijIdentificatie.volledigeNaam"),
	},
}

func collectionFor(path string) *collection {
	for _, c := range collections {
		if c.path == path {
			return c
		}
	}

	return nil
}

func (c *collection) foreignKey(field string) (foreignKey, bool) {
	for _, key := range c.keys {
		if key.field == field {
			return key, true
		}
	}

	return foreignKey{}, false
}

func (c *collection) expandable(name string) bool {
	for _, field := range c.expand {
		if field == name {
			return true
		}
	}

	return false
}

// partijIdentificatorObjectID matches a partij that has a partij-identificator
// with the given objectId.
func partijIdentificatorObjectID(s *store, record map[string]any, value string) bool {
	uuid, _ := record["uuid"].(string)

	for _, identificator := range s.all(constants.PathPartijIdentificatoren) {
		if lookup(identificator, "identificeerdePartij.uuid") == uuid &&
			lookup(identificator, "partijIdentificator.objectId") == value {
			return true
		}
	}

	return false
}

// deriveVolledigeNaam fills target with the joined name parts found at source.
func deriveVolledigeNaam(source, target string) func(map[string]any) {
	return func(record map[string]any) {
		naam, ok := walk(record, source).(map[string]any)
		if !ok {
			return
		}

		var parts []string

		for _, key := range []string{"voornaam", "voorvoegselAchternaam", "achternaam"} {
			if part, _ := naam[key].(string); part != "" {
				parts = append(parts, part)
			}
		}

		if len(parts) == 0 {
			return
		}

		parentPath, field := splitLast(target)

		parent := record
		if parentPath != "" {
			nested, ok := walk(record, parentPath).(map[string]any)
			if !ok {
				return
			}

			parent = nested
		}

		parent[field] = strings.Join(parts, " ")
	}
}

func splitLast(path string) (string, string) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "", path
	}

	return path[:idx], path[idx+1:]
}
