package openklant

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams encodes list filters as query parameters.
type ListParams interface {
	Values() url.Values
}

// ListOptions holds the options every list endpoint accepts.
type ListOptions struct {
	// Page is the 1-based page number. 0 leaves it to the server.
	Page int
	// PageSize is the number of records per page. 0 leaves it to the server.
	PageSize int
	// Filters are extra raw filters sent verbatim.
	Filters map[string]string
}

func (o ListOptions) apply(q *queryBuilder) {
	for key, value := range o.Filters {
		q.values.Set(key, value)
	}

	q.setInt("page", o.Page)
	q.setInt("pageSize", o.PageSize)
}

type queryBuilder struct {
	values url.Values
}

func newQuery(opts ListOptions) *queryBuilder {
	q := &queryBuilder{values: url.Values{}}
	opts.apply(q)

	return q
}

func (q *queryBuilder) setString(key, value string) *queryBuilder {
	if value != "" {
		q.values.Set(key, value)
	}

	return q
}

func (q *queryBuilder) setInt(key string, value int) *queryBuilder {
	if value > 0 {
		q.values.Set(key, strconv.Itoa(value))
	}

	return q
}

func (q *queryBuilder) setBool(key string, value *bool) *queryBuilder {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}

	return q
}

func (q *queryBuilder) setList(key string, values []string) *queryBuilder {
	if len(values) > 0 {
		q.values.Set(key, strings.Join(values, ","))
	}

	return q
}

// ActorListParams filters the actoren collection.
type ActorListParams struct {
	ListOptions

	Naam            string
	SoortActor      SoortActor
	IndicatieActief *bool
}

// Values implements ListParams.
func (p *ActorListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("naam", p.Naam).
		setString("soortActor", string(p.SoortActor)).
		setBool("indicatieActief", p.IndicatieActief).
		values
}

// BetrokkeneListParams filters the betrokkenen collection.
type BetrokkeneListParams struct {
	ListOptions

	WasPartijUUID       string
	HadKlantcontactUUID string
	Rol                 Rol
	Organisatienaam     string
}

// Values implements ListParams.
func (p *BetrokkeneListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("wasPartij__uuid", p.WasPartijUUID).
		setString("hadKlantcontact__uuid", p.HadKlantcontactUUID).
		setString("rol", string(p.Rol)).
		setString("organisatienaam", p.Organisatienaam).
		values
}

// DigitaalAdresListParams filters the digitaleadressen collection.
type DigitaalAdresListParams struct {
	ListOptions

	Adres                       string
	SoortDigitaalAdres          SoortDigitaalAdres
	VerstrektDoorPartijUUID     string
	VerstrektDoorBetrokkeneUUID string
}

// Values implements ListParams.
func (p *DigitaalAdresListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("adres", p.Adres).
		setString("soortDigitaalAdres", string(p.SoortDigitaalAdres)).
		setString("verstrektDoorPartij__uuid", p.VerstrektDoorPartijUUID).
		setString("verstrektDoorBetrokkene__uuid", p.VerstrektDoorBetrokkeneUUID).
		values
}

// InterneTaakListParams filters the internetaken collection.
type InterneTaakListParams struct {
	ListOptions

	Nummer                           string
	Status                           InterneTaakStatus
	ToegewezenAanActorUUID           string
	AanleidinggevendKlantcontactUUID string
}

// Values implements ListParams.
func (p *InterneTaakListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("nummer", p.Nummer).
		setString("status", string(p.Status)).
		setString("toegewezenAanActoren__uuid", p.ToegewezenAanActorUUID).
		setString("aanleidinggevendKlantcontact__uuid", p.AanleidinggevendKlantcontactUUID).
		values
}

// KlantContactListParams filters the klantcontacten collection.
type KlantContactListParams struct {
	ListOptions

	Kanaal                 string
	Onderwerp              string
	Nummer                 string
	IndicatieContactGelukt *bool
	Expand                 []string
}

// Values implements ListParams.
func (p *KlantContactListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("kanaal", p.Kanaal).
		setString("onderwerp", p.Onderwerp).
		setString("nummer", p.Nummer).
		setBool("indicatieContactGelukt", p.IndicatieContactGelukt).
		setList("expand", p.Expand).
		values
}

// OnderwerpObjectListParams filters the onderwerpobjecten collection.
type OnderwerpObjectListParams struct {
	ListOptions

	KlantcontactUUID string
	ObjectID         string
}

// Values implements ListParams.
func (p *OnderwerpObjectListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("klantcontact__uuid", p.KlantcontactUUID).
		setString("onderwerpobjectidentificatorObjectId", p.ObjectID).
		values
}

// PartijIdentificatorListParams filters the partij-identificatoren collection.
type PartijIdentificatorListParams struct {
	ListOptions

	ObjectID                 string
	CodeSoortObjectID        string
	IdentificeerdePartijUUID string
}

// Values implements ListParams.
func (p *PartijIdentificatorListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("partijIdentificatorObjectId", p.ObjectID).
		setString("partijIdentificatorCodeSoortObjectId", p.CodeSoortObjectID).
		setString("identificeerdePartij__uuid", p.IdentificeerdePartijUUID).
		values
}

// PartijListParams filters the partijen collection.
type PartijListParams struct {
	ListOptions

	SoortPartij                 SoortPartij
	IndicatieActief             *bool
	PartijIdentificatorObjectID string
	Expand                      []string
}

// Values implements ListParams.
func (p *PartijListParams) Values() url.Values {
	if p == nil {
		return url.Values{}
	}

	return newQuery(p.ListOptions).
		setString("soortPartij", string(p.SoortPartij)).
		setBool("indicatieActief", p.IndicatieActief).
		setString("partijIdentificator__objectId", p.PartijIdentificatorObjectID).
		setList("expand", p.Expand).
		values
}
