package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

func klantContactResponse(uuid string) map[string]interface{} {
	return map[string]interface{}{
		"uuid":                      uuid,
		"url":                       "http://localhost/klantinteracties/api/v1/klantcontacten/" + uuid,
		"gingOverOnderwerpobjecten": []interface{}{},
		"hadBetrokkenActoren":       []interface{}{},
		"omvatteBijlagen":           []interface{}{},
		"hadBetrokkenen":            []interface{}{},
		"leiddeTotInterneTaken":     []interface{}{},
		"nummer":                    "0000000001",
		"kanaal":                    "telefoon",
		"onderwerp":                 "Vraag over afvalpas",
		"inhoud":                    "",
		"indicatieContactGelukt":    true,
		"taal":                      "nld",
		"vertrouwelijk":             false,
		"plaatsgevondenOp":          "2024-03-01T10:15:00Z",
	}
}

func TestKlantContactClient_Create(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[openklant.KlantContactCreateData]{
		{
			Name: "creates klantcontact",
			Request: &openklant.KlantContactCreateData{
				Kanaal:                 "telefoon",
				Onderwerp:              "Vraag over afvalpas",
				Taal:                   "nld",
				IndicatieContactGelukt: openklant.Bool(true),
			},
			ExpectedPath: "/klantcontacten",
			ExpectedBody: map[string]interface{}{
				"kanaal":                 "telefoon",
				"taal":                   "nld",
				"indicatieContactGelukt": true,
				"vertrouwelijk":          false,
			},
			StatusCode:  http.StatusCreated,
			Response:    klantContactResponse(testUUID),
			WantRequest: true,
		},
		{
			Name:       "taal must be three letters",
			Request:    &openklant.KlantContactCreateData{Kanaal: "telefoon", Onderwerp: "x", Taal: "nl"},
			WantErr:    true,
			ErrMessage: "taal: must be exactly 3 characters",
		},
		{
			Name:       "kanaal and onderwerp are required",
			Request:    &openklant.KlantContactCreateData{Taal: "nld"},
			WantErr:    true,
			ErrMessage: "kanaal: is required; onderwerp: is required",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *openklant.KlantContactCreateData) (*openklant.KlantContact, error) {
		return c.KlantContact().Create
	})
}

func TestKlantContactClient_RetrieveExpanded(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/klantcontacten/"+testUUID, request.URL.Path)
		assert.Equal(t, "hadBetrokkenen,leiddeTotInterneTaken", request.URL.Query().Get("expand"))

		body := klantContactResponse(testUUID)
		body["_expand"] = map[string]interface{}{
			"hadBetrokkenen": []interface{}{map[string]interface{}{
				"uuid":             testUUID2,
				"url":              "http://localhost/klantinteracties/api/v1/betrokkenen/" + testUUID2,
				"hadKlantcontact":  map[string]interface{}{"uuid": testUUID, "url": "http://localhost/klantinteracties/api/v1/klantcontacten/" + testUUID},
				"digitaleAdressen": []interface{}{},
				"rol":              "klant",
				"initiator":        true,
			}},
			"leiddeTotInterneTaken": []interface{}{},
		}

		writeJSON(t, writer, http.StatusOK, body)
	}))
	defer server.Close()

	contact, err := NewTestClient(t, server).KlantContact().RetrieveExpanded(
		context.Background(), testUUID,
		openklant.ExpandHadBetrokkenen, "", openklant.ExpandLeiddeTotInterneTaken,
	)
	require.NoError(t, err)
	require.NotNil(t, contact.Expand)
	require.Len(t, contact.Expand.HadBetrokkenen, 1)

	betrokkene := contact.Expand.HadBetrokkenen[0]
	assert.Equal(t, openklant.RolKlant, betrokkene.Rol)
	assert.Equal(t, testUUID, betrokkene.HadKlantcontact.UUID)
	assert.Empty(t, contact.Expand.LeiddeTotInterneTaken)
}

func TestKlantContactClient_RetrieveExpandedWithoutNames(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.URL.RawQuery)
		writeJSON(t, writer, http.StatusOK, klantContactResponse(testUUID))
	}))
	defer server.Close()

	contact, err := NewTestClient(t, server).KlantContact().RetrieveExpanded(context.Background(), testUUID)
	require.NoError(t, err)
	assert.Nil(t, contact.Expand)
	assert.Equal(t, "telefoon", contact.Kanaal)
	require.NotNil(t, contact.PlaatsgevondenOp)
	assert.Equal(t, 2024, contact.PlaatsgevondenOp.Year())
}

func TestInterneTaakClient_Create(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[openklant.InterneTaakCreateData]{
		{
			Name: "creates interne taak",
			Request: &openklant.InterneTaakCreateData{
				GevraagdeHandeling:           "Terugbellen",
				AanleidinggevendKlantcontact: openklant.Ref(testUUID),
				ToegewezenAanActoren:         []openklant.ForeignKey{{UUID: testUUID2}},
				Status:                       openklant.InterneTaakStatusTeVerwerken,
			},
			ExpectedPath: "/internetaken",
			ExpectedBody: map[string]interface{}{
				"aanleidinggevendKlantcontact": map[string]interface{}{"uuid": testUUID},
				"toegewezenAanActoren":         []interface{}{map[string]interface{}{"uuid": testUUID2}},
				"status":                       "te_verwerken",
			},
			StatusCode: http.StatusCreated,
			Response: map[string]interface{}{
				"uuid":                         testUUID2,
				"url":                          "http://localhost/internetaken/" + testUUID2,
				"gevraagdeHandeling":           "Terugbellen",
				"aanleidinggevendKlantcontact": map[string]interface{}{"uuid": testUUID, "url": "http://localhost/klantcontacten/" + testUUID},
				"toegewezenAanActoren":         []interface{}{},
				"status":                       "te_verwerken",
			},
			WantRequest: true,
		},
		{
			Name: "at least one actor",
			Request: &openklant.InterneTaakCreateData{
				GevraagdeHandeling:           "Terugbellen",
				AanleidinggevendKlantcontact: openklant.Ref(testUUID),
				Status:                       openklant.InterneTaakStatusTeVerwerken,
			},
			WantErr:    true,
			ErrMessage: "toegewezenAanActoren: is required",
		},
		{
			Name: "foreign key uuid must be valid",
			Request: &openklant.InterneTaakCreateData{
				GevraagdeHandeling:           "Terugbellen",
				AanleidinggevendKlantcontact: openklant.Ref("not-a-uuid"),
				ToegewezenAanActoren:         []openklant.ForeignKey{{UUID: testUUID2}},
				Status:                       openklant.InterneTaakStatusVerwerkt,
			},
			WantErr:    true,
			ErrMessage: "aanleidinggevendKlantcontact.uuid: must be a valid UUID",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *openklant.InterneTaakCreateData) (*openklant.InterneTaak, error) {
		return c.InterneTaak().Create
	})
}

func TestOnderwerpObjectClient_Create(t *testing.T) {
	t.Parallel()

	identificator := openklant.Identificator{
		ObjectID:          "ZAAK-2024-0001",
		CodeObjecttype:    "zaak",
		CodeRegister:      "openzaak",
		CodeSoortObjectID: "identificatie",
	}

	tests := []TestCreateOperation[openklant.OnderwerpObjectCreateData]{
		{
			Name: "null foreign keys are sent explicitly",
			Request: &openklant.OnderwerpObjectCreateData{
				Klantcontact:                 openklant.Ref(testUUID),
				Onderwerpobjectidentificator: identificator,
			},
			ExpectedPath: "/onderwerpobjecten",
			ExpectedBody: map[string]interface{}{
				"klantcontact":    map[string]interface{}{"uuid": testUUID},
				"wasKlantcontact": nil,
			},
			StatusCode: http.StatusCreated,
			Response: map[string]interface{}{
				"uuid":                         testUUID2,
				"url":                          "http://localhost/onderwerpobjecten/" + testUUID2,
				"klantcontact":                 map[string]interface{}{"uuid": testUUID, "url": "http://localhost/klantcontacten/" + testUUID},
				"wasKlantcontact":              nil,
				"onderwerpobjectidentificator": identificator,
			},
			WantRequest: true,
		},
		{
			Name:       "identificator fields are required",
			Request:    &openklant.OnderwerpObjectCreateData{},
			WantErr:    true,
			ErrMessage: "onderwerpobjectidentificator.objectId: is required",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *openklant.OnderwerpObjectCreateData) (*openklant.OnderwerpObject, error) {
		return c.OnderwerpObject().Create
	})
}
