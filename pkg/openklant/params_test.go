package openklant

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params ListParams
		want   url.Values
	}{
		{
			name:   "nil params",
			params: (*ActorListParams)(nil),
			want:   url.Values{},
		},
		{
			name:   "actor filters",
			params: &ActorListParams{SoortActor: SoortActorMedewerker, IndicatieActief: Bool(false)},
			want:   url.Values{"soortActor": {"medewerker"}, "indicatieActief": {"false"}},
		},
		{
			name: "paging and raw filters",
			params: &BetrokkeneListParams{
				ListOptions:   ListOptions{Page: 2, PageSize: 50, Filters: map[string]string{"volledigeNaam": "Jan"}},
				WasPartijUUID: "6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31",
			},
			want: url.Values{
				"page":            {"2"},
				"pageSize":        {"50"},
				"volledigeNaam":   {"Jan"},
				"wasPartij__uuid": {"6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31"},
			},
		},
		{
			name:   "typed filter wins over raw filter",
			params: &PartijListParams{ListOptions: ListOptions{Filters: map[string]string{"soortPartij": "organisatie"}}, SoortPartij: SoortPartijPersoon},
			want:   url.Values{"soortPartij": {"persoon"}},
		},
		{
			name:   "expand is comma separated",
			params: &KlantContactListParams{Expand: []string{ExpandHadBetrokkenen, ExpandLeiddeTotInterneTaken}},
			want:   url.Values{"expand": {"hadBetrokkenen,leiddeTotInterneTaken"}},
		},
		{
			name:   "zero values are omitted",
			params: &InterneTaakListParams{},
			want:   url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.params.Values())
		})
	}
}
