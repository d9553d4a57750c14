package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// resourceCommand describes the command group of one resource collection.
type resourceCommand[TRecord, TCreate, TParams any] struct {
	use    string
	short  string
	client func(openklant.Client) openklant.ResourceClient[TRecord, TCreate, TParams]
	params func(openklant.ListOptions) *TParams
	// expand, when set, enables get --expand.
	expand func(openklant.Client) func(ctx context.Context, uuid string, expand ...string) (*TRecord, error)
	header []string
	row    func(*TRecord) []string
}

func newResourceCommands(a *app) []*cobra.Command {
	return []*cobra.Command{
		newResourceCommand(a, resourceCommand[openklant.Actor, openklant.ActorCreateData, openklant.ActorListParams]{
			use:    "actoren",
			short:  "Manage actoren",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.Actor, openklant.ActorCreateData, openklant.ActorListParams] { return c.Actor() },
			params: func(o openklant.ListOptions) *openklant.ActorListParams { return &openklant.ActorListParams{ListOptions: o} },
			header: []string{"UUID", "Naam", "Soort", "Actief"},
			row: func(r *openklant.Actor) []string {
				return []string{r.UUID, r.Naam, string(r.SoortActor), boolString(r.IndicatieActief)}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.Betrokkene, openklant.BetrokkeneCreateData, openklant.BetrokkeneListParams]{
			use:    "betrokkenen",
			short:  "Manage betrokkenen",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.Betrokkene, openklant.BetrokkeneCreateData, openklant.BetrokkeneListParams] { return c.Betrokkene() },
			params: func(o openklant.ListOptions) *openklant.BetrokkeneListParams { return &openklant.BetrokkeneListParams{ListOptions: o} },
			header: []string{"UUID", "Rol", "Naam", "Klantcontact", "Initiator"},
			row: func(r *openklant.Betrokkene) []string {
				naam := r.VolledigeNaam
				if naam == "" {
					naam = r.Organisatienaam
				}

				return []string{r.UUID, string(r.Rol), orNA(naam), refUUID(r.HadKlantcontact), boolString(r.Initiator)}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.DigitaalAdres, openklant.DigitaalAdresCreateData, openklant.DigitaalAdresListParams]{
			use:    "digitaleadressen",
			short:  "Manage digitale adressen",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.DigitaalAdres, openklant.DigitaalAdresCreateData, openklant.DigitaalAdresListParams] { return c.DigitaalAdres() },
			params: func(o openklant.ListOptions) *openklant.DigitaalAdresListParams { return &openklant.DigitaalAdresListParams{ListOptions: o} },
			header: []string{"UUID", "Soort", "Adres", "Omschrijving"},
			row: func(r *openklant.DigitaalAdres) []string {
				return []string{r.UUID, string(r.SoortDigitaalAdres), r.Adres, orNA(r.Omschrijving)}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.InterneTaak, openklant.InterneTaakCreateData, openklant.InterneTaakListParams]{
			use:    "internetaken",
			short:  "Manage interne taken",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.InterneTaak, openklant.InterneTaakCreateData, openklant.InterneTaakListParams] { return c.InterneTaak() },
			params: func(o openklant.ListOptions) *openklant.InterneTaakListParams { return &openklant.InterneTaakListParams{ListOptions: o} },
			header: []string{"UUID", "Nummer", "Status", "Gevraagde handeling", "Klantcontact"},
			row: func(r *openklant.InterneTaak) []string {
				return []string{r.UUID, orNA(r.Nummer), string(r.Status), r.GevraagdeHandeling, refUUID(r.AanleidinggevendKlantcontact)}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.KlantContact, openklant.KlantContactCreateData, openklant.KlantContactListParams]{
			use:    "klantcontacten",
			short:  "Manage klantcontacten",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.KlantContact, openklant.KlantContactCreateData, openklant.KlantContactListParams] { return c.KlantContact() },
			params: func(o openklant.ListOptions) *openklant.KlantContactListParams { return &openklant.KlantContactListParams{ListOptions: o} },
			expand: func(c openklant.Client) func(context.Context, string, ...string) (*openklant.KlantContact, error) { return c.KlantContact().RetrieveExpanded },
			header: []string{"UUID", "Nummer", "Kanaal", "Onderwerp", "Gelukt", "Plaatsgevonden"},
			row: func(r *openklant.KlantContact) []string {
				gelukt := constants.NotAvailable
				if r.IndicatieContactGelukt != nil {
					gelukt = boolString(*r.IndicatieContactGelukt)
				}

				plaatsgevonden := constants.NotAvailable
				if r.PlaatsgevondenOp != nil {
					plaatsgevonden = r.PlaatsgevondenOp.Format("2006-01-02 15:04:05")
				}

				return []string{r.UUID, orNA(r.Nummer), r.Kanaal, r.Onderwerp, gelukt, plaatsgevonden}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.OnderwerpObject, openklant.OnderwerpObjectCreateData, openklant.OnderwerpObjectListParams]{
			use:    "onderwerpobjecten",
			short:  "Manage onderwerpobjecten",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.OnderwerpObject, openklant.OnderwerpObjectCreateData, openklant.OnderwerpObjectListParams] { return c.OnderwerpObject() },
			params: func(o openklant.ListOptions) *openklant.OnderwerpObjectListParams { return &openklant.OnderwerpObjectListParams{ListOptions: o} },
			header: []string{"UUID", "Klantcontact", "Objecttype", "Object ID"},
			row: func(r *openklant.OnderwerpObject) []string {
				return []string{r.UUID, refUUID(r.Klantcontact), r.Onderwerpobjectidentificator.CodeObjecttype, r.Onderwerpobjectidentificator.ObjectID}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.PartijIdentificator, openklant.PartijIdentificatorCreateData, openklant.PartijIdentificatorListParams]{
			use:    "partij-identificatoren",
			short:  "Manage partij-identificatoren",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.PartijIdentificator, openklant.PartijIdentificatorCreateData, openklant.PartijIdentificatorListParams] { return c.PartijIdentificator() },
			params: func(o openklant.ListOptions) *openklant.PartijIdentificatorListParams { return &openklant.PartijIdentificatorListParams{ListOptions: o} },
			header: []string{"UUID", "Partij", "Soort", "Object ID"},
			row: func(r *openklant.PartijIdentificator) []string {
				return []string{r.UUID, refUUID(r.IdentificeerdePartij), orNA(r.PartijIdentificator.CodeSoortObjectID), r.PartijIdentificator.ObjectID}
			},
		}),
		newResourceCommand(a, resourceCommand[openklant.Partij, openklant.PartijCreateData, openklant.PartijListParams]{
			use:    "partijen",
			short:  "Manage partijen",
			client: func(c openklant.Client) openklant.ResourceClient[openklant.Partij, openklant.PartijCreateData, openklant.PartijListParams] { return c.Partij() },
			params: func(o openklant.ListOptions) *openklant.PartijListParams { return &openklant.PartijListParams{ListOptions: o} },
			expand: func(c openklant.Client) func(context.Context, string, ...string) (*openklant.Partij, error) { return c.Partij().RetrieveExpanded },
			header: []string{"UUID", "Nummer", "Soort", "Naam", "Actief"},
			row: func(r *openklant.Partij) []string {
				naam := r.PartijIdentificatie.VolledigeNaam
				if naam == "" {
					naam = r.PartijIdentificatie.Naam
				}

				return []string{r.UUID, orNA(r.Nummer), string(r.SoortPartij), orNA(naam), boolString(r.IndicatieActief)}
			},
		}),
	}
}

func newResourceCommand[TRecord, TCreate, TParams any](a *app, res resourceCommand[TRecord, TCreate, TParams]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   res.use,
		Short: res.short,
	}

	cmd.AddCommand(newListCommand(a, res))
	cmd.AddCommand(newGetCommand(a, res))
	cmd.AddCommand(newCreateCommand(a, res))

	return cmd
}

func newListCommand[TRecord, TCreate, TParams any](a *app, res resourceCommand[TRecord, TCreate, TParams]) *cobra.Command {
	var (
		page     int
		pageSize int
		filters  []string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + res.use,
		Long:  "List " + res.use + ". Filters are passed to the API as query parameters.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseFilters(filters)
			if err != nil {
				return err
			}

			client, err := a.client(cmd)
			if err != nil {
				return err
			}

			params := res.params(openklant.ListOptions{Page: page, PageSize: pageSize, Filters: parsed})
			resources := res.client(client)

			var records []TRecord

			var value any

			if all {
				records, err = openklant.Collect(resources.ListIter(cmd.Context(), params))
				if err != nil {
					return fmt.Errorf("listing %s: %w", res.use, err)
				}

				value = records
			} else {
				result, err := resources.List(cmd.Context(), params)
				if err != nil {
					return fmt.Errorf("listing %s: %w", res.use, err)
				}

				records = result.Results
				value = result
			}

			return a.render(cmd, value, func() tableView {
				view := tableView{header: res.header}
				for i := range records {
					view.rows = append(view.rows, res.row(&records[i]))
				}

				return view
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "records per page")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter as key=value, repeatable")
	cmd.Flags().BoolVar(&all, "all", false, "follow every page")

	return cmd
}

func newGetCommand[TRecord, TCreate, TParams any](a *app, res resourceCommand[TRecord, TCreate, TParams]) *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get UUID...",
		Short: "Show " + res.use + " by uuid",
		Long:  "Show " + res.use + " by uuid. Several uuids are retrieved concurrently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client(cmd)
			if err != nil {
				return err
			}

			retrieve := res.client(client).Retrieve
			if len(expand) > 0 && res.expand != nil {
				expandFn := res.expand(client)
				retrieve = func(ctx context.Context, uuid string) (*TRecord, error) {
					return expandFn(ctx, uuid, expand...)
				}
			}

			if len(args) == 1 {
				record, err := retrieve(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("getting %s: %w", args[0], err)
				}

				return a.render(cmd, record, func() tableView {
					return tableView{header: res.header, rows: [][]string{res.row(record)}}
				})
			}

			records, retrieveErr := openklant.RetrieveMany[TRecord](cmd.Context(), retrieve, args, constants.DefaultConcurrencyLimit)

			found := make([]*TRecord, 0, len(records))
			for _, record := range records {
				if record != nil {
					found = append(found, record)
				}
			}

			err = a.render(cmd, found, func() tableView {
				view := tableView{header: res.header}
				for _, record := range found {
					view.rows = append(view.rows, res.row(record))
				}

				return view
			})
			if err != nil {
				return err
			}

			return retrieveErr
		},
	}

	if res.expand != nil {
		cmd.Flags().StringSliceVar(&expand, "expand", nil, "relations to inline, comma separated")
	}

	return cmd
}

func newCreateCommand[TRecord, TCreate, TParams any](a *app, res resourceCommand[TRecord, TCreate, TParams]) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create --from-file FILE",
		Short: "Create one of " + res.use,
		Long:  "Create one of " + res.use + " from a JSON or YAML payload. Use - to read standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fromFile == "" {
				return constants.ErrFromFileRequired
			}

			raw, err := readPayload(cmd, fromFile)
			if err != nil {
				return err
			}

			var data TCreate

			err = yaml.Unmarshal(raw, &data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", fromFile, err)
			}

			client, err := a.client(cmd)
			if err != nil {
				return err
			}

			record, err := res.client(client).Create(cmd.Context(), &data)
			if err != nil {
				return err
			}

			return a.render(cmd, record, func() tableView {
				return tableView{header: res.header, rows: [][]string{res.row(record)}}
			})
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "payload file, JSON or YAML")

	return cmd
}

func readPayload(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}

		return raw, nil
	}

	// #nosec G304 -- the user names the payload file
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return raw, nil
}

func parseFilters(filters []string) (map[string]string, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	parsed := make(map[string]string, len(filters))

	for _, filter := range filters {
		key, value, found := strings.Cut(filter, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFilter, filter)
		}

		parsed[strings.TrimSpace(key)] = value
	}

	return parsed, nil
}

func refUUID(ref *openklant.Reference) string {
	if ref == nil {
		return constants.NotAvailable
	}

	return ref.UUID
}
