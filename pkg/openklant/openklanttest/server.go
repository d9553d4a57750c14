package openklanttest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// MaxRequestSize bounds POST bodies.
const MaxRequestSize = 1024 * 1024

var (
	// ErrUnknownCollection is returned by Seed for a path the server does not serve.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrInvalidSeed is returned by Seed when a record fails the create checks.
	ErrInvalidSeed = errors.New("invalid seed record")
)

// Options configures a Server.
type Options struct {
	// Token, when set, must be presented as "Authorization: Token <Token>".
	Token string
	// BasePath prefixes every collection, e.g. "/klantinteracties/api/v1".
	BasePath string
	// PageSize is the default page size. It defaults to 100.
	PageSize int
	// Logger receives one debug line per handled request.
	Logger openklant.Logger
	// OnCreate is called after a record is stored, with the collection path
	// and the record. Its url fields are relative to BasePath.
	OnCreate func(path string, record map[string]any)
}

// Server is an in-memory stand-in for the klantinteracties API.
type Server struct {
	opts     Options
	store    *store
	requests atomic.Int64
	router   chi.Router
}

// New creates a server with empty collections.
func New(opts Options) *Server {
	if opts.PageSize <= 0 {
		opts.PageSize = constants.DefaultPageSize
	}

	if opts.Logger == nil {
		opts.Logger = openklant.NoopLogger{}
	}

	opts.BasePath = strings.TrimSuffix(opts.BasePath, "/")

	server := &Server{opts: opts, store: newStore()}
	server.router = server.setupRoutes()

	return server
}

// NewServer starts a Server on a local listener that is closed when the test
// ends. The second result is the base URL to configure clients with.
func NewServer(t testing.TB, opts Options) (*Server, string) {
	t.Helper()

	server := New(opts)
	listener := httptest.NewServer(server)
	t.Cleanup(listener.Close)

	return server, listener.URL + server.opts.BasePath
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests returns the number of requests handled so far.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// Count returns the number of records stored under path.
func (s *Server) Count(path string) int {
	return s.store.count(path)
}

// Reset drops every record.
func (s *Server) Reset() {
	s.store.reset()
}

// Seed stores records under path as if they were POSTed and returns their
// uuids. Each record is any value that marshals to a JSON object.
func (s *Server) Seed(path string, records ...any) ([]string, error) {
	coll := collectionFor(path)
	if coll == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, path)
	}

	uuids := make([]string, 0, len(records))

	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return uuids, fmt.Errorf("encoding seed record %d: %w", i, err)
		}

		var body map[string]any

		err = json.Unmarshal(raw, &body)
		if err != nil {
			return uuids, fmt.Errorf("decoding seed record %d: %w", i, err)
		}

		stored, invalid := s.create(coll, body)
		if len(invalid) > 0 {
			return uuids, fmt.Errorf("%w %d: %s", ErrInvalidSeed, i, describe(invalid))
		}

		uuids = append(uuids, stored["uuid"].(string))
	}

	return uuids, nil
}

// MustSeed is Seed that fails the test on error.
func (s *Server) MustSeed(t testing.TB, path string, records ...any) []string {
	t.Helper()

	uuids, err := s.Seed(path, records...)
	if err != nil {
		t.Fatalf("seeding %s: %v", path, err)
	}

	return uuids
}

func (s *Server) setupRoutes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(s.countRequests)
	router.Use(s.logRequests)
	router.Use(s.authenticate)

	routes := func(r chi.Router) {
		for _, coll := range collections {
			r.Route(coll.path, func(r chi.Router) {
				r.Get("/", s.handleList(coll))
				r.Get("/{uuid}", s.handleRetrieve(coll))
				r.With(requestSizeLimit(MaxRequestSize)).Post("/", s.handleCreate(coll))
			})
		}
	}

	if s.opts.BasePath == "" {
		routes(router)
	} else {
		router.Route(s.opts.BasePath, routes)
	}

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(w, http.StatusNotFound, "not_found", "Niet gevonden.", "Niet gevonden.", nil)
	})

	return router
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.opts.Logger.Debug("Handled request", map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start).String(),
		})
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.Token == "" {
			next.ServeHTTP(w, r)

			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			writeProblem(w, http.StatusUnauthorized, "not_authenticated",
				"Authenticatiegegevens zijn niet opgegeven.", "Authenticatiegegevens zijn niet opgegeven.", nil)

			return
		}

		if header != "Token "+s.opts.Token {
			writeProblem(w, http.StatusUnauthorized, "authentication_failed", "Ongeldige token.", "Ongeldige token.", nil)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestSizeLimit(maxSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) handleCreate(coll *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() { _ = r.Body.Close() }()

		var body map[string]any

		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil || body == nil {
			writeProblem(w, http.StatusBadRequest, "parse_error", "Malformed request.", "JSON parse error.", nil)

			return
		}

		record, invalid := s.create(coll, body)
		if len(invalid) > 0 {
			writeProblem(w, http.StatusBadRequest, "invalid", "Invalid input.", "", invalid)

			return
		}

		writeJSON(w, http.StatusCreated, s.render(coll, record, baseURL(r, s.opts.BasePath), nil))
	}
}

func (s *Server) handleRetrieve(coll *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.store.get(coll.path, chi.URLParam(r, "uuid"))
		if !ok {
			writeProblem(w, http.StatusNotFound, "not_found", "Niet gevonden.", "Niet gevonden.", nil)

			return
		}

		writeJSON(w, http.StatusOK, s.render(coll, record, baseURL(r, s.opts.BasePath), expandNames(coll, r.URL.Query())))
	}
}

func (s *Server) handleList(coll *collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page, ok := parsePage(query.Get("page"))
		if !ok {
			writeInvalidPage(w)

			return
		}

		pageSize := s.opts.PageSize
		if size, err := strconv.Atoi(query.Get("pageSize")); err == nil && size > 0 {
			pageSize = min(size, constants.MaxPageSize)
		}

		matched := s.filter(coll, query)

		pages := max(1, (len(matched)+pageSize-1)/pageSize)
		if page > pages {
			writeInvalidPage(w)

			return
		}

		start := (page - 1) * pageSize
		end := min(start+pageSize, len(matched))
		base := baseURL(r, s.opts.BasePath)
		expand := expandNames(coll, query)

		results := make([]any, 0, end-start)
		for _, record := range matched[start:end] {
			results = append(results, s.render(coll, record, base, expand))
		}

		var next, previous any
		if page < pages {
			next = pageURL(r, page+1)
		}

		if page > 1 {
			previous = pageURL(r, page-1)
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":    len(matched),
			"next":     next,
			"previous": previous,
			"results":  results,
		})
	}
}

// create applies defaults, resolves foreign keys and stores the record. It
// returns the problems found instead when the body is not acceptable.
func (s *Server) create(coll *collection, body map[string]any) (map[string]any, []openklant.InvalidParam) {
	record := clone(body).(map[string]any)

	var invalid []openklant.InvalidParam

	for _, field := range coll.required {
		if missing(record[field]) {
			invalid = append(invalid, openklant.InvalidParam{Name: field, Code: "required", Reason: "Dit veld is vereist."})
		}
	}

	for _, key := range coll.keys {
		invalid = append(invalid, s.resolve(key, record)...)
	}

	if len(invalid) > 0 {
		return nil, invalid
	}

	for field, value := range coll.defaults {
		if _, ok := record[field]; !ok {
			record[field] = clone(value)
		}
	}

	if coll.numbered && missing(record["nummer"]) {
		record["nummer"] = s.store.nextNumber(coll.path)
	}

	if coll.derive != nil {
		coll.derive(record)
	}

	delete(record, "url")
	delete(record, "_expand")
	record["uuid"] = uuid.NewString()

	s.store.put(coll.path, record)

	if s.opts.OnCreate != nil {
		s.opts.OnCreate(coll.path, s.render(coll, record, s.opts.BasePath, nil))
	}

	return record, nil
}

// resolve normalises a foreign key field to {uuid} values and reports
// references to records that do not exist.
func (s *Server) resolve(key foreignKey, record map[string]any) []openklant.InvalidParam {
	value, present := record[key.field]
	if !present || value == nil {
		if key.list {
			record[key.field] = []any{}
		} else {
			record[key.field] = nil
		}

		return nil
	}

	if !key.list {
		ref, problem := s.reference(key, key.field, value)
		if problem != nil {
			return []openklant.InvalidParam{*problem}
		}

		record[key.field] = ref

		return nil
	}

	items, ok := value.([]any)
	if !ok {
		return []openklant.InvalidParam{{Name: key.field, Code: "not_a_list", Reason: "Verwachtte een lijst."}}
	}

	var invalid []openklant.InvalidParam

	refs := make([]any, 0, len(items))

	for i, item := range items {
		ref, problem := s.reference(key, fmt.Sprintf("%s.%d", key.field, i), item)
		if problem != nil {
			invalid = append(invalid, *problem)

			continue
		}

		refs = append(refs, ref)
	}

	record[key.field] = refs

	return invalid
}

func (s *Server) reference(key foreignKey, name string, value any) (map[string]any, *openklant.InvalidParam) {
	object, ok := value.(map[string]any)
	if !ok {
		return nil, &openklant.InvalidParam{Name: name, Code: "invalid", Reason: "Ongeldige waarde."}
	}

	id, _ := object["uuid"].(string)
	if _, err := uuid.Parse(id); err != nil {
		return nil, &openklant.InvalidParam{Name: name + ".uuid", Code: "invalid", Reason: "Voer een geldige UUID in."}
	}

	if key.target != "" && !s.store.exists(key.target, id) {
		return nil, &openklant.InvalidParam{Name: name + ".uuid", Code: "does_not_exist", Reason: "Ongeldige uuid - object bestaat niet."}
	}

	return map[string]any{"uuid": id}, nil
}

// render returns a copy of record with url fields and reverse relations
// filled in for base, plus the requested expansions.
func (s *Server) render(coll *collection, record map[string]any, base string, expand []string) map[string]any {
	out := clone(record).(map[string]any)
	out["url"] = recordURL(base, coll.path, out["uuid"])

	for _, key := range coll.keys {
		out[key.field] = renderReference(base, key, out[key.field])
	}

	for _, rel := range coll.reverse {
		out[rel.field] = s.reverseRefs(base, rel, out)
	}

	if len(expand) == 0 {
		return out
	}

	expanded := make(map[string]any, len(expand))

	for _, name := range expand {
		rel, ok := coll.reverseRelation(name)
		if !ok {
			continue
		}

		source := collectionFor(rel.source)
		items := make([]any, 0)

		for _, related := range s.related(rel, out["uuid"]) {
			items = append(items, s.render(source, related, base, nil))
		}

		expanded[name] = items
	}

	out["_expand"] = expanded

	return out
}

func (c *collection) reverseRelation(field string) (reverseRelation, bool) {
	for _, rel := range c.reverse {
		if rel.field == field {
			return rel, true
		}
	}

	return reverseRelation{}, false
}

func (s *Server) related(rel reverseRelation, id any) []map[string]any {
	want := scalar(id)

	var related []map[string]any

	for _, candidate := range s.store.all(rel.source) {
		if matches(candidate[rel.sourceField], []string{"uuid"}, want) {
			related = append(related, candidate)
		}
	}

	return related
}

// reverseRefs merges the stored references in rel.field with every record
// of rel.source pointing back at out.
func (s *Server) reverseRefs(base string, rel reverseRelation, out map[string]any) []any {
	refs := make([]any, 0)
	seen := make(map[string]bool)

	if existing, ok := out[rel.field].([]any); ok {
		for _, item := range existing {
			if ref, ok := item.(map[string]any); ok {
				seen[scalar(ref["uuid"])] = true
			}

			refs = append(refs, item)
		}
	}

	for _, related := range s.related(rel, out["uuid"]) {
		id := scalar(related["uuid"])
		if seen[id] {
			continue
		}

		seen[id] = true
		refs = append(refs, map[string]any{"uuid": id, "url": recordURL(base, rel.source, id)})
	}

	return refs
}

func (s *Server) filter(coll *collection, query url.Values) []map[string]any {
	var matched []map[string]any

	for _, record := range s.store.all(coll.path) {
		if s.matchesQuery(coll, record, query) {
			matched = append(matched, record)
		}
	}

	return matched
}

// matchesQuery applies every known filter in query. Unknown keys are ignored.
func (s *Server) matchesQuery(coll *collection, record map[string]any, query url.Values) bool {
	for key, values := range query {
		if len(values) == 0 {
			continue
		}

		if match, ok := coll.matchers[key]; ok {
			if !match(s.store, record, values[0]) {
				return false
			}

			continue
		}

		path, ok := coll.filters[key]
		if !ok {
			continue
		}

		if !matches(record, strings.Split(path, "."), values[0]) {
			return false
		}
	}

	return true
}

func renderReference(base string, key foreignKey, value any) any {
	target := key.target
	if target == "" {
		target = "/" + key.field
	}

	withURL := func(item any) any {
		ref, ok := item.(map[string]any)
		if !ok {
			return item
		}

		return map[string]any{"uuid": ref["uuid"], "url": recordURL(base, target, ref["uuid"])}
	}

	if items, ok := value.([]any); ok {
		rendered := make([]any, 0, len(items))
		for _, item := range items {
			rendered = append(rendered, withURL(item))
		}

		return rendered
	}

	if value == nil {
		return nil
	}

	return withURL(value)
}

func recordURL(base, path string, id any) string {
	return base + path + "/" + scalar(id)
}

func expandNames(coll *collection, query url.Values) []string {
	var names []string

	for _, raw := range query["expand"] {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if coll.expandable(name) {
				names = append(names, name)
			}
		}
	}

	return names
}

func missing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func parsePage(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}

	return page, true
}

// baseURL is the absolute root every url field is rendered against.
func baseURL(r *http.Request, basePath string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host + basePath
}

// pageURL rewrites the request URL to point at page, dropping the parameter
// for the first page.
func pageURL(r *http.Request, page int) string {
	query := r.URL.Query()
	if page == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	target := baseURL(r, "") + r.URL.Path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	return target
}

func writeInvalidPage(w http.ResponseWriter) {
	writeProblem(w, http.StatusNotFound, "not_found", "Niet gevonden.", "Ongeldige pagina.", nil)
}

func writeProblem(w http.ResponseWriter, status int, code, title, detail string, invalid []openklant.InvalidParam) {
	writeJSON(w, status, openklant.Problem{
		Type:          "http://localhost/ref/fouten/" + code + "/",
		Code:          code,
		Title:         title,
		Status:        status,
		Detail:        detail,
		Instance:      "urn:uuid:" + uuid.NewString(),
		InvalidParams: invalid,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func describe(invalid []openklant.InvalidParam) string {
	parts := make([]string, 0, len(invalid))
	for _, param := range invalid {
		parts = append(parts, param.Name+": "+param.Reason)
	}

	return strings.Join(parts, "; ")
}
