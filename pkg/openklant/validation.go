package openklant

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Schemas of every record and payload type.
var (
	ActorSchema                     = NewSchema[Actor]()
	ActorCreateSchema               = NewSchema[ActorCreateData]()
	BetrokkeneSchema                = NewSchema[Betrokkene]()
	BetrokkeneCreateSchema          = NewSchema[BetrokkeneCreateData]()
	DigitaalAdresSchema             = NewSchema[DigitaalAdres]()
	DigitaalAdresCreateSchema       = NewSchema[DigitaalAdresCreateData]()
	InterneTaakSchema               = NewSchema[InterneTaak]()
	InterneTaakCreateSchema         = NewSchema[InterneTaakCreateData]()
	KlantContactSchema              = NewSchema[KlantContact]()
	KlantContactCreateSchema        = NewSchema[KlantContactCreateData]()
	OnderwerpObjectSchema           = NewSchema[OnderwerpObject]()
	OnderwerpObjectCreateSchema     = NewSchema[OnderwerpObjectCreateData]()
	PartijIdentificatorSchema       = NewSchema[PartijIdentificator]()
	PartijIdentificatorCreateSchema = NewSchema[PartijIdentificatorCreateData]()
	PartijSchema                    = NewSchema[Partij]()
	PartijCreateSchema              = NewSchema[PartijCreateData]()
)

// Schema pairs a type with its validator.
type Schema[T any] struct {
	name string
}

// NewSchema returns the schema of T. T must be a struct type.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{name: reflect.TypeFor[T]().Name()}
}

// Name returns the Go type name the schema validates.
func (s *Schema[T]) Name() string {
	return s.name
}

// Validate checks value against the schema. A nil value fails as required.
func (s *Schema[T]) Validate(value *T) error {
	if value == nil {
		return &ValidationError{Fields: []FieldError{{
			Tag:     "required",
			Message: s.name + " is required",
		}}}
	}

	return Validate(value)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate

	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		validate.RegisterStructValidation(digitaalAdresStructLevel, DigitaalAdres{}, DigitaalAdresCreateData{})
		validate.RegisterStructValidation(partijCreateStructLevel, PartijCreateData{})
		validate.RegisterStructValidation(partijIdentificatorStructLevel, PartijIdentificatorGegevens{})
	})

	return validate
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// Validate checks any struct carrying validate tags and reports every failed
// field as a ValidationError with dotted JSON paths.
func Validate(value any) error {
	err := validatorInstance().Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return toValidationError(fieldErrs)
	}

	return fmt.Errorf("validating %T: %w", value, err)
}

func toValidationError(fieldErrs validator.ValidationErrors) *ValidationError {
	result := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}

	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, FieldError{
			Path:    fieldPath(fe.Namespace()),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: fieldMessage(fe.Tag(), fe.Param()),
		})
	}

	return result
}

// fieldPath drops the leading type name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

func fieldMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of [" + strings.ReplaceAll(param, " ", ", ") + "]"
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + param + " characters"
	case "len":
		return "must be exactly " + param + " characters"
	case "min":
		return "must contain at least " + param + " items"
	case "required_for":
		return "is required when soortPartij is " + param
	case "digits":
		return "must be " + param + " digits"
	default:
		return "failed " + tag + " check"
	}
}

func digitaalAdresStructLevel(sl validator.StructLevel) {
	var soort SoortDigitaalAdres

	var adres string

	switch v := sl.Current().Interface().(type) {
	case DigitaalAdres:
		soort, adres = v.SoortDigitaalAdres, v.Adres
	case DigitaalAdresCreateData:
		soort, adres = v.SoortDigitaalAdres, v.Adres
	default:
		return
	}

	if soort != SoortDigitaalAdresEmail || adres == "" {
		return
	}

	if err := sl.Validator().Var(adres, "email"); err != nil {
		sl.ReportError(adres, "adres", "Adres", "email", "")
	}
}

func partijCreateStructLevel(sl validator.StructLevel) {
	data, ok := sl.Current().Interface().(PartijCreateData)
	if !ok {
		return
	}

	identificatie := data.PartijIdentificatie

	switch data.SoortPartij {
	case SoortPartijPersoon, SoortPartijContactpersoon:
		if identificatie.Contactnaam == nil {
			sl.ReportError(identificatie.Contactnaam, "partijIdentificatie.contactnaam", "Contactnaam", "required_for", string(data.SoortPartij))
		}
	case SoortPartijOrganisatie:
		if identificatie.Naam == "" {
			sl.ReportError(identificatie.Naam, "partijIdentificatie.naam", "Naam", "required_for", string(data.SoortPartij))
		}
	}
}

func partijIdentificatorStructLevel(sl validator.StructLevel) {
	gegevens, ok := sl.Current().Interface().(PartijIdentificatorGegevens)
	if !ok || gegevens.ObjectID == "" {
		return
	}

	var want int

	switch gegevens.CodeSoortObjectID {
	case CodeSoortObjectIDBSN, CodeSoortObjectIDRSIN:
		want = 9
	case CodeSoortObjectIDKVKNummer:
		want = 8
	case CodeSoortObjectIDVestigingsnummer:
		want = 12
	default:
		return
	}

	if len(gegevens.ObjectID) != want || !digitsOnly.MatchString(gegevens.ObjectID) {
		sl.ReportError(gegevens.ObjectID, "objectId", "ObjectID", "digits", fmt.Sprint(want))
	}
}
