package model

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ReservationID is the seat number handed out by the store.
type ReservationID uint64

// Field names used in validation errors and prompts.
const (
	FieldName     = "name"
	FieldSubject  = "subject"
	FieldLocation = "location"
	FieldMonth    = "month"
	FieldDay      = "day"
	FieldHour     = "hour"
	FieldMinute   = "minute"
)

// Request holds the fields of a reservation before the store assigns it a seat.
type Request struct {
	Name     string `validate:"required,notblank"`
	Subject  string `validate:"required,notblank"`
	Location string `validate:"required,notblank"`
	Month    int    `validate:"min=1,max=12"`
	Day      int    `validate:"min=1,max=31"`
	Hour     int    `validate:"min=0,max=23"`
	Minute   int    `validate:"min=0,max=59"`
}

// Reservation is one booked exam seat.
type Reservation struct {
	ID       ReservationID `csv:"seat"`
	Name     string        `csv:"name"`
	Subject  string        `csv:"subject"`
	Location string        `csv:"location"`
	Month    int           `csv:"month"`
	Day      int           `csv:"day"`
	Hour     int           `csv:"hour"`
	Minute   int           `csv:"minute"`
}

// ValidationError reports a field that is empty, out of range or unparseable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var validate = newValidator()

// requestRules maps a field name to its validate tag on Request.
var requestRules = func() map[string]string {
	rules := make(map[string]string)
	t := reflect.TypeOf(Request{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		rules[strings.ToLower(f.Name)] = f.Tag.Get("validate")
	}
	return rules
}()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.ToLower(f.Name)
	})
	// whitespace-only text counts as empty
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks every field in declaration order and returns the first failure.
func (r Request) Validate() error {
	return toValidationError("", validate.Struct(r))
}

// CheckField applies the Request rules of one field to value.
func CheckField(field string, value any) error {
	rule, ok := requestRules[field]
	if !ok {
		return &ValidationError{Field: field, Reason: "unknown field"}
	}
	return toValidationError(field, validate.Var(value, rule))
}

// Bounds returns the inclusive range accepted for a numeric field, read from
// its min/max rules. ok is false for fields without both.
func Bounds(field string) (lo, hi int, ok bool) {
	var hasLo, hasHi bool
	for _, part := range strings.Split(requestRules[field], ",") {
		key, val, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		switch key {
		case "min":
			lo, hasLo = n, true
		case "max":
			hi, hasHi = n, true
		}
	}
	return lo, hi, hasLo && hasHi
}

func toValidationError(field string, err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Field: field, Reason: err.Error()}
	}
	fe := errs[0]
	if field == "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required", "notblank":
		return &ValidationError{Field: field, Reason: "must not be empty"}
	case "min", "max":
		if lo, hi, ok := Bounds(field); ok {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("must be between %d and %d", lo, hi)}
		}
	}
	return &ValidationError{Field: field, Reason: fmt.Sprintf("failed %s rule", fe.Tag())}
}

// Reservation builds the stored record for the given seat.
func (r Request) Reservation(id ReservationID) Reservation {
	return Reservation{
		ID:       id,
		Name:     r.Name,
		Subject:  r.Subject,
		Location: r.Location,
		Month:    r.Month,
		Day:      r.Day,
		Hour:     r.Hour,
		Minute:   r.Minute,
	}
}
