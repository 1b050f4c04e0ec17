// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/samber/oops"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name            string `json:"name" jsonschema:"title=Name,minLength=3,maxLength=50"`
	Email           string `json:"email" jsonschema:"title=Email,format=email"`
	Password        string `json:"password" jsonschema:"title=Password,minLength=6"`
	ConfirmPassword string `json:"confirmPassword" jsonschema:"title=Confirm Password,minLength=1"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" jsonschema:"title=Email,minLength=1"`
	Password string `json:"password" jsonschema:"title=Password,minLength=1"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" jsonschema:"title=Refresh Token,minLength=1"`
}

// bodyField keys errors about the body as a whole.
const bodyField = "body"

// reasonPasswordsMustMatch is reported on confirmPassword.
const reasonPasswordsMustMatch = "Passwords must match"

// errMalformedBody means the body was not a JSON document.
var errMalformedBody = errors.New("request body is not valid JSON")

// errBodyTooLarge means the body exceeded maxBodyBytes.
var errBodyTooLarge = errors.New("request body too large")

// validator holds one compiled schema per request type.
type validator struct {
	schemas map[reflect.Type]*jschema.Schema
	printer *message.Printer
}

// requestTypes are the bodies the API validates.
func requestTypes() []any {
	return []any{&RegisterRequest{}, &LoginRequest{}, &RefreshRequest{}}
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
}

// GenerateSchemas returns the indented JSON Schema of every request body,
// keyed by request type name.
func GenerateSchemas() (map[string][]byte, error) {
	reflector := newReflector()
	out := make(map[string][]byte)
	for _, req := range requestTypes() {
		name := reflect.TypeOf(req).Elem().Name()
		schema := reflector.Reflect(req)
		schema.Title = name
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, oops.Code("API_SCHEMA_FAILED").With("type", name).Wrap(err)
		}
		out[name] = data
	}
	return out, nil
}

func newValidator(requests ...any) (*validator, error) {
	reflector := newReflector()
	compiler := jschema.NewCompiler()
	compiler.AssertFormat()

	v := &validator{
		schemas: make(map[reflect.Type]*jschema.Schema, len(requests)),
		printer: message.NewPrinter(language.English),
	}
	for _, req := range requests {
		t := reflect.TypeOf(req)
		raw, err := json.Marshal(reflector.Reflect(req))
		if err != nil {
			return nil, oops.Code("API_SCHEMA_FAILED").With("type", t.String()).Wrap(err)
		}
		doc, err := jschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, oops.Code("API_SCHEMA_FAILED").With("type", t.String()).Wrap(err)
		}
		url := "mem://" + t.Elem().Name() + ".json"
		if err := compiler.AddResource(url, doc); err != nil {
			return nil, oops.Code("API_SCHEMA_FAILED").With("type", t.String()).Wrap(err)
		}
		sch, err := compiler.Compile(url)
		if err != nil {
			return nil, oops.Code("API_SCHEMA_FAILED").With("type", t.String()).Wrap(err)
		}
		v.schemas[t] = sch
	}
	return v, nil
}

// decode reads r's body into dst after validating it against dst's schema.
// Field errors are returned keyed by JSON property name; err is set only
// when the body is not JSON at all.
func (v *validator) decode(r *http.Request, dst any) (map[string][]string, error) {
	sch, ok := v.schemas[reflect.TypeOf(dst)]
	if !ok {
		return nil, oops.Code("API_SCHEMA_MISSING").Errorf("no schema for %T", dst)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, oops.With("limit", tooLarge.Limit).Wrap(errBodyTooLarge)
		}
		return nil, oops.Wrap(errMalformedBody)
	}
	doc, err := jschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, oops.Wrap(errMalformedBody)
	}

	if err := sch.Validate(doc); err != nil {
		var ve *jschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, oops.Code("API_VALIDATION_FAILED").Wrap(err)
		}
		fields := map[string][]string{}
		v.collect(sch, ve, fields)
		return fields, nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return nil, oops.Wrap(errMalformedBody)
	}
	return nil, nil
}

// collect walks the leaves of a validation error tree into fields.
func (v *validator) collect(sch *jschema.Schema, ve *jschema.ValidationError, fields map[string][]string) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			v.collect(sch, cause, fields)
		}
		return
	}

	field := ""
	if len(ve.InstanceLocation) > 0 {
		field = ve.InstanceLocation[0]
	}

	switch k := ve.ErrorKind.(type) {
	case *kind.Required:
		for _, missing := range k.Missing {
			addReason(fields, missing, fmt.Sprintf("'%s' must not be empty.", title(sch, missing)))
		}
	case *kind.MinLength:
		if k.Want <= 1 {
			addReason(fields, field, fmt.Sprintf("'%s' must not be empty.", title(sch, field)))
			return
		}
		addReason(fields, field, lengthReason(sch, field, k.Got))
	case *kind.MaxLength:
		addReason(fields, field, lengthReason(sch, field, k.Got))
	case *kind.Format:
		addReason(fields, field, fmt.Sprintf("'%s' is not a valid %s address.", title(sch, field), k.Want))
	case *kind.Type:
		if field == "" {
			addReason(fields, bodyField, "The request body must be a JSON object.")
			return
		}
		addReason(fields, field, fmt.Sprintf("'%s' must be a string.", title(sch, field)))
	default:
		if field == "" {
			field = bodyField
		}
		addReason(fields, field, ve.ErrorKind.LocalizedString(v.printer))
	}
}

// lengthReason describes a violated length bound the same way whichever bound
// was hit.
func lengthReason(sch *jschema.Schema, field string, got int) string {
	prop := property(sch, field)
	name := title(sch, field)
	switch {
	case prop != nil && prop.MinLength != nil && prop.MaxLength != nil:
		return fmt.Sprintf("'%s' must be between %d and %d characters. You entered %d characters.",
			name, *prop.MinLength, *prop.MaxLength, got)
	case prop != nil && prop.MinLength != nil:
		return fmt.Sprintf("The length of '%s' must be at least %d characters. You entered %d characters.",
			name, *prop.MinLength, got)
	case prop != nil && prop.MaxLength != nil:
		return fmt.Sprintf("The length of '%s' must be %d characters or fewer. You entered %d characters.",
			name, *prop.MaxLength, got)
	}
	return fmt.Sprintf("'%s' has an invalid length.", name)
}

func property(sch *jschema.Schema, field string) *jschema.Schema {
	if sch == nil || field == "" {
		return nil
	}
	return sch.Properties[field]
}

// title returns the display name of field, falling back to the JSON name.
func title(sch *jschema.Schema, field string) string {
	if prop := property(sch, field); prop != nil && prop.Title != "" {
		return prop.Title
	}
	return field
}

func addReason(fields map[string][]string, field, reason string) {
	if slices.Contains(fields[field], reason) {
		return
	}
	fields[field] = append(fields[field], reason)
}

// checkRegister applies the cross-field rule the schema cannot express.
func checkRegister(req *RegisterRequest) map[string][]string {
	if req.ConfirmPassword != req.Password {
		return map[string][]string{"confirmPassword": {reasonPasswordsMustMatch}}
	}
	return nil
}
