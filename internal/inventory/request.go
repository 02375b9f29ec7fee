package inventory

import (
	"bytes"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

var validate = newValidator()

// Field errors name the JSON key, not the Go field.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody reads a JSON object from the request. An empty body reads as {}.
func decodeBody(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	return nil
}

// missingFields lists the JSON keys that failed "required", in struct order.
func missingFields(req any) ([]string, error) {
	err := validate.Struct(req)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, errors.Wrap(err, "validate request")
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing, nil
}

// requireFields fails with "Missing fields: a, b" when any key is absent.
func requireFields(req any) error {
	missing, err := missingFields(req)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Missing fields: "+strings.Join(missing, ", "))
	}
	return nil
}
