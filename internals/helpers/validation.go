package helper

import (
	"github.com/go-playground/validator/v10"
)

// ValidationMap converts validator.v10 errors into the field→messages shape
// used by JsonValidationError.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	} else if err != nil {
		out["_"] = []string{err.Error()}
	}
	return out
}
