// Package validation wires request rules into gin's validator and turns
// the first failed rule into a human readable message.
package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog/log"
)

var (
	once  sync.Once
	trans ut.Translator
)

// Register installs the custom rules and English messages on gin's validator.
// It is safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Fatal().Msg("validation: gin validator engine is not go-playground/validator")
		}

		v.RegisterTagNameFunc(fieldName)

		if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
			log.Fatal().Err(err).Msg("validation: register strongpassword")
		}
		if err := v.RegisterValidation("rfcemail", rfcEmail); err != nil {
			log.Fatal().Err(err).Msg("validation: register rfcemail")
		}

		english := en.New()
		trans, _ = ut.New(english, english).GetTranslator("en")
		if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
			log.Fatal().Err(err).Msg("validation: register default translations")
		}

		for tag, text := range messages {
			if err := v.RegisterTranslation(tag, trans, registerText(tag, text), translateParam); err != nil {
				log.Fatal().Err(err).Str("tag", tag).Msg("validation: register translation")
			}
		}
	})
}

// messages overrides the stock translations for the rules this API uses.
// {0} is the field, {1} the rule parameter.
var messages = map[string]string{
	"required":       "The {0} field is required.",
	"email":          "The {0} field must be a valid email address.",
	"rfcemail":       "The {0} is invalid.",
	"max":            "The {0} field must not be greater than {1} characters.",
	"min":            "The {0} field must be at least {1} characters.",
	"numeric":        "The {0} field must be a number.",
	"strongpassword": "The {0} field format is invalid.",
}

func registerText(tag, text string) validator.RegisterTranslationsFunc {
	return func(t ut.Translator) error {
		return t.Add(tag, text, true)
	}
}

func translateParam(t ut.Translator, fe validator.FieldError) string {
	msg, err := t.T(fe.Tag(), fe.Field(), fe.Param())
	if err != nil {
		return fe.Error()
	}
	return msg
}

// fieldName reports fields by their form/json name so messages match the request.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// Bind binds the request into obj using the content type of the request.
func Bind(ctx *gin.Context, obj any) error {
	Register()
	return ctx.ShouldBind(obj)
}

// FirstError returns the message for the first violated rule in err.
func FirstError(err error) string {
	Register()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Translate(trans)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("The value %q must be a number.", numErr.Num)
	}

	if err != nil {
		return err.Error()
	}
	return ""
}

// IsStrongPassword checks for at least 8 characters with an upper case
// letter, a lower case letter, a digit and a symbol.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func strongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// IsRFCEmail accepts a bare RFC 5322 address with no display name.
func IsRFCEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}

func rfcEmail(fl validator.FieldLevel) bool {
	return IsRFCEmail(fl.Field().String())
}
