package config

import (
	"strconv"
	"strings"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
)

// Validate checks the shape of preset values. Only ports have one; every
// other field is taken as given, the same as a flag or prompt answer.
// A blank port is left for the defaults.
func Validate(p *Preset) error {
	var errs []ValidationError

	errs = append(errs, checkPort("port", p.Port)...)
	errs = append(errs, checkPort("pgPort", p.PGPort)...)
	if c := p.DatabaseCredentials; c != nil {
		errs = append(errs, checkPort("databaseCredentials.port", c.Port)...)
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func checkPort(field string, value *Scalar) []ValidationError {
	if value == nil {
		return nil
	}
	s := strings.TrimSpace(string(*value))
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 1 || n > 65535 {
		return []ValidationError{{
			Field:   field,
			Message: "must be a number between 1 and 65535",
			Value:   s,
			Wrapped: options.ErrInvalidPort,
		}}
	}
	return nil
}
