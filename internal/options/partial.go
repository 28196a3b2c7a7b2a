package options

import "slices"

// PartialCredentials carries credential fields from a single input source.
// A nil field means the source did not mention it.
type PartialCredentials struct {
	User     *string
	Password *string
	Name     *string
	Host     *string
	Port     *string
}

// Partial is one input layer: preset file, interactive answers or CLI flags.
// Nil pointers (and a nil Strategies slice) mean "absent"; an empty non-nil
// Strategies slice means "explicitly none".
type Partial struct {
	ProjectName *string

	IncludeDatabase   *bool
	IncludeSessions   *bool
	IncludeHTTPClient *bool
	Strategies        []string

	Port     *string
	Database PartialCredentials

	DryRun         *bool
	Verbose        *bool
	NonInteractive *bool
}

// HasFeatureSelection reports whether any feature toggle is present.
func (p Partial) HasFeatureSelection() bool {
	return p.IncludeDatabase != nil ||
		p.IncludeSessions != nil ||
		p.IncludeHTTPClient != nil ||
		p.Strategies != nil
}

// Fold merges layers given in ascending precedence. A present value in a
// later layer replaces the value accumulated so far; absent values fall
// through to earlier layers.
func Fold(layers ...Partial) Partial {
	var out Partial
	for _, l := range layers {
		out = overlay(out, l)
	}
	return out
}

// overlay returns base with every present field of top applied.
func overlay(base, top Partial) Partial {
	out := base
	out.ProjectName = pick(base.ProjectName, top.ProjectName)
	out.IncludeDatabase = pick(base.IncludeDatabase, top.IncludeDatabase)
	out.IncludeSessions = pick(base.IncludeSessions, top.IncludeSessions)
	out.IncludeHTTPClient = pick(base.IncludeHTTPClient, top.IncludeHTTPClient)
	if top.Strategies != nil {
		out.Strategies = slices.Clone(top.Strategies)
	}
	out.Port = pick(base.Port, top.Port)
	out.Database = overlayCredentials(base.Database, top.Database)
	out.DryRun = pick(base.DryRun, top.DryRun)
	out.Verbose = pick(base.Verbose, top.Verbose)
	out.NonInteractive = pick(base.NonInteractive, top.NonInteractive)
	return out
}

func overlayCredentials(base, top PartialCredentials) PartialCredentials {
	return PartialCredentials{
		User:     pick(base.User, top.User),
		Password: pick(base.Password, top.Password),
		Name:     pick(base.Name, top.Name),
		Host:     pick(base.Host, top.Host),
		Port:     pick(base.Port, top.Port),
	}
}

func pick[T any](base, top *T) *T {
	if top != nil {
		v := *top
		return &v
	}
	return base
}

// FromConfiguration converts a resolved Configuration back into a fully
// populated layer. Normalizing the result yields the same Configuration.
func FromConfiguration(c Configuration) Partial {
	p := Partial{
		ProjectName:       Ptr(c.ProjectName),
		IncludeDatabase:   Ptr(c.IncludeDatabase),
		IncludeSessions:   Ptr(c.IncludeSessions),
		IncludeHTTPClient: Ptr(c.IncludeHTTPClient),
		Strategies:        slices.Clone(c.AuthStrategies),
		Port:              Ptr(c.Port),
		DryRun:            Ptr(c.DryRun),
		Verbose:           Ptr(c.Verbose),
		NonInteractive:    Ptr(c.NonInteractive),
	}
	if p.Strategies == nil {
		p.Strategies = []string{}
	}
	if c.IncludeDatabase {
		p.Database = PartialCredentials{
			User:     Ptr(c.Database.User),
			Password: Ptr(c.Database.Password),
			Name:     Ptr(c.Database.Name),
			Host:     Ptr(c.Database.Host),
			Port:     Ptr(c.Database.Port),
		}
	}
	return p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
