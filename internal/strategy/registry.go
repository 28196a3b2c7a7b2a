package strategy

// Doc is a documentation artifact rendered alongside a strategy.
type Doc struct {
	Template string // template path under the render tree
	Output   string // path in the generated project
	Label    string // link text used by the docs index
}

// Descriptor lists everything the generator produces for one strategy.
type Descriptor struct {
	ID                 string
	Label              string
	Template           string   // strategy configuration module template
	Output             string   // destination of the configuration module
	Dependencies       []string // npm packages specific to the strategy
	Docs               []Doc    // bespoke documentation, may be empty
	EnvKeys            []string // keys appended to .env
	CallbackPath       string   // OAuth redirect path, empty when none
	RequiresTokenStore bool
}

// registry is immutable after package initialization.
var registry = map[Kind]Descriptor{
	Local: {
		ID:           "local",
		Label:        "Local",
		Template:     "passport/strategies/local.js.tmpl",
		Output:       "config/passport-local.js",
		Dependencies: []string{"passport-local"},
		Docs: []Doc{
			{Template: "passport/docs/local-sessions.md.tmpl", Output: "docs/local-sessions.md", Label: "Local (email + password)"},
		},
	},
	Bearer: {
		ID:           "bearer",
		Label:        "Bearer",
		Template:     "passport/strategies/bearer.js.tmpl",
		Output:       "config/passport-bearer.js",
		Dependencies: []string{"passport-http-bearer"},
		Docs: []Doc{
			{Template: "passport/docs/bearer-tokens.md.tmpl", Output: "docs/bearer-tokens.md", Label: "Bearer Tokens"},
		},
		EnvKeys:            []string{"TOKEN_HASH_PEPPER"},
		RequiresTokenStore: true,
	},
	Google: {
		ID:           "google",
		Label:        "Google",
		Template:     "passport/strategies/google.js.tmpl",
		Output:       "config/passport-google.js",
		Dependencies: []string{"passport-google-oauth20"},
		Docs: []Doc{
			{Template: "passport/docs/google-oauth.md.tmpl", Output: "docs/google-oauth.md", Label: "Google OAuth 2.0"},
		},
		EnvKeys:      []string{"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL"},
		CallbackPath: "/auth/google/callback",
	},
	Facebook: {
		ID:           "facebook",
		Label:        "Facebook",
		Template:     "passport/strategies/facebook.js.tmpl",
		Output:       "config/passport-facebook.js",
		Dependencies: []string{"passport-facebook"},
		EnvKeys:      []string{"FACEBOOK_APP_ID", "FACEBOOK_APP_SECRET", "FACEBOOK_CALLBACK_URL"},
		CallbackPath: "/auth/facebook/callback",
	},
	Twitter: {
		ID:           "twitter",
		Label:        "Twitter",
		Template:     "passport/strategies/twitter.js.tmpl",
		Output:       "config/passport-twitter.js",
		Dependencies: []string{"@superfaceai/passport-twitter-oauth2"},
		EnvKeys:      []string{"TWITTER_CLIENT_ID", "TWITTER_CLIENT_SECRET", "TWITTER_CALLBACK_URL"},
		CallbackPath: "/auth/twitter/callback",
	},
	Microsoft: {
		ID:           "microsoft",
		Label:        "Microsoft",
		Template:     "passport/strategies/microsoft.js.tmpl",
		Output:       "config/passport-microsoft.js",
		Dependencies: []string{"passport-microsoft"},
		Docs: []Doc{
			{Template: "passport/docs/microsoft-oauth.md.tmpl", Output: "docs/microsoft-oauth.md", Label: "Microsoft OAuth 2.0"},
		},
		EnvKeys:      []string{"MICROSOFT_CLIENT_ID", "MICROSOFT_CLIENT_SECRET", "MICROSOFT_TENANT", "MICROSOFT_CALLBACK_URL"},
		CallbackPath: "/auth/microsoft/callback",
	},
	LinkedIn: {
		ID:           "linkedin",
		Label:        "LinkedIn",
		Template:     "passport/strategies/linkedin.js.tmpl",
		Output:       "config/passport-linkedin.js",
		Dependencies: []string{"passport-linkedin-oauth2"},
		EnvKeys:      []string{"LINKEDIN_CLIENT_ID", "LINKEDIN_CLIENT_SECRET", "LINKEDIN_CALLBACK_URL"},
		CallbackPath: "/auth/linkedin/callback",
	},
	Steam: {
		ID:           "steam",
		Label:        "Steam",
		Template:     "passport/strategies/steam.js.tmpl",
		Output:       "config/passport-steam.js",
		Dependencies: []string{"passport-steam"},
		EnvKeys:      []string{"STEAM_API_KEY", "STEAM_REALM", "STEAM_RETURN_URL"},
		CallbackPath: "/auth/steam/return",
	},
	Amazon: {
		ID:           "amazon",
		Label:        "Amazon",
		Template:     "passport/strategies/amazon.js.tmpl",
		Output:       "config/passport-amazon.js",
		Dependencies: []string{"passport-amazon"},
		EnvKeys:      []string{"AMAZON_CLIENT_ID", "AMAZON_CLIENT_SECRET", "AMAZON_CALLBACK_URL"},
		CallbackPath: "/auth/amazon/callback",
	},
}
