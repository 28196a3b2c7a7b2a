package report

import (
	"fmt"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
)

// providerNotes holds the console instructions for the OAuth providers:
// where to register the app and what the provider calls the redirect URI.
var providerNotes = map[strategy.Kind]struct {
	setup    []string
	redirect string
}{
	strategy.Google: {
		setup:    []string{"Create OAuth credentials in the Google Cloud Console (type: **Web application**)."},
		redirect: "Authorized redirect URI (dev)",
	},
	strategy.Facebook: {
		setup:    []string{"Create an app at Facebook for Developers."},
		redirect: "Valid OAuth Redirect URI (dev)",
	},
	strategy.Twitter: {
		setup:    []string{"Create a Project/App at the Twitter Developer Portal."},
		redirect: "Callback URL (dev)",
	},
	strategy.Microsoft: {
		setup: []string{
			"Supported account types: use `common` for any org/personal accounts, or set your tenant GUID.",
			"Create an app registration in Azure Portal.",
		},
		redirect: "Redirect URI (web) (dev)",
	},
	strategy.LinkedIn: {
		setup:    []string{"Create an app in the LinkedIn Developer Portal."},
		redirect: "Authorized redirect URL (dev)",
	},
	strategy.Amazon: {
		setup:    []string{"Create a Login with Amazon app."},
		redirect: "Allowed Return URL (dev)",
	},
}

// strategySection returns the setup lines for one strategy. Secrets are
// never printed; only the .env key names are listed.
func strategySection(k strategy.Kind, port string) []string {
	desc := k.Descriptor()
	base := "http://localhost:" + port
	lines := []string{"### " + desc.Label}

	switch k {
	case strategy.Local:
		lines = append(lines,
			"- Use the **Register** form at `/register` to create a user.",
			"- Then sign in at `/login` with email + password.")

	case strategy.Bearer:
		lines = append(lines,
			"- API token auth (server-to-server, CLI, or SPA fetch). No browser callback.",
			"- Tokens are random and only a **SHA-256 hash** is stored in the DB.",
			"- Optional hardening: set `TOKEN_HASH_PEPPER` in `.env`.",
			"",
			"**Issue a token (CLI):**",
			"- If you enabled Bearer, the project includes helper scripts:",
			"  - Create a user:",
			"    ```bash",
			"    "+userCreateExample,
			"    ```",
			"  - Create a token for a user:",
			"    ```bash",
			"    "+tokenIssueExample,
			"    ```",
			"",
			"**Call the demo protected endpoint (requires scope `read:me`):**",
			"```bash",
			curlExample(port),
			"```")

	case strategy.Steam:
		lines = append(lines,
			"- Obtain a Steam Web API key.",
			"- Review/update these in `.env`:")
		for _, key := range desc.EnvKeys {
			switch key {
			case "STEAM_REALM":
				lines = append(lines, fmt.Sprintf("  - %s (e.g. %s)", key, base))
			case "STEAM_RETURN_URL":
				lines = append(lines, fmt.Sprintf("  - %s (e.g. %s%s)", key, base, desc.CallbackPath))
			default:
				lines = append(lines, "  - "+key)
			}
		}

	default:
		notes := providerNotes[k]
		for _, s := range notes.setup {
			lines = append(lines, "- "+s)
		}
		if desc.CallbackPath != "" {
			lines = append(lines, fmt.Sprintf("- %s: `%s%s`", notes.redirect, base, desc.CallbackPath))
		}
		lines = append(lines, "- Review/update these in `.env`:")
		for _, key := range desc.EnvKeys {
			lines = append(lines, "  - "+key)
		}
	}

	return append(lines, "")
}
