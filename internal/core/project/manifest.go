package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/defs"
)

// Scripts written into package.json.
const (
	DevScript        = "node app.js"
	StartScript      = "node app.js"
	UserCreateScript = "node " + defs.TokenCLI + " user:create"
	TokenIssueScript = "node " + defs.TokenCLI + " token:issue"
)

// jsonField is one member of a JSON object, kept in document order.
type jsonField struct {
	Key   string
	Value json.RawMessage
}

// jsonObject is a JSON object that keeps its member order on re-encoding.
type jsonObject []jsonField

func decodeObject(data []byte) (jsonObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrInvalidManifest
	}

	var obj jsonObject
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, ErrInvalidManifest
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		obj = append(obj, jsonField{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func (o jsonObject) get(key string) (json.RawMessage, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// set replaces key in place or appends it.
func (o *jsonObject) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	for i := range *o {
		if (*o)[i].Key == key {
			(*o)[i].Value = raw
			return nil
		}
	}
	*o = append(*o, jsonField{Key: key, Value: raw})
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PatchManifest updates package.json in root: "type" becomes "module",
// the dev script is set, start is set only when absent, and the bearer
// helper scripts are added when scripts/token-cli.js exists. Member order
// is preserved.
func PatchManifest(root string) error {
	path := filepath.Join(root, defs.PackageJSON)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", defs.PackageJSON, err)
	}

	pkg, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", defs.PackageJSON, errors.Join(ErrInvalidManifest, err))
	}

	var scripts jsonObject
	if raw, ok := pkg.get("scripts"); ok {
		if scripts, err = decodeObject(raw); err != nil {
			return fmt.Errorf("parse %s scripts: %w", defs.PackageJSON, errors.Join(ErrInvalidManifest, err))
		}
	}

	if err := scripts.set("dev", DevScript); err != nil {
		return err
	}
	if _, ok := scripts.get("start"); !ok {
		if err := scripts.set("start", StartScript); err != nil {
			return err
		}
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(defs.TokenCLI))); err == nil {
		if err := scripts.set("user:create", UserCreateScript); err != nil {
			return err
		}
		if err := scripts.set("token:issue", TokenIssueScript); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", defs.TokenCLI, err)
	}

	if err := pkg.set("type", "module"); err != nil {
		return err
	}
	if err := pkg.set("scripts", scripts); err != nil {
		return err
	}

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", defs.PackageJSON, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.PackageJSON, err)
	}
	return nil
}
