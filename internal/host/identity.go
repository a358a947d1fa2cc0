// Package host isolates the host-environment capabilities the client
// consumes: a session identity and optional haptic feedback. Both have
// fallback implementations so the client runs anywhere.
package host

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pulseguard/pulseguard/pkg/domain"
)

// identityFilePath returns ~/.pulseguard/identity.json.
func identityFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".pulseguard", "identity.json"), nil
}

// ResolveIdentity returns the session identity using precedence:
// explicit override > persisted file > freshly generated (and persisted).
// The result is immutable for the session. Resolution never fails hard;
// a broken state file just means a new identity is generated.
func ResolveIdentity(overrideID int64, overrideName string) domain.Identity {
	if overrideID != 0 {
		name := overrideName
		if name == "" {
			name = localUsername()
		}
		return domain.Identity{ID: overrideID, DisplayName: name}
	}

	path, err := identityFilePath()
	if err != nil {
		return generateIdentity("")
	}
	return resolveAt(path, overrideName)
}

// resolveAt loads or creates the identity at an explicit path.
func resolveAt(path, overrideName string) domain.Identity {
	if data, err := os.ReadFile(path); err == nil {
		var id domain.Identity
		if json.Unmarshal(data, &id) == nil && id.ID != 0 {
			if overrideName != "" {
				id.DisplayName = overrideName
			}
			return id
		}
	}

	id := generateIdentity(overrideName)
	if data, err := json.MarshalIndent(id, "", "  "); err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			_ = os.WriteFile(path, data, 0o600) //nolint:errcheck // identity persists best-effort
		}
	}
	return id
}

// generateIdentity produces a random session identity. The ID space
// matches what the service expects from host environments without a
// stable account ID.
func generateIdentity(name string) domain.Identity {
	if name == "" {
		name = localUsername()
	}
	return domain.Identity{
		ID:          rand.Int63n(1_000_000) + 1,
		DisplayName: name,
	}
}

// localUsername falls back to the OS user for a display name.
func localUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "Hero"
}
