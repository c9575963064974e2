package service

import (
	_ "embed"
	"encoding/json"
)

//go:embed avatars.json
var avatarCatalog []byte

// AvatarCatalog returns the static catalog of selectable profile avatars.
func AvatarCatalog() json.RawMessage { return json.RawMessage(avatarCatalog) }
