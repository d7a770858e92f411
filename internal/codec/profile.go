package codec

import (
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/studyd/internal/model"
)

// Profile stores the profile as a JSON string, or null when unset.
type Profile struct{}

func (Profile) Encode(p model.Profile) ([]byte, error) {
	if p == model.ProfileUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(p))
}

func (Profile) Decode(raw []byte) (model.Profile, error) {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return model.ProfileUnset, fmt.Errorf("decode profile: %w", err)
	}
	if v == nil {
		return model.ProfileUnset, nil
	}
	p := model.Profile(*v)
	if !p.IsValid() {
		return model.ProfileUnset, fmt.Errorf("decode profile: unknown value %q", *v)
	}
	return p, nil
}
