package favorite

import (
	"Recipe-Catalog/domain"
	"encoding/json"
	"fmt"
	"time"
)

// storedFavorite reads dateAdded as raw JSON so a malformed timestamp does not
// cost the whole entry.
type storedFavorite struct {
	domain.Favorite
	DateAdded json.RawMessage `json:"dateAdded"`
}

func encodeFavorites(favorites []domain.Favorite) (string, error) {
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	raw, err := json.Marshal(favorites)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeFavorites parses a persisted favorites set. The value must be a JSON
// array; elements that cannot be decoded into a Favorite are skipped and
// counted so the caller can treat them as invalid entries. A dateAdded that is
// not an RFC 3339 timestamp decodes as the zero time.
func decodeFavorites(value string) ([]domain.Favorite, int, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(value), &elements); err != nil {
		return nil, 0, fmt.Errorf("decode favorites: %w", err)
	}

	favorites := make([]domain.Favorite, 0, len(elements))
	skipped := 0
	for _, element := range elements {
		var stored storedFavorite
		if err := json.Unmarshal(element, &stored); err != nil {
			skipped++
			continue
		}
		favorite := stored.Favorite
		favorite.DateAdded = parseDateAdded(stored.DateAdded)
		favorites = append(favorites, favorite)
	}
	return favorites, skipped, nil
}

func parseDateAdded(raw json.RawMessage) time.Time {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
