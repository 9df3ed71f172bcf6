package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BorromeoLara/INVE/entities"
)

// ReadJSON accepts either a bare array of sites or {"sites": [...]}. Only a
// document that is not an array of objects at all is an error; a site that
// fails to decode comes back as an entities.UndecodedSite in its position.
func ReadJSON(r io.Reader) ([]entities.RawSite, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, nil
	}

	var items []json.RawMessage
	if b[0] == '[' {
		err = json.Unmarshal(b, &items)
	} else {
		var doc struct {
			Sites []json.RawMessage `json:"sites"`
		}
		err = json.Unmarshal(b, &doc)
		items = doc.Sites
	}
	if err != nil {
		return nil, fmt.Errorf("decode sites: %w", err)
	}

	sites := make([]entities.RawSite, 0, len(items))
	for _, item := range items {
		var s entities.RawSite
		if err := json.Unmarshal(item, &s); err != nil {
			s = entities.UndecodedSite(peekID(item), err)
		}
		sites = append(sites, s)
	}
	return sites, nil
}

// peekID recovers the id of a record that did not decode, for the report.
func peekID(item json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}
	if json.Unmarshal(item, &head) != nil || head.ID == nil {
		return ""
	}
	if s, ok := head.ID.(string); ok {
		return s
	}
	return fmt.Sprint(head.ID)
}

func LoadJSONFile(path string) ([]entities.RawSite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}
