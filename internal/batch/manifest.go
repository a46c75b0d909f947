package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered skin in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Slim   bool   `json:"slim"`
	Legacy bool   `json:"legacy"`
	Faces  int    `json:"faces"`
	Colors int    `json:"colors"`
	Image  string `json:"image"`
}

// WriteManifest writes manifest.json for the successful results.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Slim:   r.Slim,
			Legacy: r.Legacy,
			Faces:  r.Faces,
			Colors: r.Colors,
			Image:  r.Name + ".webp",
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
