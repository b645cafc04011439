// ABOUTME: Export and import functionality for the movement library.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the format version written by Export.
const ExportVersion = "1.0"

// ExportData represents the full export format for the movement library.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Movements  []*models.Movement `json:"movements" yaml:"movements"`
}

// Export retrieves all data from repo.
func Export(ctx context.Context, repo Repository) (*ExportData, error) {
	movements, err := repo.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "lift",
		Movements:  movements,
	}, nil
}

// Import stores every movement in data, keeping exported ids.
func Import(ctx context.Context, repo Repository, data *ExportData) (int, error) {
	imported := 0
	for _, m := range data.Movements {
		if err := repo.CreateMovement(ctx, m); err != nil {
			return imported, fmt.Errorf("import movement: %w", err)
		}
		imported++
	}
	return imported, nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(ctx context.Context, repo Repository) ([]byte, error) {
	data, err := Export(ctx, repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func ExportYAML(ctx context.Context, repo Repository) ([]byte, error) {
	data, err := Export(ctx, repo)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string             `yaml:"version"`
		ExportedAt string             `yaml:"exported_at"`
		Tool       string             `yaml:"tool"`
		Movements  []*models.Movement `yaml:"movements"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Movements:  data.Movements,
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports the movement library as a Markdown table.
func ExportMarkdown(ctx context.Context, repo Repository) (string, error) {
	movements, err := repo.ListMovements(ctx)
	if err != nil {
		return "", fmt.Errorf("list movements: %w", err)
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Movement Library - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(movements) == 0 {
		sb.WriteString("No movements recorded.\n")
		return sb.String(), nil
	}

	sb.WriteString("| ID | Name | Upper body | Requires weight |\n")
	sb.WriteString("|----|------|------------|-----------------|\n")
	for _, m := range movements {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			m.ID, m.Name, yesNo(m.IsUpper), yesNo(m.RequireWeight)))
	}

	return sb.String(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(ctx context.Context, repo Repository, data []byte) (int, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return 0, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return Import(ctx, repo, &exportData)
}
