// Package attackdata loads ATT&CK STIX bundles into the taxonomy tables.
package attackdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

// stixObject is the subset of a STIX domain object the loader cares about.
type stixObject struct {
	Type               string          `json:"type"`
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Revoked            bool            `json:"revoked"`
	Deprecated         bool            `json:"x_mitre_deprecated"`
	ExternalReferences []stixReference `json:"external_references"`
}

type stixReference struct {
	SourceName string `json:"source_name"`
	ExternalID string `json:"external_id"`
	URL        string `json:"url"`
}

type stixBundle struct {
	Type    string       `json:"type"`
	Objects []stixObject `json:"objects"`
}

// matrix names keyed by the source_name of the canonical external reference.
var matrixBySource = map[string]string{
	"mitre-attack":        "enterprise-attack",
	"mitre-mobile-attack": "mobile-attack",
	"mitre-ics-attack":    "ics-attack",
}

type Loader struct {
	repo   repository.AttackObjectRepository
	logger *slog.Logger
}

func NewLoader(repo repository.AttackObjectRepository, logger *slog.Logger) *Loader {
	return &Loader{repo: repo, logger: logger}
}

// LoadFile reads a STIX bundle from disk and imports its techniques and groups.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open bundle: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("close bundle", "path", path, "error", cerr)
		}
	}()
	return l.Load(ctx, f)
}

// Load parses a STIX bundle and imports every non-revoked technique
// (attack-pattern) and group (intrusion-set) that carries an ATT&CK id.
func (l *Loader) Load(ctx context.Context, r io.Reader) (int, error) {
	var bundle stixBundle
	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return 0, fmt.Errorf("decode bundle: %w", err)
	}
	if bundle.Type != "bundle" {
		return 0, fmt.Errorf("unexpected STIX type %q, want bundle", bundle.Type)
	}

	var entries []repository.AttackObjectImport
	skipped := 0
	for _, obj := range bundle.Objects {
		var kind constants.ObjectKind
		switch obj.Type {
		case "attack-pattern":
			kind = constants.KindTechnique
		case "intrusion-set":
			kind = constants.KindGroup
		default:
			continue
		}
		if obj.Revoked || obj.Deprecated {
			skipped++
			continue
		}

		ref, ok := canonicalRef(obj.ExternalReferences)
		if !ok {
			skipped++
			continue
		}

		entries = append(entries, repository.AttackObjectImport{
			Kind:      kind,
			Name:      obj.Name,
			StixID:    obj.ID,
			AttackID:  ref.ExternalID,
			AttackURL: ref.URL,
			Matrix:    matrixBySource[ref.SourceName],
		})
	}

	created, err := l.repo.Import(ctx, entries)
	if err != nil {
		return created, err
	}
	l.logger.Info("attack bundle loaded", "created", created, "parsed", len(entries), "skipped", skipped)
	return created, nil
}

// canonicalRef finds the mitre-attack external reference that names the
// entry's ATT&CK id.
func canonicalRef(refs []stixReference) (stixReference, bool) {
	for _, ref := range refs {
		if _, ok := matrixBySource[ref.SourceName]; ok && ref.ExternalID != "" {
			return ref, true
		}
	}
	return stixReference{}, false
}
