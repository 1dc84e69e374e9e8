package store

import (
	"encoding/json"
	"fmt"

	"github.com/emilianohg/appart/internal/models"
)

// SchemaVersion is the version written into every persisted document.
const SchemaVersion = 1

// envelope is the outer shape of a persisted document. Version 0 is the
// layout written by the original browser app, which never set a version.
type envelope struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

type persistedState struct {
	Version int      `json:"version"`
	State   snapshot `json:"state"`
}

type snapshot struct {
	Projects         []models.PropertyProject `json:"projects"`
	CurrentProjectID *string                  `json:"currentProjectId"`
}

// v0 documents carry a denormalized currentProject copy and French property
// type labels.
type v0Project struct {
	models.PropertyProject
	PropertyType string `json:"propertyType"`
}

type v0State struct {
	Projects         []v0Project     `json:"projects"`
	CurrentProjectID *string         `json:"currentProjectId"`
	CurrentProject   json.RawMessage `json:"currentProject"`
}

func encodeState(projects []models.PropertyProject, currentID string) ([]byte, error) {
	doc := persistedState{
		Version: SchemaVersion,
		State:   snapshot{Projects: projects},
	}
	if doc.State.Projects == nil {
		doc.State.Projects = []models.PropertyProject{}
	}
	if currentID != "" {
		doc.State.CurrentProjectID = &currentID
	}
	return json.Marshal(doc)
}

func decodeState(data []byte) (snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if len(env.State) == 0 || string(env.State) == "null" {
		return snapshot{}, fmt.Errorf("%w: missing state", ErrCorruptState)
	}

	var (
		snap snapshot
		err  error
	)
	switch {
	case env.Version == 0:
		snap, err = migrateV0(env.State)
	case env.Version == SchemaVersion:
		if uerr := json.Unmarshal(env.State, &snap); uerr != nil {
			err = fmt.Errorf("%w: %v", ErrCorruptState, uerr)
		}
	default:
		err = fmt.Errorf("%w: %d (newest known is %d)", ErrUnsupportedVersion, env.Version, SchemaVersion)
	}
	if err != nil {
		return snapshot{}, err
	}

	normalize(&snap)
	return snap, nil
}

func migrateV0(raw json.RawMessage) (snapshot, error) {
	var old v0State
	if err := json.Unmarshal(raw, &old); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	snap := snapshot{CurrentProjectID: old.CurrentProjectID}
	for _, op := range old.Projects {
		p := op.PropertyProject
		pt, ok := models.ParsePropertyType(op.PropertyType)
		if !ok {
			return snapshot{}, fmt.Errorf("%w: project %s has unknown property type %q", ErrCorruptState, p.ID, op.PropertyType)
		}
		p.PropertyType = pt
		snap.Projects = append(snap.Projects, p)
	}
	return snap, nil
}

// normalize fills nil collections and drops a selection that points nowhere.
func normalize(snap *snapshot) {
	if snap.Projects == nil {
		snap.Projects = []models.PropertyProject{}
	}
	for i := range snap.Projects {
		p := &snap.Projects[i]
		if p.Documents == nil {
			p.Documents = []models.Document{}
		}
		if p.Contacts == nil {
			p.Contacts = []models.Contact{}
		}
		if p.Tasks == nil {
			p.Tasks = []models.Task{}
		}
	}

	if snap.CurrentProjectID == nil {
		return
	}
	for _, p := range snap.Projects {
		if p.ID == *snap.CurrentProjectID {
			return
		}
	}
	snap.CurrentProjectID = nil
}
