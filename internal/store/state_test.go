package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/appart/internal/models"
)

// legacyDocument is what the browser app persisted: no explicit version beyond
// zero, French property type labels and a currentProject mirror.
const legacyDocument = `{
  "state": {
    "projects": [{
      "id": "lx1abc",
      "name": "Appartement Nantes",
      "propertyType": "Appartement",
      "price": 189000,
      "stage": "offer",
      "documents": [{"id": "d1", "name": "Plan", "category": "Plan", "date": "2024-05-02", "file": {}}],
      "contacts": [],
      "tasks": [{"id": "t1", "title": "Rappeler l'agence", "completed": false, "stage": "offer", "priority": "high"}],
      "financing": {},
      "createdAt": "2024-05-01T08:00:00.000Z",
      "updatedAt": "2024-05-02T08:00:00.000Z"
    }, {
      "id": "lx2def",
      "name": "Terrain Vendée",
      "propertyType": "Terrain",
      "stage": "search",
      "documents": [],
      "contacts": [],
      "tasks": [],
      "financing": {"approvalStatus": "pending"},
      "createdAt": "2024-05-03T08:00:00.000Z",
      "updatedAt": "2024-05-03T08:00:00.000Z"
    }],
    "currentProjectId": "lx1abc",
    "currentProject": {"id": "lx1abc", "name": "stale copy"}
  },
  "version": 0
}`

func TestOpenMigratesLegacyDocument(t *testing.T) {
	s, err := Open(&memoryPersister{data: []byte(legacyDocument)})
	require.NoError(t, err)

	projects := s.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, models.Apartment, projects[0].PropertyType)
	assert.Equal(t, models.Land, projects[1].PropertyType)
	assert.Equal(t, 189000.0, *projects[0].Price)
	assert.Len(t, projects[0].Documents, 1)
	assert.Equal(t, models.PriorityHigh, projects[0].Tasks[0].Priority)
	assert.Equal(t, models.ApprovalPending, *projects[1].Financing.ApprovalStatus)

	// the stale mirror is ignored; the current project is derived
	current, ok := s.CurrentProject()
	require.True(t, ok)
	assert.Equal(t, "Appartement Nantes", current.Name)

	data, err := s.MarshalState()
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, SchemaVersion, env.Version)
	assert.NotContains(t, string(env.State), "currentProject\"")
}

func TestOpenRejectsLegacyUnknownPropertyType(t *testing.T) {
	doc := `{"state":{"projects":[{"id":"a","name":"x","propertyType":"Château","stage":"search"}]},"version":0}`
	_, err := Open(&memoryPersister{data: []byte(doc)})
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestOpenRejectsNewerVersion(t *testing.T) {
	_, err := Open(&memoryPersister{data: []byte(`{"version":7,"state":{"projects":[]}}`)})
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestOpenRejectsMalformedDocument(t *testing.T) {
	for _, doc := range []string{`not json`, `{"version":1}`, `{"version":1,"state":null}`, `{"version":1,"state":{"projects":"x"}}`} {
		_, err := Open(&memoryPersister{data: []byte(doc)})
		assert.ErrorIs(t, err, ErrCorruptState, doc)
	}
}

func TestDecodeFillsCollectionsAndDropsDanglingSelection(t *testing.T) {
	doc := `{"version":1,"state":{"projects":[{"id":"a","name":"x","propertyType":"house","stage":"search"}],"currentProjectId":"gone"}}`
	snap, err := decodeState([]byte(doc))
	require.NoError(t, err)

	require.Len(t, snap.Projects, 1)
	assert.NotNil(t, snap.Projects[0].Documents)
	assert.NotNil(t, snap.Projects[0].Contacts)
	assert.NotNil(t, snap.Projects[0].Tasks)
	assert.Nil(t, snap.CurrentProjectID)
}

func TestEncodeEmptyState(t *testing.T) {
	data, err := encodeState(nil, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"state":{"projects":[],"currentProjectId":null}}`, string(data))
}
