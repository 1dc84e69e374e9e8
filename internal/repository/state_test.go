package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emilianohg/appart/internal/db"
)

type StateRepoTestSuite struct {
	suite.Suite
	db   *sql.DB
	repo *StateRepo
}

func (suite *StateRepoTestSuite) SetupTest() {
	var err error
	suite.db, err = db.OpenPath(filepath.Join(suite.T().TempDir(), "state.sqlite"))
	suite.Require().NoError(err)
	suite.Require().NoError(db.RunMigrations(suite.db))

	suite.repo = NewStateRepo(suite.db)
}

func (suite *StateRepoTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *StateRepoTestSuite) TestLoadEmpty() {
	data, err := suite.repo.Load()
	suite.NoError(err)
	suite.Nil(data)
}

func (suite *StateRepoTestSuite) TestSaveThenLoad() {
	suite.Require().NoError(suite.repo.Save([]byte(`{"version":1}`)))
	suite.Require().NoError(suite.repo.Save([]byte(`{"version":1,"state":{}}`)))

	data, err := suite.repo.Load()
	suite.NoError(err)
	suite.Equal(`{"version":1,"state":{}}`, string(data))

	var rows int
	suite.Require().NoError(suite.db.QueryRow("SELECT COUNT(*) FROM kv_store").Scan(&rows))
	suite.Equal(1, rows)
}

func (suite *StateRepoTestSuite) TestKeysAreIndependent() {
	other := NewStateRepoWithKey(suite.db, "other")
	suite.Require().NoError(suite.repo.Save([]byte("a")))
	suite.Require().NoError(other.Save([]byte("b")))

	data, err := suite.repo.Load()
	suite.NoError(err)
	suite.Equal("a", string(data))

	suite.Require().NoError(other.Delete())
	data, err = other.Load()
	suite.NoError(err)
	suite.Nil(data)
}

func TestStateRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StateRepoTestSuite))
}
