package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/machikasa/machikasa-api/internal/repository"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
)

func newTestRepo(t *testing.T) *repository.LocalDB {
	t.Helper()

	store, err := dao.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	return repository.NewLocalDB(store)
}

// seededRepo returns a repository initialized with the fixture dataset.
func seededRepo(t *testing.T) *repository.LocalDB {
	t.Helper()

	repo := newTestRepo(t)
	NewBootstrapService(repo).Initialize(context.Background())

	return repo
}
