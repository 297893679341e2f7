package postgres_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
)

// capturedQuery guarda o SQL montado pelo GORM sem executá-lo
type capturedQuery struct {
	sql  string
	vars []interface{}
}

// dryRunPostgres abre o dialeto postgres em DryRun, sem conexão real
func dryRunPostgres(t *testing.T) (*gorm.DB, *[]capturedQuery) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=127.0.0.1 user=kundlivision dbname=kundlivision sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var captured []capturedQuery
	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		captured = append(captured, capturedQuery{
			sql:  tx.Statement.SQL.String(),
			vars: append([]interface{}(nil), tx.Statement.Vars...),
		})
	})
	require.NoError(t, err)

	return db, &captured
}

func TestBlogRepositoryPostgresTagFilter(t *testing.T) {
	db, captured := dryRunPostgres(t)
	repo := postgres.NewBlogRepository(db)

	tag := "vedic"
	_, _, err := repo.ListPublished(context.Background(), repositories.BlogFilters{Tag: &tag})
	require.NoError(t, err)

	// contagem e página usam o mesmo filtro
	queries := blogQueries(*captured)
	require.Len(t, queries, 2)
	for _, q := range queries {
		assert.Contains(t, q.sql, "blogs.is_published = $1")
		assert.Contains(t, q.sql, "blogs.tags @> $2::jsonb")
		assert.NotContains(t, q.sql, "json_each")
		require.GreaterOrEqual(t, len(q.vars), 2)
		assert.Equal(t, `["vedic"]`, fmt.Sprint(q.vars[1]))
	}
	assert.True(t, strings.HasPrefix(strings.ToUpper(queries[0].sql), "SELECT COUNT"))
}

func blogQueries(all []capturedQuery) []capturedQuery {
	var out []capturedQuery
	for _, q := range all {
		if strings.Contains(q.sql, `FROM "blogs"`) {
			out = append(out, q)
		}
	}
	return out
}

func TestBlogRepositoryPostgresTagIsEncodedAsJSON(t *testing.T) {
	db, captured := dryRunPostgres(t)
	repo := postgres.NewBlogRepository(db)

	// aspas na tag não podem quebrar o literal JSONB
	tag := `sun "and" moon`
	_, _, err := repo.ListPublished(context.Background(), repositories.BlogFilters{Tag: &tag})
	require.NoError(t, err)

	queries := blogQueries(*captured)
	require.NotEmpty(t, queries)
	require.GreaterOrEqual(t, len(queries[0].vars), 2)
	assert.Equal(t, `["sun \"and\" moon"]`, fmt.Sprint(queries[0].vars[1]))
}
