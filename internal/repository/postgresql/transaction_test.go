package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/stitchline/garment-erp-go/internal/pkg/database"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := &stubTx{}

	ctx := ContextWithTx(context.Background(), tx)

	got := GetQuerier(ctx, db)
	assert.Equal(t, database.Querier(tx), got)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	got := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), got)
}
