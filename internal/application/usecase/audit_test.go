package usecase

import (
	"context"
	"testing"

	"courseadmin/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_Disabled(t *testing.T) {
	var nilUC *AuditUseCase
	nilUC.Record(context.Background(), testSession, domain.ActionCreate, "courses", "c1")

	_, err := NewAuditUseCase(nil, zerolog.Nop()).List(context.Background(), "", "", 1, 10)
	assert.ErrorIs(t, err, domain.ErrAuditDisabled)
}

func TestAudit_List(t *testing.T) {
	store := &memoryAudit{}
	uc := NewAuditUseCase(store, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		uc.Record(ctx, testSession, domain.ActionUpdate, "courses", "c1")
	}
	uc.Record(ctx, testSession, domain.ActionDelete, "users", "u1")

	page, err := uc.List(ctx, "courses", "", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "root@example.com", page.Items[0].AdminEmail)

	page, err = uc.List(ctx, "", "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
	assert.Equal(t, domain.DefaultLimit, page.Limit)
}
