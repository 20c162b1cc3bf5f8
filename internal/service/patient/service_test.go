package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := svc.Search(ctx, "john")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "John Smith", byName[0].Name)

	// Email matches count too, case-insensitively.
	byEmail, err := svc.Search(ctx, "EMILY.DAVIS@")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Emily Davis", byEmail[0].Name)

	none, err := svc.Search(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	record, err := svc.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Michael Brown", record.Name)
	assert.Equal(t, []string{"Chronic Back Pain", "Migraine"}, record.MedicalHistory)
	assert.Equal(t, 8, record.TotalVisits)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
