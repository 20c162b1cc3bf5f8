package medical

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/repository/kv"
	"github.com/docspot/docspot-api/internal/store"
)

func TestCreatePrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewSummaryRepository(store.NewMemoryStore()), false)

	first, err := svc.Create(ctx, &model.CreateVisitSummaryRequest{
		PatientName: "John Smith",
		Diagnosis:   "Hypertension follow-up",
		VisitDate:   "2024-01-15",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, &model.CreateVisitSummaryRequest{
		PatientName: "Emily Davis",
		Diagnosis:   "Allergic rhinitis",
		VisitDate:   "2024-01-20",
	})
	require.NoError(t, err)

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, second.ID, summaries[0].ID)
	assert.Equal(t, first.ID, summaries[1].ID)
}

func TestCreateDefaultsVisitDateToToday(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewSummaryRepository(store.NewMemoryStore()), false)

	summary, err := svc.Create(ctx, &model.CreateVisitSummaryRequest{
		PatientName: "John Smith",
		Diagnosis:   "Routine checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), summary.VisitDate)
}

func TestDemoSummariesFollowPersistedOnes(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	svc := NewService(kv.NewSummaryRepository(s), true)

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "John Smith", summaries[0].PatientName)

	created, err := svc.Create(ctx, &model.CreateVisitSummaryRequest{
		PatientName: "New Patient",
		Diagnosis:   "Migraine",
	})
	require.NoError(t, err)

	summaries, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, created.ID, summaries[0].ID)
	assert.Equal(t, "John Smith", summaries[1].PatientName)
}
