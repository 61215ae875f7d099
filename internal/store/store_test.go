package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop-service/internal/model"
)

func sampleOrder(id string) model.Order {
	entry := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	return model.Order{
		ID:            id,
		EntryDate:     entry,
		Status:        model.StatusPending,
		OperationType: model.OperationRepair,
		Owner: model.Owner{
			Name:     "Carlos Pérez",
			IDNumber: "V-14.523.889",
			Phone:    "0414-5551234",
			Email:    "carlos@example.com",
		},
		Motorcycle: model.Motorcycle{
			Plate:         "ABC-123",
			Model:         "Bera SBR 150",
			Year:          "2021",
			Color:         "Negro",
			Mileage:       "15300",
			ChassisSerial: "8211019XK",
			EngineSerial:  "162FMJ77",
			Displacement:  "150cc",
		},
		Checklist: map[string]bool{
			"Nivel de aceite": true,
			"Llaves":          false,
		},
		ClientReport:  "Ruido en la transmisión",
		Observations:  "Tanque con rayón lateral",
		WorkHours:     2.5,
		EstimatedCost: 180,
		PhotoVehicle:  "data:image/png;base64,dmVoaWNsZQ==",
		Updates: []model.ProgressUpdate{
			{Timestamp: entry.Add(time.Hour), Note: "Desmontaje", Photo: "data:image/png;base64,Zm90bzE="},
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	s := NewFileStore(path)

	want := sampleOrder("100001")
	require.NoError(t, s.Save(ctx, []model.Order{want}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	orders, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFileStoreLoadCorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptStore)
}

func TestFileStoreLoadLegacyBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	legacy := `[{"id":"100002","status":"Pendiente","owner":{"name":"Ana"},"motorcycle":{"plate":"XYZ-987"}}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	orders, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "100002", orders[0].ID)
	assert.Equal(t, model.StatusPending, orders[0].Status)
}

func TestFileStoreRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":99,"orders":[]}`), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptStore)
}

func TestFileStoreSaveReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(ctx, []model.Order{sampleOrder("100001"), sampleOrder("100002")}))
	require.NoError(t, s.Save(ctx, []model.Order{sampleOrder("100003")}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100003", got[0].ID)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "orders.json"))
	require.NoError(t, s.Save(context.Background(), []model.Order{sampleOrder("100001")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "orders.json", entries[0].Name())
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)

	first := sampleOrder("100001")
	second := sampleOrder("100002")
	require.NoError(t, s.Save(ctx, []model.Order{first, second}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])

	// Replace semantics: a later save fully overwrites the table.
	require.NoError(t, s.Save(ctx, []model.Order{second}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100002", got[0].ID)
}
