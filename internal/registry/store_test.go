package registry_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"scriptorium/internal/registry"
	"scriptorium/internal/testsupport"
)

func TestCreateAssignsIDAndPersists(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	created, err := store.Create(ctx, &registry.Record{
		Number:      "MS-1001",
		Title:       "كتاب الحيوان",
		Stage:       registry.StageInspection,
		Department:  registry.DepartmentRestoration,
		Assignee:    "سارة",
		EnteredDate: "2026-08-20",
		SLADays:     5,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected record ID to be assigned")
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	got := records[0]
	if got.Number != "MS-1001" || got.Title != "كتاب الحيوان" || got.Stage != registry.StageInspection {
		t.Fatalf("unexpected listed record: %#v", got)
	}
	if got.EnteredDate != "2026-08-20" || got.SLADays != 5 {
		t.Fatalf("unexpected SLA fields: %#v", got)
	}
}

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.NewRecord(t, store, "MS-42")

	_, err := store.Create(ctx, &registry.Record{Number: "MS-42", SLADays: 5})
	if !errors.Is(err, registry.ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected store unchanged with one record, got %d", count)
	}
}

func TestCreateValidation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	cases := []struct {
		name   string
		record registry.Record
		check  func(error) bool
	}{
		{"empty number", registry.Record{Number: "  "}, func(err error) bool {
			return errors.Is(err, registry.ErrEmptyNumber)
		}},
		{"negative sla", registry.Record{Number: "MS-1", SLADays: -1}, func(err error) bool {
			return errors.Is(err, registry.ErrNegativeSLA)
		}},
		{"unknown stage", registry.Record{Number: "MS-2", Stage: "binding"}, func(err error) bool {
			var vocabErr *registry.VocabularyError
			return errors.As(err, &vocabErr) && vocabErr.Field == "stage"
		}},
		{"unknown department", registry.Record{Number: "MS-3", Department: "archives"}, func(err error) bool {
			var vocabErr *registry.VocabularyError
			return errors.As(err, &vocabErr) && vocabErr.Field == "department"
		}},
		{"malformed date", registry.Record{Number: "MS-4", EnteredDate: "20/08/2026"}, func(err error) bool {
			var dateErr *registry.DateError
			return errors.As(err, &dateErr)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.record
			if _, err := store.Create(ctx, &rec); err == nil || !tc.check(err) {
				t.Fatalf("expected matching validation error, got %v", err)
			}
		})
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no records after rejected creates, got %d", count)
	}
}

func TestUpdateMutatesInPlace(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	rec := testsupport.NewRecord(t, store, "MS-7")

	rec.Stage = registry.StageDigitization
	rec.Department = registry.DepartmentDigitization
	rec.EnteredDate = "2026-09-01"
	rec.SLADays = 3
	if err := store.Update(ctx, rec); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Stage != registry.StageDigitization || updated.SLADays != 3 {
		t.Fatalf("unexpected updated record: %#v", updated)
	}
	if updated.ID != rec.ID {
		t.Fatalf("expected id preserved, got %d", updated.ID)
	}
}

func TestUpdateGuardsUniquenessAndExistence(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.NewRecord(t, store, "MS-A")
	other := testsupport.NewRecord(t, store, "MS-B")

	other.Number = "MS-A"
	if err := store.Update(ctx, other); !errors.Is(err, registry.ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}

	ghost := &registry.Record{ID: 9999, Number: "MS-C", SLADays: 5}
	if err := store.Update(ctx, ghost); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveThenList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first := testsupport.NewRecord(t, store, "MS-1")
	testsupport.NewRecord(t, store, "MS-2")

	if err := store.Remove(ctx, first.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 || records[0].Number != "MS-2" {
		t.Fatalf("expected only MS-2 to remain, got %#v", records)
	}

	if err := store.Remove(ctx, first.ID); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestListOrderedByCreationAndIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	for _, number := range []string{"MS-3", "MS-1", "MS-2"} {
		testsupport.NewRecord(t, store, number)
	}

	first, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	second, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected three records, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Number != second[i].Number {
			t.Fatalf("listing not idempotent at index %d: %#v vs %#v", i, first[i], second[i])
		}
		if i > 0 && first[i].ID <= first[i-1].ID {
			t.Fatalf("expected ascending ids, got %d after %d", first[i].ID, first[i-1].ID)
		}
	}
	// Insertion order preserved, not number order.
	if first[0].Number != "MS-3" || first[2].Number != "MS-2" {
		t.Fatalf("expected creation order, got %#v", first)
	}
}

func TestCountByStageAndDepartment(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.NewRecord(t, store, "MS-1")
	testsupport.NewRecord(t, store, "MS-2", func(r *registry.Record) {
		r.Stage = registry.StageCataloging
		r.Department = registry.DepartmentAccess
	})
	testsupport.NewRecord(t, store, "MS-3", func(r *registry.Record) {
		r.Stage = registry.StageCataloging
	})

	byStage, err := store.CountByStage(ctx)
	if err != nil {
		t.Fatalf("CountByStage failed: %v", err)
	}
	if byStage[registry.StageReceipt] != 1 || byStage[registry.StageCataloging] != 2 {
		t.Fatalf("unexpected stage counts: %#v", byStage)
	}

	byDepartment, err := store.CountByDepartment(ctx)
	if err != nil {
		t.Fatalf("CountByDepartment failed: %v", err)
	}
	if byDepartment[registry.DepartmentRestoration] != 2 || byDepartment[registry.DepartmentAccess] != 1 {
		t.Fatalf("unexpected department counts: %#v", byDepartment)
	}
}

func TestOpenRejectsSecondSession(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.MustOpenStore(t, cfg)

	if _, err := registry.Open(cfg); !errors.Is(err, registry.ErrLocked) {
		t.Fatalf("expected ErrLocked for second session, got %v", err)
	}
}

func TestReadsStayLenientForLegacyRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	// Rows written before vocabulary and date enforcement may carry labels
	// and dates the store would reject today. They must still list.
	db, err := sql.Open("sqlite", store.Path())
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	defer db.Close()
	_, err = db.Exec(
		`INSERT INTO manuscripts (manuscript_no, stage, department, entered_stage_date, sla_days, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"MS-LEGACY", "فحص", "الإتاحة", "not-a-date", 5, "2026-01-01 00:00:00", "2026-01-01 00:00:00",
	)
	if err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected legacy row listed, got %d records", len(records))
	}
	if records[0].EnteredDate != "not-a-date" {
		t.Fatalf("expected raw date preserved on read, got %q", records[0].EnteredDate)
	}
}
