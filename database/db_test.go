package database

import (
	"reflect"
	"testing"

	"tripplanner/catalog"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeedAndLoadCatalog(t *testing.T) {
	s := openMemory(t)
	builtin := catalog.Builtin()

	if err := s.SeedCatalog(builtin); err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := s.CountDestinations()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != builtin.Len() {
		t.Errorf("count: got %d, want %d", n, builtin.Len())
	}

	loaded, err := s.LoadCatalog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded.All(), builtin.All()) {
		t.Error("loaded catalog differs from seeded catalog")
	}
}

func TestSeedReplacesPreviousCatalog(t *testing.T) {
	s := openMemory(t)

	if err := s.SeedCatalog(catalog.Builtin()); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	all := catalog.Builtin().All()
	smaller := catalog.New([]catalog.Destination{all[3], all[0]})
	if err := s.SeedCatalog(smaller); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	loaded, err := s.LoadCatalog()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := loaded.All()
	if len(got) != 2 {
		t.Fatalf("after reseed: got %d destinations, want 2", len(got))
	}
	if got[0].ID != "kyoto" || got[1].ID != "bali" {
		t.Errorf("order after reseed: got %s, %s; want kyoto, bali", got[0].ID, got[1].ID)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
