// Package seed siembra el almacén con el dataset de ejemplo de los depósitos
// AOZ: ubicaciones, categorías, artículos de Bettwaren con sus existencias y
// el roster inicial de personal. La siembra es idempotente (upserts) para
// poder re-ejecutarla sin duplicar datos.
package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/aoz-zh/supply-api/internal/domain"
	"github.com/aoz-zh/supply-api/internal/domain/entity"
	"github.com/aoz-zh/supply-api/internal/domain/repository"
)

// Repos agrupa los puertos que necesita la siembra.
type Repos struct {
	Locations repository.LocationRepository
	Categories repository.CategoryRepository
	Items     repository.ItemRepository
	Ledger    repository.LedgerRepository
	Users     repository.UserRepository
}

// Apply siembra todo el dataset de ejemplo.
func Apply(r Repos) error {
	for _, loc := range Locations() {
		if err := r.Locations.Upsert(loc); err != nil {
			return fmt.Errorf("seed location %s: %w", loc.Code, err)
		}
	}
	for _, cat := range Categories() {
		if err := r.Categories.Upsert(cat); err != nil {
			return fmt.Errorf("seed category %s: %w", cat.Name, err)
		}
	}
	for _, it := range Items() {
		if err := r.Items.Upsert(it); err != nil {
			return fmt.Errorf("seed item %s/%s: %w", it.Category, it.Name, err)
		}
	}
	for _, rec := range StockRecords() {
		if err := r.Ledger.Upsert(rec); err != nil {
			return fmt.Errorf("seed stock %s/%s@%s: %w", rec.Category, rec.ItemName, rec.LocationCode, err)
		}
	}
	for _, u := range Users() {
		if err := r.Users.Create(u); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				if err := r.Users.Update(u); err != nil {
					return fmt.Errorf("seed user %s: %w", u.ID, err)
				}
				continue
			}
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return nil
}

// Locations devuelve los cinco depósitos AOZ con sus nombres actuales.
func Locations() []*entity.Location {
	return []*entity.Location{
		{Code: "loc_centrum", DisplayName: "Zentrales Warenhaus", Address: "Bahnhofstrasse 10", PostalCode: "8001"},
		{Code: "loc_west", DisplayName: "Verpflegungszentrum", Address: "Sihlstrasse 15", PostalCode: "8005"},
		{Code: "loc_altstetten", DisplayName: "Bettenzentrum", Address: "Europaallee 20", PostalCode: "8004"},
		{Code: "loc_oerlikon", DisplayName: "Medizinverwaltung", Address: "Werdstrasse 35", PostalCode: "8002"},
		{Code: "loc_zuerichwest", DisplayName: "AOZ Zürich West", Address: "Pfingstweidstrasse 100", PostalCode: "8005"},
	}
}

// Categories devuelve las siete categorías de artículos de ayuda.
func Categories() []*entity.Category {
	return []*entity.Category{
		{Name: "bedding", DisplayName: "Bettwaren", Description: "Betten, Decken, Kissen und Schlafsäcke"},
		{Name: "food", DisplayName: "Lebensmittel", Description: "Haltbare Lebensmittel und Grundnahrungsmittel"},
		{Name: "hygiene", DisplayName: "Hygiene", Description: "Hygiene- und Pflegeartikel"},
		{Name: "clothing", DisplayName: "Kleidung", Description: "Kleidung für alle Jahreszeiten"},
		{Name: "family", DisplayName: "Kinder & Familie", Description: "Artikel für Kinder und Familien"},
		{Name: "medical", DisplayName: "Medizin & Erste Hilfe", Description: "Erste-Hilfe- und Sanitätsmaterial"},
		{Name: "tools", DisplayName: "Werkzeuge & Ausrüstung", Description: "Werkzeuge und technische Ausrüstung"},
	}
}

// Items devuelve los artículos de Bettwaren del dataset original.
func Items() []*entity.Item {
	return []*entity.Item{
		{Category: "bedding", Name: "Bett", Description: "Einzelbett mit Lattenrost"},
		{Category: "bedding", Name: "Decke", Description: "Wolldecke 140x200"},
		{Category: "bedding", Name: "Kissen", Description: "Kopfkissen 65x65"},
		{Category: "bedding", Name: "Schlafsack", Description: "Schlafsack für drei Jahreszeiten"},
	}
}

// StockRecords devuelve las existencias iniciales de Bettwaren por depósito,
// agregadas del inventario unitario original (cada unidad contaba como
// available o reserved según su estado).
func StockRecords() []*entity.StockRecord {
	now := time.Now()
	recs := []*entity.StockRecord{
		{Category: "bedding", ItemName: "Bett", LocationCode: "loc_centrum", Available: 3, Reserved: 0},
		{Category: "bedding", ItemName: "Bett", LocationCode: "loc_west", Available: 2, Reserved: 0},
		{Category: "bedding", ItemName: "Bett", LocationCode: "loc_altstetten", Available: 0, Reserved: 2},
		{Category: "bedding", ItemName: "Bett", LocationCode: "loc_oerlikon", Available: 1, Reserved: 1},
		{Category: "bedding", ItemName: "Bett", LocationCode: "loc_zuerichwest", Available: 1, Reserved: 0},

		{Category: "bedding", ItemName: "Decke", LocationCode: "loc_centrum", Available: 2, Reserved: 1},
		{Category: "bedding", ItemName: "Decke", LocationCode: "loc_west", Available: 2, Reserved: 0},
		{Category: "bedding", ItemName: "Decke", LocationCode: "loc_altstetten", Available: 1, Reserved: 1},
		{Category: "bedding", ItemName: "Decke", LocationCode: "loc_oerlikon", Available: 1, Reserved: 1},
		{Category: "bedding", ItemName: "Decke", LocationCode: "loc_zuerichwest", Available: 1, Reserved: 0},

		{Category: "bedding", ItemName: "Kissen", LocationCode: "loc_centrum", Available: 2, Reserved: 1},
		{Category: "bedding", ItemName: "Kissen", LocationCode: "loc_west", Available: 1, Reserved: 1},
		{Category: "bedding", ItemName: "Kissen", LocationCode: "loc_altstetten", Available: 2, Reserved: 0},
		{Category: "bedding", ItemName: "Kissen", LocationCode: "loc_oerlikon", Available: 1, Reserved: 1},
		{Category: "bedding", ItemName: "Kissen", LocationCode: "loc_zuerichwest", Available: 1, Reserved: 0},

		{Category: "bedding", ItemName: "Schlafsack", LocationCode: "loc_centrum", Available: 2, Reserved: 0},
		{Category: "bedding", ItemName: "Schlafsack", LocationCode: "loc_west", Available: 0, Reserved: 2},
		{Category: "bedding", ItemName: "Schlafsack", LocationCode: "loc_altstetten", Available: 2, Reserved: 0},
		{Category: "bedding", ItemName: "Schlafsack", LocationCode: "loc_oerlikon", Available: 2, Reserved: 0},
		{Category: "bedding", ItemName: "Schlafsack", LocationCode: "loc_zuerichwest", Available: 1, Reserved: 1},
	}
	for _, r := range recs {
		r.UpdatedAt = now
	}
	return recs
}

// Users devuelve el roster inicial de personal.
func Users() []*entity.User {
	now := time.Now()
	users := []*entity.User{
		{ID: "usr_john_doe", FirstName: "John", LastName: "Doe", Email: "john.doe@aoz.ch",
			Status: entity.StatusAktiv, Role: entity.RoleMitarbeiter, Comments: "Kriese 1, Kreis 3"},
		{ID: "usr_jane_smith", FirstName: "Jane", LastName: "Smith", Email: "jane.smith@aoz.ch",
			Status: entity.StatusAktiv, Role: entity.RoleAdmin},
		{ID: "usr_alice_johnson", FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@aoz.ch",
			Status: entity.StatusDeaktiviert, Role: entity.RoleWartung},
		{ID: "usr_armon_joy", FirstName: "Armon", LastName: "Joy", Email: "armon.joy@aoz.ch",
			Status: entity.StatusAktiv, Role: entity.RoleVorsitzender, Comments: "Teamleiterin Kriese 1"},
	}
	for _, u := range users {
		u.CreatedAt = now
		u.UpdatedAt = now
	}
	return users
}
