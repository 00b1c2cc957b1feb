package repositories

import (
	"database/sql"

	"tourops/internal/domain/models"

	"github.com/shopspring/decimal"
)

// RateRepository serves the three rate tables (guide_rates, driver_rates,
// contract_rates) through one implementation; Table and OwnerColumn select
// which one. Entries are unique per (owner, service_type).
type RateRepository struct {
	DB          *sql.DB
	Table       string
	OwnerColumn string
}

func GuideRates(db *sql.DB) RateRepository {
	return RateRepository{DB: db, Table: "guide_rates", OwnerColumn: "guide_id"}
}

func DriverRates(db *sql.DB) RateRepository {
	return RateRepository{DB: db, Table: "driver_rates", OwnerColumn: "driver_id"}
}

func ContractRates(db *sql.DB) RateRepository {
	return RateRepository{DB: db, Table: "contract_rates", OwnerColumn: "contract_id"}
}

func (r RateRepository) Upsert(ownerID int64, serviceType string, price decimal.Decimal, currency string) error {
	_, err := r.DB.Exec(`
		INSERT INTO `+r.Table+` (`+r.OwnerColumn+`, service_type, price, currency)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE price = VALUES(price), currency = VALUES(currency)
	`, ownerID, serviceType, price, currency)
	return err
}

func (r RateRepository) List(ownerID int64) ([]models.Rate, error) {
	rows, err := r.DB.Query(`
		SELECT id, `+r.OwnerColumn+`, service_type, price, COALESCE(currency, '')
		FROM `+r.Table+`
		WHERE `+r.OwnerColumn+` = ?
		ORDER BY service_type
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Rate{}
	for rows.Next() {
		var rt models.Rate
		if err := rows.Scan(&rt.ID, &rt.OwnerID, &rt.ServiceType, &rt.Price, &rt.Currency); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RateRepository) Delete(ownerID int64, serviceType string) (int64, error) {
	res, err := r.DB.Exec(`
		DELETE FROM `+r.Table+` WHERE `+r.OwnerColumn+` = ? AND service_type = ?
	`, ownerID, serviceType)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
