package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cafb-tech/alacarte/internal/db"
	"github.com/cafb-tech/alacarte/internal/domain"
)

// SQLiteAgencyRepo stores agencies in SQLite. It accepts a db.DBTX so the
// same repository works against the database or inside a transaction.
type SQLiteAgencyRepo struct {
	db db.DBTX
}

func NewSQLiteAgencyRepo(dbtx db.DBTX) *SQLiteAgencyRepo {
	return &SQLiteAgencyRepo{db: dbtx}
}

const agencyColumns = `id, name, type, address, region, phone, latitude, longitude,
	by_appointment_only, requirements, food_format, distribution_models,
	cultures_served, wraparound_services, last_service_date`

func (r *SQLiteAgencyRepo) Upsert(ctx context.Context, agency *domain.Agency) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agencies (
			id, name, type, address, region, phone, latitude, longitude,
			by_appointment_only, requirements, food_format, distribution_models,
			cultures_served, wraparound_services, last_service_date,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			address = excluded.address,
			region = excluded.region,
			phone = excluded.phone,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			by_appointment_only = excluded.by_appointment_only,
			requirements = excluded.requirements,
			food_format = excluded.food_format,
			distribution_models = excluded.distribution_models,
			cultures_served = excluded.cultures_served,
			wraparound_services = excluded.wraparound_services,
			last_service_date = excluded.last_service_date,
			updated_at = excluded.updated_at`,
		agency.ID, agency.Name, string(agency.Type), agency.Address, agency.Region,
		agency.Phone, nullableCoord(agency.Latitude), nullableCoord(agency.Longitude),
		boolToInt(agency.ByAppointmentOnly), agency.Requirements, agency.FoodFormat,
		agency.DistributionModels, joinList(agency.CulturesServed),
		joinList(agency.WraparoundServices),
		nullableTimeToString(agency.LastServiceDate),
		now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting agency %s: %w", agency.ID, err)
	}
	return nil
}

func (r *SQLiteAgencyRepo) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+agencyColumns+` FROM agencies WHERE id = ?`, id)
	agency, err := scanAgency(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("agency %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting agency %s: %w", id, err)
	}
	return agency, nil
}

func (r *SQLiteAgencyRepo) List(ctx context.Context) ([]*domain.Agency, error) {
	return r.listWhere(ctx, "", nil)
}

func (r *SQLiteAgencyRepo) ListWithCoordinates(ctx context.Context) ([]*domain.Agency, error) {
	return r.listWhere(ctx, "WHERE latitude IS NOT NULL AND longitude IS NOT NULL", nil)
}

func (r *SQLiteAgencyRepo) listWhere(ctx context.Context, where string, args []any) ([]*domain.Agency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agencyColumns+` FROM agencies `+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*domain.Agency
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning agency: %w", err)
		}
		agencies = append(agencies, agency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating agencies: %w", err)
	}
	return agencies, nil
}

func (r *SQLiteAgencyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM agencies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting agency %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting agency %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("agency %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgency(row rowScanner) (*domain.Agency, error) {
	var (
		agency          domain.Agency
		agencyType      string
		lat, lon        sql.NullFloat64
		byAppt          int
		cultures        string
		services        string
		lastServiceDate *string
	)
	err := row.Scan(
		&agency.ID, &agency.Name, &agencyType, &agency.Address, &agency.Region,
		&agency.Phone, &lat, &lon, &byAppt, &agency.Requirements,
		&agency.FoodFormat, &agency.DistributionModels, &cultures, &services,
		&lastServiceDate,
	)
	if err != nil {
		return nil, err
	}

	agency.Type = domain.AgencyType(agencyType)
	agency.Latitude = lat.Float64
	agency.Longitude = lon.Float64
	agency.ByAppointmentOnly = byAppt != 0
	agency.CulturesServed = splitList(cultures)
	agency.WraparoundServices = splitList(services)

	agency.LastServiceDate, err = parseNullableTime(lastServiceDate)
	if err != nil {
		return nil, fmt.Errorf("parsing last_service_date: %w", err)
	}
	return &agency, nil
}
