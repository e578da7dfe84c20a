package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type IFarmerRepository interface {
	ListFarmerRows(ctx context.Context) ([]models.FarmerRow, error)
	ListFarmers(ctx context.Context, filter models.FarmerFilter) ([]models.FarmerRow, error)
	GetFarmerByID(ctx context.Context, id int64) (*models.FarmerRow, error)
	CreateFarmer(ctx context.Context, farmer *models.Farmer, commodity *models.Commodity) error
	UpdateFarmer(ctx context.Context, id int64, farmer *models.Farmer, commodity *models.Commodity) error
	DeleteFarmer(ctx context.Context, id int64) error
	GetDistrictDistribution(ctx context.Context) ([]analytics.DistrictCount, error)
	GetCommodityTypeCounts(ctx context.Context) ([]models.CommodityTypeCount, error)
	ListDistricts(ctx context.Context) ([]string, error)
	ListCommodityTypes(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context) ([]string, error)
}

type FarmerRepository struct {
	db *sqlx.DB
}

func NewFarmerRepository(db *sqlx.DB) *FarmerRepository {
	return &FarmerRepository{db: db}
}

const farmerJoinQuery = `
	SELECT
		f.id, f.name, f.contact, f.province, f.district, f.location,
		f.latitude, f.longitude, f.land_area,
		c.id AS commodity_id, c.name AS commodity_name, c.type AS commodity_type,
		c.status, c.category, c.organic, c.est_yield_ton, c.harvest_date, c.image_url,
		f.created_at, f.updated_at
	FROM farmers f
	LEFT JOIN commodities c ON f.id = c.farmer_id`

// newestFirst is the "terbaru" source order shared by every farmer listing.
var newestFirst = []string{"f.created_at DESC", "f.id DESC", "c.id ASC"}

// ListFarmerRows returns every farmer joined with its commodities, newest first.
func (r *FarmerRepository) ListFarmerRows(ctx context.Context) ([]models.FarmerRow, error) {
	return r.ListFarmers(ctx, models.FarmerFilter{})
}

func (r *FarmerRepository) ListFarmers(ctx context.Context, filter models.FarmerFilter) ([]models.FarmerRow, error) {
	query, args, err := BuildFarmerListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows := []models.FarmerRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}
	return rows, nil
}

// BuildFarmerListQuery renders the filtered farmer listing.
func BuildFarmerListQuery(filter models.FarmerFilter) (string, []any, error) {
	qb := utils.QueryBuilder{
		TemplateQuery: farmerJoinQuery,
		OrderBy:       newestFirst,
		Limit:         filter.Limit,
		Offset:        filter.Offset,
	}
	qb.Conditions = append(qb.Conditions, inOrEqual("f.district", filter.Districts)...)
	qb.Conditions = append(qb.Conditions, inOrEqual("c.type", filter.CommodityTypes)...)
	if search := strings.TrimSpace(filter.Search); search != "" {
		qb.Conditions = append(qb.Conditions, utils.Condition{
			Field:    "(f.name || ' ' || COALESCE(c.name, ''))",
			Operator: "ILIKE",
			Value:    "%" + escapeLike(search) + "%",
		})
	}

	query, args, err := qb.BuildQueryDynamicFilter()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build farmer query: %w", err)
	}
	return query, args, nil
}

func inOrEqual(field string, values []string) []utils.Condition {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return []utils.Condition{{Field: field, Operator: "=", Value: values[0]}}
	default:
		return []utils.Condition{{Field: field, Operator: "IN", Value: values}}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *FarmerRepository) GetFarmerByID(ctx context.Context, id int64) (*models.FarmerRow, error) {
	var row models.FarmerRow
	query := farmerJoinQuery + ` WHERE f.id = $1 ORDER BY c.id ASC LIMIT 1`

	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get farmer %d: %w", id, err)
	}
	return &row, nil
}

// CreateFarmer inserts the farmer and its commodity in one transaction and
// fills in the generated IDs and timestamps.
func (r *FarmerRepository) CreateFarmer(ctx context.Context, farmer *models.Farmer, commodity *models.Commodity) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	farmer.CreatedAt = now
	farmer.UpdatedAt = now

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO farmers (name, contact, province, district, location, latitude, longitude, land_area, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		farmer.Name, farmer.Contact, farmer.Province, farmer.District, farmer.Location,
		farmer.Latitude, farmer.Longitude, farmer.LandArea, farmer.CreatedAt, farmer.UpdatedAt,
	).Scan(&farmer.ID)
	if err != nil {
		return fmt.Errorf("failed to insert farmer: %w", err)
	}

	if commodity != nil {
		commodity.FarmerID = farmer.ID
		if err := insertCommodity(ctx, tx, commodity); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit farmer creation: %w", err)
	}
	return nil
}

// UpdateFarmer replaces the farmer's columns and its first commodity, adding
// one when the farmer had none.
func (r *FarmerRepository) UpdateFarmer(ctx context.Context, id int64, farmer *models.Farmer, commodity *models.Commodity) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	farmer.ID = id
	farmer.UpdatedAt = time.Now()

	err = utils.ExecWithCheck(ctx, tx, `
		UPDATE farmers
		SET name = $1, contact = $2, province = $3, district = $4, location = $5,
		    latitude = $6, longitude = $7, land_area = $8, updated_at = $9
		WHERE id = $10`,
		utils.ExecUpdate,
		farmer.Name, farmer.Contact, farmer.Province, farmer.District, farmer.Location,
		farmer.Latitude, farmer.Longitude, farmer.LandArea, farmer.UpdatedAt, id,
	)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to update farmer %d: %w", id, err)
	}

	if commodity != nil {
		commodity.FarmerID = id
		err = utils.ExecWithCheck(ctx, tx, `
			UPDATE commodities
			SET name = $1, type = $2, status = $3, category = $4, organic = $5,
			    est_yield_ton = $6, harvest_date = $7, image_url = $8
			WHERE id = (SELECT MIN(id) FROM commodities WHERE farmer_id = $9)`,
			utils.ExecUpdate,
			commodity.Name, commodity.Type, commodity.Status, commodity.Category, commodity.Organic,
			commodity.EstYieldTon, commodity.HarvestDate, commodity.ImageURL, id,
		)
		switch {
		case err == utils.ErrNoRowsAffected:
			if err := insertCommodity(ctx, tx, commodity); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("failed to update commodity of farmer %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit farmer update: %w", err)
	}
	return nil
}

func insertCommodity(ctx context.Context, tx *sqlx.Tx, commodity *models.Commodity) error {
	err := tx.QueryRowxContext(ctx, `
		INSERT INTO commodities (farmer_id, name, type, status, category, organic, est_yield_ton, harvest_date, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		commodity.FarmerID, commodity.Name, commodity.Type, commodity.Status, commodity.Category,
		commodity.Organic, commodity.EstYieldTon, commodity.HarvestDate, commodity.ImageURL,
	).Scan(&commodity.ID)
	if err != nil {
		return fmt.Errorf("failed to insert commodity: %w", err)
	}
	return nil
}

// DeleteFarmer removes the farmer; commodities go with it through the
// cascading foreign key.
func (r *FarmerRepository) DeleteFarmer(ctx context.Context, id int64) error {
	err := utils.ExecWithCheck(ctx, r.db, `DELETE FROM farmers WHERE id = $1`, utils.ExecDelete, id)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete farmer %d: %w", id, err)
	}
	return nil
}

func (r *FarmerRepository) GetDistrictDistribution(ctx context.Context) ([]analytics.DistrictCount, error) {
	counts := []analytics.DistrictCount{}
	query := `
		SELECT district, COUNT(*) AS count
		FROM farmers
		GROUP BY district
		ORDER BY count DESC, district ASC`

	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to get district distribution: %w", err)
	}
	return counts, nil
}

func (r *FarmerRepository) GetCommodityTypeCounts(ctx context.Context) ([]models.CommodityTypeCount, error) {
	counts := []models.CommodityTypeCount{}
	query := `
		SELECT type, COUNT(*) AS count
		FROM commodities
		GROUP BY type
		ORDER BY count DESC, type ASC`

	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to get commodity type counts: %w", err)
	}
	return counts, nil
}

func (r *FarmerRepository) ListDistricts(ctx context.Context) ([]string, error) {
	districts := []string{}
	if err := r.db.SelectContext(ctx, &districts, `SELECT DISTINCT district FROM farmers ORDER BY district`); err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	return districts, nil
}

func (r *FarmerRepository) ListCommodityTypes(ctx context.Context) ([]string, error) {
	types := []string{}
	if err := r.db.SelectContext(ctx, &types, `SELECT DISTINCT type FROM commodities ORDER BY type`); err != nil {
		return nil, fmt.Errorf("failed to list commodity types: %w", err)
	}
	return types, nil
}

// ListTables names the tables of the public schema.
func (r *FarmerRepository) ListTables(ctx context.Context) ([]string, error) {
	tables := []string{}
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`

	if err := r.db.SelectContext(ctx, &tables, query); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}
