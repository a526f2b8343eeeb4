package pgx

import (
	"context"
	"errors"
	"fmt"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"

	"github.com/geomap-asset/backend/pkg/catalog"
)

const assetColumns = `
	id, title, category, profession, oilfield, stage,
	spatial_relation, well_id, layer, graphic_type,
	has_coordinates, coord_object, coord_business, coord_work, coord_profession, coord_process,
	thumbnail, file_key, version, status, tags, figure_note,
	format, source, source_page, creation_time, last_update,
	coordinate_system, project_name, profession_desc, construction_type, mbu_node`

func scanAsset(row pgxv5.Row) (catalog.Asset, error) {
	var (
		a       catalog.Asset
		mounted bool
		coords  catalog.Coordinates5D
		tags    []string
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Category, &a.Profession, &a.Oilfield, &a.Stage,
		&a.SpatialRelation, &a.WellID, &a.Layer, &a.GraphicType,
		&mounted, &coords.Object, &coords.Business, &coords.Work, &coords.Profession, &coords.Process,
		&a.Thumbnail, &a.FileKey, &a.Version, &a.Status, &tags, &a.FigureNote,
		&a.Format, &a.Source, &a.SourcePage, &a.CreationTime, &a.LastUpdate,
		&a.CoordinateSystem, &a.ProjectName, &a.ProfessionDesc, &a.ConstructionType, &a.MBUNode,
	)
	if err != nil {
		return catalog.Asset{}, err
	}
	a.Tags = tags
	if mounted {
		a.Coordinates5D = &coords
	}
	return a, nil
}

func assetArgs(a catalog.Asset) []any {
	coords := catalog.Coordinates5D{}
	mounted := a.Coordinates5D != nil
	if mounted {
		coords = *a.Coordinates5D
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return []any{
		a.ID, a.Title, a.Category, a.Profession, a.Oilfield, a.Stage,
		a.SpatialRelation, a.WellID, a.Layer, a.GraphicType,
		mounted, coords.Object, coords.Business, coords.Work, coords.Profession, coords.Process,
		a.Thumbnail, a.FileKey, a.Version, a.Status, tags, a.FigureNote,
		a.Format, a.Source, a.SourcePage, a.CreationTime, a.LastUpdate,
		a.CoordinateSystem, a.ProjectName, a.ProfessionDesc, a.ConstructionType, a.MBUNode,
	}
}

func (s *CatalogDBStore) GetAllAssets(ctx context.Context) ([]catalog.Asset, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT `+assetColumns+`
		FROM assets
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	out := make([]catalog.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *CatalogDBStore) GetAssetByID(ctx context.Context, id string) (catalog.Asset, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT `+assetColumns+`
		FROM assets
		WHERE id = $1`, id)

	a, err := scanAsset(row)
	if errors.Is(err, pgxv5.ErrNoRows) {
		return catalog.Asset{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Asset{}, fmt.Errorf("failed to get asset %s: %w", id, err)
	}
	return a, nil
}

func (s *CatalogDBStore) CreateAsset(ctx context.Context, asset catalog.Asset) (catalog.Asset, error) {
	if asset.Status == "" {
		asset.Status = catalog.StatusDraft
	}
	_, err := s.conn.Exec(ctx, `
		INSERT INTO assets (`+assetColumns+`)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26, $27,
			$28, $29, $30, $31, $32
		)`, assetArgs(asset)...)
	if err != nil {
		return catalog.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

func (s *CatalogDBStore) UpdateAsset(ctx context.Context, asset catalog.Asset) (catalog.Asset, error) {
	tag, err := s.conn.Exec(ctx, `
		UPDATE assets SET
			title = $2, category = $3, profession = $4, oilfield = $5, stage = $6,
			spatial_relation = $7, well_id = $8, layer = $9, graphic_type = $10,
			has_coordinates = $11, coord_object = $12, coord_business = $13,
			coord_work = $14, coord_profession = $15, coord_process = $16,
			thumbnail = $17, file_key = $18, version = $19, status = $20,
			tags = $21, figure_note = $22,
			format = $23, source = $24, source_page = $25,
			creation_time = $26, last_update = $27,
			coordinate_system = $28, project_name = $29, profession_desc = $30,
			construction_type = $31, mbu_node = $32
		WHERE id = $1`, assetArgs(asset)...)
	if err != nil {
		return catalog.Asset{}, fmt.Errorf("failed to update asset %s: %w", asset.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.Asset{}, catalog.ErrNotFound
	}
	return asset, nil
}

func (s *CatalogDBStore) UpdateStatus(ctx context.Context, id string, status catalog.Status) (catalog.Asset, error) {
	tag, err := s.conn.Exec(ctx,
		`UPDATE assets SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return catalog.Asset{}, fmt.Errorf("failed to update status of %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.Asset{}, catalog.ErrNotFound
	}
	return s.GetAssetByID(ctx, id)
}

func (s *CatalogDBStore) SetFigureNote(ctx context.Context, id string, note string) error {
	tag, err := s.conn.Exec(ctx,
		`UPDATE assets SET figure_note = $2 WHERE id = $1`, id, note)
	if err != nil {
		return fmt.Errorf("failed to set figure note of %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *CatalogDBStore) SetCoordinates(ctx context.Context, id string, coords catalog.Coordinates5D) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE assets SET
			has_coordinates = TRUE,
			coord_object = $2, coord_business = $3, coord_work = $4,
			coord_profession = $5, coord_process = $6
		WHERE id = $1`,
		id, coords.Object, coords.Business, coords.Work, coords.Profession, coords.Process)
	if err != nil {
		return fmt.Errorf("failed to set coordinates of %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *CatalogDBStore) SetEmbedding(ctx context.Context, id string, embedding []float32) error {
	tag, err := s.conn.Exec(ctx,
		`UPDATE assets SET embedding = $2 WHERE id = $1`,
		id, pgvector.NewVector(embedding))
	if err != nil {
		return fmt.Errorf("failed to set embedding of %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// FindSimilarAssets ranks assets by cosine distance to the query embedding.
// Assets without an embedding are excluded.
func (s *CatalogDBStore) FindSimilarAssets(ctx context.Context, embedding []float32, limit int) ([]catalog.Asset, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.conn.Query(ctx, `
		SELECT `+assetColumns+`
		FROM assets
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2`,
		pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar assets: %w", err)
	}
	defer rows.Close()

	out := make([]catalog.Asset, 0, limit)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
