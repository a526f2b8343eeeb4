package pgx

import (
	"context"
	"errors"
	"fmt"

	pgxv5 "github.com/jackc/pgx/v5"

	"github.com/geomap-asset/backend/pkg/catalog"
)

func (s *CatalogDBStore) GetScenarios(ctx context.Context) ([]catalog.ScenarioDefinition, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, name, icon, description, updated_at
		FROM scenarios
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	out := make([]catalog.ScenarioDefinition, 0)
	for rows.Next() {
		var sc catalog.ScenarioDefinition
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Icon, &sc.Description, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		stages, err := s.getStages(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Stages = stages
	}
	return out, nil
}

func (s *CatalogDBStore) GetScenarioByID(ctx context.Context, id string) (catalog.ScenarioDefinition, error) {
	var sc catalog.ScenarioDefinition
	err := s.conn.QueryRow(ctx, `
		SELECT id, name, icon, description, updated_at
		FROM scenarios
		WHERE id = $1`, id).
		Scan(&sc.ID, &sc.Name, &sc.Icon, &sc.Description, &sc.UpdatedAt)
	if errors.Is(err, pgxv5.ErrNoRows) {
		return catalog.ScenarioDefinition{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.ScenarioDefinition{}, fmt.Errorf("failed to get scenario %s: %w", id, err)
	}

	stages, err := s.getStages(ctx, id)
	if err != nil {
		return catalog.ScenarioDefinition{}, err
	}
	sc.Stages = stages
	return sc, nil
}

func (s *CatalogDBStore) getStages(ctx context.Context, scenarioID string) ([]catalog.StageRule, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, name, required_categories
		FROM scenario_stages
		WHERE scenario_id = $1
		ORDER BY position`, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages of %s: %w", scenarioID, err)
	}
	defer rows.Close()

	stages := make([]catalog.StageRule, 0)
	for rows.Next() {
		var st catalog.StageRule
		if err := rows.Scan(&st.ID, &st.Name, &st.RequiredCategories); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}

func (s *CatalogDBStore) CreateScenario(ctx context.Context, scenario catalog.ScenarioDefinition) (catalog.ScenarioDefinition, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return catalog.ScenarioDefinition{}, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO scenarios (id, name, icon, description, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		scenario.ID, scenario.Name, scenario.Icon, scenario.Description, scenario.UpdatedAt)
	if err != nil {
		return catalog.ScenarioDefinition{}, fmt.Errorf("failed to create scenario: %w", err)
	}

	if err := insertStages(ctx, tx, scenario); err != nil {
		return catalog.ScenarioDefinition{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return catalog.ScenarioDefinition{}, err
	}
	return scenario, nil
}

func (s *CatalogDBStore) UpdateScenario(ctx context.Context, scenario catalog.ScenarioDefinition) (catalog.ScenarioDefinition, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return catalog.ScenarioDefinition{}, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE scenarios SET name = $2, icon = $3, description = $4, updated_at = $5
		WHERE id = $1`,
		scenario.ID, scenario.Name, scenario.Icon, scenario.Description, scenario.UpdatedAt)
	if err != nil {
		return catalog.ScenarioDefinition{}, fmt.Errorf("failed to update scenario %s: %w", scenario.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ScenarioDefinition{}, catalog.ErrNotFound
	}

	// Stage rules are replaced wholesale; the set is small and ordering
	// matters more than diffing.
	_, err = tx.Exec(ctx, `DELETE FROM scenario_stages WHERE scenario_id = $1`, scenario.ID)
	if err != nil {
		return catalog.ScenarioDefinition{}, fmt.Errorf("failed to clear stages of %s: %w", scenario.ID, err)
	}
	if err := insertStages(ctx, tx, scenario); err != nil {
		return catalog.ScenarioDefinition{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return catalog.ScenarioDefinition{}, err
	}
	return scenario, nil
}

func (s *CatalogDBStore) DeleteScenario(ctx context.Context, id string) error {
	tag, err := s.conn.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func insertStages(ctx context.Context, tx pgxv5.Tx, scenario catalog.ScenarioDefinition) error {
	for i, st := range scenario.Stages {
		cats := st.RequiredCategories
		if cats == nil {
			cats = []string{}
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO scenario_stages (scenario_id, id, name, required_categories, position)
			VALUES ($1, $2, $3, $4, $5)`,
			scenario.ID, st.ID, st.Name, cats, i)
		if err != nil {
			return fmt.Errorf("failed to insert stage %s: %w", st.ID, err)
		}
	}
	return nil
}
