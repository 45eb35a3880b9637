package store

import (
	"context"
	"database/sql"

	"nutriplan/apperr"
	"nutriplan/models"
)

type NewProfile struct {
	UserID              int64
	Name                string
	Age                 int
	Gender              string
	Weight              float64
	Height              float64
	BMI                 string
	HealthConditions    string
	DietaryRestrictions string
	Allergies           string
}

type Profiles interface {
	Create(ctx context.Context, p NewProfile) (int64, error)
	// ByUser returns the user's profiles newest first; an empty slice,
	// not an error, when the user owns none.
	ByUser(ctx context.Context, userID int64) ([]models.Profile, error)
	ByID(ctx context.Context, id int64) (models.Profile, error)
}

type PostgresProfiles struct {
	db *sql.DB
}

func NewPostgresProfiles(db *sql.DB) *PostgresProfiles {
	return &PostgresProfiles{db: db}
}

func (s *PostgresProfiles) Create(ctx context.Context, p NewProfile) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO user_profiles (
			user_id, name, age, gender, weight, height, bmi,
			health_conditions, dietary_restrictions, allergies
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, p.UserID, p.Name, p.Age, p.Gender, p.Weight, p.Height, p.BMI,
		p.HealthConditions, p.DietaryRestrictions, p.Allergies).Scan(&id)

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *PostgresProfiles) ByUser(ctx context.Context, userID int64) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, COALESCE(name, ''), COALESCE(age, 0),
		       COALESCE(gender, ''), COALESCE(weight, 0), COALESCE(height, 0),
		       COALESCE(bmi, ''), COALESCE(health_conditions, ''),
		       COALESCE(dietary_restrictions, ''), COALESCE(allergies, ''),
		       created_at
		FROM user_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Age, &p.Gender,
			&p.Weight, &p.Height, &p.BMI, &p.HealthConditions,
			&p.DietaryRestrictions, &p.Allergies, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (s *PostgresProfiles) ByID(ctx context.Context, id int64) (models.Profile, error) {
	var p models.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, COALESCE(name, ''), COALESCE(age, 0),
		       COALESCE(gender, ''), COALESCE(weight, 0), COALESCE(height, 0),
		       COALESCE(bmi, ''), COALESCE(health_conditions, ''),
		       COALESCE(dietary_restrictions, ''), COALESCE(allergies, ''),
		       created_at
		FROM user_profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Age, &p.Gender,
		&p.Weight, &p.Height, &p.BMI, &p.HealthConditions,
		&p.DietaryRestrictions, &p.Allergies, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Profile{}, apperr.ErrProfileNotFound
	} else if err != nil {
		return models.Profile{}, err
	}

	return p, nil
}
