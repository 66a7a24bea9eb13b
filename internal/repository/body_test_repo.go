package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/yusufkecer/body-test-backend/internal/domain"
)

const mysqlDuplicateEntry = 1062

const bodyTestColumns = `id, user_id, measurement_date, weight, height, age, gender, measurement_method,
	skinfolds, bio_impedance, manual_body_fat, training_level, activity_level,
	body_fat, lean_body_mass, fat_mass, muscle_mass, total_body_water, bmr, tdee,
	bench_press_1rm, squat_1rm, deadlift_1rm, wilks_score, notes, created_at, updated_at`

type BodyTestRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewBodyTestRepository(db *sql.DB) *BodyTestRepository {
	return &BodyTestRepository{db: db, now: time.Now}
}

// Save stores bt as the user's record for bt.MeasurementDate, replacing an
// existing record for that day. It reports whether a record was replaced and
// fills in ID and timestamps.
func (r *BodyTestRepository) Save(ctx context.Context, bt *domain.BodyTest) (bool, error) {
	existing, err := r.GetByDate(ctx, bt.UserID, bt.MeasurementDate)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, r.update(ctx, existing, bt)
	}

	err = r.insert(ctx, bt)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		// Another request stored the same day first.
		existing, err = r.GetByDate(ctx, bt.UserID, bt.MeasurementDate)
		if err != nil {
			return false, err
		}
		if existing == nil {
			return false, fmt.Errorf("failed to save body test: duplicate entry vanished")
		}
		return true, r.update(ctx, existing, bt)
	}
	return false, err
}

func (r *BodyTestRepository) insert(ctx context.Context, bt *domain.BodyTest) error {
	skinfolds, bia, err := encodeMeasurements(bt)
	if err != nil {
		return err
	}

	now := r.now().UTC().Truncate(time.Second)
	bt.ID = uuid.NewString()
	bt.CreatedAt = now
	bt.UpdatedAt = now

	c, p := bt.BodyComposition, bt.PowerliftingPredictions
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO body_tests (`+bodyTestColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bt.ID, bt.UserID, bt.MeasurementDate, bt.Weight, bt.Height, bt.Age, bt.Gender, bt.MeasurementMethod,
		skinfolds, bia, bt.ManualBodyFatPercentage, bt.TrainingLevel, bt.ActivityLevel,
		c.BodyFatPercentage, c.LeanBodyMass, c.FatMass, c.MuscleMass, c.TotalBodyWater, c.BMR, c.TDEE,
		p.BenchPress1RM, p.Squat1RM, p.Deadlift1RM, p.WilksScore, bt.Notes, bt.CreatedAt, bt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create body test: %w", err)
	}
	return nil
}

func (r *BodyTestRepository) update(ctx context.Context, existing, bt *domain.BodyTest) error {
	skinfolds, bia, err := encodeMeasurements(bt)
	if err != nil {
		return err
	}

	bt.ID = existing.ID
	bt.CreatedAt = existing.CreatedAt
	bt.UpdatedAt = r.now().UTC().Truncate(time.Second)

	c, p := bt.BodyComposition, bt.PowerliftingPredictions
	_, err = r.db.ExecContext(ctx,
		`UPDATE body_tests SET
			weight = ?, height = ?, age = ?, gender = ?, measurement_method = ?,
			skinfolds = ?, bio_impedance = ?, manual_body_fat = ?, training_level = ?, activity_level = ?,
			body_fat = ?, lean_body_mass = ?, fat_mass = ?, muscle_mass = ?, total_body_water = ?, bmr = ?, tdee = ?,
			bench_press_1rm = ?, squat_1rm = ?, deadlift_1rm = ?, wilks_score = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		bt.Weight, bt.Height, bt.Age, bt.Gender, bt.MeasurementMethod,
		skinfolds, bia, bt.ManualBodyFatPercentage, bt.TrainingLevel, bt.ActivityLevel,
		c.BodyFatPercentage, c.LeanBodyMass, c.FatMass, c.MuscleMass, c.TotalBodyWater, c.BMR, c.TDEE,
		p.BenchPress1RM, p.Squat1RM, p.Deadlift1RM, p.WilksScore, bt.Notes, bt.UpdatedAt,
		bt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update body test: %w", err)
	}
	return nil
}

func (r *BodyTestRepository) GetByDate(ctx context.Context, userID, date string) (*domain.BodyTest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bodyTestColumns+` FROM body_tests WHERE user_id = ? AND measurement_date = ?`,
		userID, date,
	)
	bt, err := scanBodyTest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get body test: %w", err)
	}
	return bt, nil
}

// List returns the user's records newest first, plus the number of records
// matching the filter before paging.
func (r *BodyTestRepository) List(ctx context.Context, userID string, f domain.BodyTestFilter) ([]domain.BodyTest, int, error) {
	where := []string{"user_id = ?"}
	args := []interface{}{userID}
	if f.StartDate != "" {
		where = append(where, "measurement_date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		where = append(where, "measurement_date <= ?")
		args = append(args, f.EndDate)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM body_tests WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count body tests: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bodyTestColumns+` FROM body_tests WHERE `+cond+`
		 ORDER BY measurement_date DESC LIMIT ? OFFSET ?`,
		append(args, f.Limit, f.Offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list body tests: %w", err)
	}
	defer rows.Close()

	var tests []domain.BodyTest
	for rows.Next() {
		bt, err := scanBodyTest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan body test: %w", err)
		}
		tests = append(tests, *bt)
	}
	return tests, total, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBodyTest(s scanner) (*domain.BodyTest, error) {
	var (
		bt        domain.BodyTest
		date      time.Time
		skinfolds []byte
		bia       []byte
		manual    sql.NullFloat64
		notes     sql.NullString
	)
	c, p := &bt.BodyComposition, &bt.PowerliftingPredictions
	err := s.Scan(
		&bt.ID, &bt.UserID, &date, &bt.Weight, &bt.Height, &bt.Age, &bt.Gender, &bt.MeasurementMethod,
		&skinfolds, &bia, &manual, &bt.TrainingLevel, &bt.ActivityLevel,
		&c.BodyFatPercentage, &c.LeanBodyMass, &c.FatMass, &c.MuscleMass, &c.TotalBodyWater, &c.BMR, &c.TDEE,
		&p.BenchPress1RM, &p.Squat1RM, &p.Deadlift1RM, &p.WilksScore, &notes, &bt.CreatedAt, &bt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	bt.MeasurementDate = date.Format(domain.DateLayout)
	p.Total = p.BenchPress1RM + p.Squat1RM + p.Deadlift1RM
	if manual.Valid {
		v := manual.Float64
		bt.ManualBodyFatPercentage = &v
	}
	if notes.Valid {
		bt.Notes = &notes.String
	}
	if len(skinfolds) > 0 {
		if err := json.Unmarshal(skinfolds, &bt.SkinfoldMeasurements); err != nil {
			return nil, fmt.Errorf("failed to decode skinfolds: %w", err)
		}
	}
	if len(bia) > 0 {
		if err := json.Unmarshal(bia, &bt.BioImpedanceData); err != nil {
			return nil, fmt.Errorf("failed to decode bio impedance: %w", err)
		}
	}
	return &bt, nil
}

// encodeMeasurements returns the JSON columns, nil when absent.
func encodeMeasurements(bt *domain.BodyTest) (skinfolds, bia interface{}, err error) {
	if len(bt.SkinfoldMeasurements) > 0 {
		b, err := json.Marshal(bt.SkinfoldMeasurements)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode skinfolds: %w", err)
		}
		skinfolds = b
	}
	if bt.BioImpedanceData != nil {
		b, err := json.Marshal(bt.BioImpedanceData)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode bio impedance: %w", err)
		}
		bia = b
	}
	return skinfolds, bia, nil
}
