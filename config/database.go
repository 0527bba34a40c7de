package config

import (
	"fmt"
	"log"

	"planning-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "planning_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := Migrate(db); err != nil {
		panic("failed to run migrations: " + err.Error())
	}

	log.Println("Database connected")
	DB = db
}

// Migrate creates/updates all tables. Shared with the test helper so tests
// run against the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.OrganizationUser{},
		&model.StrategicObjective{},
		&model.Program{},
		&model.InitiativeFeed{},
		&model.StrategicInitiative{},
		&model.PerformanceMeasure{},
		&model.MainActivity{},
		&model.ActivityBudget{},
		&model.Location{},
		&model.LandTransport{},
		&model.AirTransport{},
		&model.PerDiem{},
		&model.Accommodation{},
		&model.ParticipantCost{},
		&model.SessionCost{},
		&model.PrintingCost{},
		&model.SupervisorCost{},
		&model.ProcurementItem{},
		&model.ActivityCostingAssumption{},
		&model.Plan{},
		&model.PlanReview{},
	)
}
