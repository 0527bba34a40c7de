package database

import (
	"log"

	"planning-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll loads a minimal working dataset: the top of the organization
// hierarchy, one account per role, the default strategic objectives and a
// starter set of reference costs.
func SeedAll(db *gorm.DB) {
	minister := model.Organization{
		Name:    "Ministry of Health",
		Type:    model.OrgTypeMinister,
		Vision:  "A healthy, productive and prosperous society",
		Mission: "Promote health and wellbeing through equitable services",
		CoreValues: []string{
			"Integrity",
			"Accountability",
			"Community first",
		},
	}
	db.FirstOrCreate(&minister, model.Organization{Name: minister.Name})

	stateMinister := model.Organization{
		Name:     "State Minister, Programs",
		Type:     model.OrgTypeStateMinister,
		ParentID: &minister.ID,
	}
	db.FirstOrCreate(&stateMinister, model.Organization{Name: stateMinister.Name})

	leadExecutive := model.Organization{
		Name:     "Strategic Affairs Lead Executive Office",
		Type:     model.OrgTypeLeadExecutive,
		ParentID: &stateMinister.ID,
	}
	db.FirstOrCreate(&leadExecutive, model.Organization{Name: leadExecutive.Name})

	desk := model.Organization{
		Name:     "Planning Desk",
		Type:     model.OrgTypeDesk,
		ParentID: &leadExecutive.ID,
	}
	db.FirstOrCreate(&desk, model.Organization{Name: desk.Name})

	seedUsers(db, minister.ID, leadExecutive.ID)
	seedObjectives(db)
	seedReferenceCosts(db)

	log.Println("Seeding finished")
}

func seedUsers(db *gorm.DB, adminOrgID, plannerOrgID uint) {
	accounts := []struct {
		username string
		name     string
		role     string
		orgID    uint
	}{
		{"admin", "System Administrator", model.RoleAdmin, adminOrgID},
		{"planner", "Lead Planner", model.RolePlanner, plannerOrgID},
		{"evaluator", "Plan Evaluator", model.RoleEvaluator, adminOrgID},
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	for _, a := range accounts {
		user := model.User{
			Name:     a.name,
			Username: a.username,
			Email:    a.username + "@example.gov",
			Password: string(hashed),
		}
		db.FirstOrCreate(&user, model.User{Username: a.username})

		link := model.OrganizationUser{UserID: user.ID, OrganizationID: a.orgID, Role: a.role}
		db.FirstOrCreate(&link, model.OrganizationUser{UserID: user.ID, OrganizationID: a.orgID, Role: a.role})
	}
}

func seedObjectives(db *gorm.DB) {
	objectives := []model.StrategicObjective{
		{Title: "Improve access to quality health services", Weight: 40, IsDefault: true},
		{Title: "Strengthen health system capacity", Weight: 35, IsDefault: true},
		{Title: "Enhance evidence-based decision making", Weight: 25, IsDefault: true},
	}
	for _, o := range objectives {
		db.FirstOrCreate(&o, model.StrategicObjective{Title: o.Title})
	}
}

func seedReferenceCosts(db *gorm.DB) {
	locations := []model.Location{
		{Name: "Addis Ababa", Region: "Addis Ababa", IsHardshipArea: false},
		{Name: "Gambella", Region: "Gambella", IsHardshipArea: true},
		{Name: "Hawassa", Region: "Sidama", IsHardshipArea: false},
	}
	for i := range locations {
		db.FirstOrCreate(&locations[i], model.Location{Name: locations[i].Name})
	}

	perDiems := []model.PerDiem{
		{LocationID: locations[0].ID, Amount: 800},
		{LocationID: locations[1].ID, Amount: 1000, HardshipAllowanceAmount: 300},
		{LocationID: locations[2].ID, Amount: 700},
	}
	for _, p := range perDiems {
		db.FirstOrCreate(&p, model.PerDiem{LocationID: p.LocationID})
	}

	transports := []model.LandTransport{
		{OriginID: locations[0].ID, DestinationID: locations[2].ID, TripType: model.TripRound, Price: 1200},
		{OriginID: locations[0].ID, DestinationID: locations[1].ID, TripType: model.TripSingle, Price: 1800},
	}
	for _, t := range transports {
		db.FirstOrCreate(&t, model.LandTransport{OriginID: t.OriginID, DestinationID: t.DestinationID, TripType: t.TripType})
	}

	printing := []model.PrintingCost{
		{DocumentType: "MANUAL", PricePerPage: 5},
		{DocumentType: "BOOKLET", PricePerPage: 4},
		{DocumentType: "LEAFLET", PricePerPage: 3},
		{DocumentType: "BROCHURE", PricePerPage: 3.5},
	}
	for _, p := range printing {
		db.FirstOrCreate(&p, model.PrintingCost{DocumentType: p.DocumentType})
	}

	items := []model.ProcurementItem{
		{Category: "OFFICE", Name: "Laptop", Unit: "piece", UnitPrice: 65000},
		{Category: "OFFICE", Name: "Printer paper", Unit: "ream", UnitPrice: 450},
		{Category: "MEDICAL", Name: "Examination gloves", Unit: "box", UnitPrice: 600},
	}
	for _, it := range items {
		db.FirstOrCreate(&it, model.ProcurementItem{Category: it.Category, Name: it.Name, Unit: it.Unit})
	}
}
