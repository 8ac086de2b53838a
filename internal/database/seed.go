package database

import (
	"fmt"
	"log"

	"github.com/assistco/assist-api/internal/models"
	"gorm.io/gorm"
)

// Default reference rows. Seeding is idempotent: rows are matched by
// permalink, so re-running against a populated database is a no-op.

var defaultGenders = []models.Gender{
	{Sort: 1, Display: "Female", Permalink: "female"},
	{Sort: 2, Display: "Male", Permalink: "male"},
	{Sort: 3, Display: "Other", Permalink: "other"},
}

var defaultProfessions = []models.Profession{
	{Sort: 1, Display: "Engineer", Permalink: "engineer"},
	{Sort: 2, Display: "Doctor", Permalink: "doctor"},
	{Sort: 3, Display: "Lawyer", Permalink: "lawyer"},
	{Sort: 4, Display: "Designer", Permalink: "designer"},
	{Sort: 5, Display: "Entrepreneur", Permalink: "entrepreneur"},
	{Sort: 6, Display: "Other", Permalink: "other"},
}

var defaultTaskTypes = []models.TaskType{
	{Sort: 1, Display: "Errand", Permalink: "errand"},
	{Sort: 2, Display: "Reservation", Permalink: "reservation"},
	{Sort: 3, Display: "Purchase", Permalink: "purchase"},
	{Sort: 4, Display: "Research", Permalink: "research"},
	{Sort: 5, Display: "Scheduling", Permalink: "scheduling"},
	{Sort: 6, Display: "Other", Permalink: "other"},
}

// Seed populates the reference option tables.
func Seed(db *gorm.DB) error {
	log.Println("Seeding reference data...")

	for _, g := range defaultGenders {
		if err := db.Where(models.Gender{Permalink: g.Permalink}).FirstOrCreate(&g).Error; err != nil {
			return fmt.Errorf("failed to seed gender %q: %w", g.Permalink, err)
		}
	}
	for _, p := range defaultProfessions {
		if err := db.Where(models.Profession{Permalink: p.Permalink}).FirstOrCreate(&p).Error; err != nil {
			return fmt.Errorf("failed to seed profession %q: %w", p.Permalink, err)
		}
	}
	for _, tt := range defaultTaskTypes {
		if err := db.Where(models.TaskType{Permalink: tt.Permalink}).FirstOrCreate(&tt).Error; err != nil {
			return fmt.Errorf("failed to seed task type %q: %w", tt.Permalink, err)
		}
	}

	log.Println("Reference data seeded")
	return nil
}
