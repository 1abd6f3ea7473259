// Seeds demonstration staff, one review template and its questions.
// cmd/seed/main.go
package main

import (
	"log"

	"performance-review-api/config"
	"performance-review-api/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	config.MigrateDB()

	var staffCount, templateCount int64
	config.DB.Model(&models.Staff{}).Count(&staffCount)
	config.DB.Model(&models.ReviewTemplate{}).Count(&templateCount)
	if staffCount > 0 || templateCount > 0 {
		log.Println("Seed data already exists.")
		return
	}

	ceo := models.Staff{Name: "Ava Johnson", Title: "CEO", Email: "ava@acme.com"}
	if err := config.DB.Create(&ceo).Error; err != nil {
		log.Fatal("Failed to create staff:", err)
	}

	staff := []models.Staff{
		{Name: "Noah Carter", Title: "HR Director", Email: "noah@acme.com", ManagerID: &ceo.StaffID},
		{Name: "Mia Lopez", Title: "Engineering Manager", Email: "mia@acme.com", ManagerID: &ceo.StaffID},
	}
	if err := config.DB.Create(&staff).Error; err != nil {
		log.Fatal("Failed to create staff:", err)
	}

	engManager := staff[1]
	engineer := models.Staff{Name: "Liam Patel", Title: "Software Engineer", Email: "liam@acme.com", ManagerID: &engManager.StaffID}
	if err := config.DB.Create(&engineer).Error; err != nil {
		log.Fatal("Failed to create staff:", err)
	}

	description := "Standard quarterly review template"
	template := models.ReviewTemplate{
		Name:        "Quarterly Performance Review",
		Description: &description,
	}
	if err := config.DB.Create(&template).Error; err != nil {
		log.Fatal("Failed to create template:", err)
	}

	questions := []models.TemplateQuestion{
		{TemplateID: template.TemplateID, Prompt: "What were your key achievements this period?", AnswerBy: models.AnswerByReviewee, OrderIndex: 1},
		{TemplateID: template.TemplateID, Prompt: "How effectively did this employee collaborate with peers?", AnswerBy: models.AnswerByReviewer, OrderIndex: 2},
		{TemplateID: template.TemplateID, Prompt: "What growth goals should be prioritized next quarter?", AnswerBy: models.AnswerByBoth, OrderIndex: 3},
	}
	if err := config.DB.Create(&questions).Error; err != nil {
		log.Fatal("Failed to create questions:", err)
	}

	log.Println("Seed data created.")
}
