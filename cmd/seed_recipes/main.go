package main

import (
	"log"

	"github.com/nutrivo/backend/config"
	"github.com/nutrivo/backend/internal/database"
	"github.com/nutrivo/backend/internal/models"
)

// Seeds a small approved recipe pool for local development: one preset
// per archetype plus a few community recipes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	author := models.User{Name: "Nutrivo Kitchen"}
	if err := db.FirstOrCreate(&author, models.User{Name: author.Name}).Error; err != nil {
		log.Fatalf("failed to seed author: %v", err)
	}

	presets := []models.Recipe{
		{Title: "Salade de quinoa aux légumes", PrepTime: 15, Servings: 2, Calories: 420, Ingredients: "quinoa, tomates, concombre, feta, huile d'olive", Tags: `["salade","léger"]`, Source: models.SourceAIPreset, TargetProfile: "weight_loss", Status: models.StatusApproved, AverageRating: 4.5, RatingsCount: 12},
		{Title: "Poulet grillé et patates douces", PrepTime: 35, Servings: 2, Calories: 680, Ingredients: "poulet, patates douces, brocoli, huile d'olive", Tags: `["protéines"]`, Source: models.SourceAIPreset, TargetProfile: "muscle_gain", Status: models.StatusApproved, AverageRating: 4.7, RatingsCount: 20},
		{Title: "Curry de pois chiches", PrepTime: 25, Servings: 4, Calories: 520, Ingredients: "pois chiches, lait de coco, épinards, riz, curry", Tags: `["végétarien"]`, Source: models.SourceAIPreset, TargetProfile: "vegetarian", Status: models.StatusApproved, AverageRating: 4.6, RatingsCount: 18},
		{Title: "Omelette aux herbes", PrepTime: 10, Servings: 1, Calories: 350, Ingredients: "oeufs, ciboulette, persil, beurre", Tags: `["rapide"]`, Source: models.SourceAIPreset, TargetProfile: "express", Status: models.StatusApproved, AverageRating: 4.2, RatingsCount: 8},
		{Title: "Gratin de pâtes familial", PrepTime: 40, Servings: 6, Calories: 750, Ingredients: "pâtes, jambon, crème, fromage râpé", Tags: `["famille"]`, Source: models.SourceAIPreset, TargetProfile: "family", Status: models.StatusApproved, AverageRating: 4.4, RatingsCount: 15},
		{Title: "Bowl saumon avocat", PrepTime: 20, Servings: 2, Calories: 600, Ingredients: "saumon, avocat, riz, concombre, sésame", Tags: `["équilibré"]`, Source: models.SourceAIPreset, TargetProfile: "maintenance", Status: models.StatusApproved, AverageRating: 4.8, RatingsCount: 25},
	}

	community := []models.Recipe{
		{Title: "Tarte aux légumes de saison", PrepTime: 45, Servings: 4, Calories: 480, Ingredients: "pâte brisée, courgettes, tomates, chèvre", Tags: `["four"]`, Source: models.SourceCommunity, Status: models.StatusApproved, AverageRating: 4.3, RatingsCount: 7, AuthorID: &author.ID},
		{Title: "Riz sauté aux crevettes", PrepTime: 18, Servings: 2, Calories: 540, Ingredients: "riz, crevettes, petits pois, sauce soja", Tags: `["asiatique"]`, Source: models.SourceYouTube, Status: models.StatusApproved, AverageRating: 4.1, RatingsCount: 5, AuthorID: &author.ID},
		{Title: "Soupe de lentilles corail", PrepTime: 30, Servings: 4, Calories: 390, Ingredients: "lentilles corail, carottes, cumin, bouillon", Tags: `["soupe","végétarien"]`, Source: models.SourceCommunity, Status: models.StatusApproved, AverageRating: 4.0, RatingsCount: 4, AuthorID: &author.ID},
	}

	for _, r := range append(presets, community...) {
		recipe := r
		if err := db.Where("title = ?", recipe.Title).FirstOrCreate(&recipe).Error; err != nil {
			log.Fatalf("failed to seed recipe %q: %v", recipe.Title, err)
		}
	}

	log.Printf("seeded %d recipes", len(presets)+len(community))
}
