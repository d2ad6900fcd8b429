package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nitroxskg-dev/Real-Estate/models"
	"github.com/nitroxskg-dev/Real-Estate/store"
	"github.com/nitroxskg-dev/Real-Estate/utils"
)

type SeedController struct {
	store store.Store
	cache *utils.Cache
}

func NewSeedController(s store.Store, cache *utils.Cache) *SeedController {
	return &SeedController{store: s, cache: cache}
}

// Seed bootstraps the demo catalog. It is idempotent: a non-empty properties
// collection is left untouched and only its count is reported.
func (sc *SeedController) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := sc.store.Count(ctx, PropertiesCollection, bson.M{})
	if err != nil {
		slog.Error("failed to count properties", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to seed properties"})
	}
	if count > 0 {
		return c.JSON(http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Database already has %d properties", count),
		})
	}

	docs := make([]interface{}, 0, len(sampleProperties))
	for _, sample := range sampleProperties {
		property := sample
		property.ID = uuid.NewString()
		property.CreatedAt = time.Now().UTC()
		docs = append(docs, property)
	}

	if err := sc.store.InsertMany(ctx, PropertiesCollection, docs); err != nil {
		slog.Error("failed to insert sample properties", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to seed properties"})
	}

	if err := sc.cache.Invalidate(ctx, PropertiesCollection); err != nil {
		slog.Warn("failed to invalidate property cache", "error", err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Seeded %d properties", len(docs)),
	})
}

var sampleProperties = []models.Property{
	{
		Title:        "The Midnight Estate",
		Location:     "Beverly Hills, California",
		Price:        45000000,
		PropertyType: "estate",
		Bedrooms:     8,
		Bathrooms:    12,
		Area:         18500,
		Description:  "An architectural masterpiece of understated grandeur. Conceived by a Pritzker laureate, this residence commands the most coveted promontory in Beverly Hills. Floor-to-ceiling glass walls dissolve the boundary between interior sanctuary and panoramic cityscape.",
		Features:     []string{"Infinity Pool", "Wine Cellar", "Home Theater", "Guest House", "Motor Court", "Smart Home"},
		Images: []string{
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200",
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200",
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=1200",
		},
		Featured: true,
	},
	{
		Title:        "Obsidian Penthouse",
		Location:     "Manhattan, New York",
		Price:        32000000,
		PropertyType: "penthouse",
		Bedrooms:     5,
		Bathrooms:    6,
		Area:         8200,
		Description:  "Suspended above the city, this penthouse offers a rare convergence of privacy and prominence. Italian marble, hand-selected oak, and bronze accents create an atmosphere of quiet power. The wraparound terrace presents Manhattan as a private theater.",
		Features:     []string{"Private Elevator", "Wraparound Terrace", "Chef's Kitchen", "Library", "Wine Room"},
		Images: []string{
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200",
			"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=1200",
			"https://images.unsplash.com/photo-1600573472550-8090b5e0745e?w=1200",
		},
		Featured: true,
	},
	{
		Title:        "Villa Serenità",
		Location:     "Lake Como, Italy",
		Price:        28000000,
		PropertyType: "villa",
		Bedrooms:     7,
		Bathrooms:    8,
		Area:         12000,
		Description:  "A testament to Italian craftsmanship, this lakefront villa has hosted generations of quiet distinction. Original frescoes complement contemporary renovations, while private gardens descend to a centuries-old boat house.",
		Features:     []string{"Lake Access", "Historic Gardens", "Guest Quarters", "Wine Cellar", "Boat House"},
		Images: []string{
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=1200",
			"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=1200",
			"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=1200",
		},
		Featured: true,
	},
	{
		Title:        "The Glass Pavilion",
		Location:     "Aspen, Colorado",
		Price:        38000000,
		PropertyType: "estate",
		Bedrooms:     6,
		Bathrooms:    8,
		Area:         14000,
		Description:  "Where architecture meets wilderness. This mountain retreat frames the Rockies through expansive glass walls that disappear into the landscape. Radiant heated floors, a ski-in trail, and complete privacy define alpine luxury.",
		Features:     []string{"Ski Access", "Heated Driveway", "Spa", "Gym", "Media Room", "Generator"},
		Images: []string{
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200",
			"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=1200",
			"https://images.unsplash.com/photo-1600607687644-c7171b42498f?w=1200",
		},
		Featured: false,
	},
	{
		Title:        "Maison Noir",
		Location:     "Paris, France",
		Price:        22000000,
		PropertyType: "apartment",
		Bedrooms:     4,
		Bathrooms:    4,
		Area:         5500,
		Description:  "In the heart of the 7th arrondissement, this Haussmann masterpiece has been reimagined for contemporary living. Original moldings and herringbone parquet harmonize with a curated palette of midnight hues and burnished metals.",
		Features:     []string{"Eiffel View", "Terrace", "Concierge", "Parking", "Wine Storage"},
		Images: []string{
			"https://images.unsplash.com/photo-1600210492493-0946911123ea?w=1200",
			"https://images.unsplash.com/photo-1600566752355-35792bedcfea?w=1200",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200",
		},
		Featured: false,
	},
	{
		Title:        "Harbour Sanctuary",
		Location:     "Sydney, Australia",
		Price:        35000000,
		PropertyType: "penthouse",
		Bedrooms:     5,
		Bathrooms:    5,
		Area:         7800,
		Description:  "Commanding uninterrupted views of the Opera House and Harbour Bridge, this residence represents the pinnacle of Sydney living. Stone, timber, and bronze create a distinctly Australian interpretation of global luxury.",
		Features:     []string{"Harbour Views", "Private Pool", "Wine Cellar", "Staff Quarters", "Triple Garage"},
		Images: []string{
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=1200",
			"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=1200",
			"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=1200",
		},
		Featured: false,
	},
}
