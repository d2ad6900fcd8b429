package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nitroxskg-dev/Real-Estate/models"
	"github.com/nitroxskg-dev/Real-Estate/store"
	"github.com/nitroxskg-dev/Real-Estate/utils"
)

const PropertiesCollection = "properties"

// listLimit caps every listing response.
const listLimit = 100

type PropertyController struct {
	store store.Store
	cache *utils.Cache
}

func NewPropertyController(s store.Store, cache *utils.Cache) *PropertyController {
	return &PropertyController{store: s, cache: cache}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()
	query := bson.M{}
	params := map[string]string{}

	if propertyType := c.QueryParam("property_type"); propertyType != "" {
		query["property_type"] = propertyType
		params["property_type"] = propertyType
	}
	if minPrice := c.QueryParam("min_price"); minPrice != "" {
		if min, err := strconv.Atoi(minPrice); err == nil {
			query["price"] = bson.M{"$gte": min}
			params["min_price"] = minPrice
		}
	}
	if maxPrice := c.QueryParam("max_price"); maxPrice != "" {
		if max, err := strconv.Atoi(maxPrice); err == nil {
			if existing, ok := query["price"].(bson.M); ok {
				existing["$lte"] = max
			} else {
				query["price"] = bson.M{"$lte": max}
			}
			params["max_price"] = maxPrice
		}
	}
	if location := c.QueryParam("location"); location != "" {
		// User input must not be interpreted as a regex pattern.
		query["location"] = bson.M{"$regex": regexp.QuoteMeta(location), "$options": "i"}
		params["location"] = location
	}
	if bedrooms := c.QueryParam("bedrooms"); bedrooms != "" {
		if num, err := strconv.Atoi(bedrooms); err == nil {
			query["bedrooms"] = bson.M{"$gte": num}
			params["bedrooms"] = bedrooms
		}
	}
	if featured := c.QueryParam("featured"); featured != "" {
		if val, err := strconv.ParseBool(featured); err == nil {
			query["featured"] = val
			params["featured"] = strconv.FormatBool(val)
		}
	}

	cacheKey := utils.QueryCacheKey(PropertiesCollection, params)
	properties := []models.Property{}
	if hit, err := pc.cache.Get(ctx, cacheKey, &properties); err == nil && hit {
		return c.JSON(http.StatusOK, properties)
	}

	err := pc.store.Find(ctx, PropertiesCollection, query, store.FindOptions{Limit: listLimit}, &properties)
	if err != nil {
		slog.Error("failed to fetch properties", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	if properties == nil {
		properties = []models.Property{}
	}

	if err := pc.cache.Set(ctx, cacheKey, properties); err != nil {
		slog.Warn("failed to cache property listing", "error", err)
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	cacheKey := utils.QueryCacheKey(PropertiesCollection, map[string]string{"id": id})
	var property models.Property
	if hit, err := pc.cache.Get(ctx, cacheKey, &property); err == nil && hit {
		return c.JSON(http.StatusOK, property)
	}

	err := pc.store.FindOne(ctx, PropertiesCollection, bson.M{"id": id}, &property)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		slog.Error("failed to fetch property", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if err := pc.cache.Set(ctx, cacheKey, property); err != nil {
		slog.Warn("failed to cache property", "id", id, "error", err)
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	ctx := c.Request().Context()

	var data models.PropertyCreate
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&data); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": utils.ValidationDetails(err),
		})
	}

	if data.Features == nil {
		data.Features = []string{}
	}
	if data.Images == nil {
		data.Images = []string{}
	}

	property := models.Property{
		ID:           uuid.NewString(),
		Title:        data.Title,
		Location:     data.Location,
		Price:        *data.Price,
		PropertyType: data.PropertyType,
		Bedrooms:     *data.Bedrooms,
		Bathrooms:    *data.Bathrooms,
		Area:         *data.Area,
		Description:  data.Description,
		Features:     data.Features,
		Images:       data.Images,
		Featured:     data.Featured,
		CreatedAt:    time.Now().UTC(),
	}

	if err := pc.store.InsertOne(ctx, PropertiesCollection, property); err != nil {
		slog.Error("failed to create property", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	pc.invalidateCache(c)
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var property models.Property
	err := pc.store.FindOne(ctx, PropertiesCollection, bson.M{"id": id}, &property)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		slog.Error("failed to fetch property", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	var update models.PropertyUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{}
	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Location != nil {
		updateDoc["location"] = *update.Location
	}
	if update.Price != nil {
		updateDoc["price"] = *update.Price
	}
	if update.PropertyType != nil {
		updateDoc["property_type"] = *update.PropertyType
	}
	if update.Bedrooms != nil {
		updateDoc["bedrooms"] = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		updateDoc["bathrooms"] = *update.Bathrooms
	}
	if update.Area != nil {
		updateDoc["area"] = *update.Area
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Features != nil {
		updateDoc["features"] = *update.Features
	}
	if update.Images != nil {
		updateDoc["images"] = *update.Images
	}
	if update.Featured != nil {
		updateDoc["featured"] = *update.Featured
	}

	if len(updateDoc) > 0 {
		if err := pc.store.UpdateOne(ctx, PropertiesCollection, bson.M{"id": id}, bson.M{"$set": updateDoc}); err != nil {
			slog.Error("failed to update property", "id", id, "error", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
		}
	}

	err = pc.store.FindOne(ctx, PropertiesCollection, bson.M{"id": id}, &property)
	if err != nil {
		slog.Error("failed to fetch updated property", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}

	pc.invalidateCache(c)
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	err := pc.store.DeleteOne(ctx, PropertiesCollection, bson.M{"id": id})
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		slog.Error("failed to delete property", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}

	pc.invalidateCache(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) invalidateCache(c echo.Context) {
	if err := pc.cache.Invalidate(c.Request().Context(), PropertiesCollection); err != nil {
		slog.Warn("failed to invalidate property cache", "error", err)
	}
}
