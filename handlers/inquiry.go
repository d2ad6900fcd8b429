package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nitroxskg-dev/Real-Estate/models"
	"github.com/nitroxskg-dev/Real-Estate/notify"
	"github.com/nitroxskg-dev/Real-Estate/store"
	"github.com/nitroxskg-dev/Real-Estate/utils"
)

const InquiriesCollection = "inquiries"

type InquiryController struct {
	store    store.Store
	notifier *notify.Notifier
}

func NewInquiryController(s store.Store, notifier *notify.Notifier) *InquiryController {
	return &InquiryController{store: s, notifier: notifier}
}

func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	ctx := c.Request().Context()

	var data models.InquiryCreate
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&data); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": utils.ValidationDetails(err),
		})
	}

	// property_id is a loose reference; it is stored as-is without checking
	// that the property exists.
	inquiry := models.Inquiry{
		ID:            uuid.NewString(),
		PropertyID:    data.PropertyID,
		PropertyTitle: data.PropertyTitle,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Message:       data.Message,
		CreatedAt:     time.Now().UTC(),
	}

	if err := ic.store.InsertOne(ctx, InquiriesCollection, inquiry); err != nil {
		slog.Error("failed to create inquiry", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create inquiry"})
	}

	// Best effort: the response never waits on, nor fails with, the email.
	ic.notifier.Dispatch(inquiry)

	return c.JSON(http.StatusOK, inquiry)
}

func (ic *InquiryController) ListInquiries(c echo.Context) error {
	ctx := c.Request().Context()

	inquiries := []models.Inquiry{}
	err := ic.store.Find(ctx, InquiriesCollection, bson.M{}, store.FindOptions{
		Limit: listLimit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	}, &inquiries)
	if err != nil {
		slog.Error("failed to fetch inquiries", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch inquiries"})
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	return c.JSON(http.StatusOK, inquiries)
}

func (ic *InquiryController) DeleteInquiry(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	err := ic.store.DeleteOne(ctx, InquiriesCollection, bson.M{"id": id})
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Inquiry not found"})
		}
		slog.Error("failed to delete inquiry", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete inquiry"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Inquiry deleted successfully"})
}
