package controllers

import (
	"net/http"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TripController struct {
	tripService services.TripServiceInterface
	pdfService  services.PdfServiceInterface
}

func NewTripController(tripService services.TripServiceInterface, pdfService services.PdfServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
		pdfService:  pdfService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Generate, enrich and persist a day-by-day itinerary for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List own trips
// @Description Fetch the authenticated user's trips, newest first
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get one trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update trip fields
// @Description Update request-level fields; the itinerary itself is not patchable
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// GetSharedTrip godoc
// @Summary Get a trip by share id
// @Description Unauthenticated read-only lookup via the opaque share identifier
// @Tags Trips
// @Produce json
// @Param shareId path string true "Share ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/share/{shareId} [get]
func (t *TripController) GetSharedTrip(c *gin.Context) {
	trip, err := t.tripService.GetSharedTrip(c.Request.Context(), c.Param("shareId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// ExportTripPdf godoc
// @Summary Export a trip as PDF
// @Tags Trips
// @Produce application/pdf
// @Param id path string true "Trip ID"
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/pdf [get]
func (t *TripController) ExportTripPdf(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := t.pdfService.RenderTrip(c.Request.Context(), trip)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "PDF generation failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trip-`+trip.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
